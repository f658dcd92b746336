package main

import (
	"os"

	"maliyet/cmd/handlers"
	"maliyet/internal/logger"
)

func main() {
	logger.Init()
	if err := handlers.Execute(); err != nil {
		logger.Error("Command failed", err)
		os.Exit(1)
	}
}
