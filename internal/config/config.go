package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. MALIYET_OUTPUT_FORMAT.
const EnvPrefix = "MALIYET"

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all application configuration
type Config struct {
	App     App     `mapstructure:"app"`
	Logging Logging `mapstructure:"logging"`
	Output  Output  `mapstructure:"output"`
}

// App holds general application configuration
type App struct {
	Debug bool `mapstructure:"debug"`
}

// Logging holds logging configuration
type Logging struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Output holds output configuration
type Output struct {
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

var (
	logLevels     = []string{"debug", "info", "warn", "error"}
	logFormats    = []string{"text", "json"}
	outputFormats = []string{"table", "json", "plain"}
)

// Load reads configuration from, in increasing precedence: built-in defaults,
// the config file, a .env file in the working directory and MALIYET_*
// environment variables.
//
// An empty configFile searches for .maliyet.yaml in the working directory and
// $HOME; a missing file is not an error.
func Load(configFile string) (*Config, error) {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME")
		v.SetConfigName(".maliyet")
		v.SetConfigType("yaml")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	postProcessConfig(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	return &Config{
		Logging: Logging{Level: "info", Format: "text"},
		Output:  Output{Format: "table", Color: true},
	}
}

func setDefaults(v *viper.Viper) {
	d := Default()

	v.SetDefault("app.debug", d.App.Debug)

	v.SetDefault("logging.level", d.Logging.Level)
	v.SetDefault("logging.format", d.Logging.Format)

	v.SetDefault("output.format", d.Output.Format)
	v.SetDefault("output.color", d.Output.Color)
}

// postProcessConfig lowercases enum-like values so "JSON" and "json" are the same.
func postProcessConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	config.Output.Format = strings.ToLower(strings.TrimSpace(config.Output.Format))

	// Debug mode implies debug logging.
	if config.App.Debug {
		config.Logging.Level = "debug"
	}
}

// Validate reports every invalid value at once.
func (c *Config) Validate() error {
	var problems []string

	if !oneOf(c.Logging.Level, logLevels) {
		problems = append(problems, fmt.Sprintf("logging.level %q must be one of %s", c.Logging.Level, strings.Join(logLevels, ", ")))
	}
	if !oneOf(c.Logging.Format, logFormats) {
		problems = append(problems, fmt.Sprintf("logging.format %q must be one of %s", c.Logging.Format, strings.Join(logFormats, ", ")))
	}
	if !oneOf(c.Output.Format, outputFormats) {
		problems = append(problems, fmt.Sprintf("output.format %q must be one of %s", c.Output.Format, strings.Join(outputFormats, ", ")))
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w:\n- %s", ErrInvalidConfig, strings.Join(problems, "\n- "))
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if value == a {
			return true
		}
	}
	return false
}
