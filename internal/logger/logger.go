package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

var (
	current atomic.Pointer[zerolog.Logger]
	once    sync.Once
)

// Init installs the default logger: human-readable output on stderr at info level.
// It ensures that the logger is initialized only once.
func Init() {
	once.Do(func() {
		if current.Load() != nil {
			return
		}
		l := New(os.Stderr, zerolog.InfoLevel, FormatText)
		current.Store(&l)
	})
}

// New builds a logger writing to w. Text format uses zerolog's console writer
// without colors when w is not a terminal; JSON writes one object per line.
func New(w io.Writer, level zerolog.Level, format string) zerolog.Logger {
	if format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, NoColor: !isTerminal(w), TimeFormat: time.Kitchen}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// Configure replaces the default logger. level is a zerolog level name
// (debug, info, warn, error) and format is FormatText or FormatJSON.
func Configure(w io.Writer, level, format string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	switch format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("invalid log format %q", format)
	}

	l := New(w, lvl, format)
	current.Store(&l)
	return nil
}

// Get returns the initialized default logger.
func Get() *zerolog.Logger {
	Init()
	return current.Load()
}

// Info logs an informational message with key/value pairs.
func Info(msg string, args ...any) {
	Get().Info().Fields(args).Msg(msg)
}

// Warn logs a warning message with key/value pairs.
func Warn(msg string, args ...any) {
	Get().Warn().Fields(args).Msg(msg)
}

// Error logs an error message using the default logger.
func Error(msg string, err error, args ...any) {
	Get().Error().Err(err).Fields(args).Msg(msg)
}

// Debug logs a debug message with key/value pairs.
func Debug(msg string, args ...any) {
	Get().Debug().Fields(args).Msg(msg)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
