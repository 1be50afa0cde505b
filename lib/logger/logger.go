package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Pre-configured loggers for different components
var (
	// Logger is the base logger instance
	Logger *zerolog.Logger

	// Component-specific loggers
	API  *zerolog.Logger
	App  *zerolog.Logger
	Flow *zerolog.Logger
)

// Init initializes all loggers with console output
func Init(debug bool) {
	// Console writer to stderr keeps diagnostics out of the game output
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	baseLogger := zerolog.New(output).
		Level(level).
		With().
		Timestamp().
		Logger()
	Logger = &baseLogger

	apiLogger := baseLogger.With().Str("component", "api").Logger()
	API = &apiLogger

	appLogger := baseLogger.With().Str("component", "app").Logger()
	App = &appLogger

	flowLogger := baseLogger.With().Str("component", "flow").Logger()
	Flow = &flowLogger
}
