// Package logging configures polyfmt's internal diagnostics. The library
// never writes diagnostics to its own output sink; anything worth recording
// (swallowed write failures, chooser teardown) goes through zerolog on
// stderr and stays invisible unless the host application raises the level.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configures the global log level from a verbosity count, as passed
// by repeated -v flags. Rendering libraries should stay quiet by default,
// so verbosity zero only surfaces errors.
func Setup(verbosity int) {
	switch verbosity {
	case 0:
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case 1:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case 2:
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.TraceLevel)
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
	}).With().Timestamp().Logger()
}

// GetLogger returns a logger tagged with the given component name. The
// pointer return keeps the level starters, which take a *Logger, callable
// directly on the result.
func GetLogger(component string) *zerolog.Logger {
	logger := log.With().Str("component", component).Logger()
	return &logger
}
