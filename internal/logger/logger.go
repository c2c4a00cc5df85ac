// Package logger builds the zerolog logger shared by the application.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New returns a console logger outside production and a JSON logger in
// production. It also replaces the global zerolog logger.
func New(env, service string) zerolog.Logger {
	level := zerolog.DebugLevel
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	if env == "production" {
		level = zerolog.InfoLevel
		out = os.Stdout
	}

	zerolog.SetGlobalLevel(level)
	logger := zerolog.New(out).
		With().
		Timestamp().
		Str("service", service).
		Str("env", env).
		Logger()

	log.Logger = logger
	return logger
}
