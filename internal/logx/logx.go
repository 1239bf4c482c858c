// Package logx configures the process-wide zerolog logger.
package logx

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Debug  bool
	Pretty bool
}

func Init(conf Config) {
	Setup(os.Stdout, conf)
}

// Setup is Init with an explicit writer, for tests and the console REPL.
func Setup(w io.Writer, conf Config) {
	if conf.Pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	log.Logger = zerolog.New(w).With().Timestamp().Logger()

	if conf.Debug {
		log.Logger = log.Logger.Level(zerolog.DebugLevel)
	} else {
		log.Logger = log.Logger.Level(zerolog.InfoLevel)
	}

	log.Logger = log.Logger.With().Caller().Logger()
}

// Printf adapts the global logger to Printf-style consumers such as cron.
type Printf struct{}

func (Printf) Printf(format string, v ...any) {
	log.Info().Msgf(format, v...)
}
