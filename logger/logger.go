package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Config selects the level and output format of the game logger.
type Config struct {
	Level  string
	Format string
	Output io.Writer
}

// FromEnv fills empty fields from LOG_LEVEL and LOG_FORMAT.
func (c Config) FromEnv() Config {
	if c.Level == "" {
		c.Level = os.Getenv("LOG_LEVEL")
	}
	if c.Format == "" {
		c.Format = os.Getenv("LOG_FORMAT")
	}
	return c
}

// New builds a logrus logger. Unknown levels fall back to info, unknown formats to text.
func New(cfg Config) *logrus.Logger {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}
	log.SetOutput(out)
	return log
}

// OrStandard returns l, or the logrus standard logger when l is nil.
func OrStandard(l logrus.FieldLogger) logrus.FieldLogger {
	if l == nil {
		return logrus.StandardLogger()
	}
	return l
}
