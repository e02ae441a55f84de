package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New returns a JSON logger writing to stdout. An unknown level falls back to info.
func New(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
		logger.Warnf("Invalid LOG_LEVEL '%s', using default: %s", level, lvl.String())
	}
	logger.SetLevel(lvl)
	return logger
}
