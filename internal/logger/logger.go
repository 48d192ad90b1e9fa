package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// New builds the process-wide JSON logger. The level comes from LOG_LEVEL
// (any name logrus understands, e.g. "debug"); unset or unparseable values
// fall back to info so a typo never silences the tracker.
func New() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stdout)
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: "2006-01-02T15:04:05.000Z07:00"})

	lvl, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	return l
}
