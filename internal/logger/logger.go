// Package logger holds the process-wide logrus instance.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the application logger. It is usable before Init with logrus
// defaults so packages and tests never see a nil logger.
var Log = logrus.New()

// Init configures Log from the environment. Call it once from main.
//
//	LOG_LEVEL   logrus level name, default "info"
//	LOG_FORMAT  "json" for machine-readable output, anything else for text
func Init() {
	InitWith(os.Getenv, os.Stderr)
}

// InitWith is Init with an explicit environment lookup and output.
func InitWith(getenv func(string) string, out io.Writer) {
	Log = logrus.New()

	level, err := logrus.ParseLevel(getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if strings.ToLower(getenv("LOG_FORMAT")) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	Log.SetOutput(out)
}

// Component returns an entry tagged with the component name.
func Component(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
