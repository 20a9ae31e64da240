package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus
// defaults so packages and tests never see a nil logger.
var Log = logrus.New()

// Init configures Log. LOG_LEVEL and LOG_FORMAT override the configured
// level and format. A nil out writes to stdout.
func Init(level, format string, out io.Writer) {
	Log = logrus.New()

	if env := os.Getenv("LOG_LEVEL"); env != "" {
		level = env
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)

	if env := os.Getenv("LOG_FORMAT"); env != "" {
		format = env
	}
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if out == nil {
		out = os.Stdout
	}
	Log.SetOutput(out)
}

// WithComponent returns an entry tagged with the emitting subsystem.
func WithComponent(name string) *logrus.Entry {
	return Log.WithField("component", name)
}
