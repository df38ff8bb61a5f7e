package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

const (
	levelEnv  = "INSPECTOR_LOG_LEVEL"
	formatEnv = "INSPECTOR_LOG_FORMAT"
)

var (
	lg   *logrus.Logger
	once sync.Once
)

// Logger returns the shared logger for the inspector panel. The level is
// taken from the INSPECTOR_LOG_LEVEL environment variable ("warning" if
// unset or unparsable); setting INSPECTOR_LOG_FORMAT=json switches the
// output to JSON.
func Logger() *logrus.Logger {
	once.Do(func() {
		lg = logrus.New()
		lg.SetOutput(os.Stderr)

		levelStr := os.Getenv(levelEnv)
		if levelStr == "" {
			levelStr = "warning"
		}

		level, err := logrus.ParseLevel(levelStr)
		if err != nil {
			level = logrus.WarnLevel
		}
		lg.SetLevel(level)

		if os.Getenv(formatEnv) == "json" {
			lg.SetFormatter(&logrus.JSONFormatter{})
		}
	})

	return lg
}

// SetLevel overrides the logger level, typically from a loaded configuration.
func SetLevel(levelStr string) {
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return
	}

	Logger().SetLevel(level)
}
