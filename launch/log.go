package launch

import (
	"os"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// DefaultLogger returns the logger used by this package
func DefaultLogger() *logrus.Logger {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return logger
}

// SetLogger replaces the logger used by this package
func SetLogger(l *logrus.Logger) {
	logger = l
}

// NewLogger returns a new logger writing text to stderr at the given level
func NewLogger(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(level)
	return l
}

// ModuleLogger returns the package logger tagged with the module it logs for
func ModuleLogger(module string) *logrus.Entry {
	return DefaultLogger().WithField("module", module)
}
