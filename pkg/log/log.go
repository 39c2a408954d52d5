// Package log provides the Logger used throughout the emulator,
// backed by logrus.
package log

import (
	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used by every component.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a Logger writing plain text at the info level.
func New() Logger {
	return NewWithLevel(logrus.InfoLevel)
}

// NewWithLevel returns a Logger writing plain text at the given level.
func NewWithLevel(level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// ParseLevel returns a Logger at the named level ("debug", "info", ...).
func ParseLevel(name string) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		return nil, err
	}
	return NewWithLevel(level), nil
}
