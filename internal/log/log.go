// Package log provides the process logger, backed by logrus.
package log

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"firestige.xyz/v6hdr/internal/config"
)

// Logger is the logging facade used across the module.
type Logger interface {
	Trace(args ...interface{})
	Tracef(format string, args ...interface{})

	Debug(args ...interface{})
	Debugf(format string, args ...interface{})

	Info(args ...interface{})
	Infof(format string, args ...interface{})

	Warn(args ...interface{})
	Warnf(format string, args ...interface{})

	Error(args ...interface{})
	Errorf(format string, args ...interface{})

	WithField(field string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
	WithError(err error) Logger

	IsTraceEnabled() bool
	IsDebugEnabled() bool
}

var (
	mu     sync.RWMutex
	logger Logger = defaultLogger()
	output *MultiWriter
)

// GetLogger returns the process logger. Before Init it logs warnings and
// above to stderr.
func GetLogger() Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

// Init replaces the process logger according to cfg. Stdout is never used:
// it carries the decoded output.
func Init(cfg config.LogConfig) error {
	l, err := newLogrusAdapter(cfg, os.Stderr)
	if err != nil {
		return err
	}

	mu.Lock()
	prev := output
	logger, output = l, l.out
	mu.Unlock()

	if prev != nil {
		return prev.Close()
	}
	return nil
}

// Close releases file appenders opened by Init.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if output == nil {
		return nil
	}
	err := output.Close()
	output = nil
	return err
}

func defaultLogger() Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&formatter{pattern: config.DefaultLogPattern, time: config.DefaultLogTime})
	return &logrusAdapter{entry: logrus.NewEntry(l)}
}

// New builds a Logger writing to out, plus the rotating file when enabled.
func New(cfg config.LogConfig, out io.Writer) (Logger, error) {
	l, err := newLogrusAdapter(cfg, out)
	if err != nil {
		return nil, err
	}
	return l, nil
}
