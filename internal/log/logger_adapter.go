package log

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"firestige.xyz/v6hdr/internal/config"
)

type logrusAdapter struct {
	entry *logrus.Entry
	out   *MultiWriter
}

func newLogrusAdapter(cfg config.LogConfig, out io.Writer) (*logrusAdapter, error) {
	l := logrus.New()
	l.SetFormatter(&formatter{
		pattern: cfg.Pattern,
		time:    cfg.Time,
	})
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	l.SetLevel(level)

	if strings.Contains(cfg.Pattern, "%caller") || strings.Contains(cfg.Pattern, "%func") {
		l.SetReportCaller(true)
	}

	w := NewMultiWriter().Add(out)
	if cfg.File.Enabled {
		w.AddFileAppender(FileAppenderOpt{
			Filename:   cfg.File.Path,
			MaxSize:    cfg.File.Rotation.MaxSizeMB,
			MaxBackups: cfg.File.Rotation.MaxBackups,
			MaxAge:     cfg.File.Rotation.MaxAgeDays,
			Compress:   cfg.File.Rotation.Compress,
		})
	}
	l.SetOutput(w)

	return &logrusAdapter{entry: logrus.NewEntry(l), out: w}, nil
}

func (l *logrusAdapter) Trace(args ...interface{}) { l.entry.Trace(args...) }
func (l *logrusAdapter) Tracef(format string, args ...interface{}) {
	l.entry.Tracef(format, args...)
}

func (l *logrusAdapter) Debug(args ...interface{}) { l.entry.Debug(args...) }
func (l *logrusAdapter) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}

func (l *logrusAdapter) Info(args ...interface{}) { l.entry.Info(args...) }
func (l *logrusAdapter) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logrusAdapter) Warn(args ...interface{}) { l.entry.Warn(args...) }
func (l *logrusAdapter) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *logrusAdapter) Error(args ...interface{}) { l.entry.Error(args...) }
func (l *logrusAdapter) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logrusAdapter) with(e *logrus.Entry) Logger { return &logrusAdapter{entry: e, out: l.out} }

func (l *logrusAdapter) WithField(field string, value interface{}) Logger {
	return l.with(l.entry.WithField(field, value))
}

func (l *logrusAdapter) WithFields(fields map[string]interface{}) Logger {
	return l.with(l.entry.WithFields(fields))
}

func (l *logrusAdapter) WithError(err error) Logger {
	return l.with(l.entry.WithError(err))
}

func (l *logrusAdapter) IsTraceEnabled() bool { return l.entry.Logger.IsLevelEnabled(logrus.TraceLevel) }
func (l *logrusAdapter) IsDebugEnabled() bool { return l.entry.Logger.IsLevelEnabled(logrus.DebugLevel) }
