package calculation

import "github.com/sirupsen/logrus"

// Logger is a minimal logging interface for the calculation engine.
// Implementations should be fast; the default is a no-op.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger implements Logger with no output.
type NopLogger struct{}

func (NopLogger) Debugf(format string, args ...any) {}
func (NopLogger) Infof(format string, args ...any)  {}
func (NopLogger) Warnf(format string, args ...any)  {}
func (NopLogger) Errorf(format string, args ...any) {}

// logrusLogger adapts a logrus logger to the engine's Logger interface.
type logrusLogger struct {
	l *logrus.Logger
}

// NewLogrusLogger wraps a logrus logger for use by the engine.
func NewLogrusLogger(l *logrus.Logger) Logger {
	return logrusLogger{l: l}
}

func (ll logrusLogger) Debugf(format string, args ...any) { ll.l.Debugf(format, args...) }
func (ll logrusLogger) Infof(format string, args ...any)  { ll.l.Infof(format, args...) }
func (ll logrusLogger) Warnf(format string, args ...any)  { ll.l.Warnf(format, args...) }
func (ll logrusLogger) Errorf(format string, args ...any) { ll.l.Errorf(format, args...) }
