package observability

import (
	"go.uber.org/zap"
)

// ZapLogger adapts a *zap.Logger to the Logger interface.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger wraps logger. A nil logger yields zap.NewNop().
func NewZapLogger(logger *zap.Logger) *ZapLogger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapLogger{logger: logger}
}

// Debug logs at debug level.
func (l *ZapLogger) Debug(msg string, fields ...Field) {
	l.logger.Debug(msg, zapFields(fields)...)
}

// Info logs at info level.
func (l *ZapLogger) Info(msg string, fields ...Field) {
	l.logger.Info(msg, zapFields(fields)...)
}

// Warn logs at warn level.
func (l *ZapLogger) Warn(msg string, fields ...Field) {
	l.logger.Warn(msg, zapFields(fields)...)
}

// Error logs at error level.
func (l *ZapLogger) Error(msg string, fields ...Field) {
	l.logger.Error(msg, zapFields(fields)...)
}

// With returns a child logger carrying fields on every entry.
//
//nolint:ireturn // Method must return interface to satisfy Logger interface
func (l *ZapLogger) With(fields ...Field) Logger {
	return &ZapLogger{logger: l.logger.With(zapFields(fields)...)}
}

// Zap returns the underlying logger.
func (l *ZapLogger) Zap() *zap.Logger {
	return l.logger
}

func zapFields(fields []Field) []zap.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]zap.Field, 0, len(fields))
	for _, f := range fields {
		out = append(out, zap.Any(f.Key, f.Value))
	}
	return out
}
