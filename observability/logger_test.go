package observability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lexfrei/go-algolia-monitoring/observability"
)

func TestNoopLogger(t *testing.T) {
	t.Parallel()

	logger := observability.NoopLogger()

	// All methods should execute without panicking
	logger.Debug("test debug")
	logger.Info("test info")
	logger.Warn("test warn")
	logger.Error("test error")

	newLogger := logger.With(observability.Field{Key: "key", Value: "value"})
	require.NotNil(t, newLogger)

	newLogger.Info("test with logger")
}

func TestZapLogger(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	logger := observability.NewZapLogger(zap.New(core))

	logger.Debug("debug entry", observability.Field{Key: "path", Value: "/1/status"})
	logger.Info("info entry")
	logger.Warn("warn entry", observability.Field{Key: "status", Value: 503})
	logger.Error("error entry")

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "debug entry", entries[0].Message)
	assert.Equal(t, "/1/status", entries[0].ContextMap()["path"])

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.EqualValues(t, 503, entries[2].ContextMap()["status"])

	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)
}

func TestZapLoggerWith(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	logger := observability.NewZapLogger(zap.New(core)).
		With(observability.Field{Key: "component", Value: "monitoring"})

	logger.Debug("dropped below level")
	logger.Info("kept")

	entries := logs.AllUntimed()
	require.Len(t, entries, 1)
	assert.Equal(t, "monitoring", entries[0].ContextMap()["component"])
}

func TestNewZapLoggerNil(t *testing.T) {
	t.Parallel()

	logger := observability.NewZapLogger(nil)
	require.NotNil(t, logger.Zap())

	logger.Info("goes nowhere")
}

func TestField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field observability.Field
		key   string
		value any
	}{
		{
			name:  "string value",
			field: observability.Field{Key: "name", Value: "test"},
			key:   "name",
			value: "test",
		},
		{
			name:  "int value",
			field: observability.Field{Key: "count", Value: 42},
			key:   "count",
			value: 42,
		},
		{
			name:  "nil value",
			field: observability.Field{Key: "null", Value: nil},
			key:   "null",
			value: nil,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.key, tt.field.Key)
			assert.Equal(t, tt.value, tt.field.Value)
		})
	}
}

// BenchmarkNoopLogger measures the overhead of noop logger calls.
func BenchmarkNoopLogger(b *testing.B) {
	logger := observability.NoopLogger()

	b.Run("Info", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			logger.Info("test message")
		}
	})

	b.Run("InfoWithFields", func(b *testing.B) {
		fields := []observability.Field{
			{Key: "key1", Value: "value1"},
			{Key: "key2", Value: 42},
		}

		for i := 0; i < b.N; i++ {
			logger.Info("test message", fields...)
		}
	})
}
