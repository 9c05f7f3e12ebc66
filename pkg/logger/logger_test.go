package logger_test

import (
	"context"
	"testing"

	"storefront/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name        string
		environment string
		debug       bool
	}{
		{name: "development", environment: logger.DevelopmentEnvironment, debug: true},
		{name: "production", environment: logger.ProductionEnvironment, debug: false},
		{name: "unknown falls back to development", environment: "staging", debug: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := logger.New(tt.environment)
			require.NoError(t, err)
			require.NotNil(t, l)

			ctx := logger.WithLogger(context.Background(), l)
			require.Equal(t, tt.debug, logger.IsDebug(ctx))
		})
	}
}

func TestGetWithoutLogger(t *testing.T) {
	l := logger.Get(context.Background())
	require.NotNil(t, l, "a no-op logger is returned when the context carries none")

	require.NotPanics(t, func() {
		logger.Info(context.Background(), "dropped")
	})
}

func TestWithLogger(t *testing.T) {
	custom := zap.NewExample()
	ctx := logger.WithLogger(context.Background(), custom)

	require.Equal(t, custom, logger.Get(ctx))
}

func TestWithFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	ctx = logger.WithFields(ctx, zap.String("request_id", "abc"), zap.Int("attempt", 2))
	logger.Info(ctx, "purchase recorded")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "purchase recorded", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "abc", fields["request_id"])
	require.EqualValues(t, 2, fields["attempt"])
}

func TestLoggingFunctions(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := logger.WithLogger(context.Background(), zap.New(core))

	logger.Debug(ctx, "debug message", zap.String("key", "value"))
	logger.Info(ctx, "info message")
	logger.Warn(ctx, "warn message")
	logger.Error(ctx, "error message")

	levels := make([]zapcore.Level, 0, 4)
	for _, e := range logs.All() {
		levels = append(levels, e.Level)
	}
	require.Equal(t, []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel}, levels)
}
