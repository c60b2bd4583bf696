package logger

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func resetLogger(t *testing.T) {
	t.Helper()
	log = nil
	once = sync.Once{}
	t.Cleanup(func() {
		log = nil
		once = sync.Once{}
	})
}

func TestInitAndContextLogging(t *testing.T) {
	resetLogger(t)
	Init("development")
	require.NotNil(t, GetLogger())

	ctx := context.WithValue(context.Background(), "request_id", "req-1")
	require.NotNil(t, WithContext(ctx))

	Info(ctx, "info")
	Debug(ctx, "debug")
	Warn(ctx, "warn")
	Error(ctx, "error")
	LogRequest(ctx, "GET", "/api/", 200, 10*time.Millisecond, "127.0.0.1")
	LogRequest(ctx, "GET", "/api/users/", 500, time.Millisecond, "127.0.0.1")
	SetLevel(zapcore.WarnLevel)
	Sync()
}

func TestGetLogger_BeforeInitIsNop(t *testing.T) {
	resetLogger(t)
	require.NotNil(t, GetLogger())
	require.NotPanics(t, func() {
		Info(context.Background(), "dropped")
		SetLevel(zapcore.DebugLevel)
		Sync()
	})
}

func TestWithContextNilAndTypedKey(t *testing.T) {
	resetLogger(t)
	Init("production")

	//nolint:staticcheck // nil context is tolerated on purpose
	require.NotNil(t, WithContext(nil))

	ctx := context.WithValue(context.Background(), RequestIDKey, "typed-req-id")
	require.NotNil(t, WithContext(ctx))
	require.NotNil(t, WithContext(context.Background()))
}

func TestInit_PanicWhenLoggerBuildFails(t *testing.T) {
	resetLogger(t)
	origBuild := buildLogger
	t.Cleanup(func() { buildLogger = origBuild })

	buildLogger = func(zap.Config) (*zap.Logger, error) {
		return nil, errors.New("build failed")
	}

	require.Panics(t, func() { Init("production") })
}
