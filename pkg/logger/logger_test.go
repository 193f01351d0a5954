package logger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInitAndContextLogger(t *testing.T) {
	Init("development")
	assert.NotNil(t, GetLogger())

	// plain context has no request id
	assert.NotNil(t, WithContext(context.Background()))
	assert.NotNil(t, WithContext(nil))

	ctx := context.WithValue(context.Background(), RequestIDKey, "req-1")
	assert.NotNil(t, WithContext(ctx))

	// exercise level helpers, they must not panic
	Info(ctx, "info")
	Debug(ctx, "debug")
	Warn(ctx, "warn")
	Error(ctx, "error")
	LogRequest(ctx, "GET", "/api/leads", 200, 5*time.Millisecond, "127.0.0.1")
}
