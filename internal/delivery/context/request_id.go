// Package context carries request-scoped values (request id, logger and the
// authenticated user) between the HTTP layer and the use cases.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is echoed on every response and forwarded to the worker.
	HeaderXRequestID = "X-Request-Id"
)

func fromContext[T any](ctx context.Context, key ContextKey) (T, bool) {
	value, ok := ctx.Value(key).(T)

	return value, ok
}

func fromEcho[T any](c echo.Context, key ContextKey) (T, bool) {
	value, ok := c.Get(string(key)).(T)

	return value, ok
}

// GetRequestID returns the request id set by the request id middleware,
// generating one for contexts that never passed through it.
func GetRequestID(c echo.Context) string {
	if id, ok := fromEcho[string](c, KeyRequestID); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext returns "" when ctx carries no request id.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := fromContext[string](ctx, KeyRequestID)

	return id
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := fromContext[*slog.Logger](ctx, KeyLogger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when
// ctx has none (background jobs, tests).
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}
