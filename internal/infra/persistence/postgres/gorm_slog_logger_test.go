package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"mart/config"
	deliverycontext "mart/internal/delivery/context"
	"mart/internal/errors"
)

func newBufferedGormLogger(debug bool) (logger.Interface, *bytes.Buffer) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), cfg), &buf
}

func sqlFn() (string, int64) {
	return "SELECT 1", 1
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("debug logs every query", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)
		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "GORM query")
		assert.Contains(t, buf.String(), "SELECT 1")
	})

	t.Run("warn level skips fast queries", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, nil)
		assert.Empty(t, buf.String())
	})

	t.Run("slow query", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn, nil)
		assert.Contains(t, buf.String(), "GORM slow query")
	})

	t.Run("failed query", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, errors.New("syntax error"))
		assert.Contains(t, buf.String(), "GORM query failed")
		assert.Contains(t, buf.String(), "syntax error")
	})

	t.Run("record not found is ignored", func(t *testing.T) {
		l, buf := newBufferedGormLogger(false)
		l.Trace(ctx, time.Now(), sqlFn, gorm.ErrRecordNotFound)
		assert.Empty(t, buf.String())
	})

	t.Run("silent", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)
		l.LogMode(logger.Silent).Trace(ctx, time.Now(), sqlFn, errors.New("syntax error"))
		assert.Empty(t, buf.String())
	})

	t.Run("request logger carries request id", func(t *testing.T) {
		l, buf := newBufferedGormLogger(true)
		base := l.(*gormSlogLogger).logger
		reqCtx := deliverycontext.WithLogger(ctx, base.With(slog.String("request_id", "req-7")))

		l.Trace(reqCtx, time.Now(), sqlFn, nil)
		assert.Contains(t, buf.String(), "request_id=req-7")
	})
}

func TestGormSlogLogger_Messages(t *testing.T) {
	l, buf := newBufferedGormLogger(false)

	l.Info(context.Background(), "skipped %d", 1)
	assert.Empty(t, buf.String())

	l.Warn(context.Background(), "pool %s", "busy")
	assert.Contains(t, buf.String(), `msg="GORM WARN"`)
	assert.Contains(t, buf.String(), `message="pool busy"`)
}
