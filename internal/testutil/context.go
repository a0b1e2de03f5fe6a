package testutil

import (
	"context"
	"log/slog"
	"testing"
	"time"
)

// ContextWithTimeout создаёт context с timeout и автоматически отменяет его при завершении теста.
func ContextWithTimeout(t testing.TB, duration time.Duration) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), duration)
	t.Cleanup(cancel)

	return ctx
}

// CancelledContext возвращает уже отменённый context.
func CancelledContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}

// DiscardLogger возвращает логгер, который ничего не пишет.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
