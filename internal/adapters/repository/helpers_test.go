package repository

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func openDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("sqlite.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func seedDishes(t *testing.T, db *sqlite.DB, dishes ...dish.Dish) {
	t.Helper()

	if err := db.UpsertDishes(context.Background(), dishes); err != nil {
		t.Fatalf("UpsertDishes() error = %v", err)
	}
}

// pull runs stream on its own goroutine and delivers its values.
func pull[T any](ctx context.Context, stream ports.Stream[T]) <-chan T {
	out := make(chan T, 16)
	go func() {
		defer close(out)
		for v, err := range stream {
			if err != nil {
				return
			}
			out <- v
		}
	}()
	return out
}

func next[T any](t *testing.T, ch <-chan T) T {
	t.Helper()

	select {
	case v, ok := <-ch:
		if !ok {
			t.Fatal("stream ended, want a value")
		}
		return v
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for stream value")
	}
	var zero T
	return zero
}

func quiet[T any](t *testing.T, ch <-chan T) {
	t.Helper()

	select {
	case v, ok := <-ch:
		if ok {
			t.Errorf("stream yielded %v, want nothing", v)
		}
	case <-time.After(50 * time.Millisecond):
	}
}

func itemIDs(items []dish.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
