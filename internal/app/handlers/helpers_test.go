package handlers_test

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/platform/queue"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// values returns a stream yielding vs and ending.
func values[T any](vs ...T) ports.Stream[T] {
	return func(yield func(T, error) bool) {
		for _, v := range vs {
			if !yield(v, nil) {
				return
			}
		}
	}
}

// failing returns a stream that fails immediately with err.
func failing[T any](err error) ports.Stream[T] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}

// blocking returns a stream that yields nothing until ctx is done.
func blocking[T any](ctx context.Context) ports.Stream[T] {
	return func(yield func(T, error) bool) {
		<-ctx.Done()
		var zero T
		yield(zero, ctx.Err())
	}
}

// recorder collects committed messages.
type recorder struct {
	mu   sync.Mutex
	msgs []root.Msg
	ch   chan struct{}
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan struct{}, 256)}
}

func (r *recorder) commit(m root.Msg) {
	r.mu.Lock()
	r.msgs = append(r.msgs, m)
	r.mu.Unlock()
	r.ch <- struct{}{}
}

// wait blocks until n messages were committed and returns them.
func (r *recorder) wait(t *testing.T, n int) []root.Msg {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		r.mu.Lock()
		got := len(r.msgs)
		r.mu.Unlock()
		if got >= n {
			r.mu.Lock()
			defer r.mu.Unlock()
			return append([]root.Msg(nil), r.msgs...)
		}
		select {
		case <-r.ch:
		case <-deadline:
			t.Fatalf("committed %d messages within 2s, want %d", got, n)
			return nil
		}
	}
}

func (r *recorder) all() []root.Msg {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]root.Msg(nil), r.msgs...)
}

func newNotifier() *queue.Unbounded[root.Notification] {
	return queue.New[root.Notification]()
}

// nextNotification pops one notification or fails the test after 2s.
func nextNotification(t *testing.T, q *queue.Unbounded[root.Notification]) root.Notification {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	n, err := q.Pop(ctx)
	if err != nil {
		t.Fatalf("no notification within 2s: %v", err)
	}
	return n
}
