package handlers

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/delivery-core/internal/platform/httpclient"
)

// Scope owns the in-flight tasks of one handler. Terminate cancels every
// task started so far and installs a fresh context for the tasks that
// follow, so a handler survives any number of terminations.
//
// Each generation is one visit of the screen. Its context carries a fresh
// correlation ID, so every delivery API call made for the visit shares an
// X-Correlation-ID.
type Scope struct {
	mu     sync.Mutex
	parent context.Context
	ctx    context.Context
	cancel context.CancelFunc
	tasks  sync.WaitGroup

	terminations atomic.Int64
}

// NewScope returns a scope whose contexts derive from parent.
func NewScope(parent context.Context) *Scope {
	ctx, cancel := generation(parent)
	return &Scope{parent: parent, ctx: ctx, cancel: cancel}
}

func generation(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return httpclient.WithCorrelationID(ctx, uuid.NewString()), cancel
}

// Context returns the context of the current generation.
func (s *Scope) Context() context.Context {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctx
}

// Go runs fn on its own goroutine with the current generation's context.
func (s *Scope) Go(fn func(ctx context.Context)) {
	ctx := s.Context()
	s.tasks.Go(func() { fn(ctx) })
}

// Terminate cancels the current generation and starts a new one.
func (s *Scope) Terminate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancel()
	s.ctx, s.cancel = generation(s.parent)
	s.terminations.Add(1)
}

// Terminations returns how many times Terminate ran.
func (s *Scope) Terminations() int64 {
	return s.terminations.Load()
}

// Close cancels every task and waits for them to return. Tasks started
// after Close observe a cancelled context.
func (s *Scope) Close() {
	s.mu.Lock()
	s.cancel()
	s.mu.Unlock()
	s.tasks.Wait()
}
