// Package broadcast provides an edge-triggered change signal: any number of
// goroutines wait for the next Notify without registering first.
//
//	sig := broadcast.New()
//	go func() {
//		for {
//			<-sig.Wait()
//			render(engine.State())
//		}
//	}()
//	sig.Notify()
package broadcast

import "sync"

// Signal wakes every waiter on each Notify. The zero value is not usable;
// create one with New.
type Signal struct {
	mu sync.Mutex
	ch chan struct{}
}

// New returns a Signal with no pending notification.
func New() *Signal {
	return &Signal{ch: make(chan struct{})}
}

// Wait returns a channel closed by the next Notify. Callers re-read their
// source after it fires and call Wait again for the following change.
func (s *Signal) Wait() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ch
}

// Notify wakes every goroutine blocked on a channel returned by Wait.
func (s *Signal) Notify() {
	s.mu.Lock()
	defer s.mu.Unlock()
	close(s.ch)
	s.ch = make(chan struct{})
}
