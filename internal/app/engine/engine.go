// Package engine runs the unidirectional data flow: messages are folded
// into the root state one at a time, the resulting effects are handed to
// the dispatcher, and the new state is published to renderers.
//
//	eng := engine.New(state, dispatcher, metrics, logger)
//	go eng.Run(ctx)
//	eng.Accept(root.Navigate{Cmd: root.ToCart{}})
//	<-eng.Updates()
//	render(eng.State())
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/delivery-core/internal/app/handlers"
	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/platform/broadcast"
	"github.com/jsamuelsen11/delivery-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.StateEngine   = (*Engine)(nil)
	_ ports.HealthChecker = (*Engine)(nil)
)

// ErrStopped is reported by HealthCheck once the mutation loop has exited.
var ErrStopped = errors.New("engine stopped")

// Dispatcher executes effect batches.
type Dispatcher interface {
	Dispatch(effs []root.Eff, commit handlers.Commit)
	Shutdown()
}

// Engine owns the root state. State may be read from any goroutine; it is
// only written by the loop started with Run.
type Engine struct {
	inbox      chan root.Msg
	done       chan struct{}
	closeOnce  sync.Once
	state      atomic.Pointer[root.RootState]
	updates    *broadcast.Signal
	dispatcher Dispatcher
	metrics    *telemetry.Metrics
	logger     *slog.Logger
}

// New creates an engine that starts from initial. If metrics is nil, metric
// recording is skipped.
func New(initial root.RootState, d Dispatcher, metrics *telemetry.Metrics, logger *slog.Logger) *Engine {
	e := &Engine{
		inbox:      make(chan root.Msg),
		done:       make(chan struct{}),
		updates:    broadcast.New(),
		dispatcher: d,
		metrics:    metrics,
		logger:     logger,
	}
	e.state.Store(&initial)
	return e
}

// Run dispatches the initial effects of the starting state and folds
// accepted messages until ctx is done. On return every handler has been
// cancelled and Accept no longer blocks.
func (e *Engine) Run(ctx context.Context) error {
	defer e.stop()

	initial := e.State()
	e.logger.Info("engine started", slog.String("route", initial.CurrentRoute))
	e.dispatcher.Dispatch(root.InitialEffects(initial), e.Accept)

	for {
		select {
		case msg := <-e.inbox:
			e.step(ctx, msg)
		case <-ctx.Done():
			e.logger.Info("engine stopping")
			return nil
		}
	}
}

func (e *Engine) step(ctx context.Context, msg root.Msg) {
	start := time.Now()
	prev := e.State()
	name := MsgName(msg)

	next, effs := root.Reduce(prev, msg)
	accepted := root.Accepts(prev, msg)
	if !accepted {
		e.logger.Debug("message dropped for inactive screen",
			slog.String("msg", name),
			slog.String("route", prev.CurrentRoute),
		)
	} else {
		e.logger.Debug("message reduced",
			slog.String("msg", name),
			slog.String("route", next.CurrentRoute),
			slog.Int("effects", len(effs)),
		)
	}

	e.dispatcher.Dispatch(effs, e.Accept)
	e.state.Store(&next)
	e.updates.Notify()

	if e.metrics != nil {
		result := "reduced"
		if !accepted {
			result = "dropped"
		}
		e.metrics.EngineMessagesTotal.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrMsg.String(name),
			telemetry.AttrResult.String(result),
		))
		e.metrics.EngineReduceDuration.Record(ctx, time.Since(start).Seconds(),
			metric.WithAttributes(telemetry.AttrMsg.String(name)))
	}
}

// Accept feeds msg to the engine. It blocks until the loop takes the
// message and returns immediately once the engine has stopped.
func (e *Engine) Accept(msg root.Msg) {
	select {
	case e.inbox <- msg:
	case <-e.done:
	}
}

// State returns the latest published state.
func (e *Engine) State() root.RootState {
	return *e.state.Load()
}

// Updates returns a channel closed at the next state publication.
func (e *Engine) Updates() <-chan struct{} {
	return e.updates.Wait()
}

// Done is closed once the engine has stopped.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// Name implements ports.HealthChecker.
func (e *Engine) Name() string { return "engine" }

// HealthCheck fails once Run has returned: accepted messages would no
// longer be folded.
func (e *Engine) HealthCheck(_ context.Context) error {
	select {
	case <-e.done:
		return ErrStopped
	default:
		return nil
	}
}

func (e *Engine) stop() {
	e.closeOnce.Do(func() {
		close(e.done)
		e.dispatcher.Shutdown()
		e.logger.Info("engine stopped")
	})
}

// MsgName returns a stable label for msg used in logs and metrics, such as
// "root.DishMsg/dish.ShowReviews".
func MsgName(msg root.Msg) string {
	switch m := msg.(type) {
	case root.HomeMsg:
		return fmt.Sprintf("%T/%T", msg, m.Msg)
	case root.MenuMsg:
		return fmt.Sprintf("%T/%T", msg, m.Msg)
	case root.DishesMsg:
		return fmt.Sprintf("%T/%T", msg, m.Msg)
	case root.DishMsg:
		return fmt.Sprintf("%T/%T", msg, m.Msg)
	case root.CartMsg:
		return fmt.Sprintf("%T/%T", msg, m.Msg)
	case root.Navigate:
		return fmt.Sprintf("%T/%T", msg, m.Cmd)
	default:
		return fmt.Sprintf("%T", msg)
	}
}
