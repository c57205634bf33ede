// Package handlers executes the effects of each feature. Every handler owns
// a Scope: its tasks run concurrently, feed results back through a Commit
// func and are cancelled together when the screen is left.
//
// A task failure becomes an error notification; failures caused by
// cancellation are dropped.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/platform/httpclient"
	"github.com/jsamuelsen11/delivery-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Commit feeds a message back to the engine.
type Commit func(root.Msg)

// Notifier receives notifications for the user.
type Notifier interface {
	Push(n root.Notification)
}

// runner is embedded by every handler. It tracks tasks in a Scope and turns
// task errors into notifications.
type runner struct {
	route   string
	scope   *Scope
	notify  Notifier
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

func newRunner(route string, notify Notifier, metrics *telemetry.Metrics, logger *slog.Logger) runner {
	return runner{
		route:   route,
		scope:   NewScope(context.Background()),
		notify:  notify,
		metrics: metrics,
		logger:  logger.With(slog.String("route", route)),
	}
}

// Route returns the route whose effects the handler executes.
func (r *runner) Route() string { return r.route }

// Terminate cancels the handler's in-flight tasks.
func (r *runner) Terminate() {
	r.scope.Terminate()
	r.logger.Debug("handler scope terminated")
	if r.metrics != nil {
		r.metrics.EngineTerminations.Add(context.Background(), 1,
			metric.WithAttributes(telemetry.AttrRoute.String(r.route)))
	}
}

// Close cancels the handler's tasks and waits for them.
func (r *runner) Close() { r.scope.Close() }

// Terminations returns how many times the handler's scope was cancelled.
func (r *runner) Terminations() int64 { return r.scope.Terminations() }

// launch runs task in the handler's scope. The task context carries a
// task ID that outbound calls send as X-Request-ID.
func (r *runner) launch(effect string, task func(ctx context.Context) error) {
	r.scope.Go(func(ctx context.Context) {
		taskID := uuid.NewString()
		ctx = httpclient.WithRequestID(ctx, taskID)
		logger := r.logger.With(
			slog.String("effect", effect),
			slog.String("task_id", taskID),
			slog.String("visit_id", httpclient.CorrelationID(ctx)),
		)

		start := time.Now()
		err := task(ctx)
		if err == nil || ctx.Err() != nil || errors.Is(err, context.Canceled) {
			logger.Debug("effect finished", slog.Duration("duration", time.Since(start)))
			return
		}
		r.fail(ctx, logger, effect, err)
	})
}

func (r *runner) fail(ctx context.Context, logger *slog.Logger, effect string, err error) {
	logger.Error("effect failed", slog.String("error", err.Error()))
	if r.metrics != nil {
		r.metrics.EngineTaskFailures.Add(ctx, 1, metric.WithAttributes(
			telemetry.AttrRoute.String(r.route),
			telemetry.AttrEffect.String(effect),
		))
	}
	r.notify.Push(root.ErrorNotification(err.Error()))
}

// collect commits wrap(v) for every value of stream until it ends, fails or
// ctx is done. Nothing is committed once ctx is done.
func collect[T any](ctx context.Context, stream ports.Stream[T], commit Commit, wrap func(T) root.Msg) error {
	for v, err := range stream {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		commit(wrap(v))
	}
	return nil
}
