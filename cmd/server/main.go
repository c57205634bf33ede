// Package main is the entry point of the delivery host shell. It wires all
// dependencies using samber/do v2, restores the last state snapshot, runs
// the state engine behind the HTTP host shell, and on SIGINT/SIGTERM shuts
// down and snapshots the final state.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/clients/acl"
	adapthttp "github.com/jsamuelsen11/delivery-core/internal/adapters/http"
	"github.com/jsamuelsen11/delivery-core/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/delivery-core/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/delivery-core/internal/adapters/repository"
	"github.com/jsamuelsen11/delivery-core/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/delivery-core/internal/app/dispatch"
	"github.com/jsamuelsen11/delivery-core/internal/app/engine"
	apphandlers "github.com/jsamuelsen11/delivery-core/internal/app/handlers"
	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/platform/config"
	"github.com/jsamuelsen11/delivery-core/internal/platform/health"
	"github.com/jsamuelsen11/delivery-core/internal/platform/httpclient"
	"github.com/jsamuelsen11/delivery-core/internal/platform/logging"
	"github.com/jsamuelsen11/delivery-core/internal/platform/telemetry"
	"github.com/jsamuelsen11/delivery-core/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	snapshotTimeout       = 5 * time.Second

	deliveryAPIName = "delivery-api"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, sinks, err := logging.NewWithSinks(cfg.Log.Level, cfg.Log.Format, os.Stderr, logging.Sinks{
		File:    cfg.Log.File,
		Journal: cfg.Log.Journal,
	})
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer closeQuietly(sinks)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	db, err := do.Invoke[*sqlite.DB](injector)
	if err != nil {
		return fmt.Errorf("opening local cache: %w", err)
	}
	defer closeQuietly(db)

	// The engine starts from the last snapshot when there is a usable one.
	snapshots := do.MustInvoke[ports.SnapshotStore](injector)
	do.ProvideValue(injector, restoreState(ctx, snapshots, cfg.Engine.SnapshotKey, logger))

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(db)
	registry.Register(do.MustInvoke[*httpclient.Client](injector))

	// Start the engine loop, then the host shell.
	eng := do.MustInvoke[*engine.Engine](injector)
	registry.Register(eng)
	engineCtx, stopEngine := context.WithCancel(ctx)
	defer stopEngine()
	engineDone := make(chan error, 1)
	go func() {
		engineDone <- eng.Run(engineCtx)
	}()

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		runErr = fmt.Errorf("server failed: %w", err)
		serverErr <- nil
	}

	// Graceful shutdown: end streams and drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}
	<-serverErr

	// Stop the engine; Run returns once every effect task has finished.
	stopEngine()
	if err := <-engineDone; err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("engine stopped with error", slog.Any("error", err))
	}
	do.MustInvoke[*engine.Notifications](injector).Close()
	do.MustInvoke[*engine.Commands](injector).Close()

	saveState(snapshots, cfg.Engine.SnapshotKey, eng.State(), logger)

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return runErr
}

// restoreState loads the snapshot stored under key. A missing or unusable
// snapshot starts a fresh session.
func restoreState(ctx context.Context, store ports.SnapshotStore, key string, logger *slog.Logger) root.RootState {
	data, err := store.Load(ctx, key)
	if err != nil {
		logger.Info("starting fresh session", slog.String("reason", err.Error()))
		return root.InitialState()
	}
	s, err := root.Decode(data)
	if err != nil {
		logger.Warn("discarding state snapshot", slog.Any("error", err))
		return root.InitialState()
	}
	logger.Info("state restored", slog.String("route", s.CurrentRoute), slog.Int("backstack", len(s.Backstack)))
	return s
}

// saveState stores s under key. Failures are logged: the next start falls
// back to a fresh session.
func saveState(store ports.SnapshotStore, key string, s root.RootState, logger *slog.Logger) {
	data, err := root.Encode(s)
	if err != nil {
		logger.Error("encoding state snapshot", slog.Any("error", err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()
	if err := store.Save(ctx, key, data); err != nil {
		logger.Error("saving state snapshot", slog.Any("error", err))
		return
	}
	logger.Info("state saved", slog.String("route", s.CurrentRoute), slog.Int("bytes", len(data)))
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	registerAdapters(injector, cfg, logger)
	registerEngine(injector, logger)
	registerHostShell(injector, cfg, logger)
}

// registerAdapters provides the outbound side: delivery API, local cache
// and the repositories over both.
func registerAdapters(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Client, deliveryAPIName, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DeliveryClient, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return acl.NewDeliveryClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*sqlite.DB, error) {
		return sqlite.Open(cfg.Storage.Path)
	})

	do.Provide(injector, func(i do.Injector) (ports.SnapshotStore, error) {
		return sqlite.NewSnapshots(do.MustInvoke[*sqlite.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DishesRepository, error) {
		db := do.MustInvoke[*sqlite.DB](i)
		api := do.MustInvoke[ports.DeliveryClient](i)
		return repository.NewDishes(db, api, cfg.Engine.SyncWorkers, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DishRepository, error) {
		db := do.MustInvoke[*sqlite.DB](i)
		api := do.MustInvoke[ports.DeliveryClient](i)
		return repository.NewDish(db, api, cfg.Engine.ReviewPageSize, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CartRepository, error) {
		return repository.NewCart(do.MustInvoke[*sqlite.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CategoriesRepository, error) {
		return repository.NewCategories(do.MustInvoke[*sqlite.DB](i)), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.RootRepository, error) {
		db := do.MustInvoke[*sqlite.DB](i)
		api := do.MustInvoke[ports.DeliveryClient](i)
		return repository.NewRoot(db, api, cfg.Engine.DishesPageSize, logger), nil
	})
}

// registerEngine provides the effect handlers, the dispatcher, the output
// queues and the engine. The engine's initial state is provided by run.
func registerEngine(injector *do.RootScope, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (*engine.Notifications, error) {
		return engine.NewNotifications(), nil
	})

	do.Provide(injector, func(_ do.Injector) (*engine.Commands, error) {
		return engine.NewCommands(), nil
	})

	do.Provide(injector, func(i do.Injector) (*dispatch.Dispatcher, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		notify := do.MustInvoke[*engine.Notifications](i)
		dishes := do.MustInvoke[ports.DishesRepository](i)

		h := dispatch.Handlers{
			Home:      apphandlers.NewHome(dishes, notify, metrics, logger),
			Menu:      apphandlers.NewMenu(do.MustInvoke[ports.CategoriesRepository](i), notify, metrics, logger),
			Dishes:    apphandlers.NewDishes(dishes, notify, metrics, logger),
			Dish:      apphandlers.NewDish(do.MustInvoke[ports.DishRepository](i), notify, metrics, logger),
			Cart:      apphandlers.NewCart(do.MustInvoke[ports.CartRepository](i), notify, metrics, logger),
			Favorites: apphandlers.NewFavorites(dishes, notify, metrics, logger),
			Global:    apphandlers.NewGlobal(do.MustInvoke[ports.RootRepository](i), notify, metrics, logger),
		}
		return dispatch.New(h, notify, do.MustInvoke[*engine.Commands](i), metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*engine.Engine, error) {
		initial := do.MustInvoke[root.RootState](i)
		d := do.MustInvoke[*dispatch.Dispatcher](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return engine.New(initial, d, metrics, logger), nil
	})
}

// registerHostShell provides the inbound HTTP side.
func registerHostShell(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.EngineHandler, error) {
		return handlers.NewEngineHandler(
			do.MustInvoke[*engine.Engine](i),
			do.MustInvoke[*engine.Notifications](i),
			do.MustInvoke[*engine.Commands](i),
			logger,
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(registry), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		engineH := do.MustInvoke[*handlers.EngineHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(engineH, healthH, cfg.Server.WriteTimeout,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
