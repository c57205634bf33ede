// Package dispatch routes the effects produced by the root reducer to the
// handler that executes them.
//
// Terminate effects of a batch run before any other effect of the same
// batch, so a screen re-entered in one step keeps the work started for it.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/cart"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dish"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dishes"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/favorites"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/home"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/menu"
	"github.com/jsamuelsen11/delivery-core/internal/app/handlers"
	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/platform/telemetry"
)

// CommandSink receives host commands.
type CommandSink interface {
	Push(c root.Command)
}

// Handlers groups the effect handlers the dispatcher routes to.
type Handlers struct {
	Home      *handlers.Home
	Menu      *handlers.Menu
	Dishes    *handlers.Dishes
	Dish      *handlers.Dish
	Cart      *handlers.Cart
	Favorites *handlers.Favorites
	Global    *handlers.Global
}

type terminator interface {
	Route() string
	Terminate()
	Close()
}

// Dispatcher executes effect batches.
type Dispatcher struct {
	h        Handlers
	byRoute  map[string]terminator
	notify   handlers.Notifier
	commands CommandSink
	metrics  *telemetry.Metrics
	logger   *slog.Logger
}

// New creates a dispatcher over h. Every field of h must be set.
func New(h Handlers, notify handlers.Notifier, commands CommandSink, metrics *telemetry.Metrics, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		h:        h,
		notify:   notify,
		commands: commands,
		metrics:  metrics,
		logger:   logger,
	}
	d.byRoute = make(map[string]terminator, 6)
	for _, t := range []terminator{h.Home, h.Menu, h.Dishes, h.Dish, h.Cart, h.Favorites} {
		d.byRoute[t.Route()] = t
	}
	return d
}

// Dispatch executes effs. Terminate effects run inline and first; every
// other effect runs concurrently in the scope of its handler. Effects that
// commit run on their own goroutine so commit may block.
func (d *Dispatcher) Dispatch(effs []root.Eff, commit handlers.Commit) {
	for _, eff := range effs {
		if t, ok := eff.(root.Terminate); ok {
			d.record(eff)
			d.terminate(t.Route)
		}
	}
	for _, eff := range effs {
		if _, ok := eff.(root.Terminate); ok {
			continue
		}
		d.record(eff)
		d.dispatch(eff, commit)
	}
}

func (d *Dispatcher) dispatch(eff root.Eff, commit handlers.Commit) {
	switch e := eff.(type) {
	case root.HomeEff:
		d.h.Home.Handle(e.Eff, commit)
	case root.MenuEff:
		d.h.Menu.Handle(e.Eff, commit)
	case root.DishesEff:
		d.h.Dishes.Handle(e.Eff, commit)
	case root.DishEff:
		d.h.Dish.Handle(e.Eff, commit)
	case root.CartEff:
		d.h.Cart.Handle(e.Eff, commit)
	case root.FavoriteEff:
		d.h.Favorites.Handle(e.Eff, commit)
	case root.Nav:
		go commit(root.Navigate{Cmd: e.Cmd})
	case root.Cmd:
		d.commands.Push(e.Command)
	case root.Notify:
		d.notify.Push(e.Notification)
	case root.SyncCounter, root.SyncEntity, root.AddToCartEff, root.RemoveFromCartEff, root.ToggleLikeEff:
		d.h.Global.Handle(e, commit)
	default:
		d.logger.Warn("unhandled effect", slog.String("effect", Name(eff)))
	}
}

func (d *Dispatcher) terminate(route string) {
	t, ok := d.byRoute[route]
	if !ok {
		d.logger.Warn("terminate for unknown route", slog.String("route", route))
		return
	}
	t.Terminate()
}

func (d *Dispatcher) record(eff root.Eff) {
	name := Name(eff)
	d.logger.Debug("dispatching effect", slog.String("effect", name))
	if d.metrics != nil {
		d.metrics.EngineEffectsTotal.Add(context.Background(), 1,
			metric.WithAttributes(telemetry.AttrEffect.String(name)))
	}
}

// Shutdown cancels every handler and waits for their tasks to return.
func (d *Dispatcher) Shutdown() {
	for _, t := range d.byRoute {
		t.Close()
	}
	d.h.Global.Close()
}

// Name returns a stable label for eff used in logs and metrics, such as
// "dish.LoadReviews" or "root.Terminate".
func Name(eff root.Eff) string {
	switch e := eff.(type) {
	case root.HomeEff:
		return typeName(home.Route, e.Eff)
	case root.MenuEff:
		return typeName(menu.Route, e.Eff)
	case root.DishesEff:
		return typeName(dishes.Route, e.Eff)
	case root.DishEff:
		return typeName(dish.Route, e.Eff)
	case root.CartEff:
		return typeName(cart.Route, e.Eff)
	case root.FavoriteEff:
		return typeName(favorites.Route, e.Eff)
	default:
		return fmt.Sprintf("%T", eff)
	}
}

func typeName(route string, eff any) string {
	name := fmt.Sprintf("%T", eff)
	return route + name[strings.LastIndexByte(name, '.'):]
}
