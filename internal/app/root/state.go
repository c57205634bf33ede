// Package root composes the feature screens into one application state and
// implements the root reducer and navigation.
package root

import (
	"fmt"
	"maps"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/cart"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dish"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dishes"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/favorites"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/home"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/menu"
	"github.com/jsamuelsen11/delivery-core/internal/domain"
)

// Routes lists every screen route in a stable order.
var Routes = []string{home.Route, menu.Route, dishes.Route, dish.Route, cart.Route, favorites.Route}

// ScreenState is the state of one screen. The set of implementations is
// closed: HomeScreen, MenuScreen, DishesScreen, DishScreen, CartScreen and
// FavoritesScreen.
type ScreenState interface {
	Route() string
	Title() string
	InitialEffects() []Eff
	isScreen()
}

// HomeScreen wraps the landing screen state.
type HomeScreen struct{ State home.State }

// MenuScreen wraps the category tree state.
type MenuScreen struct{ State menu.State }

// DishesScreen wraps the category listing state.
type DishesScreen struct{ State dishes.State }

// DishScreen wraps the dish detail state.
type DishScreen struct{ State dish.State }

// CartScreen wraps the cart state.
type CartScreen struct{ State cart.State }

// FavoritesScreen wraps the liked dishes listing state.
type FavoritesScreen struct{ State dishes.State }

func (HomeScreen) isScreen()      {}
func (MenuScreen) isScreen()      {}
func (DishesScreen) isScreen()    {}
func (DishScreen) isScreen()      {}
func (CartScreen) isScreen()      {}
func (FavoritesScreen) isScreen() {}

func (HomeScreen) Route() string      { return home.Route }
func (MenuScreen) Route() string      { return menu.Route }
func (DishesScreen) Route() string    { return dishes.Route }
func (DishScreen) Route() string      { return dish.Route }
func (CartScreen) Route() string      { return cart.Route }
func (FavoritesScreen) Route() string { return favorites.Route }

func (HomeScreen) Title() string      { return "Home" }
func (MenuScreen) Title() string      { return "Menu" }
func (s DishesScreen) Title() string  { return s.State.Title }
func (s DishScreen) Title() string    { return s.State.Title }
func (CartScreen) Title() string      { return cart.Title }
func (FavoritesScreen) Title() string { return favorites.Title }

// InitialEffects returns the home screen's load effects.
func (HomeScreen) InitialEffects() []Eff { return liftHome(home.InitialEffects()) }

// InitialEffects returns the menu screen's load effects.
func (MenuScreen) InitialEffects() []Eff { return liftMenu(menu.InitialEffects()) }

// InitialEffects returns the listing's load effects for its category.
func (s DishesScreen) InitialEffects() []Eff {
	return liftDishes(dishes.InitialEffects(s.State.Category))
}

// InitialEffects returns the detail screen's load effects for its dish.
func (s DishScreen) InitialEffects() []Eff { return liftDish(dish.InitialEffects(s.State.ID)) }

// InitialEffects returns the cart screen's load effects.
func (CartScreen) InitialEffects() []Eff { return liftCart(cart.InitialEffects()) }

// InitialEffects returns the favorites screen's load effects.
func (FavoritesScreen) InitialEffects() []Eff { return liftFavorites(favorites.InitialEffects()) }

// RootState is the whole application state. Screens holds the last known
// state of every route and Screens[CurrentRoute] always exists. Backstack
// holds the screens to return to, most recent last.
//
// RootState values are never mutated in place: every transition copies the
// map and slice it changes.
type RootState struct {
	Screens           map[string]ScreenState
	CurrentRoute      string
	Backstack         []ScreenState
	CartCount         int
	NotificationCount int
	User              *domain.User
}

// InitialState returns the state of a fresh session: every route holds its
// zero screen and home is active.
func InitialState() RootState {
	return RootState{
		Screens: map[string]ScreenState{
			home.Route:      HomeScreen{State: home.InitialState()},
			dishes.Route:    DishesScreen{},
			favorites.Route: FavoritesScreen{State: favorites.InitialState()},
			dish.Route:      DishScreen{State: dish.InitialState("", "")},
			cart.Route:      CartScreen{State: cart.InitialState()},
			menu.Route:      MenuScreen{State: menu.InitialState()},
		},
		CurrentRoute: home.Route,
	}
}

// InitialEffects returns the effects a session starts with: cache backfill,
// the cart counter subscription and the active screen's load effects.
func InitialEffects(s RootState) []Eff {
	effs := []Eff{SyncEntity{}, SyncCounter{}}
	return append(effs, s.Current().InitialEffects()...)
}

// Current returns the active screen. It panics when CurrentRoute has no
// screen, which only a programming error can cause.
func (s RootState) Current() ScreenState {
	sc, ok := s.Screens[s.CurrentRoute]
	if !ok {
		panic(fmt.Sprintf("root: no screen for current route %q", s.CurrentRoute))
	}
	return sc
}

// withScreen returns a copy of s with sc stored under its route.
func (s RootState) withScreen(sc ScreenState) RootState {
	screens := maps.Clone(s.Screens)
	if screens == nil {
		screens = make(map[string]ScreenState, 1)
	}
	screens[sc.Route()] = sc
	s.Screens = screens
	return s
}
