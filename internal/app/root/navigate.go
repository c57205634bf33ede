package root

import (
	"fmt"
	"slices"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/cart"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dish"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dishes"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/favorites"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/home"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/menu"
)

// reduceNavigate applies cmd. Forward commands push the active screen and
// install a fresh one; Back restores the most recently pushed screen as it
// was. Every outcome ends with exactly one Terminate for the route left.
func reduceNavigate(s RootState, cmd NavCmd) (RootState, []Eff) {
	leaving := Terminate{Route: s.CurrentRoute}

	var (
		next RootState
		effs []Eff
	)
	switch c := cmd.(type) {
	case Back:
		next, effs = back(s)
	case ToCart:
		next, effs = forward(s, CartScreen{State: cart.InitialState()})
	case ToCategory:
		next, effs = forward(s, DishesScreen{State: dishes.InitialState(c.ID, c.Title)})
	case ToDishItem:
		next, effs = forward(s, DishScreen{State: dish.InitialState(c.ID, c.Title)})
	case To:
		next, effs = forward(s, namedScreen(c.Route))
	default:
		panic(fmt.Sprintf("root: unhandled navigation command %T", cmd))
	}
	return next, append(effs, leaving)
}

// NamedRoute reports whether To can navigate to route. Any other route
// makes the reducer panic, so input from outside the process must be
// checked first.
func NamedRoute(route string) bool {
	switch route {
	case home.Route, menu.Route, favorites.Route:
		return true
	}
	return false
}

// namedScreen returns the fresh screen for an unparameterized route.
func namedScreen(route string) ScreenState {
	switch route {
	case home.Route:
		return HomeScreen{State: home.InitialState()}
	case menu.Route:
		return MenuScreen{State: menu.InitialState()}
	case favorites.Route:
		return FavoritesScreen{State: favorites.InitialState()}
	default:
		panic(fmt.Sprintf("root: no navigation for route %q", route))
	}
}

func forward(s RootState, sc ScreenState) (RootState, []Eff) {
	backstack := make([]ScreenState, len(s.Backstack), len(s.Backstack)+1)
	copy(backstack, s.Backstack)
	s.Backstack = append(backstack, s.Current())
	s.CurrentRoute = sc.Route()
	s = s.withScreen(sc)
	return s, sc.InitialEffects()
}

func back(s RootState) (RootState, []Eff) {
	if len(s.Backstack) == 0 {
		return s, []Eff{Cmd{Command: Finish}}
	}
	prev := s.Backstack[len(s.Backstack)-1]
	s.Backstack = slices.Clip(s.Backstack[:len(s.Backstack)-1])
	s.CurrentRoute = prev.Route()
	s = s.withScreen(prev)
	return s, prev.InitialEffects()
}
