package root

import (
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/cart"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dish"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dishes"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/favorites"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/home"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/menu"
)

// Reduce folds msg into s. It is pure: s is never modified and the returned
// effects describe all work to perform.
//
// A feature message is applied only while its feature's screen is active.
// DishesMsg serves both the category listing and the favorites screen.
// Any other combination returns s unchanged with no effects.
func Reduce(s RootState, msg Msg) (RootState, []Eff) {
	switch m := msg.(type) {
	case Navigate:
		return reduceNavigate(s, m.Cmd)

	case UpdateCartCount:
		s.CartCount = m.Count
		return s, nil
	case ToggleLike:
		return s, []Eff{ToggleLikeEff(m)}
	case AddToCart:
		return s, []Eff{AddToCartEff(m)}
	case RemoveFromCart:
		return s, []Eff{RemoveFromCartEff(m)}
	case ClickDish:
		return s, []Eff{Nav{Cmd: ToDishItem{ID: m.DishID, Title: m.Title}}}
	}

	switch cur := s.Current().(type) {
	case DishesScreen:
		if m, ok := msg.(DishesMsg); ok {
			next, effs := dishes.Reduce(cur.State, m.Msg)
			return s.withScreen(DishesScreen{State: next}), liftDishes(effs)
		}
	case FavoritesScreen:
		if m, ok := msg.(DishesMsg); ok {
			next, effs := favorites.Reduce(cur.State, m.Msg)
			return s.withScreen(FavoritesScreen{State: next}), liftFavorites(effs)
		}
	case DishScreen:
		if m, ok := msg.(DishMsg); ok {
			next, effs := dish.Reduce(cur.State, m.Msg)
			return s.withScreen(DishScreen{State: next}), liftDish(effs)
		}
	case CartScreen:
		if m, ok := msg.(CartMsg); ok {
			next, effs := cart.Reduce(cur.State, m.Msg)
			return s.withScreen(CartScreen{State: next}), liftCart(effs)
		}
	case HomeScreen:
		if m, ok := msg.(HomeMsg); ok {
			next, effs := home.Reduce(cur.State, m.Msg)
			return s.withScreen(HomeScreen{State: next}), liftHome(effs)
		}
	case MenuScreen:
		if m, ok := msg.(MenuMsg); ok {
			next, effs := menu.Reduce(cur.State, m.Msg)
			return s.withScreen(MenuScreen{State: next}), liftMenu(effs)
		}
	}
	return s, nil
}

// Accepts reports whether Reduce would hand msg to a reducer in state s
// rather than drop it.
func Accepts(s RootState, msg Msg) bool {
	switch msg.(type) {
	case DishesMsg:
		switch s.Current().(type) {
		case DishesScreen, FavoritesScreen:
			return true
		}
		return false
	case DishMsg:
		_, ok := s.Current().(DishScreen)
		return ok
	case CartMsg:
		_, ok := s.Current().(CartScreen)
		return ok
	case HomeMsg:
		_, ok := s.Current().(HomeScreen)
		return ok
	case MenuMsg:
		_, ok := s.Current().(MenuScreen)
		return ok
	default:
		return true
	}
}

func lift[E any](effs []E, wrap func(E) Eff) []Eff {
	if len(effs) == 0 {
		return nil
	}
	out := make([]Eff, 0, len(effs))
	for _, e := range effs {
		out = append(out, wrap(e))
	}
	return out
}

func liftDishes(effs []dishes.Eff) []Eff {
	return lift(effs, func(e dishes.Eff) Eff { return DishesEff{Eff: e} })
}

func liftFavorites(effs []favorites.Eff) []Eff {
	return lift(effs, func(e favorites.Eff) Eff { return FavoriteEff{Eff: e} })
}

func liftDish(effs []dish.Eff) []Eff {
	return lift(effs, func(e dish.Eff) Eff { return DishEff{Eff: e} })
}

func liftHome(effs []home.Eff) []Eff {
	return lift(effs, func(e home.Eff) Eff { return HomeEff{Eff: e} })
}

// liftCart turns a dish click into navigation; the rest go to the cart
// handler.
func liftCart(effs []cart.Eff) []Eff {
	return lift(effs, func(e cart.Eff) Eff {
		if open, ok := e.(cart.OpenDish); ok {
			return Nav{Cmd: ToDishItem{ID: open.DishID, Title: open.Title}}
		}
		return CartEff{Eff: e}
	})
}

// liftMenu turns a leaf category click into navigation; the rest go to the
// menu handler.
func liftMenu(effs []menu.Eff) []Eff {
	return lift(effs, func(e menu.Eff) Eff {
		if open, ok := e.(menu.OpenCategory); ok {
			return Nav{Cmd: ToCategory{ID: open.ID, Title: open.Title}}
		}
		return MenuEff{Eff: e}
	})
}
