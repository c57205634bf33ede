package root

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/cart"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dish"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dishes"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/favorites"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/home"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/menu"
	"github.com/jsamuelsen11/delivery-core/internal/domain"
)

// ErrInvalidSnapshot is returned by Decode when the snapshot does not
// describe a usable RootState.
var ErrInvalidSnapshot = errors.New("invalid state snapshot")

type screenEnvelope struct {
	Route string          `json:"route"`
	State json.RawMessage `json:"state"`
}

type rootEnvelope struct {
	Screens           map[string]screenEnvelope `json:"screens"`
	CurrentRoute      string                    `json:"current_route"`
	Backstack         []screenEnvelope          `json:"backstack"`
	CartCount         int                       `json:"cart_count"`
	NotificationCount int                       `json:"notification_count"`
	User              *domain.User              `json:"user,omitempty"`
}

// Encode serializes the whole state.
func Encode(s RootState) ([]byte, error) {
	return json.Marshal(s)
}

// Decode restores a state serialized by Encode and checks that it can
// drive the reducer.
func Decode(b []byte) (RootState, error) {
	var s RootState
	if err := json.Unmarshal(b, &s); err != nil {
		return RootState{}, fmt.Errorf("%w: %w", ErrInvalidSnapshot, err)
	}
	if err := s.Validate(); err != nil {
		return RootState{}, err
	}
	return s, nil
}

// Validate reports every route missing from Screens and a current route
// without a screen.
func (s RootState) Validate() error {
	var errs []error
	for _, route := range Routes {
		if _, ok := s.Screens[route]; !ok {
			errs = append(errs, fmt.Errorf("%w: no screen for route %q", ErrInvalidSnapshot, route))
		}
	}
	if _, ok := s.Screens[s.CurrentRoute]; !ok && s.CurrentRoute != "" {
		errs = append(errs, fmt.Errorf("%w: current route %q has no screen", ErrInvalidSnapshot, s.CurrentRoute))
	}
	if s.CurrentRoute == "" {
		errs = append(errs, fmt.Errorf("%w: current route %s", ErrInvalidSnapshot, domain.MsgRequired))
	}
	return errors.Join(errs...)
}

// MarshalJSON implements json.Marshaler.
func (s RootState) MarshalJSON() ([]byte, error) {
	env := rootEnvelope{
		Screens:           make(map[string]screenEnvelope, len(s.Screens)),
		CurrentRoute:      s.CurrentRoute,
		Backstack:         make([]screenEnvelope, 0, len(s.Backstack)),
		CartCount:         s.CartCount,
		NotificationCount: s.NotificationCount,
		User:              s.User,
	}
	for route, sc := range s.Screens {
		e, err := encodeScreen(sc)
		if err != nil {
			return nil, err
		}
		env.Screens[route] = e
	}
	for _, sc := range s.Backstack {
		e, err := encodeScreen(sc)
		if err != nil {
			return nil, err
		}
		env.Backstack = append(env.Backstack, e)
	}
	return json.Marshal(env)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *RootState) UnmarshalJSON(b []byte) error {
	var env rootEnvelope
	if err := json.Unmarshal(b, &env); err != nil {
		return err
	}

	out := RootState{
		Screens:           make(map[string]ScreenState, len(env.Screens)),
		CurrentRoute:      env.CurrentRoute,
		CartCount:         env.CartCount,
		NotificationCount: env.NotificationCount,
		User:              env.User,
	}
	for route, e := range env.Screens {
		sc, err := decodeScreen(e)
		if err != nil {
			return err
		}
		if sc.Route() != route {
			return fmt.Errorf("screen %q stored under route %q", sc.Route(), route)
		}
		out.Screens[route] = sc
	}
	if len(env.Backstack) > 0 {
		out.Backstack = make([]ScreenState, 0, len(env.Backstack))
	}
	for _, e := range env.Backstack {
		sc, err := decodeScreen(e)
		if err != nil {
			return err
		}
		out.Backstack = append(out.Backstack, sc)
	}
	*s = out
	return nil
}

func encodeScreen(sc ScreenState) (screenEnvelope, error) {
	var state any
	switch v := sc.(type) {
	case HomeScreen:
		state = v.State
	case MenuScreen:
		state = v.State
	case DishesScreen:
		state = v.State
	case DishScreen:
		state = v.State
	case CartScreen:
		state = v.State
	case FavoritesScreen:
		state = v.State
	default:
		return screenEnvelope{}, fmt.Errorf("unknown screen type %T", sc)
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return screenEnvelope{}, fmt.Errorf("encoding %s screen: %w", sc.Route(), err)
	}
	return screenEnvelope{Route: sc.Route(), State: raw}, nil
}

func decodeScreen(e screenEnvelope) (ScreenState, error) {
	switch e.Route {
	case home.Route:
		return decodeInto(e, func(st home.State) ScreenState { return HomeScreen{State: st} })
	case menu.Route:
		return decodeInto(e, func(st menu.State) ScreenState { return MenuScreen{State: st} })
	case dishes.Route:
		return decodeInto(e, func(st dishes.State) ScreenState { return DishesScreen{State: st} })
	case dish.Route:
		return decodeInto(e, func(st dish.State) ScreenState { return DishScreen{State: st} })
	case cart.Route:
		return decodeInto(e, func(st cart.State) ScreenState { return CartScreen{State: st} })
	case favorites.Route:
		return decodeInto(e, func(st dishes.State) ScreenState { return FavoritesScreen{State: st} })
	default:
		return nil, fmt.Errorf("unknown screen route %q", e.Route)
	}
}

func decodeInto[T any](e screenEnvelope, wrap func(T) ScreenState) (ScreenState, error) {
	var st T
	if len(e.State) > 0 {
		if err := json.Unmarshal(e.State, &st); err != nil {
			return nil, fmt.Errorf("decoding %s screen: %w", e.Route, err)
		}
	}
	return wrap(st), nil
}
