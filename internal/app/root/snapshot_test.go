package root_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dish"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/dishes"
	"github.com/jsamuelsen11/delivery-core/internal/app/feature/menu"
	"github.com/jsamuelsen11/delivery-core/internal/app/root"
	"github.com/jsamuelsen11/delivery-core/internal/domain"
	domaindish "github.com/jsamuelsen11/delivery-core/internal/domain/dish"
)

func TestEncodeDecode_RoundTrip(t *testing.T) {
	t.Parallel()

	s := navigate(t, root.InitialState(), root.To{Route: menu.Route}, root.ToCategory{ID: "c1", Title: "Soups"})
	s, _ = root.Reduce(s, root.DishesMsg{Msg: dishes.ShowDishes{Dishes: []domaindish.Item{{ID: "7", Title: "Soup", Price: 300}}}})
	s, _ = root.Reduce(s, root.DishesMsg{Msg: dishes.ShowSuggestion{Suggestions: map[string]int{"soup": 2}}})
	s = navigate(t, s, root.ToDishItem{ID: "7", Title: "Soup"})
	s, _ = root.Reduce(s, root.DishMsg{Msg: dish.ShowDish{Dish: domaindish.Dish{ID: "7", Title: "Soup", Price: 300, Rating: 4.5}}})
	s, _ = root.Reduce(s, root.DishMsg{Msg: dish.SendReview{DishID: "7", Rating: 5, Review: "Hot"}})
	s.CartCount = 4
	s.User = &domain.User{ID: "u1", Name: "Ann"}

	b, err := root.Encode(s)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := root.Decode(b)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if !reflect.DeepEqual(got, s) {
		t.Errorf("Decode(Encode(s)) = %+v\nwant %+v", got, s)
	}
}

func TestEncodeDecode_InitialState(t *testing.T) {
	t.Parallel()

	b, err := root.Encode(root.InitialState())
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	got, err := root.Decode(b)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if !reflect.DeepEqual(got, root.InitialState()) {
		t.Errorf("Decode(Encode(InitialState())) = %+v, want initial state", got)
	}
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
	}{
		{name: "not json", in: "{"},
		{name: "no screens", in: `{"current_route":"home"}`},
		{name: "unknown route", in: `{"current_route":"home","screens":{"nowhere":{"route":"nowhere","state":{}}}}`},
		{name: "screen under wrong key", in: `{"current_route":"home","screens":{"home":{"route":"menu","state":{}}}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := root.Decode([]byte(tt.in))
			if !errors.Is(err, root.ErrInvalidSnapshot) {
				t.Errorf("Decode() error = %v, want ErrInvalidSnapshot", err)
			}
		})
	}
}

func TestValidate_MissingCurrentScreen(t *testing.T) {
	t.Parallel()

	s := root.InitialState()
	s.CurrentRoute = "nowhere"
	if err := s.Validate(); !errors.Is(err, root.ErrInvalidSnapshot) {
		t.Errorf("Validate() error = %v, want ErrInvalidSnapshot", err)
	}
	if err := root.InitialState().Validate(); err != nil {
		t.Errorf("Validate() on initial state error = %v, want nil", err)
	}
}
