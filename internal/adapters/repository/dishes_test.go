package repository

import (
	"context"
	"errors"
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/delivery-core/internal/domain"
	"github.com/jsamuelsen11/delivery-core/internal/domain/category"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
	"github.com/jsamuelsen11/delivery-core/mocks"
)

func TestDishes_SyncRecommended(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	api := mocks.NewMockDeliveryClient(t)
	api.EXPECT().GetDish(mock.Anything, "d1").Return(&dish.Dish{ID: "d1", Title: "Tea", Price: 100}, nil)
	api.EXPECT().GetDish(mock.Anything, "d2").Return(nil, domain.ErrUnavailable)
	api.EXPECT().GetDish(mock.Anything, "d3").Return(&dish.Dish{ID: "d3", Title: "Cake", Price: 300}, nil)

	repo := NewDishes(db, api, 2, testLogger())
	items, err := repo.SyncRecommended(context.Background(), []string{"d1", "d2", "d3"})

	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("SyncRecommended() error = %v, want ErrUnavailable", err)
	}
	if got := itemIDs(items); !slices.Equal(got, []string{"d1", "d3"}) {
		t.Errorf("SyncRecommended() items = %v, want [d1 d3]", got)
	}

	stored, err := db.DishesByIDs(context.Background(), []string{"d1", "d2", "d3"})
	if err != nil {
		t.Fatalf("DishesByIDs() error = %v", err)
	}
	if got := itemIDs(stored); !slices.Equal(got, []string{"d3", "d1"}) {
		t.Errorf("stored = %v, want [d3 d1]", got)
	}
}

func TestDishes_FindRecommended_FollowsSync(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	seedDishes(t, db, dish.Dish{ID: "d1", Title: "Tea", Price: 100})

	api := mocks.NewMockDeliveryClient(t)
	api.EXPECT().GetDish(mock.Anything, "d2").Return(&dish.Dish{ID: "d2", Title: "Cake", Price: 300}, nil)

	repo := NewDishes(db, api, 1, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	values := pull(ctx, repo.FindRecommended(ctx, []string{"d1", "d2"}))
	if got := itemIDs(next(t, values)); !slices.Equal(got, []string{"d1"}) {
		t.Fatalf("first value = %v, want [d1]", got)
	}

	if _, err := repo.SyncRecommended(ctx, []string{"d2"}); err != nil {
		t.Fatalf("SyncRecommended() error = %v", err)
	}
	if got := itemIDs(next(t, values)); !slices.Equal(got, []string{"d2", "d1"}) {
		t.Errorf("value after sync = %v, want [d2 d1]", got)
	}
}

func TestDishes_CategoryListing(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	if err := db.ReplaceCategories(context.Background(), []category.Item{
		{ID: "drinks", Title: "Drinks"},
		{ID: "cold", Title: "Cold", ParentID: "drinks"},
	}); err != nil {
		t.Fatalf("ReplaceCategories() error = %v", err)
	}
	seedDishes(t, db,
		dish.Dish{ID: "d1", Title: "Green tea", Price: 100, Category: "drinks"},
		dish.Dish{ID: "d2", Title: "Iced tea", Price: 120, Category: "cold"},
		dish.Dish{ID: "d3", Title: "Lemonade", Price: 90, Category: "cold"},
		dish.Dish{ID: "d4", Title: "Pizza", Price: 500, Category: "pizza"},
	)

	repo := NewDishes(db, mocks.NewMockDeliveryClient(t), 1, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "whole category", query: "", want: []string{"d1", "d2", "d3"}},
		{name: "search", query: "tea", want: []string{"d1", "d2"}},
	}
	for _, tt := range tests {
		got := itemIDs(next(t, pull(ctx, repo.SearchDishes(ctx, "drinks", tt.query))))
		if !slices.Equal(got, tt.want) {
			t.Errorf("%s: SearchDishes() = %v, want %v", tt.name, got, tt.want)
		}
	}

	got := next(t, pull(ctx, repo.FindSuggestions(ctx, "drinks", "te")))
	if want := map[string]int{"tea": 2}; !maps.Equal(got, want) {
		t.Errorf("FindSuggestions() = %v, want %v", got, want)
	}
}

func TestDishes_Favorites(t *testing.T) {
	t.Parallel()

	db := openDB(t)
	seedDishes(t, db,
		dish.Dish{ID: "d1", Title: "Green tea", Price: 100},
		dish.Dish{ID: "d2", Title: "Black tea", Price: 100},
	)
	repo := NewDishes(db, mocks.NewMockDeliveryClient(t), 1, testLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	values := pull(ctx, repo.FindFavoriteDishes(ctx))
	if got := next(t, values); len(got) != 0 {
		t.Fatalf("first favorites = %v, want empty", got)
	}

	if err := db.InsertFavorite(ctx, "d1"); err != nil {
		t.Fatalf("InsertFavorite() error = %v", err)
	}
	if got := itemIDs(next(t, values)); !slices.Equal(got, []string{"d1"}) {
		t.Errorf("favorites after like = %v, want [d1]", got)
	}

	sugg := next(t, pull(ctx, repo.FindFavoriteSuggestions(ctx, "gre")))
	if want := map[string]int{"green": 1}; !maps.Equal(sugg, want) {
		t.Errorf("FindFavoriteSuggestions() = %v, want %v", sugg, want)
	}
}
