package ports

import (
	"context"
	"iter"

	"github.com/jsamuelsen11/delivery-core/internal/domain/cart"
	"github.com/jsamuelsen11/delivery-core/internal/domain/category"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
)

// Stream yields successive results of a query: the current one first, then
// a new one after every local change that alters it. Iteration ends when
// the context of the call that produced the stream is done; a non-nil error
// ends it as well.
type Stream[T any] = iter.Seq2[T, error]

// DishesRepository serves the listing screens: home, category listings and
// favorites.
type DishesRepository interface {
	FindBest(ctx context.Context) Stream[[]dish.Item]
	FindPopular(ctx context.Context) Stream[[]dish.Item]

	// Recommended fetches the recommended dish IDs from the API.
	Recommended(ctx context.Context) ([]string, error)

	// FindRecommended streams the locally known dishes among ids.
	FindRecommended(ctx context.Context, ids []string) Stream[[]dish.Item]

	// SyncRecommended fetches the dishes with the given ids and stores them.
	SyncRecommended(ctx context.Context, ids []string) ([]dish.Item, error)

	FindDishesByCategory(ctx context.Context, category string) Stream[[]dish.Item]

	// SearchDishes streams the dishes of category whose title contains
	// query. An empty query lists the whole category.
	SearchDishes(ctx context.Context, category, query string) Stream[[]dish.Item]

	// FindSuggestions streams title words matching query with their counts.
	FindSuggestions(ctx context.Context, category, query string) Stream[map[string]int]

	FindFavoriteDishes(ctx context.Context) Stream[[]dish.Item]
	SearchFavoriteDishes(ctx context.Context, query string) Stream[[]dish.Item]
	FindFavoriteSuggestions(ctx context.Context, query string) Stream[map[string]int]
}

// DishRepository serves the dish detail screen.
type DishRepository interface {
	// FindDish streams the stored dish. Returns domain.ErrNotFound through
	// the stream when the dish is not cached.
	FindDish(ctx context.Context, id string) Stream[dish.Dish]

	// AddToCart adds count units of the dish to the cart.
	AddToCart(ctx context.Context, id string, count int) error

	// CartCount returns the number of units in the cart.
	CartCount(ctx context.Context) (int, error)

	// LoadReviews fetches every review page of the dish.
	LoadReviews(ctx context.Context, dishID string) ([]dish.Review, error)

	SendReview(ctx context.Context, dishID string, rating int, text string) (*dish.Review, error)
}

// CartRepository serves the cart screen.
type CartRepository interface {
	LoadItems(ctx context.Context) Stream[[]cart.Item]
	IncrementItem(ctx context.Context, dishID string) error

	// DecrementItem removes one unit; the line disappears at zero.
	DecrementItem(ctx context.Context, dishID string) error

	RemoveItem(ctx context.Context, dishID string) error
	ClearCart(ctx context.Context) error
}

// CategoriesRepository serves the menu screen.
type CategoriesRepository interface {
	FindCategories(ctx context.Context) Stream[[]category.Item]
}

// RootRepository serves the effects that do not belong to a screen.
type RootRepository interface {
	// CartCount streams the number of units in the cart.
	CartCount(ctx context.Context) Stream[int]

	IsEmptyDishes(ctx context.Context) (bool, error)

	// SyncDishes downloads the whole catalogue into the local cache.
	SyncDishes(ctx context.Context) error

	IsEmptyCategories(ctx context.Context) (bool, error)

	// SyncCategories downloads the category tree into the local cache.
	SyncCategories(ctx context.Context) error

	AddDishToCart(ctx context.Context, dishID string) error

	// RemoveDishFromCart removes one unit; the line disappears at zero.
	RemoveDishFromCart(ctx context.Context, dishID string) error

	InsertFavorite(ctx context.Context, dishID string) error
	RemoveFavorite(ctx context.Context, dishID string) error
}
