package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/delivery-core/internal/app/fanout"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Compile-time interface check.
var _ ports.DishesRepository = (*Dishes)(nil)

// Dishes serves the home, category listing and favorites screens.
type Dishes struct {
	db      *sqlite.DB
	api     ports.DeliveryClient
	workers int
	logger  *slog.Logger
}

// NewDishes creates the listing repository. workers bounds the concurrent
// dish fetches of SyncRecommended.
func NewDishes(db *sqlite.DB, api ports.DeliveryClient, workers int, logger *slog.Logger) *Dishes {
	return &Dishes{db: db, api: api, workers: workers, logger: logger}
}

// FindBest watches the cached best dishes.
func (r *Dishes) FindBest(ctx context.Context) ports.Stream[[]dish.Item] {
	return watch(ctx, r.db, r.db.Best)
}

// FindPopular watches the cached popular dishes.
func (r *Dishes) FindPopular(ctx context.Context) ports.Stream[[]dish.Item] {
	return watch(ctx, r.db, r.db.Popular)
}

// Recommended fetches the recommended dish IDs from the API.
func (r *Dishes) Recommended(ctx context.Context) ([]string, error) {
	return r.api.Recommended(ctx)
}

// FindRecommended watches the cached dishes among ids.
func (r *Dishes) FindRecommended(ctx context.Context, ids []string) ports.Stream[[]dish.Item] {
	return watch(ctx, r.db, func(ctx context.Context) ([]dish.Item, error) {
		return r.db.DishesByIDs(ctx, ids)
	})
}

// SyncRecommended fetches the dishes concurrently and stores those that
// arrived. The stored dishes are returned along with the joined fetch
// failures.
func (r *Dishes) SyncRecommended(ctx context.Context, ids []string) ([]dish.Item, error) {
	results := fanout.Run(ctx, r.workers, ids, func(ctx context.Context, id string) (dish.Dish, error) {
		d, err := r.api.GetDish(ctx, id)
		if err != nil {
			return dish.Dish{}, fmt.Errorf("fetching dish %s: %w", id, err)
		}
		return *d, nil
	})
	fetched, fetchErr := fanout.Split(results)

	if len(fetched) > 0 {
		if err := r.db.UpsertDishes(ctx, fetched); err != nil {
			return nil, errors.Join(err, fetchErr)
		}
	}
	r.logger.DebugContext(ctx, "recommended dishes synced",
		slog.Int("requested", len(ids)),
		slog.Int("stored", len(fetched)),
	)

	items := make([]dish.Item, len(fetched))
	for i := range fetched {
		items[i] = fetched[i].Item()
	}
	return items, fetchErr
}

// FindDishesByCategory watches every cached dish of category.
func (r *Dishes) FindDishesByCategory(ctx context.Context, category string) ports.Stream[[]dish.Item] {
	return r.SearchDishes(ctx, category, "")
}

// SearchDishes watches the dishes of category whose title matches query.
func (r *Dishes) SearchDishes(ctx context.Context, category, query string) ports.Stream[[]dish.Item] {
	return watch(ctx, r.db, func(ctx context.Context) ([]dish.Item, error) {
		return r.db.CategoryDishes(ctx, category, query)
	})
}

// FindSuggestions watches title words of category that match query, with
// their counts.
func (r *Dishes) FindSuggestions(ctx context.Context, category, query string) ports.Stream[map[string]int] {
	return watch(ctx, r.db, func(ctx context.Context) (map[string]int, error) {
		items, err := r.db.CategoryDishes(ctx, category, "")
		if err != nil {
			return nil, err
		}
		return suggestions(titles(items), query), nil
	})
}

// FindFavoriteDishes watches every favorite dish.
func (r *Dishes) FindFavoriteDishes(ctx context.Context) ports.Stream[[]dish.Item] {
	return r.SearchFavoriteDishes(ctx, "")
}

// SearchFavoriteDishes watches the favorite dishes whose title matches query.
func (r *Dishes) SearchFavoriteDishes(ctx context.Context, query string) ports.Stream[[]dish.Item] {
	return watch(ctx, r.db, func(ctx context.Context) ([]dish.Item, error) {
		return r.db.FavoriteDishes(ctx, query)
	})
}

// FindFavoriteSuggestions watches favorite title words that match query.
func (r *Dishes) FindFavoriteSuggestions(ctx context.Context, query string) ports.Stream[map[string]int] {
	return watch(ctx, r.db, func(ctx context.Context) (map[string]int, error) {
		items, err := r.db.FavoriteDishes(ctx, "")
		if err != nil {
			return nil, err
		}
		return suggestions(titles(items), query), nil
	})
}

func titles(items []dish.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}
