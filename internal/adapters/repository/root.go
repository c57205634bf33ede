package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Compile-time interface check.
var _ ports.RootRepository = (*Root)(nil)

const defaultDishesPageSize = 100

// Root serves the effects shared by every screen: cart counter, cache
// backfill and favorites.
type Root struct {
	db       *sqlite.DB
	api      ports.DeliveryClient
	pageSize int
	logger   *slog.Logger
}

// NewRoot creates the shared repository. The catalogue is downloaded
// pageSize dishes at a time.
func NewRoot(db *sqlite.DB, api ports.DeliveryClient, pageSize int, logger *slog.Logger) *Root {
	if pageSize <= 0 {
		pageSize = defaultDishesPageSize
	}
	return &Root{db: db, api: api, pageSize: pageSize, logger: logger}
}

// CartCount watches the number of dishes in the cart.
func (r *Root) CartCount(ctx context.Context) ports.Stream[int] {
	return watch(ctx, r.db, r.db.CartCount)
}

// IsEmptyDishes reports whether the dish cache is empty.
func (r *Root) IsEmptyDishes(ctx context.Context) (bool, error) {
	n, err := r.db.CountDishes(ctx)
	return n == 0, err
}

// SyncDishes stores every page of the catalogue, stopping at the first
// empty page.
func (r *Root) SyncDishes(ctx context.Context) error {
	total := 0
	for offset := 0; ; offset += r.pageSize {
		page, err := r.api.ListDishes(ctx, offset, r.pageSize)
		if err != nil {
			return fmt.Errorf("syncing dishes at offset %d: %w", offset, err)
		}
		if len(page) == 0 {
			break
		}
		if err := r.db.UpsertDishes(ctx, page); err != nil {
			return fmt.Errorf("storing dishes at offset %d: %w", offset, err)
		}
		total += len(page)
	}
	r.logger.InfoContext(ctx, "dishes synced", slog.Int("count", total))
	return nil
}

// IsEmptyCategories reports whether the category cache is empty.
func (r *Root) IsEmptyCategories(ctx context.Context) (bool, error) {
	n, err := r.db.CountCategories(ctx)
	return n == 0, err
}

// SyncCategories replaces the cached categories with the API list.
func (r *Root) SyncCategories(ctx context.Context) error {
	items, err := r.api.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("syncing categories: %w", err)
	}
	if err := r.db.ReplaceCategories(ctx, items); err != nil {
		return fmt.Errorf("storing categories: %w", err)
	}
	r.logger.InfoContext(ctx, "categories synced", slog.Int("count", len(items)))
	return nil
}

// AddDishToCart adds one unit of the dish to the cart.
func (r *Root) AddDishToCart(ctx context.Context, dishID string) error {
	return r.db.AddToCart(ctx, dishID, 1)
}

// RemoveDishFromCart takes one unit of the dish out of the cart.
func (r *Root) RemoveDishFromCart(ctx context.Context, dishID string) error {
	return r.db.DecrementCart(ctx, dishID)
}

// InsertFavorite marks the dish as a favorite.
func (r *Root) InsertFavorite(ctx context.Context, dishID string) error {
	return r.db.InsertFavorite(ctx, dishID)
}

// RemoveFavorite unmarks the dish as a favorite.
func (r *Root) RemoveFavorite(ctx context.Context, dishID string) error {
	return r.db.RemoveFavorite(ctx, dishID)
}
