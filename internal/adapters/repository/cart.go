package repository

import (
	"context"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/delivery-core/internal/domain/cart"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Compile-time interface check.
var _ ports.CartRepository = (*Cart)(nil)

// Cart serves the cart screen.
type Cart struct {
	db *sqlite.DB
}

// NewCart creates the cart repository.
func NewCart(db *sqlite.DB) *Cart {
	return &Cart{db: db}
}

// LoadItems watches the cart lines.
func (r *Cart) LoadItems(ctx context.Context) ports.Stream[[]cart.Item] {
	return watch(ctx, r.db, r.db.CartItems)
}

// IncrementItem adds one unit of the dish.
func (r *Cart) IncrementItem(ctx context.Context, dishID string) error {
	return r.db.AddToCart(ctx, dishID, 1)
}

// DecrementItem removes one unit of the dish.
func (r *Cart) DecrementItem(ctx context.Context, dishID string) error {
	return r.db.DecrementCart(ctx, dishID)
}

// RemoveItem drops the dish line from the cart.
func (r *Cart) RemoveItem(ctx context.Context, dishID string) error {
	return r.db.RemoveFromCart(ctx, dishID)
}

// ClearCart empties the cart.
func (r *Cart) ClearCart(ctx context.Context) error {
	return r.db.ClearCart(ctx)
}
