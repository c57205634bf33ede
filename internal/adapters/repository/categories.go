package repository

import (
	"context"

	"github.com/jsamuelsen11/delivery-core/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/delivery-core/internal/domain/category"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Compile-time interface check.
var _ ports.CategoriesRepository = (*Categories)(nil)

// Categories serves the menu screen.
type Categories struct {
	db *sqlite.DB
}

func NewCategories(db *sqlite.DB) *Categories {
	return &Categories{db: db}
}

func (r *Categories) FindCategories(ctx context.Context) ports.Stream[[]category.Item] {
	return watch(ctx, r.db, r.db.Categories)
}
