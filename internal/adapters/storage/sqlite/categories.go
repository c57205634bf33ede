package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jsamuelsen11/delivery-core/internal/domain/category"
)

// ReplaceCategories replaces the cached category tree.
func (d *DB) ReplaceCategories(ctx context.Context, items []category.Item) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM categories`); err != nil {
			return err
		}
		for _, it := range items {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO categories (id, title, sort_order, icon, parent_id) VALUES (?, ?, ?, ?, ?)`,
				it.ID, it.Title, it.Order, it.Icon, it.ParentID); err != nil {
				return fmt.Errorf("inserting category %s: %w", it.ID, err)
			}
		}
		return nil
	})
}

// CountCategories returns the number of cached categories.
func (d *DB) CountCategories(ctx context.Context) (int, error) {
	return d.count(ctx, `SELECT COUNT(*) FROM categories`)
}

// Categories returns the cached tree, ordered for display.
func (d *DB) Categories(ctx context.Context) ([]category.Item, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, title, sort_order, icon, parent_id FROM categories ORDER BY sort_order, title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []category.Item{}
	for rows.Next() {
		var it category.Item
		if err := rows.Scan(&it.ID, &it.Title, &it.Order, &it.Icon, &it.ParentID); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
