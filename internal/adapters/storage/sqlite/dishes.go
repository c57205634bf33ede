package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jsamuelsen11/delivery-core/internal/domain"
	"github.com/jsamuelsen11/delivery-core/internal/domain/dish"
)

// TopLimit caps the best and popular lists.
const TopLimit = 10

const itemColumns = `d.id, d.image, d.price, d.old_price, d.title,
	EXISTS (SELECT 1 FROM favorites f WHERE f.dish_id = d.id)`

// UpsertDishes stores dishes, replacing cached copies.
func (d *DB) UpsertDishes(ctx context.Context, dishes []dish.Dish) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO dishes (id, title, description, image, old_price, price, rating, likes, category)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				title = excluded.title,
				description = excluded.description,
				image = excluded.image,
				old_price = excluded.old_price,
				price = excluded.price,
				rating = excluded.rating,
				likes = excluded.likes,
				category = excluded.category`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, it := range dishes {
			if _, err := stmt.ExecContext(ctx, it.ID, it.Title, it.Description, it.Image,
				it.OldPrice, it.Price, it.Rating, it.Likes, it.Category); err != nil {
				return fmt.Errorf("upserting dish %s: %w", it.ID, err)
			}
		}
		return nil
	})
}

// CountDishes returns the number of cached dishes.
func (d *DB) CountDishes(ctx context.Context) (int, error) {
	return d.count(ctx, `SELECT COUNT(*) FROM dishes`)
}

// Dish returns a cached dish. Returns domain.ErrNotFound if it is not cached.
func (d *DB) Dish(ctx context.Context, id string) (dish.Dish, error) {
	var out dish.Dish
	err := d.db.QueryRowContext(ctx, `
		SELECT d.id, d.title, d.description, d.image, d.old_price, d.price, d.rating, d.likes, d.category,
			EXISTS (SELECT 1 FROM favorites f WHERE f.dish_id = d.id)
		FROM dishes d WHERE d.id = ?`, id).
		Scan(&out.ID, &out.Title, &out.Description, &out.Image, &out.OldPrice, &out.Price,
			&out.Rating, &out.Likes, &out.Category, &out.IsFavorite)
	if errors.Is(err, sql.ErrNoRows) {
		return dish.Dish{}, fmt.Errorf("dish %s: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return dish.Dish{}, err
	}
	return out, nil
}

// DishesByIDs returns the cached dishes among ids, in title order.
func (d *DB) DishesByIDs(ctx context.Context, ids []string) ([]dish.Item, error) {
	if len(ids) == 0 {
		return []dish.Item{}, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return d.items(ctx, `SELECT `+itemColumns+` FROM dishes d
		WHERE d.id IN (`+placeholders+`) ORDER BY d.title`, args...)
}

// Best returns the highest rated dishes.
func (d *DB) Best(ctx context.Context) ([]dish.Item, error) {
	return d.items(ctx, `SELECT `+itemColumns+` FROM dishes d
		WHERE d.rating > 0 ORDER BY d.rating DESC, d.title LIMIT ?`, TopLimit)
}

// Popular returns the most liked dishes.
func (d *DB) Popular(ctx context.Context) ([]dish.Item, error) {
	return d.items(ctx, `SELECT `+itemColumns+` FROM dishes d
		WHERE d.likes > 0 ORDER BY d.likes DESC, d.title LIMIT ?`, TopLimit)
}

// CategoryDishes returns the dishes of a category and of its direct
// subcategories whose title contains query. An empty query matches all.
func (d *DB) CategoryDishes(ctx context.Context, category, query string) ([]dish.Item, error) {
	return d.items(ctx, `SELECT `+itemColumns+` FROM dishes d
		WHERE (d.category = ? OR d.category IN (SELECT id FROM categories WHERE parent_id = ?))
			AND d.title LIKE '%' || ? || '%'
		ORDER BY d.title`, category, category, query)
}

// FavoriteDishes returns the liked dishes whose title contains query.
func (d *DB) FavoriteDishes(ctx context.Context, query string) ([]dish.Item, error) {
	return d.items(ctx, `SELECT `+itemColumns+` FROM dishes d
		JOIN favorites f ON f.dish_id = d.id
		WHERE d.title LIKE '%' || ? || '%'
		ORDER BY d.title`, query)
}

func (d *DB) items(ctx context.Context, query string, args ...any) ([]dish.Item, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []dish.Item{}
	for rows.Next() {
		var it dish.Item
		var oldPrice int
		if err := rows.Scan(&it.ID, &it.Image, &it.Price, &oldPrice, &it.Title, &it.IsFavorite); err != nil {
			return nil, err
		}
		it.IsSale = oldPrice > it.Price
		out = append(out, it)
	}
	return out, rows.Err()
}
