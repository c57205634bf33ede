package sqlite

import (
	"context"
	"database/sql"

	"github.com/jsamuelsen11/delivery-core/internal/domain/cart"
)

// CartItems returns the cart lines with their dish details.
func (d *DB) CartItems(ctx context.Context) ([]cart.Item, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT c.dish_id, d.title, d.image, c.count, d.price
		FROM cart c JOIN dishes d ON d.id = c.dish_id
		ORDER BY d.title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []cart.Item{}
	for rows.Next() {
		var it cart.Item
		if err := rows.Scan(&it.DishID, &it.Title, &it.Image, &it.Count, &it.Price); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// CartCount returns the number of units in the cart.
func (d *DB) CartCount(ctx context.Context) (int, error) {
	return d.count(ctx, `SELECT COALESCE(SUM(count), 0) FROM cart`)
}

// AddToCart adds n units of a cached dish.
func (d *DB) AddToCart(ctx context.Context, dishID string, n int) error {
	_, err := d.exec(ctx, `
		INSERT INTO cart (dish_id, count) VALUES (?, ?)
		ON CONFLICT(dish_id) DO UPDATE SET count = count + excluded.count`, dishID, n)
	return err
}

// DecrementCart removes one unit; the line is deleted at zero.
func (d *DB) DecrementCart(ctx context.Context, dishID string) error {
	return d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cart WHERE dish_id = ? AND count <= 1`, dishID); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `UPDATE cart SET count = count - 1 WHERE dish_id = ?`, dishID)
		return err
	})
}

// RemoveFromCart deletes the cart line of a dish.
func (d *DB) RemoveFromCart(ctx context.Context, dishID string) error {
	_, err := d.exec(ctx, `DELETE FROM cart WHERE dish_id = ?`, dishID)
	return err
}

// ClearCart deletes every cart line.
func (d *DB) ClearCart(ctx context.Context) error {
	_, err := d.exec(ctx, `DELETE FROM cart`)
	return err
}
