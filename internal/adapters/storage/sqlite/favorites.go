package sqlite

import "context"

// InsertFavorite marks a dish as liked. Liking twice is a no-op.
func (d *DB) InsertFavorite(ctx context.Context, dishID string) error {
	_, err := d.exec(ctx, `INSERT OR IGNORE INTO favorites (dish_id) VALUES (?)`, dishID)
	return err
}

// RemoveFavorite unmarks a liked dish.
func (d *DB) RemoveFavorite(ctx context.Context, dishID string) error {
	_, err := d.exec(ctx, `DELETE FROM favorites WHERE dish_id = ?`, dishID)
	return err
}
