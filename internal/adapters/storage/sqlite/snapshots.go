package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jsamuelsen11/delivery-core/internal/domain"
	"github.com/jsamuelsen11/delivery-core/internal/ports"
)

// Compile-time interface check.
var _ ports.SnapshotStore = (*Snapshots)(nil)

// Snapshots stores state snapshots in the snapshots table. Snapshot writes
// do not signal a change: no stream reads them.
type Snapshots struct {
	db *DB
}

// NewSnapshots returns a snapshot store over db.
func NewSnapshots(db *DB) *Snapshots {
	return &Snapshots{db: db}
}

// Save implements ports.SnapshotStore.
func (s *Snapshots) Save(ctx context.Context, key string, data []byte) error {
	_, err := s.db.db.ExecContext(ctx, `
		INSERT INTO snapshots (key, data, saved_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data, saved_at = excluded.saved_at`,
		key, data, now().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("saving snapshot %s: %w", key, err)
	}
	return nil
}

// Load implements ports.SnapshotStore.
func (s *Snapshots) Load(ctx context.Context, key string) ([]byte, error) {
	var data []byte
	err := s.db.db.QueryRowContext(ctx, `SELECT data FROM snapshots WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("snapshot %s: %w", key, domain.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("loading snapshot %s: %w", key, err)
	}
	return data, nil
}
