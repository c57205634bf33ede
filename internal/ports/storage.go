package ports

import "context"

// SnapshotStore persists opaque state snapshots under a key.
type SnapshotStore interface {
	// Save stores data under key, replacing any previous snapshot.
	Save(ctx context.Context, key string, data []byte) error

	// Load returns the snapshot stored under key.
	// Returns domain.ErrNotFound if there is none.
	Load(ctx context.Context, key string) ([]byte, error)
}
