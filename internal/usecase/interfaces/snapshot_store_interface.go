package interfaces

import "context"

// SnapshotStore persists whole-collection documents keyed by a fixed label.
// Save always replaces the full document; there are no partial writes.
//
// Load returns (nil, nil) when no document exists under the key yet.
//
//go:generate mockgen -source=snapshot_store_interface.go -destination=mocks/snapshot_store_mock.go -package=mock_interfaces
type SnapshotStore interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
}
