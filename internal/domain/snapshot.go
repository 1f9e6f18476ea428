package domain

import "context"

// Snapshotter converts a whole ledger to and from one persistable blob.
// Restore is all-or-nothing: on a decode failure the receiver is unchanged.
type Snapshotter interface {
	Export() ([]byte, error)
	Restore(blob []byte) error
}

// SnapshotRepository is the persistence collaborator: a keyed blob store.
// The exported ledger blob is the only value ever kept there; the storage
// medium and key namespace are the implementation's concern.
type SnapshotRepository interface {
	// Get returns the blob for key, with ok=false when no blob is stored.
	Get(ctx context.Context, key string) (blob []byte, ok bool, err error)
	Set(ctx context.Context, key string, blob []byte) error
}
