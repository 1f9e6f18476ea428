package app

import (
	"context"

	"babylog/internal/domain"
)

// SnapshotService moves whole-ledger blobs between the store and the
// persistence collaborator. The store itself never touches storage; this
// service is the caller-side policy around Export/Restore.
type SnapshotService struct {
	ledger domain.Snapshotter
	repo   domain.SnapshotRepository
	key    string
}

// NewSnapshotService creates a SnapshotService persisting under key.
func NewSnapshotService(ledger domain.Snapshotter, repo domain.SnapshotRepository, key string) *SnapshotService {
	return &SnapshotService{ledger: ledger, repo: repo, key: key}
}

// Load restores the ledger from the stored blob. A missing blob is not an
// error: the ledger is simply left empty. A malformed blob surfaces as
// domain.ErrDecode and leaves the ledger unchanged; substituting an empty
// store at that point is the entrypoint's decision, not this service's.
func (s *SnapshotService) Load(ctx context.Context) error {
	blob, ok, err := s.repo.Get(ctx, s.key)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	return s.ledger.Restore(blob)
}

// Flush exports the ledger and writes the blob. Called after every
// successful mutation.
func (s *SnapshotService) Flush(ctx context.Context) error {
	blob, err := s.ledger.Export()
	if err != nil {
		return err
	}
	return s.repo.Set(ctx, s.key, blob)
}

// Export returns the current blob for download.
func (s *SnapshotService) Export(ctx context.Context) ([]byte, error) {
	return s.ledger.Export()
}

// Import replaces the ledger with the uploaded blob and persists it. On a
// decode failure nothing changes.
func (s *SnapshotService) Import(ctx context.Context, blob []byte) error {
	if err := s.ledger.Restore(blob); err != nil {
		return err
	}
	return s.Flush(ctx)
}
