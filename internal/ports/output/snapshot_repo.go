package output

import (
	"context"
	"time"

	"clanops/internal/domain/entities"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_snapshot_repo.go clanops/internal/ports/output SnapshotRepository

// SnapshotRepository reads the presence snapshots deposited by the server
// poller. It never writes them.
type SnapshotRepository interface {
	// FindInWindow returns the snapshots of addr:port taken within [from, to],
	// oldest first.
	FindInWindow(ctx context.Context, addr string, port int, from, to time.Time) ([]entities.Snapshot, error)
}
