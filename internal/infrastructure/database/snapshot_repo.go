package database

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"clanops/internal/domain/entities"
	"clanops/internal/ports/output"
)

var _ output.SnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository reads raw_attendance, which the server poller fills.
type SnapshotRepository struct {
	db DBTX
}

func NewSnapshotRepository(db DBTX) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

func (r *SnapshotRepository) FindInWindow(ctx context.Context, addr string, port int, from, to time.Time) ([]entities.Snapshot, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, created_at, server_addr, server_port, game, map, server_name, players
		 FROM raw_attendance
		 WHERE server_addr = $1 AND server_port = $2 AND created_at BETWEEN $3 AND $4
		 ORDER BY created_at, id`,
		addr, port, from.UTC(), to.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("find snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []entities.Snapshot
	for rows.Next() {
		var (
			s       entities.Snapshot
			id      int64
			players []byte
		)
		if err := rows.Scan(&id, &s.CreatedAt, &s.ServerAddr, &s.ServerPort, &s.Game, &s.Map, &s.ServerName, &players); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		s.ID = strconv.FormatInt(id, 10)
		s.CreatedAt = s.CreatedAt.UTC()
		if s.Players, err = playersToDomain(players); err != nil {
			return nil, fmt.Errorf("snapshot %s: %w", s.ID, err)
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}
