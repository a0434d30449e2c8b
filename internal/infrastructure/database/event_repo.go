package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"clanops/internal/domain"
	"clanops/internal/domain/entities"
	"clanops/internal/infrastructure/eventdoc"
	"clanops/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

// EventRepository keeps each event as a JSONB document. The columns next to
// the document only exist for querying and the version check.
type EventRepository struct {
	db DBTX
}

func NewEventRepository(db DBTX) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	doc, err := eventdoc.Marshal(event)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO events (id, kind, elective, scheduled_at, ends_at, published, cancelled,
		                     attendance_generated_at, version, doc, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, 1, $9, $10, $11)`,
		event.ID, string(event.Kind), event.Elective,
		timestamptz(event.ScheduledAt), timestamptz(event.EndsAt()),
		event.Published, event.Cancelled, timestamptz(event.AttendanceGeneratedAt),
		doc, event.CreatedAt.UTC(), event.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.Version = 1
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	var (
		version int64
		doc     []byte
	)
	err := r.db.QueryRow(ctx, `SELECT version, doc FROM events WHERE id = $1`, id).Scan(&version, &doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event by id: %w", err)
	}
	event, err := eventdoc.Unmarshal(doc)
	if err != nil {
		return nil, err
	}
	event.Version = version
	return event, nil
}

// Update locks the row, checks the version and writes the new document in
// one transaction.
func (r *EventRepository) Update(ctx context.Context, event *entities.Event) (err error) {
	doc, err := eventdoc.Marshal(event)
	if err != nil {
		return err
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	var current int64
	err = tx.QueryRow(ctx, `SELECT version FROM events WHERE id = $1 FOR UPDATE`, event.ID).Scan(&current)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrEventNotFound
		}
		return fmt.Errorf("lock event row: %w", err)
	}
	if current != event.Version {
		return domain.ErrVersionConflict
	}

	_, err = tx.Exec(ctx,
		`UPDATE events
		 SET kind = $2, elective = $3, scheduled_at = $4, ends_at = $5, published = $6,
		     cancelled = $7, attendance_generated_at = $8, version = version + 1,
		     doc = $9, updated_at = $10
		 WHERE id = $1`,
		event.ID, string(event.Kind), event.Elective,
		timestamptz(event.ScheduledAt), timestamptz(event.EndsAt()),
		event.Published, event.Cancelled, timestamptz(event.AttendanceGeneratedAt),
		doc, event.UpdatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	event.Version = current + 1
	return nil
}

func (r *EventRepository) FindEndedWithoutAttendance(ctx context.Context, now time.Time) ([]entities.Event, error) {
	rows, err := r.db.Query(ctx,
		`SELECT version, doc FROM events
		 WHERE attendance_generated_at IS NULL AND NOT cancelled AND ends_at <= $1
		 ORDER BY ends_at`,
		now.UTC(),
	)
	if err != nil {
		return nil, fmt.Errorf("find ended events: %w", err)
	}
	defer rows.Close()

	var events []entities.Event
	for rows.Next() {
		var (
			version int64
			doc     []byte
		)
		if err := rows.Scan(&version, &doc); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		event, err := eventdoc.Unmarshal(doc)
		if err != nil {
			return nil, err
		}
		event.Version = version
		events = append(events, *event)
	}
	return events, rows.Err()
}
