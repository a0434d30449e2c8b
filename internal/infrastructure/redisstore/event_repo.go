package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"clanops/internal/domain"
	"clanops/internal/domain/entities"
	"clanops/internal/infrastructure/eventdoc"
	"clanops/internal/ports/output"
)

const (
	eventKeyPrefix = "event:"
	// pendingAttendanceKey scores the dated, live events without attendance
	// by their end time.
	pendingAttendanceKey = "events:pending_attendance"

	fieldVersion = "version"
	fieldDoc     = "doc"
)

var _ output.EventRepository = (*EventRepository)(nil)

var errEventExists = errors.New("event already exists")

// EventRepository stores each event as a hash holding the document and its
// version. Updates are checked with WATCH so concurrent writers lose cleanly.
type EventRepository struct {
	client *redis.Client
}

// NewEventRepository checks the connection before returning the store.
func NewEventRepository(ctx context.Context, client *redis.Client) (*EventRepository, error) {
	if client == nil {
		return nil, errors.New("redis client cannot be nil")
	}
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return &EventRepository{client: client}, nil
}

func eventKey(id string) string {
	return eventKeyPrefix + id
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	doc, err := eventdoc.Marshal(event)
	if err != nil {
		return err
	}
	key := eventKey(event.ID)

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.Exists(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return errEventExists
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, fieldVersion, 1, fieldDoc, doc)
			indexPending(ctx, pipe, event)
			return nil
		})
		return err
	}, key)
	if err != nil {
		return fmt.Errorf("create event %s: %w", event.ID, err)
	}
	event.Version = 1
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id string) (*entities.Event, error) {
	return r.load(ctx, r.client, id)
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	doc, err := eventdoc.Marshal(event)
	if err != nil {
		return err
	}
	key := eventKey(event.ID)
	next := event.Version + 1

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.HGet(ctx, key, fieldVersion).Int64()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return domain.ErrEventNotFound
			}
			return fmt.Errorf("get version: %w", err)
		}
		if current != event.Version {
			return domain.ErrVersionConflict
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, fieldVersion, next, fieldDoc, doc)
			indexPending(ctx, pipe, event)
			return nil
		})
		return err
	}, key)
	switch {
	case errors.Is(err, redis.TxFailedErr):
		return domain.ErrVersionConflict
	case errors.Is(err, domain.ErrEventNotFound), errors.Is(err, domain.ErrVersionConflict):
		return err
	case err != nil:
		return fmt.Errorf("update event %s: %w", event.ID, err)
	}
	event.Version = next
	return nil
}

func (r *EventRepository) FindEndedWithoutAttendance(ctx context.Context, now time.Time) ([]entities.Event, error) {
	ids, err := r.client.ZRangeByScore(ctx, pendingAttendanceKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now.Unix(), 10),
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("find ended events: %w", err)
	}

	events := make([]entities.Event, 0, len(ids))
	for _, id := range ids {
		event, err := r.load(ctx, r.client, id)
		if errors.Is(err, domain.ErrEventNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		// The index is second precision.
		if !pendingAttendance(event) || event.EndsAt().After(now) {
			continue
		}
		events = append(events, *event)
	}
	return events, nil
}

func (r *EventRepository) load(ctx context.Context, c redis.Cmdable, id string) (*entities.Event, error) {
	vals, err := c.HMGet(ctx, eventKey(id), fieldVersion, fieldDoc).Result()
	if err != nil {
		return nil, fmt.Errorf("get event %s: %w", id, err)
	}
	rawVersion, ok := vals[0].(string)
	rawDoc, docOK := vals[1].(string)
	if !ok || !docOK {
		return nil, domain.ErrEventNotFound
	}
	version, err := strconv.ParseInt(rawVersion, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse version of event %s: %w", id, err)
	}
	event, err := eventdoc.Unmarshal([]byte(rawDoc))
	if err != nil {
		return nil, err
	}
	event.Version = version
	return event, nil
}

func pendingAttendance(e *entities.Event) bool {
	return !e.ScheduledAt.IsZero() && !e.Cancelled && e.AttendanceGeneratedAt.IsZero()
}

func indexPending(ctx context.Context, pipe redis.Pipeliner, e *entities.Event) {
	if pendingAttendance(e) {
		pipe.ZAdd(ctx, pendingAttendanceKey, redis.Z{Score: float64(e.EndsAt().Unix()), Member: e.ID})
		return
	}
	pipe.ZRem(ctx, pendingAttendanceKey, e.ID)
}
