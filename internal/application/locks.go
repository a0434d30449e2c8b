package application

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"clanops/internal/domain"
	"clanops/internal/domain/entities"
	"clanops/internal/ports/output"
)

const maxUpdateAttempts = 3

// EventLocks serialises read-modify-write cycles on the same event within a
// process. Writers in other processes are caught by the repository version
// check.
type EventLocks struct {
	mu    sync.Mutex
	locks map[string]*eventLock
}

type eventLock struct {
	sync.Mutex
	refs int
}

func NewEventLocks() *EventLocks {
	return &EventLocks{locks: make(map[string]*eventLock)}
}

// Lock blocks until the event is free and returns the matching unlock.
func (l *EventLocks) Lock(eventID string) func() {
	l.mu.Lock()
	el, ok := l.locks[eventID]
	if !ok {
		el = &eventLock{}
		l.locks[eventID] = el
	}
	el.refs++
	l.mu.Unlock()

	el.Lock()
	return func() {
		el.Unlock()
		l.mu.Lock()
		el.refs--
		if el.refs == 0 {
			delete(l.locks, eventID)
		}
		l.mu.Unlock()
	}
}

// updateEvent loads the event, lets fn mutate it and saves it. fn returning
// false leaves the event unsaved. On a version conflict the whole cycle is
// replayed on a fresh copy.
func updateEvent(
	ctx context.Context,
	repo output.EventRepository,
	locks *EventLocks,
	eventID string,
	fn func(event *entities.Event) (bool, error),
) (*entities.Event, error) {
	unlock := locks.Lock(eventID)
	defer unlock()

	var err error
	for attempt := 1; attempt <= maxUpdateAttempts; attempt++ {
		var event *entities.Event
		event, err = repo.FindByID(ctx, eventID)
		if err != nil {
			return nil, err
		}
		save, fnErr := fn(event)
		if fnErr != nil || !save {
			return event, fnErr
		}
		err = repo.Update(ctx, event)
		if err == nil {
			return event, nil
		}
		if !errors.Is(err, domain.ErrVersionConflict) {
			return nil, fmt.Errorf("update event: %w", err)
		}
		log.Printf("⚠️ Version conflict on event %s (attempt %d/%d)", eventID, attempt, maxUpdateAttempts)
	}
	return nil, err
}
