package application

import (
	"context"
	"fmt"
	"log"

	"clanops/internal/common/clock"
	"clanops/internal/domain"
	"clanops/internal/domain/entities"
	"clanops/internal/ports/input"
	"clanops/internal/ports/output"
)

var _ input.SignUpUseCase = (*SignUpService)(nil)

type SignUpService struct {
	eventRepo  output.EventRepository
	userRepo   output.UserRepository
	translator output.T
	clock      clock.Clock
	locks      *EventLocks
}

func NewSignUpService(
	eventRepo output.EventRepository,
	userRepo output.UserRepository,
	translator output.T,
	clk clock.Clock,
	locks *EventLocks,
) *SignUpService {
	return &SignUpService{
		eventRepo:  eventRepo,
		userRepo:   userRepo,
		translator: translator,
		clock:      clk,
		locks:      locks,
	}
}

// SignUp signs the user up on side, or changes their existing sign-up. The
// user's current rank decides which ceiling applies.
func (s *SignUpService) SignUp(ctx context.Context, locale, eventID, userID string, side entities.Side, maybe bool) (input.Result, error) {
	if !side.Valid() {
		return input.Result{}, fmt.Errorf("%w: %q", domain.ErrInvalidSide, side)
	}
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return input.Result{}, err
	}
	nonMember := !user.IsMember()

	var outcome entities.Outcome
	_, err = updateEvent(ctx, s.eventRepo, s.locks, eventID, func(event *entities.Event) (bool, error) {
		now := s.clock.Now()
		if sig := event.Signable(now); !sig.IsSignable {
			outcome = entities.Outcome{Message: sig.Message}
			return false, nil
		}
		if space := event.IsSignUpSpace(nonMember, side, maybe); !space.OK {
			outcome = space
			return false, nil
		}
		outcome = event.SignUp(user.ID, nonMember, side, maybe, now)
		if outcome.OK {
			event.UpdatedAt = now
		}
		return outcome.OK, nil
	})
	if err != nil {
		return input.Result{}, err
	}
	if outcome.OK {
		log.Printf("✅ %s signed up for event %s (side=%s maybe=%v)", user.ID, eventID, side, maybe)
	}
	return result(s.translator, locale, outcome), nil
}

// Cancel withdraws the user's sign-up. It stays possible after sign-ups
// close, until the event starts.
func (s *SignUpService) Cancel(ctx context.Context, locale, eventID, userID string) (input.Result, error) {
	var outcome entities.Outcome
	_, err := updateEvent(ctx, s.eventRepo, s.locks, eventID, func(event *entities.Event) (bool, error) {
		now := s.clock.Now()
		if sig := event.Signable(now); !sig.IsCancelable {
			outcome = entities.Outcome{Message: sig.Message}
			return false, nil
		}
		outcome = event.CancelSignUp(userID, now)
		if outcome.OK {
			event.UpdatedAt = now
		}
		return outcome.OK, nil
	})
	if err != nil {
		return input.Result{}, err
	}
	if outcome.OK {
		log.Printf("✅ %s cancelled sign-up for event %s", userID, eventID)
	}
	return result(s.translator, locale, outcome), nil
}
