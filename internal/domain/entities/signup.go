package entities

import "time"

// SignUp is a user's sign-up on one side of an event. Cancelled records are
// kept for history.
type SignUp struct {
	UserID    string
	NonMember bool // membership class when the record was last written
	Maybe     bool
	Cancelled bool
	Modified  time.Time
	Created   time.Time
}

// Active reports whether the record counts toward capacity.
func (s SignUp) Active() bool {
	return !s.Cancelled
}

// SignUpState locates a user's record in the ledger.
type SignUpState struct {
	Side   Side
	Index  int
	SignUp SignUp
}

// SignUpState returns the user's record across all sides. At most one exists.
func (e *Event) SignUpState(userID string) (SignUpState, bool) {
	for _, side := range allSides {
		for i, s := range e.SignUps[side] {
			if s.UserID == userID {
				return SignUpState{Side: side, Index: i, SignUp: s}, true
			}
		}
	}
	return SignUpState{}, false
}

// IsUserSignedUp reports whether the user holds an active sign-up. With
// maybeOnly the sign-up must also be a maybe.
func (e *Event) IsUserSignedUp(userID string, maybeOnly bool) bool {
	state, found := e.SignUpState(userID)
	if !found || state.SignUp.Cancelled {
		return false
	}
	if maybeOnly && !state.SignUp.Maybe {
		return false
	}
	return true
}

// SignUp adds or changes the user's sign-up. It does not check capacity nor
// whether the event is signable; callers do that first.
func (e *Event) SignUp(userID string, nonMember bool, side Side, maybe bool, now time.Time) Outcome {
	if !side.Valid() {
		return fail(MsgInvalidSide, nil)
	}
	if e.SignUps == nil {
		e.SignUps = make(map[Side][]SignUp)
	}

	state, found := e.SignUpState(userID)
	if found && !state.SignUp.Cancelled && state.Side == side && state.SignUp.Maybe == maybe {
		return fail(MsgAlreadySignedUp, nil)
	}

	switch {
	case found && state.Side == side:
		rec := &e.SignUps[side][state.Index]
		rec.Maybe = maybe
		rec.Cancelled = false
		rec.NonMember = nonMember
		rec.Modified = now
	case found:
		old := e.SignUps[state.Side]
		e.SignUps[state.Side] = append(old[:state.Index:state.Index], old[state.Index+1:]...)
		e.SignUps[side] = append(e.SignUps[side], SignUp{
			UserID:    userID,
			NonMember: nonMember,
			Maybe:     maybe,
			Modified:  now,
			Created:   state.SignUp.Created,
		})
	default:
		e.SignUps[side] = append(e.SignUps[side], SignUp{
			UserID:    userID,
			NonMember: nonMember,
			Maybe:     maybe,
			Modified:  now,
			Created:   now,
		})
	}

	return ok(MsgSignUpSuccess, map[string]any{"Commitment": Commitment(maybe), "Side": side})
}

// CancelSignUp marks the user's sign-up as cancelled.
func (e *Event) CancelSignUp(userID string, now time.Time) Outcome {
	state, found := e.SignUpState(userID)
	if !found {
		return fail(MsgNotSignedUp, nil)
	}
	if state.SignUp.Cancelled {
		return fail(MsgSignUpAlreadyCanceled, nil)
	}
	rec := &e.SignUps[state.Side][state.Index]
	rec.Cancelled = true
	rec.Modified = now
	return ok(MsgSignUpCancelSuccess, nil)
}
