package entities

// SignUpFilter selects active sign-ups by side, membership class and
// commitment. Empty Sides means every side.
type SignUpFilter struct {
	Sides      []Side
	Members    bool
	NonMembers bool
	Maybe      bool
	Certain    bool
}

// SignedUp returns the active sign-ups matching the filter.
func (e *Event) SignedUp(f SignUpFilter) []SignUp {
	if (!f.Members && !f.NonMembers) || (!f.Maybe && !f.Certain) {
		return nil
	}
	sides := f.Sides
	if len(sides) == 0 {
		sides = allSides
	}

	var out []SignUp
	for _, side := range sides {
		for _, s := range e.SignUps[side] {
			if s.Cancelled {
				continue
			}
			if s.NonMember && !f.NonMembers || !s.NonMember && !f.Members {
				continue
			}
			if s.Maybe && !f.Maybe || !s.Maybe && !f.Certain {
				continue
			}
			out = append(out, s)
		}
	}
	return out
}

func (e *Event) SignedUpCount(f SignUpFilter) int {
	return len(e.SignedUp(f))
}

// IsSignUpSpace checks whether a user of the given membership class can take
// a slot on side. A maybe is only refused when the ceiling is zero, so it acts
// as a non-binding waitlist once the side is full.
func (e *Event) IsSignUpSpace(nonMember bool, side Side, maybe bool) Outcome {
	if !side.Valid() {
		return fail(MsgInvalidSide, nil)
	}
	c := e.capacity(side)

	if nonMember {
		count := e.SignedUpCount(SignUpFilter{Sides: []Side{side}, NonMembers: true, Maybe: true, Certain: true})
		if (!maybe && c.NonMembers < count+1) || (maybe && c.NonMembers == 0) {
			return fail(MsgNoRoomNonMembers, map[string]any{"Side": side})
		}
		return ok("", nil)
	}

	count := e.SignedUpCount(SignUpFilter{Sides: []Side{side}, Members: true, NonMembers: true, Maybe: true, Certain: true})
	if (!maybe && c.Members < count+1) || (maybe && c.Members == 0) {
		return fail(MsgNoRoom, map[string]any{"Side": side})
	}
	return ok("", nil)
}

// SideChoices lists the sides that accept sign-ups at all.
func (e *Event) SideChoices() []Side {
	var out []Side
	for _, side := range allSides {
		if e.capacity(side).Members > 0 {
			out = append(out, side)
		}
	}
	return out
}
