package entities

import (
	"math"
	"time"
)

// SignUpsCloseAt returns when sign-ups close, or zero when unscheduled.
func (e *Event) SignUpsCloseAt() time.Time {
	if e.ScheduledAt.IsZero() {
		return time.Time{}
	}
	return e.ScheduledAt.Add(-time.Duration(e.HoursBeforeClose) * time.Hour)
}

// HoursLeft is the number of hours until the event starts, 0 once started or
// when unscheduled.
func (e *Event) HoursLeft(now time.Time) float64 {
	return hoursUntil(e.ScheduledAt, now)
}

// HoursLeftSignUp is the number of hours until sign-ups close.
func (e *Event) HoursLeftSignUp(now time.Time) float64 {
	return hoursUntil(e.SignUpsCloseAt(), now)
}

func hoursUntil(t, now time.Time) float64 {
	if t.IsZero() || t.Before(now) {
		return 0
	}
	return math.Round(t.Sub(now).Hours()*100) / 100
}

func (e *Event) IsDatetimePassed(now time.Time) bool {
	if e.ScheduledAt.IsZero() {
		return false
	}
	return !e.ScheduledAt.After(now)
}

func (e *Event) IsSignUpsClosed(now time.Time) bool {
	if e.ScheduledAt.IsZero() {
		return false
	}
	return !e.SignUpsCloseAt().After(now)
}

// HasOccurred is derived from the end time; the stored flag only records it.
func (e *Event) HasOccurred(now time.Time) bool {
	if e.Occurred {
		return true
	}
	end := e.EndsAt()
	return !end.IsZero() && !end.After(now)
}

// Signable reports whether sign-ups can be made or changed. Once sign-ups
// close, existing sign-ups can still be cancelled until the event starts.
func (e *Event) Signable(now time.Time) Signable {
	switch {
	case e.Cancelled:
		return Signable{Message: MsgEventCancelled}
	case e.ScheduledAt.IsZero():
		return Signable{Message: MsgEventNoDate}
	case !e.Published:
		return Signable{Message: MsgEventNotPublished}
	case e.IsDatetimePassed(now):
		return Signable{Message: MsgEventOccurred}
	case e.IsSignUpsClosed(now):
		return Signable{IsCancelable: true, Message: MsgSignUpsClosed}
	}
	return Signable{IsSignable: true, IsCancelable: true}
}

func (e *Event) Publishable(now time.Time) Outcome {
	if e.Published {
		return fail(MsgAlreadyPublished, nil)
	}
	if e.HoursLeftSignUp(now) <= 0 {
		return fail(MsgSignUpDatePassed, nil)
	}
	return ok("", nil)
}

func (e *Event) Cancelable(now time.Time) Outcome {
	if e.Cancelled {
		return fail(MsgAlreadyCancelled, nil)
	}
	if e.HasOccurred(now) {
		return fail(MsgAlreadyOccurred, nil)
	}
	return ok("", nil)
}
