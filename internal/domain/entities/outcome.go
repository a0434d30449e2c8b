package entities

// Message IDs returned in outcomes. They are resolved by the translator.
const (
	MsgEventCancelled        = "event.cancelled"
	MsgEventNoDate           = "event.no_date"
	MsgEventNotPublished     = "event.not_published"
	MsgEventOccurred         = "event.occurred"
	MsgSignUpsClosed         = "event.signups_closed"
	MsgAlreadyPublished      = "event.already_published"
	MsgSignUpDatePassed      = "event.signup_date_passed"
	MsgAlreadyCancelled      = "event.already_cancelled"
	MsgAlreadyOccurred       = "event.already_occurred"
	MsgPublishSuccess        = "event.publish_success"
	MsgPublishFailed         = "event.publish_failed"
	MsgCancelSuccess         = "event.cancel_success"
	MsgInvalidSide           = "signup.invalid_side"
	MsgNoRoomNonMembers      = "signup.no_room_non_members"
	MsgNoRoom                = "signup.no_room"
	MsgAlreadySignedUp       = "signup.already"
	MsgSignUpSuccess         = "signup.success"
	MsgNotSignedUp           = "signup.not_signed_up"
	MsgSignUpAlreadyCanceled = "signup.already_cancelled"
	MsgSignUpCancelSuccess   = "signup.cancel_success"
	MsgCommitmentMaybe       = "commitment.maybe"
	MsgCommitmentCertain     = "commitment.certain"
)

// Outcome is the result of a rule check or ledger mutation: whether it
// succeeded and the message explaining it. Data feeds message templates; values
// with a MessageID method (Side, Commitment) are rendered translated.
type Outcome struct {
	OK      bool
	Message string
	Data    map[string]any
}

func ok(message string, data map[string]any) Outcome {
	return Outcome{OK: true, Message: message, Data: data}
}

func fail(message string, data map[string]any) Outcome {
	return Outcome{Message: message, Data: data}
}

// Signable tells whether new or changed sign-ups are accepted and whether
// existing ones may still be cancelled.
type Signable struct {
	IsSignable   bool
	IsCancelable bool
	Message      string
}

// Commitment is true for a maybe sign-up.
type Commitment bool

func (c Commitment) MessageID() string {
	if c {
		return MsgCommitmentMaybe
	}
	return MsgCommitmentCertain
}
