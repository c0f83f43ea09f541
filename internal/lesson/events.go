package lesson

import (
	"time"

	"github.com/alexanderramin/parley/internal/domain"
)

// Event is an input to Reduce.
type Event interface {
	Name() string
}

type SelectOption struct{ ID int }

// MarkSpoken is the learner's report of having repeated the sentence aloud.
type MarkSpoken struct{}

type Check struct{}

type Advance struct{}

// Reset discards the session and starts a new one under SessionID.
type Reset struct{ SessionID string }

// ContentResolved delivers the practice content fetched for Key.
type ContentResolved struct {
	Key     ItemKey
	Content domain.ShadowingContent
}

// FailureDue fires when the grace period after the last heart is lost ends.
type FailureDue struct{ SessionID string }

func (SelectOption) Name() string    { return "select_option" }
func (MarkSpoken) Name() string      { return "mark_spoken" }
func (Check) Name() string           { return "check" }
func (Advance) Name() string         { return "advance" }
func (Reset) Name() string           { return "reset" }
func (ContentResolved) Name() string { return "content_resolved" }
func (FailureDue) Name() string      { return "failure_due" }

// Effect is work the caller must perform after a transition.
type Effect interface {
	effect()
}

// FetchContent requests practice content for the shadowing item at Key.
type FetchContent struct {
	Key  ItemKey
	Word string
}

// ScheduleFailure asks for FailureDue to be delivered after the delay.
type ScheduleFailure struct {
	SessionID string
	After     time.Duration
}

// CancelPending cancels the failure timer and content fetches of a session.
type CancelPending struct{ SessionID string }

type FeedbackKind string

const (
	FeedbackHit      FeedbackKind = "hit"
	FeedbackMiss     FeedbackKind = "miss"
	FeedbackComplete FeedbackKind = "complete"
)

// Feedback is a cue for the learner, such as a sound or a flash.
type Feedback struct{ Kind FeedbackKind }

func (FetchContent) effect()    {}
func (ScheduleFailure) effect() {}
func (CancelPending) effect()   {}
func (Feedback) effect()        {}

// Rejection explains why an event left the state unchanged.
type Rejection string

const (
	RejectNotPlaying     Rejection = "session is not playing"
	RejectWrongModality  Rejection = "event does not apply to this exercise"
	RejectAlreadyChecked Rejection = "item already checked"
	RejectUnknownOption  Rejection = "option is not offered for this item"
	RejectNoSelection    Rejection = "no option selected"
	RejectNotSpoken      Rejection = "sentence not marked as spoken"
	RejectContentPending Rejection = "practice content still loading"
	RejectNotChecked     Rejection = "item not checked yet"
	RejectFailurePending Rejection = "session is ending"
	RejectStaleContent   Rejection = "content is for another item"
	RejectStaleTimer     Rejection = "timer is for another session"
	RejectUnknownEvent   Rejection = "unknown event"
)

// Transition is the outcome of one Reduce call. Rejected is empty when the
// event was applied.
type Transition struct {
	State    State
	Effects  []Effect
	Rejected Rejection
}

// Feedback returns the cue carried by the transition, if any.
func (t Transition) Feedback() (FeedbackKind, bool) {
	for _, e := range t.Effects {
		if f, ok := e.(Feedback); ok {
			return f.Kind, true
		}
	}
	return "", false
}
