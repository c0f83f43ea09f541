package lesson

import (
	"slices"

	"github.com/alexanderramin/parley/internal/domain"
)

// ItemKey identifies one queue position of one session. Content results and
// timers are matched against the live key before they are applied.
type ItemKey struct {
	SessionID string
	Position  int
}

// Attempt is the learner's progress on the current item. It is replaced,
// never mutated, and cleared whenever the position advances.
type Attempt struct {
	Selected *int
	Checked  bool
	Correct  *bool
	Spoken   bool
}

// State is one immutable lesson session. Reduce returns a new State for
// every accepted event; slices held here are never written after creation.
type State struct {
	SessionID      string
	Rules          Rules
	Catalog        []domain.VocabularyEntry
	Queue          []domain.VocabularyEntry
	Position       int
	Phase          domain.Phase
	Hearts         int
	Streak         int
	XP             int
	Modality       domain.Modality
	Options        []domain.Option
	Content        *domain.ShadowingContent
	Attempt        Attempt
	FailurePending bool
}

// Entry returns the entry at the current position.
func (s State) Entry() (domain.VocabularyEntry, bool) {
	if s.Position < 0 || s.Position >= len(s.Queue) {
		return domain.VocabularyEntry{}, false
	}
	return s.Queue[s.Position], true
}

// Key returns the identity of the current item.
func (s State) Key() ItemKey {
	return ItemKey{SessionID: s.SessionID, Position: s.Position}
}

func (s State) hasOption(id int) bool {
	return slices.ContainsFunc(s.Options, func(o domain.Option) bool { return o.ID == id })
}

// Snapshot is the read-only view handed to presentation code.
type Snapshot struct {
	SessionID      string
	Phase          domain.Phase
	Hearts         int
	MaxHearts      int
	Streak         int
	XP             int
	Entry          domain.VocabularyEntry
	Modality       domain.Modality
	Options        []domain.Option
	Content        *domain.ShadowingContent
	Selected       *int
	Checked        bool
	Correct        *bool
	Spoken         bool
	Position       int
	QueueLength    int
	FailurePending bool
}

// ContentPending reports whether a shadowing item is still waiting for its
// practice sentence.
func (s Snapshot) ContentPending() bool {
	return s.Phase == domain.PhasePlaying && s.Modality == domain.ModalityShadowing && s.Content == nil
}

// CanCheck mirrors the preconditions Check enforces.
func (s Snapshot) CanCheck() bool {
	if s.Phase != domain.PhasePlaying || s.Checked {
		return false
	}
	if s.Modality == domain.ModalityShadowing {
		return s.Spoken
	}
	return s.Selected != nil
}

// CanAdvance mirrors the preconditions Advance enforces.
func (s Snapshot) CanAdvance() bool {
	return s.Phase == domain.PhasePlaying && s.Checked && !s.FailurePending
}

func (s State) Snapshot() Snapshot {
	snap := Snapshot{
		SessionID:      s.SessionID,
		Phase:          s.Phase,
		Hearts:         s.Hearts,
		MaxHearts:      s.Rules.MaxHearts,
		Streak:         s.Streak,
		XP:             s.XP,
		Modality:       s.Modality,
		Options:        slices.Clone(s.Options),
		Checked:        s.Attempt.Checked,
		Spoken:         s.Attempt.Spoken,
		Position:       s.Position,
		QueueLength:    len(s.Queue),
		FailurePending: s.FailurePending,
	}
	if e, ok := s.Entry(); ok {
		snap.Entry = e
	}
	if s.Content != nil {
		c := *s.Content
		snap.Content = &c
	}
	if s.Attempt.Selected != nil {
		v := *s.Attempt.Selected
		snap.Selected = &v
	}
	if s.Attempt.Correct != nil {
		v := *s.Attempt.Correct
		snap.Correct = &v
	}
	return snap
}
