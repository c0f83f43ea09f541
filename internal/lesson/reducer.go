package lesson

import (
	"slices"

	"github.com/alexanderramin/parley/internal/domain"
)

// Start builds a fresh session: a new queue sampled from catalog, full
// hearts, zero XP and the first item entered. An empty catalog produces a
// session that is already completed.
func Start(catalog []domain.VocabularyEntry, rules Rules, sessionID string, rng Rand) Transition {
	s := State{
		SessionID: sessionID,
		Rules:     rules,
		Catalog:   slices.Clone(catalog),
		Phase:     domain.PhasePlaying,
		Hearts:    rules.MaxHearts,
		Streak:    rules.StartingStreak,
	}
	s.Queue = BuildQueue(s.Catalog, rules.QueueSize, rng)
	if len(s.Queue) == 0 {
		s.Phase = domain.PhaseCompleted
		return Transition{State: s}
	}
	s, effects := enterItem(s, rng)
	return Transition{State: s, Effects: effects}
}

// Reduce applies ev to s. It never fails: events that do not apply leave
// the state untouched and report why in Transition.Rejected.
func Reduce(s State, ev Event, rng Rand) Transition {
	switch ev := ev.(type) {
	case SelectOption:
		return selectOption(s, ev)
	case MarkSpoken:
		return markSpoken(s)
	case Check:
		return check(s)
	case Advance:
		return advance(s, rng)
	case Reset:
		t := Start(s.Catalog, s.Rules, ev.SessionID, rng)
		t.Effects = append([]Effect{CancelPending{SessionID: s.SessionID}}, t.Effects...)
		return t
	case ContentResolved:
		return contentResolved(s, ev)
	case FailureDue:
		return failureDue(s, ev)
	default:
		return reject(s, RejectUnknownEvent)
	}
}

func reject(s State, why Rejection) Transition {
	return Transition{State: s, Rejected: why}
}

func enterItem(s State, rng Rand) (State, []Effect) {
	entry, _ := s.Entry()
	s.Attempt = Attempt{}
	s.Options = nil
	s.Content = nil
	s.Modality = PickModality(rng, s.Rules.ShadowingProbability)
	if s.Modality == domain.ModalityShadowing {
		return s, []Effect{FetchContent{Key: s.Key(), Word: entry.Target}}
	}
	s.Options = BuildOptions(s.Catalog, entry, s.Rules.DistractorCount, rng)
	return s, nil
}

func selectOption(s State, ev SelectOption) Transition {
	switch {
	case s.Phase != domain.PhasePlaying:
		return reject(s, RejectNotPlaying)
	case s.Modality != domain.ModalityQuiz:
		return reject(s, RejectWrongModality)
	case s.Attempt.Checked:
		return reject(s, RejectAlreadyChecked)
	case !s.hasOption(ev.ID):
		return reject(s, RejectUnknownOption)
	}
	id := ev.ID
	s.Attempt.Selected = &id
	return Transition{State: s}
}

func markSpoken(s State) Transition {
	switch {
	case s.Phase != domain.PhasePlaying:
		return reject(s, RejectNotPlaying)
	case s.Modality != domain.ModalityShadowing:
		return reject(s, RejectWrongModality)
	case s.Attempt.Checked:
		return reject(s, RejectAlreadyChecked)
	case s.Content == nil:
		return reject(s, RejectContentPending)
	}
	s.Attempt.Spoken = true
	return Transition{State: s}
}

func check(s State) Transition {
	if s.Phase != domain.PhasePlaying {
		return reject(s, RejectNotPlaying)
	}
	if s.Attempt.Checked {
		return reject(s, RejectAlreadyChecked)
	}

	if s.Modality == domain.ModalityShadowing {
		if !s.Attempt.Spoken {
			return reject(s, RejectNotSpoken)
		}
		correct := true
		s.Attempt.Checked = true
		s.Attempt.Correct = &correct
		s.XP += s.Rules.XPShadowing
		return Transition{State: s, Effects: []Effect{Feedback{Kind: FeedbackHit}}}
	}

	if s.Attempt.Selected == nil {
		return reject(s, RejectNoSelection)
	}
	entry, _ := s.Entry()
	correct := *s.Attempt.Selected == entry.ID
	s.Attempt.Checked = true
	s.Attempt.Correct = &correct
	if correct {
		s.XP += s.Rules.XPQuiz
		return Transition{State: s, Effects: []Effect{Feedback{Kind: FeedbackHit}}}
	}

	s.Hearts = max(s.Hearts-1, 0)
	effects := []Effect{Feedback{Kind: FeedbackMiss}}
	if s.Hearts == 0 {
		s.FailurePending = true
		effects = append(effects, ScheduleFailure{SessionID: s.SessionID, After: s.Rules.FailureGrace})
	}
	return Transition{State: s, Effects: effects}
}

func advance(s State, rng Rand) Transition {
	switch {
	case s.Phase != domain.PhasePlaying:
		return reject(s, RejectNotPlaying)
	case !s.Attempt.Checked:
		return reject(s, RejectNotChecked)
	case s.FailurePending:
		return reject(s, RejectFailurePending)
	}

	if s.Position >= len(s.Queue)-1 {
		s.XP += s.Rules.XPCompletion
		s.Phase = domain.PhaseCompleted
		s.Attempt = Attempt{}
		return Transition{State: s, Effects: []Effect{Feedback{Kind: FeedbackComplete}}}
	}

	s.Position++
	s, effects := enterItem(s, rng)
	return Transition{State: s, Effects: effects}
}

func contentResolved(s State, ev ContentResolved) Transition {
	if s.Phase != domain.PhasePlaying || ev.Key != s.Key() ||
		s.Modality != domain.ModalityShadowing || s.Content != nil {
		return reject(s, RejectStaleContent)
	}
	c := ev.Content
	s.Content = &c
	return Transition{State: s}
}

func failureDue(s State, ev FailureDue) Transition {
	if ev.SessionID != s.SessionID || !s.FailurePending || s.Phase != domain.PhasePlaying {
		return reject(s, RejectStaleTimer)
	}
	s.Phase = domain.PhaseFailed
	s.FailurePending = false
	return Transition{State: s}
}
