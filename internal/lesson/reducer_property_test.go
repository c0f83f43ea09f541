package lesson

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/parley/internal/domain"
)

var phaseRank = map[domain.Phase]int{
	domain.PhasePlaying:   0,
	domain.PhaseCompleted: 1,
	domain.PhaseFailed:    1,
}

// randomEvent picks a plausible learner or runtime event for s.
func randomEvent(s State, rng Rand) Event {
	switch rng.IntN(7) {
	case 0:
		if len(s.Options) > 0 {
			return SelectOption{ID: s.Options[rng.IntN(len(s.Options))].ID}
		}
		return SelectOption{ID: rng.IntN(30)}
	case 1:
		return MarkSpoken{}
	case 2, 3:
		return Check{}
	case 4:
		return Advance{}
	case 5:
		return ContentResolved{Key: s.Key(), Content: domain.FallbackContent("w")}
	default:
		return FailureDue{SessionID: s.SessionID}
	}
}

func TestReduce_InvariantsHoldUnderRandomEvents(t *testing.T) {
	rules := DefaultRules()
	for seed := uint64(0); seed < 200; seed++ {
		rng := NewRand(seed)
		catalog := testCatalog(4 + int(seed%20))
		s := Start(catalog, rules, fmt.Sprintf("s%d", seed), rng).State

		for step := 0; step < 300; step++ {
			prev := s
			tr := Reduce(s, randomEvent(s, rng), rng)
			s = tr.State

			require.GreaterOrEqual(t, s.Hearts, 0, "seed %d step %d", seed, step)
			require.LessOrEqual(t, s.Hearts, rules.MaxHearts, "seed %d step %d", seed, step)
			require.GreaterOrEqual(t, s.XP, prev.XP, "xp decreased: seed %d step %d", seed, step)
			require.GreaterOrEqual(t, s.Position, prev.Position, "seed %d step %d", seed, step)
			require.Less(t, s.Position, len(s.Queue), "seed %d step %d", seed, step)
			require.GreaterOrEqual(t, phaseRank[s.Phase], phaseRank[prev.Phase], "phase went back: seed %d step %d", seed, step)
			assert.Equal(t, rules.StartingStreak, s.Streak)

			if tr.Rejected != "" {
				require.Equal(t, prev.Snapshot(), s.Snapshot(), "rejected event changed state: seed %d step %d", seed, step)
			}
			if s.Phase == domain.PhasePlaying && s.Modality == domain.ModalityQuiz {
				e, _ := s.Entry()
				matches := 0
				for _, o := range s.Options {
					if o.ID == e.ID {
						matches++
					}
				}
				require.Equal(t, 1, matches, "seed %d step %d", seed, step)
			}
		}
	}
}
