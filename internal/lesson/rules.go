package lesson

import (
	"errors"
	"fmt"
	"time"
)

// Rules holds the scoring and pacing constants of a lesson.
type Rules struct {
	MaxHearts            int
	StartingStreak       int
	QueueSize            int
	DistractorCount      int
	XPQuiz               int
	XPShadowing          int
	XPCompletion         int
	ShadowingProbability float64
	FailureGrace         time.Duration
}

// DefaultRules returns the standard lesson: ten items, five hearts, four
// answer choices and roughly one speaking exercise in three.
func DefaultRules() Rules {
	return Rules{
		MaxHearts:            5,
		StartingStreak:       1,
		QueueSize:            10,
		DistractorCount:      3,
		XPQuiz:               10,
		XPShadowing:          20,
		XPCompletion:         50,
		ShadowingProbability: 0.3,
		FailureGrace:         time.Second,
	}
}

// MinCatalogSize is the smallest deck that yields full option sets.
func (r Rules) MinCatalogSize() int {
	return r.DistractorCount + 1
}

func (r Rules) Validate() error {
	var errs []error
	if r.MaxHearts <= 0 {
		errs = append(errs, fmt.Errorf("max hearts must be positive, got %d", r.MaxHearts))
	}
	if r.QueueSize <= 0 {
		errs = append(errs, fmt.Errorf("queue size must be positive, got %d", r.QueueSize))
	}
	if r.DistractorCount < 0 {
		errs = append(errs, fmt.Errorf("distractor count must not be negative, got %d", r.DistractorCount))
	}
	if r.XPQuiz < 0 || r.XPCompletion < 0 {
		errs = append(errs, errors.New("rewards must not be negative"))
	}
	if r.XPShadowing <= r.XPQuiz {
		errs = append(errs, fmt.Errorf("shadowing reward (%d) must exceed quiz reward (%d)", r.XPShadowing, r.XPQuiz))
	}
	if r.ShadowingProbability < 0 || r.ShadowingProbability > 1 {
		errs = append(errs, fmt.Errorf("shadowing probability must be within [0,1], got %g", r.ShadowingProbability))
	}
	if r.FailureGrace < 0 {
		errs = append(errs, errors.New("failure grace must not be negative"))
	}
	return errors.Join(errs...)
}
