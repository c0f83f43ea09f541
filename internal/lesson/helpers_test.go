package lesson

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/parley/internal/domain"
)

func testCatalog(n int) []domain.VocabularyEntry {
	cats := domain.Categories
	out := make([]domain.VocabularyEntry, n)
	for i := range out {
		out[i] = domain.VocabularyEntry{
			ID:       i + 1,
			Target:   fmt.Sprintf("word-%d", i+1),
			Native:   fmt.Sprintf("mot-%d", i+1),
			Category: cats[i%len(cats)],
		}
	}
	return out
}

// scriptedRand replays fixed Float64 draws (repeating the last one) and
// delegates IntN to a seeded source.
type scriptedRand struct {
	floats []float64
	base   Rand
}

func (r *scriptedRand) Float64() float64 {
	f := r.floats[0]
	if len(r.floats) > 1 {
		r.floats = r.floats[1:]
	}
	return f
}

func (r *scriptedRand) IntN(n int) int { return r.base.IntN(n) }

func quizRand(seed uint64) Rand {
	return &scriptedRand{floats: []float64{0.99}, base: NewRand(seed)}
}

func shadowRand(seed uint64) Rand {
	return &scriptedRand{floats: []float64{0.0}, base: NewRand(seed)}
}

func correctOption(t *testing.T, s State) int {
	t.Helper()
	e, ok := s.Entry()
	require.True(t, ok)
	return e.ID
}

func wrongOption(t *testing.T, s State) int {
	t.Helper()
	e, ok := s.Entry()
	require.True(t, ok)
	for _, o := range s.Options {
		if o.ID != e.ID {
			return o.ID
		}
	}
	t.Fatal("no distractor offered")
	return 0
}

func wrongSnapshotOption(t *testing.T, snap Snapshot) int {
	t.Helper()
	for _, o := range snap.Options {
		if o.ID != snap.Entry.ID {
			return o.ID
		}
	}
	t.Fatal("no distractor offered")
	return 0
}

func mustReduce(t *testing.T, s State, ev Event, rng Rand) Transition {
	t.Helper()
	tr := Reduce(s, ev, rng)
	require.Empty(t, tr.Rejected, "event %s rejected", ev.Name())
	return tr
}

// manualClock runs scheduled callbacks only when Fire is called.
type manualClock struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	after   time.Duration
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

func (c *manualClock) AfterFunc(d time.Duration, f func()) Stopper {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{after: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *manualClock) Fire() int {
	c.mu.Lock()
	timers := c.timers
	c.timers = nil
	c.mu.Unlock()
	n := 0
	for _, t := range timers {
		if !t.stopped {
			t.stopped = true
			t.f()
			n++
		}
	}
	return n
}

func (c *manualClock) Scheduled() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []time.Duration
	for _, t := range c.timers {
		if !t.stopped {
			out = append(out, t.after)
		}
	}
	return out
}

type staticSource struct {
	content domain.ShadowingContent
}

func (s staticSource) PracticeContent(context.Context, string) domain.ShadowingContent {
	return s.content
}

// blockingSource never answers before ctx ends.
type blockingSource struct{}

func (blockingSource) PracticeContent(ctx context.Context, word string) domain.ShadowingContent {
	<-ctx.Done()
	return domain.ShadowingContent{Sentence: "late " + word, Tip: "late"}
}

func waitForChange(t *testing.T, s *Session) {
	t.Helper()
	select {
	case <-s.Changes():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for session change")
	}
}

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("session-%d", n)
	}
}
