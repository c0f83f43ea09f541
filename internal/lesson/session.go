package lesson

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexanderramin/parley/internal/domain"
)

// DefaultContentTimeout bounds how long a shadowing item waits for content
// before the fallback pair is used.
const DefaultContentTimeout = 8 * time.Second

// ContentSource produces practice content for a word. Implementations must
// always return usable content.
type ContentSource interface {
	PracticeContent(ctx context.Context, word string) domain.ShadowingContent
}

// Outcome is what a learner action produced.
type Outcome struct {
	Snapshot Snapshot
	Rejected Rejection
	Feedback FeedbackKind
}

// Accepted reports whether the action changed the session.
func (o Outcome) Accepted() bool { return o.Rejected == "" }

// Session drives the reducer for one learner. It owns the failure timer and
// the content fetches, and is safe for concurrent use.
type Session struct {
	content        ContentSource
	rng            Rand
	rules          Rules
	clock          Clock
	timer          *FailureTimer
	observer       Observer
	contentTimeout time.Duration
	newID          func() string

	mu      sync.Mutex
	state   State
	fetches map[ItemKey]context.CancelFunc
	changes chan struct{}
	closed  bool
}

type SessionOption func(*Session)

func WithRules(r Rules) SessionOption { return func(s *Session) { s.rules = r } }

func WithRand(r Rand) SessionOption { return func(s *Session) { s.rng = r } }

func WithClock(c Clock) SessionOption { return func(s *Session) { s.clock = c } }

func WithObserver(o Observer) SessionOption { return func(s *Session) { s.observer = o } }

func WithContentTimeout(d time.Duration) SessionOption {
	return func(s *Session) { s.contentTimeout = d }
}

func WithIDGenerator(f func() string) SessionOption { return func(s *Session) { s.newID = f } }

// NewSession starts a lesson over catalog.
func NewSession(catalog []domain.VocabularyEntry, content ContentSource, opts ...SessionOption) *Session {
	s := &Session{
		content:        content,
		rules:          DefaultRules(),
		observer:       NoopObserver{},
		contentTimeout: DefaultContentTimeout,
		newID:          uuid.NewString,
		fetches:        make(map[ItemKey]context.CancelFunc),
		changes:        make(chan struct{}, 1),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewRandomRand()
	}
	if s.clock == nil {
		s.clock = realClock{}
	}
	s.timer = NewFailureTimer(s.clock)

	s.mu.Lock()
	t := Start(catalog, s.rules, s.newID(), s.rng)
	s.state = t.State
	s.observe(startEvent{}, t)
	launch := s.applyLocked(t.Effects)
	s.mu.Unlock()
	s.launch(launch)
	return s
}

func (s *Session) SelectOption(id int) Outcome { return s.dispatch(SelectOption{ID: id}) }

// MarkSpoken records that the learner repeated the practice sentence.
func (s *Session) MarkSpoken() Outcome { return s.dispatch(MarkSpoken{}) }

func (s *Session) Check() Outcome { return s.dispatch(Check{}) }

func (s *Session) Advance() Outcome { return s.dispatch(Advance{}) }

// Reset abandons the current session, cancelling its timer and fetches, and
// starts a new one with a freshly sampled queue.
func (s *Session) Reset() Outcome { return s.dispatch(Reset{SessionID: s.newID()}) }

func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Snapshot()
}

// Changes signals state changes that did not come from a learner action,
// such as arriving content or the failure timer firing. Signals coalesce.
// The channel is closed by Close.
func (s *Session) Changes() <-chan struct{} {
	return s.changes
}

// Close cancels all pending work. Later actions are rejected.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	s.timer.Cancel()
	for key, cancel := range s.fetches {
		cancel()
		delete(s.fetches, key)
	}
	close(s.changes)
}

func (s *Session) dispatch(ev Event) Outcome {
	s.mu.Lock()
	if s.closed {
		out := Outcome{Snapshot: s.state.Snapshot(), Rejected: RejectNotPlaying}
		s.mu.Unlock()
		return out
	}
	t := Reduce(s.state, ev, s.rng)
	s.state = t.State
	s.observe(ev, t)
	launch := s.applyLocked(t.Effects)
	out := Outcome{Snapshot: t.State.Snapshot(), Rejected: t.Rejected}
	out.Feedback, _ = t.Feedback()
	s.mu.Unlock()

	s.launch(launch)
	return out
}

// deliver applies an asynchronous event and notifies listeners.
func (s *Session) deliver(ev Event) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	t := Reduce(s.state, ev, s.rng)
	s.state = t.State
	s.observe(ev, t)
	launch := s.applyLocked(t.Effects)
	if t.Rejected == "" {
		s.notifyLocked()
	}
	s.mu.Unlock()
	s.launch(launch)
}

func (s *Session) notifyLocked() {
	select {
	case s.changes <- struct{}{}:
	default:
	}
}

func (s *Session) observe(ev Event, t Transition) {
	s.observer.OnLessonEvent(LessonEvent{
		SessionID: t.State.SessionID,
		Event:     ev.Name(),
		Rejected:  t.Rejected,
		Phase:     t.State.Phase,
		Hearts:    t.State.Hearts,
		XP:        t.State.XP,
		Position:  t.State.Position,
	})
}

// applyLocked performs the effects that only touch session bookkeeping and
// returns the fetches to start once the lock is released.
func (s *Session) applyLocked(effects []Effect) []func() {
	var launch []func()
	for _, e := range effects {
		switch e := e.(type) {
		case FetchContent:
			launch = append(launch, s.fetchLocked(e))
		case ScheduleFailure:
			id := e.SessionID
			s.timer.Schedule(e.After, func() { s.deliver(FailureDue{SessionID: id}) })
		case CancelPending:
			s.timer.Cancel()
			for key, cancel := range s.fetches {
				if key.SessionID == e.SessionID {
					cancel()
					delete(s.fetches, key)
				}
			}
		case Feedback:
			// returned to the caller through Outcome
		}
	}
	return launch
}

func (s *Session) fetchLocked(e FetchContent) func() {
	ctx, cancel := context.WithTimeout(context.Background(), s.contentTimeout)
	s.fetches[e.Key] = cancel
	return func() {
		defer cancel()
		content := s.fetchContent(ctx, e.Word)
		s.mu.Lock()
		delete(s.fetches, e.Key)
		s.mu.Unlock()
		if ctx.Err() == context.Canceled {
			return
		}
		s.deliver(ContentResolved{Key: e.Key, Content: content})
	}
}

// fetchContent waits for the source but never longer than ctx allows.
func (s *Session) fetchContent(ctx context.Context, word string) domain.ShadowingContent {
	if s.content == nil {
		return domain.FallbackContent(word)
	}
	done := make(chan domain.ShadowingContent, 1)
	go func() { done <- s.content.PracticeContent(ctx, word) }()
	select {
	case c := <-done:
		return c
	case <-ctx.Done():
		return domain.FallbackContent(word)
	}
}

func (s *Session) launch(fns []func()) {
	for _, f := range fns {
		go f()
	}
}

type startEvent struct{}

func (startEvent) Name() string { return "start" }
