package lesson

import (
	"io"
	"log/slog"

	"github.com/alexanderramin/parley/internal/domain"
)

// LessonEvent records one event dispatched to a session.
type LessonEvent struct {
	SessionID string
	Event     string
	Rejected  Rejection
	Phase     domain.Phase
	Hearts    int
	XP        int
	Position  int
}

// Observer receives lesson events.
type Observer interface {
	OnLessonEvent(event LessonEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) OnLessonEvent(LessonEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes lesson events to w as structured text lines.
func NewLogObserver(w io.Writer) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})),
	}
}

func (o *logObserver) OnLessonEvent(event LessonEvent) {
	attrs := []any{
		"session", event.SessionID,
		"event", event.Event,
		"phase", string(event.Phase),
		"hearts", event.Hearts,
		"xp", event.XP,
		"position", event.Position,
	}
	if event.Rejected != "" {
		attrs = append(attrs, "rejected", string(event.Rejected))
		o.logger.Debug("lesson_event", attrs...)
		return
	}
	o.logger.Info("lesson_event", attrs...)
}
