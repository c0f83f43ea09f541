package catalog

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// DeckEvent reports one finished write to the deck.
type DeckEvent struct {
	Op      string
	Elapsed time.Duration
	Err     error
	Attrs   []slog.Attr
}

// DeckObserver is told about every Replace, Add and Remove.
type DeckObserver interface {
	ObserveDeck(ctx context.Context, e DeckEvent)
}

type NoopDeckObserver struct{}

func (NoopDeckObserver) ObserveDeck(context.Context, DeckEvent) {}

// SlogDeckObserver logs deck writes, failures at error level.
type SlogDeckObserver struct {
	Logger *slog.Logger
}

// NewLogDeckObserver logs to w in slog's text format. A nil w yields a
// no-op observer.
func NewLogDeckObserver(w io.Writer) DeckObserver {
	if w == nil {
		return NoopDeckObserver{}
	}
	return SlogDeckObserver{Logger: slog.New(slog.NewTextHandler(w, nil))}
}

func (o SlogDeckObserver) ObserveDeck(ctx context.Context, e DeckEvent) {
	attrs := append([]slog.Attr{
		slog.String("op", e.Op),
		slog.Int64("elapsed_ms", e.Elapsed.Milliseconds()),
	}, e.Attrs...)

	level := slog.LevelInfo
	if e.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", e.Err.Error()))
	}
	o.Logger.LogAttrs(ctx, level, "deck_write", attrs...)
}

func (s *Store) observe(ctx context.Context, op string, start time.Time, err error, attrs ...slog.Attr) {
	s.observer.ObserveDeck(ctx, DeckEvent{Op: op, Elapsed: time.Since(start), Err: err, Attrs: attrs})
}
