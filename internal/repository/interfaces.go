package repository

import (
	"context"
	"errors"
	"time"

	"github.com/alexanderramin/parley/internal/domain"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert collides with an existing id or
// target term.
var ErrDuplicate = errors.New("already exists")

type VocabularyRepo interface {
	Create(ctx context.Context, e domain.VocabularyEntry) error
	GetByID(ctx context.Context, id int) (domain.VocabularyEntry, error)
	List(ctx context.Context, category *domain.Category) ([]domain.VocabularyEntry, error)
	Count(ctx context.Context) (int, error)
	NextID(ctx context.Context) (int, error)
	Delete(ctx context.Context, id int) error
	DeleteAll(ctx context.Context) error
}

// DeckInfo describes the deck currently stored.
type DeckInfo struct {
	Name      string
	UpdatedAt time.Time
}

type DeckRepo interface {
	Get(ctx context.Context) (DeckInfo, error)
	Upsert(ctx context.Context, name string) error
}
