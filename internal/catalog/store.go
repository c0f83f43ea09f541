package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/alexanderramin/parley/internal/db"
	"github.com/alexanderramin/parley/internal/domain"
	"github.com/alexanderramin/parley/internal/importer"
	"github.com/alexanderramin/parley/internal/repository"
)

//go:embed default_deck.json
var defaultDeckJSON []byte

// DefaultDeck returns the built-in beginner deck.
func DefaultDeck() (*importer.DeckSchema, error) {
	return importer.ParseDeckSchema(defaultDeckJSON)
}

// ValidationError carries every problem found in a rejected deck.
type ValidationError struct {
	Errs []error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("deck has %d problem(s): %v", len(e.Errs), errors.Join(e.Errs...))
}

func (e *ValidationError) Unwrap() []error { return e.Errs }

// Store loads and replaces the vocabulary deck.
type Store struct {
	uow        db.UnitOfWork
	vocab      repository.VocabularyRepo
	minEntries int
	observer   DeckObserver
}

// NewStore wires a Store over database. minEntries is the smallest deck
// accepted by Replace.
func NewStore(database *sql.DB, minEntries int, observers ...DeckObserver) *Store {
	s := &Store{
		uow:        db.NewTxRunner(database),
		vocab:      repository.NewSQLiteVocabularyRepo(database),
		minEntries: minEntries,
		observer:   NoopDeckObserver{},
	}
	for _, o := range observers {
		if o != nil {
			s.observer = o
		}
	}
	return s
}

// WithUnitOfWork swaps the transaction boundary, for tests that inject
// failures.
func (s *Store) WithUnitOfWork(uow db.UnitOfWork) *Store {
	cp := *s
	cp.uow = uow
	return &cp
}

// Load returns the whole deck in id order.
func (s *Store) Load(ctx context.Context) ([]domain.VocabularyEntry, error) {
	entries, err := s.vocab.List(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("loading deck: %w", err)
	}
	return entries, nil
}

// List returns entries of one category, or all when category is nil.
func (s *Store) List(ctx context.Context, category *domain.Category) ([]domain.VocabularyEntry, error) {
	return s.vocab.List(ctx, category)
}

// Info returns the deck header and entry count, read in one transaction.
func (s *Store) Info(ctx context.Context) (info repository.DeckInfo, n int, err error) {
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		n, err = repository.NewSQLiteVocabularyRepo(tx).Count(ctx)
		if err != nil {
			return err
		}
		info, err = repository.NewSQLiteDeckRepo(tx).Get(ctx)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		return err
	})
	if err != nil {
		return repository.DeckInfo{}, 0, err
	}
	return info, n, nil
}

// Seed installs the default deck when the store is empty and reports
// whether it did.
func (s *Store) Seed(ctx context.Context) (bool, error) {
	n, err := s.vocab.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	if err := s.ResetToDefault(ctx); err != nil {
		return false, fmt.Errorf("seeding default deck: %w", err)
	}
	return true, nil
}

// ResetToDefault replaces the deck with the built-in one.
func (s *Store) ResetToDefault(ctx context.Context) error {
	schema, err := DefaultDeck()
	if err != nil {
		return err
	}
	return s.Replace(ctx, schema)
}

// Replace validates schema and swaps it in for the current deck in one
// transaction. On any error the previous deck is kept.
func (s *Store) Replace(ctx context.Context, schema *importer.DeckSchema) (err error) {
	start := time.Now()
	defer func() {
		s.observe(ctx, "replace", start, err,
			slog.String("deck", schema.Name),
			slog.Int("entries", len(schema.Entries)))
	}()

	if errs := importer.ValidateDeckSchema(schema, s.minEntries); len(errs) > 0 {
		return &ValidationError{Errs: errs}
	}
	entries := importer.Convert(schema)

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		vocab := repository.NewSQLiteVocabularyRepo(tx)
		if err := vocab.DeleteAll(ctx); err != nil {
			return err
		}
		for _, e := range entries {
			if err := vocab.Create(ctx, e); err != nil {
				return err
			}
		}
		return repository.NewSQLiteDeckRepo(tx).Upsert(ctx, schema.Name)
	})
}

// Add stores one entry, assigning the next free id when e.ID is zero.
func (s *Store) Add(ctx context.Context, e domain.VocabularyEntry) (out domain.VocabularyEntry, err error) {
	start := time.Now()
	defer func() {
		s.observe(ctx, "add", start, err, slog.String("target", e.Target))
	}()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		vocab := repository.NewSQLiteVocabularyRepo(tx)
		if e.ID == 0 {
			id, err := vocab.NextID(ctx)
			if err != nil {
				return err
			}
			e.ID = id
		}
		if err := e.Validate(); err != nil {
			return &ValidationError{Errs: []error{err}}
		}
		return vocab.Create(ctx, e)
	})
	if err != nil {
		return domain.VocabularyEntry{}, err
	}
	return e, nil
}

// Remove deletes the entry with id, refusing to shrink the deck below the
// minimum size.
func (s *Store) Remove(ctx context.Context, id int) (err error) {
	start := time.Now()
	defer func() { s.observe(ctx, "remove", start, err, slog.Int("id", id)) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		vocab := repository.NewSQLiteVocabularyRepo(tx)
		if _, err := vocab.GetByID(ctx, id); err != nil {
			return err
		}
		n, err := vocab.Count(ctx)
		if err != nil {
			return err
		}
		if n <= s.minEntries {
			return fmt.Errorf("deck must keep at least %d entries", s.minEntries)
		}
		return vocab.Delete(ctx, id)
	})
}
