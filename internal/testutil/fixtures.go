package testutil

import (
	"fmt"

	"github.com/alexanderramin/parley/internal/domain"
)

type EntryOption func(*domain.VocabularyEntry)

func WithCategory(c domain.Category) EntryOption {
	return func(e *domain.VocabularyEntry) { e.Category = c }
}

func WithImage(url string) EntryOption {
	return func(e *domain.VocabularyEntry) { e.Image = url }
}

func WithNative(native string) EntryOption {
	return func(e *domain.VocabularyEntry) { e.Native = native }
}

// NewTestEntry builds a valid entry; the native text defaults to a marked
// copy of target.
func NewTestEntry(id int, target string, opts ...EntryOption) domain.VocabularyEntry {
	e := domain.VocabularyEntry{
		ID:       id,
		Target:   target,
		Native:   target + " (fr)",
		Category: domain.CategoryBasics,
	}
	for _, opt := range opts {
		opt(&e)
	}
	return e
}

// NewTestCatalog returns n entries with ids 1..n spread over all categories.
func NewTestCatalog(n int) []domain.VocabularyEntry {
	out := make([]domain.VocabularyEntry, n)
	for i := range out {
		out[i] = NewTestEntry(i+1, fmt.Sprintf("Word %d", i+1),
			WithCategory(domain.Categories[i%len(domain.Categories)]))
	}
	return out
}
