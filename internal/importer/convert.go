package importer

import (
	"strings"

	"github.com/alexanderramin/parley/internal/domain"
)

// Convert transforms a validated DeckSchema into vocabulary entries.
// Call ValidateDeckSchema first; Convert assumes the schema is valid.
func Convert(schema *DeckSchema) []domain.VocabularyEntry {
	entries := make([]domain.VocabularyEntry, 0, len(schema.Entries))
	for _, e := range schema.Entries {
		category, _ := domain.ParseCategory(e.Category)
		entries = append(entries, domain.VocabularyEntry{
			ID:       e.ID,
			Target:   strings.TrimSpace(e.Target),
			Native:   strings.TrimSpace(e.Native),
			Category: category,
			Image:    strings.TrimSpace(e.Image),
		})
	}
	return entries
}
