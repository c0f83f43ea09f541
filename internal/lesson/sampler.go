package lesson

import (
	"slices"

	"github.com/samber/lo"

	"github.com/alexanderramin/parley/internal/domain"
)

// Shuffle returns a uniformly permuted copy of items (Fisher-Yates).
func Shuffle[T any](items []T, rng Rand) []T {
	out := slices.Clone(items)
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// BuildQueue samples size distinct entries from catalog without replacement.
// A catalog smaller than size yields the whole catalog, shuffled.
func BuildQueue(catalog []domain.VocabularyEntry, size int, rng Rand) []domain.VocabularyEntry {
	if size < 0 {
		size = 0
	}
	queue := Shuffle(catalog, rng)
	if len(queue) > size {
		queue = queue[:size:size]
	}
	return queue
}

// BuildOptions returns the answer choices for correct: up to distractorCount
// other entries plus correct itself, each shown by its native text, shuffled.
func BuildOptions(catalog []domain.VocabularyEntry, correct domain.VocabularyEntry, distractorCount int, rng Rand) []domain.Option {
	others := lo.Filter(catalog, func(e domain.VocabularyEntry, _ int) bool {
		return e.ID != correct.ID
	})
	chosen := append(BuildQueue(others, distractorCount, rng), correct)
	options := lo.Map(chosen, func(e domain.VocabularyEntry, _ int) domain.Option {
		return domain.Option{ID: e.ID, Text: e.Native}
	})
	return Shuffle(options, rng)
}
