package importer

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/alexanderramin/parley/internal/domain"
)

// ValidateDeckSchema checks a deck before conversion and returns every
// problem found. minEntries is the smallest deck a lesson can use.
func ValidateDeckSchema(schema *DeckSchema, minEntries int) []error {
	var errs []error

	if strings.TrimSpace(schema.Name) == "" {
		errs = append(errs, fmt.Errorf("name is required"))
	}
	if len(schema.Entries) < minEntries {
		errs = append(errs, fmt.Errorf("entries: need at least %d, got %d", minEntries, len(schema.Entries)))
	}

	ids := make(map[int]int)
	targets := make(map[string]int)
	for i, e := range schema.Entries {
		errs = append(errs, validateEntry(i, e)...)

		if prev, ok := ids[e.ID]; ok && e.ID > 0 {
			errs = append(errs, fmt.Errorf("entries[%d].id: %d already used by entries[%d]", i, e.ID, prev))
		} else {
			ids[e.ID] = i
		}
		key := strings.ToLower(strings.TrimSpace(e.Target))
		if prev, ok := targets[key]; ok && key != "" {
			errs = append(errs, fmt.Errorf("entries[%d].target: %q duplicates entries[%d]", i, e.Target, prev))
		} else {
			targets[key] = i
		}
	}
	return errs
}

func validateEntry(i int, e EntryImport) []error {
	var errs []error
	if e.ID <= 0 {
		errs = append(errs, fmt.Errorf("entries[%d].id must be positive", i))
	}
	if strings.TrimSpace(e.Target) == "" {
		errs = append(errs, fmt.Errorf("entries[%d].target is required", i))
	}
	if strings.TrimSpace(e.Native) == "" {
		errs = append(errs, fmt.Errorf("entries[%d].native is required", i))
	}
	if _, ok := domain.ParseCategory(e.Category); !ok {
		errs = append(errs, fmt.Errorf("entries[%d].category: invalid value %q (expected one of %s)",
			i, e.Category, categoryList()))
	}
	if e.Image != "" {
		if u, err := url.Parse(e.Image); err != nil || (u.Scheme != "http" && u.Scheme != "https") {
			errs = append(errs, fmt.Errorf("entries[%d].image: %q is not an http(s) URL", i, e.Image))
		}
	}
	return errs
}

func categoryList() string {
	names := make([]string, len(domain.Categories))
	for i, c := range domain.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
