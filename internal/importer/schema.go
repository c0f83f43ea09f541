package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// DeckSchema is the top-level JSON structure of a deck file.
type DeckSchema struct {
	Name    string        `json:"name"`
	Entries []EntryImport `json:"entries"`
}

// EntryImport defines one vocabulary entry in the deck file.
type EntryImport struct {
	ID       int    `json:"id"`
	Target   string `json:"target"`
	Native   string `json:"native"`
	Category string `json:"category"`
	Image    string `json:"image,omitempty"`
}

// LoadDeckSchema reads and parses a deck JSON file.
func LoadDeckSchema(path string) (*DeckSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseDeckSchema(data)
}

// ParseDeckSchema parses deck JSON. Unknown fields are rejected so typos in
// hand-written decks surface early.
func ParseDeckSchema(data []byte) (*DeckSchema, error) {
	var schema DeckSchema
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing deck file: %w", err)
	}
	return &schema, nil
}
