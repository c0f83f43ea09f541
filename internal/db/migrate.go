package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent so the full
// list is applied on every open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS decks (
		id         INTEGER PRIMARY KEY CHECK(id = 1),
		name       TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS vocabulary (
		id         INTEGER PRIMARY KEY CHECK(id > 0),
		target     TEXT NOT NULL CHECK(length(trim(target)) > 0),
		native     TEXT NOT NULL CHECK(length(trim(native)) > 0),
		category   TEXT NOT NULL
		           CHECK(category IN ('Basics','Food','Travel','Business','Social')),
		created_at TEXT NOT NULL
	)`,
	`ALTER TABLE vocabulary ADD COLUMN image TEXT NOT NULL DEFAULT ''`,
	`CREATE INDEX IF NOT EXISTS idx_vocabulary_category ON vocabulary(category)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_vocabulary_target ON vocabulary(target COLLATE NOCASE)`,
}
