package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/parley/internal/db"
)

// SQLiteDeckRepo stores the single deck header row.
type SQLiteDeckRepo struct {
	db db.DBTX
}

func NewSQLiteDeckRepo(conn db.DBTX) *SQLiteDeckRepo {
	return &SQLiteDeckRepo{db: conn}
}

func (r *SQLiteDeckRepo) Get(ctx context.Context) (DeckInfo, error) {
	var info DeckInfo
	var updated string
	err := r.db.QueryRowContext(ctx, `SELECT name, updated_at FROM decks WHERE id = 1`).Scan(&info.Name, &updated)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return DeckInfo{}, fmt.Errorf("deck: %w", ErrNotFound)
		}
		return DeckInfo{}, fmt.Errorf("scanning deck: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, updated); err == nil {
		info.UpdatedAt = t
	}
	return info, nil
}

func (r *SQLiteDeckRepo) Upsert(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO decks (id, name, updated_at) VALUES (1, ?, ?)`, name, nowUTC())
	if err != nil {
		return fmt.Errorf("upserting deck: %w", err)
	}
	return nil
}
