package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/parley/internal/db"
	"github.com/alexanderramin/parley/internal/domain"
)

// SQLiteVocabularyRepo implements VocabularyRepo using a SQLite database.
type SQLiteVocabularyRepo struct {
	db db.DBTX
}

func NewSQLiteVocabularyRepo(conn db.DBTX) *SQLiteVocabularyRepo {
	return &SQLiteVocabularyRepo{db: conn}
}

const vocabularyColumns = `id, target, native, category, image`

func (r *SQLiteVocabularyRepo) Create(ctx context.Context, e domain.VocabularyEntry) error {
	query := `INSERT INTO vocabulary (id, target, native, category, image, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, e.ID, e.Target, e.Native, string(e.Category), e.Image, nowUTC())
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("vocabulary entry %d (%s): %w", e.ID, e.Target, ErrDuplicate)
		}
		return fmt.Errorf("inserting vocabulary entry: %w", err)
	}
	return nil
}

func (r *SQLiteVocabularyRepo) GetByID(ctx context.Context, id int) (domain.VocabularyEntry, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+vocabularyColumns+` FROM vocabulary WHERE id = ?`, id)
	e, err := scanVocabulary(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.VocabularyEntry{}, fmt.Errorf("vocabulary entry %d: %w", id, ErrNotFound)
		}
		return domain.VocabularyEntry{}, fmt.Errorf("scanning vocabulary entry: %w", err)
	}
	return e, nil
}

// List returns entries ordered by id, optionally restricted to one category.
func (r *SQLiteVocabularyRepo) List(ctx context.Context, category *domain.Category) ([]domain.VocabularyEntry, error) {
	query := `SELECT ` + vocabularyColumns + ` FROM vocabulary`
	var args []any
	if category != nil {
		query += ` WHERE category = ?`
		args = append(args, string(*category))
	}
	query += ` ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing vocabulary: %w", err)
	}
	defer rows.Close()

	var entries []domain.VocabularyEntry
	for rows.Next() {
		e, err := scanVocabulary(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning vocabulary entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SQLiteVocabularyRepo) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM vocabulary`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting vocabulary: %w", err)
	}
	return n, nil
}

// NextID returns one more than the highest id in use.
func (r *SQLiteVocabularyRepo) NextID(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(id), 0) + 1 FROM vocabulary`).Scan(&n); err != nil {
		return 0, fmt.Errorf("allocating vocabulary id: %w", err)
	}
	return n, nil
}

func (r *SQLiteVocabularyRepo) Delete(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM vocabulary WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting vocabulary entry: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("vocabulary entry %d: %w", id, ErrNotFound)
	}
	return nil
}

func (r *SQLiteVocabularyRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM vocabulary`); err != nil {
		return fmt.Errorf("clearing vocabulary: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVocabulary(s rowScanner) (domain.VocabularyEntry, error) {
	var e domain.VocabularyEntry
	var category string
	if err := s.Scan(&e.ID, &e.Target, &e.Native, &category, &e.Image); err != nil {
		return domain.VocabularyEntry{}, err
	}
	e.Category = domain.Category(category)
	return e, nil
}
