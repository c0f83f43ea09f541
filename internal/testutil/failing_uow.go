package testutil

import (
	"context"
	"database/sql"
	"strings"

	"github.com/alexanderramin/parley/internal/db"
)

// FailingWriteUoW runs real transactions but fails the Nth write statement
// whose SQL starts with Prefix. An empty Prefix matches every write. Reads
// pass through, so tests can break a multi-row import at an exact row and
// check that nothing was kept.
type FailingWriteUoW struct {
	DB     *sql.DB
	Prefix string
	FailOn int
	Err    error
}

func (u *FailingWriteUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewTxRunner(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &failingWrites{DBTX: tx, uow: u})
	})
}

type failingWrites struct {
	db.DBTX
	uow  *FailingWriteUoW
	seen int
}

func (f *failingWrites) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	if strings.HasPrefix(strings.TrimSpace(query), f.uow.Prefix) {
		f.seen++
		if f.seen == f.uow.FailOn {
			return nil, f.uow.Err
		}
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
