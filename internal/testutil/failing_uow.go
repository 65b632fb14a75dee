package testutil

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/BigChangeApps/labs-sub003/internal/db"
)

// ErrInjectedWrite is returned by FailOnNthExecUoW when Err is nil.
var ErrInjectedWrite = errors.New("injected write failure")

// FailOnNthExecUoW runs each WithinTx against a real transaction but fails
// the FailOn-th ExecContext (1-based) of that transaction. Reads are never
// counted, so a load-apply-save use case can be made to fail on its seed
// write, its save, or not at all (FailOn <= 0).
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	tx, err := u.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	failErr := u.Err
	if failErr == nil {
		failErr = ErrInjectedWrite
	}
	if err := fn(ctx, &failingTx{DBTX: tx, failOn: u.FailOn, err: failErr}); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

type failingTx struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (f *failingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.writes++
	if f.writes == f.failOn {
		return nil, f.err
	}
	return f.DBTX.ExecContext(ctx, query, args...)
}
