package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/BigChangeApps/labs-sub003/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func putDraft(ctx context.Context, tx db.DBTX, key, value string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO local_store (namespace, key, value) VALUES (?, ?, ?)`,
		db.NamespaceInvoice, key, value)
	return err
}

func draftCount(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM local_store WHERE namespace = ?`, db.NamespaceInvoice).Scan(&n))
	return n
}

func TestWithinTx_Commits(t *testing.T) {
	database, uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putDraft(ctx, tx, "inv-1", `{}`); err != nil {
			return err
		}
		return putDraft(ctx, tx, "inv-2", `{}`)
	})
	require.NoError(t, err)
	assert.Equal(t, 2, draftCount(t, database))
}

func TestWithinTx_RollsBackEveryWriteOnError(t *testing.T) {
	database, uow := newUoW(t)
	errSave := errors.New("save failed")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putDraft(ctx, tx, "inv-1", `{}`); err != nil {
			return err
		}
		return errSave
	})
	require.ErrorIs(t, err, errSave)
	assert.Zero(t, draftCount(t, database))
}

func TestWithinTx_ConstraintViolationRollsBack(t *testing.T) {
	database, uow := newUoW(t)

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		if err := putDraft(ctx, tx, "inv-1", `{}`); err != nil {
			return err
		}
		// Same primary key.
		return putDraft(ctx, tx, "inv-1", `{"x":1}`)
	})
	require.Error(t, err)
	assert.Zero(t, draftCount(t, database))
}

func TestWithinTx_PanicRollsBackAndRepanics(t *testing.T) {
	database, uow := newUoW(t)

	assert.PanicsWithValue(t, "restore failed", func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = putDraft(ctx, tx, "inv-1", `{}`)
			panic("restore failed")
		})
	})
	assert.Zero(t, draftCount(t, database))
}
