package repository

import (
	"context"
	"testing"
	"time"

	"github.com/BigChangeApps/labs-sub003/internal/db"
	"github.com/BigChangeApps/labs-sub003/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_PutGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := NewSQLiteLocalStore(database)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, db.NamespacePrefs, "theme", []byte(`"classic"`)))
	e, err := store.Get(ctx, db.NamespacePrefs, "theme")
	require.NoError(t, err)
	assert.Equal(t, `"classic"`, string(e.Value))
	assert.False(t, e.UpdatedAt.IsZero())

	require.NoError(t, store.Put(ctx, db.NamespacePrefs, "theme", []byte(`"bigchange"`)))
	e, err = store.Get(ctx, db.NamespacePrefs, "theme")
	require.NoError(t, err)
	assert.Equal(t, `"bigchange"`, string(e.Value), "put overwrites")
}

func TestLocalStore_NotFound(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := NewSQLiteLocalStore(database)
	ctx := context.Background()

	_, err := store.Get(ctx, db.NamespaceInvoice, "INV1")
	assert.ErrorIs(t, err, ErrNotFound)

	err = store.Delete(ctx, db.NamespaceInvoice, "INV1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLocalStore_NamespacesAreIsolated(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := NewSQLiteLocalStore(database)
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, db.NamespaceInvoice, "k", []byte("1")))
	require.NoError(t, store.Put(ctx, db.NamespaceCatalog, "k", []byte("2")))

	require.NoError(t, store.Delete(ctx, db.NamespaceInvoice, "k"))
	e, err := store.Get(ctx, db.NamespaceCatalog, "k")
	require.NoError(t, err)
	assert.Equal(t, "2", string(e.Value))
}

func TestLocalStore_ListMostRecentFirst(t *testing.T) {
	database := testutil.NewTestDB(t)
	store := NewSQLiteLocalStore(database)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}
	ctx := context.Background()

	require.NoError(t, store.Put(ctx, db.NamespaceInvoice, "A", []byte("{}")))
	require.NoError(t, store.Put(ctx, db.NamespaceInvoice, "B", []byte("{}")))
	require.NoError(t, store.Put(ctx, db.NamespaceInvoice, "A", []byte("{}")))
	require.NoError(t, store.Put(ctx, db.NamespacePrefs, "theme", []byte("{}")))

	entries, err := store.List(ctx, db.NamespaceInvoice)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "A", entries[0].Key)
	assert.Equal(t, "B", entries[1].Key)
	assert.True(t, base.Add(3*time.Minute).Equal(entries[0].UpdatedAt))
}

func TestLocalStore_WithinTxRollback(t *testing.T) {
	database := testutil.NewTestDB(t)
	uow := testutil.NewTestUoW(database)
	ctx := context.Background()

	err := uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := NewSQLiteLocalStore(tx).Put(ctx, db.NamespaceCatalog, "current", []byte("{}")); err != nil {
			return err
		}
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	_, err = NewSQLiteLocalStore(database).Get(ctx, db.NamespaceCatalog, "current")
	assert.ErrorIs(t, err, ErrNotFound)
}
