package repository

import (
	"context"

	"github.com/BigChangeApps/labs-sub003/internal/catalog"
	"github.com/BigChangeApps/labs-sub003/internal/db"
)

const catalogKey = "current"

// SQLiteCatalogRepo stores the whole catalog as one JSON snapshot.
type SQLiteCatalogRepo struct {
	store LocalStore
}

// NewSQLiteCatalogRepo creates a new SQLiteCatalogRepo.
func NewSQLiteCatalogRepo(conn db.DBTX) *SQLiteCatalogRepo {
	return &SQLiteCatalogRepo{store: NewSQLiteLocalStore(conn)}
}

// Load returns ErrNotFound until the catalog has been saved once.
func (r *SQLiteCatalogRepo) Load(ctx context.Context) (catalog.Snapshot, error) {
	e, err := r.store.Get(ctx, db.NamespaceCatalog, catalogKey)
	if err != nil {
		return catalog.Snapshot{}, err
	}
	var s catalog.Snapshot
	if err := decodeValue("catalog", e.Value, &s); err != nil {
		return catalog.Snapshot{}, err
	}
	return s, nil
}

func (r *SQLiteCatalogRepo) Save(ctx context.Context, s catalog.Snapshot) error {
	data, err := encodeValue("catalog", s)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, db.NamespaceCatalog, catalogKey, data)
}
