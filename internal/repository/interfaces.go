package repository

import (
	"context"
	"errors"
	"time"

	"github.com/BigChangeApps/labs-sub003/internal/catalog"
	"github.com/BigChangeApps/labs-sub003/internal/domain"
)

// ErrNotFound is returned, wrapped, when a key has no stored value.
var ErrNotFound = errors.New("not found")

// Entry is one stored value of the local store.
type Entry struct {
	Namespace string
	Key       string
	Value     []byte
	UpdatedAt time.Time
}

// LocalStore is a namespaced key/value store for catalog state, invoice
// drafts and preferences.
type LocalStore interface {
	Get(ctx context.Context, namespace, key string) (*Entry, error)
	Put(ctx context.Context, namespace, key string, value []byte) error
	Delete(ctx context.Context, namespace, key string) error
	List(ctx context.Context, namespace string) ([]*Entry, error)
}

type CatalogRepo interface {
	Load(ctx context.Context) (catalog.Snapshot, error)
	Save(ctx context.Context, s catalog.Snapshot) error
}

// DraftSummary describes a stored invoice draft without decoding it.
type DraftSummary struct {
	InvoiceID string
	UpdatedAt time.Time
}

type InvoiceDraftRepo interface {
	Get(ctx context.Context, invoiceID string) (*domain.InvoiceSelectionState, error)
	Save(ctx context.Context, st *domain.InvoiceSelectionState) error
	Delete(ctx context.Context, invoiceID string) error
	List(ctx context.Context) ([]DraftSummary, error)
}

type PreferencesRepo interface {
	Get(ctx context.Context) (domain.Preferences, error)
	Save(ctx context.Context, p domain.Preferences) error
}
