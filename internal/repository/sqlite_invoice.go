package repository

import (
	"context"

	"github.com/BigChangeApps/labs-sub003/internal/db"
	"github.com/BigChangeApps/labs-sub003/internal/domain"
)

// SQLiteInvoiceDraftRepo stores one selection state per invoice.
type SQLiteInvoiceDraftRepo struct {
	store LocalStore
}

// NewSQLiteInvoiceDraftRepo creates a new SQLiteInvoiceDraftRepo.
func NewSQLiteInvoiceDraftRepo(conn db.DBTX) *SQLiteInvoiceDraftRepo {
	return &SQLiteInvoiceDraftRepo{store: NewSQLiteLocalStore(conn)}
}

func (r *SQLiteInvoiceDraftRepo) Get(ctx context.Context, invoiceID string) (*domain.InvoiceSelectionState, error) {
	e, err := r.store.Get(ctx, db.NamespaceInvoice, invoiceID)
	if err != nil {
		return nil, err
	}
	var st domain.InvoiceSelectionState
	if err := decodeValue("invoice draft", e.Value, &st); err != nil {
		return nil, err
	}
	if st.Jobs == nil {
		st.Jobs = map[string]*domain.JobSelectionState{}
	}
	return &st, nil
}

func (r *SQLiteInvoiceDraftRepo) Save(ctx context.Context, st *domain.InvoiceSelectionState) error {
	data, err := encodeValue("invoice draft", st)
	if err != nil {
		return err
	}
	return r.store.Put(ctx, db.NamespaceInvoice, st.InvoiceID, data)
}

func (r *SQLiteInvoiceDraftRepo) Delete(ctx context.Context, invoiceID string) error {
	return r.store.Delete(ctx, db.NamespaceInvoice, invoiceID)
}

// List returns the stored drafts, most recently saved first.
func (r *SQLiteInvoiceDraftRepo) List(ctx context.Context) ([]DraftSummary, error) {
	entries, err := r.store.List(ctx, db.NamespaceInvoice)
	if err != nil {
		return nil, err
	}
	out := make([]DraftSummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, DraftSummary{InvoiceID: e.Key, UpdatedAt: e.UpdatedAt})
	}
	return out, nil
}
