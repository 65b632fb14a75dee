// Package selection is the invoice line-item selection engine. State for
// each invoice lives in a Store with an explicit lifecycle; the Engine
// applies selection transitions to it and derives counts, totals and
// breakdowns on demand.
package selection

import (
	"sort"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
)

// Store owns the selection state of every open invoice. A zero Store is not
// usable; call NewStore.
type Store struct {
	invoices map[string]*domain.InvoiceSelectionState
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{invoices: map[string]*domain.InvoiceSelectionState{}}
}

// Create installs a fresh, empty state for invoiceID, replacing any prior
// state under the same ID.
func (s *Store) Create(invoiceID string) *domain.InvoiceSelectionState {
	st := domain.NewInvoiceSelectionState(invoiceID)
	s.invoices[invoiceID] = st
	return st
}

// Get returns the live state of invoiceID.
func (s *Store) Get(invoiceID string) (*domain.InvoiceSelectionState, bool) {
	st, ok := s.invoices[invoiceID]
	return st, ok
}

// Dispose drops the state of invoiceID. It reports whether anything was
// removed.
func (s *Store) Dispose(invoiceID string) bool {
	if _, ok := s.invoices[invoiceID]; !ok {
		return false
	}
	delete(s.invoices, invoiceID)
	return true
}

// IDs returns the open invoice IDs, sorted.
func (s *Store) IDs() []string {
	ids := make([]string, 0, len(s.invoices))
	for id := range s.invoices {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *Store) Len() int { return len(s.invoices) }

func (s *Store) put(st *domain.InvoiceSelectionState) {
	s.invoices[st.InvoiceID] = st
}
