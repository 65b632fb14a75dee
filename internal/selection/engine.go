package selection

import (
	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultVATRate is applied when no rate is configured.
const DefaultVATRate = 0.20

// Engine applies selection transitions to the invoices held by a Store.
//
// Operations addressed at an unknown invoice, job or line are silent no-ops
// and reads of unknown targets return zero values. Only malformed input
// (an unknown view mode or breakdown level) is reported as an error.
type Engine struct {
	store   *Store
	vatRate decimal.Decimal
}

// Option configures an Engine.
type Option func(*Engine)

// WithVATRate overrides DefaultVATRate.
func WithVATRate(rate float64) Option {
	return func(e *Engine) { e.vatRate = decimal.NewFromFloat(rate) }
}

// NewEngine returns an engine operating on store.
func NewEngine(store *Store, opts ...Option) *Engine {
	e := &Engine{store: store, vatRate: decimal.NewFromFloat(DefaultVATRate)}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Store() *Store { return e.store }

// VATRate returns the rate used by CalculateTotals.
func (e *Engine) VATRate() decimal.Decimal { return e.vatRate }

// LineCounts is the number of selected lines out of all lines of a job.
type LineCounts struct {
	Included int `json:"included"`
	Total    int `json:"total"`
}

// Initialize seeds one job state per job and replaces any prior state of
// invoiceID. Lines without an explicit selection start selected. An empty
// mode means DefaultViewMode.
func (e *Engine) Initialize(invoiceID string, jobs []domain.Job, mode domain.ViewMode) error {
	if invoiceID == "" {
		return domain.NewValidationError("invoice", "invoice id is required")
	}
	if mode == "" {
		mode = domain.DefaultViewMode
	}
	if !domain.ValidViewModes[mode] {
		return domain.NewValidationError("view_mode", "unknown view mode %q", mode)
	}
	st := domain.NewInvoiceSelectionState(invoiceID)
	st.ViewMode = mode
	for _, job := range jobs {
		if _, seen := st.Jobs[job.ID]; !seen {
			st.JobOrder = append(st.JobOrder, job.ID)
		}
		st.Jobs[job.ID] = domain.NewJobSelectionState(job)
	}
	e.store.put(st)
	return nil
}

func (e *Engine) job(invoiceID, jobID string) *domain.JobSelectionState {
	st, ok := e.store.Get(invoiceID)
	if !ok {
		return nil
	}
	return st.Jobs[jobID]
}

// ToggleLineItem flips the selection of exactly one line.
func (e *Engine) ToggleLineItem(invoiceID, jobID, lineID string) {
	if js := e.job(invoiceID, jobID); js != nil {
		js.ToggleLine(lineID)
	}
}

// ToggleJob excludes or includes a whole job. Excluding remembers the
// current selection and clears it; including restores and forgets that
// selection, or selects every line when nothing was remembered.
func (e *Engine) ToggleJob(invoiceID, jobID string, include bool) {
	js := e.job(invoiceID, jobID)
	if js == nil {
		return
	}
	if include {
		js.Include()
		return
	}
	js.Exclude()
}

// ToggleCategory deselects every line of cat when all of them are selected
// and selects all of them otherwise.
func (e *Engine) ToggleCategory(invoiceID, jobID string, cat domain.LineCategory) {
	if js := e.job(invoiceID, jobID); js != nil {
		js.ToggleCategory(cat)
	}
}

// LineCounts returns {0, 0} for an unknown invoice or job.
func (e *Engine) LineCounts(invoiceID, jobID string) LineCounts {
	js := e.job(invoiceID, jobID)
	if js == nil {
		return LineCounts{}
	}
	inc, total := js.Counts()
	return LineCounts{Included: inc, Total: total}
}

// UpdateJobLineItems replaces the lines of a job. Lines whose ID existed
// before keep their previous selection; new lines keep the selection they
// were given.
func (e *Engine) UpdateJobLineItems(invoiceID, jobID string, lines []domain.LineItem) {
	if js := e.job(invoiceID, jobID); js != nil {
		js.ReplaceLines(lines)
	}
}

// SetViewMode changes the level of detail of an initialised invoice.
func (e *Engine) SetViewMode(invoiceID string, mode domain.ViewMode) error {
	if !domain.ValidViewModes[mode] {
		return domain.NewValidationError("view_mode", "unknown view mode %q", mode)
	}
	if st, ok := e.store.Get(invoiceID); ok {
		st.ViewMode = mode
	}
	return nil
}

// ViewMode returns DefaultViewMode for an unknown invoice.
func (e *Engine) ViewMode(invoiceID string) domain.ViewMode {
	st, ok := e.store.Get(invoiceID)
	if !ok || st.ViewMode == "" {
		return domain.DefaultViewMode
	}
	return st.ViewMode
}

// SetBreakdown changes how BuildBreakdown groups jobs.
func (e *Engine) SetBreakdown(invoiceID string, level domain.BreakdownLevel) error {
	if !domain.ValidBreakdownLevels[level] {
		return domain.NewValidationError("breakdown", "unknown breakdown level %q", level)
	}
	if st, ok := e.store.Get(invoiceID); ok {
		st.Breakdown = level
	}
	return nil
}

// Breakdown returns BreakdownContact for an unknown invoice.
func (e *Engine) Breakdown(invoiceID string) domain.BreakdownLevel {
	st, ok := e.store.Get(invoiceID)
	if !ok || st.Breakdown == "" {
		return domain.BreakdownContact
	}
	return st.Breakdown
}

// SetGroupLines replaces the invoice-level lines that are not tied to a job.
func (e *Engine) SetGroupLines(invoiceID string, lines []domain.LineItem) {
	st, ok := e.store.Get(invoiceID)
	if !ok {
		return
	}
	st.GroupLines = append([]domain.LineItem(nil), lines...)
}

// ToggleGroupLine flips the selection of one invoice-level line.
func (e *Engine) ToggleGroupLine(invoiceID, lineID string) {
	st, ok := e.store.Get(invoiceID)
	if !ok {
		return
	}
	for i := range st.GroupLines {
		if st.GroupLines[i].ID == lineID {
			st.GroupLines[i].Selected = !st.GroupLines[i].Selected
			return
		}
	}
}

// Snapshot returns a deep copy of an invoice state for persistence.
func (e *Engine) Snapshot(invoiceID string) (*domain.InvoiceSelectionState, bool) {
	st, ok := e.store.Get(invoiceID)
	if !ok {
		return nil, false
	}
	return st.Clone(), true
}

// Restore installs a copy of a previously snapshotted state, replacing any
// state held under the same invoice ID.
func (e *Engine) Restore(state *domain.InvoiceSelectionState) error {
	if state == nil || state.InvoiceID == "" {
		return domain.NewValidationError("invoice", "invoice id is required")
	}
	st := state.Clone()
	st.ViewMode = domain.ViewMode(domain.CoalesceStr(string(st.ViewMode), string(domain.DefaultViewMode)))
	st.Breakdown = domain.BreakdownLevel(domain.CoalesceStr(string(st.Breakdown), string(domain.BreakdownContact)))
	if !domain.ValidViewModes[st.ViewMode] {
		return domain.NewValidationError("view_mode", "unknown view mode %q", st.ViewMode)
	}
	if !domain.ValidBreakdownLevels[st.Breakdown] {
		return domain.NewValidationError("breakdown", "unknown breakdown level %q", st.Breakdown)
	}
	if st.Jobs == nil {
		st.Jobs = map[string]*domain.JobSelectionState{}
	}
	ordered := make(map[string]bool, len(st.JobOrder))
	for _, id := range st.JobOrder {
		if _, ok := st.Jobs[id]; !ok {
			return domain.NewValidationError("jobs", "job order references unknown job %q", id)
		}
		ordered[id] = true
	}
	for id := range st.Jobs {
		if !ordered[id] {
			return domain.NewValidationError("jobs", "job %q is missing from the job order", id)
		}
	}
	e.store.put(st)
	return nil
}

// Dispose ends the session of an invoice.
func (e *Engine) Dispose(invoiceID string) bool {
	return e.store.Dispose(invoiceID)
}
