package service

import (
	"context"
	"fmt"

	"github.com/BigChangeApps/labs-sub003/internal/db"
	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/BigChangeApps/labs-sub003/internal/repository"
	"github.com/BigChangeApps/labs-sub003/internal/selection"
)

type invoiceService struct {
	uow         db.UnitOfWork
	vatRate     float64
	defaultMode domain.ViewMode
	observer    UseCaseObserver
}

// NewInvoiceService returns an InvoiceService that keeps one draft per
// invoice in the local store. An empty defaultMode means
// domain.DefaultViewMode.
func NewInvoiceService(uow db.UnitOfWork, vatRate float64, defaultMode domain.ViewMode, observers ...UseCaseObserver) InvoiceService {
	return &invoiceService{
		uow:         uow,
		vatRate:     vatRate,
		defaultMode: domain.ViewMode(domain.CoalesceStr(string(defaultMode), string(domain.DefaultViewMode))),
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *invoiceService) engine() *selection.Engine {
	return selection.NewEngine(selection.NewStore(), selection.WithVATRate(s.vatRate))
}

func (s *invoiceService) view(e *selection.Engine, invoiceID string) *InvoiceView {
	st, _ := e.Snapshot(invoiceID)
	v := &InvoiceView{
		State:     st,
		Counts:    make(map[string]selection.LineCounts, len(st.JobOrder)),
		Totals:    e.CalculateTotals(invoiceID),
		Breakdown: e.BuildBreakdown(invoiceID),
	}
	for _, jobID := range st.JobOrder {
		v.Counts[jobID] = e.LineCounts(invoiceID, jobID)
	}
	return v
}

// apply loads the draft of invoiceID, runs fn against it and saves the
// result. A missing draft is reported as repository.ErrNotFound.
func (s *invoiceService) apply(ctx context.Context, invoiceID string, fn func(e *selection.Engine) error) (v *InvoiceView, err error) {
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteInvoiceDraftRepo(tx)
		st, err := repo.Get(ctx, invoiceID)
		if err != nil {
			return fmt.Errorf("loading invoice %s: %w", invoiceID, err)
		}
		e := s.engine()
		if err := e.Restore(st); err != nil {
			return fmt.Errorf("restoring invoice %s: %w", invoiceID, err)
		}
		if fn != nil {
			if err := fn(e); err != nil {
				return err
			}
			snap, _ := e.Snapshot(invoiceID)
			if err := repo.Save(ctx, snap); err != nil {
				return err
			}
		}
		v = s.view(e, invoiceID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (s *invoiceService) Init(ctx context.Context, invoiceID string, jobs []domain.Job, mode domain.ViewMode) (v *InvoiceView, err error) {
	defer observe(ctx, s.observer, "init-invoice", map[string]any{"invoice_id": invoiceID, "jobs": len(jobs)}, &err)()
	if mode == "" {
		mode = s.defaultMode
	}
	e := s.engine()
	if err := e.Initialize(invoiceID, jobs, mode); err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		snap, _ := e.Snapshot(invoiceID)
		return repository.NewSQLiteInvoiceDraftRepo(tx).Save(ctx, snap)
	})
	if err != nil {
		return nil, err
	}
	return s.view(e, invoiceID), nil
}

func (s *invoiceService) Get(ctx context.Context, invoiceID string) (*InvoiceView, error) {
	return s.apply(ctx, invoiceID, nil)
}

func (s *invoiceService) List(ctx context.Context) (drafts []repository.DraftSummary, err error) {
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		drafts, err = repository.NewSQLiteInvoiceDraftRepo(tx).List(ctx)
		return err
	})
	return drafts, err
}

func (s *invoiceService) Dispose(ctx context.Context, invoiceID string) (err error) {
	defer observe(ctx, s.observer, "dispose-invoice", map[string]any{"invoice_id": invoiceID}, &err)()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteInvoiceDraftRepo(tx).Delete(ctx, invoiceID); err != nil {
			return fmt.Errorf("disposing invoice %s: %w", invoiceID, err)
		}
		return nil
	})
}

func (s *invoiceService) ToggleLine(ctx context.Context, invoiceID, jobID, lineID string) (v *InvoiceView, err error) {
	defer observe(ctx, s.observer, "toggle-line", map[string]any{"invoice_id": invoiceID, "job_id": jobID, "line_id": lineID}, &err)()
	return s.apply(ctx, invoiceID, func(e *selection.Engine) error {
		e.ToggleLineItem(invoiceID, jobID, lineID)
		return nil
	})
}

func (s *invoiceService) ToggleJob(ctx context.Context, invoiceID, jobID string, include bool) (v *InvoiceView, err error) {
	defer observe(ctx, s.observer, "toggle-job", map[string]any{"invoice_id": invoiceID, "job_id": jobID, "include": include}, &err)()
	return s.apply(ctx, invoiceID, func(e *selection.Engine) error {
		e.ToggleJob(invoiceID, jobID, include)
		return nil
	})
}

func (s *invoiceService) ToggleCategory(ctx context.Context, invoiceID, jobID string, cat domain.LineCategory) (v *InvoiceView, err error) {
	defer observe(ctx, s.observer, "toggle-category", map[string]any{"invoice_id": invoiceID, "job_id": jobID, "category": string(cat)}, &err)()
	if !domain.ValidLineCategories[cat] {
		return nil, domain.NewValidationError("category", "unknown line category %q", cat)
	}
	return s.apply(ctx, invoiceID, func(e *selection.Engine) error {
		e.ToggleCategory(invoiceID, jobID, cat)
		return nil
	})
}

func (s *invoiceService) UpdateLines(ctx context.Context, invoiceID, jobID string, seeds []domain.LineSeed) (v *InvoiceView, err error) {
	defer observe(ctx, s.observer, "update-lines", map[string]any{"invoice_id": invoiceID, "job_id": jobID, "lines": len(seeds)}, &err)()
	lines := make([]domain.LineItem, 0, len(seeds))
	for _, seed := range seeds {
		lines = append(lines, seed.Item(jobID))
	}
	return s.apply(ctx, invoiceID, func(e *selection.Engine) error {
		e.UpdateJobLineItems(invoiceID, jobID, lines)
		return nil
	})
}

func (s *invoiceService) SetGroupLines(ctx context.Context, invoiceID string, seeds []domain.LineSeed) (v *InvoiceView, err error) {
	defer observe(ctx, s.observer, "set-group-lines", map[string]any{"invoice_id": invoiceID, "lines": len(seeds)}, &err)()
	lines := make([]domain.LineItem, 0, len(seeds))
	for _, seed := range seeds {
		lines = append(lines, seed.Item(""))
	}
	return s.apply(ctx, invoiceID, func(e *selection.Engine) error {
		e.SetGroupLines(invoiceID, lines)
		return nil
	})
}

func (s *invoiceService) ToggleGroupLine(ctx context.Context, invoiceID, lineID string) (v *InvoiceView, err error) {
	defer observe(ctx, s.observer, "toggle-group-line", map[string]any{"invoice_id": invoiceID, "line_id": lineID}, &err)()
	return s.apply(ctx, invoiceID, func(e *selection.Engine) error {
		e.ToggleGroupLine(invoiceID, lineID)
		return nil
	})
}

func (s *invoiceService) SetViewMode(ctx context.Context, invoiceID string, mode domain.ViewMode) (v *InvoiceView, err error) {
	defer observe(ctx, s.observer, "set-view-mode", map[string]any{"invoice_id": invoiceID, "mode": string(mode)}, &err)()
	return s.apply(ctx, invoiceID, func(e *selection.Engine) error {
		return e.SetViewMode(invoiceID, mode)
	})
}

func (s *invoiceService) SetBreakdown(ctx context.Context, invoiceID string, level domain.BreakdownLevel) (v *InvoiceView, err error) {
	defer observe(ctx, s.observer, "set-breakdown", map[string]any{"invoice_id": invoiceID, "level": string(level)}, &err)()
	return s.apply(ctx, invoiceID, func(e *selection.Engine) error {
		return e.SetBreakdown(invoiceID, level)
	})
}
