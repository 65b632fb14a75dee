package service

import (
	"context"
	"errors"
	"testing"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/BigChangeApps/labs-sub003/internal/repository"
	"github.com/BigChangeApps/labs-sub003/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func invoiceJobs() []domain.Job {
	return []domain.Job{
		testutil.NewTestJob("J1", []domain.LineSeed{
			testutil.NewTestLine(domain.LineLabour, 1, 100, testutil.WithLineID("L1")),
			testutil.NewTestLine(domain.LineMaterials, 1, 50, testutil.WithLineID("L2")),
		}, testutil.WithSite("s-north", "North")),
		testutil.NewTestJob("J2", []domain.LineSeed{
			testutil.NewTestLine(domain.LineOther, 2, 20, testutil.WithLineID("L3")),
		}, testutil.WithSite("s-south", "South")),
	}
}

func initInvoice(t *testing.T, svc InvoiceService, invoiceID string) *InvoiceView {
	t.Helper()
	v, err := svc.Init(context.Background(), invoiceID, invoiceJobs(), "")
	require.NoError(t, err)
	return v
}

func TestInvoiceService_InitAndTotals(t *testing.T) {
	_, uow := setupDB(t)
	svc := NewInvoiceService(uow, 0.20, domain.ViewSummary)

	v := initInvoice(t, svc, "INV-1")
	assert.Equal(t, domain.ViewSummary, v.State.ViewMode, "configured default mode applies")
	assert.Equal(t, "190.00", v.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, "38.00", v.Totals.VATAmount.StringFixed(2))
	assert.Equal(t, "228.00", v.Totals.Total.StringFixed(2))
	assert.Equal(t, 2, v.Counts["J1"].Included)
	require.Len(t, v.Breakdown, 1, "both jobs share the default contact")

	v, err := svc.ToggleLine(context.Background(), "INV-1", "J1", "L2")
	require.NoError(t, err)
	// Subtotal is the sum of the remaining selected lines, 100 + 40.
	assert.Equal(t, "140.00", v.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, "28.00", v.Totals.VATAmount.StringFixed(2))
	assert.Equal(t, "168.00", v.Totals.Total.StringFixed(2))
	assert.Equal(t, 1, v.Counts["J1"].Included)
	assert.Equal(t, 2, v.Counts["J1"].Total)
}

func TestInvoiceService_StatePersistsAcrossCalls(t *testing.T) {
	_, uow := setupDB(t)
	ctx := context.Background()
	svc := NewInvoiceService(uow, 0.20, "")
	initInvoice(t, svc, "INV-1")

	_, err := svc.ToggleJob(ctx, "INV-1", "J1", false)
	require.NoError(t, err)

	// A second service over the same store sees the exclusion and its snapshot.
	other := NewInvoiceService(uow, 0.20, "")
	v, err := other.Get(ctx, "INV-1")
	require.NoError(t, err)
	assert.Equal(t, 0, v.Counts["J1"].Included)
	require.NotNil(t, v.State.Jobs["J1"].LastSelection)

	v, err = other.ToggleJob(ctx, "INV-1", "J1", true)
	require.NoError(t, err)
	assert.Equal(t, 2, v.Counts["J1"].Included)
	assert.Nil(t, v.State.Jobs["J1"].LastSelection)
}

func TestInvoiceService_ToggleCategory(t *testing.T) {
	_, uow := setupDB(t)
	ctx := context.Background()
	svc := NewInvoiceService(uow, 0.20, "")
	initInvoice(t, svc, "INV-1")

	v, err := svc.ToggleCategory(ctx, "INV-1", "J2", domain.LineOther)
	require.NoError(t, err)
	assert.Equal(t, 0, v.Counts["J2"].Included)

	_, err = svc.ToggleCategory(ctx, "INV-1", "J2", "travel")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvoiceService_ModesAndBreakdown(t *testing.T) {
	_, uow := setupDB(t)
	ctx := context.Background()
	svc := NewInvoiceService(uow, 0.20, "")
	initInvoice(t, svc, "INV-1")

	v, err := svc.SetBreakdown(ctx, "INV-1", domain.BreakdownSite)
	require.NoError(t, err)
	require.Len(t, v.Breakdown, 2)
	assert.Equal(t, "North", v.Breakdown[0].Name)

	v, err = svc.SetViewMode(ctx, "INV-1", domain.ViewDetailed)
	require.NoError(t, err)
	assert.Len(t, v.Breakdown[0].Lines, 2)

	_, err = svc.SetViewMode(ctx, "INV-1", "verbose")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = svc.SetBreakdown(ctx, "INV-1", "region")
	assert.ErrorIs(t, err, domain.ErrValidation)

	v, err = svc.Get(ctx, "INV-1")
	require.NoError(t, err)
	assert.Equal(t, domain.ViewDetailed, v.State.ViewMode, "rejected changes are not saved")
	assert.Equal(t, domain.BreakdownSite, v.State.Breakdown)
}

func TestInvoiceService_UpdateLinesPreservesSelection(t *testing.T) {
	_, uow := setupDB(t)
	ctx := context.Background()
	svc := NewInvoiceService(uow, 0.20, "")
	initInvoice(t, svc, "INV-1")

	_, err := svc.ToggleLine(ctx, "INV-1", "J1", "L1")
	require.NoError(t, err)

	v, err := svc.UpdateLines(ctx, "INV-1", "J1", []domain.LineSeed{
		testutil.NewTestLine(domain.LineLabour, 2, 100, testutil.WithLineID("L1")),
		testutil.NewTestLine(domain.LineMaterials, 1, 50, testutil.WithLineID("L2")),
		testutil.NewTestLine(domain.LineOther, 1, 5, testutil.WithLineID("L4")),
	})
	require.NoError(t, err)
	assert.Equal(t, 2, v.Counts["J1"].Included, "L1 stays deselected, L4 arrives selected")
	assert.Equal(t, 3, v.Counts["J1"].Total)
	assert.Equal(t, "95.00", v.Totals.Subtotal.StringFixed(2))
}

func TestInvoiceService_GroupLines(t *testing.T) {
	_, uow := setupDB(t)
	ctx := context.Background()
	svc := NewInvoiceService(uow, 0.20, "")
	initInvoice(t, svc, "INV-1")

	v, err := svc.SetGroupLines(ctx, "INV-1", []domain.LineSeed{
		testutil.NewTestLine(domain.LineOther, 1, 10, testutil.WithLineID("G1")),
	})
	require.NoError(t, err)
	assert.Equal(t, "200.00", v.Totals.Subtotal.StringFixed(2))

	v, err = svc.ToggleGroupLine(ctx, "INV-1", "G1")
	require.NoError(t, err)
	assert.Equal(t, "190.00", v.Totals.Subtotal.StringFixed(2))
}

func TestInvoiceService_UnknownTargets(t *testing.T) {
	_, uow := setupDB(t)
	ctx := context.Background()
	svc := NewInvoiceService(uow, 0.20, "")
	initInvoice(t, svc, "INV-1")

	_, err := svc.Get(ctx, "INV-404")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	_, err = svc.ToggleLine(ctx, "INV-404", "J1", "L1")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	v, err := svc.ToggleLine(ctx, "INV-1", "J9", "L1")
	require.NoError(t, err, "unknown jobs are ignored")
	assert.Equal(t, "190.00", v.Totals.Subtotal.StringFixed(2))

	_, err = svc.Init(ctx, "", invoiceJobs(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestInvoiceService_ListAndDispose(t *testing.T) {
	_, uow := setupDB(t)
	ctx := context.Background()
	svc := NewInvoiceService(uow, 0.20, "")
	initInvoice(t, svc, "INV-1")
	initInvoice(t, svc, "INV-2")

	drafts, err := svc.List(ctx)
	require.NoError(t, err)
	var ids []string
	for _, d := range drafts {
		ids = append(ids, d.InvoiceID)
	}
	assert.ElementsMatch(t, []string{"INV-1", "INV-2"}, ids)

	require.NoError(t, svc.Dispose(ctx, "INV-1"))
	assert.ErrorIs(t, svc.Dispose(ctx, "INV-1"), repository.ErrNotFound)
	_, err = svc.Get(ctx, "INV-1")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestInvoiceService_FailedSaveRollsBack(t *testing.T) {
	database, uow := setupDB(t)
	ctx := context.Background()
	initInvoice(t, NewInvoiceService(uow, 0.20, ""), "INV-1")

	failUoW := &testutil.FailOnNthExecUoW{
		DB:     database,
		FailOn: 1,
		Err:    errors.New("injected draft save failure"),
	}
	failing := NewInvoiceService(failUoW, 0.20, "")
	_, err := failing.ToggleJob(ctx, "INV-1", "J1", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "injected draft save failure")

	v, err := NewInvoiceService(uow, 0.20, "").Get(ctx, "INV-1")
	require.NoError(t, err)
	assert.Equal(t, 2, v.Counts["J1"].Included)
}

func TestInvoiceService_ObservesUseCases(t *testing.T) {
	_, uow := setupDB(t)
	obs := &recordingObserver{}
	svc := NewInvoiceService(uow, 0.20, "", obs)
	initInvoice(t, svc, "INV-1")

	ev := obs.last()
	assert.Equal(t, "init-invoice", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, 2, ev.Fields["jobs"])
}
