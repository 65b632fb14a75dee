package formatter

import (
	"testing"
	"time"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/BigChangeApps/labs-sub003/internal/repository"
	"github.com/BigChangeApps/labs-sub003/internal/selection"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEngine(t *testing.T) *selection.Engine {
	t.Helper()
	e := selection.NewEngine(selection.NewStore())
	require.NoError(t, e.Initialize("INV-1", []domain.Job{
		{ID: "J1", Ref: "JOB-1", ContactID: "c-acme", ContactName: "Acme", SiteID: "s-1", SiteName: "Quay",
			LineItems: []domain.LineSeed{
				{ID: "L1", Category: domain.LineLabour, Description: "Service", Quantity: 1, UnitPrice: 100},
				{ID: "L2", Category: domain.LineMaterials, Description: "Filter", Quantity: 2, UnitPrice: 25},
			}},
	}, domain.ViewDetailed))
	return e
}

func TestFormatSelection(t *testing.T) {
	e := sampleEngine(t)
	e.ToggleLineItem("INV-1", "J1", "L2")
	st, _ := e.Snapshot("INV-1")

	out := stripANSI(FormatSelection(st, map[string]selection.LineCounts{"J1": e.LineCounts("INV-1", "J1")}))
	assert.Contains(t, out, "INVOICE INV-1")
	assert.Contains(t, out, "DETAILED by contact")
	assert.Contains(t, out, "1/2 lines")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "[ ]")
	assert.Contains(t, out, "£50.00")
}

func TestFormatTotals(t *testing.T) {
	out := stripANSI(FormatTotals(selection.Totals{
		Subtotal:  decimal.NewFromInt(190),
		VATAmount: decimal.NewFromInt(38),
		Total:     decimal.NewFromInt(228),
		VATRate:   decimal.RequireFromString("0.2"),
	}))
	assert.Contains(t, out, "TOTALS")
	assert.Contains(t, out, "VAT 20%")
	assert.Contains(t, out, "£228.00")
}

func TestFormatBreakdown(t *testing.T) {
	e := sampleEngine(t)
	out := stripANSI(FormatBreakdown(e.BuildBreakdown("INV-1"), domain.ViewDetailed))
	assert.Contains(t, out, "ACME")
	assert.Contains(t, out, "Filter")
	assert.Contains(t, out, "subtotal £150.00")

	assert.Contains(t, stripANSI(FormatBreakdown(nil, domain.ViewSummary)), "Nothing selected.")
}

func TestFormatDraftList(t *testing.T) {
	out := stripANSI(FormatDraftList([]repository.DraftSummary{{InvoiceID: "INV-9", UpdatedAt: time.Now()}}))
	assert.Contains(t, out, "INV-9")
	assert.Contains(t, stripANSI(FormatDraftList(nil)), "No invoice drafts.")
}

func TestFormatPreferences(t *testing.T) {
	p := domain.DefaultPreferences()
	p.Flags["parentInheritance"] = true
	out := stripANSI(FormatPreferences(p))
	assert.Contains(t, out, "theme")
	assert.Contains(t, out, "default")
	assert.Contains(t, out, "parentInheritance")
}
