package selection

import (
	"testing"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMoney(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func TestCalculateTotals_EndToEnd(t *testing.T) {
	e := newEngine(t, e2eJobs())

	tot := e.CalculateTotals("INV1")
	assertMoney(t, "190", tot.Subtotal, "subtotal")
	assertMoney(t, "38", tot.VATAmount, "vat")
	assertMoney(t, "228", tot.Total, "total")
	assertMoney(t, "0.2", tot.VATRate, "rate")

	// Dropping L2 (50) leaves L1 + L3 selected: 100 + 40.
	e.ToggleLineItem("INV1", "J1", "L2")
	tot = e.CalculateTotals("INV1")
	assertMoney(t, "140", tot.Subtotal, "subtotal")
	assertMoney(t, "28", tot.VATAmount, "vat")
	assertMoney(t, "168", tot.Total, "total")
}

func TestCalculateTotals_MatchesSelectedLines(t *testing.T) {
	jobs := []domain.Job{
		{ID: "A", LineItems: []domain.LineSeed{
			{ID: "a1", Category: domain.LineLabour, Quantity: 1.5, UnitPrice: 42.1},
			{ID: "a2", Category: domain.LineMaterials, Quantity: 3, UnitPrice: 9.99},
			{ID: "a3", Category: domain.LineOther, Quantity: 7, UnitPrice: 1.01, TotalOverride: ptrFloat(6.5)},
		}},
		{ID: "B", LineItems: []domain.LineSeed{
			{ID: "b1", Category: domain.LineLabour, Quantity: 0.25, UnitPrice: 88},
			{ID: "b2", Category: domain.LineLabour, Quantity: 2, UnitPrice: 13.37},
		}},
	}
	e := newEngine(t, jobs)

	steps := []func(){
		func() {},
		func() { e.ToggleLineItem("INV1", "A", "a2") },
		func() { e.ToggleCategory("INV1", "B", domain.LineLabour) },
		func() { e.ToggleJob("INV1", "A", false) },
		func() { e.ToggleJob("INV1", "A", true) },
		func() { e.ToggleCategory("INV1", "B", domain.LineLabour) },
	}
	for i, step := range steps {
		step()
		st, _ := e.Store().Get("INV1")
		want := 0.0
		for _, js := range st.OrderedJobs() {
			for _, l := range js.LineItems {
				if l.Selected {
					want += l.Total()
				}
			}
		}
		tot := e.CalculateTotals("INV1")
		sub := tot.Subtotal.InexactFloat64()
		vat := tot.VATAmount.InexactFloat64()
		assert.InDelta(t, want, sub, 1e-9, "step %d subtotal", i)
		assert.InDelta(t, 0.20*sub, vat, 1e-9, "step %d vat", i)
		assert.True(t, tot.Subtotal.Add(tot.VATAmount).Equal(tot.Total), "step %d total", i)
	}
}

func TestCalculateTotals_OverrideWins(t *testing.T) {
	jobs := []domain.Job{{ID: "J", LineItems: []domain.LineSeed{
		{ID: "x", Category: domain.LineOther, Quantity: 3, UnitPrice: 10, TotalOverride: ptrFloat(25)},
	}}}
	e := newEngine(t, jobs)
	assertMoney(t, "25", e.CalculateTotals("INV1").Subtotal, "subtotal")
}

func TestCalculateTotals_IncludesSelectedGroupLines(t *testing.T) {
	e := newEngine(t, e2eJobs())
	e.SetGroupLines("INV1", []domain.LineItem{
		{ID: "G1", Category: domain.LineOther, Description: "Admin fee", Quantity: 1, UnitPrice: 10, Selected: true},
		{ID: "G2", Category: domain.LineOther, Description: "Discount", Quantity: 1, UnitPrice: -5, Selected: false},
	})
	assertMoney(t, "200", e.CalculateTotals("INV1").Subtotal, "subtotal")

	e.ToggleGroupLine("INV1", "G2")
	assertMoney(t, "195", e.CalculateTotals("INV1").Subtotal, "subtotal")
	e.ToggleGroupLine("INV1", "G1")
	assertMoney(t, "185", e.CalculateTotals("INV1").Subtotal, "subtotal")
}

func TestCalculateTotals_CustomRate(t *testing.T) {
	e := newEngine(t, e2eJobs(), WithVATRate(0.05))
	tot := e.CalculateTotals("INV1")
	assertMoney(t, "9.5", tot.VATAmount, "vat")
	assertMoney(t, "199.5", tot.Total, "total")

	zero := newEngine(t, e2eJobs(), WithVATRate(0))
	require.True(t, zero.CalculateTotals("INV1").VATAmount.IsZero())
}

func TestCalculateTotals_AllExcluded(t *testing.T) {
	e := newEngine(t, e2eJobs())
	e.ToggleJob("INV1", "J1", false)
	e.ToggleJob("INV1", "J2", false)
	tot := e.CalculateTotals("INV1")
	assert.True(t, tot.Subtotal.IsZero())
	assert.True(t, tot.Total.IsZero())
}
