package selection

import (
	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/shopspring/decimal"
)

// Totals are the money figures of an invoice at its current selection.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	VATAmount decimal.Decimal `json:"vat_amount"`
	Total     decimal.Decimal `json:"total"`
	VATRate   decimal.Decimal `json:"vat_rate"`
}

// CalculateTotals sums every selected job line and every selected group
// line. An unknown invoice yields zero totals.
func (e *Engine) CalculateTotals(invoiceID string) Totals {
	t := Totals{VATRate: e.vatRate}
	st, ok := e.store.Get(invoiceID)
	if !ok {
		return t
	}
	for _, js := range st.OrderedJobs() {
		t.Subtotal = t.Subtotal.Add(selectedSum(js.LineItems))
	}
	t.Subtotal = t.Subtotal.Add(selectedSum(st.GroupLines))
	t.VATAmount = t.Subtotal.Mul(e.vatRate)
	t.Total = t.Subtotal.Add(t.VATAmount)
	return t
}

func selectedSum(lines []domain.LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range lines {
		if l.Selected {
			sum = sum.Add(decimal.NewFromFloat(l.Total()))
		}
	}
	return sum
}
