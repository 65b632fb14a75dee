package selection

import (
	"fmt"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakdownLine is one printed invoice line at the invoice's view mode.
type BreakdownLine struct {
	JobID       string              `json:"job_id,omitempty"`
	JobRef      string              `json:"job_ref,omitempty"`
	Category    domain.LineCategory `json:"category,omitempty"`
	Description string              `json:"description"`
	Quantity    float64             `json:"quantity,omitempty"`
	UnitPrice   float64             `json:"unit_price,omitempty"`
	Amount      decimal.Decimal     `json:"amount"`
	LineCount   int                 `json:"line_count"`
}

// BreakdownGroup collects the selected lines of the jobs sharing a contact
// or a site.
type BreakdownGroup struct {
	Level    domain.BreakdownLevel `json:"level"`
	Key      string                `json:"key"`
	Name     string                `json:"name"`
	JobIDs   []string              `json:"job_ids"`
	Lines    []BreakdownLine       `json:"lines"`
	Subtotal decimal.Decimal       `json:"subtotal"`
}

// BuildBreakdown groups the selected job lines of an invoice by its
// breakdown level and renders each group at its view mode:
//
//   - summary: one combined line per group
//   - partial: one line per job and line category
//   - detailed: every selected line
//
// Jobs with nothing selected are left out, as are empty groups. Group lines
// are not part of any group. Unknown invoices yield nil.
func (e *Engine) BuildBreakdown(invoiceID string) []BreakdownGroup {
	st, ok := e.store.Get(invoiceID)
	if !ok {
		return nil
	}
	level := e.Breakdown(invoiceID)
	mode := e.ViewMode(invoiceID)

	var groups []*BreakdownGroup
	byKey := map[string]*BreakdownGroup{}
	for _, js := range st.OrderedJobs() {
		selected := selectedLines(js.LineItems)
		if len(selected) == 0 {
			continue
		}
		key, name := groupKey(js, level)
		g, ok := byKey[key]
		if !ok {
			g = &BreakdownGroup{Level: level, Key: key, Name: name, Subtotal: decimal.Zero}
			byKey[key] = g
			groups = append(groups, g)
		}
		g.JobIDs = append(g.JobIDs, js.JobID)
		switch mode {
		case domain.ViewDetailed:
			g.Lines = append(g.Lines, detailedLines(js, selected)...)
		case domain.ViewPartial:
			g.Lines = append(g.Lines, partialLines(js, selected)...)
		}
		g.Subtotal = g.Subtotal.Add(selectedSum(selected))
	}

	out := make([]BreakdownGroup, 0, len(groups))
	for _, g := range groups {
		if mode == domain.ViewSummary {
			g.Lines = []BreakdownLine{summaryLine(g, st)}
		}
		out = append(out, *g)
	}
	return out
}

func groupKey(js *domain.JobSelectionState, level domain.BreakdownLevel) (key, name string) {
	if level == domain.BreakdownSite {
		key = domain.CoalesceStr(js.SiteID, "job:"+js.JobID)
		return key, domain.CoalesceStr(js.SiteName, js.SiteID, "Unassigned site")
	}
	key = domain.CoalesceStr(js.ContactID, "job:"+js.JobID)
	return key, domain.CoalesceStr(js.ContactName, js.ContactID, "Unassigned contact")
}

func selectedLines(lines []domain.LineItem) []domain.LineItem {
	var out []domain.LineItem
	for _, l := range lines {
		if l.Selected {
			out = append(out, l)
		}
	}
	return out
}

func detailedLines(js *domain.JobSelectionState, selected []domain.LineItem) []BreakdownLine {
	out := make([]BreakdownLine, 0, len(selected))
	for _, l := range selected {
		out = append(out, BreakdownLine{
			JobID:       js.JobID,
			JobRef:      js.JobRef,
			Category:    l.Category,
			Description: l.Description,
			Quantity:    l.Quantity,
			UnitPrice:   l.UnitPrice,
			Amount:      decimal.NewFromFloat(l.Total()),
			LineCount:   1,
		})
	}
	return out
}

func partialLines(js *domain.JobSelectionState, selected []domain.LineItem) []BreakdownLine {
	var out []BreakdownLine
	for _, cat := range orderedCategories(selected) {
		line := BreakdownLine{
			JobID:       js.JobID,
			JobRef:      js.JobRef,
			Category:    cat,
			Description: fmt.Sprintf("%s (%s)", cat.Label(), js.JobRef),
			Amount:      decimal.Zero,
		}
		for _, l := range selected {
			if l.Category == cat {
				line.Amount = line.Amount.Add(decimal.NewFromFloat(l.Total()))
				line.LineCount++
			}
		}
		out = append(out, line)
	}
	return out
}

// orderedCategories lists the categories present in lines, known categories
// first in display order, then any others in order of appearance.
func orderedCategories(lines []domain.LineItem) []domain.LineCategory {
	present := map[domain.LineCategory]bool{}
	var extra []domain.LineCategory
	for _, l := range lines {
		if !present[l.Category] && !domain.ValidLineCategories[l.Category] {
			extra = append(extra, l.Category)
		}
		present[l.Category] = true
	}
	var out []domain.LineCategory
	for _, cat := range domain.LineCategories {
		if present[cat] {
			out = append(out, cat)
		}
	}
	return append(out, extra...)
}

func summaryLine(g *BreakdownGroup, st *domain.InvoiceSelectionState) BreakdownLine {
	count := 0
	for _, id := range g.JobIDs {
		inc, _ := st.Jobs[id].Counts()
		count += inc
	}
	desc := fmt.Sprintf("Work completed for %s", g.Name)
	if n := len(g.JobIDs); n > 1 {
		desc = fmt.Sprintf("%s (%d jobs)", desc, n)
	}
	return BreakdownLine{Description: desc, Amount: g.Subtotal, LineCount: count}
}
