package formatter

import (
	"fmt"
	"strings"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/BigChangeApps/labs-sub003/internal/repository"
	"github.com/BigChangeApps/labs-sub003/internal/selection"
)

// FormatSelection lists every job of an invoice with its lines and
// selection marks.
func FormatSelection(st *domain.InvoiceSelectionState, counts map[string]selection.LineCounts) string {
	var b strings.Builder
	b.WriteString(Header("Invoice " + st.InvoiceID))
	b.WriteString("\n")
	b.WriteString(ModeBadge(st.ViewMode, st.Breakdown) + "\n\n")

	for _, js := range st.OrderedJobs() {
		c := counts[js.JobID]
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			Bold(js.JobRef),
			Dim(domain.CoalesceStr(js.ContactName, js.ContactID)+" · "+domain.CoalesceStr(js.SiteName, js.SiteID)),
			SelectionBar(c.Included, c.Total, 10)))
		rows := make([][]string, 0, len(js.LineItems))
		for _, l := range js.LineItems {
			rows = append(rows, lineRow(l))
		}
		if len(rows) > 0 {
			b.WriteString(RenderTable([]string{"", "ID", "CATEGORY", "DESCRIPTION", "QTY", "PRICE", "TOTAL"}, rows, 4, 5, 6))
		}
		b.WriteString("\n")
	}

	if len(st.GroupLines) > 0 {
		b.WriteString(Bold("Group lines") + "\n")
		rows := make([][]string, 0, len(st.GroupLines))
		for _, l := range st.GroupLines {
			rows = append(rows, lineRow(l))
		}
		b.WriteString(RenderTable([]string{"", "ID", "CATEGORY", "DESCRIPTION", "QTY", "PRICE", "TOTAL"}, rows, 4, 5, 6))
	}
	return b.String()
}

func lineRow(l domain.LineItem) []string {
	total := MoneyFloat(l.Total())
	if l.TotalOverride != nil {
		total += StyleYellow.Render("*")
	}
	return []string{
		Checkbox(l.Selected),
		Dim(l.ID),
		l.Category.Label(),
		l.Description,
		fmt.Sprintf("%g", l.Quantity),
		MoneyFloat(l.UnitPrice),
		total,
	}
}

// FormatTotals renders subtotal, VAT and total in a box.
func FormatTotals(t selection.Totals) string {
	rate := t.VATRate.Shift(2).StringFixed(0) + "%"
	rows := [][]string{
		{"Subtotal", Money(t.Subtotal)},
		{"VAT " + rate, Money(t.VATAmount)},
		{Bold("Total"), Bold(Money(t.Total))},
	}
	var b strings.Builder
	for _, r := range rows {
		b.WriteString(fmt.Sprintf("%-14s %12s\n", r[0], r[1]))
	}
	return RenderBox("Totals", strings.TrimRight(b.String(), "\n"))
}

// FormatBreakdown renders the invoice as printed: one block per contact or
// site group, at the invoice's view mode.
func FormatBreakdown(groups []selection.BreakdownGroup, mode domain.ViewMode) string {
	if len(groups) == 0 {
		return Dim("Nothing selected.") + "\n"
	}
	var b strings.Builder
	for _, g := range groups {
		b.WriteString(Header(g.Name))
		b.WriteString("\n")
		rows := make([][]string, 0, len(g.Lines))
		for _, l := range g.Lines {
			switch mode {
			case domain.ViewDetailed:
				rows = append(rows, []string{l.JobRef, l.Description, fmt.Sprintf("%g", l.Quantity), MoneyFloat(l.UnitPrice), Money(l.Amount)})
			default:
				rows = append(rows, []string{l.JobRef, l.Description, "", "", Money(l.Amount)})
			}
		}
		b.WriteString(RenderTable([]string{"JOB", "DESCRIPTION", "QTY", "PRICE", "AMOUNT"}, rows, 2, 3, 4))
		b.WriteString(Dim("subtotal ") + Bold(Money(g.Subtotal)) + "\n\n")
	}
	return b.String()
}

// FormatDraftList lists stored invoice drafts, most recent first.
func FormatDraftList(drafts []repository.DraftSummary) string {
	if len(drafts) == 0 {
		return Dim("No invoice drafts.") + "\n"
	}
	rows := make([][]string, 0, len(drafts))
	for _, d := range drafts {
		rows = append(rows, []string{d.InvoiceID, Dim(d.UpdatedAt.Local().Format("2006-01-02 15:04"))})
	}
	return RenderTable([]string{"INVOICE", "UPDATED"}, rows)
}
