package domain

// SelectionSnapshot is the set of line IDs that were selected when a job was
// excluded from an invoice.
type SelectionSnapshot struct {
	LineIDs []string `json:"line_ids"`
}

// Contains reports whether lineID was selected at snapshot time.
func (s *SelectionSnapshot) Contains(lineID string) bool {
	for _, id := range s.LineIDs {
		if id == lineID {
			return true
		}
	}
	return false
}

// JobSelectionState holds the line items of one job on one invoice.
// LastSelection is nil when no snapshot is pending.
type JobSelectionState struct {
	JobID         string             `json:"job_id"`
	JobRef        string             `json:"job_ref"`
	ContactID     string             `json:"contact_id"`
	ContactName   string             `json:"contact_name"`
	SiteID        string             `json:"site_id"`
	SiteName      string             `json:"site_name"`
	LineItems     []LineItem         `json:"line_items"`
	LastSelection *SelectionSnapshot `json:"last_selection"`
}

// NewJobSelectionState seeds a job state; lines without an explicit
// selection start selected.
func NewJobSelectionState(job Job) *JobSelectionState {
	js := &JobSelectionState{
		JobID:       job.ID,
		JobRef:      CoalesceStr(job.Ref, job.ID),
		ContactID:   job.ContactID,
		ContactName: job.ContactName,
		SiteID:      job.SiteID,
		SiteName:    job.SiteName,
		LineItems:   make([]LineItem, 0, len(job.LineItems)),
	}
	for _, seed := range job.LineItems {
		js.LineItems = append(js.LineItems, seed.Item(job.ID))
	}
	return js
}

// ToggleLine flips the selection of lineID. Returns false if no such line.
func (js *JobSelectionState) ToggleLine(lineID string) bool {
	for i := range js.LineItems {
		if js.LineItems[i].ID == lineID {
			js.LineItems[i].Selected = !js.LineItems[i].Selected
			return true
		}
	}
	return false
}

// Exclude snapshots the currently selected lines and deselects every line.
func (js *JobSelectionState) Exclude() {
	snap := &SelectionSnapshot{LineIDs: []string{}}
	for i := range js.LineItems {
		if js.LineItems[i].Selected {
			snap.LineIDs = append(snap.LineIDs, js.LineItems[i].ID)
		}
		js.LineItems[i].Selected = false
	}
	js.LastSelection = snap
}

// Include restores and consumes the pending snapshot, or selects every line
// when there is none.
func (js *JobSelectionState) Include() {
	snap := js.LastSelection
	for i := range js.LineItems {
		if snap != nil {
			js.LineItems[i].Selected = snap.Contains(js.LineItems[i].ID)
		} else {
			js.LineItems[i].Selected = true
		}
	}
	js.LastSelection = nil
}

// ToggleCategory selects every line of cat unless all of them are already
// selected, in which case it deselects them all.
func (js *JobSelectionState) ToggleCategory(cat LineCategory) {
	allSelected := true
	matched := false
	for _, l := range js.LineItems {
		if l.Category != cat {
			continue
		}
		matched = true
		if !l.Selected {
			allSelected = false
			break
		}
	}
	if !matched {
		return
	}
	for i := range js.LineItems {
		if js.LineItems[i].Category == cat {
			js.LineItems[i].Selected = !allSelected
		}
	}
}

// Counts returns the number of selected lines and the number of lines.
func (js *JobSelectionState) Counts() (included, total int) {
	for _, l := range js.LineItems {
		if l.Selected {
			included++
		}
	}
	return included, len(js.LineItems)
}

// ReplaceLines swaps in a new line list, keeping the previous Selected flag
// of every line whose ID existed before.
func (js *JobSelectionState) ReplaceLines(lines []LineItem) {
	prev := make(map[string]bool, len(js.LineItems))
	for _, l := range js.LineItems {
		prev[l.ID] = l.Selected
	}
	next := make([]LineItem, 0, len(lines))
	for _, l := range lines {
		l.JobID = js.JobID
		if sel, ok := prev[l.ID]; ok {
			l.Selected = sel
		}
		next = append(next, l)
	}
	js.LineItems = next
}

// Clone returns a deep copy of the job state.
func (js *JobSelectionState) Clone() *JobSelectionState {
	out := *js
	out.LineItems = cloneLines(js.LineItems)
	if js.LastSelection != nil {
		out.LastSelection = &SelectionSnapshot{LineIDs: append([]string{}, js.LastSelection.LineIDs...)}
	}
	return &out
}

// InvoiceSelectionState is the selection state of one invoice. It is the
// single owner of the Selected flags of its lines.
type InvoiceSelectionState struct {
	InvoiceID  string                        `json:"invoice_id"`
	JobOrder   []string                      `json:"job_order"`
	Jobs       map[string]*JobSelectionState `json:"jobs"`
	GroupLines []LineItem                    `json:"group_lines,omitempty"`
	ViewMode   ViewMode                      `json:"view_mode"`
	Breakdown  BreakdownLevel                `json:"breakdown"`
}

// NewInvoiceSelectionState returns an empty state for invoiceID.
func NewInvoiceSelectionState(invoiceID string) *InvoiceSelectionState {
	return &InvoiceSelectionState{
		InvoiceID: invoiceID,
		Jobs:      map[string]*JobSelectionState{},
		ViewMode:  DefaultViewMode,
		Breakdown: BreakdownContact,
	}
}

// OrderedJobs returns the job states in the order they were added.
func (s *InvoiceSelectionState) OrderedJobs() []*JobSelectionState {
	out := make([]*JobSelectionState, 0, len(s.JobOrder))
	for _, id := range s.JobOrder {
		if js, ok := s.Jobs[id]; ok {
			out = append(out, js)
		}
	}
	return out
}

// Clone returns a deep copy of the invoice state.
func (s *InvoiceSelectionState) Clone() *InvoiceSelectionState {
	out := *s
	out.JobOrder = append([]string(nil), s.JobOrder...)
	out.Jobs = make(map[string]*JobSelectionState, len(s.Jobs))
	for id, js := range s.Jobs {
		out.Jobs[id] = js.Clone()
	}
	out.GroupLines = cloneLines(s.GroupLines)
	return &out
}

func cloneLines(lines []LineItem) []LineItem {
	if lines == nil {
		return nil
	}
	out := make([]LineItem, len(lines))
	for i, l := range lines {
		if l.TotalOverride != nil {
			v := *l.TotalOverride
			l.TotalOverride = &v
		}
		out[i] = l
	}
	return out
}
