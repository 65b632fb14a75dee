package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrBool(b bool) *bool { return &b }
func ptrFloat(f float64) *float64 { return &f }

func testJob() Job {
	return Job{
		ID:        "J1",
		ContactID: "C1",
		LineItems: []LineSeed{
			{ID: "L1", Category: LineLabour, Quantity: 1, UnitPrice: 100},
			{ID: "L2", Category: LineLabour, Quantity: 2, UnitPrice: 10, Selected: ptrBool(false)},
			{ID: "L3", Category: LineMaterials, Quantity: 1, UnitPrice: 50},
		},
	}
}

func selectedIDs(js *JobSelectionState) []string {
	var out []string
	for _, l := range js.LineItems {
		if l.Selected {
			out = append(out, l.ID)
		}
	}
	return out
}

func TestLineItemTotal(t *testing.T) {
	assert.Equal(t, 40.0, LineItem{Quantity: 2, UnitPrice: 20}.Total())
	assert.Equal(t, 35.0, LineItem{Quantity: 2, UnitPrice: 20, TotalOverride: ptrFloat(35)}.Total(),
		"override wins over quantity * unit price")
}

func TestLineSeedItem_DefaultsToSelected(t *testing.T) {
	assert.True(t, LineSeed{ID: "a"}.Item("J").Selected)
	assert.False(t, LineSeed{ID: "a", Selected: ptrBool(false)}.Item("J").Selected)
	assert.Equal(t, "J", LineSeed{ID: "a"}.Item("J").JobID)
}

func TestNewJobSelectionState(t *testing.T) {
	js := NewJobSelectionState(testJob())
	assert.Equal(t, "J1", js.JobRef, "ref falls back to the job ID")
	assert.Equal(t, []string{"L1", "L3"}, selectedIDs(js))
	assert.Nil(t, js.LastSelection)
}

func TestJobSelectionState_ToggleLine(t *testing.T) {
	js := NewJobSelectionState(testJob())
	assert.True(t, js.ToggleLine("L1"))
	assert.Equal(t, []string{"L3"}, selectedIDs(js))
	assert.False(t, js.ToggleLine("missing"))
	assert.Equal(t, []string{"L3"}, selectedIDs(js))
}

func TestJobSelectionState_ExcludeInclude(t *testing.T) {
	js := NewJobSelectionState(testJob())

	js.Exclude()
	assert.Empty(t, selectedIDs(js))
	require.NotNil(t, js.LastSelection)
	assert.Equal(t, []string{"L1", "L3"}, js.LastSelection.LineIDs)

	js.Include()
	assert.Equal(t, []string{"L1", "L3"}, selectedIDs(js))
	assert.Nil(t, js.LastSelection, "include consumes the snapshot")

	js.Include()
	assert.Equal(t, []string{"L1", "L2", "L3"}, selectedIDs(js))
}

func TestJobSelectionState_ExcludeWithNothingSelected(t *testing.T) {
	js := NewJobSelectionState(testJob())
	js.ToggleLine("L1")
	js.ToggleLine("L3")

	js.Exclude()
	require.NotNil(t, js.LastSelection)
	assert.Empty(t, js.LastSelection.LineIDs)

	js.Include()
	assert.Empty(t, selectedIDs(js), "an empty snapshot restores an empty selection")
}

func TestJobSelectionState_ToggleCategory(t *testing.T) {
	js := NewJobSelectionState(testJob())

	js.ToggleCategory(LineLabour)
	assert.Equal(t, []string{"L1", "L2", "L3"}, selectedIDs(js))

	js.ToggleCategory(LineLabour)
	assert.Equal(t, []string{"L3"}, selectedIDs(js))

	js.ToggleCategory(LineOther)
	assert.Equal(t, []string{"L3"}, selectedIDs(js), "no matching lines is a no-op")
}

func TestJobSelectionState_Counts(t *testing.T) {
	js := NewJobSelectionState(testJob())
	inc, total := js.Counts()
	assert.Equal(t, 2, inc)
	assert.Equal(t, 3, total)
}

func TestJobSelectionState_ReplaceLines(t *testing.T) {
	js := NewJobSelectionState(testJob())
	js.ReplaceLines([]LineItem{
		{ID: "L2", Category: LineLabour, Quantity: 3, UnitPrice: 10, Selected: true},
		{ID: "L9", Category: LineOther, Quantity: 1, UnitPrice: 5, Selected: false},
	})
	require.Len(t, js.LineItems, 2)
	assert.False(t, js.LineItems[0].Selected, "existing line keeps its previous selection")
	assert.Equal(t, 3.0, js.LineItems[0].Quantity)
	assert.False(t, js.LineItems[1].Selected, "new line keeps the supplied selection")
	assert.Equal(t, "J1", js.LineItems[1].JobID)
}

func TestInvoiceSelectionState_CloneIsDeep(t *testing.T) {
	s := NewInvoiceSelectionState("INV1")
	js := NewJobSelectionState(testJob())
	js.Exclude()
	s.Jobs[js.JobID] = js
	s.JobOrder = append(s.JobOrder, js.JobID)

	cp := s.Clone()
	cp.Jobs["J1"].LineItems[0].Selected = true
	cp.Jobs["J1"].LastSelection.LineIDs[0] = "X"

	assert.False(t, s.Jobs["J1"].LineItems[0].Selected)
	assert.Equal(t, "L1", s.Jobs["J1"].LastSelection.LineIDs[0])
	assert.Len(t, cp.OrderedJobs(), 1)
}

func TestInvoiceSelectionState_CloneCopiesOverrides(t *testing.T) {
	override := 75.0
	s := NewInvoiceSelectionState("INV1")
	js := NewJobSelectionState(testJob())
	js.LineItems[0].TotalOverride = &override
	s.Jobs[js.JobID] = js
	s.JobOrder = append(s.JobOrder, js.JobID)
	s.GroupLines = []LineItem{{ID: "G1", Category: LineOther, TotalOverride: &override, Selected: true}}

	cp := s.Clone()
	*cp.Jobs["J1"].LineItems[0].TotalOverride = 10
	*cp.GroupLines[0].TotalOverride = 20

	assert.Equal(t, 75.0, s.Jobs["J1"].LineItems[0].Total())
	assert.Equal(t, 75.0, s.GroupLines[0].Total())
	assert.Equal(t, 75.0, override)
}
