package selection

import (
	"testing"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func ptrBool(b bool) *bool { return &b }

func ptrFloat(f float64) *float64 { return &f }

// e2eJobs are J1 [L1 labour 100x1, L2 materials 50x1] and J2 [L3 labour 20x2].
func e2eJobs() []domain.Job {
	return []domain.Job{
		{
			ID: "J1", Ref: "JOB-001", ContactID: "c-acme", ContactName: "Acme Ltd", SiteID: "s-north", SiteName: "North depot",
			LineItems: []domain.LineSeed{
				{ID: "L1", Category: domain.LineLabour, Description: "Call out", Quantity: 1, UnitPrice: 100},
				{ID: "L2", Category: domain.LineMaterials, Description: "Filter", Quantity: 1, UnitPrice: 50},
			},
		},
		{
			ID: "J2", Ref: "JOB-002", ContactID: "c-acme", ContactName: "Acme Ltd", SiteID: "s-south", SiteName: "South depot",
			LineItems: []domain.LineSeed{
				{ID: "L3", Category: domain.LineLabour, Description: "Service", Quantity: 2, UnitPrice: 20},
			},
		},
	}
}

func newEngine(t *testing.T, jobs []domain.Job, opts ...Option) *Engine {
	t.Helper()
	e := NewEngine(NewStore(), opts...)
	if err := e.Initialize("INV1", jobs, ""); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return e
}

func selectedIDs(t *testing.T, e *Engine, invoiceID, jobID string) []string {
	t.Helper()
	st, ok := e.Store().Get(invoiceID)
	if !ok {
		t.Fatalf("invoice %s not in store", invoiceID)
	}
	var ids []string
	for _, l := range st.Jobs[jobID].LineItems {
		if l.Selected {
			ids = append(ids, l.ID)
		}
	}
	return ids
}
