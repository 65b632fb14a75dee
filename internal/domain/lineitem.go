package domain

// LineItem is a single invoiceable line of a job. Selected is the sole
// source of truth for inclusion on the invoice.
type LineItem struct {
	ID            string       `json:"id" yaml:"id"`
	JobID         string       `json:"job_id" yaml:"job_id"`
	Category      LineCategory `json:"category" yaml:"category"`
	Description   string       `json:"description" yaml:"description"`
	Quantity      float64      `json:"quantity" yaml:"quantity"`
	UnitPrice     float64      `json:"unit_price" yaml:"unit_price"`
	TotalOverride *float64     `json:"total_override,omitempty" yaml:"total_override,omitempty"`
	Selected      bool         `json:"selected" yaml:"selected"`
}

// Total returns the override when one is set, otherwise Quantity * UnitPrice.
func (l LineItem) Total() float64 {
	return Float64FromPtrWithDefault(l.Quantity*l.UnitPrice, l.TotalOverride)
}

// LineSeed is the input form of a line item. A nil Selected means the line
// carries no explicit selection and defaults to selected.
type LineSeed struct {
	ID            string       `json:"id" yaml:"id"`
	Category      LineCategory `json:"category" yaml:"category"`
	Description   string       `json:"description" yaml:"description"`
	Quantity      float64      `json:"quantity" yaml:"quantity"`
	UnitPrice     float64      `json:"unit_price" yaml:"unit_price"`
	TotalOverride *float64     `json:"total_override,omitempty" yaml:"total_override,omitempty"`
	Selected      *bool        `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// Item materialises the seed as a LineItem of jobID.
func (s LineSeed) Item(jobID string) LineItem {
	return LineItem{
		ID:            s.ID,
		JobID:         jobID,
		Category:      s.Category,
		Description:   s.Description,
		Quantity:      s.Quantity,
		UnitPrice:     s.UnitPrice,
		TotalOverride: s.TotalOverride,
		Selected:      BoolFromPtrWithDefault(true, s.Selected),
	}
}

// Job is an invoiceable job with its contact and site, used as input to an
// invoice selection.
type Job struct {
	ID          string     `json:"id" yaml:"id"`
	Ref         string     `json:"ref" yaml:"ref"`
	ContactID   string     `json:"contact_id" yaml:"contact_id"`
	ContactName string     `json:"contact_name" yaml:"contact_name"`
	SiteID      string     `json:"site_id" yaml:"site_id"`
	SiteName    string     `json:"site_name" yaml:"site_name"`
	LineItems   []LineSeed `json:"line_items" yaml:"line_items"`
}
