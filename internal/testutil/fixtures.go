package testutil

import (
	"fmt"
	"sync/atomic"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/google/uuid"
)

var testLineCounter atomic.Int64

// Attribute options
type AttributeOption func(*domain.Attribute)

func WithAttrType(t domain.AttributeType, options ...string) AttributeOption {
	return func(a *domain.Attribute) {
		a.Type = t
		a.DropdownOptions = options
	}
}

// WithSystem places the attribute in the system section; required system
// attributes cannot be toggled or deleted.
func WithSystem(required bool) AttributeOption {
	return func(a *domain.Attribute) {
		a.Section = domain.SectionSystem
		a.IsRequired = required
	}
}

func WithAttrDisabled() AttributeOption {
	return func(a *domain.Attribute) {
		a.IsEnabled = false
	}
}

func NewTestAttribute(label string, opts ...AttributeOption) domain.Attribute {
	a := domain.Attribute{
		ID:        uuid.New().String(),
		Label:     label,
		Type:      domain.AttrText,
		Section:   domain.SectionYourAttributes,
		IsEnabled: true,
	}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// Category options
type CategoryOption func(*domain.Category)

func WithParent(id string) CategoryOption {
	return func(c *domain.Category) {
		c.ParentID = &id
	}
}

func WithConfig(attributeID string, enabled, system bool) CategoryOption {
	return func(c *domain.Category) {
		cfg := domain.CategoryAttributeConfig{AttributeID: attributeID, IsEnabled: enabled}
		if system {
			c.SystemAttributes = append(c.SystemAttributes, cfg)
			return
		}
		c.CustomAttributes = append(c.CustomAttributes, cfg)
	}
}

func WithOrder(i int) CategoryOption {
	return func(c *domain.Category) {
		c.OrderIndex = i
	}
}

func NewTestCategory(id, name string, opts ...CategoryOption) domain.Category {
	c := domain.Category{ID: id, Name: name}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Line options
type LineOption func(*domain.LineSeed)

func WithLineID(id string) LineOption {
	return func(s *domain.LineSeed) {
		s.ID = id
	}
}

func WithSelected(selected bool) LineOption {
	return func(s *domain.LineSeed) {
		s.Selected = &selected
	}
}

func WithTotalOverride(total float64) LineOption {
	return func(s *domain.LineSeed) {
		s.TotalOverride = &total
	}
}

func NewTestLine(cat domain.LineCategory, qty, unitPrice float64, opts ...LineOption) domain.LineSeed {
	n := testLineCounter.Add(1)
	s := domain.LineSeed{
		ID:          fmt.Sprintf("line-%d", n),
		Category:    cat,
		Description: fmt.Sprintf("%s line %d", cat.Label(), n),
		Quantity:    qty,
		UnitPrice:   unitPrice,
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s
}

// Job options
type JobOption func(*domain.Job)

func WithContact(id, name string) JobOption {
	return func(j *domain.Job) {
		j.ContactID = id
		j.ContactName = name
	}
}

func WithSite(id, name string) JobOption {
	return func(j *domain.Job) {
		j.SiteID = id
		j.SiteName = name
	}
}

func NewTestJob(id string, lines []domain.LineSeed, opts ...JobOption) domain.Job {
	j := domain.Job{
		ID:          id,
		Ref:         "REF-" + id,
		ContactID:   "contact-1",
		ContactName: "Test Contact",
		SiteID:      "site-1",
		SiteName:    "Test Site",
		LineItems:   lines,
	}
	for _, opt := range opts {
		opt(&j)
	}
	return j
}
