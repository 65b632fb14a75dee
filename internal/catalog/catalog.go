// Package catalog holds the asset category tree, the attribute library and
// the manufacturer/model lists, with the inheritance resolver and every
// mutation that keeps them referentially consistent.
//
// A Catalog is not safe for concurrent use; callers issue one operation at a
// time and re-read derived values after each mutation.
package catalog

import (
	"fmt"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/BigChangeApps/labs-sub003/internal/tree"
	"github.com/google/uuid"
)

// Snapshot is the serialisable form of a Catalog.
type Snapshot struct {
	InheritanceEnabled bool                  `json:"inheritance_enabled" yaml:"inheritance_enabled"`
	Categories         []domain.Category     `json:"categories" yaml:"categories"`
	Attributes         []domain.Attribute    `json:"attributes" yaml:"attributes"`
	Manufacturers      []domain.Manufacturer `json:"manufacturers" yaml:"manufacturers"`
}

// Catalog is the in-memory category/attribute model.
type Catalog struct {
	categories    map[string]*domain.Category
	categoryOrder []string
	attributes    map[string]*domain.Attribute
	attrOrder     []string
	manufacturers []*domain.Manufacturer
	inheritance   bool
	index         *tree.Index
	newID         func() string
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithInheritance sets the initial parent-inheritance flag.
func WithInheritance(enabled bool) Option {
	return func(c *Catalog) { c.inheritance = enabled }
}

// WithIDGenerator replaces the UUID generator, mainly for tests.
func WithIDGenerator(fn func() string) Option {
	return func(c *Catalog) { c.newID = fn }
}

// New returns an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		categories: map[string]*domain.Category{},
		attributes: map[string]*domain.Attribute{},
		newID:      func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(c)
	}
	c.reindex()
	return c
}

// FromSnapshot loads a catalog. Parent pointers are not validated here so a
// malformed tree can still be loaded and reported by the resolver; use
// Validate to check the forest invariant up front.
func FromSnapshot(s Snapshot, opts ...Option) (*Catalog, error) {
	c := New(append([]Option{WithInheritance(s.InheritanceEnabled)}, opts...)...)
	for i := range s.Attributes {
		a := s.Attributes[i]
		a.DropdownOptions = append([]string(nil), a.DropdownOptions...)
		if a.ID == "" {
			return nil, domain.NewValidationError("attribute", "attribute %q has no id", a.Label)
		}
		if _, dup := c.attributes[a.ID]; dup {
			return nil, domain.NewValidationError("attribute", "duplicate attribute id %q", a.ID)
		}
		c.attributes[a.ID] = &a
		c.attrOrder = append(c.attrOrder, a.ID)
	}
	for i := range s.Categories {
		cat := s.Categories[i].Clone()
		if cat.ID == "" {
			return nil, domain.NewValidationError("category", "category %q has no id", cat.Name)
		}
		if _, dup := c.categories[cat.ID]; dup {
			return nil, domain.NewValidationError("category", "duplicate category id %q", cat.ID)
		}
		c.categories[cat.ID] = cat
		c.categoryOrder = append(c.categoryOrder, cat.ID)
	}
	for i := range s.Manufacturers {
		c.manufacturers = append(c.manufacturers, s.Manufacturers[i].Clone())
	}
	c.reindex()
	return c, nil
}

// Snapshot returns a deep copy of the catalog state.
func (c *Catalog) Snapshot() Snapshot {
	s := Snapshot{InheritanceEnabled: c.inheritance}
	for _, id := range c.categoryOrder {
		s.Categories = append(s.Categories, *c.categories[id].Clone())
	}
	for _, id := range c.attrOrder {
		a := *c.attributes[id]
		a.DropdownOptions = append([]string(nil), a.DropdownOptions...)
		s.Attributes = append(s.Attributes, a)
	}
	for _, m := range c.manufacturers {
		s.Manufacturers = append(s.Manufacturers, *m.Clone())
	}
	return s
}

// Validate checks the forest invariant: every parent pointer resolves and no
// parent chain loops. It returns the first CycleDetectedError found.
func (c *Catalog) Validate() error {
	for _, id := range c.categoryOrder {
		if _, err := tree.Ancestors(id, c.parentOf); err != nil {
			return &domain.CycleDetectedError{CategoryID: id, Err: err}
		}
	}
	return nil
}

// InheritanceEnabled reports the global parent-inheritance flag.
func (c *Catalog) InheritanceEnabled() bool { return c.inheritance }

// SetInheritance sets the global parent-inheritance flag.
func (c *Catalog) SetInheritance(enabled bool) { c.inheritance = enabled }

// Category returns a copy of the category.
func (c *Catalog) Category(id string) (*domain.Category, bool) {
	cat, ok := c.categories[id]
	if !ok {
		return nil, false
	}
	return cat.Clone(), true
}

// Categories returns copies of every category in insertion order.
func (c *Catalog) Categories() []*domain.Category {
	out := make([]*domain.Category, 0, len(c.categoryOrder))
	for _, id := range c.categoryOrder {
		out = append(out, c.categories[id].Clone())
	}
	return out
}

// Children returns the ordered child IDs of a category.
func (c *Catalog) Children(id string) []string { return c.index.Children(id) }

// Roots returns the ordered root category IDs.
func (c *Catalog) Roots() []string { return c.index.Roots() }

// Index exposes the derived parent/children index for read-only traversal.
func (c *Catalog) Index() *tree.Index { return c.index }

// Attribute returns a copy of a library attribute.
func (c *Catalog) Attribute(id string) (*domain.Attribute, bool) {
	a, ok := c.attributes[id]
	if !ok {
		return nil, false
	}
	cp := *a
	return &cp, true
}

// Attributes returns copies of the library in insertion order.
func (c *Catalog) Attributes() []*domain.Attribute {
	out := make([]*domain.Attribute, 0, len(c.attrOrder))
	for _, id := range c.attrOrder {
		cp := *c.attributes[id]
		out = append(out, &cp)
	}
	return out
}

func (c *Catalog) parentOf(id string) (string, bool) {
	cat, ok := c.categories[id]
	if !ok {
		return "", false
	}
	return cat.Parent(), true
}

// reindex rebuilds the derived children index from parent pointers. Every
// structural mutation calls it before returning.
func (c *Catalog) reindex() {
	nodes := make([]tree.Node, 0, len(c.categoryOrder))
	for _, id := range c.categoryOrder {
		cat := c.categories[id]
		nodes = append(nodes, tree.Node{ID: cat.ID, ParentID: cat.Parent(), Order: cat.OrderIndex})
	}
	c.index = tree.BuildIndex(nodes)
}

func (c *Catalog) mustCategory(id string) (*domain.Category, error) {
	cat, ok := c.categories[id]
	if !ok {
		return nil, domain.NewValidationError("category", "category %q not found", id)
	}
	return cat, nil
}

func (c *Catalog) String() string {
	return fmt.Sprintf("catalog(categories=%d attributes=%d manufacturers=%d inheritance=%t)",
		len(c.categories), len(c.attributes), len(c.manufacturers), c.inheritance)
}
