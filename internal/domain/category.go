package domain

// CategoryAttributeConfig attaches a library attribute to a category and
// carries the per-category enabled override.
type CategoryAttributeConfig struct {
	AttributeID string `json:"attribute_id" yaml:"attribute_id"`
	IsEnabled   bool   `json:"is_enabled" yaml:"is_enabled"`
	Order       int    `json:"order,omitempty" yaml:"order,omitempty"`
}

// Category is a node in the category forest. Children are not stored on the
// node; they are derived from ParentID.
type Category struct {
	ID               string                    `json:"id" yaml:"id"`
	Name             string                    `json:"name" yaml:"name"`
	ParentID         *string                   `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	OrderIndex       int                       `json:"order_index" yaml:"order_index"`
	SystemAttributes []CategoryAttributeConfig `json:"system_attributes" yaml:"system_attributes"`
	CustomAttributes []CategoryAttributeConfig `json:"custom_attributes" yaml:"custom_attributes"`
}

// IsRoot reports whether the category has no parent.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil || *c.ParentID == ""
}

// Parent returns the parent ID, or "" for roots.
func (c *Category) Parent() string {
	if c.ParentID == nil {
		return ""
	}
	return *c.ParentID
}

// Configs returns the system or custom config list.
func (c *Category) Configs(system bool) []CategoryAttributeConfig {
	if system {
		return c.SystemAttributes
	}
	return c.CustomAttributes
}

// FindConfig returns a pointer into the system or custom list for attributeID,
// or nil when the category has no such config.
func (c *Category) FindConfig(attributeID string, system bool) *CategoryAttributeConfig {
	list := c.CustomAttributes
	if system {
		list = c.SystemAttributes
	}
	for i := range list {
		if list[i].AttributeID == attributeID {
			return &list[i]
		}
	}
	return nil
}

// HasAttribute reports whether either list references attributeID.
func (c *Category) HasAttribute(attributeID string) bool {
	return c.FindConfig(attributeID, true) != nil || c.FindConfig(attributeID, false) != nil
}

// Clone returns a deep copy of the category.
func (c *Category) Clone() *Category {
	out := *c
	if c.ParentID != nil {
		p := *c.ParentID
		out.ParentID = &p
	}
	out.SystemAttributes = append([]CategoryAttributeConfig(nil), c.SystemAttributes...)
	out.CustomAttributes = append([]CategoryAttributeConfig(nil), c.CustomAttributes...)
	return &out
}

// EffectiveAttribute is a resolved config joined with its library attribute.
// SourceCategoryID names the category whose config won the resolution.
type EffectiveAttribute struct {
	Attribute
	IsEnabled        bool
	Order            int
	IsSystem         bool
	SourceCategoryID string
}

// Inherited reports whether the config came from an ancestor of forCategory.
func (e EffectiveAttribute) Inherited(forCategory string) bool {
	return e.SourceCategoryID != forCategory
}
