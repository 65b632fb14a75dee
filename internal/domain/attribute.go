package domain

import "strings"

// Attribute is an entry in the flat attribute library. Categories reference
// attributes by ID through CategoryAttributeConfig.
type Attribute struct {
	ID              string        `json:"id" yaml:"id"`
	Label           string        `json:"label" yaml:"label"`
	Type            AttributeType `json:"type" yaml:"type"`
	Description     string        `json:"description,omitempty" yaml:"description,omitempty"`
	DropdownOptions []string      `json:"dropdown_options,omitempty" yaml:"dropdown_options,omitempty"`
	Section         Section       `json:"section" yaml:"section"`
	IsRequired      bool          `json:"is_required" yaml:"is_required"`
	IsEnabled       bool          `json:"is_enabled" yaml:"is_enabled"`
}

// IsSystem reports whether the attribute belongs to the system section.
func (a *Attribute) IsSystem() bool {
	return a.Section == SectionSystem
}

// TrimmedOptions returns the dropdown options with surrounding whitespace
// removed and empty entries dropped.
func TrimmedOptions(options []string) []string {
	var out []string
	for _, o := range options {
		if t := strings.TrimSpace(o); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Validate checks the label, the type and, for dropdowns, that at least one
// non-empty option remains after trimming.
func (a *Attribute) Validate() error {
	if strings.TrimSpace(a.Label) == "" {
		return NewValidationError("label", "attribute label is required")
	}
	if !ValidAttributeTypes[a.Type] {
		return NewValidationError("type", "unknown attribute type %q", a.Type)
	}
	if a.Type == AttrDropdown && len(TrimmedOptions(a.DropdownOptions)) == 0 {
		return NewValidationError("dropdown_options", "dropdown attributes need at least one option")
	}
	return nil
}
