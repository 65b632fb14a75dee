package catalog

import (
	"strings"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/BigChangeApps/labs-sub003/internal/tree"
)

// AddCategory creates a category. An empty parentID creates a root; any other
// parent must exist and must itself be a root.
func (c *Catalog) AddCategory(name, parentID string) (*domain.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "category name is required")
	}
	if parentID != "" {
		parent, ok := c.categories[parentID]
		if !ok {
			return nil, domain.NewValidationError("parent", "parent category %q not found", parentID)
		}
		if !parent.IsRoot() {
			return nil, domain.NewValidationError("parent", "category %q is not a root category", parent.Name)
		}
	}
	cat := &domain.Category{ID: c.newID(), Name: name}
	if parentID != "" {
		p := parentID
		cat.ParentID = &p
	}
	cat.OrderIndex = c.siblingCount(parentID)

	for _, id := range c.attrOrder {
		attr := c.attributes[id]
		if !attr.IsSystem() {
			continue
		}
		cat.SystemAttributes = append(cat.SystemAttributes, domain.CategoryAttributeConfig{
			AttributeID: attr.ID,
			IsEnabled:   attr.IsEnabled || attr.IsRequired,
			Order:       len(cat.SystemAttributes),
		})
	}

	c.categories[cat.ID] = cat
	c.categoryOrder = append(c.categoryOrder, cat.ID)
	c.reindex()
	return cat.Clone(), nil
}

func (c *Catalog) siblingCount(parentID string) int {
	if parentID == "" {
		return len(c.index.Roots())
	}
	return len(c.index.Children(parentID))
}

// RenameCategory changes a category's name.
func (c *Catalog) RenameCategory(id, name string) error {
	cat, err := c.mustCategory(id)
	if err != nil {
		return err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.NewValidationError("name", "category name is required")
	}
	cat.Name = name
	return nil
}

// DeleteCategory removes a category, its whole subtree and their configs.
// It returns the IDs removed.
func (c *Catalog) DeleteCategory(id string) ([]string, error) {
	if _, err := c.mustCategory(id); err != nil {
		return nil, err
	}
	removed := tree.Subtree(c.index, id)
	gone := make(map[string]bool, len(removed))
	for _, rid := range removed {
		gone[rid] = true
		delete(c.categories, rid)
	}
	kept := c.categoryOrder[:0]
	for _, cid := range c.categoryOrder {
		if !gone[cid] {
			kept = append(kept, cid)
		}
	}
	c.categoryOrder = kept
	c.reindex()
	return removed, nil
}

// ToggleAttribute flips the enabled flag of a category's config. Configs of
// required attributes cannot be toggled.
func (c *Catalog) ToggleAttribute(categoryID, attributeID string, isSystem bool) error {
	cat, err := c.mustCategory(categoryID)
	if err != nil {
		return err
	}
	cfg := cat.FindConfig(attributeID, isSystem)
	if cfg == nil {
		return domain.NewValidationError("attribute", "category %q has no config for attribute %q", cat.Name, attributeID)
	}
	if attr, ok := c.attributes[attributeID]; ok && attr.IsRequired {
		return &domain.OperationNotAllowedError{
			Op:     "toggle attribute",
			Reason: "attribute " + attr.Label + " is required",
		}
	}
	cfg.IsEnabled = !cfg.IsEnabled
	return nil
}

// AddCoreAttribute validates attr and adds it to the library with a fresh ID.
// Dropdown options are stored trimmed. New attributes land in the
// your-attributes section unless a section is given, start enabled and are
// never required.
func (c *Catalog) AddCoreAttribute(attr domain.Attribute) (*domain.Attribute, error) {
	if err := attr.Validate(); err != nil {
		return nil, err
	}
	attr.ID = c.newID()
	attr.Label = strings.TrimSpace(attr.Label)
	attr.Description = strings.TrimSpace(attr.Description)
	if attr.Type == domain.AttrDropdown {
		attr.DropdownOptions = domain.TrimmedOptions(attr.DropdownOptions)
	} else {
		attr.DropdownOptions = nil
	}
	attr.Section = domain.Section(domain.CoalesceStr(string(attr.Section), string(domain.SectionYourAttributes)))
	attr.IsEnabled = true
	attr.IsRequired = false

	c.attributes[attr.ID] = &attr
	c.attrOrder = append(c.attrOrder, attr.ID)
	cp := attr
	return &cp, nil
}

// AttachAttribute adds an enabled config for a library attribute to a
// category, in the system or custom list according to the attribute section.
func (c *Catalog) AttachAttribute(categoryID, attributeID string) error {
	cat, err := c.mustCategory(categoryID)
	if err != nil {
		return err
	}
	attr, ok := c.attributes[attributeID]
	if !ok {
		return domain.NewValidationError("attribute", "attribute %q not found", attributeID)
	}
	if cat.HasAttribute(attributeID) {
		return domain.NewValidationError("attribute", "attribute %q already attached to %q", attr.Label, cat.Name)
	}
	if attr.IsSystem() {
		cat.SystemAttributes = append(cat.SystemAttributes, domain.CategoryAttributeConfig{
			AttributeID: attributeID, IsEnabled: true, Order: len(cat.SystemAttributes),
		})
		return nil
	}
	cat.CustomAttributes = append(cat.CustomAttributes, domain.CategoryAttributeConfig{
		AttributeID: attributeID, IsEnabled: true, Order: len(cat.CustomAttributes),
	})
	return nil
}

// DetachAttribute removes a custom config from a category. System configs
// are toggle-only.
func (c *Catalog) DetachAttribute(categoryID, attributeID string) error {
	cat, err := c.mustCategory(categoryID)
	if err != nil {
		return err
	}
	if cat.FindConfig(attributeID, true) != nil {
		return &domain.OperationNotAllowedError{Op: "detach attribute", Reason: "system attributes can only be toggled"}
	}
	if cat.FindConfig(attributeID, false) == nil {
		return domain.NewValidationError("attribute", "category %q has no custom attribute %q", cat.Name, attributeID)
	}
	cat.CustomAttributes = withoutConfig(cat.CustomAttributes, attributeID)
	return nil
}

// DeleteAttribute removes a custom attribute from the library and from every
// category that references it.
func (c *Catalog) DeleteAttribute(attributeID string) error {
	attr, ok := c.attributes[attributeID]
	if !ok {
		return domain.NewValidationError("attribute", "attribute %q not found", attributeID)
	}
	if attr.IsRequired || attr.IsSystem() {
		return &domain.OperationNotAllowedError{Op: "delete attribute", Reason: "system attributes cannot be deleted"}
	}
	for _, cat := range c.categories {
		cat.SystemAttributes = withoutConfig(cat.SystemAttributes, attributeID)
		cat.CustomAttributes = withoutConfig(cat.CustomAttributes, attributeID)
	}
	delete(c.attributes, attributeID)
	kept := c.attrOrder[:0]
	for _, id := range c.attrOrder {
		if id != attributeID {
			kept = append(kept, id)
		}
	}
	c.attrOrder = kept
	return nil
}

func withoutConfig(list []domain.CategoryAttributeConfig, attributeID string) []domain.CategoryAttributeConfig {
	out := list[:0]
	for _, cfg := range list {
		if cfg.AttributeID != attributeID {
			out = append(out, cfg)
		}
	}
	return out
}
