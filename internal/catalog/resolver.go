package catalog

import (
	"errors"
	"sort"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/BigChangeApps/labs-sub003/internal/tree"
)

// ownAttributes resolves a category's own configs, system list first. Configs
// whose attribute is missing from the library are skipped; a second config
// for the same attribute on the same category is ignored.
func (c *Catalog) ownAttributes(cat *domain.Category, seen map[string]bool) []domain.EffectiveAttribute {
	var out []domain.EffectiveAttribute
	for _, system := range []bool{true, false} {
		configs := append([]domain.CategoryAttributeConfig(nil), cat.Configs(system)...)
		sort.SliceStable(configs, func(i, j int) bool { return configs[i].Order < configs[j].Order })
		for _, cfg := range configs {
			if seen[cfg.AttributeID] {
				continue
			}
			attr, ok := c.attributes[cfg.AttributeID]
			if !ok {
				continue
			}
			seen[cfg.AttributeID] = true
			out = append(out, domain.EffectiveAttribute{
				Attribute:        *attr,
				IsEnabled:        cfg.IsEnabled,
				Order:            cfg.Order,
				IsSystem:         system,
				SourceCategoryID: cat.ID,
			})
		}
	}
	return out
}

// EffectiveAttributes returns the attribute set that applies to categoryID.
// With inheritance disabled that is the category's own configs. With it
// enabled, ancestor configs are appended nearest first and an attribute
// already resolved by a closer category is never overridden by a farther one.
func (c *Catalog) EffectiveAttributes(categoryID string) ([]domain.EffectiveAttribute, error) {
	cat, err := c.mustCategory(categoryID)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	out := c.ownAttributes(cat, seen)
	if !c.inheritance {
		return out, nil
	}

	ancestors, err := tree.Ancestors(categoryID, c.parentOf)
	if err != nil {
		return nil, &domain.CycleDetectedError{CategoryID: categoryID, Err: err}
	}
	for _, id := range ancestors {
		out = append(out, c.ownAttributes(c.categories[id], seen)...)
	}
	return out, nil
}

// EffectiveAttributesOrOwn resolves like EffectiveAttributes but falls back to
// the category's own configs when the tree is malformed. The returned error is
// the CycleDetectedError that forced the fallback, for the caller to report.
func (c *Catalog) EffectiveAttributesOrOwn(categoryID string) ([]domain.EffectiveAttribute, error) {
	attrs, err := c.EffectiveAttributes(categoryID)
	if err == nil || !errors.Is(err, domain.ErrCycleDetected) {
		return attrs, err
	}
	return c.ownAttributes(c.categories[categoryID], map[string]bool{}), err
}

// EnabledCount counts the effective attributes of categoryID that are
// enabled. Nothing is cached, so the count reflects the latest toggle.
func (c *Catalog) EnabledCount(categoryID string) (int, error) {
	attrs, err := c.EffectiveAttributes(categoryID)
	if err != nil {
		return 0, err
	}
	return countEnabled(attrs), nil
}

// IsClickable reports whether a category can be opened for attribute
// configuration: always when inheritance is on, otherwise only leaves.
func (c *Catalog) IsClickable(categoryID string) bool {
	if _, ok := c.categories[categoryID]; !ok {
		return false
	}
	return c.inheritance || c.index.IsLeaf(categoryID)
}

// CountBadges returns the enabled count for every category. Categories whose
// ancestor walk fails are counted on their own configs.
func (c *Catalog) CountBadges() map[string]int {
	out := make(map[string]int, len(c.categories))
	for _, id := range c.categoryOrder {
		attrs, _ := c.EffectiveAttributesOrOwn(id)
		out[id] = countEnabled(attrs)
	}
	return out
}

func countEnabled(attrs []domain.EffectiveAttribute) int {
	n := 0
	for _, a := range attrs {
		if a.IsEnabled {
			n++
		}
	}
	return n
}
