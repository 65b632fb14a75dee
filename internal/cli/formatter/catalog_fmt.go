package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BigChangeApps/labs-sub003/internal/catalog"
	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/BigChangeApps/labs-sub003/internal/tree"
)

// FormatCategoryTree renders the category forest with each category's
// enabled-attribute count. Categories that cannot be opened while
// inheritance is off are muted.
func FormatCategoryTree(c *catalog.Catalog, badges map[string]int) string {
	var items []TreeItem
	tree.Walk(c.Index(), func(id string, depth int, isLast bool) bool {
		cat, ok := c.Category(id)
		if !ok {
			return false
		}
		items = append(items, TreeItem{
			Title:  cat.Name + " " + Dim(id),
			Level:  depth,
			IsLast: isLast,
			Badge:  strconv.Itoa(badges[id]),
			Muted:  !c.IsClickable(id),
		})
		return true
	})

	var b strings.Builder
	b.WriteString(Header("Categories"))
	b.WriteString("\n")
	if len(items) == 0 {
		b.WriteString(Dim("No categories.") + "\n")
	} else {
		b.WriteString(RenderTree(items))
	}
	b.WriteString("\n" + Dim("parent inheritance: ") + EnabledPill(c.InheritanceEnabled()) + "\n")
	return b.String()
}

// FormatEffectiveAttributes lists the resolved attributes of a category,
// noting which ancestor each inherited one came from.
func FormatEffectiveAttributes(c *catalog.Catalog, categoryID string, attrs []domain.EffectiveAttribute) string {
	name := categoryID
	if cat, ok := c.Category(categoryID); ok {
		name = cat.Name
	}

	rows := make([][]string, 0, len(attrs))
	for _, a := range attrs {
		source := Dim("own")
		if a.Inherited(categoryID) {
			from := a.SourceCategoryID
			if anc, ok := c.Category(from); ok {
				from = anc.Name
			}
			source = StyleYellow.Render("from " + from)
		}
		label := a.Label
		if a.IsRequired {
			label += StyleRed.Render(" *")
		}
		rows = append(rows, []string{
			label,
			string(a.Type),
			SectionBadge(sectionOf(a)),
			EnabledPill(a.IsEnabled),
			source,
			Dim(a.ID),
		})
	}

	var b strings.Builder
	b.WriteString(Header(name))
	b.WriteString("\n")
	if len(rows) == 0 {
		b.WriteString(Dim("No attributes configured.") + "\n")
		return b.String()
	}
	b.WriteString(RenderTable([]string{"ATTRIBUTE", "TYPE", "SECTION", "STATE", "SOURCE", "ID"}, rows))
	return b.String()
}

func sectionOf(a domain.EffectiveAttribute) domain.Section {
	if a.IsSystem {
		return domain.SectionSystem
	}
	return domain.SectionYourAttributes
}

// FormatAttributeLibrary lists every attribute in the library.
func FormatAttributeLibrary(attrs []*domain.Attribute) string {
	if len(attrs) == 0 {
		return Dim("The attribute library is empty.") + "\n"
	}
	rows := make([][]string, 0, len(attrs))
	for _, a := range attrs {
		opts := ""
		if a.Type == domain.AttrDropdown {
			opts = strings.Join(a.DropdownOptions, ", ")
		}
		required := ""
		if a.IsRequired {
			required = StyleRed.Render("required")
		}
		rows = append(rows, []string{a.Label, string(a.Type), SectionBadge(a.Section), required, Dim(opts), Dim(a.ID)})
	}
	return RenderTable([]string{"LABEL", "TYPE", "SECTION", "", "OPTIONS", "ID"}, rows)
}

// FormatManufacturers renders manufacturers with their models nested.
func FormatManufacturers(ms []*domain.Manufacturer) string {
	if len(ms) == 0 {
		return Dim("No manufacturers.") + "\n"
	}
	var items []TreeItem
	for i, m := range ms {
		items = append(items, TreeItem{
			Title:  Bold(m.Name) + " " + Dim(m.ID),
			IsLast: i == len(ms)-1,
			Badge:  fmt.Sprintf("%d models", len(m.Models)),
		})
		for j, model := range m.Models {
			items = append(items, TreeItem{
				Title:  model.Name + " " + Dim(model.ID),
				Level:  1,
				IsLast: j == len(m.Models)-1,
			})
		}
	}
	return RenderTree(items)
}
