package domain

type AttributeType string

const (
	AttrText     AttributeType = "text"
	AttrNumber   AttributeType = "number"
	AttrDropdown AttributeType = "dropdown"
	AttrDate     AttributeType = "date"
	AttrBoolean  AttributeType = "boolean"
	AttrSearch   AttributeType = "search"
)

// ValidAttributeTypes is the canonical set of accepted attribute type strings.
var ValidAttributeTypes = map[AttributeType]bool{
	AttrText: true, AttrNumber: true, AttrDropdown: true,
	AttrDate: true, AttrBoolean: true, AttrSearch: true,
}

type Section string

const (
	SectionSystem         Section = "system"
	SectionYourAttributes Section = "your-attributes"
)

type LineCategory string

const (
	LineLabour    LineCategory = "labour"
	LineMaterials LineCategory = "materials"
	LineOther     LineCategory = "other"
)

// LineCategories lists line categories in display order.
var LineCategories = []LineCategory{LineLabour, LineMaterials, LineOther}

// ValidLineCategories is the canonical set of accepted line category strings.
var ValidLineCategories = map[LineCategory]bool{
	LineLabour: true, LineMaterials: true, LineOther: true,
}

// Label returns the capitalised display form of the category.
func (c LineCategory) Label() string {
	switch c {
	case LineLabour:
		return "Labour"
	case LineMaterials:
		return "Materials"
	case LineOther:
		return "Other"
	default:
		return string(c)
	}
}

// ViewMode is the invoice level of detail.
type ViewMode string

const (
	ViewSummary  ViewMode = "summary"
	ViewPartial  ViewMode = "partial"
	ViewDetailed ViewMode = "detailed"
)

// DefaultViewMode is used when an invoice is initialised without a mode
// and when the mode of an unknown invoice is read.
const DefaultViewMode = ViewPartial

var ValidViewModes = map[ViewMode]bool{
	ViewSummary: true, ViewPartial: true, ViewDetailed: true,
}

// BreakdownLevel is the invoice grouping granularity across jobs.
type BreakdownLevel string

const (
	BreakdownContact BreakdownLevel = "contact"
	BreakdownSite    BreakdownLevel = "site"
)

var ValidBreakdownLevels = map[BreakdownLevel]bool{
	BreakdownContact: true, BreakdownSite: true,
}

type BrandTheme string

const (
	ThemeDefault   BrandTheme = "default"
	ThemeBigChange BrandTheme = "bigchange"
	ThemeClassic   BrandTheme = "classic"
)

var ValidBrandThemes = map[BrandTheme]bool{
	ThemeDefault: true, ThemeBigChange: true, ThemeClassic: true,
}
