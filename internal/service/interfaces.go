package service

import (
	"context"

	"github.com/BigChangeApps/labs-sub003/internal/catalog"
	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/BigChangeApps/labs-sub003/internal/repository"
	"github.com/BigChangeApps/labs-sub003/internal/selection"
)

// CatalogView is a read-only copy of the stored catalog with the values the
// tree view derives from it.
type CatalogView struct {
	Catalog *catalog.Catalog
	Badges  map[string]int
}

type CatalogService interface {
	View(ctx context.Context) (*CatalogView, error)
	EffectiveAttributes(ctx context.Context, categoryID string) ([]domain.EffectiveAttribute, error)
	Seed(ctx context.Context) error

	AddCategory(ctx context.Context, name, parentID string) (*domain.Category, error)
	RenameCategory(ctx context.Context, id, name string) error
	DeleteCategory(ctx context.Context, id string) ([]string, error)
	ToggleAttribute(ctx context.Context, categoryID, attributeID string, isSystem bool) error
	AttachAttribute(ctx context.Context, categoryID, attributeID string) error
	DetachAttribute(ctx context.Context, categoryID, attributeID string) error
	SetInheritance(ctx context.Context, enabled bool) error

	AddCoreAttribute(ctx context.Context, attr domain.Attribute) (*domain.Attribute, error)
	DeleteAttribute(ctx context.Context, attributeID string) error

	AddManufacturer(ctx context.Context, name string) (*domain.Manufacturer, error)
	EditManufacturer(ctx context.Context, id, name string) error
	DeleteManufacturer(ctx context.Context, id string) (int, error)
	AddModel(ctx context.Context, manufacturerID, name string) (*domain.Model, error)
	EditModel(ctx context.Context, manufacturerID, modelID, name string) error
	DeleteModel(ctx context.Context, manufacturerID, modelID string) error
}

// InvoiceView is an invoice draft with every derived value the CLI shows.
type InvoiceView struct {
	State     *domain.InvoiceSelectionState
	Counts    map[string]selection.LineCounts
	Totals    selection.Totals
	Breakdown []selection.BreakdownGroup
}

type InvoiceService interface {
	Init(ctx context.Context, invoiceID string, jobs []domain.Job, mode domain.ViewMode) (*InvoiceView, error)
	Get(ctx context.Context, invoiceID string) (*InvoiceView, error)
	List(ctx context.Context) ([]repository.DraftSummary, error)
	Dispose(ctx context.Context, invoiceID string) error

	ToggleLine(ctx context.Context, invoiceID, jobID, lineID string) (*InvoiceView, error)
	ToggleJob(ctx context.Context, invoiceID, jobID string, include bool) (*InvoiceView, error)
	ToggleCategory(ctx context.Context, invoiceID, jobID string, cat domain.LineCategory) (*InvoiceView, error)
	UpdateLines(ctx context.Context, invoiceID, jobID string, lines []domain.LineSeed) (*InvoiceView, error)
	SetGroupLines(ctx context.Context, invoiceID string, lines []domain.LineSeed) (*InvoiceView, error)
	ToggleGroupLine(ctx context.Context, invoiceID, lineID string) (*InvoiceView, error)
	SetViewMode(ctx context.Context, invoiceID string, mode domain.ViewMode) (*InvoiceView, error)
	SetBreakdown(ctx context.Context, invoiceID string, level domain.BreakdownLevel) (*InvoiceView, error)
}

type PreferencesService interface {
	Get(ctx context.Context) (domain.Preferences, error)
	SetFlag(ctx context.Context, name string, enabled bool) error
	SetDarkMode(ctx context.Context, enabled bool) error
	SetTheme(ctx context.Context, theme domain.BrandTheme) error
}
