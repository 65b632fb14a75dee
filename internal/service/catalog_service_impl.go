package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/BigChangeApps/labs-sub003/internal/catalog"
	"github.com/BigChangeApps/labs-sub003/internal/db"
	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"github.com/BigChangeApps/labs-sub003/internal/repository"
	"github.com/rs/zerolog"
)

// SeedFunc produces the catalog written on first use and by Seed.
type SeedFunc func() (catalog.Snapshot, error)

type catalogService struct {
	uow      db.UnitOfWork
	seed     SeedFunc
	logger   zerolog.Logger
	observer UseCaseObserver
}

func NewCatalogService(uow db.UnitOfWork, seed SeedFunc, logger zerolog.Logger, observers ...UseCaseObserver) CatalogService {
	return &catalogService{
		uow:      uow,
		seed:     seed,
		logger:   logger.With().Str("service", "catalog").Logger(),
		observer: useCaseObserverOrNoop(observers),
	}
}

// load reads the stored catalog, writing the seed first when nothing has
// been stored yet.
func (s *catalogService) load(ctx context.Context, repo repository.CatalogRepo) (*catalog.Catalog, error) {
	snap, err := repo.Load(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		snap, err = s.seed()
		if err != nil {
			return nil, fmt.Errorf("seeding catalog: %w", err)
		}
		if err := repo.Save(ctx, snap); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}
	c, err := catalog.FromSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return c, nil
}

// mutate applies fn to the stored catalog and writes it back in one
// transaction. Nothing is written when fn fails.
func (s *catalogService) mutate(ctx context.Context, fn func(c *catalog.Catalog) error) error {
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLiteCatalogRepo(tx)
		c, err := s.load(ctx, repo)
		if err != nil {
			return err
		}
		if err := fn(c); err != nil {
			return err
		}
		return repo.Save(ctx, c.Snapshot())
	})
}

func (s *catalogService) read(ctx context.Context) (c *catalog.Catalog, err error) {
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		c, err = s.load(ctx, repository.NewSQLiteCatalogRepo(tx))
		return err
	})
	return c, err
}

func (s *catalogService) View(ctx context.Context) (*CatalogView, error) {
	c, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		s.logger.Warn().Err(err).Msg("catalog tree is malformed; badges fall back to own attributes")
	}
	return &CatalogView{Catalog: c, Badges: c.CountBadges()}, nil
}

// EffectiveAttributes resolves a category's attributes. A malformed tree
// is logged and answered with the category's own attributes.
func (s *catalogService) EffectiveAttributes(ctx context.Context, categoryID string) ([]domain.EffectiveAttribute, error) {
	c, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	if _, ok := c.Category(categoryID); !ok {
		return nil, domain.NewValidationError("category", "category %q not found", categoryID)
	}
	attrs, err := c.EffectiveAttributesOrOwn(categoryID)
	if err != nil {
		s.logger.Warn().Err(err).Str("category_id", categoryID).Msg("falling back to own attributes")
	}
	return attrs, nil
}

func (s *catalogService) Seed(ctx context.Context) (err error) {
	defer observe(ctx, s.observer, "seed-catalog", nil, &err)()
	snap, err := s.seed()
	if err != nil {
		return fmt.Errorf("seeding catalog: %w", err)
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteCatalogRepo(tx).Save(ctx, snap)
	})
}

func (s *catalogService) AddCategory(ctx context.Context, name, parentID string) (cat *domain.Category, err error) {
	fields := map[string]any{"name": name, "parent_id": parentID}
	defer observe(ctx, s.observer, "add-category", fields, &err)()
	err = s.mutate(ctx, func(c *catalog.Catalog) error {
		cat, err = c.AddCategory(name, parentID)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["category_id"] = cat.ID
	return cat, nil
}

func (s *catalogService) RenameCategory(ctx context.Context, id, name string) (err error) {
	defer observe(ctx, s.observer, "rename-category", map[string]any{"category_id": id}, &err)()
	return s.mutate(ctx, func(c *catalog.Catalog) error {
		return c.RenameCategory(id, name)
	})
}

func (s *catalogService) DeleteCategory(ctx context.Context, id string) (removed []string, err error) {
	fields := map[string]any{"category_id": id}
	defer observe(ctx, s.observer, "delete-category", fields, &err)()
	err = s.mutate(ctx, func(c *catalog.Catalog) error {
		removed, err = c.DeleteCategory(id)
		return err
	})
	fields["removed"] = len(removed)
	return removed, err
}

func (s *catalogService) ToggleAttribute(ctx context.Context, categoryID, attributeID string, isSystem bool) (err error) {
	fields := map[string]any{"category_id": categoryID, "attribute_id": attributeID, "system": isSystem}
	defer observe(ctx, s.observer, "toggle-attribute", fields, &err)()
	return s.mutate(ctx, func(c *catalog.Catalog) error {
		return c.ToggleAttribute(categoryID, attributeID, isSystem)
	})
}

func (s *catalogService) AttachAttribute(ctx context.Context, categoryID, attributeID string) (err error) {
	defer observe(ctx, s.observer, "attach-attribute", map[string]any{"category_id": categoryID, "attribute_id": attributeID}, &err)()
	return s.mutate(ctx, func(c *catalog.Catalog) error {
		return c.AttachAttribute(categoryID, attributeID)
	})
}

func (s *catalogService) DetachAttribute(ctx context.Context, categoryID, attributeID string) (err error) {
	defer observe(ctx, s.observer, "detach-attribute", map[string]any{"category_id": categoryID, "attribute_id": attributeID}, &err)()
	return s.mutate(ctx, func(c *catalog.Catalog) error {
		return c.DetachAttribute(categoryID, attributeID)
	})
}

func (s *catalogService) SetInheritance(ctx context.Context, enabled bool) (err error) {
	defer observe(ctx, s.observer, "set-inheritance", map[string]any{"enabled": enabled}, &err)()
	return s.mutate(ctx, func(c *catalog.Catalog) error {
		c.SetInheritance(enabled)
		return nil
	})
}

func (s *catalogService) AddCoreAttribute(ctx context.Context, attr domain.Attribute) (added *domain.Attribute, err error) {
	fields := map[string]any{"label": attr.Label, "type": string(attr.Type)}
	defer observe(ctx, s.observer, "add-attribute", fields, &err)()
	err = s.mutate(ctx, func(c *catalog.Catalog) error {
		added, err = c.AddCoreAttribute(attr)
		return err
	})
	if err != nil {
		return nil, err
	}
	fields["attribute_id"] = added.ID
	return added, nil
}

func (s *catalogService) DeleteAttribute(ctx context.Context, attributeID string) (err error) {
	defer observe(ctx, s.observer, "delete-attribute", map[string]any{"attribute_id": attributeID}, &err)()
	return s.mutate(ctx, func(c *catalog.Catalog) error {
		return c.DeleteAttribute(attributeID)
	})
}

func (s *catalogService) AddManufacturer(ctx context.Context, name string) (m *domain.Manufacturer, err error) {
	defer observe(ctx, s.observer, "add-manufacturer", map[string]any{"name": name}, &err)()
	err = s.mutate(ctx, func(c *catalog.Catalog) error {
		m, err = c.AddManufacturer(name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *catalogService) EditManufacturer(ctx context.Context, id, name string) (err error) {
	defer observe(ctx, s.observer, "edit-manufacturer", map[string]any{"manufacturer_id": id}, &err)()
	return s.mutate(ctx, func(c *catalog.Catalog) error {
		return c.EditManufacturer(id, name)
	})
}

func (s *catalogService) DeleteManufacturer(ctx context.Context, id string) (models int, err error) {
	fields := map[string]any{"manufacturer_id": id}
	defer observe(ctx, s.observer, "delete-manufacturer", fields, &err)()
	err = s.mutate(ctx, func(c *catalog.Catalog) error {
		models, err = c.DeleteManufacturer(id)
		return err
	})
	fields["models_removed"] = models
	return models, err
}

func (s *catalogService) AddModel(ctx context.Context, manufacturerID, name string) (m *domain.Model, err error) {
	defer observe(ctx, s.observer, "add-model", map[string]any{"manufacturer_id": manufacturerID}, &err)()
	err = s.mutate(ctx, func(c *catalog.Catalog) error {
		m, err = c.AddModel(manufacturerID, name)
		return err
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (s *catalogService) EditModel(ctx context.Context, manufacturerID, modelID, name string) (err error) {
	defer observe(ctx, s.observer, "edit-model", map[string]any{"manufacturer_id": manufacturerID, "model_id": modelID}, &err)()
	return s.mutate(ctx, func(c *catalog.Catalog) error {
		return c.EditModel(manufacturerID, modelID, name)
	})
}

func (s *catalogService) DeleteModel(ctx context.Context, manufacturerID, modelID string) (err error) {
	defer observe(ctx, s.observer, "delete-model", map[string]any{"manufacturer_id": manufacturerID, "model_id": modelID}, &err)()
	return s.mutate(ctx, func(c *catalog.Catalog) error {
		return c.DeleteModel(manufacturerID, modelID)
	})
}
