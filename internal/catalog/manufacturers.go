package catalog

import (
	"strings"

	"github.com/BigChangeApps/labs-sub003/internal/domain"
)

// Manufacturers returns copies of every manufacturer with its models.
func (c *Catalog) Manufacturers() []*domain.Manufacturer {
	out := make([]*domain.Manufacturer, 0, len(c.manufacturers))
	for _, m := range c.manufacturers {
		out = append(out, m.Clone())
	}
	return out
}

// Manufacturer returns a copy of one manufacturer.
func (c *Catalog) Manufacturer(id string) (*domain.Manufacturer, bool) {
	i := c.findManufacturer(id)
	if i < 0 {
		return nil, false
	}
	return c.manufacturers[i].Clone(), true
}

func (c *Catalog) findManufacturer(id string) int {
	for i, m := range c.manufacturers {
		if m.ID == id {
			return i
		}
	}
	return -1
}

func (c *Catalog) mustManufacturer(id string) (*domain.Manufacturer, error) {
	i := c.findManufacturer(id)
	if i < 0 {
		return nil, domain.NewValidationError("manufacturer", "manufacturer %q not found", id)
	}
	return c.manufacturers[i], nil
}

func requiredName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.NewValidationError(field, "%s name is required", field)
	}
	return name, nil
}

// AddManufacturer creates a manufacturer with no models.
func (c *Catalog) AddManufacturer(name string) (*domain.Manufacturer, error) {
	name, err := requiredName("manufacturer", name)
	if err != nil {
		return nil, err
	}
	m := &domain.Manufacturer{ID: c.newID(), Name: name, Models: []domain.Model{}}
	c.manufacturers = append(c.manufacturers, m)
	return m.Clone(), nil
}

// EditManufacturer renames a manufacturer.
func (c *Catalog) EditManufacturer(id, name string) error {
	m, err := c.mustManufacturer(id)
	if err != nil {
		return err
	}
	name, err = requiredName("manufacturer", name)
	if err != nil {
		return err
	}
	m.Name = name
	return nil
}

// DeleteManufacturer removes a manufacturer together with all of its models
// in a single update. It returns the number of models removed.
func (c *Catalog) DeleteManufacturer(id string) (int, error) {
	i := c.findManufacturer(id)
	if i < 0 {
		return 0, domain.NewValidationError("manufacturer", "manufacturer %q not found", id)
	}
	removed := len(c.manufacturers[i].Models)
	next := make([]*domain.Manufacturer, 0, len(c.manufacturers)-1)
	next = append(next, c.manufacturers[:i]...)
	next = append(next, c.manufacturers[i+1:]...)
	c.manufacturers = next
	return removed, nil
}

// AddModel appends a model to a manufacturer. Names need not be unique.
func (c *Catalog) AddModel(manufacturerID, name string) (*domain.Model, error) {
	m, err := c.mustManufacturer(manufacturerID)
	if err != nil {
		return nil, err
	}
	name, err = requiredName("model", name)
	if err != nil {
		return nil, err
	}
	model := domain.Model{ID: c.newID(), Name: name}
	m.Models = append(m.Models, model)
	return &model, nil
}

// EditModel renames one of a manufacturer's models.
func (c *Catalog) EditModel(manufacturerID, modelID, name string) error {
	m, err := c.mustManufacturer(manufacturerID)
	if err != nil {
		return err
	}
	i := m.FindModel(modelID)
	if i < 0 {
		return domain.NewValidationError("model", "model %q not found", modelID)
	}
	name, err = requiredName("model", name)
	if err != nil {
		return err
	}
	m.Models[i].Name = name
	return nil
}

// DeleteModel removes one model from a manufacturer.
func (c *Catalog) DeleteModel(manufacturerID, modelID string) error {
	m, err := c.mustManufacturer(manufacturerID)
	if err != nil {
		return err
	}
	i := m.FindModel(modelID)
	if i < 0 {
		return domain.NewValidationError("model", "model %q not found", modelID)
	}
	m.Models = append(m.Models[:i:i], m.Models[i+1:]...)
	return nil
}
