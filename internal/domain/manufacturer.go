package domain

// Model is an asset model owned by a manufacturer. Names need not be unique.
type Model struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Manufacturer owns its models; deleting a manufacturer removes them.
type Manufacturer struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Models []Model `json:"models" yaml:"models"`
}

// FindModel returns the index of modelID, or -1.
func (m *Manufacturer) FindModel(modelID string) int {
	for i := range m.Models {
		if m.Models[i].ID == modelID {
			return i
		}
	}
	return -1
}

// Clone returns a deep copy of the manufacturer.
func (m *Manufacturer) Clone() *Manufacturer {
	out := *m
	out.Models = append([]Model(nil), m.Models...)
	return &out
}
