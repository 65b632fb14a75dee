// Package fixtures provides the embedded seed catalog and demo jobs, and
// readers for job and line-item YAML files.
package fixtures

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/BigChangeApps/labs-sub003/internal/catalog"
	"github.com/BigChangeApps/labs-sub003/internal/domain"
	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml
var catalogYAML []byte

//go:embed data/jobs.yaml
var jobsYAML []byte

// DefaultCatalog returns the seeded category tree, attribute library and
// manufacturers.
func DefaultCatalog() (catalog.Snapshot, error) {
	var s catalog.Snapshot
	if err := decodeStrict(bytes.NewReader(catalogYAML), &s); err != nil {
		return catalog.Snapshot{}, fmt.Errorf("decoding default catalog: %w", err)
	}
	return s, nil
}

// DemoJobs returns the jobs used by `invoice init` when no file is given.
func DemoJobs() ([]domain.Job, error) {
	jobs, err := ReadJobs(bytes.NewReader(jobsYAML))
	if err != nil {
		return nil, fmt.Errorf("decoding demo jobs: %w", err)
	}
	return jobs, nil
}

// ReadJobs decodes a YAML list of jobs and checks ids and line categories.
func ReadJobs(r io.Reader) ([]domain.Job, error) {
	var jobs []domain.Job
	if err := decodeStrict(r, &jobs); err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	for _, job := range jobs {
		if job.ID == "" {
			return nil, domain.NewValidationError("job", "job %q has no id", job.Ref)
		}
		if seen[job.ID] {
			return nil, domain.NewValidationError("job", "duplicate job id %q", job.ID)
		}
		seen[job.ID] = true
		if err := checkSeeds(job.LineItems); err != nil {
			return nil, fmt.Errorf("job %s: %w", job.ID, err)
		}
	}
	return jobs, nil
}

// ReadLineSeeds decodes a YAML list of line items.
func ReadLineSeeds(r io.Reader) ([]domain.LineSeed, error) {
	var seeds []domain.LineSeed
	if err := decodeStrict(r, &seeds); err != nil {
		return nil, err
	}
	if err := checkSeeds(seeds); err != nil {
		return nil, err
	}
	return seeds, nil
}

// LoadJobsFile reads jobs from a YAML file.
func LoadJobsFile(path string) ([]domain.Job, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening jobs file: %w", err)
	}
	defer f.Close()
	jobs, err := ReadJobs(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return jobs, nil
}

// LoadLineSeedsFile reads line items from a YAML file.
func LoadLineSeedsFile(path string) ([]domain.LineSeed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening lines file: %w", err)
	}
	defer f.Close()
	seeds, err := ReadLineSeeds(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return seeds, nil
}

func checkSeeds(seeds []domain.LineSeed) error {
	seen := map[string]bool{}
	for _, s := range seeds {
		if s.ID == "" {
			return domain.NewValidationError("line", "line %q has no id", s.Description)
		}
		if seen[s.ID] {
			return domain.NewValidationError("line", "duplicate line id %q", s.ID)
		}
		seen[s.ID] = true
		if !domain.ValidLineCategories[s.Category] {
			return domain.NewValidationError("category", "line %s has unknown category %q", s.ID, s.Category)
		}
	}
	return nil
}

func decodeStrict(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && err != io.EOF {
		return err
	}
	return nil
}
