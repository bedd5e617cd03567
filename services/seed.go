package services

import (
	"fmt"
	"os"
	"strings"

	"orgchart/models"
	"orgchart/org"
	"orgchart/validator"

	"gopkg.in/yaml.v3"
)

// Seed is the on-disk format for preloading charts at startup
type Seed struct {
	Charts []SeedChart `yaml:"charts"`
}

type SeedChart struct {
	Name      string         `yaml:"name"`
	Employees []SeedEmployee `yaml:"employees"`
	Reports   []SeedReport   `yaml:"reports"`
}

type SeedEmployee struct {
	Key    string  `yaml:"key"`
	Name   string  `yaml:"name"`
	Title  string  `yaml:"title"`
	Salary float64 `yaml:"salary"`
}

// SeedReport attaches Subordinate under Manager. Reports are applied in
// file order and a repeated pair adds a second entry.
type SeedReport struct {
	Manager     string `yaml:"manager"`
	Subordinate string `yaml:"subordinate"`
}

// LoadSeed reads and parses a seed file
func LoadSeed(path string) (*Seed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read seed file: %w", err)
	}
	return ParseSeed(data)
}

// ParseSeed parses a YAML seed document
func ParseSeed(data []byte) (*Seed, error) {
	seed := new(Seed)
	if err := yaml.Unmarshal(data, seed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	return seed, nil
}

// ImportSeed builds every chart of the seed. Nothing is stored unless the
// whole seed is valid.
func (cs *ChartService) ImportSeed(seed *Seed) ([]models.Chart, error) {
	charts := make([]*Chart, 0, len(seed.Charts))
	for i, sc := range seed.Charts {
		chart, err := buildSeedChart(sc, cs.validate, cs.maxEntries)
		if err != nil {
			return nil, fmt.Errorf("chart %d (%q): %w", i, sc.Name, err)
		}
		charts = append(charts, chart)
	}

	out := make([]models.Chart, 0, len(charts))
	for _, chart := range charts {
		view := chartView(chart)
		if err := cs.store.Put(chart); err != nil {
			return nil, fmt.Errorf("failed to store chart: %w", err)
		}
		cs.logger.Info("chart seeded", "chart_id", chart.ID, "name", chart.Name, "headcount", view.Headcount)
		out = append(out, *view)
	}
	return out, nil
}

// seedChartName carries a seed chart name through the same rules a created
// chart's name must pass
type seedChartName struct {
	Name string `json:"name" validate:"required,min=2,max=100,chartname"`
}

// buildSeedChart assembles one chart. Names, titles and salaries must pass the
// rules the HTTP API enforces, and the finished chart stays within maxEntries.
func buildSeedChart(sc SeedChart, v *validator.Validator, maxEntries int) (*Chart, error) {
	name := strings.TrimSpace(sc.Name)
	if err := v.Validate(seedChartName{Name: name}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSeed, err)
	}
	if len(sc.Employees) == 0 {
		return nil, fmt.Errorf("%w: chart has no employees", ErrInvalidSeed)
	}
	if len(sc.Employees) > maxEntries {
		return nil, fmt.Errorf("%w: %w: %d employees", ErrInvalidSeed, ErrChartTooLarge, len(sc.Employees))
	}

	chart := NewChart(name)
	byKey := make(map[string]*org.Employee, len(sc.Employees))

	for _, se := range sc.Employees {
		if se.Key == "" {
			return nil, fmt.Errorf("%w: employee key is required", ErrInvalidSeed)
		}
		if _, dup := byKey[se.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate employee key %q", ErrInvalidSeed, se.Key)
		}
		in := models.EmployeeInput{
			Name:   strings.TrimSpace(se.Name),
			Title:  strings.TrimSpace(se.Title),
			Salary: se.Salary,
		}
		if err := v.Validate(in); err != nil {
			return nil, fmt.Errorf("%w: employee %q: %v", ErrInvalidSeed, se.Key, err)
		}
		e := newEmployee(in)
		byKey[se.Key] = e
		chart.add(e)
	}

	for i, r := range sc.Reports {
		manager, ok := byKey[r.Manager]
		if !ok {
			return nil, fmt.Errorf("%w: report %d: unknown manager %q", ErrInvalidSeed, i, r.Manager)
		}
		sub, ok := byKey[r.Subordinate]
		if !ok {
			return nil, fmt.Errorf("%w: report %d: unknown subordinate %q", ErrInvalidSeed, i, r.Subordinate)
		}
		if err := chart.attach(manager, sub, maxEntries); err != nil {
			return nil, fmt.Errorf("%w: report %d: %w", ErrInvalidSeed, i, err)
		}
	}

	return chart, nil
}
