package layout

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultCapacity is the path capacity used when a scenario sets none.
const DefaultCapacity = 64

// File is a collection of scenarios.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario is a grid plus one search to run on it.
type Scenario struct {
	Name     string      `yaml:"name"`
	Grid     []string    `yaml:"grid"`
	From     *Point      `yaml:"from"`
	To       *Point      `yaml:"to"`
	Capacity int         `yaml:"capacity"`
	Expect   Expectation `yaml:"expect"`
}

// Expectation is the result a scenario should produce. Nil fields are not
// checked.
type Expectation struct {
	Reached   bool   `yaml:"reached"`
	Length    *int   `yaml:"length"`
	MinLength *int   `yaml:"min_length"`
	Cost      *int   `yaml:"cost"`
	End       *Point `yaml:"end"`
}

// UnmarshalYAML decodes a point written as [row, column].
func (p *Point) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("line %d: point: %w", value.Line, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: point needs [row, column], got %d values", value.Line, len(pair))
	}
	p.Row, p.Column = pair[0], pair[1]
	return nil
}

// MarshalYAML encodes a point as [row, column].
func (p Point) MarshalYAML() (any, error) {
	return []int{p.Row, p.Column}, nil
}

// Load reads scenarios from a YAML file.
func Load(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario file: %w", err)
	}
	defer f.Close()
	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse scenario file %s: %w", path, err)
	}
	return file, nil
}

// Decode reads scenarios from r, rejecting unknown fields.
func Decode(r io.Reader) (*File, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	var file File
	if err := decoder.Decode(&file); err != nil {
		return nil, err
	}
	for i := range file.Scenarios {
		scenario := &file.Scenarios[i]
		if scenario.Capacity == 0 {
			scenario.Capacity = DefaultCapacity
		}
		if scenario.Name == "" {
			scenario.Name = fmt.Sprintf("scenario-%d", i)
		}
	}
	return &file, nil
}

// Build parses the scenario grid and resolves its endpoints, falling back
// to the S and G markers when from or to are not given.
func (s Scenario) Build() (*Grid, Point, Point, error) {
	grid, err := Parse(s.Grid)
	if err != nil {
		return nil, Point{}, Point{}, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	from, to := s.From, s.To
	if from == nil {
		from = grid.Start
	}
	if to == nil {
		to = grid.Goal
	}
	if from == nil || to == nil {
		return nil, Point{}, Point{}, fmt.Errorf("scenario %s: missing endpoints", s.Name)
	}
	return grid, *from, *to, nil
}
