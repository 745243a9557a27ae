package layout

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	grid, err := Parse([]string{
		"S.#",
		"*.G",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, grid.Rows)
	assert.Equal(t, 3, grid.Columns)
	require.Len(t, grid.Cells, 6)
	assert.Equal(t, &Point{Row: 0, Column: 0}, grid.Start)
	assert.Equal(t, &Point{Row: 1, Column: 2}, grid.Goal)
	assert.False(t, grid.Walkable(Point{Row: 0, Column: 2}))
	assert.True(t, grid.Walkable(Point{Row: 1, Column: 0}))
	assert.False(t, grid.Walkable(Point{Row: 2, Column: 0}))
	assert.False(t, grid.Walkable(Point{Row: 0, Column: -1}))
	assert.True(t, grid.Contains(Point{Row: 1, Column: 2}))
	assert.False(t, grid.Contains(Point{Row: 1, Column: 3}))
	assert.False(t, grid.Contains(Point{Row: -1, Column: 0}))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "no rows", lines: nil},
		{name: "empty row", lines: []string{""}},
		{name: "ragged", lines: []string{"...", ".."}},
		{name: "unknown symbol", lines: []string{"..x"}},
		{name: "too wide", lines: []string{strings.Repeat(".", 256)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.lines)
			assert.ErrorIs(t, err, ErrMalformedGrid)
		})
	}
}

func TestRender(t *testing.T) {
	grid := MustParse(
		"S.#",
		"..G",
	)
	assert.Equal(t, "*.#\n.**\n", grid.Render([]Point{{0, 0}, {1, 1}, {1, 2}}))
}

func TestDecode(t *testing.T) {
	file, err := Decode(strings.NewReader(`
scenarios:
  - name: corridor
    grid: ["S..G"]
    expect: {reached: true, length: 3, cost: 30}
  - grid: ["..", ".."]
    from: [0, 0]
    to: [1, 1]
    capacity: 2
`))
	require.NoError(t, err)
	require.Len(t, file.Scenarios, 2)

	corridor := file.Scenarios[0]
	assert.Equal(t, DefaultCapacity, corridor.Capacity)
	assert.True(t, corridor.Expect.Reached)
	require.NotNil(t, corridor.Expect.Length)
	assert.Equal(t, 3, *corridor.Expect.Length)
	assert.Nil(t, corridor.Expect.End)

	grid, from, to, err := corridor.Build()
	require.NoError(t, err)
	assert.Equal(t, 4, grid.Columns)
	assert.Equal(t, Point{Row: 0, Column: 0}, from)
	assert.Equal(t, Point{Row: 0, Column: 3}, to)

	second := file.Scenarios[1]
	assert.Equal(t, "scenario-1", second.Name)
	assert.Equal(t, 2, second.Capacity)
	assert.Equal(t, &Point{Row: 1, Column: 1}, second.To)
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name     string
		document string
	}{
		{name: "unknown field", document: "scenarios:\n  - name: a\n    walls: []\n"},
		{name: "short point", document: "scenarios:\n  - from: [1]\n"},
		{name: "point not a list", document: "scenarios:\n  - from: here\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.document))
			assert.Error(t, err)
		})
	}
}

func TestBuild_MissingEndpoints(t *testing.T) {
	_, _, _, err := Scenario{Name: "bare", Grid: []string{"..."}}.Build()
	assert.ErrorContains(t, err, "missing endpoints")

	_, _, _, err = Scenario{Name: "broken", Grid: []string{"?"}}.Build()
	assert.ErrorIs(t, err, ErrMalformedGrid)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	out, err := yaml.Marshal(File{Scenarios: []Scenario{{
		Name: "written",
		Grid: []string{"S.", ".G"},
		From: &Point{Row: 0, Column: 0},
	}}})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, out, 0o644))

	file, err := Load(path)
	require.NoError(t, err)
	require.Len(t, file.Scenarios, 1)
	assert.Equal(t, "written", file.Scenarios[0].Name)
	assert.Equal(t, &Point{Row: 0, Column: 0}, file.Scenarios[0].From)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestShortestCosts(t *testing.T) {
	grid := MustParse(
		"S#.",
		".#.",
		"..G",
	)
	costs, cameFrom := ShortestCosts(grid, *grid.Start)

	assert.Equal(t, 0, costs[0])
	assert.Equal(t, Unreachable, costs[1])
	assert.Equal(t, 10, costs[3])
	assert.Equal(t, 24, costs[7])
	assert.Equal(t, 34, costs[8])
	assert.Equal(t, 38, costs[5])

	path := ReconstructPath(grid, cameFrom, *grid.Goal)
	assert.Equal(t, []Point{{1, 0}, {2, 1}, {2, 2}}, path)

	blocked, _ := ShortestCosts(grid, Point{Row: 0, Column: 1})
	for _, cost := range blocked {
		assert.Equal(t, Unreachable, cost)
	}
}
