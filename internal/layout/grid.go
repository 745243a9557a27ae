// Package layout builds test and demo grids from ASCII art and YAML
// scenario files, and provides a reference Dijkstra search to check
// pathfinder output against.
package layout

import (
	"errors"
	"fmt"
	"strings"
)

// Grid symbols.
const (
	Open   = '.'
	Wall   = '#'
	Start  = 'S'
	Goal   = 'G'
	Marker = '*'
)

// ErrMalformedGrid is returned for empty, ragged or oversized grids and
// unknown symbols.
var ErrMalformedGrid = errors.New("malformed grid")

// Point is a row, column pair.
type Point struct {
	Row    int
	Column int
}

// Cell is one parsed grid square.
type Cell struct {
	Point
	Walkable bool
}

// Grid is a dense, row-major grid of cells.
type Grid struct {
	Rows    int
	Columns int
	Cells   []Cell
	// Start and Goal are set when the art contains S or G.
	Start, Goal *Point
}

// Parse reads one string per row. S, G and * cells are walkable.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, fmt.Errorf("parse grid: %w: no rows", ErrMalformedGrid)
	}
	if len(lines) > 255 || len(lines[0]) > 255 {
		return nil, fmt.Errorf("parse grid %dx%d: %w: over 255 cells per side", len(lines), len(lines[0]), ErrMalformedGrid)
	}
	grid := &Grid{
		Rows:    len(lines),
		Columns: len(lines[0]),
		Cells:   make([]Cell, 0, len(lines)*len(lines[0])),
	}
	for row, line := range lines {
		if len(line) != grid.Columns {
			return nil, fmt.Errorf("parse grid row %d: %w: width %d, want %d", row, ErrMalformedGrid, len(line), grid.Columns)
		}
		for column := 0; column < len(line); column++ {
			point := Point{Row: row, Column: column}
			switch line[column] {
			case Open, Marker:
			case Wall:
				grid.Cells = append(grid.Cells, Cell{Point: point})
				continue
			case Start:
				grid.Start = &point
			case Goal:
				grid.Goal = &point
			default:
				return nil, fmt.Errorf("parse grid %s: %w: symbol %q", fmtPoint(point), ErrMalformedGrid, line[column])
			}
			grid.Cells = append(grid.Cells, Cell{Point: point, Walkable: true})
		}
	}
	return grid, nil
}

// MustParse is Parse for fixed test fixtures.
func MustParse(lines ...string) *Grid {
	grid, err := Parse(lines)
	if err != nil {
		panic(err)
	}
	return grid
}

// Contains reports whether point lies inside the grid.
func (g *Grid) Contains(point Point) bool {
	return point.Row >= 0 && point.Row < g.Rows && point.Column >= 0 && point.Column < g.Columns
}

// Walkable reports whether the cell at point exists and is walkable.
func (g *Grid) Walkable(point Point) bool {
	if !g.Contains(point) {
		return false
	}
	return g.Cells[point.Row*g.Columns+point.Column].Walkable
}

// Render draws the grid with the given points marked.
func (g *Grid) Render(marked []Point) string {
	rows := make([][]byte, g.Rows)
	for row := range rows {
		rows[row] = make([]byte, g.Columns)
		for column := range rows[row] {
			if g.Cells[row*g.Columns+column].Walkable {
				rows[row][column] = Open
			} else {
				rows[row][column] = Wall
			}
		}
	}
	for _, point := range marked {
		rows[point.Row][point.Column] = Marker
	}
	var builder strings.Builder
	for _, row := range rows {
		builder.Write(row)
		builder.WriteByte('\n')
	}
	return builder.String()
}

func fmtPoint(p Point) string { return fmt.Sprintf("(%d,%d)", p.Row, p.Column) }
