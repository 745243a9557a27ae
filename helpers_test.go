package gridastar

import (
	"testing"

	"github.com/pdrpinto/gridastar/internal/layout"
	"github.com/stretchr/testify/require"
)

type tile struct {
	position Position
	walkable bool
}

func (t tile) Walkable() bool     { return t.walkable }
func (t tile) Position() Position { return t.position }

func tilesOf(grid *layout.Grid) []tile {
	tiles := make([]tile, len(grid.Cells))
	for i, cell := range grid.Cells {
		tiles[i] = tile{position: toPosition(cell.Point), walkable: cell.Walkable}
	}
	return tiles
}

func newTestFinder(t testing.TB, grid *layout.Grid) *Finder[tile] {
	t.Helper()
	finder, err := NewFinder(uint8(grid.Rows), uint8(grid.Columns), tilesOf(grid))
	require.NoError(t, err)
	return finder
}

func toPosition(point layout.Point) Position {
	return Position{Row: uint8(point.Row), Column: uint8(point.Column)}
}

func toPoint(position Position) layout.Point {
	return layout.Point{Row: int(position.Row), Column: int(position.Column)}
}

func pointsOf(path *Path[tile]) []layout.Point {
	points := make([]layout.Point, 0, path.Len())
	for _, node := range path.All() {
		points = append(points, toPoint(node.Position()))
	}
	return points
}

func stepCost(a, b Position) int {
	if a.Row != b.Row && a.Column != b.Column {
		return DiagonalCost
	}
	return StraightCost
}

// requireWalk checks that path is a chain of walkable 8-neighbour steps
// starting next to from, and returns its total cost.
func requireWalk(t testing.TB, grid *layout.Grid, from Position, path *Path[tile]) int {
	t.Helper()
	cost := 0
	previous := from
	for i, node := range path.All() {
		position := node.Position()
		require.True(t, grid.Walkable(toPoint(position)), "step %d at %s is a wall", i, position)
		deltaRow := int(position.Row) - int(previous.Row)
		deltaColumn := int(position.Column) - int(previous.Column)
		require.True(t, deltaRow >= -1 && deltaRow <= 1 && deltaColumn >= -1 && deltaColumn <= 1 && (deltaRow != 0 || deltaColumn != 0),
			"step %d from %s to %s is not a neighbour move", i, previous, position)
		cost += stepCost(previous, position)
		previous = position
	}
	return cost
}
