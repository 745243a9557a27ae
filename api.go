package gridastar

import (
	"fmt"
	"log/slog"
	"math"
)

// Step costs. A diagonal step costs 14, an approximation of 10*sqrt(2).
const (
	StraightCost = 10
	DiagonalCost = 14
)

// Result summarises one Find call.
type Result struct {
	// Reached is true when the path ends at the requested target.
	Reached bool
	// Cost is the accumulated step cost to End.
	Cost int
	// Expanded counts the cells closed during the search.
	Expanded int
	// End is where the path stops. It equals the start when the path is empty.
	End Position
}

// Options defines parameters for a Finder.
type Options struct {
	Logger *slog.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithLogger sets the logger used for construction and maintenance events.
// Nothing is logged while a search runs.
func WithLogger(logger *slog.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

// Finder runs A* searches over a fixed rectangular grid of nodes.
//
// All search state is allocated by NewFinder and reused, so Find does not
// allocate. A Finder must not be used by more than one goroutine at a time;
// see Pool for running searches in parallel.
type Finder[NodeType Node] struct {
	rows    int
	columns int
	nodes   []NodeType
	cells   []cellRecord
	openSet *openSet

	generation uint32
	logger     *slog.Logger
}

// NewFinder creates a finder over nodes, indexed by row*columns+column.
func NewFinder[NodeType Node](rows, columns uint8, nodes []NodeType, options ...Option) (*Finder[NodeType], error) {
	finderOptions := Options{}
	for _, option := range options {
		option(&finderOptions)
	}
	if finderOptions.Logger == nil {
		finderOptions.Logger = slog.New(slog.DiscardHandler)
	}

	if rows == 0 || columns == 0 {
		return nil, fmt.Errorf("new finder %dx%d: %w", rows, columns, ErrEmptyGrid)
	}
	size := int(rows) * int(columns)
	if len(nodes) != size {
		return nil, fmt.Errorf("new finder %dx%d with %d nodes: %w", rows, columns, len(nodes), ErrGridSizeMismatch)
	}

	cells := make([]cellRecord, size)
	for row := 0; row < int(rows); row++ {
		for column := 0; column < int(columns); column++ {
			cells[row*int(columns)+column] = cellRecord{
				position: Position{Row: uint8(row), Column: uint8(column)},
				parent:   noParent,
			}
		}
	}

	finder := &Finder[NodeType]{
		rows:    int(rows),
		columns: int(columns),
		nodes:   nodes,
		cells:   cells,
		// A cell enters the open set at most once per generation.
		openSet: newOpenSet(cells, size),
		logger:  finderOptions.Logger,
	}
	finder.logger.Debug("finder created",
		slog.Int("rows", finder.rows),
		slog.Int("columns", finder.columns))
	return finder, nil
}

// Rows returns the grid height.
func (f *Finder[NodeType]) Rows() int { return f.rows }

// Columns returns the grid width.
func (f *Finder[NodeType]) Columns() int { return f.columns }

// Node returns the node at position.
func (f *Finder[NodeType]) Node(position Position) NodeType {
	return f.nodes[f.index(position)]
}

// FindNodes is Find using the positions of the given nodes.
func (f *Finder[NodeType]) FindNodes(from, to NodeType, path *Path[NodeType]) Result {
	return f.Find(from.Position(), to.Position(), path)
}

// Find searches for a path from one position to another and writes it into
// path, which is cleared first.
//
// The path excludes from and, when the target is reachable within
// path.Capacity() steps, ends at to. Otherwise it ends at the visited cell
// closest to the target by Distance. If from is not walkable the path is
// left empty. Both positions must lie inside the grid.
func (f *Finder[NodeType]) Find(from, to Position, path *Path[NodeType]) Result {
	path.Clear()

	startIndex := f.index(from)
	targetIndex := f.index(to)
	if !f.nodes[startIndex].Walkable() {
		return Result{End: from}
	}

	path.lock()
	f.nextGeneration()
	f.openSet.reset()

	start := &f.cells[startIndex]
	start.version = f.generation
	start.closed = false
	start.parent = noParent
	start.depth = 1
	start.gCost = 0
	start.hCost = Distance(from, to)
	start.fCost = 0
	f.openSet.add(startIndex)

	closestToTarget := startIndex
	reached := false
	expanded := 0

	for f.openSet.Len() > 0 {
		currentIndex := f.openSet.removeMin()
		current := &f.cells[currentIndex]
		current.closed = true
		expanded++

		if currentIndex == targetIndex {
			reached = true
			break
		}
		if current.depth > path.Capacity() {
			break
		}
		f.expand(currentIndex, targetIndex, &closestToTarget)
	}

	endIndex := closestToTarget
	if reached {
		endIndex = targetIndex
	}
	f.buildPath(endIndex, path)
	path.unlock()

	end := &f.cells[endIndex]
	return Result{
		Reached:  reached,
		Cost:     end.gCost,
		Expanded: expanded,
		End:      end.position,
	}
}

// expand relaxes the up-to-eight neighbours of the cell at currentIndex.
func (f *Finder[NodeType]) expand(currentIndex, targetIndex int32, closestToTarget *int32) {
	current := &f.cells[currentIndex]
	target := f.cells[targetIndex].position
	row := int(current.position.Row)
	column := int(current.position.Column)

	for deltaRow := -1; deltaRow <= 1; deltaRow++ {
		checkRow := row + deltaRow
		if checkRow < 0 || checkRow >= f.rows {
			continue
		}
		for deltaColumn := -1; deltaColumn <= 1; deltaColumn++ {
			if deltaRow == 0 && deltaColumn == 0 {
				continue
			}
			checkColumn := column + deltaColumn
			if checkColumn < 0 || checkColumn >= f.columns {
				continue
			}

			neighbourIndex := int32(checkRow*f.columns + checkColumn)
			if !f.nodes[neighbourIndex].Walkable() {
				continue
			}
			neighbour := &f.cells[neighbourIndex]
			stale := neighbour.version != f.generation
			if !stale && neighbour.closed {
				continue
			}

			tentative := current.gCost + StraightCost
			if deltaRow != 0 && deltaColumn != 0 {
				tentative = current.gCost + DiagonalCost
			}
			if !stale && tentative >= neighbour.gCost {
				continue
			}

			neighbour.gCost = tentative
			neighbour.hCost = Distance(neighbour.position, target)
			neighbour.fCost = neighbour.gCost + neighbour.hCost
			neighbour.parent = currentIndex
			neighbour.depth = current.depth + 1

			if neighbour.hCost < f.cells[*closestToTarget].hCost {
				*closestToTarget = neighbourIndex
			}

			if stale {
				neighbour.version = f.generation
				neighbour.closed = false
				f.openSet.add(neighbourIndex)
			} else {
				f.openSet.updateKey(neighbourIndex)
			}
		}
	}
}

// buildPath appends the nodes from end back to, but excluding, the start.
func (f *Finder[NodeType]) buildPath(endIndex int32, path *Path[NodeType]) {
	for index := endIndex; f.cells[index].depth != 1; index = f.cells[index].parent {
		if !path.Add(f.nodes[index]) {
			panic(fmt.Sprintf("gridastar: path capacity %d exceeded while rebuilding path to %s",
				path.Capacity(), f.cells[endIndex].position))
		}
	}
}

// nextGeneration advances the stamp that marks cell state as current. When
// the counter is exhausted every cell is marked unvisited and counting
// restarts, so old stamps never collide with new ones.
func (f *Finder[NodeType]) nextGeneration() {
	if f.generation < math.MaxUint32 {
		f.generation++
		return
	}
	for i := range f.cells {
		f.cells[i].version = 0
	}
	f.generation = 1
	f.logger.Debug("search generation wrapped", slog.Int("cells", len(f.cells)))
}

func (f *Finder[NodeType]) contains(position Position) bool {
	return int(position.Row) < f.rows && int(position.Column) < f.columns
}

func (f *Finder[NodeType]) index(position Position) int32 {
	if !f.contains(position) {
		panic(fmt.Sprintf("gridastar: position %s outside %dx%d grid", position, f.rows, f.columns))
	}
	return int32(int(position.Row)*f.columns + int(position.Column))
}

// Distance is the octile distance between two positions in step-cost units.
// It is an exact lower bound only while every walkable step costs
// StraightCost or DiagonalCost.
func Distance(a, b Position) int {
	deltaRow := int(a.Row) - int(b.Row)
	if deltaRow < 0 {
		deltaRow = -deltaRow
	}
	deltaColumn := int(a.Column) - int(b.Column)
	if deltaColumn < 0 {
		deltaColumn = -deltaColumn
	}
	if deltaRow > deltaColumn {
		return DiagonalCost*deltaColumn + StraightCost*(deltaRow-deltaColumn)
	}
	return DiagonalCost*deltaRow + StraightCost*(deltaColumn-deltaRow)
}
