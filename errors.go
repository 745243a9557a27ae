package gridastar

import "errors"

var (
	// ErrEmptyGrid is returned when a grid has zero rows or columns.
	ErrEmptyGrid = errors.New("grid has no cells")

	// ErrGridSizeMismatch is returned when the node slice does not hold
	// exactly rows*columns entries.
	ErrGridSizeMismatch = errors.New("node count does not match grid size")

	// ErrInvalidCapacity is returned for non-positive path capacities.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrIndexOutOfRange is returned by Path.At past the filled region.
	ErrIndexOutOfRange = errors.New("path index out of range")

	// ErrPathLocked is returned when a path is read while a search is
	// still writing it.
	ErrPathLocked = errors.New("path is locked")

	// ErrOutOfBounds is returned by Pool.Run for requests naming a
	// position outside the grid.
	ErrOutOfBounds = errors.New("position outside grid")
)
