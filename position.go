package gridastar

import "fmt"

// Position identifies a cell in the grid.
type Position struct {
	Row    uint8
	Column uint8
}

// NewPosition returns the position at row, column.
func NewPosition(row, column uint8) Position {
	return Position{Row: row, Column: column}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Column)
}
