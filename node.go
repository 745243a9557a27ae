package gridastar

// Node is what the finder needs to know about a grid cell.
// Implementations are owned by the caller and only read during a search.
type Node interface {
	Walkable() bool
	Position() Position
}
