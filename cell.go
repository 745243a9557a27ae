package gridastar

const noParent int32 = -1

// cellRecord is the per-cell search state. Records live in one arena per
// Finder and refer to each other by index.
type cellRecord struct {
	position Position
	heapSlot int32

	// version is the generation that last wrote the fields below; 0 means
	// never visited. closed is only meaningful when version matches.
	version uint32
	closed  bool
	depth   int
	parent  int32

	gCost int
	hCost int
	fCost int
}

// compare orders records by fCost, then hCost.
func (c *cellRecord) compare(other *cellRecord) int {
	switch {
	case c.fCost > other.fCost:
		return 1
	case c.fCost < other.fCost:
		return -1
	case c.hCost > other.hCost:
		return 1
	case c.hCost < other.hCost:
		return -1
	}
	return 0
}
