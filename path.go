package gridastar

import (
	"fmt"
	"iter"
)

// Path is a fixed-capacity, reusable sequence of nodes filled by Finder.Find.
//
// After a search the path reads in start to target order, excluding the
// start node. It doubles as a restartable forward iterator:
//
//	for path.IsValid() {
//		node := path.Current()
//		...
//		path.MoveNext()
//	}
//
// A Path is not safe for concurrent use, and must not be shared by searches
// running at the same time.
type Path[NodeType Node] struct {
	nodes  []NodeType
	count  int
	cursor int
	locked bool
}

// NewPath returns an empty path holding at most capacity nodes. The
// capacity also caps how deep a search using this path may go.
func NewPath[NodeType Node](capacity int) *Path[NodeType] {
	if capacity <= 0 {
		panic(fmt.Errorf("gridastar: new path of capacity %d: %w", capacity, ErrInvalidCapacity))
	}
	return &Path[NodeType]{nodes: make([]NodeType, capacity)}
}

// Capacity returns the maximum number of nodes the path can hold.
func (p *Path[NodeType]) Capacity() int { return len(p.nodes) }

// Len returns the number of nodes currently held.
func (p *Path[NodeType]) Len() int { return p.count }

// IsReady reports whether the path may be read.
func (p *Path[NodeType]) IsReady() bool { return !p.locked }

// IsValid reports whether the cursor points at a node.
func (p *Path[NodeType]) IsValid() bool { return !p.locked && p.cursor < p.count }

// Clear empties the path and rewinds the cursor.
func (p *Path[NodeType]) Clear() {
	var zero NodeType
	for i := 0; i < p.count; i++ {
		p.nodes[i] = zero
	}
	p.count = 0
	p.cursor = 0
}

// Add appends node, returning false without modifying the path when it is
// already full.
func (p *Path[NodeType]) Add(node NodeType) bool {
	if p.count == len(p.nodes) {
		return false
	}
	p.nodes[p.count] = node
	p.count++
	return true
}

// MoveNext advances the cursor, returning false once it is past the end.
func (p *Path[NodeType]) MoveNext() bool {
	if p.cursor < p.count {
		p.cursor++
		return true
	}
	return false
}

// Reset rewinds the cursor to the first node.
func (p *Path[NodeType]) Reset() { p.cursor = 0 }

// Current returns the node under the cursor, or the zero value when the
// cursor is exhausted or the path is locked.
func (p *Path[NodeType]) Current() NodeType {
	if !p.IsValid() {
		var zero NodeType
		return zero
	}
	return p.nodes[p.cursor]
}

// At returns the node at index.
func (p *Path[NodeType]) At(index int) (NodeType, error) {
	var zero NodeType
	if p.locked {
		return zero, ErrPathLocked
	}
	if index < 0 || index >= p.count {
		return zero, fmt.Errorf("index %d of %d: %w", index, p.count, ErrIndexOutOfRange)
	}
	return p.nodes[index], nil
}

// Last returns the final node, which is the node the search ended at.
func (p *Path[NodeType]) Last() (NodeType, bool) {
	if p.locked || p.count == 0 {
		var zero NodeType
		return zero, false
	}
	return p.nodes[p.count-1], true
}

// All yields the nodes in order. It yields nothing while the path is locked.
func (p *Path[NodeType]) All() iter.Seq2[int, NodeType] {
	return func(yield func(int, NodeType) bool) {
		if p.locked {
			return
		}
		for i := 0; i < p.count; i++ {
			if !yield(i, p.nodes[i]) {
				return
			}
		}
	}
}

func (p *Path[NodeType]) lock() { p.locked = true }

// unlock reverses the filled region so the path reads start to target.
func (p *Path[NodeType]) unlock() {
	for i, j := 0, p.count-1; i < j; i, j = i+1, j-1 {
		p.nodes[i], p.nodes[j] = p.nodes[j], p.nodes[i]
	}
	p.locked = false
	p.Reset()
}
