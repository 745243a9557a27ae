package gridastar

import "fmt"

// openSet is a fixed-capacity binary min-heap of cell indices ordered by
// cellRecord.compare. It never grows; every cell's heapSlot is kept in sync
// with its position in items.
type openSet struct {
	cells []cellRecord
	items []int32
	count int
}

func newOpenSet(cells []cellRecord, capacity int) *openSet {
	return &openSet{cells: cells, items: make([]int32, capacity)}
}

func (queue *openSet) Len() int { return queue.count }

func (queue *openSet) less(i, j int) bool {
	return queue.cells[queue.items[i]].compare(&queue.cells[queue.items[j]]) < 0
}

func (queue *openSet) swap(i, j int) {
	queue.items[i], queue.items[j] = queue.items[j], queue.items[i]
	queue.cells[queue.items[i]].heapSlot = int32(i)
	queue.cells[queue.items[j]].heapSlot = int32(j)
}

// add inserts the cell at index. The queue must not be full.
func (queue *openSet) add(index int32) {
	if queue.count == len(queue.items) {
		panic(fmt.Sprintf("gridastar: open set overflow at capacity %d", len(queue.items)))
	}
	slot := queue.count
	queue.items[slot] = index
	queue.cells[index].heapSlot = int32(slot)
	queue.count++
	queue.up(slot)
}

// removeMin pops the lowest-cost cell. The queue must not be empty.
func (queue *openSet) removeMin() int32 {
	first := queue.items[0]
	queue.count--
	if queue.count > 0 {
		queue.items[0] = queue.items[queue.count]
		queue.cells[queue.items[0]].heapSlot = 0
		queue.down(0)
	}
	return first
}

// updateKey restores heap order after the cell's cost decreased.
// Increases are not supported.
func (queue *openSet) updateKey(index int32) {
	queue.up(int(queue.cells[index].heapSlot))
}

func (queue *openSet) reset() { queue.count = 0 }

func (queue *openSet) up(slot int) {
	for slot > 0 {
		parent := (slot - 1) / 2
		if !queue.less(slot, parent) {
			return
		}
		queue.swap(slot, parent)
		slot = parent
	}
}

func (queue *openSet) down(slot int) {
	for {
		left := slot*2 + 1
		if left >= queue.count {
			return
		}
		child := left
		if right := left + 1; right < queue.count && queue.less(right, left) {
			child = right
		}
		if !queue.less(child, slot) {
			return
		}
		queue.swap(slot, child)
		slot = child
	}
}
