package layout

import "container/heap"

// Step costs of the reference search.
const (
	straightCost = 10
	diagonalCost = 14
)

// Unreachable marks cells ShortestCosts never reached.
const Unreachable = -1

// ShortestCosts runs Dijkstra from start over 8-connected walkable cells and
// returns the cost to every cell, row-major, along with each cell's
// predecessor index (-1 for the start and unreached cells).
func ShortestCosts(grid *Grid, start Point) (costs []int, cameFrom []int) {
	size := grid.Rows * grid.Columns
	costs = make([]int, size)
	cameFrom = make([]int, size)
	for i := range costs {
		costs[i] = Unreachable
		cameFrom[i] = -1
	}
	if !grid.Walkable(start) {
		return costs, cameFrom
	}

	startIndex := start.Row*grid.Columns + start.Column
	costs[startIndex] = 0
	queue := &costQueue{{index: startIndex}}
	done := make([]bool, size)

	for queue.Len() > 0 {
		item := heap.Pop(queue).(costItem)
		if done[item.index] {
			continue
		}
		done[item.index] = true
		row, column := item.index/grid.Columns, item.index%grid.Columns
		for deltaRow := -1; deltaRow <= 1; deltaRow++ {
			for deltaColumn := -1; deltaColumn <= 1; deltaColumn++ {
				if deltaRow == 0 && deltaColumn == 0 {
					continue
				}
				next := Point{Row: row + deltaRow, Column: column + deltaColumn}
				if !grid.Walkable(next) {
					continue
				}
				step := straightCost
				if deltaRow != 0 && deltaColumn != 0 {
					step = diagonalCost
				}
				nextIndex := next.Row*grid.Columns + next.Column
				cost := item.cost + step
				if costs[nextIndex] == Unreachable || cost < costs[nextIndex] {
					costs[nextIndex] = cost
					cameFrom[nextIndex] = item.index
					heap.Push(queue, costItem{index: nextIndex, cost: cost})
				}
			}
		}
	}
	return costs, cameFrom
}

// ReconstructPath rebuilds the route to goal from the cameFrom indices,
// excluding the start, in start to goal order.
func ReconstructPath(grid *Grid, cameFrom []int, goal Point) []Point {
	var path []Point
	for current := goal.Row*grid.Columns + goal.Column; cameFrom[current] != -1; current = cameFrom[current] {
		path = append(path, Point{Row: current / grid.Columns, Column: current % grid.Columns})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

type costItem struct {
	index int
	cost  int
}

type costQueue []costItem

func (queue costQueue) Len() int           { return len(queue) }
func (queue costQueue) Less(i, j int) bool { return queue[i].cost < queue[j].cost }
func (queue costQueue) Swap(i, j int)      { queue[i], queue[j] = queue[j], queue[i] }

func (queue *costQueue) Push(x any) { *queue = append(*queue, x.(costItem)) }

func (queue *costQueue) Pop() any {
	old := *queue
	n := len(old)
	item := old[n-1]
	*queue = old[:n-1]
	return item
}
