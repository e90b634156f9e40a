package world

import "github.com/zyedidia/generic/queue"

// Distances returns the hop count from start to every cell, indexed by arena
// index. Unreachable cells are -1.
func (g *Grid) Distances(start *Cell) []int {
	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = -1
	}
	if start == nil {
		return dist
	}

	dist[start.Index] = 0
	q := queue.New[*Cell]()
	q.Enqueue(start)

	for !q.Empty() {
		current := q.Dequeue()
		for _, n := range g.Neighbors(current) {
			if dist[n.Index] >= 0 {
				continue
			}
			dist[n.Index] = dist[current.Index] + 1
			q.Enqueue(n)
		}
	}

	return dist
}

// Distance returns the hop count between two cells, or -1 if unreachable
func (g *Grid) Distance(from, to *Cell) int {
	if from == nil || to == nil {
		return -1
	}
	return g.Distances(from)[to.Index]
}

// Connected reports whether every cell is reachable from every other
func (g *Grid) Connected() bool {
	if len(g.cells) == 0 {
		return true
	}
	for _, d := range g.Distances(g.cells[0]) {
		if d < 0 {
			return false
		}
	}
	return true
}
