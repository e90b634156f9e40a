package world

import (
	"errors"
	"fmt"
)

// ErrNotAdjacent is returned by Connect when two cells do not share a
// candidate edge.
var ErrNotAdjacent = errors.New("world: cells are not potential neighbors")

// Edge is a candidate connection between two cells. Dir is the direction
// from A to B and is always East or South.
type Edge struct {
	A   int
	B   int
	Dir Direction
}

// Grid represents the dungeon map. Cells live in a row-major arena and are
// addressed by index or by name.
type Grid struct {
	cells  []*Cell
	byName map[string]*Cell
	rows   int
	cols   int
	wrap   bool

	candidates []Edge
	edges      int

	startCell *Cell
	exitCell  *Cell
}

// NewGrid creates a rows x cols grid with no carved edges. The candidate edge
// list is built in generation order: east-west pairs row by row (the wrap
// pair last in each row), then north-south pairs row by row (the last row
// pairing with the first when wrapping).
func NewGrid(rows, cols int, wrap bool) *Grid {
	g := &Grid{
		cells:  make([]*Cell, 0, rows*cols),
		byName: make(map[string]*Cell, rows*cols),
		rows:   rows,
		cols:   cols,
		wrap:   wrap,
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			c := NewCell(len(g.cells), row, col)
			g.cells = append(g.cells, c)
			g.byName[c.Name] = c
		}
	}

	for _, dir := range []Direction{East, South} {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				if next, ok := g.step(row, col, dir); ok {
					g.addCandidate(g.index(row, col), next, dir)
				}
			}
		}
	}

	return g
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// step returns the index of the cell one move from (row, col) in dir. Moves
// off the edge wrap around when the grid wraps and fail otherwise.
func (g *Grid) step(row, col int, dir Direction) (int, bool) {
	dr, dc := dir.Delta()
	r, c := row+dr, col+dc
	if r < 0 || r >= g.rows || c < 0 || c >= g.cols {
		if !g.wrap {
			return 0, false
		}
		r, c = (r+g.rows)%g.rows, (c+g.cols)%g.cols
	}
	return g.index(r, c), true
}

func (g *Grid) addCandidate(a, b int, dir Direction) {
	g.candidates = append(g.candidates, Edge{A: a, B: b, Dir: dir})
	g.cells[a].addPotential(g.cells[b].Name, dir)
	g.cells[b].addPotential(g.cells[a].Name, dir.Opposite())
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Wrap reports whether opposite borders are potential neighbors
func (g *Grid) Wrap() bool {
	return g.wrap
}

// Len returns the number of cells
func (g *Grid) Len() int {
	return len(g.cells)
}

// EdgeCount returns the number of carved edges
func (g *Grid) EdgeCount() int {
	return g.edges
}

// StartCell returns the starting cell
func (g *Grid) StartCell() *Cell {
	return g.startCell
}

// ExitCell returns the exit cell
func (g *Grid) ExitCell() *Cell {
	return g.exitCell
}

// SetStartCell sets the starting cell
func (g *Grid) SetStartCell(c *Cell) {
	g.startCell = c
}

// SetExitCell sets the exit cell
func (g *Grid) SetExitCell(c *Cell) {
	g.exitCell = c
}

// IsValidPosition checks if a row/col position is within grid bounds
func (g *Grid) IsValidPosition(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// GetCell returns the cell at the given position, or nil if out of bounds
func (g *Grid) GetCell(row, col int) *Cell {
	if !g.IsValidPosition(row, col) {
		return nil
	}
	return g.cells[g.index(row, col)]
}

// CellAt returns the cell at an arena index, or nil if out of range
func (g *Grid) CellAt(index int) *Cell {
	if index < 0 || index >= len(g.cells) {
		return nil
	}
	return g.cells[index]
}

// GetCellByName returns the named cell, or nil if unknown
func (g *Grid) GetCellByName(name string) *Cell {
	return g.byName[name]
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(row, col int, cell *Cell)) {
	for _, c := range g.cells {
		fn(c.Row, c.Col, c)
	}
}

// Caves returns every cave in row-major order
func (g *Grid) Caves() []*Cell {
	var caves []*Cell
	for _, c := range g.cells {
		if c.IsCave() {
			caves = append(caves, c)
		}
	}
	return caves
}

// CandidateEdges returns a copy of the candidate edge list in generation order
func (g *Grid) CandidateEdges() []Edge {
	out := make([]Edge, len(g.candidates))
	copy(out, g.candidates)
	return out
}

// Connect carves the edge between two potential neighbors, on both sides.
// Connecting an already connected pair is a no-op.
func (g *Grid) Connect(a, b *Cell) error {
	if a == nil || b == nil {
		return fmt.Errorf("%w: nil cell", ErrNotAdjacent)
	}
	dir, ok := a.potential[b.Name]
	if !ok {
		return fmt.Errorf("%w: %s and %s", ErrNotAdjacent, a.Name, b.Name)
	}
	if idx, ok := a.actual[dir]; ok && idx == b.Index {
		return nil
	}
	a.actual[dir] = b.Index
	b.actual[dir.Opposite()] = a.Index
	g.edges++
	return nil
}

// ConnectEdge carves a candidate edge
func (g *Grid) ConnectEdge(e Edge) error {
	return g.Connect(g.CellAt(e.A), g.CellAt(e.B))
}

// Neighbor returns the cell reached by leaving c in dir, or nil if there is no
// carved edge that way.
func (g *Grid) Neighbor(c *Cell, dir Direction) *Cell {
	if c == nil {
		return nil
	}
	idx, ok := c.neighborIndex(dir)
	if !ok {
		return nil
	}
	return g.cells[idx]
}

// Neighbors returns the carved neighbors of c in North, East, South, West order
func (g *Grid) Neighbors(c *Cell) []*Cell {
	var out []*Cell
	for _, dir := range c.Exits() {
		out = append(out, g.Neighbor(c, dir))
	}
	return out
}
