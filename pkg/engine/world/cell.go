// Package world provides generic 2D grid-graph primitives: cells laid out on
// a grid, the candidate edges geometry allows between them, and the edges
// actually carved into a dungeon.
package world

import "fmt"

// CellType tells caves from tunnels. It is derived from a cell's degree once
// the graph has been carved.
type CellType int

// Cell types
const (
	Cave CellType = iota
	Tunnel
)

// String returns the string representation of a cell type
func (t CellType) String() string {
	switch t {
	case Cave:
		return "Cave"
	case Tunnel:
		return "Tunnel"
	default:
		return "Unknown"
	}
}

// Cell represents a single location in the grid.
// Neighbors are stored as arena indexes into the owning Grid, never as
// pointers, so the graph has no ownership cycles.
type Cell struct {
	Name  string
	Index int
	Row   int
	Col   int
	Type  CellType

	potential map[string]Direction
	actual    map[Direction]int

	// GameData holds game-specific contents.
	// Games should cast this to their specific type.
	GameData any
}

// CellName returns the canonical name for the cell at a row-major index.
func CellName(index int) string {
	return fmt.Sprintf("Cell-%02d", index+1)
}

// NewCell creates a new unconnected cell
func NewCell(index, row, col int) *Cell {
	return &Cell{
		Name:      CellName(index),
		Index:     index,
		Row:       row,
		Col:       col,
		Type:      Cave,
		potential: make(map[string]Direction),
		actual:    make(map[Direction]int),
	}
}

// Degree returns the number of realized edges
func (c *Cell) Degree() int {
	return len(c.actual)
}

// IsCave returns true if the cell is a cave
func (c *Cell) IsCave() bool {
	return c.Type == Cave
}

// IsTunnel returns true if the cell is a tunnel
func (c *Cell) IsTunnel() bool {
	return c.Type == Tunnel
}

// HasExit returns true if an edge leaves the cell in dir
func (c *Cell) HasExit(dir Direction) bool {
	_, ok := c.actual[dir]
	return ok
}

// Exits returns the directions of realized edges, in North, East, South, West order
func (c *Cell) Exits() []Direction {
	exits := make([]Direction, 0, len(c.actual))
	for _, dir := range AllDirections() {
		if c.HasExit(dir) {
			exits = append(exits, dir)
		}
	}
	return exits
}

// PotentialNeighbors returns a copy of the candidate neighbors keyed by name
func (c *Cell) PotentialNeighbors() map[string]Direction {
	out := make(map[string]Direction, len(c.potential))
	for name, dir := range c.potential {
		out[name] = dir
	}
	return out
}

func (c *Cell) addPotential(name string, dir Direction) {
	c.potential[name] = dir
}

func (c *Cell) neighborIndex(dir Direction) (int, bool) {
	idx, ok := c.actual[dir]
	return idx, ok
}

func (c *Cell) String() string {
	return fmt.Sprintf("%s(%d,%d)", c.Name, c.Row, c.Col)
}
