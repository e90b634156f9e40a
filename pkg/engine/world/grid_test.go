package world

import (
	"errors"
	"testing"
)

// classify marks degree-2 cells as tunnels, the rest as caves.
func classify(g *Grid) {
	g.ForEachCell(func(_, _ int, c *Cell) {
		if c.Degree() == 2 {
			c.Type = Tunnel
		} else {
			c.Type = Cave
		}
	})
}

func mustConnect(t *testing.T, g *Grid, r1, c1, r2, c2 int) {
	t.Helper()
	if err := g.Connect(g.GetCell(r1, c1), g.GetCell(r2, c2)); err != nil {
		t.Fatalf("Connect((%d,%d), (%d,%d)) error: %v", r1, c1, r2, c2, err)
	}
}

func TestNewGrid_NamesAreRowMajor(t *testing.T) {
	g := NewGrid(4, 5, false)
	if g.Len() != 20 {
		t.Fatalf("Len() = %d, want 20", g.Len())
	}
	tests := []struct {
		row, col int
		want     string
	}{
		{0, 0, "Cell-01"},
		{0, 4, "Cell-05"},
		{1, 0, "Cell-06"},
		{3, 4, "Cell-20"},
	}
	for _, tt := range tests {
		c := g.GetCell(tt.row, tt.col)
		if c.Name != tt.want {
			t.Errorf("GetCell(%d, %d).Name = %q, want %q", tt.row, tt.col, c.Name, tt.want)
		}
		if g.GetCellByName(tt.want) != c {
			t.Errorf("GetCellByName(%q) did not return the same cell", tt.want)
		}
	}
	if g.GetCell(4, 0) != nil || g.GetCell(0, -1) != nil {
		t.Error("GetCell out of bounds should return nil")
	}
}

func TestNewGrid_CandidateEdges(t *testing.T) {
	tests := []struct {
		name string
		wrap bool
		want int
	}{
		{"non-wrapping", false, 24},
		{"wrapping", true, 32},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(4, 4, tt.wrap)
			edges := g.CandidateEdges()
			if len(edges) != tt.want {
				t.Fatalf("len(CandidateEdges()) = %d, want %d", len(edges), tt.want)
			}
			if edges[0] != (Edge{A: 0, B: 1, Dir: East}) {
				t.Errorf("first candidate = %+v, want {0 1 East}", edges[0])
			}
			if g.EdgeCount() != 0 {
				t.Errorf("EdgeCount() = %d before carving, want 0", g.EdgeCount())
			}
		})
	}
}

func TestNewGrid_WrapCandidateOrder(t *testing.T) {
	g := NewGrid(4, 4, true)
	edges := g.CandidateEdges()
	// Each row contributes three inner pairs followed by its wrap pair.
	if edges[3] != (Edge{A: 3, B: 0, Dir: East}) {
		t.Errorf("edges[3] = %+v, want wrap pair {3 0 East}", edges[3])
	}
	last := edges[len(edges)-1]
	if last != (Edge{A: 15, B: 3, Dir: South}) {
		t.Errorf("last candidate = %+v, want {15 3 South}", last)
	}
	corner := g.GetCell(0, 0)
	if got := corner.PotentialNeighbors()["Cell-04"]; got != West {
		t.Errorf("Cell-01 potential direction to Cell-04 = %v, want West", got)
	}
	if got := corner.PotentialNeighbors()["Cell-13"]; got != North {
		t.Errorf("Cell-01 potential direction to Cell-13 = %v, want North", got)
	}
}

func TestConnect_IsBidirectional(t *testing.T) {
	g := NewGrid(4, 4, false)
	a, b := g.GetCell(1, 1), g.GetCell(1, 2)
	if err := g.Connect(a, b); err != nil {
		t.Fatalf("Connect error: %v", err)
	}
	if g.Neighbor(a, East) != b {
		t.Error("a should reach b going East")
	}
	if g.Neighbor(b, West) != a {
		t.Error("b should reach a going West")
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	if err := g.Connect(b, a); err != nil {
		t.Fatalf("reconnect error: %v", err)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() after reconnect = %d, want 1", g.EdgeCount())
	}
}

func TestConnect_RejectsNonNeighbors(t *testing.T) {
	g := NewGrid(4, 4, false)
	err := g.Connect(g.GetCell(0, 0), g.GetCell(0, 3))
	if !errors.Is(err, ErrNotAdjacent) {
		t.Errorf("Connect across the row without wrap error = %v, want ErrNotAdjacent", err)
	}
	if g.GetCell(0, 0).Degree() != 0 {
		t.Error("failed Connect must not carve an edge")
	}
}

func TestConnect_WrapNeighbors(t *testing.T) {
	g := NewGrid(4, 4, true)
	mustConnect(t, g, 0, 3, 0, 0)
	if g.Neighbor(g.GetCell(0, 3), East) != g.GetCell(0, 0) {
		t.Error("last column should reach first column going East when wrapping")
	}
}

func TestExits_Order(t *testing.T) {
	g := NewGrid(4, 4, false)
	mustConnect(t, g, 1, 1, 1, 0)
	mustConnect(t, g, 1, 1, 0, 1)
	mustConnect(t, g, 1, 1, 2, 1)
	got := g.GetCell(1, 1).Exits()
	want := []Direction{North, South, West}
	if len(got) != len(want) {
		t.Fatalf("Exits() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Exits()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestDistances(t *testing.T) {
	g := NewGrid(4, 4, false)
	mustConnect(t, g, 0, 0, 0, 1)
	mustConnect(t, g, 0, 1, 0, 2)
	mustConnect(t, g, 0, 2, 1, 2)

	dist := g.Distances(g.GetCell(0, 0))
	if dist[g.GetCell(1, 2).Index] != 3 {
		t.Errorf("distance to (1,2) = %d, want 3", dist[g.GetCell(1, 2).Index])
	}
	if dist[g.GetCell(3, 3).Index] != -1 {
		t.Errorf("distance to unreachable cell = %d, want -1", dist[g.GetCell(3, 3).Index])
	}
	if g.Connected() {
		t.Error("Connected() = true for a partially carved grid")
	}
}

func TestConnected_FullRows(t *testing.T) {
	g := NewGrid(4, 4, false)
	for row := 0; row < 4; row++ {
		for col := 0; col < 3; col++ {
			mustConnect(t, g, row, col, row, col+1)
		}
		if row > 0 {
			mustConnect(t, g, row-1, 0, row, 0)
		}
	}
	if !g.Connected() {
		t.Error("Connected() = false for a spanning comb")
	}
	if g.EdgeCount() != 15 {
		t.Errorf("EdgeCount() = %d, want 15", g.EdgeCount())
	}
}

func TestDirection_ParseAndOpposite(t *testing.T) {
	for _, dir := range AllDirections() {
		if dir.Opposite().Opposite() != dir {
			t.Errorf("%v.Opposite().Opposite() = %v", dir, dir.Opposite().Opposite())
		}
		got, err := ParseDirection(dir.String())
		if err != nil || got != dir {
			t.Errorf("ParseDirection(%q) = %v, %v", dir.String(), got, err)
		}
	}
	if got, err := ParseDirection(" s "); err != nil || got != South {
		t.Errorf("ParseDirection(\" s \") = %v, %v; want South", got, err)
	}
	if _, err := ParseDirection("up"); err == nil {
		t.Error("ParseDirection(\"up\") should fail")
	}
}

func TestDirection_Delta(t *testing.T) {
	for _, dir := range AllDirections() {
		dr, dc := dir.Delta()
		or, oc := dir.Opposite().Delta()
		if dr+or != 0 || dc+oc != 0 {
			t.Errorf("%v.Delta() = (%d, %d) does not cancel its opposite (%d, %d)", dir, dr, dc, or, oc)
		}
		if dr*dr+dc*dc != 1 {
			t.Errorf("%v.Delta() = (%d, %d), want a single step", dir, dr, dc)
		}
	}
}

func TestNewGrid_SingleColumnWrap(t *testing.T) {
	// A wrapping row of one cell pairs the cell with itself.
	g := NewGrid(2, 1, true)
	want := []Edge{
		{A: 0, B: 0, Dir: East},
		{A: 1, B: 1, Dir: East},
		{A: 0, B: 1, Dir: South},
		{A: 1, B: 0, Dir: South},
	}
	edges := g.CandidateEdges()
	if len(edges) != len(want) {
		t.Fatalf("CandidateEdges() = %v, want %v", edges, want)
	}
	for i := range want {
		if edges[i] != want[i] {
			t.Errorf("edges[%d] = %+v, want %+v", i, edges[i], want[i])
		}
	}
}
