package state

import (
	"testing"

	"dungeons/pkg/engine/random"
	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/config"
	"dungeons/pkg/game/entities"
)

func TestPlayer_NewHasThreeArrows(t *testing.T) {
	p := NewPlayer("Ada")
	if p.Name() != "Ada" {
		t.Errorf("Name() = %q, want Ada", p.Name())
	}
	if p.Arrows() != StartingArrows {
		t.Errorf("Arrows() = %d, want %d", p.Arrows(), StartingArrows)
	}
	if p.Location() != "" {
		t.Errorf("Location() before any visit = %q, want empty", p.Location())
	}
}

func TestPlayer_PathKeepsRevisits(t *testing.T) {
	p := NewPlayer("Ada")
	for _, c := range []string{"Cell-01", "Cell-02", "Cell-01"} {
		p.Visit(c)
	}
	path := p.Path()
	if len(path) != 3 || p.Location() != "Cell-01" {
		t.Errorf("Path() = %v, Location() = %q; want 3 steps ending at Cell-01", path, p.Location())
	}
	path[0] = "tampered"
	if p.Path()[0] != "Cell-01" {
		t.Error("Path() must return a copy")
	}
}

func TestPlayer_Arrows(t *testing.T) {
	p := NewPlayer("Ada")
	for i := 0; i < StartingArrows; i++ {
		if !p.UseArrow() {
			t.Fatalf("UseArrow() #%d = false", i+1)
		}
	}
	if p.UseArrow() {
		t.Error("UseArrow() with an empty quiver = true")
	}
	p.AddArrows(2)
	if p.Arrows() != 2 {
		t.Errorf("Arrows() = %d, want 2", p.Arrows())
	}
}

func TestPlayer_Treasures(t *testing.T) {
	p := NewPlayer("Ada")
	p.AddTreasure(entities.Rubies, entities.Rubies, entities.Diamonds)
	got := p.Treasures()
	if got[entities.Rubies] != 2 || got[entities.Diamonds] != 1 || got[entities.Sapphires] != 0 {
		t.Errorf("Treasures() = %v", got)
	}
	got[entities.Sapphires] = 5
	if p.Treasures()[entities.Sapphires] != 0 {
		t.Error("Treasures() must return a copy")
	}
}

func TestHistory(t *testing.T) {
	h := NewHistory()
	h.Add(EventMove, "Cell-01")
	h.Add(EventArrowShot, "Cell-01")
	events := h.Events()
	if h.Len() != 2 || events[1] != (Event{Kind: EventArrowShot, Cell: "Cell-01"}) {
		t.Errorf("Events() = %v", events)
	}
	h.Clear()
	if h.Len() != 0 {
		t.Errorf("Len() after Clear = %d", h.Len())
	}
}

func TestGame_Replace(t *testing.T) {
	g := NewGame(world.NewGrid(4, 4, false), config.Default(), random.NewFixed(), nil)
	g.Player = NewPlayer("Ada")
	g.History.Add(EventMove, "Cell-01")
	g.Status = Lost
	g.AddMessage("eaten")

	g.Replace(world.NewGrid(5, 5, false), config.Default())
	if g.Player != nil || g.History.Len() != 0 || g.Status != NotStarted || len(g.Messages) != 0 {
		t.Errorf("Replace left state behind: player=%v history=%d status=%v messages=%v",
			g.Player, g.History.Len(), g.Status, g.Messages)
	}
	if g.Grid.Rows() != 5 {
		t.Errorf("Grid.Rows() = %d, want 5", g.Grid.Rows())
	}
}

func TestGame_MessagesAreCapped(t *testing.T) {
	g := NewGame(world.NewGrid(4, 4, false), config.Default(), random.NewFixed(), nil)
	for i := 0; i < 8; i++ {
		g.AddMessage(string(rune('a' + i)))
	}
	if len(g.Messages) != 5 || g.Messages[0] != "d" {
		t.Errorf("Messages = %v, want the last five", g.Messages)
	}
}

func TestStatus_Terminal(t *testing.T) {
	for _, s := range []Status{Won, Lost, Stopped} {
		if !s.Terminal() {
			t.Errorf("%v.Terminal() = false", s)
		}
	}
	for _, s := range []Status{NotStarted, Progress} {
		if s.Terminal() {
			t.Errorf("%v.Terminal() = true", s)
		}
	}
}
