package gameplay

import (
	"fmt"

	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/entities"
	"dungeons/pkg/game/state"
	gameworld "dungeons/pkg/game/world"
)

// MonsterView is a snapshot of a monster
type MonsterView struct {
	Name   string
	Health entities.Health
}

// ExitView is one passage out of a cell
type ExitView struct {
	Direction world.Direction
	Cell      string
}

// CellView is a snapshot of a cell and its contents
type CellView struct {
	Name           string
	Type           world.CellType
	Treasures      []entities.Treasure
	TreasureCounts map[entities.Treasure]int
	Arrows         int
	Monster        *MonsterView
	Exits          []ExitView
}

// PlayerView is a snapshot of the player
type PlayerView struct {
	Name      string
	Location  string
	Path      []string
	Treasures map[entities.Treasure]int
	Arrows    int
}

// CurrentLocation describes the player's cell.
func CurrentLocation(g *state.Game) (CellView, error) {
	if err := requireStarted(g); err != nil {
		return CellView{}, err
	}
	return describe(g.Grid, g.CurrentCell()), nil
}

// DescribeCell describes any cell by name.
func DescribeCell(g *state.Game, name string) (CellView, error) {
	cell := g.Grid.GetCellByName(name)
	if cell == nil {
		return CellView{}, fmt.Errorf("%w: no cell named %q", ErrInvalidArgument, name)
	}
	return describe(g.Grid, cell), nil
}

func describe(grid *world.Grid, cell *world.Cell) CellView {
	data := gameworld.GetGameData(cell)
	v := CellView{
		Name:           cell.Name,
		Type:           cell.Type,
		Treasures:      append([]entities.Treasure(nil), data.Treasures...),
		TreasureCounts: gameworld.TreasureCounts(cell),
		Arrows:         data.Arrows,
	}
	if data.Monster != nil {
		v.Monster = &MonsterView{Name: data.Monster.Name, Health: data.Monster.Health}
	}
	for _, dir := range cell.Exits() {
		v.Exits = append(v.Exits, ExitView{Direction: dir, Cell: grid.Neighbor(cell, dir).Name})
	}
	return v
}

// PlayerInfo describes the player.
func PlayerInfo(g *state.Game) (PlayerView, error) {
	if g.Player == nil {
		return PlayerView{}, ErrNotStarted
	}
	return PlayerView{
		Name:      g.Player.Name(),
		Location:  g.Player.Location(),
		Path:      g.Player.Path(),
		Treasures: g.Player.Treasures(),
		Arrows:    g.Player.Arrows(),
	}, nil
}

// AvailableMoves lists the directions the player can move in.
func AvailableMoves(g *state.Game) ([]world.Direction, error) {
	if err := requireStarted(g); err != nil {
		return nil, err
	}
	return g.CurrentCell().Exits(), nil
}

// Status returns where the game stands.
func Status(g *state.Game) state.Status {
	return g.Status
}

// History returns every recorded event in order.
func History(g *state.Game) []state.Event {
	return g.History.Events()
}
