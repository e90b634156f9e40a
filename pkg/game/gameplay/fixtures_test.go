package gameplay

import (
	"testing"

	"dungeons/pkg/engine/random"
	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/config"
	"dungeons/pkg/game/entities"
	"dungeons/pkg/game/generator"
	"dungeons/pkg/game/state"
	gameworld "dungeons/pkg/game/world"
)

type pos struct{ row, col int }

// newTestGame wires a 4x4 grid from the given passages, classifies it and
// wraps it in a game drawing from rng. Start is (0,0), exit is (3,0).
func newTestGame(t *testing.T, wrap bool, passages [][2]pos, rng random.Source) *state.Game {
	t.Helper()
	grid := world.NewGrid(4, 4, wrap)
	for _, p := range passages {
		a, b := grid.GetCell(p[0].row, p[0].col), grid.GetCell(p[1].row, p[1].col)
		if err := grid.Connect(a, b); err != nil {
			t.Fatalf("Connect(%v, %v) error: %v", p[0], p[1], err)
		}
	}
	generator.Classify(grid)
	grid.SetStartCell(grid.GetCell(0, 0))
	grid.SetExitCell(grid.GetCell(3, 0))
	grid.ForEachCell(func(_, _ int, c *world.Cell) {
		gameworld.InitGameData(c)
	})

	cfg := config.Default()
	cfg.Rows, cfg.Cols, cfg.Wrap = 4, 4, wrap
	return state.NewGame(grid, cfg, rng, nil)
}

// snakePassages joins every row end to end, turning at alternate sides, so
// only (0,0) and (3,0) are caves and everything between is tunnel.
func snakePassages() [][2]pos {
	var order []pos
	for row := 0; row < 4; row++ {
		for i := 0; i < 4; i++ {
			col := i
			if row%2 == 1 {
				col = 3 - i
			}
			order = append(order, pos{row, col})
		}
	}
	var out [][2]pos
	for i := 1; i < len(order); i++ {
		out = append(out, [2]pos{order[i-1], order[i]})
	}
	return out
}

// combPassages joins every row left to right and links rows through the
// first column. (1,0) and (2,0) are three-way caves.
func combPassages() [][2]pos {
	var out [][2]pos
	for row := 0; row < 4; row++ {
		for col := 0; col < 3; col++ {
			out = append(out, [2]pos{{row, col}, {row, col + 1}})
		}
		if row > 0 {
			out = append(out, [2]pos{{row - 1, 0}, {row, 0}})
		}
	}
	return out
}

func snakeGame(t *testing.T, rng random.Source) *state.Game {
	t.Helper()
	return newTestGame(t, false, snakePassages(), rng)
}

// placePlayer drops a started player into the cell at row, col.
func placePlayer(t *testing.T, g *state.Game, row, col int) {
	t.Helper()
	g.Player = state.NewPlayer("Tester")
	g.Player.Visit(g.Grid.GetCell(row, col).Name)
	g.Status = state.Progress
}

func putMonster(g *state.Game, row, col int, health entities.Health) *entities.Monster {
	m := entities.NewMonster("Monster-test")
	m.Health = health
	gameworld.GetGameData(g.Grid.GetCell(row, col)).Monster = m
	return m
}

func mustStart(t *testing.T, g *state.Game) {
	t.Helper()
	if err := Start(g, "Tester"); err != nil {
		t.Fatalf("Start error: %v", err)
	}
}
