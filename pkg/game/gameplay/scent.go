package gameplay

import (
	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/state"
	gameworld "dungeons/pkg/game/world"
)

// CurrentScent reports how close live monsters are to the player. A monster
// in the player's cell or next to it smells strong; otherwise monsters two
// moves away are counted once per path leading to them, and a single count
// smells weak while several smell strong.
func CurrentScent(g *state.Game) (Scent, error) {
	if err := requireStarted(g); err != nil {
		return ScentNone, err
	}
	return scentAt(g.Grid, g.CurrentCell()), nil
}

func scentAt(grid *world.Grid, here *world.Cell) Scent {
	if gameworld.HasLiveMonster(here) {
		return ScentStrong
	}
	near := grid.Neighbors(here)
	for _, n := range near {
		if gameworld.HasLiveMonster(n) {
			return ScentStrong
		}
	}

	// A cell reachable through two neighbors is smelled along each path.
	far := 0
	for _, n := range near {
		for _, nn := range grid.Neighbors(n) {
			if nn != here && gameworld.HasLiveMonster(nn) {
				far++
			}
		}
	}

	switch far {
	case 0:
		return ScentNone
	case 1:
		return ScentWeak
	default:
		return ScentStrong
	}
}
