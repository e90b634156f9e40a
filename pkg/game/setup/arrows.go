package setup

import (
	"dungeons/pkg/engine/random"
	"dungeons/pkg/engine/world"
	gameworld "dungeons/pkg/game/world"
)

// maxArrowBundle bounds how many arrows one cell can get (exclusive).
const maxArrowBundle = 4

// PlaceArrows drops one to three arrows in pct percent of all cells, rounded
// up. Tunnels get arrows too.
func PlaceArrows(grid *world.Grid, pct int, rng random.Source) error {
	n := grid.Len()
	return pickDistinct(rng, n, percentOf(n, pct), func(idx int) error {
		bundle, err := rng.NextInRange(1, maxArrowBundle)
		if err != nil {
			return err
		}
		gameworld.GetGameData(grid.CellAt(idx)).Arrows += bundle
		return nil
	})
}
