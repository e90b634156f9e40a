package generator

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"dungeons/pkg/engine/random"
	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/config"
)

// MinEndpointDistance is the hop count the exit must exceed from the start.
const MinEndpointDistance = 4

// SelectEndpoints picks a random start cell that has at least one cave more
// than MinEndpointDistance hops away, then picks the exit among those caves.
// Starts with no such cave are set aside; once every cell has been set aside
// the grid is too small and an ErrInvalidConfiguration is returned.
func SelectEndpoints(grid *world.Grid, rng random.Source) error {
	exhausted := mapset.New[int]()

	for exhausted.Size() < grid.Len() {
		idx, err := rng.NextInRange(0, grid.Len())
		if err != nil {
			return err
		}
		if exhausted.Has(idx) {
			continue
		}

		start := grid.CellAt(idx)
		ends := farCaves(grid, start)
		if len(ends) == 0 {
			exhausted.Put(idx)
			continue
		}

		pick, err := rng.NextInRange(0, len(ends))
		if err != nil {
			return err
		}
		grid.SetStartCell(start)
		grid.SetExitCell(ends[pick])
		return nil
	}

	return fmt.Errorf("%w: no two cells of a %dx%d dungeon are more than %d moves apart",
		config.ErrInvalidConfiguration, grid.Rows(), grid.Cols(), MinEndpointDistance)
}

// farCaves lists, in row-major order, the caves more than MinEndpointDistance
// hops from start.
func farCaves(grid *world.Grid, start *world.Cell) []*world.Cell {
	var out []*world.Cell
	for i, d := range grid.Distances(start) {
		c := grid.CellAt(i)
		if d > MinEndpointDistance && c.IsCave() {
			out = append(out, c)
		}
	}
	return out
}
