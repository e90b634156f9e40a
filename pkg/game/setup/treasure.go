package setup

import (
	"dungeons/pkg/engine/random"
	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/entities"
	gameworld "dungeons/pkg/game/world"
)

// maxTreasurePile bounds how many gems one cave can get (exclusive).
const maxTreasurePile = 4

// PlaceTreasure fills pct percent of the caves, rounded up, with one to three
// random gems each. Only caves hold treasure.
func PlaceTreasure(grid *world.Grid, pct int, rng random.Source) error {
	caves := grid.Caves()
	count := percentOf(len(caves), pct)
	kinds := entities.AllTreasures()

	return pickDistinct(rng, len(caves), count, func(idx int) error {
		size, err := rng.NextInRange(1, maxTreasurePile)
		if err != nil {
			return err
		}
		data := gameworld.GetGameData(caves[idx])
		for i := 0; i < size; i++ {
			k, err := rng.NextInRange(0, len(kinds))
			if err != nil {
				return err
			}
			data.Treasures = append(data.Treasures, kinds[k])
		}
		return nil
	})
}
