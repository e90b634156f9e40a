// Package setup stocks a generated dungeon with treasure, monsters and arrows.
package setup

import (
	"dungeons/pkg/engine/random"
	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/config"
	gameworld "dungeons/pkg/game/world"
)

// Distribute places treasure, then monsters, then arrows. The order matters:
// every placement draws from rng, so changing it changes every seeded world.
func Distribute(grid *world.Grid, cfg config.Config, rng random.Source) error {
	grid.ForEachCell(func(_, _ int, cell *world.Cell) {
		gameworld.InitGameData(cell)
	})

	if err := PlaceTreasure(grid, cfg.DistributionPercent, rng); err != nil {
		return err
	}
	if err := PlaceMonsters(grid, cfg.MonsterCount, rng); err != nil {
		return err
	}
	return PlaceArrows(grid, cfg.DistributionPercent, rng)
}
