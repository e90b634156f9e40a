package setup

import (
	"fmt"

	"dungeons/pkg/engine/random"
	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/config"
	"dungeons/pkg/game/entities"
	gameworld "dungeons/pkg/game/world"
)

// PlaceMonsters puts the first monster in the exit cave and the rest in
// random caves other than the start, one monster per cave.
func PlaceMonsters(grid *world.Grid, count int, rng random.Source) error {
	caves := grid.Caves()
	if count > len(caves) {
		return fmt.Errorf("%w: %d monsters but only %d caves",
			config.ErrInvalidConfiguration, count, len(caves))
	}

	start, exit := grid.StartCell(), grid.ExitCell()
	if exit == nil {
		return fmt.Errorf("%w: no exit cave chosen", config.ErrInvalidConfiguration)
	}
	free := 0
	for _, c := range caves {
		if c != start && c != exit {
			free++
		}
	}
	if count-1 > free {
		return fmt.Errorf("%w: %d monsters do not fit in %d caves away from the start",
			config.ErrInvalidConfiguration, count, free+1)
	}

	gameworld.GetGameData(exit).Monster = entities.NewMonster(entities.MonsterName(0))

	for i := 1; i < count; i++ {
		for {
			idx, err := rng.NextInRange(0, len(caves))
			if err != nil {
				return err
			}
			cave := caves[idx]
			if cave == start || gameworld.HasMonster(cave) {
				continue
			}
			gameworld.GetGameData(cave).Monster = entities.NewMonster(entities.MonsterName(i))
			break
		}
	}
	return nil
}
