package gameplay

import (
	"fmt"

	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/entities"
	"dungeons/pkg/game/state"
	gameworld "dungeons/pkg/game/world"
)

// MaxShotDistance is the farthest, in caves, an arrow can be aimed
const MaxShotDistance = 10

// Shoot fires an arrow in dir meant to land distance caves away.
// The arrow is spent even when it misses.
func Shoot(g *state.Game, dir world.Direction, distance int) (ShootResult, error) {
	if err := requireProgress(g); err != nil {
		return Missed, err
	}
	if !dir.IsValid() {
		return Missed, fmt.Errorf("%w: direction %d", ErrInvalidArgument, dir)
	}
	if distance < 0 || distance > MaxShotDistance {
		return Missed, fmt.Errorf("%w: distance %d outside [0, %d]", ErrInvalidArgument, distance, MaxShotDistance)
	}
	if !g.Player.UseArrow() {
		return Missed, ErrNoArrows
	}

	current := g.CurrentCell()
	g.History.Add(state.EventArrowShot, current.Name)

	result, landing := fly(g.Grid, current, dir, distance)
	if landing != nil && result != Missed {
		g.History.Add(state.EventMonsterHit, landing.Name)
	}

	switch result {
	case PartialDamage:
		logMessage(g, "SHOT_PARTIAL")
	case Killed:
		logMessage(g, "SHOT_KILLED")
	default:
		logMessage(g, "SHOT_MISSED")
	}
	g.Logger.Debug("arrow shot", "from", current.Name, "dir", dir, "distance", distance,
		"result", result, "arrows", g.Player.Arrows())
	return result, nil
}

// fly sends the arrow out of from and resolves the hit where it lands.
func fly(grid *world.Grid, from *world.Cell, dir world.Direction, distance int) (ShootResult, *world.Cell) {
	next := grid.Neighbor(from, dir)
	if next == nil {
		return Missed, nil
	}
	if distance > 0 && next.IsCave() {
		distance--
	}
	landing := grid.TraceArrow(next, dir.Opposite(), distance)
	if landing == nil {
		return Missed, nil
	}
	return strike(gameworld.GetGameData(landing).Monster), landing
}

// strike wounds m. Empty cells and dead monsters are misses.
func strike(m *entities.Monster) ShootResult {
	if m == nil || !m.Hit() {
		return Missed
	}
	if m.Health == entities.HealthZero {
		return Killed
	}
	return PartialDamage
}
