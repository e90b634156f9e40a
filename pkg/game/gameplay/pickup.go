package gameplay

import (
	"dungeons/pkg/game/entities"
	"dungeons/pkg/game/state"
	gameworld "dungeons/pkg/game/world"
)

// PickupTreasure moves every gem in the player's cell to the player and
// returns what was taken.
func PickupTreasure(g *state.Game) ([]entities.Treasure, error) {
	if err := requireProgress(g); err != nil {
		return nil, err
	}
	cell := g.CurrentCell()
	if !gameworld.HasTreasure(cell) {
		return nil, ErrNothingToPickUp
	}
	data := gameworld.GetGameData(cell)

	taken := data.Treasures
	data.Treasures = nil
	g.Player.AddTreasure(taken...)
	g.History.Add(state.EventTreasurePickup, cell.Name)

	logMessage(g, "PICKED_TREASURE")
	g.Logger.Debug("treasure picked up", "cell", cell.Name, "count", len(taken))
	return taken, nil
}

// PickupArrows moves every arrow in the player's cell to the quiver and
// returns how many were taken.
func PickupArrows(g *state.Game) (int, error) {
	if err := requireProgress(g); err != nil {
		return 0, err
	}
	cell := g.CurrentCell()
	if !gameworld.HasArrows(cell) {
		return 0, ErrNothingToPickUp
	}
	data := gameworld.GetGameData(cell)

	n := data.Arrows
	data.Arrows = 0
	g.Player.AddArrows(n)
	g.History.Add(state.EventArrowPickup, cell.Name)

	logMessage(g, "PICKED_ARROWS", n)
	g.Logger.Debug("arrows picked up", "cell", cell.Name, "count", n)
	return n, nil
}
