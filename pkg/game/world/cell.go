// Package world provides game-specific world extensions for the dungeon.
// It attaches treasure, arrows and monsters to the generic engine/world cells.
package world

import (
	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/entities"
)

// GameCellData holds the contents of a cell.
// This is stored in the engine Cell's GameData field.
type GameCellData struct {
	Treasures []entities.Treasure // Gems lying here, duplicates allowed
	Arrows    int                 // Loose arrows lying here
	Monster   *entities.Monster   // Monster living here (if any)
}

// InitGameData initializes game data for a cell if not already set
func InitGameData(cell *world.Cell) *GameCellData {
	if cell.GameData == nil {
		cell.GameData = &GameCellData{}
	}
	return cell.GameData.(*GameCellData)
}

// GetGameData retrieves game data from a cell, initializing if needed
func GetGameData(cell *world.Cell) *GameCellData {
	return InitGameData(cell)
}

// HasTreasure returns true if this cell holds any treasure
func HasTreasure(cell *world.Cell) bool {
	return len(GetGameData(cell).Treasures) > 0
}

// HasArrows returns true if this cell holds any arrows
func HasArrows(cell *world.Cell) bool {
	return GetGameData(cell).Arrows > 0
}

// HasMonster returns true if a monster, dead or alive, lives in this cell
func HasMonster(cell *world.Cell) bool {
	return GetGameData(cell).Monster != nil
}

// HasLiveMonster returns true if a monster that can still fight lives here
func HasLiveMonster(cell *world.Cell) bool {
	return cell != nil && GetGameData(cell).Monster.Alive()
}

// TreasureCounts tallies the treasure in a cell by kind
func TreasureCounts(cell *world.Cell) map[entities.Treasure]int {
	counts := make(map[entities.Treasure]int)
	for _, t := range GetGameData(cell).Treasures {
		counts[t]++
	}
	return counts
}
