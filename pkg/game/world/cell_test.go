package world

import (
	"testing"

	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/entities"
)

func TestGameData(t *testing.T) {
	cell := world.NewCell(0, 0, 0)
	if HasTreasure(cell) || HasArrows(cell) || HasMonster(cell) || HasLiveMonster(cell) {
		t.Fatal("a fresh cell should be empty")
	}
	if GetGameData(cell) != InitGameData(cell) {
		t.Fatal("GetGameData should return the same data every time")
	}

	data := GetGameData(cell)
	data.Treasures = []entities.Treasure{entities.Rubies, entities.Diamonds, entities.Rubies}
	data.Arrows = 2
	data.Monster = entities.NewMonster("Monster-0")

	if !HasTreasure(cell) || !HasArrows(cell) || !HasLiveMonster(cell) {
		t.Error("cell contents not reported")
	}
	counts := TreasureCounts(cell)
	if counts[entities.Rubies] != 2 || counts[entities.Diamonds] != 1 || counts[entities.Sapphires] != 0 {
		t.Errorf("TreasureCounts() = %v", counts)
	}

	data.Monster.Health = entities.HealthZero
	if !HasMonster(cell) || HasLiveMonster(cell) {
		t.Error("a dead monster is still a monster but not a live one")
	}
	if HasLiveMonster(nil) {
		t.Error("HasLiveMonster(nil) = true")
	}
}
