package entities

// Treasure is a kind of gem found in caves
type Treasure int

const (
	Diamonds Treasure = iota
	Rubies
	Sapphires
)

// TreasureInfo contains display information for each treasure kind
type TreasureInfo struct {
	Name string
	Icon string
}

// TreasureKinds maps treasure kinds to their display information
var TreasureKinds = map[Treasure]TreasureInfo{
	Diamonds:  {Name: "Diamonds", Icon: "◆"},
	Rubies:    {Name: "Rubies", Icon: "♦"},
	Sapphires: {Name: "Sapphires", Icon: "◇"},
}

// AllTreasures returns every treasure kind in declaration order
func AllTreasures() []Treasure {
	return []Treasure{Diamonds, Rubies, Sapphires}
}

func (t Treasure) String() string {
	if info, ok := TreasureKinds[t]; ok {
		return info.Name
	}
	return "Unknown"
}

// Icon returns the map symbol for a treasure kind
func (t Treasure) Icon() string {
	return TreasureKinds[t].Icon
}
