package state

import "dungeons/pkg/game/entities"

// StartingArrows is how many arrows a new player carries
const StartingArrows = 3

// Player is the adventurer walking the dungeon
type Player struct {
	name      string
	path      []string
	treasures map[entities.Treasure]int
	arrows    int
}

// NewPlayer creates a player with a full quiver and no treasure
func NewPlayer(name string) *Player {
	return &Player{
		name:      name,
		treasures: make(map[entities.Treasure]int),
		arrows:    StartingArrows,
	}
}

// Name returns the player's name
func (p *Player) Name() string {
	return p.name
}

// Location returns the name of the cell the player is in, or "" before the
// first visit.
func (p *Player) Location() string {
	if len(p.path) == 0 {
		return ""
	}
	return p.path[len(p.path)-1]
}

// Visit appends a cell to the travelled path
func (p *Player) Visit(cell string) {
	p.path = append(p.path, cell)
}

// Path returns a copy of every cell visited, revisits included
func (p *Player) Path() []string {
	out := make([]string, len(p.path))
	copy(out, p.path)
	return out
}

// Treasures returns a copy of the collected treasure counts
func (p *Player) Treasures() map[entities.Treasure]int {
	out := make(map[entities.Treasure]int, len(p.treasures))
	for k, v := range p.treasures {
		out[k] = v
	}
	return out
}

// AddTreasure records collected gems
func (p *Player) AddTreasure(gems ...entities.Treasure) {
	for _, t := range gems {
		p.treasures[t]++
	}
}

// Arrows returns how many arrows the player carries
func (p *Player) Arrows() int {
	return p.arrows
}

// AddArrows puts picked up arrows in the quiver
func (p *Player) AddArrows(n int) {
	p.arrows += n
}

// UseArrow takes one arrow out of the quiver. It returns false if the quiver
// is empty.
func (p *Player) UseArrow() bool {
	if p.arrows == 0 {
		return false
	}
	p.arrows--
	return true
}
