package entities

import "fmt"

// Health is a monster's remaining strength. It only ever moves down.
type Health int

const (
	HealthFull Health = iota // Untouched - eats anyone who walks in
	HealthHalf               // Wounded once - the player may slip past
	HealthZero               // Dead - harmless, arrows pass through
)

// String returns the display name of a health level
func (h Health) String() string {
	switch h {
	case HealthFull:
		return "Full"
	case HealthHalf:
		return "Half"
	case HealthZero:
		return "Zero"
	default:
		return "Unknown"
	}
}

// Monster lurks in a cave waiting for the player
type Monster struct {
	Name   string
	Health Health
}

// MonsterName returns the name of the i-th placed monster
func MonsterName(i int) string {
	return fmt.Sprintf("Monster-%d", i)
}

// NewMonster creates a monster at full health
func NewMonster(name string) *Monster {
	return &Monster{Name: name, Health: HealthFull}
}

// Alive returns true unless the monster has been killed
func (m *Monster) Alive() bool {
	return m != nil && m.Health != HealthZero
}

// Hit wounds the monster by one step: Full becomes Half, Half becomes Zero.
// It returns false, changing nothing, when the monster is already dead.
func (m *Monster) Hit() bool {
	switch m.Health {
	case HealthFull:
		m.Health = HealthHalf
	case HealthHalf:
		m.Health = HealthZero
	default:
		return false
	}
	return true
}
