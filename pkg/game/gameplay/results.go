package gameplay

// MoveResult is what happened on entering a cell
type MoveResult int

const (
	MoveSuccess MoveResult = iota
	EscapeMonster
	PlayerEaten
)

func (r MoveResult) String() string {
	switch r {
	case MoveSuccess:
		return "MoveSuccess"
	case EscapeMonster:
		return "EscapeMonster"
	case PlayerEaten:
		return "PlayerEaten"
	default:
		return "Unknown"
	}
}

// ShootResult is what an arrow did
type ShootResult int

const (
	Missed ShootResult = iota
	PartialDamage
	Killed
)

func (r ShootResult) String() string {
	switch r {
	case Missed:
		return "Missed"
	case PartialDamage:
		return "PartialDamage"
	case Killed:
		return "Killed"
	default:
		return "Unknown"
	}
}

// Scent is how strongly the player smells monsters nearby
type Scent int

const (
	ScentNone Scent = iota
	ScentWeak
	ScentStrong
)

func (s Scent) String() string {
	switch s {
	case ScentNone:
		return "None"
	case ScentWeak:
		return "Weak"
	case ScentStrong:
		return "Strong"
	default:
		return "Unknown"
	}
}
