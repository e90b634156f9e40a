package state

// EventKind is what happened at a cell
type EventKind int

const (
	EventMove EventKind = iota
	EventArrowShot
	EventTreasurePickup
	EventArrowPickup
	EventMonsterHit
)

func (k EventKind) String() string {
	switch k {
	case EventMove:
		return "Move"
	case EventArrowShot:
		return "ArrowShot"
	case EventTreasurePickup:
		return "TreasurePickup"
	case EventArrowPickup:
		return "ArrowPickup"
	case EventMonsterHit:
		return "MonsterHit"
	default:
		return "Unknown"
	}
}

// Event records one action and the cell it happened in
type Event struct {
	Kind EventKind
	Cell string
}

// History is the append-only log of a game's events
type History struct {
	events []Event
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{}
}

// Add appends an event
func (h *History) Add(kind EventKind, cell string) {
	h.events = append(h.events, Event{Kind: kind, Cell: cell})
}

// Events returns a copy of the events in the order they happened
func (h *History) Events() []Event {
	out := make([]Event, len(h.events))
	copy(out, h.events)
	return out
}

// Len returns the number of recorded events
func (h *History) Len() int {
	return len(h.events)
}

// Clear forgets every event
func (h *History) Clear() {
	h.events = nil
}
