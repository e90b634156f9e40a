package state

import (
	"io"
	"log/slog"

	"dungeons/pkg/engine/random"
	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/config"
)

// Status is where a game stands in its lifecycle
type Status int

// Game statuses
const (
	NotStarted Status = iota
	Progress
	Won
	Lost
	Stopped
)

func (s Status) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case Progress:
		return "Progress"
	case Won:
		return "Won"
	case Lost:
		return "Lost"
	case Stopped:
		return "Stopped"
	default:
		return "Unknown"
	}
}

// Terminal returns true once the game has ended
func (s Status) Terminal() bool {
	return s == Won || s == Lost || s == Stopped
}

// Game represents one dungeon and the player in it
type Game struct {
	Grid   *world.Grid
	Config config.Config
	Random random.Source

	Player  *Player
	History *History
	Status  Status

	Messages []string

	Logger *slog.Logger
}

// NewGame creates a game around an already stocked grid
func NewGame(grid *world.Grid, cfg config.Config, rng random.Source, logger *slog.Logger) *Game {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Game{
		Grid:     grid,
		Config:   cfg,
		Random:   rng,
		History:  NewHistory(),
		Status:   NotStarted,
		Messages: make([]string, 0),
		Logger:   logger,
	}
}

// Replace swaps in a freshly built grid and forgets the player and history.
func (g *Game) Replace(grid *world.Grid, cfg config.Config) {
	g.Grid = grid
	g.Config = cfg
	g.Player = nil
	g.History.Clear()
	g.Status = NotStarted
	g.ClearMessages()
}

// CurrentCell returns the player's cell, or nil before the game starts
func (g *Game) CurrentCell() *world.Cell {
	if g.Player == nil {
		return nil
	}
	return g.Grid.GetCellByName(g.Player.Location())
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
