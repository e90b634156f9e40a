// Package renderer defines how a game is presented to the player.
package renderer

import (
	"dungeons/pkg/game/state"
)

// TextStyle represents different text styling options
type TextStyle int

const (
	StyleNormal TextStyle = iota
	StyleCell
	StyleCellText
	StyleItem
	StyleAction
	StyleActionShort
	StyleDenied
	StyleMonster
	StyleSubtle
	StylePlayer
	StyleExitOpen
)

// Renderer defines the interface for game rendering backends
type Renderer interface {
	// Init initializes the renderer (colors, markup)
	Init()

	// RenderFrame renders the player's surroundings, status and messages
	RenderFrame(g *state.Game)

	// RenderMap renders the part of the dungeon the player has seen
	RenderMap(g *state.Game)

	// StyleText applies a style to text and returns the styled string
	StyleText(text string, style TextStyle) string

	// FormatText formats a message with the renderer's markup system
	FormatText(msg string, args ...any) string

	// ShowMessage displays a message to the user
	ShowMessage(msg string)
}
