// Package console plays a game interactively over a pair of text streams.
package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"dungeons/pkg/engine/input"
	"dungeons/pkg/engine/terminal"
	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/devtools"
	"dungeons/pkg/game/gameplay"
	"dungeons/pkg/game/messages"
	"dungeons/pkg/game/renderer"
	"dungeons/pkg/game/state"
)

// Console reads commands, applies them to a game and renders the result.
type Console struct {
	in   *input.Reader
	out  io.Writer
	game *state.Game
	r    renderer.Renderer

	// DumpDir is where map dumps go when the terminal is too narrow to
	// show them.
	DumpDir string
}

// New creates a console for g. The renderer is initialized here.
func New(in io.Reader, out io.Writer, g *state.Game, r renderer.Renderer) *Console {
	r.Init()
	return &Console{
		in:      input.NewReader(in),
		out:     out,
		game:    g,
		r:       r,
		DumpDir: ".",
	}
}

// Run starts the game for name and plays until the player quits or the
// input runs out. Only failures of the console itself are returned.
func (c *Console) Run(name string) error {
	if err := gameplay.Start(c.game, name); err != nil {
		return err
	}

	for {
		c.r.RenderFrame(c.game)
		if c.game.Status.Terminal() {
			c.r.ShowMessage(messages.Get("OUTCOME", c.game.Status))
			c.r.ShowMessage(messages.Get("PLAY_AGAIN"))
		} else {
			c.r.ShowMessage(messages.Get("PROMPT"))
		}
		fmt.Fprint(c.out, "> ")

		line, err := c.in.ReadLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			c.quit()
			return nil
		}
		if err != nil {
			return err
		}

		c.game.ClearMessages()
		done, err := c.handle(input.Parse(line), name)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// handle applies one command. done is true once the player has quit.
func (c *Console) handle(in input.Intent, name string) (done bool, err error) {
	switch in.Action {
	case input.ActionMove:
		c.move(in.Args)
	case input.ActionPickup:
		c.pickup(in.Args)
	case input.ActionShoot:
		c.shoot(in.Args)
	case input.ActionViewMap:
		c.r.RenderMap(c.game)
	case input.ActionNewGame:
		return false, c.newGame(in.Args, name)
	case input.ActionReset:
		return false, c.reset(name)
	case input.ActionDump:
		c.dump()
	case input.ActionHelp:
		c.help()
	case input.ActionQuit:
		c.quit()
		return true, nil
	default:
		if len(in.Args) > 0 {
			c.say("INVALID_COMMAND", strings.Join(in.Args, " "))
		}
	}
	return false, nil
}

func (c *Console) say(key string, a ...any) {
	c.game.AddMessage(messages.Get(key, a...))
}

// report turns a play error into a message for the player.
func (c *Console) report(err error) {
	switch {
	case errors.Is(err, gameplay.ErrGameOver):
		c.say("GAME_OVER")
	case errors.Is(err, gameplay.ErrNoArrows):
		c.say("NO_ARROWS")
	case errors.Is(err, gameplay.ErrNothingToPickUp):
		c.say("NOTHING_HERE")
	default:
		c.game.AddMessage(err.Error())
	}
}

func (c *Console) move(args []string) {
	if len(args) != 1 {
		c.say("PROMPT_DIRECTION")
		return
	}
	dir, err := world.ParseDirection(args[0])
	if err != nil {
		c.say("PROMPT_DIRECTION")
		return
	}
	if _, err := gameplay.Move(c.game, dir); err != nil {
		if errors.Is(err, gameplay.ErrInvalidArgument) {
			c.say("INVALID_DIRECTION", dir)
			return
		}
		c.report(err)
	}
}

func (c *Console) pickup(args []string) {
	if len(args) != 1 {
		c.say("PROMPT_PICKUP")
		return
	}
	var err error
	switch strings.ToLower(args[0]) {
	case "t", "treasure":
		_, err = gameplay.PickupTreasure(c.game)
	case "a", "arrow", "arrows":
		_, err = gameplay.PickupArrows(c.game)
	default:
		c.say("PROMPT_PICKUP")
		return
	}
	if err != nil {
		c.report(err)
	}
}

func (c *Console) shoot(args []string) {
	if len(args) != 2 {
		c.say("PROMPT_SHOOT")
		return
	}
	dir, err := world.ParseDirection(args[0])
	if err != nil {
		c.say("INVALID_SHOT")
		return
	}
	distance, err := strconv.Atoi(args[1])
	if err != nil {
		c.say("INVALID_SHOT")
		return
	}
	if _, err := gameplay.Shoot(c.game, dir, distance); err != nil {
		if errors.Is(err, gameplay.ErrInvalidArgument) {
			c.say("INVALID_SHOT")
			return
		}
		c.report(err)
	}
}

// reset rebuilds the current dungeon and starts it again for name.
func (c *Console) reset(name string) error {
	if err := gameplay.Reset(c.game); err != nil {
		c.game.Logger.Error("reset failed", "err", err)
		c.game.AddMessage(err.Error())
		return nil
	}
	return gameplay.Start(c.game, name)
}

// newGame builds a different dungeon and starts it for name. With no
// arguments the current dimensions are kept; otherwise args are rows, cols
// and an optional "wrap".
func (c *Console) newGame(args []string, name string) error {
	cfg := c.game.Config
	switch len(args) {
	case 0:
	case 2, 3:
		rows, err := strconv.Atoi(args[0])
		if err != nil {
			c.say("PROMPT_NEW_GAME")
			return nil
		}
		cols, err := strconv.Atoi(args[1])
		if err != nil {
			c.say("PROMPT_NEW_GAME")
			return nil
		}
		cfg.Rows, cfg.Cols, cfg.Wrap = rows, cols, false
		if len(args) == 3 {
			if !strings.EqualFold(args[2], "wrap") {
				c.say("PROMPT_NEW_GAME")
				return nil
			}
			cfg.Wrap = true
		}
	default:
		c.say("PROMPT_NEW_GAME")
		return nil
	}

	if err := gameplay.NewGame(c.game, cfg); err != nil {
		c.game.Logger.Warn("new game rejected", "err", err)
		c.say("NEW_GAME_FAILED", err)
		return nil
	}
	if err := gameplay.Start(c.game, name); err != nil {
		return err
	}
	c.say("NEW_GAME", cfg.Rows, cfg.Cols)
	return nil
}

// help lists every command with the words that trigger it.
func (c *Console) help() {
	words := input.GetBindingsByAction()
	for a := input.ActionMove; a <= input.ActionQuit; a++ {
		c.r.ShowMessage(messages.Get("HELP_LINE", input.ActionName(a), strings.Join(words[a], ", ")))
	}
}

// dump prints the full dungeon, or writes it to a file when the terminal
// cannot fit it.
func (c *Console) dump() {
	if terminal.WidthOf(c.out) >= devtools.DumpWidth(c.game) {
		fmt.Fprint(c.out, devtools.DumpGrid(c.game))
		return
	}
	path, err := devtools.DumpGridToFile(c.game, c.DumpDir)
	if err != nil {
		c.game.Logger.Error("map dump failed", "err", err)
		c.game.AddMessage(err.Error())
		return
	}
	c.say("MAP_WRITTEN", path)
}

func (c *Console) quit() {
	if c.game.Status == state.Progress {
		_ = gameplay.Quit(c.game)
	}
	c.r.ShowMessage(messages.Get("STOPPED"))
}
