package gameplay

import (
	"fmt"
	"strings"

	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/entities"
	"dungeons/pkg/game/messages"
	"dungeons/pkg/game/state"
	gameworld "dungeons/pkg/game/world"
)

// Start puts a new player named name in the start cell.
func Start(g *state.Game, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: player name is empty", ErrInvalidArgument)
	}
	if g.Status != state.NotStarted {
		return fmt.Errorf("%w: game is %v", ErrIllegalState, g.Status)
	}

	start := g.Grid.StartCell()
	g.Player = state.NewPlayer(name)
	g.Player.Visit(start.Name)
	g.History.Add(state.EventMove, start.Name)
	g.Status = state.Progress

	g.Logger.Debug("game started", "player", name, "cell", start.Name)
	logMessage(g, "WELCOME", name)
	return nil
}

// Move walks the player one cell in dir and settles any monster encounter
// there. Entering the exit alive wins the game.
func Move(g *state.Game, dir world.Direction) (MoveResult, error) {
	if err := requireProgress(g); err != nil {
		return MoveSuccess, err
	}
	if !dir.IsValid() {
		return MoveSuccess, fmt.Errorf("%w: direction %d", ErrInvalidArgument, dir)
	}
	current := g.CurrentCell()
	target := g.Grid.Neighbor(current, dir)
	if target == nil {
		return MoveSuccess, fmt.Errorf("%w: no passage %v from %s", ErrInvalidArgument, dir, current.Name)
	}

	monster := gameworld.GetGameData(target).Monster
	survived := true
	if monster != nil && monster.Health == entities.HealthHalf {
		// Drawn before anything changes so a failed draw leaves the game intact.
		n, err := g.Random.NextInRange(0, 2)
		if err != nil {
			return MoveSuccess, err
		}
		survived = n != 0
	}

	g.Player.Visit(target.Name)
	g.History.Add(state.EventMove, target.Name)
	atExit := target == g.Grid.ExitCell()

	var result MoveResult
	switch {
	case monster != nil && monster.Health == entities.HealthFull,
		monster != nil && monster.Health == entities.HealthHalf && !survived:
		g.Status = state.Lost
		result = PlayerEaten
		logMessage(g, "EATEN")
	case monster != nil && monster.Health == entities.HealthHalf:
		result = EscapeMonster
		logMessage(g, "ESCAPED")
	default:
		result = MoveSuccess
		logMessage(g, "MOVED", dir)
	}
	if result != PlayerEaten && atExit {
		g.Status = state.Won
		logMessage(g, "WON")
	}

	g.Logger.Debug("player moved", "dir", dir, "cell", target.Name, "result", result, "status", g.Status)
	return result, nil
}

// Quit abandons a game in progress.
func Quit(g *state.Game) error {
	if err := requireProgress(g); err != nil {
		return err
	}
	g.Status = state.Stopped
	g.Logger.Debug("game stopped", "cell", g.Player.Location())
	logMessage(g, "STOPPED")
	return nil
}

func requireStarted(g *state.Game) error {
	if g.Status == state.NotStarted || g.Player == nil {
		return ErrNotStarted
	}
	return nil
}

func requireProgress(g *state.Game) error {
	if err := requireStarted(g); err != nil {
		return err
	}
	if g.Status.Terminal() {
		return ErrGameOver
	}
	return nil
}

// logMessage adds a translated message to the game's message log
func logMessage(g *state.Game, key string, a ...any) {
	g.AddMessage(messages.Get(key, a...))
}
