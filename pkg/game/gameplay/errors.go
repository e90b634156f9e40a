package gameplay

import (
	"errors"
	"fmt"
)

// Errors returned by play operations. None of them changes the game.
var (
	ErrNotStarted      = errors.New("game has not been started")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIllegalState    = errors.New("illegal state")

	ErrGameOver        = fmt.Errorf("%w: game is over", ErrIllegalState)
	ErrNoArrows        = fmt.Errorf("%w: no arrows left", ErrIllegalState)
	ErrNothingToPickUp = fmt.Errorf("%w: nothing to pick up", ErrIllegalState)
)
