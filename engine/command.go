package engine

// Command is an encapsulated, applyable state mutation. Commands are
// immutable values created per input event and consumed exactly once,
// either dispatched synchronously by the input source or drained from the
// command queue by the worker
type Command interface {
	Apply(gs *GameState)
}

// MovePaddleUpCommand moves the given player's paddle one row up
type MovePaddleUpCommand struct {
	Player int
}

func (c MovePaddleUpCommand) Apply(gs *GameState) {
	gs.MovePaddleUp(c.Player)
}

// MovePaddleDownCommand moves the given player's paddle one row down
type MovePaddleDownCommand struct {
	Player int
}

func (c MovePaddleDownCommand) Apply(gs *GameState) {
	gs.MovePaddleDown(c.Player)
}

// PauseCommand toggles the pause flag
type PauseCommand struct{}

func (PauseCommand) Apply(gs *GameState) {
	gs.TogglePause()
}

// StopCommand ends the game
type StopCommand struct{}

func (StopCommand) Apply(gs *GameState) {
	gs.Stop()
}

// ResetCommand restarts the current game
type ResetCommand struct{}

func (ResetCommand) Apply(gs *GameState) {
	gs.ResetGame()
}
