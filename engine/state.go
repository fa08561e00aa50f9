package engine

import (
	"math/rand"
	"sync"
	"time"

	"github.com/lixenwraith/paddle-duel/parameter"
)

// Effects receives notifications of physics events. Implementations must
// not call back into GameState; notifications run under the state lock
type Effects interface {
	Bounce()
	Score(player int)
}

// nopEffects is the default silent sink
type nopEffects struct{}

func (nopEffects) Bounce()   {}
func (nopEffects) Score(int) {}

// GameState owns all mutable game state: ball, paddles, scores and the
// running/paused flags.
//
// Thread-Safety:
//   - Every read and mutation takes the single state mutex
//   - Safe for concurrent use by the frame loop and the queue worker
type GameState struct {
	mu      sync.Mutex
	clock   TimeProvider
	rng     *rand.Rand
	effects Effects

	// Paddle top-cell rows, clamped to [MinPaddleY, MaxPaddleY]
	paddle1Y int
	paddle2Y int

	// Ball grid position and unit velocity (each component is -1 or +1)
	ballX, ballY   int
	ballVX, ballVY int

	score1, score2 int

	running bool // terminal once false
	paused  bool // physics frozen, input and rendering continue

	lastTick time.Time
}

// Snapshot is a consistent point-in-time copy of the game state for
// read-only observers
type Snapshot struct {
	Paddle1Y, Paddle2Y int
	BallX, BallY       int
	Score1, Score2     int
	Paused             bool
	Running            bool
}

// NewGameState creates a running game with centered paddles and a freshly
// served ball. The rng seed is explicit so ball resets are reproducible
// under test
func NewGameState(clock TimeProvider, seed int64) *GameState {
	gs := &GameState{
		clock:   clock,
		rng:     rand.New(rand.NewSource(seed)),
		effects: nopEffects{},
		running: true,
	}
	gs.resetGameLocked()
	return gs
}

// SetEffects installs the physics event sink
func (gs *GameState) SetEffects(e Effects) {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.effects = e
}

// ===== PADDLE MOVEMENT =====

// MovePaddleUp moves a paddle one row up, clamped at the top wall.
// Player ids outside {1, 2} are silently ignored
func (gs *GameState) MovePaddleUp(player int) {
	gs.movePaddle(player, -1)
}

// MovePaddleDown moves a paddle one row down, clamped at the bottom wall
func (gs *GameState) MovePaddleDown(player int) {
	gs.movePaddle(player, +1)
}

func (gs *GameState) movePaddle(player, delta int) {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	switch player {
	case 1:
		gs.paddle1Y = clampPaddleY(gs.paddle1Y + delta)
	case 2:
		gs.paddle2Y = clampPaddleY(gs.paddle2Y + delta)
	}
}

func clampPaddleY(y int) int {
	if y < parameter.MinPaddleY {
		return parameter.MinPaddleY
	}
	if y > parameter.MaxPaddleY {
		return parameter.MaxPaddleY
	}
	return y
}

// ===== LIFECYCLE =====

// TogglePause flips the pause flag. Running is unaffected
func (gs *GameState) TogglePause() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.paused = !gs.paused
}

// Stop ends the game. Terminal: the frame loop observes Running and exits
func (gs *GameState) Stop() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.running = false
}

// ResetGame recenters both paddles, zeroes the scores and serves a new
// ball. Callable at any point
func (gs *GameState) ResetGame() {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	gs.resetGameLocked()
}

func (gs *GameState) resetGameLocked() {
	center := parameter.FieldHeight/2 - parameter.PaddleHeight/2
	gs.paddle1Y = center
	gs.paddle2Y = center
	gs.score1 = 0
	gs.score2 = 0
	gs.resetBallLocked()
}

// resetBallLocked serves from the horizontal center at a random height
// with random diagonal direction, and restarts the tick timer
func (gs *GameState) resetBallLocked() {
	gs.ballX = parameter.FieldWidth / 2
	gs.ballY = 1 + gs.rng.Intn(parameter.FieldHeight-2)
	gs.ballVX = randomSign(gs.rng)
	gs.ballVY = randomSign(gs.rng)
	gs.lastTick = gs.clock.Now()
}

func randomSign(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return +1
}

// ===== READ ACCESS =====

// Running reports whether the game is still live
func (gs *GameState) Running() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.running
}

// Paused reports whether physics is frozen
func (gs *GameState) Paused() bool {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return gs.paused
}

// Snapshot returns a consistent copy for renderers and status displays
func (gs *GameState) Snapshot() Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()
	return Snapshot{
		Paddle1Y: gs.paddle1Y,
		Paddle2Y: gs.paddle2Y,
		BallX:    gs.ballX,
		BallY:    gs.ballY,
		Score1:   gs.score1,
		Score2:   gs.score2,
		Paused:   gs.paused,
		Running:  gs.running,
	}
}

// ===== SIMULATION =====

// Update advances physics by one step if the game is live, not paused,
// and the tick interval has elapsed since the last step. Called every
// frame; most calls are no-ops
func (gs *GameState) Update() {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	if !gs.running || gs.paused {
		return
	}

	now := gs.clock.Now()
	if now.Sub(gs.lastTick) < parameter.TickInterval {
		return
	}
	gs.lastTick = now

	gs.stepLocked()
}

// stepLocked runs one physics step. Check order is fixed: advance, wall
// bounce, left paddle, right paddle, scoring. The bounce columns (3 and
// FieldWidth-4) never coincide with the scoring columns, so a ball past a
// paddle always reaches the scoring check
func (gs *GameState) stepLocked() {
	gs.ballX += gs.ballVX
	gs.ballY += gs.ballVY

	// Top/bottom wall bounce
	if gs.ballY <= 1 || gs.ballY >= parameter.FieldHeight-2 {
		gs.ballVY = -gs.ballVY
		gs.effects.Bounce()
	}

	// Left paddle bounce
	if gs.ballX == parameter.LeftBounceCol &&
		gs.ballY >= gs.paddle1Y && gs.ballY <= gs.paddle1Y+parameter.PaddleHeight {
		gs.ballVX = -gs.ballVX
		gs.effects.Bounce()
	}

	// Right paddle bounce
	if gs.ballX == parameter.RightBounceCol &&
		gs.ballY >= gs.paddle2Y && gs.ballY <= gs.paddle2Y+parameter.PaddleHeight {
		gs.ballVX = -gs.ballVX
		gs.effects.Bounce()
	}

	// Scoring: past the left wall is a point for player 2, past the
	// right wall a point for player 1
	if gs.ballX < 1 {
		gs.score2++
		gs.effects.Score(2)
		gs.resetBallLocked()
	}
	if gs.ballX > parameter.FieldWidth-2 {
		gs.score1++
		gs.effects.Score(1)
		gs.resetBallLocked()
	}
}
