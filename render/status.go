package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paddle-duel/engine"
	"github.com/lixenwraith/paddle-duel/parameter"
)

// StatusRow is the screen row the status line is written to, directly
// under the playfield
const StatusRow = parameter.HeaderHeight + parameter.FieldHeight

// StatusDisplay renders a read-only one-line summary of the current
// state each frame. Implementations are interchangeable; exactly one is
// active in the default wiring
type StatusDisplay interface {
	DisplayStatus(snap engine.Snapshot)
}

// ScoreStatus summarizes the score
type ScoreStatus struct {
	screen tcell.Screen
}

// NewScoreStatus creates a score summary display
func NewScoreStatus(screen tcell.Screen) *ScoreStatus {
	return &ScoreStatus{screen: screen}
}

func (d *ScoreStatus) DisplayStatus(snap engine.Snapshot) {
	printStatus(d.screen, fmt.Sprintf("score %d : %d", snap.Score1, snap.Score2))
}

// PaddleStatus summarizes both paddle positions
type PaddleStatus struct {
	screen tcell.Screen
}

// NewPaddleStatus creates a paddle position display
func NewPaddleStatus(screen tcell.Screen) *PaddleStatus {
	return &PaddleStatus{screen: screen}
}

func (d *PaddleStatus) DisplayStatus(snap engine.Snapshot) {
	printStatus(d.screen, fmt.Sprintf("paddles p1=%d p2=%d", snap.Paddle1Y, snap.Paddle2Y))
}

// BallStatus summarizes the ball position
type BallStatus struct {
	screen tcell.Screen
}

// NewBallStatus creates a ball position display
func NewBallStatus(screen tcell.Screen) *BallStatus {
	return &BallStatus{screen: screen}
}

func (d *BallStatus) DisplayStatus(snap engine.Snapshot) {
	printStatus(d.screen, fmt.Sprintf("ball (%d,%d)", snap.BallX, snap.BallY))
}

func printStatus(screen tcell.Screen, text string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorSilver)
	for i, r := range text {
		screen.SetContent(i, StatusRow, r, nil, style)
	}
}
