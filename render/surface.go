package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/paddle-duel/engine"
	"github.com/lixenwraith/paddle-duel/parameter"
)

// Playfield glyphs
const (
	borderRune = '#'
	paddleRune = '█'
	ballRune   = '●'
)

// Surface renders the playfield grid onto a tcell screen. The playfield
// occupies rows HeaderHeight..HeaderHeight+FieldHeight-1; the two header
// rows above it carry the title and score. Show is left to the caller so
// a status display can draw into the same frame
type Surface struct {
	screen tcell.Screen

	headerStyle tcell.Style
	borderStyle tcell.Style
	paddleStyle tcell.Style
	ballStyle   tcell.Style
	pauseStyle  tcell.Style
}

// NewSurface creates a playfield renderer for the given screen
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{
		screen:      screen,
		headerStyle: tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true),
		borderStyle: tcell.StyleDefault.Foreground(tcell.ColorGray),
		paddleStyle: tcell.StyleDefault.Foreground(tcell.ColorGreen),
		ballStyle:   tcell.StyleDefault.Foreground(tcell.ColorYellow),
		pauseStyle:  tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true),
	}
}

// Draw renders one frame from the snapshot: header, border, paddles, ball
// and the pause notice. The screen is cleared first; the caller flushes
// with Show
func (s *Surface) Draw(snap engine.Snapshot) {
	s.screen.Clear()

	s.drawHeader(snap)
	s.drawBorder()
	s.drawPaddle(parameter.LeftPaddleCol, snap.Paddle1Y)
	s.drawPaddle(parameter.RightPaddleCol, snap.Paddle2Y)
	s.screen.SetContent(snap.BallX, parameter.HeaderHeight+snap.BallY, ballRune, nil, s.ballStyle)

	if snap.Paused {
		s.drawCentered(parameter.HeaderHeight+parameter.FieldHeight/2, "PAUSED", s.pauseStyle)
	}
}

func (s *Surface) drawHeader(snap engine.Snapshot) {
	s.drawCentered(0, "PADDLE DUEL", s.headerStyle)
	score := fmt.Sprintf("Player 1: %d   Player 2: %d", snap.Score1, snap.Score2)
	s.drawCentered(1, score, s.headerStyle)
}

func (s *Surface) drawBorder() {
	top := parameter.HeaderHeight
	bottom := parameter.HeaderHeight + parameter.FieldHeight - 1

	for x := 0; x < parameter.FieldWidth; x++ {
		s.screen.SetContent(x, top, borderRune, nil, s.borderStyle)
		s.screen.SetContent(x, bottom, borderRune, nil, s.borderStyle)
	}
	for y := top; y <= bottom; y++ {
		s.screen.SetContent(0, y, borderRune, nil, s.borderStyle)
		s.screen.SetContent(parameter.FieldWidth-1, y, borderRune, nil, s.borderStyle)
	}
}

func (s *Surface) drawPaddle(col, topY int) {
	for i := 0; i < parameter.PaddleHeight; i++ {
		s.screen.SetContent(col, parameter.HeaderHeight+topY+i, paddleRune, nil, s.paddleStyle)
	}
}

// drawCentered writes text centered on the screen width
func (s *Surface) drawCentered(row int, text string, style tcell.Style) {
	width, _ := s.screen.Size()
	col := (width - len(text)) / 2
	if col < 0 {
		col = 0
	}
	for i, r := range text {
		s.screen.SetContent(col+i, row, r, nil, style)
	}
}
