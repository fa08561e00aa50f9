package parameter

import "time"

// Playfield dimensions (cells). The outermost row/column on each side is
// border; the ball and paddles live inside it.
const (
	FieldWidth  = 80
	FieldHeight = 24

	PaddleHeight = 4

	// Columns the paddles are drawn at
	LeftPaddleCol  = 2
	RightPaddleCol = FieldWidth - 3

	// Columns the ball bounces off a paddle at (one cell in front of it)
	LeftBounceCol  = 3
	RightBounceCol = FieldWidth - 4

	// Vertical travel limits for the paddle top cell
	MinPaddleY = 1
	MaxPaddleY = FieldHeight - PaddleHeight - 1
)

// Timing. The physics tick is deliberately slower than the frame loop so
// input and rendering stay responsive between ball steps.
const (
	TickInterval  = 100 * time.Millisecond
	FrameInterval = 20 * time.Millisecond
)

// HeaderHeight is the number of score header rows drawn above the playfield
const HeaderHeight = 2
