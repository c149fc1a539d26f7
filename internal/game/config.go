package game

import "time"

// Game configuration constants.
// All tunable game parameters are centralized here for easy adjustment.

// Field and object dimensions (logical units).
const (
	FieldWidth  = 640
	FieldHeight = 480

	PaddleWidth  = 10
	PaddleHeight = 60
	BallSize     = 10

	// Distance from a field edge to its paddle's outer face.
	PaddleInset = 50
)

// Movement pacing. These are "feel" constants tuned to the original
// cabinet's choppiness; do not infer intent from the numbers.
const (
	PaddleSpeed = 3
	BallSpeed   = 4

	// AIDeadband is the distance from the ball's vertical center to the AI
	// paddle's center within which the AI does not react, avoiding jitter.
	AIDeadband = 30

	// UpdateInterval throttles physics to one effective step per interval of
	// wall time, decoupled from the render tick.
	UpdateInterval = 32 * time.Millisecond
)

// Session
const (
	WinningScore = 5
)

// Frame timing
const (
	TargetFPS       = 60
	targetFrameTime = time.Second / TargetFPS
)

// Presentation
const (
	// ScanlineInterval is the logical row spacing of the CRT scanline overlay.
	ScanlineInterval = 4

	// Dashed center line: a CenterLineSize square every CenterLineStep rows.
	CenterLineStep = 10
	CenterLineSize = 4

	// ScoreTextY is the logical row of the score readout.
	ScoreTextY = 20

	// Maximum render area in terminal cells. Larger terminals get a centered
	// field with a border. 128x48 keeps the 4:3 field aspect with half-block
	// sub-pixel rows counting double.
	maxRenderCols = 128
	maxRenderRows = 48
)
