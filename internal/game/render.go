package game

import (
	"fmt"

	"github.com/tomaspav/crtpong/internal/draw"
)

// Draw projects the current state onto the canvas and queues text overlays
// on the writer. It never mutates game state.
func (s *State) Draw(c *draw.Canvas, w *draw.ChunkWriter) {
	c.Clear()

	c.FillRect(s.Paddle1.X, s.Paddle1.Y, s.Paddle1.W, s.Paddle1.H)
	c.FillRect(s.Paddle2.X, s.Paddle2.Y, s.Paddle2.W, s.Paddle2.H)
	c.FillRect(s.Ball.X, s.Ball.Y, s.Ball.W, s.Ball.H)

	// Dashed center line
	for y := 0; y < FieldHeight; y += CenterLineStep {
		c.FillRect(FieldWidth/2-CenterLineSize/2, y, CenterLineSize, CenterLineSize)
	}

	c.Render(w)

	// Text overlays go on top of the rendered canvas.
	s.drawOverlays(c, w)
}

// drawOverlays writes the scoreboard and the phase prompts.
func (s *State) drawOverlays(c *draw.Canvas, w *draw.ChunkWriter) {
	writeCentered(c, w, float64(ScoreTextY), fmt.Sprintf("%d - %d", s.Score1, s.Score2))

	switch s.Phase() {
	case PhaseAwaitingInput:
		writeCentered(c, w, FieldHeight/2, "INSERT COIN")
	case PhaseConcluded:
		writeCentered(c, w, FieldHeight/2, "PLAY AGAIN? Y/N")
	}
}

// writeCentered writes text horizontally centered at the given logical row.
func writeCentered(c *draw.Canvas, w *draw.ChunkWriter, y float64, text string) {
	col, row := c.LogicalToTerminal(FieldWidth/2, y)
	col -= len(text) / 2
	if col < 1 {
		col = 1
	}
	w.WriteAt(col, row, text)
}
