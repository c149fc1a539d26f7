package game

import (
	"bufio"
	"io"
	"time"

	"github.com/tomaspav/crtpong/internal/draw"
	"github.com/tomaspav/crtpong/internal/input"
	"github.com/tomaspav/crtpong/internal/sound"
)

// Options configures a game session.
type Options struct {
	// TermSizeFunc reports the terminal dimensions. Defaults to reading
	// os.Stdout, which is right for local play; SSH sessions supply a
	// tracker fed by window-change events.
	TermSizeFunc draw.TermSizeFunc

	// Sounds plays the tone effects. nil runs the session silent.
	Sounds *sound.Player
}

// Run starts the main game loop with the standard Input → Update → Draw
// cycle at TargetFPS, blocking until the session ends. The caller is
// responsible for having put the terminal into raw mode.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	sizeFunc := opts.TermSizeFunc
	if sizeFunc == nil {
		sizeFunc = draw.DefaultTermSizeFunc
	}

	state := NewState(opts.Sounds)
	stream := input.StartStream(r)

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	termW, termH, err := sizeFunc()
	if err != nil {
		return err
	}
	cols, rows, offCol, offRow := layout(termW, termH)
	canvas := draw.NewCanvas(cols, rows, FieldWidth, FieldHeight)
	canvas.SetScanlines(ScanlineInterval)
	canvas.SetOffset(offCol, offRow)
	cw := draw.NewChunkWriter(w, offCol, offRow)

	prevPhase := state.Phase()

	for state.Running {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		frame := stream.ReadFrame()
		state.Apply(frame)
		if p := state.Phase(); p != prevPhase {
			if p == PhasePlaying {
				stream.ResetHeld() // Stale movement must not carry into a new rally
			}
			prevPhase = p
		}

		// ===== UPDATE PHASE =====
		state.Update(frameStart, frame)

		// ===== DRAW PHASE =====
		if tw, th, err := sizeFunc(); err == nil && (tw != termW || th != termH) {
			termW, termH = tw, th
			cols, rows, offCol, offRow = layout(termW, termH)
			canvas.Resize(cols, rows)
			canvas.SetOffset(offCol, offRow)
			cw.SetOffset(offCol, offRow)
		}

		draw.ClearScreen(cw)
		canvas.RenderBorder(cw)
		state.Draw(canvas, cw)
		if err := cw.Flush(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		elapsed := time.Since(frameStart)
		if elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// layout fits the render area to the terminal while preserving the field's
// aspect (sub-pixel rows count double against cell width), capped at the
// maximum render resolution, and centers it.
func layout(termW, termH int) (cols, rows, offCol, offRow int) {
	cols = termW
	rows = termH
	if cols > maxRenderCols {
		cols = maxRenderCols
	}
	if rows > maxRenderRows {
		rows = maxRenderRows
	}

	// cols : 2*rows should match FieldWidth : FieldHeight.
	if cols*FieldHeight > 2*rows*FieldWidth {
		cols = 2 * rows * FieldWidth / FieldHeight
	} else {
		rows = cols * FieldHeight / (2 * FieldWidth)
	}
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}

	offCol = (termW - cols) / 2
	offRow = (termH - rows) / 2
	if offCol < 0 {
		offCol = 0
	}
	if offRow < 0 {
		offRow = 0
	}
	return cols, rows, offCol, offRow
}
