package draw

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Game code draws in a fixed logical coordinate space; the canvas
// scales every shape to the actual terminal dimensions.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []bool // Flat slice: [y * termWidth + x] - true if pixel is lit
	dimRows        []bool // Sub-pixel rows covered by a scanline

	// Scaling from logical to pixel coordinates
	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// Logical row interval of the scanline overlay; 0 disables it.
	scanInterval int

	// Offset for centering the render area when the terminal is larger than
	// the maximum render resolution. 0-based terminal columns/rows to skip.
	offsetCol int
	offsetRow int

	renderBuf strings.Builder // Reused across frames to batch render output
}

// NewCanvas creates a canvas that scales from logical coordinates to terminal
// pixels. logicalWidth/Height define the coordinate space used by the game;
// termWidth/Height are the actual terminal dimensions.
func NewCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping the
// logical size. Safe to call every frame; reallocates only on change.
func (c *Canvas) Resize(termWidth, termHeight int) {
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.pixels = make([]bool, subPixelHeight*termWidth)
		c.dimRows = make([]bool, subPixelHeight)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
	c.markScanRows()
}

// SetScanlines enables a horizontal scanline overlay with the given logical
// row interval. Lit cells on scanline rows render dimmed, imitating a CRT
// raster. An interval of 0 disables the overlay.
func (c *Canvas) SetScanlines(interval int) {
	c.scanInterval = interval
	c.markScanRows()
}

// markScanRows marks the sub-pixel rows the scanline stripes fall on. The
// stripes are spaced in device rows: scaling the logical interval down with
// the field would put a stripe on every row, which is no pattern at all, so
// the spacing is floored at alternating rows.
func (c *Canvas) markScanRows() {
	clear(c.dimRows)
	if c.scanInterval <= 0 {
		return
	}
	spacing := int(math.Round(float64(c.scanInterval) * c.scaleY))
	if spacing < 2 {
		spacing = 2
	}
	for py := 0; py < c.subPixelHeight; py += spacing {
		c.dimRows[py] = true
	}
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at
// (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int { return c.offsetCol }

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int { return c.offsetRow }

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal sub-pixel coordinates (no scaling).
func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// lit reports whether the sub-pixel at (x, y) is set.
func (c *Canvas) lit(x, y int) bool {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return false
	}
	return c.pixels[y*c.termWidth+x]
}

// FillRect fills a rectangle given in logical coordinates. The rectangle is
// scaled to pixel space; a nonempty logical rectangle always lights at least
// one pixel so small shapes stay visible on small terminals.
func (c *Canvas) FillRect(x, y, w, h int) {
	if w <= 0 || h <= 0 {
		return
	}
	x1 := int(math.Round(float64(x) * c.scaleX))
	y1 := int(math.Round(float64(y) * c.scaleY))
	x2 := int(math.Round(float64(x+w)*c.scaleX)) - 1
	y2 := int(math.Round(float64(y+h)*c.scaleY)) - 1
	if x2 < x1 {
		x2 = x1
	}
	if y2 < y1 {
		y2 = y1
	}
	for py := y1; py <= y2; py++ {
		for px := x1; px <= x2; px++ {
			c.setPixel(px, py)
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for smooth flow over
// SSH; 1400 stays under typical MTU size.
const maxChunkSize = 1400

// Block characters used by the renderer.
const (
	BlockFull      = '█'
	BlockDark      = '▓'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Render outputs the canvas to the writer using half-block characters.
// Cells whose lit sub-pixels fall on a scanline row are drawn with the
// terminal faint attribute (full blocks additionally use the dark shade),
// which produces the dimmed raster lines of the CRT overlay.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 12) // ~12 bytes per lit cell

	for row := 0; row < c.termHeight; row++ {
		topY := row * 2
		bottomY := row*2 + 1

		for col := 0; col < c.termWidth; col++ {
			top := c.lit(col, topY)
			bottom := c.lit(col, bottomY)

			var ch rune
			switch {
			case top && bottom:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bottom:
				ch = BlockLowerHalf
			default:
				continue // Skip empty cells
			}

			dim := (top && c.dimRows[topY]) || (bottom && bottomY < c.subPixelHeight && c.dimRows[bottomY])
			if dim && ch == BlockFull {
				ch = BlockDark
			}

			if dim {
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH\033[2m%c\033[22m", row+1+c.offsetRow, col+1+c.offsetCol, ch)
			} else {
				fmt.Fprintf(&c.renderBuf, "\033[%d;%dH%c", row+1+c.offsetRow, col+1+c.offsetCol, ch)
			}
		}
	}

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the render resolution on either axis.
func (c *Canvas) RenderBorder(w io.Writer) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars

	left := c.offsetCol
	right := c.offsetCol + c.termWidth + 1
	top := c.offsetRow
	bottom := c.offsetRow + c.termHeight + 1

	var buf strings.Builder
	buf.Grow((c.termWidth+2)*2 + c.termHeight*2*12)

	if hasV {
		if hasH {
			fmt.Fprintf(&buf, "\033[%d;%dH┌%s┐", top, left, strings.Repeat("─", c.termWidth))
			fmt.Fprintf(&buf, "\033[%d;%dH└%s┘", bottom, left, strings.Repeat("─", c.termWidth))
		} else {
			fmt.Fprintf(&buf, "\033[%d;%dH%s", top, c.offsetCol+1, strings.Repeat("─", c.termWidth))
			fmt.Fprintf(&buf, "\033[%d;%dH%s", bottom, c.offsetCol+1, strings.Repeat("─", c.termWidth))
		}
	}

	if hasH {
		startRow := top + 1
		endRow := bottom
		if !hasV {
			startRow = c.offsetRow + 1
			endRow = c.offsetRow + c.termHeight + 1
		}
		for row := startRow; row < endRow; row++ {
			fmt.Fprintf(&buf, "\033[%d;%dH│\033[%d;%dH│", row, left, row, right)
		}
	}

	io.WriteString(w, buf.String())
}

// LogicalWidth returns the logical width of the drawing space.
func (c *Canvas) LogicalWidth() float64 { return c.logicalWidth }

// LogicalHeight returns the logical height of the drawing space.
func (c *Canvas) LogicalHeight() float64 { return c.logicalHeight }

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

// LogicalToTerminal converts logical coordinates to a 1-based terminal
// position (col, row). Useful for placing text overlays at positions matching
// canvas-drawn shapes.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}
