// Package input reads raw terminal bytes into per-frame input state.
package input

import (
	"bufio"
	"time"
)

// keyHoldWindow is how long a movement key is considered "held" after its
// last byte. Raw terminals deliver key repeats rather than key-up events, so
// held keys are reconstructed from repeat timing.
const keyHoldWindow = 40 * time.Millisecond

// Frame is one frame's worth of input.
//
// Movement keys are level-triggered: true while the key is held. Command keys
// are edge-triggered: true only on the frame their byte arrived.
type Frame struct {
	LeftUp    bool // W: left paddle up
	LeftDown  bool // S: left paddle down
	RightUp   bool // Up arrow: right paddle up
	RightDown bool // Down arrow: right paddle down

	Quit    bool // q or escape
	Reset   bool // r
	AIOn    bool // 1
	AIOff   bool // 2
	Confirm bool // y
	Decline bool // n

	Any bool // Any byte arrived this frame
}

// heldKeys tracks the last time each movement key was seen.
type heldKeys struct {
	leftUp    time.Time
	leftDown  time.Time
	rightUp   time.Time
	rightDown time.Time
}

// Stream delivers input bytes via a channel and tracks held-key state across
// frames.
type Stream struct {
	ch      chan byte
	held    heldKeys
	pending []byte // incomplete escape sequence carried from the previous frame
}

// StartStream spawns a goroutine that reads from r and sends bytes to the
// stream. The goroutine exits (and the channel closes) when r returns an
// error, typically on EOF when the session ends.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadFrame drains all available bytes from the stream without blocking and
// returns the resulting input frame. Arrow keys arrive as CSI escape
// sequences and are decoded here.
func (s *Stream) ReadFrame() Frame {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				return s.frameAt(now, buf, true)
			}
			buf = append(buf, b)
		default:
			return s.frameAt(now, buf, false)
		}
	}
}

// frameAt parses the drained bytes and builds the frame. closed forces a quit
// when the input stream has ended.
func (s *Stream) frameAt(now time.Time, buf []byte, closed bool) Frame {
	deferred := len(s.pending)
	if deferred > 0 {
		buf = append(s.pending, buf...)
		s.pending = nil
	}

	var f Frame
	f.Quit = closed
	f.Any = len(buf) > 0

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == 0x1b {
			// CSI sequence: ESC [ <code>
			if i+2 < len(buf) && buf[i+1] == '[' {
				switch buf[i+2] {
				case 'A':
					s.held.rightUp = now
				case 'B':
					s.held.rightDown = now
				}
				i += 2
				continue
			}
			// An arrow key's bytes can straddle two drains. Hold a possibly
			// incomplete tail until the next frame before calling it a bare
			// escape; a tail that stalls with no new bytes is the real key.
			tail := i == len(buf)-1 || (i == len(buf)-2 && buf[i+1] == '[')
			if tail && !closed && len(buf) > deferred {
				s.pending = append(s.pending, buf[i:]...)
				break
			}
			f.Quit = true
			continue
		}

		switch b {
		case 'w', 'W':
			s.held.leftUp = now
		case 's', 'S':
			s.held.leftDown = now
		case 'q', 'Q':
			f.Quit = true
		case 'r', 'R':
			f.Reset = true
		case '1':
			f.AIOn = true
		case '2':
			f.AIOff = true
		case 'y', 'Y':
			f.Confirm = true
		case 'n', 'N':
			f.Decline = true
		}
	}

	f.LeftUp = now.Sub(s.held.leftUp) < keyHoldWindow
	f.LeftDown = now.Sub(s.held.leftDown) < keyHoldWindow
	f.RightUp = now.Sub(s.held.rightUp) < keyHoldWindow
	f.RightDown = now.Sub(s.held.rightDown) < keyHoldWindow
	return f
}

// ResetHeld clears held-key state, e.g. when entering a new session phase so
// stale movement does not carry over.
func (s *Stream) ResetHeld() {
	s.held = heldKeys{}
}
