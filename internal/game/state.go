// Package game implements the pong session: state, fixed-rate loop, physics
// update and frame rendering.
package game

import (
	"time"

	"github.com/tomaspav/crtpong/internal/input"
	"github.com/tomaspav/crtpong/internal/physics"
	"github.com/tomaspav/crtpong/internal/sound"
)

// Phase is the session-level state.
type Phase int

const (
	PhaseAwaitingInput Phase = iota // Attract screen, no input seen yet
	PhasePlaying                    // Active rally
	PhaseConcluded                  // A side reached the winning score
)

// State holds all game state for one session. It is owned exclusively by the
// session's loop goroutine; nothing here is shared.
type State struct {
	Paddle1 physics.Rect // Left paddle (W/S)
	Paddle2 physics.Rect // Right paddle (arrows or AI)
	Ball    physics.Rect
	VX, VY  int // Ball velocity, logical units per physics step

	Score1, Score2 int

	AIEnabled  bool // Right paddle is computer controlled
	InsertCoin bool // No input seen yet this session
	GameOver   bool // A side reached WinningScore; physics suspended
	Running    bool // Loop keeps going while true

	lastStep time.Time
	sounds   *sound.Player
}

// NewState creates the initial session state. sounds may be nil for silent
// sessions (SSH, tests).
func NewState(sounds *sound.Player) *State {
	s := &State{
		AIEnabled:  true,
		InsertCoin: true,
		Running:    true,
		sounds:     sounds,
	}
	s.resetField()
	return s
}

// resetField puts both paddles at their starting vertical centers and serves
// the ball from the field center.
func (s *State) resetField() {
	s.Paddle1 = physics.Rect{
		X: PaddleInset,
		Y: FieldHeight/2 - PaddleHeight/2,
		W: PaddleWidth,
		H: PaddleHeight,
	}
	s.Paddle2 = physics.Rect{
		X: FieldWidth - PaddleInset - PaddleWidth,
		Y: FieldHeight/2 - PaddleHeight/2,
		W: PaddleWidth,
		H: PaddleHeight,
	}
	s.serve(BallSpeed)
}

// serve recenters the ball and sets the serve velocity. vx carries the
// horizontal direction; the vertical component is always downward.
func (s *State) serve(vx int) {
	s.Ball = physics.Rect{W: BallSize, H: BallSize}
	s.Ball.SetCenter(FieldWidth/2, FieldHeight/2)
	s.VX = vx
	s.VY = BallSpeed
}

// Reset reinitializes positions, velocity, scores and flags without
// destroying the state object.
func (s *State) Reset() {
	s.resetField()
	s.Score1 = 0
	s.Score2 = 0
	s.InsertCoin = false
	s.GameOver = false
}

// Phase derives the session phase from the flags.
func (s *State) Phase() Phase {
	switch {
	case s.GameOver:
		return PhaseConcluded
	case s.InsertCoin:
		return PhaseAwaitingInput
	default:
		return PhasePlaying
	}
}

// Apply processes session commands from one input frame: quit, reset, AI
// mode selection, and the post-match restart prompt. Any key leaves the
// attract screen.
func (s *State) Apply(in input.Frame) {
	if in.Quit {
		s.Running = false
		return
	}
	if in.Reset {
		s.Reset()
	}
	if in.AIOn {
		s.AIEnabled = true
	}
	if in.AIOff {
		s.AIEnabled = false
	}
	if s.GameOver {
		if in.Confirm {
			s.Reset()
		}
		if in.Decline {
			s.Running = false
		}
	}
	if in.Any {
		s.InsertCoin = false
	}
}
