package game

import (
	"testing"

	"github.com/tomaspav/crtpong/internal/input"
)

// TestInitialState verifies a new session starts on the attract screen with
// the AI opponent enabled.
func TestInitialState(t *testing.T) {
	s := NewState(nil)

	if s.Phase() != PhaseAwaitingInput {
		t.Errorf("initial phase = %v, want PhaseAwaitingInput", s.Phase())
	}
	if !s.AIEnabled || !s.Running {
		t.Errorf("initial flags: AIEnabled=%v Running=%v, want both true", s.AIEnabled, s.Running)
	}
	if s.Ball.CenterX() != FieldWidth/2 || s.Ball.CenterY() != FieldHeight/2 {
		t.Error("ball does not start at field center")
	}
}

// TestApplyFirstInputLeavesAttract verifies any key leaves the attract
// screen.
func TestApplyFirstInputLeavesAttract(t *testing.T) {
	s := NewState(nil)
	s.Apply(input.Frame{Any: true})

	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %v after first input, want PhasePlaying", s.Phase())
	}
}

// TestApplyQuit verifies quit stops the session immediately.
func TestApplyQuit(t *testing.T) {
	s := NewState(nil)
	s.Apply(input.Frame{Quit: true})

	if s.Running {
		t.Error("Running = true after quit")
	}
}

// TestApplyAIToggle verifies the 1/2 mode keys.
func TestApplyAIToggle(t *testing.T) {
	s := NewState(nil)

	s.Apply(input.Frame{AIOff: true, Any: true})
	if s.AIEnabled {
		t.Error("AIEnabled = true after AIOff")
	}

	s.Apply(input.Frame{AIOn: true, Any: true})
	if !s.AIEnabled {
		t.Error("AIEnabled = false after AIOn")
	}
}

// TestApplyPostMatchPrompt verifies Y restarts and N exits, and that the
// prompt keys do nothing mid-match.
func TestApplyPostMatchPrompt(t *testing.T) {
	s := NewState(nil)
	s.GameOver = true
	s.Score1 = WinningScore

	s.Apply(input.Frame{Confirm: true, Any: true})
	if s.GameOver || s.Score1 != 0 {
		t.Errorf("confirm did not restart: GameOver=%v Score1=%d", s.GameOver, s.Score1)
	}
	if !s.Running {
		t.Error("confirm stopped the session")
	}

	s.GameOver = true
	s.Apply(input.Frame{Decline: true, Any: true})
	if s.Running {
		t.Error("decline did not stop the session")
	}

	s = NewState(nil)
	s.Apply(input.Frame{Confirm: true, Decline: true, Any: true})
	if !s.Running {
		t.Error("prompt keys acted outside the concluded phase")
	}
}

// TestApplyReset verifies the reset key works in any phase.
func TestApplyReset(t *testing.T) {
	s := NewState(nil)
	s.Score1, s.Score2 = 3, 2
	s.GameOver = true

	s.Apply(input.Frame{Reset: true, Any: true})

	if s.Score1 != 0 || s.Score2 != 0 || s.GameOver {
		t.Errorf("reset left score %d-%d GameOver=%v", s.Score1, s.Score2, s.GameOver)
	}
	if s.Phase() != PhasePlaying {
		t.Errorf("phase = %v after reset, want PhasePlaying", s.Phase())
	}
}
