package game

import (
	"time"

	"github.com/tomaspav/crtpong/internal/input"
	"github.com/tomaspav/crtpong/internal/physics"
)

// Update advances the session by at most one physics step. Steps are
// throttled to one per UpdateInterval of wall time regardless of the render
// rate, and suspended entirely once the match has concluded. Physics also
// runs behind the attract screen, so the ball keeps bouncing until the first
// serve is played for real.
func (s *State) Update(now time.Time, in input.Frame) {
	if s.GameOver {
		return
	}
	if now.Sub(s.lastStep) < UpdateInterval {
		return
	}
	s.lastStep = now
	s.step(in)
}

// step performs one physics step: paddle movement, ball advance, collision
// resolution, scoring and the win check.
func (s *State) step(in input.Frame) {
	if in.LeftUp {
		s.Paddle1.Y -= PaddleSpeed
	}
	if in.LeftDown {
		s.Paddle1.Y += PaddleSpeed
	}
	s.Paddle1.Y = physics.Clamp(s.Paddle1.Y, 0, FieldHeight-PaddleHeight)

	if s.AIEnabled {
		s.stepAI()
	} else {
		if in.RightUp {
			s.Paddle2.Y -= PaddleSpeed
		}
		if in.RightDown {
			s.Paddle2.Y += PaddleSpeed
		}
	}
	s.Paddle2.Y = physics.Clamp(s.Paddle2.Y, 0, FieldHeight-PaddleHeight)

	s.Ball.X += s.VX
	s.Ball.Y += s.VY

	// Wall bounce. A wall and a paddle hit can both flip components in the
	// same step.
	if s.Ball.Top() <= 0 || s.Ball.Bottom() >= FieldHeight {
		s.VY = -s.VY
		s.sounds.WallHit()
	}

	// Paddle bounce: a bare sign flip, no positional correction or angle
	// change.
	if s.Ball.Intersects(s.Paddle1) || s.Ball.Intersects(s.Paddle2) {
		s.VX = -s.VX
		s.sounds.PaddleHit()
	}

	// Scoring. The serve heads away from the boundary the ball crossed.
	if s.Ball.Left() <= 0 {
		s.Score2++
		s.sounds.Score()
		s.serve(BallSpeed)
	}
	if s.Ball.Right() >= FieldWidth {
		s.Score1++
		s.sounds.Score()
		s.serve(-BallSpeed)
	}

	if s.Score1 >= WinningScore || s.Score2 >= WinningScore {
		s.GameOver = true
	}
}

// stepAI tracks the ball with the right paddle using a fixed step, ignoring
// the ball inside the deadband so the paddle does not jitter on its target.
func (s *State) stepAI() {
	diff := s.Ball.CenterY() - s.Paddle2.CenterY()
	if diff > AIDeadband {
		s.Paddle2.Y += PaddleSpeed
	}
	if diff < -AIDeadband {
		s.Paddle2.Y -= PaddleSpeed
	}
}
