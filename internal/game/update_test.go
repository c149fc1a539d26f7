package game

import (
	"testing"
	"time"

	"github.com/tomaspav/crtpong/internal/input"
	"github.com/tomaspav/crtpong/internal/physics"
)

// TestBallAdvance verifies that a free-flying ball moves by exactly its
// velocity vector in one step.
func TestBallAdvance(t *testing.T) {
	s := NewState(nil)
	prior := s.Ball

	s.step(input.Frame{})

	if s.Ball.X != prior.X+s.VX || s.Ball.Y != prior.Y+s.VY {
		t.Errorf("ball = (%d,%d), want (%d,%d)", s.Ball.X, s.Ball.Y, prior.X+s.VX, prior.Y+s.VY)
	}
	if s.VX != BallSpeed || s.VY != BallSpeed {
		t.Errorf("velocity changed to (%d,%d) with no collision", s.VX, s.VY)
	}
}

// TestWallBounce verifies the vertical flip fires exactly when the ball
// crosses the top or bottom bound.
func TestWallBounce(t *testing.T) {
	s := NewState(nil)
	s.Ball.Y = FieldHeight - BallSize - 2 // bottom crosses after one step
	s.step(input.Frame{})
	if s.VY != -BallSpeed {
		t.Errorf("VY = %d after bottom wall, want %d", s.VY, -BallSpeed)
	}

	s = NewState(nil)
	s.VY = -BallSpeed
	s.Ball.Y = 2 // top crosses after one step
	s.step(input.Frame{})
	if s.VY != BallSpeed {
		t.Errorf("VY = %d after top wall, want %d", s.VY, BallSpeed)
	}

	// No crossing, no flip
	s = NewState(nil)
	s.Ball.Y = FieldHeight / 4
	s.step(input.Frame{})
	if s.VY != BallSpeed {
		t.Errorf("VY = %d without wall contact, want %d", s.VY, BallSpeed)
	}
}

// TestPaddleBounce verifies the horizontal flip fires exactly when the ball
// overlaps a paddle.
func TestPaddleBounce(t *testing.T) {
	s := NewState(nil)
	s.Ball.Y = s.Paddle2.Y + PaddleHeight/2 - BallSize/2 // aligned with paddle center
	s.Ball.X = s.Paddle2.X - BallSize                    // touches after one step

	s.step(input.Frame{})

	if s.VX != -BallSpeed {
		t.Errorf("VX = %d after right paddle hit, want %d", s.VX, -BallSpeed)
	}

	// Ball passing at paddle height but far from it: no flip
	s = NewState(nil)
	s.Ball.X = FieldWidth / 4
	s.step(input.Frame{})
	if s.VX != BallSpeed {
		t.Errorf("VX = %d without paddle contact, want %d", s.VX, BallSpeed)
	}
}

// TestSimultaneousWallAndPaddle verifies both components can flip in the
// same step.
func TestSimultaneousWallAndPaddle(t *testing.T) {
	s := NewState(nil)
	s.Paddle2.Y = FieldHeight - PaddleHeight
	s.Ball.X = s.Paddle2.X - BallSize
	s.Ball.Y = FieldHeight - BallSize - 2

	s.step(input.Frame{})

	if s.VX != -BallSpeed || s.VY != -BallSpeed {
		t.Errorf("velocity = (%d,%d), want (%d,%d)", s.VX, s.VY, -BallSpeed, -BallSpeed)
	}
}

// TestScoreLeftBoundary verifies a left exit scores for the right player and
// serves rightward from the field center.
func TestScoreLeftBoundary(t *testing.T) {
	s := NewState(nil)
	s.VX = -BallSpeed
	s.Ball.X = 2
	s.Ball.Y = FieldHeight / 4 // clear of both paddles

	s.step(input.Frame{})

	if s.Score2 != 1 || s.Score1 != 0 {
		t.Errorf("score = %d-%d, want 0-1", s.Score1, s.Score2)
	}
	if s.Ball.CenterX() != FieldWidth/2 || s.Ball.CenterY() != FieldHeight/2 {
		t.Errorf("ball center = (%d,%d), want field center", s.Ball.CenterX(), s.Ball.CenterY())
	}
	if s.VX != BallSpeed || s.VY != BallSpeed {
		t.Errorf("serve velocity = (%d,%d), want (%d,%d)", s.VX, s.VY, BallSpeed, BallSpeed)
	}
}

// TestScoreRightBoundary verifies a right exit scores for the left player
// and serves leftward.
func TestScoreRightBoundary(t *testing.T) {
	s := NewState(nil)
	s.Ball.X = FieldWidth - BallSize - 2
	s.Ball.Y = FieldHeight / 4

	s.step(input.Frame{})

	if s.Score1 != 1 || s.Score2 != 0 {
		t.Errorf("score = %d-%d, want 1-0", s.Score1, s.Score2)
	}
	if s.VX != -BallSpeed || s.VY != BallSpeed {
		t.Errorf("serve velocity = (%d,%d), want (%d,%d)", s.VX, s.VY, -BallSpeed, BallSpeed)
	}
}

// TestMatchConcludes verifies the match concludes exactly when a score
// reaches the winning threshold and that further updates change nothing.
func TestMatchConcludes(t *testing.T) {
	s := NewState(nil)
	s.Score1 = WinningScore - 1
	s.Ball.X = FieldWidth - BallSize - 2
	s.Ball.Y = FieldHeight / 4

	s.step(input.Frame{})

	if s.Score1 != WinningScore {
		t.Fatalf("Score1 = %d, want %d", s.Score1, WinningScore)
	}
	if !s.GameOver {
		t.Fatal("GameOver = false after reaching winning score")
	}

	frozen := *s
	s.Update(time.Now().Add(time.Second), input.Frame{LeftUp: true})
	if *s != frozen {
		t.Error("state changed by Update after match concluded")
	}
}

// TestUpdateThrottle verifies at most one physics step per UpdateInterval.
func TestUpdateThrottle(t *testing.T) {
	s := NewState(nil)
	now := time.Now()
	prior := s.Ball

	s.Update(now, input.Frame{})
	s.Update(now.Add(time.Millisecond), input.Frame{})

	want := prior.X + BallSpeed
	if s.Ball.X != want {
		t.Errorf("ball X = %d after back-to-back updates, want %d (one step)", s.Ball.X, want)
	}

	s.Update(now.Add(UpdateInterval+time.Millisecond), input.Frame{})
	if s.Ball.X != want+BallSpeed {
		t.Errorf("ball X = %d after interval elapsed, want %d", s.Ball.X, want+BallSpeed)
	}
}

// TestReset verifies reset restores scores, paddle centers, ball position
// and session flags.
func TestReset(t *testing.T) {
	s := NewState(nil)
	s.Score1, s.Score2 = 5, 3
	s.GameOver = true
	s.Paddle1.Y = 0
	s.Paddle2.Y = FieldHeight - PaddleHeight
	s.Ball.SetCenter(10, 10)
	s.VX, s.VY = -BallSpeed, -BallSpeed

	s.Reset()

	if s.Score1 != 0 || s.Score2 != 0 {
		t.Errorf("score = %d-%d after reset, want 0-0", s.Score1, s.Score2)
	}
	wantY := FieldHeight/2 - PaddleHeight/2
	if s.Paddle1.Y != wantY || s.Paddle2.Y != wantY {
		t.Errorf("paddle Y = %d/%d after reset, want %d", s.Paddle1.Y, s.Paddle2.Y, wantY)
	}
	if s.Ball.CenterX() != FieldWidth/2 || s.Ball.CenterY() != FieldHeight/2 {
		t.Errorf("ball center = (%d,%d) after reset, want field center", s.Ball.CenterX(), s.Ball.CenterY())
	}
	if s.VX != BallSpeed || s.VY != BallSpeed {
		t.Errorf("velocity = (%d,%d) after reset, want (%d,%d)", s.VX, s.VY, BallSpeed, BallSpeed)
	}
	if s.GameOver || s.InsertCoin {
		t.Error("session flags not cleared by reset")
	}
}

// TestAIDeadband verifies the AI paddle moves only when the ball center is
// more than the deadband away from the paddle center.
func TestAIDeadband(t *testing.T) {
	cases := []struct {
		name   string
		offset int // ball center relative to paddle center
		want   int // paddle movement
	}{
		{"aligned", 0, 0},
		{"inside deadband below", AIDeadband, 0},
		{"inside deadband above", -AIDeadband, 0},
		{"outside deadband below", AIDeadband + 1, PaddleSpeed},
		{"outside deadband above", -(AIDeadband + 1), -PaddleSpeed},
	}

	for _, tc := range cases {
		s := NewState(nil)
		s.Ball.X = FieldWidth / 4 // away from walls and paddles
		s.Ball.SetCenter(FieldWidth/4, s.Paddle2.CenterY()+tc.offset)
		priorY := s.Paddle2.Y

		s.stepAI()

		if got := s.Paddle2.Y - priorY; got != tc.want {
			t.Errorf("%s: paddle moved %d, want %d", tc.name, got, tc.want)
		}
	}
}

// TestPaddleClamp verifies a held key cannot push a paddle past the field
// bounds.
func TestPaddleClamp(t *testing.T) {
	s := NewState(nil)
	s.AIEnabled = false
	s.Paddle1.Y = 1
	s.Paddle2.Y = FieldHeight - PaddleHeight - 1

	s.step(input.Frame{LeftUp: true, RightDown: true})

	if s.Paddle1.Y != 0 {
		t.Errorf("Paddle1.Y = %d, want clamped to 0", s.Paddle1.Y)
	}
	if s.Paddle2.Y != FieldHeight-PaddleHeight {
		t.Errorf("Paddle2.Y = %d, want clamped to %d", s.Paddle2.Y, FieldHeight-PaddleHeight)
	}
}

// TestTwoPlayerControls verifies arrow input drives the right paddle when AI
// is off and is ignored when AI is on.
func TestTwoPlayerControls(t *testing.T) {
	s := NewState(nil)
	s.AIEnabled = false
	priorY := s.Paddle2.Y

	s.step(input.Frame{RightUp: true})
	if s.Paddle2.Y != priorY-PaddleSpeed {
		t.Errorf("Paddle2.Y = %d, want %d", s.Paddle2.Y, priorY-PaddleSpeed)
	}

	s = NewState(nil)
	s.Ball = physics.Rect{X: FieldWidth / 4, Y: s.Paddle2.CenterY() - BallSize/2, W: BallSize, H: BallSize}
	priorY = s.Paddle2.Y
	s.step(input.Frame{RightUp: true})
	if s.Paddle2.Y != priorY {
		t.Errorf("Paddle2.Y = %d with AI on, want unchanged %d", s.Paddle2.Y, priorY)
	}
}
