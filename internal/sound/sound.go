// Package sound synthesizes the game's tone effects offline at startup and
// plays them fire-and-forget through the speaker.
package sound

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate    = beep.SampleRate(44100)
	toneAmplitude = 0.5
)

// Tone parameters for the three effects.
const (
	WallHitFreq  = 440.0
	PaddleFreq   = 880.0
	ScoreFreq    = 220.0
	WallHitLen   = 100 * time.Millisecond
	PaddleHitLen = 50 * time.Millisecond
	ScoreLen     = 200 * time.Millisecond
)

// Player holds the three pre-rendered clips. A nil *Player is valid and drops
// every trigger, which is how SSH sessions and tests run silent.
type Player struct {
	wall   *beep.Buffer
	paddle *beep.Buffer
	score  *beep.Buffer
}

// NewPlayer initializes the speaker and renders the three clips. Rendering
// happens once here, never per frame.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return nil, err
	}
	return &Player{
		wall:   RenderTone(WallHitFreq, WallHitLen),
		paddle: RenderTone(PaddleFreq, PaddleHitLen),
		score:  RenderTone(ScoreFreq, ScoreLen),
	}, nil
}

// WallHit plays the low wall-bounce tone.
func (p *Player) WallHit() {
	if p == nil {
		return
	}
	p.play(p.wall)
}

// PaddleHit plays the short high paddle-bounce tone.
func (p *Player) PaddleHit() {
	if p == nil {
		return
	}
	p.play(p.paddle)
}

// Score plays the long low scoring tone.
func (p *Player) Score() {
	if p == nil {
		return
	}
	p.play(p.score)
}

// play starts a fresh streamer over the pre-rendered clip. Non-blocking; the
// speaker mixes concurrent triggers.
func (p *Player) play(b *beep.Buffer) {
	if b == nil {
		return
	}
	speaker.Play(b.Streamer(0, b.Len()))
}

// RenderTone renders a sine wave of the given frequency and duration into a
// stereo buffer (both channels identical).
func RenderTone(freq float64, d time.Duration) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(&sineTone{freq: freq, remaining: sampleRate.N(d)})
	return buf
}

// sineTone streams a fixed-length sine wave, then reports drained.
type sineTone struct {
	freq      float64
	pos       int
	remaining int
}

func (t *sineTone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.remaining <= 0 {
		return 0, false
	}
	n = len(samples)
	if n > t.remaining {
		n = t.remaining
	}
	for i := 0; i < n; i++ {
		v := toneAmplitude * math.Sin(2*math.Pi*t.freq*float64(t.pos)/float64(sampleRate))
		samples[i][0] = v
		samples[i][1] = v
		t.pos++
	}
	t.remaining -= n
	return n, true
}

func (t *sineTone) Err() error { return nil }
