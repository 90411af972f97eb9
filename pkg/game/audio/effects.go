// Package audio plays synthesized sound cues for game events. Tones
// are generated by oscillator streamers, not sampled: there are no
// asset files.
package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a game event with a sound.
type Cue int

// Cue constants
const (
	CueKey Cue = iota
	CueDoor
	CueLost
	CueWin
)

// Player synthesizes and plays cues. A Player whose speaker failed to
// open swallows Play calls.
type Player struct {
	mu    sync.Mutex
	ready bool
}

// NewPlayer creates an uninitialized audio player
func NewPlayer() *Player {
	return &Player{}
}

// Init opens the speaker.
func (p *Player) Init() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}
	p.mu.Lock()
	p.ready = true
	p.mu.Unlock()
	return nil
}

// Play schedules the cue asynchronously; it never blocks the turn
// loop.
func (p *Player) Play(c Cue) {
	p.mu.Lock()
	ready := p.ready
	p.mu.Unlock()
	if !ready {
		return
	}

	switch c {
	case CueKey:
		speaker.Play(tone(880, 90*time.Millisecond))
	case CueDoor:
		speaker.Play(beep.Seq(
			tone(440, 70*time.Millisecond),
			tone(660, 70*time.Millisecond)))
	case CueLost:
		speaker.Play(tone(110, 400*time.Millisecond))
	case CueWin:
		speaker.Play(beep.Seq(
			tone(523, 120*time.Millisecond),
			tone(659, 120*time.Millisecond),
			tone(784, 200*time.Millisecond)))
	}
}

// tone returns a sine streamer at freq for the given duration.
func tone(freq float64, d time.Duration) beep.Streamer {
	return &sine{freq: freq, remaining: sampleRate.N(d)}
}

// sine generates a fixed-length sine wave at modest volume.
type sine struct {
	freq      float64
	phase     float64
	remaining int
}

func (s *sine) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.remaining <= 0 {
			return i, false
		}
		v := math.Sin(2*math.Pi*s.phase) * 0.3
		samples[i][0] = v
		samples[i][1] = v
		s.phase += s.freq / float64(sampleRate)
		s.phase -= math.Floor(s.phase)
		s.remaining--
	}
	return len(samples), true
}

func (s *sine) Err() error { return nil }
