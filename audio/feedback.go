package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// bumpCooldown keeps a held key against a wall from retriggering the
// tone every frame
const bumpCooldown = 250 * time.Millisecond

// Sound plays short procedural feedback tones through the speaker.
// A disabled Sound is a no-op, so callers never need to branch.
type Sound struct {
	enabled  bool
	lastBump time.Time
}

// NewSound initializes the speaker. Initialization failure is not fatal:
// the game runs silently, matching the mute flag behavior.
func NewSound(mute bool) *Sound {
	if mute {
		return &Sound{}
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Sound{}
	}
	return &Sound{enabled: true}
}

// Muted returns a Sound that plays nothing.
func Muted() *Sound {
	return &Sound{}
}

// Bump plays a short low tone when a move is rejected by a wall.
func (s *Sound) Bump() {
	if !s.enabled {
		return
	}
	now := time.Now()
	if now.Sub(s.lastBump) < bumpCooldown {
		return
	}
	s.lastBump = now
	s.play(220, 40*time.Millisecond)
}

// Close shuts the speaker down.
func (s *Sound) Close() {
	if s.enabled {
		speaker.Close()
	}
}

func (s *Sound) play(freq float64, d time.Duration) {
	tone, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), tone))
}
