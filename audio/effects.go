package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Effects plays one-shot feedback tones for physics events. It satisfies
// the engine's Effects interface. Before a successful Init every call is
// a silent no-op, so the game runs fine without audio
type Effects struct {
	enabled bool
}

// NewEffects creates a silent, uninitialized effects player
func NewEffects() *Effects {
	return &Effects{}
}

// Init opens the speaker. Failure is non-fatal; the player stays silent
func (e *Effects) Init() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	if err == nil {
		e.enabled = true
	}
	return err
}

// Bounce plays a short blip for wall and paddle bounces
func (e *Effects) Bounce() {
	e.play(880, 50*time.Millisecond)
}

// Score plays a lower chime when a point is scored
func (e *Effects) Score(player int) {
	e.play(440, 150*time.Millisecond)
}

func (e *Effects) play(freq float64, d time.Duration) {
	if !e.enabled {
		return
	}
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

// Close releases the speaker if it was opened
func (e *Effects) Close() {
	if e.enabled {
		speaker.Close()
	}
}
