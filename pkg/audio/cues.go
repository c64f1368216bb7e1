// pkg/audio/cues.go
package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/opd-ai/go-asteroids/pkg/rng"
)

// tone plays a sine at freq for d. Frequencies the sample rate cannot
// carry fall back to silence.
func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := sr.N(d)
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return generators.Silence(n)
	}
	return beep.Take(n, sine)
}

// Decay fades a streamer with an exponential envelope, exp(-rate·t).
type Decay struct {
	Streamer beep.Streamer
	Rate     float64
	sr       beep.SampleRate
	pos      int
}

// NewDecay wraps s in an exponential fade
func NewDecay(sr beep.SampleRate, rate float64, s beep.Streamer) *Decay {
	return &Decay{Streamer: s, Rate: rate, sr: sr}
}

func (d *Decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.Streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.pos) / float64(d.sr)
		env := math.Exp(-d.Rate * t)
		samples[i][0] *= env
		samples[i][1] *= env
		d.pos++
	}
	return n, ok
}

func (d *Decay) Err() error {
	return d.Streamer.Err()
}

// Noise is white noise drawn from an rng.Source.
type Noise struct {
	src rng.Source
}

// NewNoise creates a noise generator
func NewNoise(src rng.Source) *Noise {
	return &Noise{src: src}
}

func (g *Noise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		v := g.src.Float64()*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (g *Noise) Err() error {
	return nil
}

// FireSound is a short high chirp.
func FireSound(sr beep.SampleRate) beep.Streamer {
	return &effects.Gain{
		Streamer: NewDecay(sr, 30, tone(sr, 880, 80*time.Millisecond)),
		Gain:     -0.7,
	}
}

// ExplosionSound is a burst of noise; larger tiers ring longer.
func ExplosionSound(sr beep.SampleRate, src rng.Source, tier int) beep.Streamer {
	if tier < 1 {
		tier = 1
	}
	d := time.Duration(100+100*tier) * time.Millisecond
	rumble := tone(sr, 60+20*float64(tier), d)
	crackle := beep.Take(sr.N(d), NewNoise(src))
	return &effects.Gain{
		Streamer: NewDecay(sr, 12/float64(tier), beep.Mix(crackle, rumble)),
		Gain:     -0.6,
	}
}

// CraftLostSound is a falling low buzz.
func CraftLostSound(sr beep.SampleRate) beep.Streamer {
	return &effects.Gain{
		Streamer: beep.Seq(
			tone(sr, 220, 120*time.Millisecond),
			NewDecay(sr, 6, tone(sr, 110, 400*time.Millisecond)),
		),
		Gain: -0.5,
	}
}

// JingleSound is the end-of-run phrase, rising when the run was won.
func JingleSound(sr beep.SampleRate, won bool) beep.Streamer {
	notes := []float64{784, 659, 523}
	if won {
		notes = []float64{523, 659, 784}
	}
	parts := make([]beep.Streamer, 0, len(notes))
	for i, f := range notes {
		d := 140 * time.Millisecond
		if i == len(notes)-1 {
			d = 320 * time.Millisecond
		}
		parts = append(parts, NewDecay(sr, 4, tone(sr, f, d)))
	}
	return &effects.Gain{Streamer: beep.Seq(parts...), Gain: -0.6}
}
