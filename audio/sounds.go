package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// recipe builds a fresh one-shot streamer
type recipe func(rate beep.SampleRate) beep.Streamer

// sounds maps effect names used by the level table to their synthesis
var sounds = map[string]recipe{
	"shot_level1": func(rate beep.SampleRate) beep.Streamer {
		d := 90 * time.Millisecond
		return newEnvelope(newOscillator(880, 440, d, WaveSquare, rate), d, 2*time.Millisecond, 60*time.Millisecond, rate)
	},
	"shot_level2": func(rate beep.SampleRate) beep.Streamer {
		d := 110 * time.Millisecond
		return newEnvelope(newOscillator(1200, 300, d, WaveSaw, rate), d, 2*time.Millisecond, 80*time.Millisecond, rate)
	},
	"shot_level3": func(rate beep.SampleRate) beep.Streamer {
		d := 120 * time.Millisecond
		zap := newEnvelope(newOscillator(1600, 200, d, WaveSquare, rate), d, time.Millisecond, 90*time.Millisecond, rate)
		hiss := newVolume(newEnvelope(newOscillator(1, 1, d, WaveNoise, rate), d, time.Millisecond, 100*time.Millisecond, rate), 0.3)
		return beep.Mix(zap, hiss)
	},
	"finish": func(rate beep.SampleRate) beep.Streamer {
		step := 120 * time.Millisecond
		var parts []beep.Streamer
		for _, f := range []float64{523.25, 659.25, 783.99, 1046.5} {
			parts = append(parts, newEnvelope(newOscillator(f, f, step, WaveSine, rate), step, 5*time.Millisecond, 40*time.Millisecond, rate))
		}
		return beep.Seq(parts...)
	},
}

// blip stands in for names without a recipe
func blip(rate beep.SampleRate) beep.Streamer {
	d := 60 * time.Millisecond
	return newEnvelope(newOscillator(660, 660, d, WaveSine, rate), d, 2*time.Millisecond, 30*time.Millisecond, rate)
}

// Sound returns a fresh streamer for name and whether a recipe exists
func Sound(name string, rate beep.SampleRate) (beep.Streamer, bool) {
	if r, ok := sounds[name]; ok {
		return r(rate), true
	}
	return blip(rate), false
}
