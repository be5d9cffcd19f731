package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// note is a pitch held for beats; zero pitch is a rest
type note struct {
	freq  float64
	beats int
}

type pattern struct {
	beat  time.Duration
	gain  float64
	notes []note
}

// patterns maps track names to their loop
var patterns = map[string]pattern{
	"welcome": {beat: 250 * time.Millisecond, gain: 0.25, notes: []note{
		{220, 2}, {261.63, 2}, {329.63, 2}, {261.63, 2}, {196, 2}, {246.94, 2}, {293.66, 4},
	}},
	"level1": {beat: 200 * time.Millisecond, gain: 0.2, notes: []note{
		{110, 1}, {0, 1}, {103.83, 1}, {0, 1}, {98, 1}, {0, 1}, {92.5, 1}, {0, 1},
	}},
	"level2": {beat: 160 * time.Millisecond, gain: 0.2, notes: []note{
		{130.81, 1}, {0, 1}, {123.47, 1}, {0, 1}, {116.54, 1}, {0, 1}, {110, 1}, {0, 1},
	}},
	"level3": {beat: 120 * time.Millisecond, gain: 0.2, notes: []note{
		{146.83, 1}, {0, 1}, {138.59, 1}, {0, 1}, {130.81, 1}, {0, 1}, {123.47, 1}, {0, 1},
	}},
	"gameover": {beat: 400 * time.Millisecond, gain: 0.25, notes: []note{
		{196, 2}, {185, 2}, {174.61, 2}, {164.81, 6}, {0, 4},
	}},
}

// Track returns an endless streamer for name and whether a pattern exists
func Track(name string, rate beep.SampleRate) (beep.Streamer, bool) {
	p, ok := patterns[name]
	if !ok || len(p.notes) == 0 {
		return beep.Silence(-1), false
	}
	return newVolume(newLooper(func() beep.Streamer { return p.build(rate) }), p.gain), true
}

func (p pattern) build(rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(p.notes))
	for _, n := range p.notes {
		d := p.beat * time.Duration(n.beats)
		if n.freq <= 0 {
			parts = append(parts, beep.Silence(rate.N(d)))
			continue
		}
		tone, err := generators.SineTone(rate, n.freq)
		if err != nil {
			// Above Nyquist; keep the rhythm
			parts = append(parts, beep.Silence(rate.N(d)))
			continue
		}
		parts = append(parts, newEnvelope(beep.Take(rate.N(d), tone), d, 10*time.Millisecond, d/3, rate))
	}
	return beep.Seq(parts...)
}
