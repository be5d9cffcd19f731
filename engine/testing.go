package engine

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lixenwraith/space-invaders/config"
	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/vmath"
)

// TestEpoch is the start time of every test world's mock clock
var TestEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// TestWorld bundles a world with recording collaborators and a mock clock
type TestWorld struct {
	*World
	Time     *MockTimeProvider
	Render   *RecordingRenderer
	Sounds   *RecordingAudio
	Defaults *config.Config
}

// NewTestWorld creates a world with default config and embedded levels
// Panics on config errors since the defaults are compiled in
func NewTestWorld(log *zap.Logger) *TestWorld {
	cfg := config.Defaults()
	levels, err := config.LoadLevels("")
	if err != nil {
		panic(fmt.Sprintf("embedded levels: %v", err))
	}
	mock := NewMockTimeProvider(TestEpoch)
	render := &RecordingRenderer{}
	sounds := &RecordingAudio{}

	w := NewWorld(Deps{
		Config:   cfg,
		Levels:   levels,
		Time:     mock,
		Rand:     vmath.NewFastRand(42),
		Renderer: render,
		Audio:    sounds,
		Log:      log,
	})
	return &TestWorld{World: w, Time: mock, Render: render, Sounds: sounds, Defaults: cfg}
}

// DrawCall is one recorded Renderer call
type DrawCall struct {
	Op    string // "image", "fill", "text"
	Name  string // Image name or text
	Rect  vmath.Rect
	Color core.RGB
}

// RecordingRenderer keeps the calls of the last frame
type RecordingRenderer struct {
	Calls    []DrawCall
	Scaled   map[string][2]float64
	Presents int
}

func (r *RecordingRenderer) Clear() { r.Calls = r.Calls[:0] }

func (r *RecordingRenderer) DrawImage(image string, rect vmath.Rect) {
	r.Calls = append(r.Calls, DrawCall{Op: "image", Name: image, Rect: rect})
}

func (r *RecordingRenderer) FillRect(rect vmath.Rect, color core.RGB) {
	r.Calls = append(r.Calls, DrawCall{Op: "fill", Rect: rect, Color: color})
}

func (r *RecordingRenderer) DrawText(rect vmath.Rect, text string, color core.RGB) {
	r.Calls = append(r.Calls, DrawCall{Op: "text", Name: text, Rect: rect, Color: color})
}

func (r *RecordingRenderer) Scale(image string, w, h float64) {
	if r.Scaled == nil {
		r.Scaled = make(map[string][2]float64)
	}
	r.Scaled[image] = [2]float64{w, h}
}

func (r *RecordingRenderer) Present() { r.Presents++ }

// RecordingAudio keeps every sound played and track switched
type RecordingAudio struct {
	Played []string
	Tracks []string
}

func (a *RecordingAudio) Play(sound string)        { a.Played = append(a.Played, sound) }
func (a *RecordingAudio) SwitchTrack(track string) { a.Tracks = append(a.Tracks, track) }

// Count returns how many times sound was played
func (a *RecordingAudio) Count(sound string) int {
	n := 0
	for _, s := range a.Played {
		if s == sound {
			n++
		}
	}
	return n
}
