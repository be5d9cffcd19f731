package engine

import (
	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/vmath"
)

// Renderer draws in window pixel coordinates
type Renderer interface {
	Clear()
	DrawImage(image string, r vmath.Rect)
	FillRect(r vmath.Rect, color core.RGB)
	// DrawText centers text in r when r.W > 0, otherwise starts it at (r.X, r.Y)
	DrawText(r vmath.Rect, text string, color core.RGB)
	// Scale notifies the backend an image is now drawn at w x h
	Scale(image string, w, h float64)
	Present()
}

// Audio plays named sounds and background tracks
type Audio interface {
	Play(sound string)
	// SwitchTrack replaces the looping background track; "" stops it
	SwitchTrack(track string)
}

// Balance lets a script tune combat numbers at runtime
type Balance interface {
	// FireChance returns the per-frame fire probability for an enemy
	// given its class base chance and how many enemies remain out of the level total
	FireChance(base float64, remaining, total int) float64
	// HitScore returns the points credited for destroying an enemy worth points
	HitScore(points int, screen core.Screen) int
}

type NopRenderer struct{}

func (NopRenderer) Clear()                                {}
func (NopRenderer) DrawImage(string, vmath.Rect)          {}
func (NopRenderer) FillRect(vmath.Rect, core.RGB)         {}
func (NopRenderer) DrawText(vmath.Rect, string, core.RGB) {}
func (NopRenderer) Scale(string, float64, float64)        {}
func (NopRenderer) Present()                              {}

type NopAudio struct{}

func (NopAudio) Play(string)        {}
func (NopAudio) SwitchTrack(string) {}

// DefaultBalance passes class values through unchanged
type DefaultBalance struct{}

func (DefaultBalance) FireChance(base float64, _, _ int) float64 { return base }
func (DefaultBalance) HitScore(points int, _ core.Screen) int    { return points }
