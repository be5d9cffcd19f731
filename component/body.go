package component

import (
	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/vmath"
)

// BodyComponent is the positioned rectangle every entity owns
type BodyComponent struct {
	X, Y    float64 // Top-left, window pixels
	W, H    float64
	Visible bool
	Screens core.ScreenSet // Screens the entity participates in; zero = all
}

// Rect returns the bounding rectangle
func (b *BodyComponent) Rect() vmath.Rect {
	return vmath.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// Position returns the top-left corner
func (b *BodyComponent) Position() vmath.Coord {
	return vmath.Coord{X: b.X, Y: b.Y}
}

// Size returns width and height
func (b *BodyComponent) Size() vmath.Coord {
	return vmath.Coord{X: b.W, Y: b.H}
}

// ActiveOn reports whether the screen gate passes
func (b *BodyComponent) ActiveOn(s core.Screen) bool {
	return b.Screens.Contains(s)
}

// VisibleOn reports whether the entity is drawn and collidable on s
func (b *BodyComponent) VisibleOn(s core.Screen) bool {
	return b.Visible && b.Screens.Contains(s)
}
