package component

import "github.com/lixenwraith/space-invaders/core"

// SpriteComponent marks an entity as drawable
// Text takes precedence over Image; with neither set a filled rectangle is drawn,
// in Color unless Color is black, which falls back to the window rect color
type SpriteComponent struct {
	Image string
	Text  string
	Color core.RGB
}
