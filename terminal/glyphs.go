package terminal

import "github.com/lixenwraith/space-invaders/core"

// Glyph is how an image name renders in cells
// Backdrops paint their background and leave the rune blank
type Glyph struct {
	Rune     rune
	FG, BG   core.RGB
	Backdrop bool
}

// DefaultGlyphs covers the image names the default config and level table use
var DefaultGlyphs = map[string]Glyph{
	"bg_main":   {Rune: ' ', BG: core.RGB{R: 8, G: 8, B: 24}, Backdrop: true},
	"bg_level1": {Rune: ' ', BG: core.RGB{R: 0, G: 10, B: 30}, Backdrop: true},
	"bg_level2": {Rune: ' ', BG: core.RGB{R: 20, G: 0, B: 30}, Backdrop: true},
	"bg_level3": {Rune: ' ', BG: core.RGB{R: 30, G: 4, B: 4}, Backdrop: true},

	"player_level1": {Rune: '▲', FG: core.RGB{R: 120, G: 220, B: 255}},
	"player_level2": {Rune: '▲', FG: core.RGB{R: 140, G: 255, B: 160}},
	"player_level3": {Rune: '▲', FG: core.RGB{R: 255, G: 230, B: 120}},

	"enemy_frigate": {Rune: 'W', FG: core.RGB{R: 200, G: 200, B: 200}},
	"enemy_carrier": {Rune: 'M', FG: core.RGB{R: 255, G: 140, B: 40}},
	"enemy_buff":    {Rune: '#', FG: core.RGB{R: 255, G: 60, B: 200}},

	"bullet_player":  {Rune: '|', FG: core.RGBGreen},
	"bullet_frigate": {Rune: '!', FG: core.RGB{R: 220, G: 220, B: 220}},
	"bullet_carrier": {Rune: '*', FG: core.RGB{R: 255, G: 160, B: 60}},
	"bullet_buff":    {Rune: 'o', FG: core.RGB{R: 255, G: 80, B: 220}},
}

var unknownGlyph = Glyph{Rune: '?', FG: core.RGBRed}
