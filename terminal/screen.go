package terminal

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/vmath"
)

// Screen renders window pixel coordinates onto a tcell screen
// The window maps onto the full terminal, so cells are not square
type Screen struct {
	screen tcell.Screen
	width  float64
	height float64
	glyphs map[string]Glyph
	scaled map[string][2]float64
}

// NewScreen wraps an initialized tcell screen; glyphs nil uses DefaultGlyphs
func NewScreen(screen tcell.Screen, width, height float64, glyphs map[string]Glyph) *Screen {
	if glyphs == nil {
		glyphs = DefaultGlyphs
	}
	return &Screen{
		screen: screen,
		width:  width,
		height: height,
		glyphs: glyphs,
		scaled: make(map[string][2]float64),
	}
}

func color(c core.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cells returns the half-open cell range covering r, at least one cell, clipped to the terminal
func (s *Screen) cells(r vmath.Rect) (x0, y0, x1, y1 int) {
	cols, rows := s.screen.Size()
	sx := float64(cols) / s.width
	sy := float64(rows) / s.height

	x0 = int(math.Floor(r.X * sx))
	y0 = int(math.Floor(r.Y * sy))
	x1 = int(math.Ceil(r.Right() * sx))
	y1 = int(math.Ceil(r.Bottom() * sy))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return max(x0, 0), max(y0, 0), min(x1, cols), min(y1, rows)
}

// background returns what is already painted under (x, y)
func (s *Screen) background(x, y int) tcell.Color {
	_, _, style, _ := s.screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func (s *Screen) Clear() {
	s.screen.Clear()
}

// DrawImage paints the glyph for image over r, keeping the backdrop behind sprites
func (s *Screen) DrawImage(image string, r vmath.Rect) {
	g, ok := s.glyphs[image]
	if !ok {
		g = unknownGlyph
	}
	x0, y0, x1, y1 := s.cells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			style := tcell.StyleDefault
			if g.Backdrop {
				style = style.Background(color(g.BG))
			} else {
				style = style.Foreground(color(g.FG)).Background(s.background(x, y))
			}
			s.screen.SetContent(x, y, g.Rune, nil, style)
		}
	}
}

func (s *Screen) FillRect(r vmath.Rect, c core.RGB) {
	style := tcell.StyleDefault.Background(color(c))
	x0, y0, x1, y1 := s.cells(r)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

// DrawText writes one rune per cell on the row holding r.Y
func (s *Screen) DrawText(r vmath.Rect, text string, c core.RGB) {
	runes := []rune(text)
	x0, y0, x1, _ := s.cells(r)
	if r.W > 0 {
		x0 += (x1 - x0 - len(runes)) / 2
	}
	cols, rows := s.screen.Size()
	if y0 >= rows {
		return
	}
	for i, ch := range runes {
		x := x0 + i
		if x < 0 || x >= cols {
			continue
		}
		s.screen.SetContent(x, y0, ch, nil, tcell.StyleDefault.Foreground(color(c)).Background(s.background(x, y0)))
	}
}

// Scale records the drawn size; cell rendering derives extent from the rect
func (s *Screen) Scale(image string, w, h float64) {
	s.scaled[image] = [2]float64{w, h}
}

// Scaled returns the last size recorded for image
func (s *Screen) Scaled(image string) (w, h float64, ok bool) {
	size, ok := s.scaled[image]
	return size[0], size[1], ok
}

func (s *Screen) Present() {
	s.screen.Show()
}
