package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/vmath"
)

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	sim.SetSize(80, 24)
	t.Cleanup(sim.Fini)
	return sim
}

func TestCellMapping(t *testing.T) {
	s := NewScreen(newSimScreen(t), 800, 240, nil)

	tests := []struct {
		name           string
		r              vmath.Rect
		x0, y0, x1, y1 int
	}{
		{"exact cell", vmath.Rect{X: 0, Y: 0, W: 10, H: 10}, 0, 0, 1, 1},
		{"spanning", vmath.Rect{X: 15, Y: 5, W: 20, H: 10}, 1, 0, 4, 2},
		{"degenerate", vmath.Rect{X: 100, Y: 100}, 10, 10, 11, 11},
		{"clipped", vmath.Rect{X: -20, Y: 230, W: 40, H: 40}, 0, 23, 2, 24},
		{"full window", vmath.Rect{W: 800, H: 240}, 0, 0, 80, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x0, y0, x1, y1 := s.cells(tt.r)
			if x0 != tt.x0 || y0 != tt.y0 || x1 != tt.x1 || y1 != tt.y1 {
				t.Errorf("cells = (%d,%d)-(%d,%d), want (%d,%d)-(%d,%d)",
					x0, y0, x1, y1, tt.x0, tt.y0, tt.x1, tt.y1)
			}
		})
	}
}

func TestSpriteKeepsBackdrop(t *testing.T) {
	sim := newSimScreen(t)
	s := NewScreen(sim, 800, 240, nil)

	s.DrawImage("bg_level1", vmath.Rect{W: 800, H: 240})
	s.DrawImage("enemy_frigate", vmath.Rect{X: 100, Y: 50, W: 20, H: 10})

	r, _, style, _ := sim.GetContent(10, 5)
	if r != 'W' {
		t.Fatalf("rune = %q, want 'W'", r)
	}
	fg, bg, _ := style.Decompose()
	if want := color(DefaultGlyphs["bg_level1"].BG); bg != want {
		t.Errorf("background = %v, want backdrop %v", bg, want)
	}
	if want := color(DefaultGlyphs["enemy_frigate"].FG); fg != want {
		t.Errorf("foreground = %v, want %v", fg, want)
	}
	if r, _, _, _ := sim.GetContent(12, 5); r != ' ' {
		t.Errorf("sprite leaked to cell 12: %q", r)
	}
}

func TestUnknownImage(t *testing.T) {
	sim := newSimScreen(t)
	s := NewScreen(sim, 800, 240, nil)
	s.DrawImage("nope", vmath.Rect{X: 0, Y: 0, W: 10, H: 10})
	if r, _, _, _ := sim.GetContent(0, 0); r != '?' {
		t.Errorf("rune = %q, want '?'", r)
	}
}

func TestFillRect(t *testing.T) {
	sim := newSimScreen(t)
	s := NewScreen(sim, 800, 240, nil)
	s.FillRect(vmath.Rect{X: 20, Y: 20, W: 20, H: 10}, core.RGBWhite)
	for x := 2; x < 4; x++ {
		_, _, style, _ := sim.GetContent(x, 2)
		if _, bg, _ := style.Decompose(); bg != color(core.RGBWhite) {
			t.Errorf("cell %d background = %v", x, bg)
		}
	}
}

func TestDrawText(t *testing.T) {
	sim := newSimScreen(t)
	s := NewScreen(sim, 800, 240, nil)

	s.DrawText(vmath.Rect{X: 10, Y: 10}, "0", core.RGBGreen)
	if r, _, _, _ := sim.GetContent(1, 1); r != '0' {
		t.Errorf("score cell = %q", r)
	}

	// 80 columns, 4 runes: starts at 38
	s.DrawText(vmath.Rect{Y: 100, W: 800}, "GAME", core.RGBWhite)
	got := make([]rune, 0, 4)
	for x := 38; x < 42; x++ {
		r, _, _, _ := sim.GetContent(x, 10)
		got = append(got, r)
	}
	if string(got) != "GAME" {
		t.Errorf("centered text = %q", string(got))
	}

	// Off the right edge is clipped, not wrapped
	s.DrawText(vmath.Rect{X: 790, Y: 200}, "xyz", core.RGBWhite)
	if r, _, _, _ := sim.GetContent(0, 21); r == 'y' {
		t.Error("text wrapped to next row")
	}
}

func TestScaleRecorded(t *testing.T) {
	s := NewScreen(newSimScreen(t), 800, 240, nil)
	if _, _, ok := s.Scaled("player_level1"); ok {
		t.Fatal("scale reported before any call")
	}
	s.Scale("player_level1", 40, 40)
	if w, h, ok := s.Scaled("player_level1"); !ok || w != 40 || h != 40 {
		t.Errorf("scaled = %g x %g, %v", w, h, ok)
	}
}
