package system

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/engine"
)

var scorePrinter = message.NewPrinter(language.English)

// FormatScore renders a score with digit grouping, e.g. 2,741
func FormatScore(score int) string {
	return scorePrinter.Sprintf("%d", score)
}

// Draw renders every visible, screen-valid drawable in registration order
func Draw(w *engine.World) {
	if label, ok := w.Sprites.Get(w.ScoreLabel); ok {
		label.Text = FormatScore(w.Score)
	}

	r := w.Renderer
	r.Clear()
	rectColor := w.Config.Window.RectColor
	for _, e := range w.Sprites.All() {
		body := w.Body(e)
		if body == nil || !body.VisibleOn(w.Screen) {
			continue
		}
		s, _ := w.Sprites.Get(e)
		switch {
		case s.Text != "":
			r.DrawText(body.Rect(), s.Text, s.Color)
		case s.Image != "":
			r.DrawImage(s.Image, body.Rect())
		case s.Color != core.RGBBlack:
			r.FillRect(body.Rect(), s.Color)
		default:
			r.FillRect(body.Rect(), rectColor)
		}
	}
	r.Present()
}
