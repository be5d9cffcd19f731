package system

import (
	"testing"

	"go.uber.org/zap"

	"github.com/lixenwraith/space-invaders/component"
	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/engine"
)

// fixedBalance pins the fire chance so tests are not at the mercy of the rng
type fixedBalance struct {
	chance float64
}

func (b fixedBalance) FireChance(float64, int, int) float64   { return b.chance }
func (b fixedBalance) HitScore(points int, _ core.Screen) int { return points }

func newTestGame(t *testing.T, log *zap.Logger) (*engine.TestWorld, *Game) {
	t.Helper()
	tw := engine.NewTestWorld(log)
	tw.Balance = fixedBalance{}
	g := NewGame(tw.World, engine.NewClock(tw.Time, 10, tw.Time.Advance), nil)
	g.Start()
	return tw, g
}

func changeScreen(t *testing.T, w *engine.World, s core.Screen) {
	t.Helper()
	if err := ChangeScreen(w, s); err != nil {
		t.Fatalf("ChangeScreen(%s): %v", s, err)
	}
}

// countKind counts entities of kind in an ordered entity list
func countKind(w *engine.World, entities []core.Entity, kind component.Kind) int {
	n := 0
	for _, e := range entities {
		if k, ok := w.Kind(e); ok && k == kind {
			n++
		}
	}
	return n
}

func destroyAll(w *engine.World, entities []core.Entity) {
	for _, e := range entities {
		w.Destroy(e)
	}
}
