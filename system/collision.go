package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/space-invaders/component"
	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/engine"
)

// collideFunc reacts to self overlapping other
type collideFunc func(w *engine.World, self, other core.Entity)

// hitFunc reacts to target being struck by bullet
type hitFunc func(w *engine.World, target, bullet core.Entity)

// Kinds without an entry take no action
var (
	collideHandlers map[component.Kind]collideFunc
	hitHandlers     map[component.Kind]hitFunc
)

func init() {
	collideHandlers = map[component.Kind]collideFunc{
		component.KindPlayer: playerCollide,
		component.KindEnemy:  logCollide,
		component.KindBullet: bulletCollide,
	}
	hitHandlers = map[component.Kind]hitFunc{
		component.KindPlayer: playerHit,
		component.KindEnemy:  enemyHit,
	}
}

// dispatchCollision runs both sides' reactions, self first
func dispatchCollision(w *engine.World, self, other core.Entity) {
	collide(w, self, other)
	if w.Alive(other) {
		collide(w, other, self)
	}
}

func collide(w *engine.World, self, other core.Entity) {
	kind, ok := w.Kind(self)
	if !ok {
		return
	}
	if fn := collideHandlers[kind]; fn != nil {
		fn(w, self, other)
	}
}

func playerCollide(w *engine.World, _, other core.Entity) {
	if kind, _ := w.Kind(other); kind == component.KindEnemy {
		w.Log.Info("player rammed by enemy", zap.Uint64("enemy", uint64(other)))
		mustChangeScreen(w, core.ScreenGameOver)
	}
}

func logCollide(w *engine.World, self, other core.Entity) {
	if ce := w.Log.Check(zap.DebugLevel, "collision"); ce != nil {
		ce.Write(zap.String("self", entityName(w, self)), zap.String("other", entityName(w, other)))
	}
}

// bulletCollide hands the bullet to whatever it struck
func bulletCollide(w *engine.World, bullet, target core.Entity) {
	kind, ok := w.Kind(target)
	if !ok {
		return
	}
	if fn := hitHandlers[kind]; fn != nil {
		fn(w, target, bullet)
	}
}

func playerHit(w *engine.World, _, bullet core.Entity) {
	bc, ok := w.Bullets.Get(bullet)
	if !ok || bc.SourceKind == component.KindPlayer {
		return
	}
	w.Log.Info("player shot down", zap.Uint64("bullet", uint64(bullet)))
	mustChangeScreen(w, core.ScreenGameOver)
	w.Destroy(bullet)
}

func enemyHit(w *engine.World, enemy, bullet core.Entity) {
	bc, ok := w.Bullets.Get(bullet)
	if !ok || bc.SourceKind == component.KindEnemy {
		return
	}
	ec, ok := w.Enemies.Get(enemy)
	if !ok {
		return
	}
	points := w.Balance.HitScore(ec.Points, w.Screen)
	name := entityName(w, enemy)
	w.Destroy(enemy)
	w.Destroy(bullet)
	w.Score += points
	w.Log.Debug("enemy destroyed",
		zap.String("enemy", name),
		zap.Int("points", points),
		zap.Int("score", w.Score),
	)
}

// entityName renders kind and name for logs, e.g. "enemy-(2, 1)"
func entityName(w *engine.World, e core.Entity) string {
	kind, _ := w.Kind(e)
	if m, ok := w.Motions.Get(e); ok && m.Name != "" {
		return kind.String() + "-" + m.Name
	}
	return kind.String()
}
