package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/space-invaders/component"
	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/engine"
	"github.com/lixenwraith/space-invaders/vmath"
)

// Simulate runs one frame of movement, edge handling, collisions and per-kind hooks
// Simulatables are visited in registration order over a snapshot; entities destroyed
// earlier in the frame are skipped, and every gate is re-read against the current
// screen since a collision may change it mid-frame
func Simulate(w *engine.World) {
	for _, e := range w.Motions.All() {
		if !w.Alive(e) {
			continue
		}
		if !simulateOne(w, e) {
			continue
		}
		postSimulate(w, e)
	}
}

// simulateOne moves e and resolves its collisions, reporting whether e was simulated
func simulateOne(w *engine.World, e core.Entity) bool {
	m, ok := w.Motions.Get(e)
	if !ok || !m.Simulating {
		return false
	}
	body := w.Body(e)
	if body == nil || !body.ActiveOn(w.Screen) {
		return false
	}

	vx, vy := m.Velocity.Components()
	body.X += vx
	body.Y += vy

	if m.BounceEdges {
		bounceEdges(w, e, body, m)
	}
	if m.Collide {
		detectCollisions(w, e)
	}
	return true
}

// bounceEdges clamps the player inside the window and reflects everything else
func bounceEdges(w *engine.World, e core.Entity, body *component.BodyComponent, m *component.MotionComponent) {
	width := w.Config.Window.Width
	kind, _ := w.Kind(e)

	if kind == component.KindPlayer {
		body.X = vmath.Clamp(body.X, 0, width-1-body.W)
		return
	}

	var side core.Side
	switch {
	case body.X <= 0:
		m.Velocity.SetX(abs(m.Velocity.X()))
		side = core.SideLeft
	case body.X+body.W >= width:
		m.Velocity.SetX(-abs(m.Velocity.X()))
		side = core.SideRight
	default:
		return
	}

	if ce := w.Log.Check(zap.DebugLevel, "bounced"); ce != nil {
		ce.Write(zap.String("entity", entityName(w, e)), zap.Stringer("side", side))
	}
	if kind == component.KindEnemy {
		enemyEdge(w, side)
	}
}

// enemyEdge steps the whole wave down once per change of bounce side
func enemyEdge(w *engine.World, side core.Side) {
	if w.LastBounceSide == side {
		return
	}
	shift := w.Config.Enemy.DownShift
	for _, e := range w.Enemies.All() {
		if body := w.Body(e); body != nil && body.ActiveOn(w.Screen) {
			body.Y += shift
		}
	}
	w.Log.Debug("wave stepped down",
		zap.Stringer("from", w.LastBounceSide),
		zap.Stringer("to", side),
	)
	w.LastBounceSide = side
}

// detectCollisions overlaps self against every other live, visible, screen-valid simulatable
func detectCollisions(w *engine.World, self core.Entity) {
	for _, other := range w.Motions.All() {
		if other == self || !w.Alive(other) {
			continue
		}
		sb := w.Body(self)
		if sb == nil || !sb.VisibleOn(w.Screen) {
			return
		}
		ob := w.Body(other)
		if ob == nil || !ob.VisibleOn(w.Screen) {
			continue
		}
		if !sb.Rect().Overlaps(ob.Rect()) {
			continue
		}
		dispatchCollision(w, self, other)
		if !w.Alive(self) {
			return
		}
	}
}

// postSimulate runs kind-specific rules after a successful move
func postSimulate(w *engine.World, e core.Entity) {
	kind, _ := w.Kind(e)
	switch kind {
	case component.KindEnemy:
		enemyAfterMove(w, e)
	case component.KindBullet:
		bulletAfterMove(w, e)
	}
}

func enemyAfterMove(w *engine.World, e core.Entity) {
	if !w.Alive(e) {
		return
	}
	body := w.Body(e)
	if body.Y >= w.Config.Enemy.BottomLine {
		w.Log.Info("enemy reached the bottom line", zap.String("enemy", entityName(w, e)))
		mustChangeScreen(w, core.ScreenGameOver)
		return
	}

	ec, _ := w.Enemies.Get(e)
	chance := w.Balance.FireChance(ec.FireChance, w.Enemies.Count(), w.LevelTotal)
	if w.Rand.Float64() < chance {
		pc := w.Config.Player
		spawnBullet(w, e, component.KindEnemy, ec.BulletImage, ec.BulletSpeed, pc.BulletWidth, pc.BulletHeight)
	}
}

func bulletAfterMove(w *engine.World, e core.Entity) {
	if !w.Alive(e) {
		return
	}
	body := w.Body(e)
	if body.Y <= 0 || body.Y >= w.Config.Window.Height-1 {
		w.Destroy(e)
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
