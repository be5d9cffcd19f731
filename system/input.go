package system

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/space-invaders/component"
	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/engine"
)

// eventHandlers is the frame loop's dispatch table
var eventHandlers = map[engine.EventKind]engine.HandlerFunc{
	engine.EventQuit:       handleQuit,
	engine.EventKeyDown:    handleKeyDown,
	engine.EventKeyUp:      handleKeyUp,
	engine.EventReload:     handleReload,
	engine.EventLevelCheck: handleLevelCheck,
}

// RegisterHandlers installs the game's event handlers on r
func RegisterHandlers(r *engine.Router) {
	for kind := engine.EventQuit; kind <= engine.EventLevelCheck; kind++ {
		if fn, ok := eventHandlers[kind]; ok {
			r.Handle(kind, fn)
		}
	}
}

func handleQuit(w *engine.World, _ engine.Event) {
	w.Log.Info("quit requested", zap.Stringer("screen", w.Screen), zap.Int("score", w.Score))
	w.Running = false
}

func handleKeyDown(w *engine.World, ev engine.Event) {
	switch ev.Key {
	case engine.KeyLeft, engine.KeyRight:
		steer(w, ev.Key, true)
	case engine.KeyFire:
		if w.Screen.IsLevel() {
			Fire(w)
		} else {
			menuConfirm(w)
		}
	case engine.KeyConfirm:
		menuConfirm(w)
	case engine.KeyMenu:
		if w.Screen == core.ScreenGameOver || (w.Screen == core.ScreenLevel3 && w.Done) {
			mustChangeScreen(w, core.ScreenWelcome)
		}
	}
}

func handleKeyUp(w *engine.World, ev engine.Event) {
	switch ev.Key {
	case engine.KeyLeft, engine.KeyRight:
		steer(w, ev.Key, false)
	}
}

// menuConfirm starts a run from the welcome and game over screens
func menuConfirm(w *engine.World) {
	if w.Screen == core.ScreenWelcome || w.Screen == core.ScreenGameOver {
		mustChangeScreen(w, core.ScreenLevel1)
	}
}

// steer tracks held movement keys and derives the player's horizontal speed
func steer(w *engine.World, key engine.Key, held bool) {
	pl, ok := w.Players.Get(w.Player)
	if !ok {
		return
	}
	if key == engine.KeyLeft {
		pl.Left = held
	} else {
		pl.Right = held
	}
	if m, ok := w.Motions.Get(w.Player); ok {
		m.Velocity.SetX(pl.Direction() * w.Config.Player.Speed)
	}
}

// Fire shoots a player bullet when loaded and arms the reload timer
func Fire(w *engine.World) bool {
	pl, ok := w.Players.Get(w.Player)
	if !ok || !pl.Loaded {
		return false
	}
	if body := w.Body(w.Player); body == nil || !body.ActiveOn(w.Screen) {
		return false
	}

	pc := w.Config.Player
	spawnBullet(w, w.Player, component.KindPlayer, pc.BulletImage, pc.BulletSpeed, pc.BulletWidth, pc.BulletHeight)
	w.Audio.Play(pl.ShotSound)
	pl.Loaded = false
	w.Timers.Once(engine.EventReload, pl.ReloadDelay)
	return true
}

func handleReload(w *engine.World, _ engine.Event) {
	if pl, ok := w.Players.Get(w.Player); ok {
		pl.Loaded = true
	}
}

func handleLevelCheck(w *engine.World, _ engine.Event) {
	CheckLevel(w)
}
