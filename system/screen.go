package system

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/space-invaders/component"
	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/engine"
)

// ErrInvalidScreen is returned for screen values outside the defined set
var ErrInvalidScreen = errors.New("invalid screen")

// ChangeScreen makes s current, sweeps the previous wave and runs s's setup
func ChangeScreen(w *engine.World, s core.Screen) error {
	if !s.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidScreen, s)
	}

	prev := w.Screen
	w.Screen = s
	clearWave(w)

	w.Log.Info("screen changed",
		zap.Stringer("from", prev),
		zap.Stringer("to", s),
		zap.Int("score", w.Score),
		zap.Stringer("run", w.RunID),
	)

	switch s {
	case core.ScreenWelcome:
		// No run is in progress on the menu, so no timer may outlive it
		w.Timers.Reset()
		w.Audio.SwitchTrack(w.Config.Screen(s).Track)
		return nil
	case core.ScreenGameOver:
		w.Audio.SwitchTrack(w.Config.Screen(s).Track)
		w.Audio.Play(w.Config.Audio.FinishSound)
		w.Timers.Cancel(engine.EventLevelCheck)
		return nil
	default:
		return setupLevel(w, s)
	}
}

// mustChangeScreen is ChangeScreen for internal transitions, which only use defined screens
func mustChangeScreen(w *engine.World, s core.Screen) {
	if err := ChangeScreen(w, s); err != nil {
		panic(err)
	}
}

func setupLevel(w *engine.World, s core.Screen) error {
	lvl, err := w.Levels.Get(s)
	if err != nil {
		return err
	}

	w.LastBounceSide = core.SideNone
	total, err := spawnFormations(w, lvl)
	w.LevelTotal = total
	if err != nil {
		return err
	}

	pc := w.Config.Player
	if pl, ok := w.Players.Get(w.Player); ok {
		pl.ReloadDelay = lvl.Reload()
		pl.ShotSound = lvl.ShotSound
	}
	w.SetImage(w.Player, lvl.PlayerImage)
	w.SetSize(w.Player, pc.Width, pc.Height)
	w.Audio.SwitchTrack(w.Config.Screen(s).Track)

	if s == core.ScreenLevel1 {
		w.Score = 0
		w.Done = false
		w.RunID = uuid.New()
		w.Timers.Every(engine.EventLevelCheck, w.Config.Timing.LevelCheck)
		w.Log.Info("run started", zap.Stringer("run", w.RunID))
	} else {
		w.Audio.Play(w.Config.Audio.FinishSound)
	}

	w.Log.Debug("level ready",
		zap.Stringer("level", s),
		zap.Int("enemies", total),
		zap.Duration("reload", lvl.Reload()),
	)
	return nil
}

// clearWave destroys every enemy and bullet, then makes sure none lingers
// in the draw or simulation lists
func clearWave(w *engine.World) {
	w.DestroyBatch(append(w.Enemies.All(), w.Bullets.All()...))
	sweepStragglers(w, "simulatables", w.Motions.All())
	sweepStragglers(w, "drawables", w.Sprites.All())
}

func sweepStragglers(w *engine.World, list string, entities []core.Entity) {
	for _, e := range entities {
		kind, ok := w.Kind(e)
		if !ok || (kind != component.KindEnemy && kind != component.KindBullet) {
			continue
		}
		w.Log.Warn("entity still registered after clear",
			zap.String("list", list),
			zap.Stringer("kind", kind),
			zap.Uint64("entity", uint64(e)),
		)
		w.Motions.Remove(e)
		w.Sprites.Remove(e)
		w.Destroy(e)
	}
}

// CheckLevel advances when no screen-valid enemy remains
func CheckLevel(w *engine.World) {
	if remaining := activeEnemies(w); remaining > 0 {
		return
	}
	scoring := w.Config.Scoring
	switch w.Screen {
	case core.ScreenLevel1:
		mustChangeScreen(w, core.ScreenLevel2)
		w.Score += scoring.LevelBonus
	case core.ScreenLevel2:
		mustChangeScreen(w, core.ScreenLevel3)
		w.Score += scoring.LevelBonus
	case core.ScreenLevel3:
		if w.Done {
			return
		}
		w.Done = true
		w.Score += scoring.FinalBonus
		w.Timers.Cancel(engine.EventLevelCheck)
		w.Log.Info("run complete", zap.Int("score", w.Score), zap.Stringer("run", w.RunID))
	}
}

func activeEnemies(w *engine.World) int {
	n := 0
	for _, e := range w.Enemies.All() {
		if body := w.Body(e); body != nil && body.ActiveOn(w.Screen) {
			n++
		}
	}
	return n
}
