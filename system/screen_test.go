package system

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/space-invaders/component"
	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/engine"
)

func TestStartShowsWelcome(t *testing.T) {
	tw, _ := newTestGame(t, nil)
	if tw.Screen != core.ScreenWelcome {
		t.Errorf("screen = %s, want welcome", tw.Screen)
	}
	if len(tw.Sounds.Tracks) != 1 || tw.Sounds.Tracks[0] != "welcome" {
		t.Errorf("tracks = %v, want [welcome]", tw.Sounds.Tracks)
	}
	if !tw.Alive(tw.Player) || !tw.Alive(tw.ScoreLabel) {
		t.Error("player and score label should exist from the start")
	}
	if tw.Enemies.Count() != 0 {
		t.Errorf("enemies on welcome = %d", tw.Enemies.Count())
	}
}

func TestLevel1Setup(t *testing.T) {
	tw, _ := newTestGame(t, nil)
	tw.Score = 999
	tw.Done = true
	changeScreen(t, tw.World, core.ScreenLevel1)

	if tw.Enemies.Count() != 20 || tw.LevelTotal != 20 {
		t.Errorf("enemies = %d total = %d, want 20", tw.Enemies.Count(), tw.LevelTotal)
	}
	if tw.Score != 0 || tw.Done {
		t.Errorf("score %d done %v, want reset", tw.Score, tw.Done)
	}
	if tw.RunID == uuid.Nil {
		t.Error("run id not assigned")
	}
	if !tw.Timers.Armed(engine.EventLevelCheck) {
		t.Error("level check timer not armed")
	}
	if tw.Sounds.Count("finish") != 0 {
		t.Error("level1 should not play finish")
	}

	pl, _ := tw.Players.Get(tw.Player)
	if pl.ReloadDelay != 800*time.Millisecond || pl.ShotSound != "shot_level1" {
		t.Errorf("player loadout = %+v", pl)
	}
	if s, _ := tw.Sprites.Get(tw.Player); s.Image != "player_level1" {
		t.Errorf("player image = %q", s.Image)
	}

	// Grid layout: 5 columns 100px apart from x=100, 4 rows 70px apart from y=20
	first := tw.Body(tw.Enemies.All()[0])
	last := tw.Body(tw.Enemies.All()[19])
	if first.X != 100 || first.Y != 20 || last.X != 500 || last.Y != 230 {
		t.Errorf("grid corners (%g,%g) (%g,%g)", first.X, first.Y, last.X, last.Y)
	}
	if m, _ := tw.Motions.Get(tw.Enemies.All()[7]); m.Name != "(2, 1)" {
		t.Errorf("enemy name = %q, want (2, 1)", m.Name)
	}
	for _, e := range tw.Enemies.All() {
		if b := tw.Body(e); b.Screens != core.Only(core.ScreenLevel1) {
			t.Fatalf("enemy screens = %s", b.Screens)
		}
	}
}

func TestRunIDChangesPerRun(t *testing.T) {
	tw, _ := newTestGame(t, nil)
	changeScreen(t, tw.World, core.ScreenLevel1)
	first := tw.RunID
	changeScreen(t, tw.World, core.ScreenGameOver)
	changeScreen(t, tw.World, core.ScreenLevel1)
	if tw.RunID == first {
		t.Error("replay should start a new run id")
	}
}

func TestClearLeavesNoEnemies(t *testing.T) {
	tw, _ := newTestGame(t, nil)
	changeScreen(t, tw.World, core.ScreenLevel1)
	Fire(tw.World)
	if tw.Bullets.Count() != 1 {
		t.Fatalf("bullets = %d, want 1", tw.Bullets.Count())
	}

	changeScreen(t, tw.World, core.ScreenGameOver)

	if n := countKind(tw.World, tw.Sprites.All(), component.KindEnemy); n != 0 {
		t.Errorf("%d enemies left in drawables", n)
	}
	if n := countKind(tw.World, tw.Motions.All(), component.KindEnemy); n != 0 {
		t.Errorf("%d enemies left in simulatables", n)
	}
	if tw.Enemies.Count() != 0 || tw.Bullets.Count() != 0 {
		t.Errorf("collections: %d enemies %d bullets", tw.Enemies.Count(), tw.Bullets.Count())
	}
	if tw.Sounds.Count("finish") != 1 {
		t.Errorf("finish played %d times, want 1", tw.Sounds.Count("finish"))
	}
	if tw.Timers.Armed(engine.EventLevelCheck) {
		t.Error("game over should cancel the level check")
	}
	if !tw.Alive(tw.Player) {
		t.Error("clear must not touch the player")
	}
}

func TestClearWarnsAboutStragglers(t *testing.T) {
	obsCore, logs := observer.New(zapcore.WarnLevel)
	tw, _ := newTestGame(t, zap.New(obsCore))
	changeScreen(t, tw.World, core.ScreenLevel1)

	// Tagged as an enemy but never added to the enemy collection
	rogue := engine.With(engine.With(engine.With(engine.With(tw.NewEntity(),
		tw.Bodies, &component.BodyComponent{W: 10, H: 10, Visible: true}),
		tw.Kinds, component.KindEnemy),
		tw.Motions, &component.MotionComponent{}),
		tw.Sprites, &component.SpriteComponent{},
	).Build()

	changeScreen(t, tw.World, core.ScreenGameOver)

	warnings := logs.FilterMessage("entity still registered after clear").All()
	if len(warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(warnings))
	}
	if got := warnings[0].ContextMap()["list"]; got != "simulatables" {
		t.Errorf("list = %v, want simulatables", got)
	}
	if tw.Alive(rogue) || tw.Sprites.Has(rogue) || tw.Motions.Has(rogue) {
		t.Error("straggler should be removed")
	}
}

func TestChangeScreenInvalid(t *testing.T) {
	tw, _ := newTestGame(t, nil)
	err := ChangeScreen(tw.World, core.ScreenCount)
	if !errors.Is(err, ErrInvalidScreen) {
		t.Errorf("err = %v, want ErrInvalidScreen", err)
	}
	if tw.Screen != core.ScreenWelcome {
		t.Errorf("screen changed to %s on error", tw.Screen)
	}
}

func TestLevelProgression(t *testing.T) {
	tw, g := newTestGame(t, nil)
	changeScreen(t, tw.World, core.ScreenLevel1)
	check := tw.Config.Timing.LevelCheck

	// Enemies left: no advance
	tw.Time.Advance(check)
	g.Step()
	if tw.Screen != core.ScreenLevel1 {
		t.Fatalf("advanced with enemies alive: %s", tw.Screen)
	}

	steps := []struct {
		want    core.Screen
		score   int
		enemies int
	}{
		{core.ScreenLevel2, 420, 20},
		{core.ScreenLevel3, 840, 44},
	}
	for _, st := range steps {
		destroyAll(tw.World, tw.Enemies.All())
		tw.Time.Advance(check)
		g.Step()
		if tw.Screen != st.want {
			t.Fatalf("screen = %s, want %s", tw.Screen, st.want)
		}
		if tw.Score != st.score {
			t.Errorf("%s: score = %d, want %d", st.want, tw.Score, st.score)
		}
		if tw.Enemies.Count() != st.enemies {
			t.Errorf("%s: enemies = %d, want %d", st.want, tw.Enemies.Count(), st.enemies)
		}
	}
	if tw.Sounds.Count("finish") != 2 {
		t.Errorf("finish played %d times, want 2", tw.Sounds.Count("finish"))
	}
	pl, _ := tw.Players.Get(tw.Player)
	if pl.ReloadDelay != 300*time.Millisecond {
		t.Errorf("level3 reload = %s", pl.ReloadDelay)
	}

	destroyAll(tw.World, tw.Enemies.All())
	tw.Time.Advance(check)
	g.Step()
	if !tw.Done || tw.Score != 840+2321 {
		t.Errorf("done %v score %d, want true 3161", tw.Done, tw.Score)
	}
	if tw.Timers.Armed(engine.EventLevelCheck) {
		t.Error("level check should stop after the final level")
	}

	CheckLevel(tw.World)
	if tw.Score != 3161 {
		t.Errorf("final bonus credited twice: %d", tw.Score)
	}
}

func TestWelcomeDropsTimers(t *testing.T) {
	tw, _ := newTestGame(t, nil)
	changeScreen(t, tw.World, core.ScreenLevel1)
	if !Fire(tw.World) {
		t.Fatal("loaded player should fire")
	}
	if !tw.Timers.Armed(engine.EventReload) || !tw.Timers.Armed(engine.EventLevelCheck) {
		t.Fatal("level timers not armed")
	}

	changeScreen(t, tw.World, core.ScreenGameOver)
	if !tw.Timers.Armed(engine.EventReload) {
		t.Fatal("reload should survive game over")
	}
	changeScreen(t, tw.World, core.ScreenWelcome)
	if tw.Timers.Armed(engine.EventReload) || tw.Timers.Armed(engine.EventLevelCheck) {
		t.Error("timer armed on the welcome screen")
	}
}

func TestLevelSetupResetsBounceSide(t *testing.T) {
	tw, _ := newTestGame(t, nil)
	tw.LastBounceSide = core.SideRight
	changeScreen(t, tw.World, core.ScreenLevel1)
	if tw.LastBounceSide != core.SideNone {
		t.Errorf("bounce side = %s, want none", tw.LastBounceSide)
	}
}
