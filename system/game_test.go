package system

import (
	"context"
	"errors"
	"testing"

	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/engine"
	"github.com/lixenwraith/space-invaders/status"
)

func TestRunStopsOnQuit(t *testing.T) {
	tw := engine.NewTestWorld(nil)
	input := make(chan engine.Event, 4)
	input <- engine.Event{Kind: engine.EventKeyDown, Key: engine.KeyConfirm}
	input <- engine.Event{Kind: engine.EventQuit}
	g := NewGame(tw.World, engine.NewClock(tw.Time, 10, tw.Time.Advance), input)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if tw.Running {
		t.Error("world still running")
	}
	if tw.Screen.String() != "level1" {
		t.Errorf("confirm before quit should start level1, screen = %s", tw.Screen)
	}
}

func TestRunEndsWhenInputCloses(t *testing.T) {
	tw := engine.NewTestWorld(nil)
	input := make(chan engine.Event)
	close(input)
	g := NewGame(tw.World, engine.NewClock(tw.Time, 10, tw.Time.Advance), input)

	if err := g.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if tw.Running {
		t.Error("closed input should quit")
	}
}

func TestRunHonorsContext(t *testing.T) {
	tw := engine.NewTestWorld(nil)
	g := NewGame(tw.World, engine.NewClock(tw.Time, 10, tw.Time.Advance), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := g.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestStepPublishesMetrics(t *testing.T) {
	tw, g := newTestGame(t, nil)
	changeScreen(t, tw.World, core.ScreenLevel1)
	g.Step()

	snap := tw.Status.Snapshot()
	if snap[status.KeyEnemies] != "20" {
		t.Errorf("enemies metric = %q", snap[status.KeyEnemies])
	}
	if snap[status.KeyScreen] != "level1" {
		t.Errorf("screen metric = %q", snap[status.KeyScreen])
	}
	if snap[status.KeyRunID] != tw.RunID.String() {
		t.Errorf("run id metric = %q", snap[status.KeyRunID])
	}
}
