package script

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lixenwraith/space-invaders/core"
)

func TestMissingHooksPassThrough(t *testing.T) {
	b, err := NewBalanceString("x = 1", zap.NewNop())
	if err != nil {
		t.Fatalf("NewBalanceString: %v", err)
	}
	defer b.Close()

	if got := b.FireChance(0.003, 10, 20); got != 0.003 {
		t.Errorf("FireChance = %v, want 0.003", got)
	}
	if got := b.HitScore(75, core.ScreenLevel2); got != 75 {
		t.Errorf("HitScore = %d, want 75", got)
	}
}

func TestHooks(t *testing.T) {
	src := `
function fire_chance(ctx)
  return ctx.base * (1 + (ctx.total - ctx.remaining) / ctx.total)
end

function hit_score(ctx)
  if ctx.screen == "level3" then
    return ctx.points * 2
  end
  return ctx.points
end
`
	b, err := NewBalanceString(src, zap.NewNop())
	if err != nil {
		t.Fatalf("NewBalanceString: %v", err)
	}
	defer b.Close()

	if got := b.FireChance(0.001, 10, 20); got < 0.0015-1e-12 || got > 0.0015+1e-12 {
		t.Errorf("FireChance = %v, want 0.0015", got)
	}
	if got := b.HitScore(120, core.ScreenLevel3); got != 240 {
		t.Errorf("HitScore level3 = %d, want 240", got)
	}
	if got := b.HitScore(50, core.ScreenLevel1); got != 50 {
		t.Errorf("HitScore level1 = %d, want 50", got)
	}
}

func TestFireChanceClamped(t *testing.T) {
	b, err := NewBalanceString(`function fire_chance(ctx) return 5 end`, zap.NewNop())
	if err != nil {
		t.Fatalf("NewBalanceString: %v", err)
	}
	defer b.Close()
	if got := b.FireChance(0.1, 1, 1); got != 1 {
		t.Errorf("FireChance = %v, want clamp to 1", got)
	}
}

func TestFailingHookDisabledOnce(t *testing.T) {
	obsCore, logs := observer.New(zapcore.ErrorLevel)
	b, err := NewBalanceString(`function hit_score(ctx) error("boom") end`, zap.New(obsCore))
	if err != nil {
		t.Fatalf("NewBalanceString: %v", err)
	}
	defer b.Close()

	for i := 0; i < 3; i++ {
		if got := b.HitScore(50, core.ScreenLevel1); got != 50 {
			t.Errorf("HitScore = %d, want fallback 50", got)
		}
	}
	if n := logs.FilterMessage("lua hook disabled").Len(); n != 1 {
		t.Errorf("logged %d errors, want 1", n)
	}
}

func TestNonNumberResult(t *testing.T) {
	b, err := NewBalanceString(`function fire_chance(ctx) return "often" end`, zap.NewNop())
	if err != nil {
		t.Fatalf("NewBalanceString: %v", err)
	}
	defer b.Close()
	if got := b.FireChance(0.25, 1, 1); got != 0.25 {
		t.Errorf("FireChance = %v, want fallback 0.25", got)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := NewBalance(filepath.Join(t.TempDir(), "missing.lua"), zap.NewNop()); err == nil {
		t.Error("expected error for missing file")
	}
	if _, err := NewBalanceString("function (", zap.NewNop()); err == nil {
		t.Error("expected syntax error")
	}
}

func TestSampleScript(t *testing.T) {
	path := filepath.Join("..", "scripts", "balance.lua")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("sample script not present: %v", err)
	}
	b, err := NewBalance(path, zap.NewNop())
	if err != nil {
		t.Fatalf("NewBalance: %v", err)
	}
	defer b.Close()

	full := b.FireChance(0.002, 20, 20)
	last := b.FireChance(0.002, 1, 20)
	if last <= full {
		t.Errorf("fire chance should rise as the wave thins: full %v last %v", full, last)
	}
	if got := b.HitScore(50, core.ScreenLevel1); got != 50 {
		t.Errorf("HitScore = %d, want 50", got)
	}
}
