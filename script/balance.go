package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/lixenwraith/space-invaders/core"
)

// Balance evaluates Lua combat tuning hooks
// Defined hooks: fire_chance(ctx) -> number, hit_score(ctx) -> number
// A missing hook passes the class value through; a hook that errors is logged once
// and disabled for the rest of the run
// Single-goroutine access only (frame loop)
type Balance struct {
	vm       *lua.LState
	log      *zap.Logger
	disabled map[string]bool
}

// NewBalance loads the script at path
func NewBalance(path string, log *zap.Logger) (*Balance, error) {
	b := newBalance(log)
	if err := b.vm.DoFile(path); err != nil {
		b.vm.Close()
		return nil, fmt.Errorf("load balance script %s: %w", path, err)
	}
	log.Debug("loaded lua script", zap.String("file", path))
	return b, nil
}

// NewBalanceString loads a script from source, used by tests and embedded defaults
func NewBalanceString(src string, log *zap.Logger) (*Balance, error) {
	b := newBalance(log)
	if err := b.vm.DoString(src); err != nil {
		b.vm.Close()
		return nil, fmt.Errorf("load balance script: %w", err)
	}
	return b, nil
}

func newBalance(log *zap.Logger) *Balance {
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))
	return &Balance{vm: vm, log: log, disabled: make(map[string]bool)}
}

// Close releases the VM
func (b *Balance) Close() {
	b.vm.Close()
}

// FireChance calls fire_chance{base, remaining, total}; result is clamped to [0, 1]
func (b *Balance) FireChance(base float64, remaining, total int) float64 {
	ctx := b.vm.NewTable()
	ctx.RawSetString("base", lua.LNumber(base))
	ctx.RawSetString("remaining", lua.LNumber(remaining))
	ctx.RawSetString("total", lua.LNumber(total))

	v, ok := b.call("fire_chance", ctx)
	if !ok {
		return base
	}
	chance := float64(v)
	switch {
	case chance < 0:
		return 0
	case chance > 1:
		return 1
	}
	return chance
}

// HitScore calls hit_score{points, screen}; negative results count as zero
func (b *Balance) HitScore(points int, screen core.Screen) int {
	ctx := b.vm.NewTable()
	ctx.RawSetString("points", lua.LNumber(points))
	ctx.RawSetString("screen", lua.LString(screen.String()))

	v, ok := b.call("hit_score", ctx)
	if !ok {
		return points
	}
	if v < 0 {
		return 0
	}
	return int(v)
}

// call invokes a global hook with one table argument and expects one number back
func (b *Balance) call(name string, arg *lua.LTable) (lua.LNumber, bool) {
	if b.disabled[name] {
		return 0, false
	}
	fn := b.vm.GetGlobal(name)
	if fn == lua.LNil {
		return 0, false
	}

	if err := b.vm.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, arg); err != nil {
		b.fail(name, err)
		return 0, false
	}

	result := b.vm.Get(-1)
	b.vm.Pop(1)
	n, ok := result.(lua.LNumber)
	if !ok {
		b.fail(name, fmt.Errorf("returned %s, want number", result.Type()))
		return 0, false
	}
	return n, true
}

func (b *Balance) fail(name string, err error) {
	b.disabled[name] = true
	b.log.Error("lua hook disabled", zap.String("hook", name), zap.Error(err))
}
