package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Loggers hands out named zap loggers honoring per-name level overrides
type Loggers struct {
	root      *zap.Logger
	base      zapcore.Level
	overrides map[string]zapcore.Level
}

// NewLoggers builds the root logger from cfg
// Disabled logging yields no-op loggers; otherwise output goes to cfg.File only,
// since the terminal belongs to the game screen
func NewLoggers(cfg LoggingConfig) (*Loggers, error) {
	if !cfg.Enabled {
		return NopLoggers(), nil
	}

	base, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging.level: %w", err)
	}

	overrides := make(map[string]zapcore.Level, len(cfg.Levels))
	floor := base
	for name, raw := range cfg.Levels {
		lvl, err := zapcore.ParseLevel(raw)
		if err != nil {
			return nil, fmt.Errorf("logging.levels.%s: %w", name, err)
		}
		overrides[name] = lvl
		if lvl < floor {
			floor = lvl
		}
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}
	zapCfg.Level = zap.NewAtomicLevelAt(floor)
	zapCfg.EncoderConfig.TimeKey = "time"
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if cfg.File != "" {
		if dir := filepath.Dir(cfg.File); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log dir %s: %w", dir, err)
			}
		}
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	root, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return &Loggers{root: root, base: base, overrides: overrides}, nil
}

// NewLoggersFrom wraps an existing root, used by tests with zaptest/observer cores
func NewLoggersFrom(root *zap.Logger, base zapcore.Level, overrides map[string]zapcore.Level) *Loggers {
	return &Loggers{root: root, base: base, overrides: overrides}
}

// NopLoggers discards everything
func NopLoggers() *Loggers {
	return &Loggers{root: zap.NewNop(), base: zapcore.InvalidLevel}
}

// Named returns a logger for one subsystem
func (l *Loggers) Named(name string) *zap.Logger {
	lvl, ok := l.overrides[name]
	if !ok {
		lvl = l.base
	}
	named := l.root.Named(name)
	// IncreaseLevel refuses to lower, only raise when the core lets lower levels through
	if l.root.Core().Enabled(lvl - 1) {
		named = named.WithOptions(zap.IncreaseLevel(lvl))
	}
	return named
}

// Sync flushes buffered entries
func (l *Loggers) Sync() {
	_ = l.root.Sync()
}
