package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/space-invaders/core"
)

//go:embed levels.yaml
var defaultLevels []byte

// Formation is one enemy block laid out on the level grid
type Formation struct {
	Class   string  `yaml:"class"`
	Cols    int     `yaml:"cols"`
	Rows    int     `yaml:"rows"`
	Points  int     `yaml:"points"`
	YOffset float64 `yaml:"y_offset"`
}

// Count returns the number of enemies the formation spawns
func (f Formation) Count() int {
	return f.Cols * f.Rows
}

// Level holds the per-level layout and player loadout
type Level struct {
	Name        string      `yaml:"screen"`
	ReloadMS    int         `yaml:"reload_ms"`
	PlayerImage string      `yaml:"player_image"`
	ShotSound   string      `yaml:"shot_sound"`
	Formations  []Formation `yaml:"formations"`

	Screen core.Screen `yaml:"-"`
}

// Reload returns the player reload delay
func (l *Level) Reload() time.Duration {
	return time.Duration(l.ReloadMS) * time.Millisecond
}

// EnemyCount returns the total enemies spawned on level setup
func (l *Level) EnemyCount() int {
	n := 0
	for _, f := range l.Formations {
		n += f.Count()
	}
	return n
}

type levelFile struct {
	Levels []*Level `yaml:"levels"`
}

// LevelTable indexes levels by screen
type LevelTable struct {
	byScreen map[core.Screen]*Level
}

// LoadLevels reads a YAML level file; empty path loads the embedded defaults
func LoadLevels(path string) (*LevelTable, error) {
	if path == "" {
		return ParseLevels(defaultLevels)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read levels %s: %w", path, err)
	}
	table, err := ParseLevels(data)
	if err != nil {
		return nil, fmt.Errorf("levels %s: %w", path, err)
	}
	return table, nil
}

// ParseLevels decodes a YAML level document
func ParseLevels(data []byte) (*LevelTable, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	table := &LevelTable{byScreen: make(map[core.Screen]*Level, len(f.Levels))}
	for i, lvl := range f.Levels {
		s, err := core.ParseScreen(lvl.Name)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", i, err)
		}
		if !s.IsLevel() {
			return nil, fmt.Errorf("level %d: screen %s is not a level", i, s)
		}
		if _, dup := table.byScreen[s]; dup {
			return nil, fmt.Errorf("level %d: duplicate screen %s", i, s)
		}
		if lvl.ReloadMS <= 0 {
			return nil, fmt.Errorf("level %s: reload_ms must be positive, got %d", s, lvl.ReloadMS)
		}
		lvl.Screen = s
		table.byScreen[s] = lvl
	}
	return table, nil
}

// Get returns the level for s
func (t *LevelTable) Get(s core.Screen) (*Level, error) {
	lvl, ok := t.byScreen[s]
	if !ok {
		return nil, fmt.Errorf("%w for %s", ErrNoLevel, s)
	}
	return lvl, nil
}

// Validate checks every level screen is present and every formation names a known class
func (t *LevelTable) Validate(cfg *Config) error {
	for s := core.ScreenLevel1; s <= core.ScreenLevel3; s++ {
		lvl, err := t.Get(s)
		if err != nil {
			return err
		}
		for _, f := range lvl.Formations {
			if _, err := cfg.Class(f.Class); err != nil {
				return fmt.Errorf("level %s: %w", s, err)
			}
			if f.Cols < 0 || f.Rows < 0 {
				return fmt.Errorf("level %s: negative formation size %dx%d", s, f.Cols, f.Rows)
			}
		}
	}
	return nil
}
