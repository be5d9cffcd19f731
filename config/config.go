package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/space-invaders/core"
)

// Config is the game-wide configuration; level tables live in LevelTable
type Config struct {
	Window  WindowConfig            `toml:"window"`
	Player  PlayerConfig            `toml:"player"`
	Enemy   EnemyConfig             `toml:"enemy"`
	Scoring ScoringConfig           `toml:"scoring"`
	Timing  TimingConfig            `toml:"timing"`
	Screens map[string]ScreenConfig `toml:"screens"`
	Audio   AudioConfig             `toml:"audio"`
	Logging LoggingConfig           `toml:"logging"`
	Script  ScriptConfig            `toml:"script"`
}

type WindowConfig struct {
	Width      float64  `toml:"width"`
	Height     float64  `toml:"height"`
	Title      string   `toml:"title"`
	FPSLimit   int      `toml:"fps_limit"`
	FPSHistory int      `toml:"fps_history"` // Frame timestamps kept for fps averaging
	ScoreColor core.RGB `toml:"score_color"`
	RectColor  core.RGB `toml:"rect_color"` // Fill for entities without an image
}

type PlayerConfig struct {
	Width        float64 `toml:"width"`
	Height       float64 `toml:"height"`
	StartX       float64 `toml:"start_x"`
	StartY       float64 `toml:"start_y"`
	Speed        float64 `toml:"speed"`        // Horizontal pixels per frame while a key is held
	BulletSpeed  float64 `toml:"bullet_speed"` // Negative is upward
	BulletWidth  float64 `toml:"bullet_width"`
	BulletHeight float64 `toml:"bullet_height"`
	BulletImage  string  `toml:"bullet_image"`
}

type EnemyConfig struct {
	DownShift  float64               `toml:"down_shift"`  // Wave step on each bounce side change
	BottomLine float64               `toml:"bottom_line"` // y at which an enemy ends the run
	GridX      float64               `toml:"grid_x"`
	GridY      float64               `toml:"grid_y"`
	OriginX    float64               `toml:"origin_x"`
	Classes    map[string]EnemyClass `toml:"classes"`
}

// EnemyClass is the per-class template applied at spawn time
type EnemyClass struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	SpeedX      float64 `toml:"speed_x"`
	SpeedY      float64 `toml:"speed_y"`
	Image       string  `toml:"image"`
	BulletImage string  `toml:"bullet_image"`
	BulletSpeed float64 `toml:"bullet_speed"`
	FireChance  float64 `toml:"fire_chance"`
}

type ScoringConfig struct {
	LevelBonus int `toml:"level_bonus"`
	FinalBonus int `toml:"final_bonus"`
}

type TimingConfig struct {
	LevelCheck time.Duration `toml:"level_check"`
	// KeyRelease is how long a steering key counts as held after its last
	// repeat; terminals report presses only
	KeyRelease time.Duration `toml:"key_release"`
}

// ScreenConfig holds per-screen scenery and ambient track
type ScreenConfig struct {
	Background string `toml:"background"`
	Track      string `toml:"track"`
	Banner     string `toml:"banner"`
	Hint       string `toml:"hint"`
}

type AudioConfig struct {
	Enabled     bool    `toml:"enabled"`
	Volume      float64 `toml:"volume"` // Linear master gain, 0 silences
	FinishSound string  `toml:"finish_sound"`
}

type LoggingConfig struct {
	Enabled bool              `toml:"enabled"`
	Level   string            `toml:"level"`
	Format  string            `toml:"format"` // "json" or "console"
	File    string            `toml:"file"`
	Levels  map[string]string `toml:"levels"` // Per named logger overrides
}

type ScriptConfig struct {
	Path string `toml:"path"` // Optional Lua balance script
}

// Load reads a TOML file over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Defaults()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Screen returns the scenery config for s, zero value when unset
func (c *Config) Screen(s core.Screen) ScreenConfig {
	return c.Screens[s.String()]
}

// Class returns the named enemy class
func (c *Config) Class(name string) (EnemyClass, error) {
	class, ok := c.Enemy.Classes[name]
	if !ok {
		return EnemyClass{}, fmt.Errorf("%w: %q", ErrUnknownClass, name)
	}
	return class, nil
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %gx%g", c.Window.Width, c.Window.Height)
	}
	if c.Window.FPSLimit <= 0 {
		return fmt.Errorf("window.fps_limit must be positive, got %d", c.Window.FPSLimit)
	}
	if c.Timing.LevelCheck <= 0 {
		return fmt.Errorf("timing.level_check must be positive, got %s", c.Timing.LevelCheck)
	}
	if c.Timing.KeyRelease <= 0 {
		return fmt.Errorf("timing.key_release must be positive, got %s", c.Timing.KeyRelease)
	}
	for name := range c.Screens {
		if _, err := core.ParseScreen(name); err != nil {
			return fmt.Errorf("screens: %w", err)
		}
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("audio.volume %g outside [0, 1]", c.Audio.Volume)
	}
	for name, class := range c.Enemy.Classes {
		if class.FireChance < 0 || class.FireChance > 1 {
			return fmt.Errorf("enemy class %q: fire_chance %g outside [0, 1]", name, class.FireChance)
		}
	}
	return nil
}

// Defaults returns the built-in configuration
func Defaults() *Config {
	return &Config{
		Window: WindowConfig{
			Width:      1024,
			Height:     720,
			Title:      "Space Invaders",
			FPSLimit:   50,
			FPSHistory: 10,
			ScoreColor: core.RGBGreen,
			RectColor:  core.RGBWhite,
		},
		Player: PlayerConfig{
			Width:        40,
			Height:       40,
			StartX:       1024/2 - 40/2,
			StartY:       600,
			Speed:        3,
			BulletSpeed:  -10,
			BulletWidth:  40,
			BulletHeight: 40,
			BulletImage:  "bullet_player",
		},
		Enemy: EnemyConfig{
			DownShift:  10,
			BottomLine: 700,
			GridX:      100,
			GridY:      70,
			OriginX:    100,
			Classes: map[string]EnemyClass{
				"frigate": {
					Width:       40,
					Height:      40,
					SpeedX:      4,
					SpeedY:      0,
					Image:       "enemy_frigate",
					BulletImage: "bullet_frigate",
					BulletSpeed: 5,
					FireChance:  0.0005,
				},
				"carrier": {
					Width:       40,
					Height:      40,
					SpeedX:      6,
					SpeedY:      0.35,
					Image:       "enemy_carrier",
					BulletImage: "bullet_carrier",
					BulletSpeed: 6,
					FireChance:  0.003,
				},
				"buff": {
					Width:       40,
					Height:      40,
					SpeedX:      2,
					SpeedY:      0.25,
					Image:       "enemy_buff",
					BulletImage: "bullet_buff",
					BulletSpeed: 7,
					FireChance:  0.00075,
				},
			},
		},
		Scoring: ScoringConfig{
			LevelBonus: 420,
			FinalBonus: 2321,
		},
		Timing: TimingConfig{
			LevelCheck: 950 * time.Millisecond,
			KeyRelease: 400 * time.Millisecond,
		},
		Screens: map[string]ScreenConfig{
			"welcome": {
				Background: "bg_main",
				Track:      "welcome",
				Banner:     "SPACE INVADERS",
				Hint:       "ENTER play   Q exit",
			},
			"level1": {Background: "bg_level1", Track: "level1"},
			"level2": {Background: "bg_level2", Track: "level2"},
			"level3": {Background: "bg_level3", Track: "level3"},
			"gameover": {
				Background: "bg_main",
				Track:      "gameover",
				Banner:     "GAME OVER",
				Hint:       "ENTER play again   M menu   Q exit",
			},
		},
		Audio: AudioConfig{
			Enabled:     true,
			Volume:      0.5,
			FinishSound: "finish",
		},
		Logging: LoggingConfig{
			Enabled: false,
			Level:   "info",
			Format:  "console",
			File:    "logs/space-invaders.log",
			Levels: map[string]string{
				"main":  "error",
				"world": "info",
				"audio": "info",
			},
		},
	}
}
