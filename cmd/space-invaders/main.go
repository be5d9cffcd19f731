package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/lixenwraith/space-invaders/audio"
	"github.com/lixenwraith/space-invaders/config"
	"github.com/lixenwraith/space-invaders/core"
	"github.com/lixenwraith/space-invaders/engine"
	"github.com/lixenwraith/space-invaders/script"
	"github.com/lixenwraith/space-invaders/status"
	"github.com/lixenwraith/space-invaders/system"
	"github.com/lixenwraith/space-invaders/terminal"
	"github.com/lixenwraith/space-invaders/vmath"
)

type options struct {
	configPath string
	levelsPath string
	scriptPath string
	debug      bool
	mute       bool
	seed       uint64
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("space-invaders", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "TOML config file, built-in defaults when empty")
	fs.StringVar(&o.levelsPath, "levels", "", "YAML level table, built-in table when empty")
	fs.StringVar(&o.scriptPath, "script", "", "Lua balance script, overrides script.path")
	fs.BoolVar(&o.debug, "debug", false, "Enable debug logging to the configured file")
	fs.BoolVar(&o.mute, "mute", false, "Disable audio")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed, time based when 0")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return o, nil
}

// loadConfig resolves config and levels, then applies flag overrides
func loadConfig(o options) (*config.Config, *config.LevelTable, error) {
	cfg := config.Defaults()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return nil, nil, err
		}
	}
	levels, err := config.LoadLevels(o.levelsPath)
	if err != nil {
		return nil, nil, err
	}
	if err := levels.Validate(cfg); err != nil {
		return nil, nil, err
	}

	if o.debug {
		cfg.Logging.Enabled = true
		cfg.Logging.Level = "debug"
		for name := range cfg.Logging.Levels {
			cfg.Logging.Levels[name] = "debug"
		}
	}
	if o.mute {
		cfg.Audio.Enabled = false
	}
	if o.scriptPath != "" {
		cfg.Script.Path = o.scriptPath
	}
	return cfg, levels, nil
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	o, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return
		}
		os.Exit(2)
	}
	if err := run(o); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run(o options) error {
	cfg, levels, err := loadConfig(o)
	if err != nil {
		return err
	}

	loggers, err := config.NewLoggers(cfg.Logging)
	if err != nil {
		return err
	}
	defer loggers.Sync()
	log := loggers.Named("main")

	seed := o.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	var balance engine.Balance = engine.DefaultBalance{}
	if cfg.Script.Path != "" {
		b, err := script.NewBalance(cfg.Script.Path, loggers.Named("script"))
		if err != nil {
			return err
		}
		defer b.Close()
		balance = b
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	core.SetCrashReset(screen.Fini)
	defer screen.Fini()

	sound := audio.NewManager(cfg.Audio, loggers.Named("audio"))
	if err := sound.Init(); err != nil {
		log.Warn("audio unavailable, continuing without sound", zap.Error(err))
	}
	defer sound.Close()

	reg := status.NewRegistry()
	reg.Bools.Get(status.KeyAudioEnabled).Store(cfg.Audio.Enabled)

	w := engine.NewWorld(engine.Deps{
		Config:   cfg,
		Levels:   levels,
		Rand:     vmath.NewFastRand(seed),
		Renderer: terminal.NewScreen(screen, cfg.Window.Width, cfg.Window.Height, nil),
		Audio:    sound,
		Balance:  balance,
		Log:      loggers.Named("world"),
		Status:   reg,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	input := terminal.NewInput(screen, cfg.Timing.KeyRelease)
	core.Go(func() { input.Run(ctx) })

	clock := engine.NewClock(engine.NewTimeProvider(), cfg.Window.FPSHistory, time.Sleep)
	game := system.NewGame(w, clock, input.Events())

	log.Info("starting", zap.Uint64("seed", seed), zap.Bool("audio", cfg.Audio.Enabled), zap.String("script", cfg.Script.Path))
	err = game.Run(ctx)
	log.Info("stopped", zap.Any("status", reg.Snapshot()))
	if err == context.Canceled {
		return nil
	}
	return err
}
