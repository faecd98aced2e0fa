package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-isatty"

	"github.com/lixenwraith/gunslinger/audio"
	"github.com/lixenwraith/gunslinger/config"
	"github.com/lixenwraith/gunslinger/core"
	"github.com/lixenwraith/gunslinger/engine"
	"github.com/lixenwraith/gunslinger/input"
	"github.com/lixenwraith/gunslinger/log"
	"github.com/lixenwraith/gunslinger/render"
	"github.com/lixenwraith/gunslinger/status"
	"github.com/lixenwraith/gunslinger/store"
	"github.com/lixenwraith/gunslinger/system"
)

const storeOpenTimeout = 5 * time.Second

var (
	envFlag  = flag.String("env", ".env", "Optional dotenv file with GUNSLINGER_* settings")
	dbFlag   = flag.String("db", "", "History DSN: sqlite path, postgres:// URL or memory:")
	logFlag  = flag.String("log", "", "Log file (logging is discarded when empty)")
	muteFlag = flag.Bool("mute", false, "Disable audio")
	seedFlag = flag.Int64("seed", 0, "Fixed random seed, 0 seeds from the clock")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "gunslinger: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return errors.New("stdout is not a terminal")
	}

	// The screen owns stdout from here on
	if err := setupLogging(cfg.LogFile); err != nil {
		return err
	}
	defer log.Close()

	history := openHistory(cfg.DSN)
	if history != nil {
		defer history.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	core.SetCrashCleanup(screen.Fini)
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	notifier := setupAudio(cfg)
	if sm, ok := notifier.(*audio.SoundManager); ok {
		defer sm.Close()
	}

	reg := status.NewRegistry()
	ctx := engine.NewGameContext(cfg, engine.WithNotifier(notifier), engine.WithStatus(reg))
	system.Install(ctx)

	renderer := render.NewTerminalRenderer(screen)

	session := engine.NewSession(ctx, history, renderer)
	defer session.Close()
	renderer.Render(session.Frame())

	dispatcher := input.NewDispatcher(session, renderer, cfg.PlayerStep)

	events := make(chan tcell.Event, 256)
	core.Go(func() {
		defer close(events)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // Screen finalized
			}
			events <- ev
		}
	})

	for ev := range events {
		if dispatcher.HandleEvent(ev) {
			break
		}
	}

	snap := reg.Snapshot()
	log.Info("shutdown", "ticks", snap.Ints[status.EngineTicks], "kills", snap.Ints[status.CombatKills],
		"saves", snap.Ints[status.SessionSaves], "save_errors", snap.Ints[status.SessionSaveError])
	return nil
}

// loadConfig resolves the environment and applies flag overrides
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*envFlag)
	if err != nil {
		return cfg, err
	}
	if *dbFlag != "" {
		cfg.DSN = *dbFlag
	}
	if *logFlag != "" {
		cfg.LogFile = *logFlag
	}
	if *muteFlag {
		cfg.AudioEnabled = false
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	cfg.Sanitize()
	if err := cfg.RequireClock(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// setupLogging routes the global logger to a file, or discards it
func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	if err := log.SetFileOutput(path); err != nil {
		return fmt.Errorf("open log %s: %w", path, err)
	}
	return nil
}

// openHistory opens the result store; failure degrades to a session without history
func openHistory(dsn string) store.Store {
	ctx, cancel := context.WithTimeout(context.Background(), storeOpenTimeout)
	defer cancel()

	st, err := store.Open(ctx, dsn)
	if err != nil {
		log.Warn("history unavailable, results will not be saved", "dsn", dsn, "error", err)
		return nil
	}
	return st
}

// setupAudio returns a running sound manager, or a silent notifier when audio is off or broken
func setupAudio(cfg config.Config) core.Notifier {
	if !cfg.AudioEnabled {
		return core.NopNotifier{}
	}
	sm := audio.NewSoundManager(audio.FromConfig(cfg))
	if err := sm.Initialize(); err != nil {
		log.Warn("audio disabled", "error", err)
		sm.Close()
		return core.NopNotifier{}
	}
	return sm
}
