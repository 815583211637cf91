package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/mecs/audio"
	"github.com/lixenwraith/mecs/config"
	"github.com/lixenwraith/mecs/game"
	"github.com/lixenwraith/mecs/render"
	"github.com/lixenwraith/mecs/system"
)

var (
	debugFlag = flag.Bool("debug", false, "Write debug logs to the log file")
	seedFlag  = flag.Int64("seed", 0, "Random seed for apple placement (0 = time based)")
	dumpFlag  = flag.String("dump", "", "Write a JSON snapshot of the final world to this path")
	muteFlag  = flag.Bool("mute", false, "Disable sound")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}
	applyFlags(&cfg)

	logger, logFile, err := setupLogging(cfg.Debug, cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}
	log := logger.WithField("session", uuid.NewString())

	if err := run(cfg, log); err != nil {
		log.WithError(err).Error("snake exited with error")
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

// applyFlags lets explicitly set flags override the environment
func applyFlags(cfg *config.Game) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debugFlag
		case "seed":
			cfg.Seed = *seedFlag
		case "mute":
			cfg.Audio = !*muteFlag
		}
	})
}

func run(cfg config.Game, log logrus.FieldLogger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	screen.HideCursor()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	w, err := game.NewWorld(cfg, game.WithLogger(log))
	if err != nil {
		screen.Fini()
		return err
	}
	system.Install(w)
	if err := w.Start(); err != nil {
		screen.Fini()
		return err
	}

	player, err := audio.NewPlayer(cfg.Audio)
	if err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	}
	defer player.Close()

	renderer := render.NewTerminalRenderer(screen)
	renderer.RenderFrame(w)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	quit, err := loop(w, renderer, player, events, cfg)
	if err != nil {
		screen.Fini()
		return err
	}

	if !quit {
		renderer.RenderGameOver(w)
		player.Play(audio.SoundGameOver)
		drainEvents(events)
		waitForKey(events)
	}
	screen.Fini()

	log.WithField("score", w.Score).Info("game finished")
	if *dumpFlag != "" {
		return dumpSnapshot(w, *dumpFlag)
	}
	return nil
}

// loop steps the world once per tick until the game ends or the player quits
func loop(w *game.World, renderer *render.TerminalRenderer, player *audio.Player, events <-chan tcell.Event, cfg config.Game) (quit bool, err error) {
	ticker := time.NewTicker(cfg.Tick())
	defer ticker.Stop()

	var turns turnQueue

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return true, nil
			}
			key, isKey := ev.(*tcell.EventKey)
			if !isKey {
				continue
			}
			if isQuit(key.Key(), key.Rune()) {
				return true, nil
			}
			if dir, ok := directionFor(key.Key(), key.Rune()); ok {
				turns.push(dir)
			}

		case <-ticker.C:
			res, err := tick(w, &turns)
			if err != nil {
				return false, err
			}
			if res.Ate > 0 {
				player.Play(audio.SoundEat)
			}
			if res.GameOver {
				return false, nil
			}
			renderer.RenderFrame(w)
		}
	}
}

func waitForKey(events <-chan tcell.Event) {
	for ev := range events {
		if _, ok := ev.(*tcell.EventKey); ok {
			return
		}
	}
}

func dumpSnapshot(w *game.World, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return w.WriteSnapshot(f)
}
