// cmd/orbital-defense/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"orbital-defense/pkg/config"
	"orbital-defense/pkg/engine"
	"orbital-defense/pkg/event"
	"orbital-defense/pkg/input"
	"orbital-defense/pkg/logging"
	"orbital-defense/pkg/render"
	"orbital-defense/pkg/replay"
)

func main() {
	configPath := flag.String("config", "", "path to YAML configuration (built-in defaults when empty)")
	writeConfig := flag.String("write-config", "", "write the default configuration to this path and exit")
	flag.Parse()

	ctx := context.Background()
	logger := logging.NewLogger()

	if *writeConfig != "" {
		if err := config.Save(config.Default(), *writeConfig); err != nil {
			logger.Error(ctx, "failed to write default configuration", err, "path", *writeConfig)
			os.Exit(1)
		}
		fmt.Println("wrote default configuration to", *writeConfig)
		return
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			logger.Error(ctx, "failed to load configuration", err, "path", *configPath)
			os.Exit(1)
		}
		cfg = loaded
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(ctx, "game exited with error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger *logging.Logger) error {
	game := engine.NewGame(cfg)
	subscribeLogging(ctx, game, logger)

	renderer, err := render.NewTerminalRenderer(cfg.Display.Width, cfg.Display.Height)
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	defer renderer.Close()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- renderer.PollEvent()
		}
	}()

	dt := cfg.Simulation.TimeStep
	ticker := time.NewTicker(time.Duration(dt * float64(time.Second)))
	defer ticker.Stop()

	game.Start()
	logger.Info(ctx, "game started", "time_step", dt)

	endSaved := false
	for {
		select {
		case ev := <-events:
			key, ok := ev.(*tcell.EventKey)
			if !ok {
				continue
			}
			switch cmd := input.Translate(key); cmd {
			case input.Quit:
				logger.Info(ctx, "quit requested", "score", game.Score)
				return nil
			case input.SaveReplay:
				saveReplay(ctx, game, logger)
			default:
				game.HandleCommand(cmd)
			}

		case <-ticker.C:
			game.Update(dt)
			if game.Status == engine.StatusEnded && !endSaved {
				saveReplay(ctx, game, logger)
				endSaved = true
			}
			renderer.Render(game.Snapshot())
		}
	}
}

// subscribeLogging mirrors notable game events into the structured log
func subscribeLogging(ctx context.Context, game *engine.Game, logger *logging.Logger) {
	game.EventBus.Subscribe(event.EnemySpawned, func(e event.Event) {
		ee := e.(*event.EnemyEvent)
		logger.Debug(ctx, "enemy spawned", "kind", ee.EnemyKind, "points", ee.Points)
	})
	game.EventBus.Subscribe(event.EnemyDestroyed, func(e event.Event) {
		ee := e.(*event.EnemyEvent)
		logger.Info(ctx, "enemy destroyed", "kind", ee.EnemyKind, "points", ee.Points)
	})
	game.EventBus.Subscribe(event.PlanetHit, func(e event.Event) {
		logger.Info(ctx, "planet hit")
	})
	game.EventBus.Subscribe(event.GameEnded, func(e event.Event) {
		logger.Info(ctx, "game over", "score", game.Score, "sim_time", game.SimTime())
	})
}

func saveReplay(ctx context.Context, game *engine.Game, logger *logging.Logger) {
	tracks := replay.Collect(game.Motion)
	err := replay.Save(replay.DefaultFilename, tracks)
	switch {
	case errors.Is(err, replay.ErrNoData):
		logger.Info(ctx, "no trajectory data to save")
	case err != nil:
		logger.Error(ctx, "failed to save replay", err, "path", replay.DefaultFilename)
	default:
		game.EventBus.Publish(&event.BaseEvent{EventType: event.ReplaySaved, Source: game})
		logger.Info(ctx, "replay saved", "path", replay.DefaultFilename, "tracks", len(tracks))
	}
}
