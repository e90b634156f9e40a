package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"dungeons/pkg/engine/random"
	"dungeons/pkg/game/config"
	"dungeons/pkg/game/console"
	"dungeons/pkg/game/gameplay"
	"dungeons/pkg/game/renderer/tui"
	"dungeons/pkg/game/telemetry"
)

var (
	configPath        = flag.String("config", "", "path to a YAML config file")
	envFile           = flag.String("env", ".env", "path to a .env file of DUNGEONS_* settings")
	rows              = flag.Int("rows", 0, "number of rows (at least 4)")
	cols              = flag.Int("cols", 0, "number of columns (at least 4)")
	wrap              = flag.Bool("wrap", false, "let passages wrap around the edges")
	interconnectivity = flag.Int("interconnectivity", 0, "extra passages beyond the spanning tree")
	percent           = flag.Int("percent", 0, "percentage of caves with treasure and of cells with arrows")
	monsters          = flag.Int("monsters", 0, "number of monsters")
	seed              = flag.Int64("seed", 0, "random seed (0 picks one)")
	name              = flag.String("name", "", "player name")
	verbose           = flag.Bool("v", false, "log debug output to stderr")
)

// loadConfig reads the config layers and then applies any flag given on the
// command line.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		return cfg, err
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "wrap":
			cfg.Wrap = *wrap
		case "interconnectivity":
			cfg.Interconnectivity = *interconnectivity
		case "percent":
			cfg.DistributionPercent = *percent
		case "monsters":
			cfg.MonsterCount = *monsters
		case "seed":
			cfg.Seed = *seed
		case "name":
			cfg.PlayerName = *name
		}
	})

	return cfg, cfg.Validate()
}

func run(logger *slog.Logger) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if telemetry.Enabled() {
		shutdown, err := telemetry.Setup(context.Background())
		if err != nil {
			logger.Warn("telemetry disabled", "err", err)
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Warn("telemetry shutdown", "err", err)
				}
			}()
		}
	}

	var rng random.Source = random.New()
	if cfg.Seed != 0 {
		rng = random.NewSeeded(cfg.Seed)
	}
	logger.Debug("starting", "seed", rng.Seed(), "config", fmt.Sprintf("%+v", cfg))

	g, err := gameplay.BuildGame(cfg, rng, logger)
	if err != nil {
		return fmt.Errorf("cannot build dungeon: %w", err)
	}

	c := console.New(os.Stdin, os.Stdout, g, tui.New(os.Stdout))
	return c.Run(cfg.PlayerName)
}

func main() {
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(logger); err != nil {
		log.Fatalf("dungeons: %v", err)
	}
}
