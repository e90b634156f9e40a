// Package gameplay provides core game logic for player movement and interactions.
package gameplay

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"dungeons/pkg/engine/random"
	"dungeons/pkg/engine/world"
	"dungeons/pkg/game/config"
	"dungeons/pkg/game/generator"
	"dungeons/pkg/game/setup"
	"dungeons/pkg/game/state"
	"dungeons/pkg/game/telemetry"
)

// maxNewSeed bounds the seeds NewGame picks (exclusive).
const maxNewSeed = 10000

// BuildGame generates and stocks a dungeon from cfg, drawing from rng, and
// returns a game waiting for Start. A nil logger discards.
func BuildGame(cfg config.Config, rng random.Source, logger *slog.Logger) (*state.Game, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	grid, err := buildWorld(cfg, rng, logger)
	if err != nil {
		return nil, err
	}
	return state.NewGame(grid, cfg, rng, logger), nil
}

// buildWorld runs generation and distribution. Nothing outside the returned
// grid is touched, so a failure leaves any existing game as it was.
func buildWorld(cfg config.Config, rng random.Source, logger *slog.Logger) (*world.Grid, error) {
	_, span := telemetry.Tracer("gameplay").Start(context.Background(), "dungeon.generate")
	defer span.End()

	span.SetAttributes(
		attribute.Int("dungeon.rows", cfg.Rows),
		attribute.Int("dungeon.cols", cfg.Cols),
		attribute.Bool("dungeon.wrap", cfg.Wrap),
		attribute.Int("dungeon.interconnectivity", cfg.Interconnectivity),
		attribute.Int64("dungeon.seed", rng.Seed()),
	)

	grid, err := generator.Generate(cfg, rng)
	if err == nil {
		err = setup.Distribute(grid, cfg, rng)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Warn("dungeon generation failed", "seed", rng.Seed(), "err", err)
		return nil, err
	}

	span.SetAttributes(
		attribute.String("dungeon.start", grid.StartCell().Name),
		attribute.String("dungeon.exit", grid.ExitCell().Name),
		attribute.Int("dungeon.caves", len(grid.Caves())),
	)
	logger.Info("dungeon generated",
		"seed", rng.Seed(),
		"rows", cfg.Rows,
		"cols", cfg.Cols,
		"wrap", cfg.Wrap,
		"start", grid.StartCell().Name,
		"exit", grid.ExitCell().Name,
	)
	return grid, nil
}

// Reset rebuilds the same dungeon by re-seeding the source with its own seed.
// The player and history are discarded and the game waits for Start again.
func Reset(g *state.Game) error {
	g.Random.SetSeed(g.Random.Seed())
	grid, err := buildWorld(g.Config, g.Random, g.Logger)
	if err != nil {
		return err
	}
	g.Replace(grid, g.Config)
	logMessage(g, "RESET")
	return nil
}

// NewGame builds a different dungeon from cfg under a freshly drawn seed.
// On failure the previous seed is restored and the current game is kept.
func NewGame(g *state.Game, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	old := g.Random.Seed()
	seed := old
	for seed == old {
		n, err := g.Random.NextInRange(0, maxNewSeed)
		if err != nil {
			return err
		}
		seed = int64(n)
	}

	g.Random.SetSeed(seed)
	grid, err := buildWorld(cfg, g.Random, g.Logger)
	if err != nil {
		g.Random.SetSeed(old)
		return err
	}
	cfg.Seed = seed
	g.Replace(grid, cfg)
	return nil
}
