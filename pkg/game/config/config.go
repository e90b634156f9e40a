// Package config holds the parameters a dungeon is generated from and loads
// them from YAML files, .env files and the process environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfiguration is returned for any parameter set a dungeon cannot
// be built from.
var ErrInvalidConfiguration = errors.New("invalid configuration")

// MinDimension is the smallest allowed row or column count.
const MinDimension = 4

// EnvPrefix prefixes every environment variable the loader reads.
const EnvPrefix = "DUNGEONS_"

// Config describes one dungeon.
type Config struct {
	Wrap                bool   `yaml:"wrap"`
	Rows                int    `yaml:"rows"`
	Cols                int    `yaml:"cols"`
	Interconnectivity   int    `yaml:"interconnectivity"`
	DistributionPercent int    `yaml:"distribution_percent"`
	MonsterCount        int    `yaml:"monsters"`
	Seed                int64  `yaml:"seed"`
	PlayerName          string `yaml:"player_name"`
}

// Default returns the configuration used when nothing else is given.
// A zero Seed means "pick one at startup".
func Default() Config {
	return Config{
		Wrap:                false,
		Rows:                6,
		Cols:                8,
		Interconnectivity:   2,
		DistributionPercent: 20,
		MonsterCount:        3,
		PlayerName:          "Player-1",
	}
}

// Validate checks the ranges every dungeon needs. Constraints that depend on
// the generated graph (interconnectivity headroom, cave count) are checked
// during generation.
func (c Config) Validate() error {
	if c.Rows < MinDimension || c.Cols < MinDimension {
		return fmt.Errorf("%w: dimensions %dx%d, need at least %dx%d",
			ErrInvalidConfiguration, c.Rows, c.Cols, MinDimension, MinDimension)
	}
	if c.Interconnectivity < 0 {
		return fmt.Errorf("%w: interconnectivity %d is negative", ErrInvalidConfiguration, c.Interconnectivity)
	}
	if c.DistributionPercent < 0 || c.DistributionPercent > 100 {
		return fmt.Errorf("%w: distribution percent %d outside [0, 100]", ErrInvalidConfiguration, c.DistributionPercent)
	}
	if c.MonsterCount < 1 {
		return fmt.Errorf("%w: need at least one monster, got %d", ErrInvalidConfiguration, c.MonsterCount)
	}
	return nil
}

// Load builds a Config from defaults, then the YAML file at path, then the
// .env file at envFile, then DUNGEONS_* environment variables. Empty paths
// are skipped. A missing envFile is not an error.
func Load(path, envFile string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			if err := cfg.apply(func(key string) (string, bool) {
				v, ok := vars[key]
				return v, ok
			}); err != nil {
				return cfg, fmt.Errorf("%s: %w", envFile, err)
			}
		case !errors.Is(err, os.ErrNotExist):
			return cfg, fmt.Errorf("reading env file %s: %w", envFile, err)
		}
	}

	if err := cfg.apply(os.LookupEnv); err != nil {
		return cfg, fmt.Errorf("environment: %w", err)
	}

	return cfg, nil
}

// apply overlays every DUNGEONS_* variable lookup can find.
func (c *Config) apply(lookup func(string) (string, bool)) error {
	ints := []struct {
		key string
		dst *int
	}{
		{"ROWS", &c.Rows},
		{"COLS", &c.Cols},
		{"INTERCONNECTIVITY", &c.Interconnectivity},
		{"DISTRIBUTION_PERCENT", &c.DistributionPercent},
		{"MONSTERS", &c.MonsterCount},
	}
	for _, f := range ints {
		v, ok := lookup(EnvPrefix + f.key)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %s%s=%q is not a number", ErrInvalidConfiguration, EnvPrefix, f.key, v)
		}
		*f.dst = n
	}

	if v, ok := lookup(EnvPrefix + "WRAP"); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%w: %sWRAP=%q is not a boolean", ErrInvalidConfiguration, EnvPrefix, v)
		}
		c.Wrap = b
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return fmt.Errorf("%w: %sSEED=%q is not a number", ErrInvalidConfiguration, EnvPrefix, v)
		}
		c.Seed = n
	}
	if v, ok := lookup(EnvPrefix + "PLAYER_NAME"); ok && strings.TrimSpace(v) != "" {
		c.PlayerName = strings.TrimSpace(v)
	}
	return nil
}
