package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"isolation/game"
	"isolation/meta"

	"github.com/spf13/viper"
)

type Weights struct {
	Interior float64 `mapstructure:"interior"`
	Edge     float64 `mapstructure:"edge"`
	Corner   float64 `mapstructure:"corner"`
}

type Config struct {
	Debug bool `mapstructure:"debug"`

	// Search
	DepthLimit     int           `mapstructure:"depth_limit"`
	OpeningPlies   int           `mapstructure:"opening_plies"`
	TimeLimit      time.Duration `mapstructure:"time_limit"`
	Evaluator      string        `mapstructure:"evaluator"`
	Weights        Weights       `mapstructure:"weights"`
	OpponentFactor float64       `mapstructure:"opponent_factor"`

	// Experiments
	Games     int      `mapstructure:"games"`
	Parallel  int      `mapstructure:"parallel"`
	Opponents []string `mapstructure:"opponents"`
	OutputDir string   `mapstructure:"output_dir"`
	Seed      uint64   `mapstructure:"seed"` // 0 draws seeds from system entropy

	// Agent server
	Listen string `mapstructure:"listen"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("debug", false)
	v.SetDefault("depth_limit", meta.DEPTH_LIMIT)
	v.SetDefault("opening_plies", meta.OPENING_PLIES)
	v.SetDefault("time_limit", meta.TIME_LIMIT)
	v.SetDefault("evaluator", "mobility")
	v.SetDefault("weights.interior", 3.0)
	v.SetDefault("weights.edge", 2.0)
	v.SetDefault("weights.corner", 1.0)
	v.SetDefault("opponent_factor", 2.0)
	v.SetDefault("games", 10)
	v.SetDefault("parallel", 4)
	v.SetDefault("opponents", []string{"random", "greedy", "minimax"})
	v.SetDefault("output_dir", "experiments/results")
	v.SetDefault("seed", 0)
	v.SetDefault("listen", ":8080")
}

// Load reads defaults, then the optional YAML file at path, then ISOLATION_*
// environment variables (e.g. ISOLATION_DEPTH_LIMIT, ISOLATION_WEIGHTS_EDGE).
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("isolation")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.DepthLimit < 1 {
		errs = append(errs, fmt.Errorf("depth_limit must be at least 1, got %d", c.DepthLimit))
	}
	if c.OpeningPlies < 0 {
		errs = append(errs, fmt.Errorf("opening_plies cannot be negative, got %d", c.OpeningPlies))
	}
	if c.TimeLimit <= 0 {
		errs = append(errs, fmt.Errorf("time_limit must be positive, got %v", c.TimeLimit))
	}
	if c.Games < 1 {
		errs = append(errs, fmt.Errorf("games must be at least 1, got %d", c.Games))
	}
	if c.Parallel < 1 {
		errs = append(errs, fmt.Errorf("parallel must be at least 1, got %d", c.Parallel))
	}
	if _, err := c.Evaluate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (c *Config) Mobility() game.MobilityEvaluator {
	e := game.NewMobilityEvaluator()
	e.Weights = game.ZoneWeights{
		Interior: c.Weights.Interior,
		Edge:     c.Weights.Edge,
		Corner:   c.Weights.Corner,
	}
	e.OpponentFactor = c.OpponentFactor
	return e
}

func (c *Config) Evaluate() (game.Evaluate, error) {
	return game.EvaluatorByName(c.Evaluator, c.Mobility())
}
