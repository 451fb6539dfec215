package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/nimobeeren/InternationalDraughts/internal/evalbuilder"
	"github.com/nimobeeren/InternationalDraughts/pkg/engine"
	"github.com/nimobeeren/InternationalDraughts/pkg/eval"
)

const envPrefix = "DRAUGHTS"

type Config struct {
	Depth    int          `mapstructure:"depth"`
	Eval     string       `mapstructure:"eval"`
	Weights  Overrides    `mapstructure:"weights"`
	Params   Overrides    `mapstructure:"params"`
	LogLevel string       `mapstructure:"log_level"`
	Server   ServerConfig `mapstructure:"server"`
	Arena    ArenaConfig  `mapstructure:"arena"`
}

// Overrides set single weights or params by key on top of a preset.
type Overrides map[string]int

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type ArenaConfig struct {
	EvalA       string `mapstructure:"eval_a"`
	EvalB       string `mapstructure:"eval_b"`
	Depth       int    `mapstructure:"depth"`
	Concurrency int    `mapstructure:"concurrency"`
	MaxPlies    int    `mapstructure:"max_plies"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("depth", engine.DefaultDepth)
	v.SetDefault("eval", evalbuilder.Default)
	v.SetDefault("log_level", "info")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("arena.eval_a", evalbuilder.Default)
	v.SetDefault("arena.eval_b", "material")
	v.SetDefault("arena.depth", 4)
	v.SetDefault("arena.concurrency", 4)
	v.SetDefault("arena.max_plies", 200)
}

// Load reads defaults, the optional config file at path and DRAUGHTS_*
// environment variables, in increasing priority.
func Load(path string) (*Config, error) {
	var v = viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// weights and params have no defaults, so AutomaticEnv alone never sees them
	for _, key := range eval.WeightKeys {
		if err := v.BindEnv("weights." + key); err != nil {
			return nil, err
		}
	}
	for _, key := range eval.ParamKeys {
		if err := v.BindEnv("params." + key); err != nil {
			return nil, err
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %v: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if err := engine.ValidateDepth(c.Depth); err != nil {
		return err
	}
	for _, name := range []string{c.Eval, c.Arena.EvalA, c.Arena.EvalB} {
		if _, err := c.Evaluator(name); err != nil {
			return err
		}
	}
	if c.Arena.Concurrency < 1 {
		return errors.New("arena concurrency must be at least 1")
	}
	if c.Arena.MaxPlies < 1 {
		return errors.New("arena max plies must be at least 1")
	}
	return nil
}

// NewEvaluator builds the configured preset with weight and param overrides applied.
func (c *Config) NewEvaluator() (*eval.EvaluationService, error) {
	return c.Evaluator(c.Eval)
}

// Evaluator builds the named preset and applies the overrides field by
// field, so keys left out keep the preset value.
func (c *Config) Evaluator(name string) (*eval.EvaluationService, error) {
	var e, err = evalbuilder.Get(name)
	if err != nil {
		return nil, err
	}
	for key, value := range c.Weights {
		if err := e.Weights.Set(key, value); err != nil {
			return nil, fmt.Errorf("weights: %w", err)
		}
	}
	for key, value := range c.Params {
		if err := e.Params.Set(key, value); err != nil {
			return nil, fmt.Errorf("params: %w", err)
		}
	}
	if err := e.Params.Validate(); err != nil {
		return nil, fmt.Errorf("%v params: %w", name, err)
	}
	return e, nil
}
