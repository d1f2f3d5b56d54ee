package config

import (
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/milk9111/bulletboss/common"
)

// Config holds process settings. Environment variables provide the defaults
// and command-line flags override them.
type Config struct {
	Debug       bool    `env:"BULLETBOSS_DEBUG"`
	BaseMonitor bool    `env:"BULLETBOSS_BASE_MONITOR"`
	Watch       bool    `env:"BULLETBOSS_WATCH"`
	TPS         int     `env:"BULLETBOSS_TPS"    envDefault:"60"`
	Volume      float64 `env:"BULLETBOSS_VOLUME" envDefault:"0.5"`
}

// LoadFromEnv parses BULLETBOSS_* variables.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.Normalize()
	return cfg, nil
}

// RegisterFlags binds the config fields to fs using the current values as
// defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug overlay and F2 snapshot copy")
	fs.BoolVar(&c.BaseMonitor, "m", c.BaseMonitor, "use base monitor instead of primary (for multi-monitor setups)")
	fs.BoolVar(&c.Watch, "watch", c.Watch, "rebuild the scene when prefab YAML files in prefabs/ change")
	fs.IntVar(&c.TPS, "tps", c.TPS, "simulation ticks per second")
	fs.Float64Var(&c.Volume, "volume", c.Volume, "volley cue volume, 0 mutes")
}

// Normalize clamps out-of-range values.
func (c *Config) Normalize() {
	if c.TPS <= 0 {
		c.TPS = common.DefaultTPS
	}
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 1 {
		c.Volume = 1
	}
}
