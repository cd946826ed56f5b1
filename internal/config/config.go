// Package config loads equal-height layouts and scope settings from TOML or
// YAML files, with EQUALHEIGHT_* environment variables taking precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	equalheight "github.com/grindlemire/go-equalheight"
)

// EnvPrefix is prepended to every environment override.
const EnvPrefix = "EQUALHEIGHT_"

// Config is a scope configuration plus the layout it measures.
type Config struct {
	ID             string `toml:"id" yaml:"id"`
	EqualRows      Rows   `toml:"equal_rows" yaml:"equal_rows"`
	AnimationSpeed Speed  `toml:"animation_speed" yaml:"animation_speed"`
	TimeoutMS      int    `toml:"timeout_ms" yaml:"timeout_ms"`
	DeveloperMode  Mode   `toml:"developer_mode" yaml:"developer_mode"`

	Page   Page    `toml:"page" yaml:"page"`
	Cards  []Card  `toml:"cards" yaml:"cards"`
	Blocks []Block `toml:"blocks" yaml:"blocks"`
}

// Page sizes the layout grid.
type Page struct {
	Width          int `toml:"width" yaml:"width"`
	Height         int `toml:"height" yaml:"height"`
	Gap            int `toml:"gap" yaml:"gap"`
	RowGap         int `toml:"row_gap" yaml:"row_gap"`
	MinColumnWidth int `toml:"min_column_width" yaml:"min_column_width"`
	MaxColumns     int `toml:"max_columns" yaml:"max_columns"`
}

// Card is a holder: its blocks share one grid cell and one position.
type Card struct {
	Blocks []Block `toml:"blocks" yaml:"blocks"`
}

// Block is one member.
type Block struct {
	Name        string `toml:"name" yaml:"name"`
	Text        string `toml:"text" yaml:"text"`
	Border      bool   `toml:"border" yaml:"border"`
	MinHeight   int    `toml:"min_height" yaml:"min_height"`
	Placeholder bool   `toml:"placeholder" yaml:"placeholder"`
	Disabled    bool   `toml:"disabled" yaml:"disabled"`
}

// envConfig holds the environment overrides. Unset variables leave the
// seeded values alone.
type envConfig struct {
	ID             string `env:"ID"`
	EqualRows      Rows   `env:"EQUAL_ROWS"`
	AnimationSpeed Speed  `env:"ANIMATION_SPEED"`
	TimeoutMS      int    `env:"TIMEOUT_MS"`
	DeveloperMode  Mode   `env:"DEVELOPER_MODE"`
}

// Default returns the scope defaults and an 80x24 page.
func Default() Config {
	return Config{
		AnimationSpeed: Speed(equalheight.DefaultAnimationSpeed),
		TimeoutMS:      int(equalheight.DefaultTimeout / time.Millisecond),
		Page: Page{
			Width:          80,
			Height:         24,
			Gap:            2,
			RowGap:         1,
			MinColumnWidth: 24,
			MaxColumns:     4,
		},
	}
}

// Load reads path (TOML, or YAML by extension) over the defaults and then
// applies environment overrides. An empty path loads only the defaults and
// the environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if err := decodeFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func decodeFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config format %q", ext)
	}
	return nil
}

func (c *Config) applyEnv() error {
	raw := envConfig{
		ID:             c.ID,
		EqualRows:      c.EqualRows,
		AnimationSpeed: c.AnimationSpeed,
		TimeoutMS:      c.TimeoutMS,
		DeveloperMode:  c.DeveloperMode,
	}
	if err := env.ParseWithOptions(&raw, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", envCause(err))
	}

	c.ID = raw.ID
	c.EqualRows = raw.EqualRows
	c.AnimationSpeed = raw.AnimationSpeed
	c.TimeoutMS = raw.TimeoutMS
	c.DeveloperMode = raw.DeveloperMode
	return nil
}

// envCause returns the first field error from env with its cause exposed
// to errors.Is.
func envCause(err error) error {
	var agg env.AggregateError
	if !errors.As(err, &agg) || len(agg.Errors) == 0 {
		return err
	}
	var pe env.ParseError
	if errors.As(agg.Errors[0], &pe) {
		return fmt.Errorf("%s: %w", pe.Name, pe.Err)
	}
	return agg.Errors[0]
}

// ScopeOptions converts the scope settings to options for NewScope.
func (c Config) ScopeOptions() []equalheight.ScopeOption {
	opts := []equalheight.ScopeOption{
		equalheight.WithRowPolicy(c.EqualRows.Policy()),
		equalheight.WithAnimationDuration(time.Duration(c.AnimationSpeed)),
		equalheight.WithTimeout(time.Duration(c.TimeoutMS) * time.Millisecond),
		equalheight.WithDeveloperMode(equalheight.DevMode(c.DeveloperMode)),
	}
	if c.ID != "" {
		opts = append(opts, equalheight.WithID(c.ID))
	}
	return opts
}
