package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/papapumpkin/reveal/internal/reveal"
)

// EnvPrefix is the prefix of environment overrides, e.g. REVEAL_REAR_REVEAL_WIDTH.
const EnvPrefix = "REVEAL"

// SideConfig holds the geometry of one pane side.
type SideConfig struct {
	Enabled        bool    `mapstructure:"enabled"`
	RevealWidth    float64 `mapstructure:"reveal_width"`
	RevealOverdraw float64 `mapstructure:"reveal_overdraw"`
	BounceBack     bool    `mapstructure:"bounce_back"`
	StableDrag     bool    `mapstructure:"stable_drag"`
	Elastic        bool    `mapstructure:"elastic"`
}

// Config holds the reveal layout configuration.
// Values are populated from .reveal.yaml, REVEAL_* env vars, and CLI flags.
type Config struct {
	Rear            SideConfig `mapstructure:"rear"`
	Right           SideConfig `mapstructure:"right"`
	Symmetry        string     `mapstructure:"symmetry"`
	Exclusive       bool       `mapstructure:"exclusive"`
	Strict          bool       `mapstructure:"strict"`
	Threshold       float64    `mapstructure:"threshold"`
	PartialFraction float64    `mapstructure:"partial_fraction"`
	FlickVelocity   float64    `mapstructure:"flick_velocity"`
	DraggableBorder float64    `mapstructure:"draggable_border"`
	Verbose         bool       `mapstructure:"verbose"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	for _, side := range []string{"rear", "right"} {
		v.SetDefault(side+".enabled", true)
		v.SetDefault(side+".reveal_width", reveal.DefaultRevealWidth)
		v.SetDefault(side+".reveal_overdraw", reveal.DefaultRevealOverdraw)
		v.SetDefault(side+".bounce_back", true)
		v.SetDefault(side+".stable_drag", false)
		v.SetDefault(side+".elastic", false)
	}
	v.SetDefault("symmetry", "independent")
	v.SetDefault("exclusive", true)
	v.SetDefault("strict", false)
	v.SetDefault("threshold", reveal.DefaultThreshold)
	v.SetDefault("partial_fraction", reveal.DefaultPartialFraction)
	v.SetDefault("flick_velocity", reveal.DefaultFlickVelocity)
	v.SetDefault("draggable_border", 0)
	v.SetDefault("verbose", false)
}

// Load reads configuration from the global viper instance, applying built-in
// defaults for any values not set by config file, environment, or flags.
func Load() (Config, error) {
	v := viper.GetViper()
	SetDefaults(v)
	return decode(v)
}

// Default returns the built-in configuration.
func Default() Config {
	v := viper.New()
	SetDefaults(v)
	cfg, _ := decode(v)
	return cfg
}

// LoadFile reads a single config file on a fresh viper instance, with
// defaults and environment overrides applied. It is used to reload a
// watched file without touching global state.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return decode(v)
}

func decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if _, err := reveal.ParseSymmetry(cfg.Symmetry); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Geometry converts the configuration into the core's geometry value.
func (c Config) Geometry() reveal.Geometry {
	mode, _ := reveal.ParseSymmetry(c.Symmetry)
	return reveal.Geometry{
		Rear:            c.Rear.geometry(),
		Right:           c.Right.geometry(),
		Symmetry:        mode,
		Threshold:       c.Threshold,
		PartialFraction: c.PartialFraction,
		FlickVelocity:   c.FlickVelocity,
	}
}

// Options returns the controller options the configuration implies.
func (c Config) Options() []reveal.Option {
	return []reveal.Option{
		reveal.WithExclusive(c.Exclusive),
		reveal.WithStrict(c.Strict),
		reveal.WithContains(reveal.DraggableBorder(c.DraggableBorder)),
	}
}

func (s SideConfig) geometry() reveal.SideConfig {
	return reveal.SideConfig{
		Enabled:        s.Enabled,
		RevealWidth:    s.RevealWidth,
		RevealOverdraw: s.RevealOverdraw,
		BounceBack:     s.BounceBack,
		StableDrag:     s.StableDrag,
		Elastic:        s.Elastic,
	}
}
