package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration is a YAML-friendly wrapper around time.Duration that accepts human
// readable strings such as "16ms" in configuration files while still allowing
// numeric nanosecond values.
type Duration time.Duration

// Duration returns the underlying time.Duration value.
func (d Duration) Duration() time.Duration {
	return time.Duration(d)
}

// MarshalYAML encodes the duration using the canonical string representation.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML decodes a duration from either a string (e.g. "250ms") or a
// numeric value representing nanoseconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!int" {
		var n int64
		if err := value.Decode(&n); err != nil {
			return fmt.Errorf("duration: decode number: %w", err)
		}
		*d = Duration(time.Duration(n))
		return nil
	}
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("duration: invalid value %q", value.Value)
	}
	if s == "" {
		*d = 0
		return nil
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("duration: parse %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// Config captures the tunable parameters of the world engine.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Lifecycle LifecycleConfig `yaml:"lifecycle"`
	Terrain   TerrainConfig   `yaml:"terrain"`
	Render    RenderConfig    `yaml:"render"`
}

type WorldConfig struct {
	Seed       int64 `yaml:"seed"`
	MaxHeight  int   `yaml:"maxHeight"`
	WaterLevel int   `yaml:"waterLevel"`
}

type LifecycleConfig struct {
	RenderDistance    int      `yaml:"renderDistance"`    // chunks
	MaxVisibleChunks  int      `yaml:"maxVisibleChunks"`  // cap on the candidate set
	SyncChunks        int      `yaml:"syncChunks"`        // nearest chunks generated synchronously
	MaxBlocksPerFrame int      `yaml:"maxBlocksPerFrame"` // block budget per frame window
	FrameWindow       Duration `yaml:"frameWindow"`       // budget reset window, e.g. "16ms"
	EvictionInterval  Duration `yaml:"evictionInterval"`  // how often distant chunks are unloaded
	MaxRayDistance    float64  `yaml:"maxRayDistance"`    // block selection reach
}

type TerrainConfig struct {
	Mode        string  `yaml:"mode"` // "overworld" or "flat"
	TreeDensity float64 `yaml:"treeDensity"`
	RiverChance float64 `yaml:"riverChance"`
	LakeChance  float64 `yaml:"lakeChance"`
	RiverWidth  int     `yaml:"riverWidth"`
	RiverDepth  int     `yaml:"riverDepth"`
	FillGround  bool    `yaml:"fillGround"`  // materialize columns down to bedrock
	FlatSurface int     `yaml:"flatSurface"` // surface height in flat mode
}

type RenderConfig struct {
	InstanceCapacity int `yaml:"instanceCapacity"` // slots per shared instance batch
}

// Load reads configuration from a YAML file if provided. An empty path
// returns defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		World: WorldConfig{
			Seed:       12345,
			MaxHeight:  40,
			WaterLevel: 4,
		},
		Lifecycle: LifecycleConfig{
			RenderDistance:    3,
			MaxVisibleChunks:  50,
			SyncChunks:        5,
			MaxBlocksPerFrame: 100,
			FrameWindow:       Duration(16 * time.Millisecond),
			EvictionInterval:  Duration(5 * time.Second),
			MaxRayDistance:    5,
		},
		Terrain: TerrainConfig{
			Mode:        "overworld",
			TreeDensity: 0.3,
			RiverChance: 0.15,
			LakeChance:  0.10,
			RiverWidth:  3,
			RiverDepth:  2,
			FillGround:  false,
			FlatSurface: 8,
		},
		Render: RenderConfig{
			InstanceCapacity: 1000,
		},
	}
}

func (c *Config) Validate() error {
	if c.World.MaxHeight <= 0 {
		return errors.New("world.maxHeight must be positive")
	}
	if c.World.WaterLevel < 0 || c.World.WaterLevel >= c.World.MaxHeight {
		return errors.New("world.waterLevel must be within [0, maxHeight)")
	}
	if c.Lifecycle.RenderDistance <= 0 {
		return errors.New("lifecycle.renderDistance must be positive")
	}
	if c.Lifecycle.MaxVisibleChunks <= 0 {
		return errors.New("lifecycle.maxVisibleChunks must be positive")
	}
	if c.Lifecycle.SyncChunks < 0 {
		return errors.New("lifecycle.syncChunks cannot be negative")
	}
	if c.Lifecycle.MaxBlocksPerFrame <= 0 {
		return errors.New("lifecycle.maxBlocksPerFrame must be positive")
	}
	if c.Lifecycle.FrameWindow <= 0 {
		return errors.New("lifecycle.frameWindow must be positive")
	}
	if c.Lifecycle.EvictionInterval <= 0 {
		return errors.New("lifecycle.evictionInterval must be positive")
	}
	if c.Lifecycle.MaxRayDistance <= 0 {
		return errors.New("lifecycle.maxRayDistance must be positive")
	}
	switch c.Terrain.Mode {
	case "overworld", "flat":
	default:
		return fmt.Errorf("terrain.mode %q is not a known generator", c.Terrain.Mode)
	}
	if c.Terrain.TreeDensity < 0 || c.Terrain.TreeDensity > 1 {
		return errors.New("terrain.treeDensity must be within [0, 1]")
	}
	if c.Terrain.RiverChance < 0 || c.Terrain.LakeChance < 0 {
		return errors.New("terrain river/lake chances cannot be negative")
	}
	if c.Terrain.RiverChance+c.Terrain.LakeChance > 1 {
		return errors.New("terrain river+lake chance must be <= 1")
	}
	if c.Terrain.RiverWidth <= 0 || c.Terrain.RiverDepth < 0 {
		return errors.New("terrain.riverWidth must be positive and riverDepth non-negative")
	}
	if c.Terrain.Mode == "flat" && (c.Terrain.FlatSurface < 1 || c.Terrain.FlatSurface >= c.World.MaxHeight) {
		return errors.New("terrain.flatSurface must be within [1, maxHeight)")
	}
	if c.Render.InstanceCapacity <= 0 {
		return errors.New("render.instanceCapacity must be positive")
	}
	return nil
}
