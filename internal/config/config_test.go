package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config failed validation: %v", err)
	}
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.World.Seed != 12345 {
		t.Fatalf("expected default seed 12345, got %d", cfg.World.Seed)
	}
	if cfg.Lifecycle.FrameWindow.Duration() != 16*time.Millisecond {
		t.Fatalf("expected 16ms frame window, got %v", cfg.Lifecycle.FrameWindow.Duration())
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	payload := `
world:
  seed: 777
  maxHeight: 64
  waterLevel: 6
lifecycle:
  renderDistance: 2
  frameWindow: 8ms
terrain:
  mode: flat
  flatSurface: 10
`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.World.Seed != 777 || cfg.World.MaxHeight != 64 {
		t.Fatalf("world overrides not applied: %+v", cfg.World)
	}
	if cfg.Lifecycle.RenderDistance != 2 {
		t.Fatalf("expected renderDistance 2, got %d", cfg.Lifecycle.RenderDistance)
	}
	if cfg.Lifecycle.FrameWindow.Duration() != 8*time.Millisecond {
		t.Fatalf("expected 8ms frame window, got %v", cfg.Lifecycle.FrameWindow.Duration())
	}
	if cfg.Lifecycle.MaxBlocksPerFrame != 100 {
		t.Fatalf("untouched defaults should survive, got %d", cfg.Lifecycle.MaxBlocksPerFrame)
	}
	if cfg.Terrain.Mode != "flat" || cfg.Terrain.FlatSurface != 10 {
		t.Fatalf("terrain overrides not applied: %+v", cfg.Terrain)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.yaml")
	payload := `
lifecycle:
  renderDistance: -1
`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "renderDistance") {
		t.Fatalf("expected renderDistance validation error, got %v", err)
	}
}

func TestValidateCatchesBadTerrainMode(t *testing.T) {
	cfg := Default()
	cfg.Terrain.Mode = "nether"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for unknown terrain mode")
	}
}

func TestDurationRoundTrip(t *testing.T) {
	type doc struct {
		Window Duration `yaml:"window"`
	}
	in := doc{Window: Duration(250 * time.Millisecond)}
	data, err := yaml.Marshal(&in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out doc
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Window != in.Window {
		t.Fatalf("round trip changed duration: %v != %v", out.Window, in.Window)
	}

	var numeric doc
	if err := yaml.Unmarshal([]byte("window: 16000000"), &numeric); err != nil {
		t.Fatalf("numeric unmarshal: %v", err)
	}
	if numeric.Window.Duration() != 16*time.Millisecond {
		t.Fatalf("numeric nanoseconds not accepted: %v", numeric.Window.Duration())
	}
}
