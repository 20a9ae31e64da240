package config

import (
	"math"
	"testing"
)

func TestLoadConfig_RepoFile(t *testing.T) {
	cfg, err := LoadConfig("../../config.yaml")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if GlobalConfig != cfg {
		t.Error("LoadConfig should set GlobalConfig")
	}
	if cfg.Camera.NumRays != 800 || cfg.GetScreenWidth() != 1600 {
		t.Errorf("display/camera = %+v %+v", cfg.Display, cfg.Camera)
	}
	if cfg.Pathfinding.Cache != "occupancy" {
		t.Errorf("cache = %q", cfg.Pathfinding.Cache)
	}
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("display:\n  screen_width: 640\n"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Display.ScreenHeight != 900 || cfg.Camera.NumRays != 320 {
		t.Errorf("defaults not filled: %+v %+v", cfg.Display, cfg.Camera)
	}
	if cfg.Enemy.AttackRangeMax < cfg.Enemy.AttackRangeMin {
		t.Errorf("attack range %d..%d", cfg.Enemy.AttackRangeMin, cfg.Enemy.AttackRangeMax)
	}
	if cfg.GetTickMillis() != 1000.0/60 {
		t.Errorf("tick = %v", cfg.GetTickMillis())
	}
}

func TestParseConfig_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"fov", "camera:\n  field_of_view: 3.5\n"},
		{"rays", "display:\n  screen_width: 100\ncamera:\n  num_rays: 200\n"},
		{"cache", "pathfinding:\n  cache: lru\n"},
		{"syntax", "display: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.yaml)); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestNewProjection(t *testing.T) {
	p := NewProjection(1600, 900, 800, math.Pi/3, 20, 256)
	if p.Scale != 2 || p.HalfNumRays != 400 || p.HalfWidth != 800 {
		t.Errorf("projection = %+v", p)
	}
	if math.Abs(p.ScreenDistance-800/math.Tan(math.Pi/6)) > 1e-9 {
		t.Errorf("screen distance = %v", p.ScreenDistance)
	}
	if math.Abs(p.AngleStep*800-math.Pi/3) > 1e-12 {
		t.Errorf("angle step = %v", p.AngleStep)
	}

	clamped := NewProjection(100, 0, 500, math.Pi/3, 20, 256)
	if clamped.NumRays != 100 || clamped.ScreenHeight != 1 || clamped.Scale != 1 {
		t.Errorf("clamped = %+v", clamped)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.Pathfinding.Enabled || cfg.Level.Path == "" {
		t.Errorf("default = %+v", cfg)
	}
	if cfg.Projection().NumRays != cfg.Camera.NumRays {
		t.Error("projection does not follow camera rays")
	}
}
