package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration values
type Config struct {
	Display     DisplayConfig     `yaml:"display"`
	Camera      CameraConfig      `yaml:"camera"`
	Player      PlayerConfig      `yaml:"player"`
	Weapon      WeaponConfig      `yaml:"weapon"`
	Enemy       EnemyConfig       `yaml:"enemy"`
	Pathfinding PathfindingConfig `yaml:"pathfinding"`
	Audio       AudioConfig       `yaml:"audio"`
	Colors      ColorsConfig      `yaml:"colors"`
	Logging     LoggingConfig     `yaml:"logging"`
	Level       LevelConfig       `yaml:"level"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	TPS          int    `yaml:"tps"`
}

type CameraConfig struct {
	FieldOfView float64 `yaml:"field_of_view"`
	MaxDepth    int     `yaml:"max_depth"`
	// NumRays defaults to half the screen width.
	NumRays     int `yaml:"num_rays"`
	TextureSize int `yaml:"texture_size"`
}

type PlayerConfig struct {
	StartAngle       float64 `yaml:"start_angle"`
	Speed            float64 `yaml:"speed"`          // tiles per millisecond
	RotationSpeed    float64 `yaml:"rotation_speed"` // radians per millisecond
	SizeScale        float64 `yaml:"size_scale"`
	MaxHealth        int     `yaml:"max_health"`
	KeyRotation      bool    `yaml:"key_rotation"`
	MouseSensitivity float64 `yaml:"mouse_sensitivity"`
	MouseMaxRelative float64 `yaml:"mouse_max_relative"`
	MouseBorder      int     `yaml:"mouse_border"`
	InfiniteHealth   bool    `yaml:"infinite_health"`
}

type WeaponConfig struct {
	Damage        int     `yaml:"damage"`
	Frames        int     `yaml:"frames"`
	FrameDuration int     `yaml:"frame_duration_ms"`
	Scale         float64 `yaml:"scale"`
}

type EnemyConfig struct {
	Speed             float64 `yaml:"speed"` // tiles per tick
	Size              float64 `yaml:"size"`
	Health            int     `yaml:"health"`
	Damage            int     `yaml:"damage"`
	Precision         float64 `yaml:"precision"`
	AttackRangeMin    int     `yaml:"attack_range_min"`
	AttackRangeMax    int     `yaml:"attack_range_max"`
	AnimationDuration int     `yaml:"animation_duration_ms"`
	Scale             float64 `yaml:"scale"`
	HeightShift       float64 `yaml:"height_shift"`
	HealthRecoup      int     `yaml:"health_recoup"`
}

type PathfindingConfig struct {
	Enabled bool `yaml:"enabled"`
	// Cache is one of "occupancy", "legacy" or "off".
	Cache string `yaml:"cache"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

type ColorsConfig struct {
	Sky   [3]int `yaml:"sky"`
	Floor [3]int `yaml:"floor"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	FrameStats bool   `yaml:"frame_stats"`
}

type LevelConfig struct {
	Path string `yaml:"path"`
}

var GlobalConfig *Config

// LoadConfig loads the configuration from config.yaml
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, err
	}

	// Set global config for easy access
	GlobalConfig = config

	return config, nil
}

// ParseConfig decodes YAML and fills defaults for anything left unset.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Default returns the built-in configuration used when no file is given.
func Default() *Config {
	c := &Config{}
	c.Pathfinding.Enabled = true
	c.Audio.Enabled = true
	_ = c.Validate()
	return c
}

// Validate fills zero values with defaults and rejects impossible settings.
func (c *Config) Validate() error {
	if c.Display.ScreenWidth <= 0 {
		c.Display.ScreenWidth = 1600
	}
	if c.Display.ScreenHeight <= 0 {
		c.Display.ScreenHeight = 900
	}
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = "gridcaster"
	}
	if c.Display.TPS <= 0 {
		c.Display.TPS = 60
	}

	if c.Camera.FieldOfView <= 0 {
		c.Camera.FieldOfView = math.Pi / 3
	}
	if c.Camera.FieldOfView >= math.Pi {
		return fmt.Errorf("camera.field_of_view must be below pi, got %.3f", c.Camera.FieldOfView)
	}
	if c.Camera.MaxDepth <= 0 {
		c.Camera.MaxDepth = 20
	}
	if c.Camera.NumRays <= 0 {
		c.Camera.NumRays = c.Display.ScreenWidth / 2
	}
	if c.Camera.NumRays > c.Display.ScreenWidth {
		return fmt.Errorf("camera.num_rays (%d) exceeds screen width (%d)", c.Camera.NumRays, c.Display.ScreenWidth)
	}
	if c.Camera.TextureSize <= 0 {
		c.Camera.TextureSize = 256
	}

	if c.Player.Speed <= 0 {
		c.Player.Speed = 0.004
	}
	if c.Player.RotationSpeed <= 0 {
		c.Player.RotationSpeed = 0.002
	}
	if c.Player.SizeScale <= 0 {
		c.Player.SizeScale = 60
	}
	if c.Player.MaxHealth <= 0 {
		c.Player.MaxHealth = 100
	}
	if c.Player.MouseSensitivity <= 0 {
		c.Player.MouseSensitivity = 0.0003
	}
	if c.Player.MouseMaxRelative <= 0 {
		c.Player.MouseMaxRelative = 40
	}
	if c.Player.MouseBorder <= 0 {
		c.Player.MouseBorder = 100
	}

	if c.Weapon.Damage <= 0 {
		c.Weapon.Damage = 50
	}
	if c.Weapon.Frames <= 0 {
		c.Weapon.Frames = 6
	}
	if c.Weapon.FrameDuration <= 0 {
		c.Weapon.FrameDuration = 50
	}
	if c.Weapon.Scale <= 0 {
		c.Weapon.Scale = 2
	}

	if c.Enemy.Speed <= 0 {
		c.Enemy.Speed = 0.04
	}
	if c.Enemy.Size <= 0 {
		c.Enemy.Size = 20
	}
	if c.Enemy.Health <= 0 {
		c.Enemy.Health = 100
	}
	if c.Enemy.Damage <= 0 {
		c.Enemy.Damage = 10
	}
	if c.Enemy.Precision <= 0 {
		c.Enemy.Precision = 0.15
	}
	if c.Enemy.AttackRangeMin <= 0 {
		c.Enemy.AttackRangeMin = 3
	}
	if c.Enemy.AttackRangeMax < c.Enemy.AttackRangeMin {
		c.Enemy.AttackRangeMax = c.Enemy.AttackRangeMin + 2
	}
	if c.Enemy.AnimationDuration <= 0 {
		c.Enemy.AnimationDuration = 180
	}
	if c.Enemy.Scale <= 0 {
		c.Enemy.Scale = 0.8
	}
	if c.Enemy.HeightShift == 0 {
		c.Enemy.HeightShift = 0.27
	}

	switch c.Pathfinding.Cache {
	case "":
		c.Pathfinding.Cache = "occupancy"
	case "occupancy", "legacy", "off":
	default:
		return fmt.Errorf("pathfinding.cache must be occupancy, legacy or off, got %q", c.Pathfinding.Cache)
	}

	if c.Audio.Volume == 0 {
		c.Audio.Volume = 1
	}
	if c.Colors.Floor == [3]int{} {
		c.Colors.Floor = [3]int{30, 30, 30}
	}
	if c.Colors.Sky == [3]int{} {
		c.Colors.Sky = [3]int{12, 14, 40}
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Level.Path == "" {
		c.Level.Path = "levels/courtyard.toml"
	}
	return nil
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTPS() int {
	return c.Display.TPS
}

// GetTickMillis returns the fixed logic tick length in milliseconds.
func (c *Config) GetTickMillis() float64 {
	return 1000.0 / float64(c.Display.TPS)
}

func (c *Config) GetCameraFOV() float64 {
	return c.Camera.FieldOfView
}

func (c *Config) GetMaxDepth() int {
	return c.Camera.MaxDepth
}
