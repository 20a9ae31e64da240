package monster

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"gridcaster/internal/config"
)

// MonsterDefinition holds the configuration for an enemy kind from YAML.
// Zero fields inherit the enemy section of config.yaml.
type MonsterDefinition struct {
	Name              string  `yaml:"name"`
	Sprite            string  `yaml:"sprite"`
	Health            int     `yaml:"health"`
	Damage            int     `yaml:"damage"`
	Speed             float64 `yaml:"speed"`
	Size              float64 `yaml:"size"`
	Precision         float64 `yaml:"precision"`
	AttackRangeMin    int     `yaml:"attack_range_min"`
	AttackRangeMax    int     `yaml:"attack_range_max"`
	AnimationDuration int     `yaml:"animation_duration_ms"`
	Scale             float64 `yaml:"scale"`
	HeightShift       float64 `yaml:"height_shift"`
}

// MonsterYAMLConfig holds the complete enemy roster from YAML
type MonsterYAMLConfig struct {
	Monsters map[string]MonsterDefinition `yaml:"monsters"`
}

// Global monster configuration
var MonsterConfig *MonsterYAMLConfig

// validateMonsterConfiguration rejects values no enemy can work with
func validateMonsterConfiguration(cfg *MonsterYAMLConfig) error {
	var problems []string
	for key, def := range cfg.Monsters {
		if def.Health < 0 || def.Damage < 0 || def.Speed < 0 || def.Size < 0 {
			problems = append(problems, fmt.Sprintf("%s: negative stat", key))
		}
		if def.Precision < 0 || def.Precision > 1 {
			problems = append(problems, fmt.Sprintf("%s: precision %.2f outside [0, 1]", key, def.Precision))
		}
		if def.AttackRangeMax != 0 && def.AttackRangeMax < def.AttackRangeMin {
			problems = append(problems, fmt.Sprintf("%s: attack_range_max %d below attack_range_min %d", key, def.AttackRangeMax, def.AttackRangeMin))
		}
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return fmt.Errorf("monster configuration problems detected:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}

// LoadMonsterConfig loads the enemy roster from a YAML file
func LoadMonsterConfig(filename string) (*MonsterYAMLConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read monster config file: %w", err)
	}

	cfg, err := ParseMonsterConfig(data)
	if err != nil {
		return nil, err
	}

	// Set global config for easy access
	MonsterConfig = cfg

	return cfg, nil
}

// ParseMonsterConfig decodes and validates roster YAML.
func ParseMonsterConfig(data []byte) (*MonsterYAMLConfig, error) {
	var cfg MonsterYAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse monster config YAML: %w", err)
	}
	if err := validateMonsterConfiguration(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoadMonsterConfig loads the roster and panics on error
func MustLoadMonsterConfig(filename string) *MonsterYAMLConfig {
	cfg, err := LoadMonsterConfig(filename)
	if err != nil {
		panic("Failed to load monster config: " + err.Error())
	}
	return cfg
}

// GetMonsterByKey returns the definition for an enemy kind
func (c *MonsterYAMLConfig) GetMonsterByKey(key string) (*MonsterDefinition, error) {
	if c == nil {
		return nil, fmt.Errorf("monster with key '%s' not found: no roster loaded", key)
	}
	def, exists := c.Monsters[key]
	if !exists {
		return nil, fmt.Errorf("monster with key '%s' not found", key)
	}
	return &def, nil
}

// GetAllMonsterKeys returns all enemy kinds, sorted
func (c *MonsterYAMLConfig) GetAllMonsterKeys() []string {
	keys := make([]string, 0, len(c.Monsters))
	for key := range c.Monsters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Stats are the resolved numbers an enemy plays with.
type Stats struct {
	Name              string
	Sprite            string
	Health            int
	Damage            int
	Speed             float64 // tiles per tick
	Size              float64 // collision look-ahead
	Precision         float64 // chance an attack lands
	AttackRangeMin    int
	AttackRangeMax    int
	AnimationDuration float64 // milliseconds per frame
	Scale             float64
	HeightShift       float64
}

// DefaultStats builds stats from the enemy section of config.yaml.
func DefaultStats(kind string, e config.EnemyConfig) Stats {
	return Stats{
		Name:              kind,
		Sprite:            kind,
		Health:            e.Health,
		Damage:            e.Damage,
		Speed:             e.Speed,
		Size:              e.Size,
		Precision:         e.Precision,
		AttackRangeMin:    e.AttackRangeMin,
		AttackRangeMax:    e.AttackRangeMax,
		AnimationDuration: float64(e.AnimationDuration),
		Scale:             e.Scale,
		HeightShift:       e.HeightShift,
	}
}

// Resolve fills the definition's zero fields from the config defaults.
func (def *MonsterDefinition) Resolve(kind string, e config.EnemyConfig) Stats {
	s := DefaultStats(kind, e)
	if def.Name != "" {
		s.Name = def.Name
	}
	if def.Sprite != "" {
		s.Sprite = def.Sprite
	}
	if def.Health > 0 {
		s.Health = def.Health
	}
	if def.Damage > 0 {
		s.Damage = def.Damage
	}
	if def.Speed > 0 {
		s.Speed = def.Speed
	}
	if def.Size > 0 {
		s.Size = def.Size
	}
	if def.Precision > 0 {
		s.Precision = def.Precision
	}
	if def.AttackRangeMin > 0 {
		s.AttackRangeMin = def.AttackRangeMin
	}
	if def.AttackRangeMax > 0 {
		s.AttackRangeMax = def.AttackRangeMax
	}
	if s.AttackRangeMax < s.AttackRangeMin {
		s.AttackRangeMax = s.AttackRangeMin
	}
	if def.AnimationDuration > 0 {
		s.AnimationDuration = float64(def.AnimationDuration)
	}
	if def.Scale > 0 {
		s.Scale = def.Scale
	}
	if def.HeightShift != 0 {
		s.HeightShift = def.HeightShift
	}
	return s
}

// StatsFor resolves kind against the loaded roster, falling back to the
// config defaults when the roster has no such kind.
func StatsFor(kind string, e config.EnemyConfig) (Stats, error) {
	def, err := MonsterConfig.GetMonsterByKey(kind)
	if err != nil {
		return DefaultStats(kind, e), err
	}
	return def.Resolve(kind, e), nil
}
