package world

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Level validation errors.
var (
	ErrEmptyLayout    = errors.New("level layout is empty")
	ErrRaggedLayout   = errors.New("level layout is not rectangular")
	ErrNegativeTileID = errors.New("level layout contains a negative material id")
	ErrBadStart       = errors.New("player start is outside the layout or inside a wall")
	ErrBadSpawn       = errors.New("spawn is outside the layout or inside a wall")
)

// StartSpec is the player start position and heading.
type StartSpec struct {
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Angle float64 `toml:"angle"`
}

// PropSpawn places a billboard. Props with a positive AnimationMs cycle
// through Frames images.
type PropSpawn struct {
	Sprite      string  `toml:"sprite"`
	X           float64 `toml:"x"`
	Y           float64 `toml:"y"`
	Scale       float64 `toml:"scale"`
	Shift       float64 `toml:"shift"`
	AnimationMs float64 `toml:"animation_ms"`
	Frames      int     `toml:"frames"`
}

// EnemySpawn places an agent.
type EnemySpawn struct {
	Kind string  `toml:"kind"`
	X    float64 `toml:"x"`
	Y    float64 `toml:"y"`
}

// LevelFile mirrors the on-disk TOML level format.
type LevelFile struct {
	Name    string       `toml:"name"`
	Player  StartSpec    `toml:"player"`
	Layout  [][]int      `toml:"layout"`
	Props   []PropSpawn  `toml:"props"`
	Enemies []EnemySpawn `toml:"enemies"`
}

// Level is a validated level: the grid plus everything spawned on it.
type Level struct {
	Name    string
	Grid    *Grid
	Start   Viewpoint
	Props   []PropSpawn
	Enemies []EnemySpawn
	layout  [][]int
}

// LoadLevel reads and validates a TOML level file.
func LoadLevel(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open level file %s: %w", path, err)
	}
	lvl, err := ParseLevel(data)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", path, err)
	}
	return lvl, nil
}

// MustLoadLevel loads a level and panics on error.
func MustLoadLevel(path string) *Level {
	lvl, err := LoadLevel(path)
	if err != nil {
		panic("Failed to load level: " + err.Error())
	}
	return lvl
}

// ParseLevel decodes and validates level TOML.
func ParseLevel(data []byte) (*Level, error) {
	var file LevelFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error decoding level: %w", err)
	}
	return NewLevel(file)
}

// NewLevel validates a decoded level file and builds its grid.
func NewLevel(file LevelFile) (*Level, error) {
	if err := validateLayout(file.Layout); err != nil {
		return nil, err
	}

	grid := NewGrid(file.Layout)
	start := Viewpoint{X: file.Player.X, Y: file.Player.Y}
	start.Rotate(file.Player.Angle)
	if !grid.IsOpen(start.Tile()) {
		return nil, fmt.Errorf("%w: (%.2f, %.2f)", ErrBadStart, start.X, start.Y)
	}

	for i, p := range file.Props {
		if !grid.InBounds(TileAt(p.X, p.Y)) {
			return nil, fmt.Errorf("%w: prop %d at (%.2f, %.2f)", ErrBadSpawn, i, p.X, p.Y)
		}
	}
	for i, e := range file.Enemies {
		if !grid.IsOpen(TileAt(e.X, e.Y)) {
			return nil, fmt.Errorf("%w: enemy %d at (%.2f, %.2f)", ErrBadSpawn, i, e.X, e.Y)
		}
	}

	return &Level{
		Name:    file.Name,
		Grid:    grid,
		Start:   start,
		Props:   file.Props,
		Enemies: file.Enemies,
		layout:  file.Layout,
	}, nil
}

// Rebuild returns a fresh grid from the level layout, used on restart.
func (l *Level) Rebuild() *Grid {
	return NewGrid(l.layout)
}

func validateLayout(layout [][]int) error {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return ErrEmptyLayout
	}
	width := len(layout[0])
	for y, row := range layout {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d tiles, expected %d", ErrRaggedLayout, y, len(row), width)
		}
		for x, id := range row {
			if id < 0 {
				return fmt.Errorf("%w: %d at (%d, %d)", ErrNegativeTileID, id, x, y)
			}
		}
	}
	return nil
}
