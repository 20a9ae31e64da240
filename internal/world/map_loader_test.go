package world

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

const testLevel = `
name = "Test"
layout = [
  [1, 1, 1, 1],
  [1, 0, 0, 1],
  [1, 0, 3, 1],
  [1, 1, 1, 1],
]

[player]
x = 1.5
y = 1.5
angle = 7.0

[[props]]
sprite = "lamp"
x = 2.5
y = 1.5
scale = 0.6
animation_ms = 120
frames = 4

[[enemies]]
kind = "trooper"
x = 1.5
y = 2.5
`

func TestParseLevel(t *testing.T) {
	lvl, err := ParseLevel([]byte(testLevel))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if lvl.Name != "Test" {
		t.Errorf("name = %q", lvl.Name)
	}
	if lvl.Grid.Width != 4 || lvl.Grid.Height != 4 {
		t.Errorf("grid %dx%d, want 4x4", lvl.Grid.Width, lvl.Grid.Height)
	}
	if m, ok := lvl.Grid.MaterialAt(Tile{X: 2, Y: 2}); !ok || m != 3 {
		t.Errorf("material at (2,2) = %d, %v", m, ok)
	}
	if lvl.Start.Angle < 0 || lvl.Start.Angle >= 6.3 {
		t.Errorf("start angle %.3f not wrapped", lvl.Start.Angle)
	}
	if len(lvl.Props) != 1 || lvl.Props[0].Frames != 4 || lvl.Props[0].AnimationMs != 120 {
		t.Errorf("props = %+v", lvl.Props)
	}
	if len(lvl.Enemies) != 1 || lvl.Enemies[0].Kind != "trooper" {
		t.Errorf("enemies = %+v", lvl.Enemies)
	}
}

func TestNewLevel_Rejects(t *testing.T) {
	box := [][]int{{1, 1, 1}, {1, 0, 1}, {1, 1, 1}}
	tests := []struct {
		name string
		file LevelFile
		want error
	}{
		{"empty", LevelFile{}, ErrEmptyLayout},
		{"ragged", LevelFile{Layout: [][]int{{1, 1}, {1}}}, ErrRaggedLayout},
		{"negative", LevelFile{Layout: [][]int{{0, -1}}}, ErrNegativeTileID},
		{"start in wall", LevelFile{Layout: box, Player: StartSpec{X: 0.5, Y: 0.5}}, ErrBadStart},
		{"start outside", LevelFile{Layout: box, Player: StartSpec{X: 5, Y: 1.5}}, ErrBadStart},
		{"enemy in wall", LevelFile{
			Layout:  box,
			Player:  StartSpec{X: 1.5, Y: 1.5},
			Enemies: []EnemySpawn{{Kind: "x", X: 2.5, Y: 1.5}},
		}, ErrBadSpawn},
		{"prop outside", LevelFile{
			Layout: box,
			Player: StartSpec{X: 1.5, Y: 1.5},
			Props:  []PropSpawn{{Sprite: "p", X: -1, Y: 1}},
		}, ErrBadSpawn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewLevel(tt.file); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadLevel_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.toml")
	if err := os.WriteFile(path, []byte(testLevel), 0o644); err != nil {
		t.Fatalf("write level: %v", err)
	}
	if _, err := LoadLevel(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if _, err := LoadLevel(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("missing file should fail")
	}
}

func TestLoadLevel_Courtyard(t *testing.T) {
	lvl, err := LoadLevel(filepath.Join("..", "..", "levels", "courtyard.toml"))
	if err != nil {
		t.Fatalf("load courtyard: %v", err)
	}
	if !lvl.Grid.IsOpen(lvl.Start.Tile()) {
		t.Error("player starts in a wall")
	}
}

func TestLevel_RebuildIsFresh(t *testing.T) {
	lvl, err := ParseLevel([]byte(testLevel))
	if err != nil {
		t.Fatal(err)
	}
	a, b := lvl.Rebuild(), lvl.Rebuild()
	if a == b || a.WallCount() != b.WallCount() || a.WallCount() != lvl.Grid.WallCount() {
		t.Errorf("rebuild: %p %p walls %d %d", a, b, a.WallCount(), b.WallCount())
	}
}
