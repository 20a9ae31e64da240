package raycast

import (
	"testing"

	"gridcaster/internal/world"
)

func TestLineOfSight(t *testing.T) {
	layout := boxLayout(8, 6)
	layout[1][3] = 1
	g := world.NewGrid(layout)

	tests := []struct {
		name     string
		from, to world.Point
		want     bool
	}{
		{"shared tile", world.Point{X: 2.1, Y: 2.1}, world.Point{X: 2.9, Y: 2.8}, true},
		{"shared tile inside wall row", world.Point{X: 3.2, Y: 1.2}, world.Point{X: 3.7, Y: 1.9}, true},
		{"clear corridor", world.Point{X: 1.5, Y: 2.5}, world.Point{X: 5.5, Y: 2.5}, true},
		{"wall in between", world.Point{X: 1.5, Y: 1.5}, world.Point{X: 5.5, Y: 1.5}, false},
		{"oblique clear", world.Point{X: 1.5, Y: 1.5}, world.Point{X: 4.5, Y: 3.5}, true},
		{"straight down", world.Point{X: 2.5, Y: 1.5}, world.Point{X: 2.5, Y: 4.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LineOfSight(g, tt.from, tt.to, 20); got != tt.want {
				t.Errorf("LineOfSight(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestLineOfSight_SharedTileIgnoresWalls(t *testing.T) {
	// Even a zero depth budget cannot hide a target in the same tile.
	g := world.NewGrid([][]int{{1}})
	if !LineOfSight(g, world.Point{X: 0.2, Y: 0.2}, world.Point{X: 0.8, Y: 0.8}, 0) {
		t.Error("expected points in one tile to see each other")
	}
}

func TestLineOfSight_OutOfRange(t *testing.T) {
	g := world.NewGrid(boxLayout(30, 3))
	if LineOfSight(g, world.Point{X: 1.5, Y: 1.5}, world.Point{X: 27.5, Y: 1.5}, 5) {
		t.Error("target beyond the depth budget should not be visible")
	}
}
