package pathfinding

import "gridcaster/internal/world"

// Occupancy is the set of tiles held by living agents this tick.
type Occupancy map[world.Tile]struct{}

// NewOccupancy creates a set holding tiles.
func NewOccupancy(tiles ...world.Tile) Occupancy {
	o := make(Occupancy, len(tiles))
	for _, t := range tiles {
		o.Add(t)
	}
	return o
}

// Add marks t occupied.
func (o Occupancy) Add(t world.Tile) {
	o[t] = struct{}{}
}

// Has reports whether t is occupied.
func (o Occupancy) Has(t world.Tile) bool {
	_, ok := o[t]
	return ok
}

// Reset empties the set in place.
func (o Occupancy) Reset() {
	clear(o)
}

// Equal reports whether both sets hold the same tiles.
func (o Occupancy) Equal(other Occupancy) bool {
	if len(o) != len(other) {
		return false
	}
	for t := range o {
		if !other.Has(t) {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (o Occupancy) Clone() Occupancy {
	c := make(Occupancy, len(o))
	for t := range o {
		c[t] = struct{}{}
	}
	return c
}
