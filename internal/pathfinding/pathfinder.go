package pathfinding

import (
	"fmt"

	"gridcaster/internal/world"
)

// CacheMode selects how Route memoizes results.
type CacheMode int

const (
	// CacheOccupancy memoizes by (start, goal) and flushes whenever the
	// occupancy set differs from the one the cache was filled under.
	CacheOccupancy CacheMode = iota
	// CacheLegacy memoizes by (start, goal) only. Results go stale when
	// agents move, so routes can lead into tiles that have since filled up.
	CacheLegacy
	// CacheOff searches on every call.
	CacheOff
)

// ParseCacheMode maps a config value to a CacheMode.
func ParseCacheMode(s string) (CacheMode, error) {
	switch s {
	case "", "occupancy":
		return CacheOccupancy, nil
	case "legacy":
		return CacheLegacy, nil
	case "off":
		return CacheOff, nil
	}
	return CacheOccupancy, fmt.Errorf("unknown pathfinding cache mode %q", s)
}

func (m CacheMode) String() string {
	switch m {
	case CacheOccupancy:
		return "occupancy"
	case CacheLegacy:
		return "legacy"
	case CacheOff:
		return "off"
	}
	return fmt.Sprintf("CacheMode(%d)", int(m))
}

type routeKey struct {
	start, goal world.Tile
}

// Stats counts route lookups.
type Stats struct {
	Searches int
	Hits     int
	Flushes  int
}

// Pathfinder answers next-step queries over a Graph.
type Pathfinder struct {
	graph    *Graph
	mode     CacheMode
	cache    map[routeKey]world.Tile
	snapshot Occupancy
	stats    Stats

	// search scratch, reused between calls
	queue    []world.Tile
	cameFrom map[world.Tile]world.Tile
}

// NewPathfinder creates a pathfinder over graph.
func NewPathfinder(graph *Graph, mode CacheMode) *Pathfinder {
	return &Pathfinder{
		graph:    graph,
		mode:     mode,
		cache:    make(map[routeKey]world.Tile),
		snapshot: Occupancy{},
		cameFrom: make(map[world.Tile]world.Tile),
	}
}

// Mode returns the cache mode.
func (p *Pathfinder) Mode() CacheMode {
	return p.mode
}

// Stats returns lookup counters since creation.
func (p *Pathfinder) Stats() Stats {
	return p.stats
}

// Route returns the tile start should step to next on a shortest path to
// goal that avoids occupied tiles. It returns start when goal equals start
// or cannot be reached.
func (p *Pathfinder) Route(start, goal world.Tile, occ Occupancy) world.Tile {
	key := routeKey{start: start, goal: goal}
	switch p.mode {
	case CacheOccupancy:
		if !p.snapshot.Equal(occ) {
			clear(p.cache)
			p.snapshot = occ.Clone()
			p.stats.Flushes++
		}
		fallthrough
	case CacheLegacy:
		if next, ok := p.cache[key]; ok {
			p.stats.Hits++
			return next
		}
	}

	next := p.search(start, goal, occ)
	if p.mode != CacheOff {
		p.cache[key] = next
	}
	return next
}

// search runs a breadth-first search from start, skipping occupied tiles,
// and walks the predecessors back from goal to find the first step.
func (p *Pathfinder) search(start, goal world.Tile, occ Occupancy) world.Tile {
	p.stats.Searches++
	if start == goal {
		return start
	}

	clear(p.cameFrom)
	p.queue = append(p.queue[:0], start)
	p.cameFrom[start] = start

	for head := 0; head < len(p.queue); head++ {
		current := p.queue[head]
		if current == goal {
			break
		}
		for _, next := range p.graph.Neighbors(current) {
			if _, seen := p.cameFrom[next]; seen || occ.Has(next) {
				continue
			}
			p.cameFrom[next] = current
			p.queue = append(p.queue, next)
		}
	}

	if _, ok := p.cameFrom[goal]; !ok {
		return start
	}
	step := goal
	for {
		prev := p.cameFrom[step]
		if prev == start {
			return step
		}
		step = prev
	}
}

// Path returns the full route from start to goal, excluding start, or nil
// when goal is unreachable. It never touches the cache.
func (p *Pathfinder) Path(start, goal world.Tile, occ Occupancy) []world.Tile {
	if start == goal {
		return nil
	}
	if p.search(start, goal, occ) == start {
		return nil
	}
	var path []world.Tile
	for step := goal; step != start; step = p.cameFrom[step] {
		path = append(path, step)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
