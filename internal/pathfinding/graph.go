package pathfinding

import "gridcaster/internal/world"

// routes lists the 8 neighbour offsets, orthogonal first. BFS expands them
// in this order, which decides between equally short paths.
var routes = [8][2]int{
	{-1, 0}, {0, -1}, {1, 0}, {0, 1},
	{-1, -1}, {1, -1}, {1, 1}, {-1, 1},
}

// Graph maps each open tile to its open, in-bounds neighbours. It is built
// once per round and never changes; occupancy is applied at search time.
type Graph struct {
	edges map[world.Tile][]world.Tile
}

// NewGraph builds the walkability graph of g.
func NewGraph(g *world.Grid) *Graph {
	graph := &Graph{edges: make(map[world.Tile][]world.Tile)}
	for _, t := range g.OpenTiles() {
		next := make([]world.Tile, 0, len(routes))
		for _, r := range routes {
			n := t.Add(r[0], r[1])
			if g.IsOpen(n) {
				next = append(next, n)
			}
		}
		graph.edges[t] = next
	}
	return graph
}

// Has reports whether t is a node of the graph, i.e. an open tile.
func (g *Graph) Has(t world.Tile) bool {
	_, ok := g.edges[t]
	return ok
}

// Neighbors returns the open neighbours of t. The slice must not be modified.
func (g *Graph) Neighbors(t world.Tile) []world.Tile {
	return g.edges[t]
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.edges)
}
