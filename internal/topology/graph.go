// Package topology builds the Graph that internal/topology compiles down
// into a sim.Topology: node roles, per-edge delay, and symmetric
// all-pairs shortest paths.
package topology

import "github.com/ccnsim/ccnsim/sim"

// Edge attributes of one undirected link.
type Edge struct {
	Delay float64
	Kind  string // "internal", "external"
}

// Graph is the mutable, builder-facing representation of a network
// topology, before it is compiled into the engine's immutable sim.Topology.
type Graph struct {
	Roles     map[sim.NodeId]sim.NodeRole
	CacheSize map[sim.NodeId]int
	Contents  map[sim.NodeId][]sim.ContentId // owned content, source nodes only
	adj       map[sim.NodeId]map[sim.NodeId]Edge
}

// NewGraph returns an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		Roles:     make(map[sim.NodeId]sim.NodeRole),
		CacheSize: make(map[sim.NodeId]int),
		Contents:  make(map[sim.NodeId][]sim.ContentId),
		adj:       make(map[sim.NodeId]map[sim.NodeId]Edge),
	}
}

// AddNode registers a node with the given role. Calling AddNode again for
// an existing node overwrites its role.
func (g *Graph) AddNode(id sim.NodeId, role sim.NodeRole) {
	g.Roles[id] = role
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[sim.NodeId]Edge)
	}
}

// AddEdge adds an undirected link between u and v with the given delay.
// Both endpoints must already exist via AddNode.
func (g *Graph) AddEdge(u, v sim.NodeId, delay float64, kind string) {
	e := Edge{Delay: delay, Kind: kind}
	g.adj[u][v] = e
	g.adj[v][u] = e
}

// Neighbors returns the adjacency map for n, or nil if n is unknown.
func (g *Graph) Neighbors(n sim.NodeId) map[sim.NodeId]Edge {
	return g.adj[n]
}

// Nodes returns every node id in the graph, in no particular order.
func (g *Graph) Nodes() []sim.NodeId {
	out := make([]sim.NodeId, 0, len(g.adj))
	for n := range g.adj {
		out = append(out, n)
	}
	return out
}

// SetCacheSize marks n as a router with the given cache capacity.
func (g *Graph) SetCacheSize(n sim.NodeId, size int) {
	g.CacheSize[n] = size
}

// SetContents marks n as the source of the given content ids.
func (g *Graph) SetContents(n sim.NodeId, contents []sim.ContentId) {
	g.Contents[n] = contents
}

// ToSimTopology compiles the graph into the engine's immutable sim.Topology,
// computing symmetric all-pairs shortest paths via Dijkstra.
func (g *Graph) ToSimTopology() *sim.Topology {
	sourceOf := make(map[sim.ContentId]sim.NodeId)
	for n, contents := range g.Contents {
		for _, c := range contents {
			sourceOf[c] = n
		}
	}

	linkDelay := make(map[[2]sim.NodeId]float64)
	seen := make(map[[2]sim.NodeId]bool)
	for u, nbrs := range g.adj {
		for v, e := range nbrs {
			key := [2]sim.NodeId{u, v}
			rev := [2]sim.NodeId{v, u}
			if seen[key] || seen[rev] {
				continue
			}
			seen[key] = true
			linkDelay[key] = e.Delay
		}
	}

	paths := AllPairsShortestPaths(g)

	cacheSize := make(map[sim.NodeId]int, len(g.CacheSize))
	for n, sz := range g.CacheSize {
		cacheSize[n] = sz
	}

	return sim.NewTopology(g.Roles, cacheSize, sourceOf, linkDelay, paths)
}
