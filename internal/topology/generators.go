package topology

import (
	"fmt"
	"math/rand"

	"github.com/ccnsim/ccnsim/sim"
)

// NewPathTopology builds a line of n nodes, uniform link delay: a single
// receiver n0 at one end, a single source n{n-1} at the other, and n-2
// cache-bearing routers between them.
func NewPathTopology(n int, delay float64) *Graph {
	g := NewGraph()
	ids := make([]sim.NodeId, n)
	for i := 0; i < n; i++ {
		ids[i] = sim.NodeId(fmt.Sprintf("n%d", i))
	}
	g.AddNode(ids[0], sim.RoleReceiver)
	for i := 1; i < n-1; i++ {
		g.AddNode(ids[i], sim.RoleRouter)
		g.SetCacheSize(ids[i], 1)
	}
	g.AddNode(ids[n-1], sim.RoleSource)
	for i := 0; i < n-1; i++ {
		g.AddEdge(ids[i], ids[i+1], delay, "internal")
	}
	return g
}

// NewTreeTopology builds a balanced k-ary tree of height h: the root is the
// single source, internal nodes are cache-bearing routers, and leaves are
// receivers. Matches the reference tree topology's receiver-at-leaf,
// source-at-root layout.
func NewTreeTopology(h, k int, delay float64) *Graph {
	g := NewGraph()
	root := sim.NodeId("n0")
	g.AddNode(root, sim.RoleSource)

	type level struct {
		nodes []sim.NodeId
	}
	cur := level{nodes: []sim.NodeId{root}}
	next := 1
	for depth := 1; depth <= h; depth++ {
		var nl level
		isLeaf := depth == h
		for _, parent := range cur.nodes {
			for c := 0; c < k; c++ {
				id := sim.NodeId(fmt.Sprintf("n%d", next))
				next++
				if isLeaf {
					g.AddNode(id, sim.RoleReceiver)
				} else {
					g.AddNode(id, sim.RoleRouter)
					g.SetCacheSize(id, 1)
				}
				g.AddEdge(parent, id, delay, "internal")
				nl.nodes = append(nl.nodes, id)
			}
		}
		cur = nl
	}
	return g
}

// garrEdges is the fixed small research-network-shaped edge list, ported
// from the reference topology generator's hardcoded GARR graph.
var garrEdges = [][2]string{
	{"rt0", "rt1"}, {"rt1", "rt2"}, {"rt2", "rt3"}, {"rt3", "rt4"},
	{"rt4", "rt0"}, {"rt0", "rt2"}, {"rt1", "rt3"}, {"rt2", "rt4"},
}

// NewGARRTopology builds the fixed small GARR-shaped graph: interior
// routers rt0..rt4 carrying caches, a receiver and source grafted onto
// opposite ends.
func NewGARRTopology() *Graph {
	g := NewGraph()
	for _, id := range []string{"rt0", "rt1", "rt2", "rt3", "rt4"} {
		g.AddNode(sim.NodeId(id), sim.RoleRouter)
		g.SetCacheSize(sim.NodeId(id), 2)
	}
	for _, e := range garrEdges {
		g.AddEdge(sim.NodeId(e[0]), sim.NodeId(e[1]), 1.0, "internal")
	}
	g.AddNode("recv0", sim.RoleReceiver)
	g.AddEdge("recv0", "rt0", 1.0, "external")
	g.AddNode("src0", sim.RoleSource)
	g.AddEdge("src0", "rt3", 1.0, "external")
	return g
}

// NewGLPTopology builds a randomized power-law-ish graph of n nodes via
// preferential reattachment, using rng (the caller is expected to pass
// PartitionedRNG.ForSubsystem(sim.SubsystemTopology)) rather than an
// unseeded generator. m0 initial fully-connected nodes grow by attaching
// each new node to m existing nodes (m is capped at m0), picked with
// probability proportional to current degree plus one. No extra nodes are
// added: the lowest-degree node is retagged as the receiver and the
// highest-degree node as the source, leaving n-2 cache-bearing routers.
func NewGLPTopology(n int, m0, m int, rng *rand.Rand) *Graph {
	if m0 < 1 {
		m0 = 1
	}
	if m > m0 {
		m = m0
	}
	g := NewGraph()
	ids := make([]sim.NodeId, n)
	for i := 0; i < n; i++ {
		ids[i] = sim.NodeId(fmt.Sprintf("rt%d", i))
		g.AddNode(ids[i], sim.RoleRouter)
		g.SetCacheSize(ids[i], 2)
	}

	degree := make([]int, n)
	for i := 0; i < m0; i++ {
		for j := i + 1; j < m0; j++ {
			g.AddEdge(ids[i], ids[j], 1.0, "internal")
			degree[i]++
			degree[j]++
		}
	}

	for i := m0; i < n; i++ {
		attached := make(map[int]bool)
		total := 0
		for j := 0; j < i; j++ {
			total += degree[j] + 1
		}
		for len(attached) < m && len(attached) < i {
			target := rng.Intn(total)
			cum := 0
			for j := 0; j < i; j++ {
				cum += degree[j] + 1
				if target < cum {
					if !attached[j] {
						attached[j] = true
						g.AddEdge(ids[i], ids[j], 1.0, "internal")
						degree[i]++
						degree[j]++
					}
					break
				}
			}
		}
	}

	minDeg, maxDeg := 0, 0
	for i := 1; i < n; i++ {
		if degree[i] < degree[minDeg] {
			minDeg = i
		}
		if degree[i] > degree[maxDeg] {
			maxDeg = i
		}
	}
	g.Roles[ids[minDeg]] = sim.RoleReceiver
	delete(g.CacheSize, ids[minDeg])
	if maxDeg == minDeg {
		maxDeg = (minDeg + 1) % n
	}
	g.Roles[ids[maxDeg]] = sim.RoleSource
	delete(g.CacheSize, ids[maxDeg])

	return g
}
