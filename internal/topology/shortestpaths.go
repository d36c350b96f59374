package topology

import (
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/ccnsim/ccnsim/sim"
)

// AllPairsShortestPaths computes shortest paths between every pair of nodes
// in g, weighted by link delay, via gonum's Dijkstra-all-paths, then
// symmetrises the result so that path(u,v) == reverse(path(v,u)) — matching
// the reference topology builder's symmetrify_paths behavior, since gonum's
// own tie-breaking between equal-cost paths is not guaranteed symmetric.
func AllPairsShortestPaths(g *Graph) map[sim.NodeId]map[sim.NodeId][]sim.NodeId {
	nodes := g.Nodes()

	id := make(map[sim.NodeId]int64, len(nodes))
	rev := make(map[int64]sim.NodeId, len(nodes))
	for i, n := range nodes {
		id[n] = int64(i)
		rev[int64(i)] = n
	}

	wg := simple.NewWeightedUndirectedGraph(0, math.Inf(1))
	for _, n := range nodes {
		wg.AddNode(simple.Node(id[n]))
	}
	added := make(map[[2]int64]bool)
	for _, u := range nodes {
		for v, e := range g.Neighbors(u) {
			a, b := id[u], id[v]
			key := [2]int64{a, b}
			rkey := [2]int64{b, a}
			if added[key] || added[rkey] {
				continue
			}
			added[key] = true
			wg.SetWeightedEdge(wg.NewWeightedEdge(simple.Node(a), simple.Node(b), e.Delay))
		}
	}

	allShortest := path.DijkstraAllPaths(wg)

	result := make(map[sim.NodeId]map[sim.NodeId][]sim.NodeId, len(nodes))
	for _, s := range nodes {
		result[s] = make(map[sim.NodeId][]sim.NodeId, len(nodes))
		for _, t := range nodes {
			if s == t {
				continue
			}
			nodePath, _, _ := allShortest.Between(id[s], id[t])
			if len(nodePath) == 0 {
				continue
			}
			result[s][t] = toNodeIds(nodePath, rev)
		}
	}

	symmetrize(result)
	return result
}

func toNodeIds(nodePath []graph.Node, rev map[int64]sim.NodeId) []sim.NodeId {
	out := make([]sim.NodeId, len(nodePath))
	for i, n := range nodePath {
		out[i] = rev[n.ID()]
	}
	return out
}

// symmetrize overwrites path(v,u) with reverse(path(u,v)) for every pair
// already present, so that the two directions are guaranteed consistent.
func symmetrize(paths map[sim.NodeId]map[sim.NodeId][]sim.NodeId) {
	for u, byT := range paths {
		for v, p := range byT {
			if len(p) == 0 {
				continue
			}
			reversed := make([]sim.NodeId, len(p))
			for i, n := range p {
				reversed[len(p)-1-i] = n
			}
			if _, ok := paths[v]; !ok {
				paths[v] = make(map[sim.NodeId][]sim.NodeId)
			}
			paths[v][u] = reversed
		}
	}
}
