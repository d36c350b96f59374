package strategy

import (
	"gonum.org/v1/gonum/graph/network"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// cl4m implements CL4M (Cache "Less for More"): insert at the single
// cache-bearing router on the return path with the highest betweenness
// centrality, ties broken toward the receiver. When UseEgoBetw is set,
// centrality is computed over the receiver's ego graph (the receiver and
// its direct neighbors) rather than the full topology.
type cl4m struct {
	topology   *sim.Topology
	useEgoBetw bool
}

// NewCL4M creates the CL4M strategy.
func NewCL4M(cfg Config) sim.Strategy {
	return &cl4m{topology: cfg.Topology, useEgoBetw: cfg.UseEgoBetw}
}

func (s *cl4m) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
	if pkt != sim.Request {
		return simerr.ErrInvalidPacketKind
	}
	view := ctrl.View()

	centrality := s.centrality(receiver)

	chosen := -1
	initialized := false

	_, ok := sessionRoundTrip(ctrl, view, t, receiver, content, flow, log, func(i int, n sim.NodeId, path []sim.NodeId) {
		if !initialized {
			best := -1.0
			// Walk from the hit back toward the receiver so that >= lets a
			// later (closer-to-receiver) tie overwrite an earlier one.
			for j := i; j >= 0; j-- {
				if !view.HasCache(path[j]) {
					continue
				}
				score := centrality[path[j]]
				if score >= best {
					best = score
					chosen = j
				}
			}
			initialized = true
		}
		if chosen == i {
			ctrl.PutContentFlow(n, content, flow)
		}
	})
	if !ok {
		return simerr.ErrNoSource
	}
	return nil
}

// centrality returns betweenness centrality per node, over the full
// topology or, when useEgoBetw is set, over the receiver's ego graph.
func (s *cl4m) centrality(receiver sim.NodeId) map[sim.NodeId]float64 {
	nodes := s.topology.Nodes()
	if s.useEgoBetw {
		nodes = append([]sim.NodeId{receiver}, s.topology.Neighbors(receiver)...)
	}

	id := make(map[sim.NodeId]int64, len(nodes))
	rev := make(map[int64]sim.NodeId, len(nodes))
	members := make(map[sim.NodeId]bool, len(nodes))
	for i, n := range nodes {
		id[n] = int64(i)
		rev[int64(i)] = n
		members[n] = true
	}

	g := simple.NewUndirectedGraph()
	for _, n := range nodes {
		g.AddNode(simple.Node(id[n]))
	}
	for _, u := range nodes {
		for _, v := range s.topology.Neighbors(u) {
			if !members[v] {
				continue
			}
			if g.HasEdgeBetween(id[u], id[v]) {
				continue
			}
			g.SetEdge(simple.Edge{F: simple.Node(id[u]), T: simple.Node(id[v])})
		}
	}

	raw := network.Betweenness(g)
	out := make(map[sim.NodeId]float64, len(raw))
	for gid, score := range raw {
		out[rev[gid]] = score
	}
	return out
}
