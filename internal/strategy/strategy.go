// Package strategy provides the concrete sim.Strategy implementations
// selected by configuration: packet-level, cache-delay, and
// busy-node-avoidance variants of LCE/LCD/ProbCache, plus the
// session-level strategies (LCE, LCD, PARTITION, EDGE, PROB_CACHE, CL4M,
// RAND_BERNOULLI, RAND_CHOICE).
package strategy

import "github.com/ccnsim/ccnsim/sim"

// Config carries every strategy-specific parameter named in the strategy
// configuration block. Not every field is consulted by every strategy.
type Config struct {
	// TTW is ProbCache's time-window constant (default 10).
	TTW float64
	// P is RAND_BERNOULLI's per-router insertion probability (default 0.2).
	P float64
	// UseEgoBetw restricts CL4M's betweenness computation to the receiver's
	// ego graph (the receiver and its direct neighbours) instead of the
	// whole topology.
	UseEgoBetw bool
	// CacheAssignment is PARTITION's static node -> assigned-content-set map.
	CacheAssignment map[sim.NodeId]map[sim.ContentId]struct{}
	// RNG is the run's partitioned RNG; ProbCache, RAND_BERNOULLI, and
	// RAND_CHOICE each draw from their own named subsystem substream.
	RNG *sim.PartitionedRNG
	// Topology is consulted directly (rather than through a NetworkView)
	// only by CL4M, which needs the adjacency structure for betweenness
	// centrality, not just shortest paths.
	Topology *sim.Topology
}

func nextHop(path []sim.NodeId) (sim.NodeId, bool) {
	if len(path) < 2 {
		return "", false
	}
	return path[1], true
}

// hopToward returns the single next hop from node toward dest, or node
// itself with ok=false if node == dest (nowhere left to go).
func hopToward(view *sim.NetworkView, node, dest sim.NodeId) (sim.NodeId, bool) {
	if node == dest {
		return node, false
	}
	return nextHop(view.ShortestPath(node, dest))
}

func pushRequest(ctrl *sim.NetworkController, t float64, receiver sim.NodeId, content sim.ContentId, from, to sim.NodeId, flow sim.Flow, delay float64, log bool) {
	ctrl.ForwardRequestHopFlow(from, to, flow, true, log)
	ctrl.AddEvent(sim.Event{
		TEvent: t + delay, Receiver: receiver, Content: content,
		Node: to, FlowID: flow, Kind: sim.Request, Log: log,
	})
}

func pushData(ctrl *sim.NetworkController, t float64, receiver sim.NodeId, content sim.ContentId, from, to sim.NodeId, flow sim.Flow, delay float64, log bool) {
	ctrl.ForwardContentHopFlow(from, to, flow, true, log)
	ctrl.AddEvent(sim.Event{
		TEvent: t + delay, Receiver: receiver, Content: content,
		Node: to, FlowID: flow, Kind: sim.Data, Log: log,
	})
}
