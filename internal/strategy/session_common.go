package strategy

import "github.com/ccnsim/ccnsim/sim"

// sessionRoundTrip is the common walk every session-level strategy
// performs: from receiver, follow the shortest path toward content's
// source, consulting each cache-bearing (or source) node along the way
// until the first hit; then walk back, invoking insertAt once per node
// below the hit node down to and including the receiver (index 0), in
// return-path order (closest to the hit first). insertAt decides whether
// and where to cache; it receives the node's index in path and is free to
// no-op.
//
// Returns the round-trip completion time. ok is false only if content has
// no known source (never reached in practice: missing sources are caught
// at workload setup, per §4.4.7).
func sessionRoundTrip(
	ctrl *sim.NetworkController,
	view *sim.NetworkView,
	t float64,
	receiver sim.NodeId,
	content sim.ContentId,
	flow sim.Flow,
	log bool,
	insertAt func(i int, node sim.NodeId, path []sim.NodeId),
) (tEnd float64, ok bool) {
	source, hasSrc := view.ContentSource(content)
	if !hasSrc {
		return t, false
	}

	ctrl.StartFlowSession(t, receiver, content, flow, log)

	path := view.ShortestPath(receiver, source)
	if len(path) == 0 {
		path = []sim.NodeId{receiver}
	}

	cur := t
	hitIndex := len(path) - 1
	for i, n := range path {
		if i > 0 {
			cur += view.LinkDelay(path[i-1], n)
			ctrl.ForwardRequestHopFlow(path[i-1], n, flow, true, log)
		}
		if view.HasCache(n) || n == source {
			if ctrl.GetContentFlow(n, content, flow, log) {
				hitIndex = i
				break
			}
		}
	}

	for i := hitIndex; i > 0; i-- {
		cur += view.LinkDelay(path[i], path[i-1])
		ctrl.ForwardContentHopFlow(path[i], path[i-1], flow, true, log)
		insertAt(i-1, path[i-1], path)
	}

	ctrl.EndFlowSession(cur, flow, true, log)
	return cur, true
}
