package sim

import "math"

// NetworkView is the read-only projection of NetworkModel strategies
// consult. Every method is non-mutating; the only way to change model
// state is through NetworkController.
type NetworkView struct {
	m *NetworkModel
}

// NewNetworkView wraps model in a read-only view.
func NewNetworkView(m *NetworkModel) *NetworkView {
	return &NetworkView{m: m}
}

// ShortestPath returns the precomputed node sequence from s to t.
func (v *NetworkView) ShortestPath(s, t NodeId) []NodeId {
	return v.m.Topology.ShortestPath(s, t)
}

// LinkDelay returns the service time of edge (u,v).
func (v *NetworkView) LinkDelay(u, v2 NodeId) float64 {
	return v.m.Topology.LinkDelay(u, v2)
}

// ContentSource returns the source node of content k.
func (v *NetworkView) ContentSource(k ContentId) (NodeId, bool) {
	return v.m.Topology.ContentSource(k)
}

// ContentLocations returns every cache holding k, plus its source.
func (v *NetworkView) ContentLocations(k ContentId) []NodeId {
	var locs []NodeId
	for node, cache := range v.m.caches {
		if cache.Has(k) {
			locs = append(locs, node)
		}
	}
	if src, ok := v.m.Topology.ContentSource(k); ok {
		locs = append(locs, src)
	}
	return locs
}

// HasCache reports whether n is a cache-bearing router.
func (v *NetworkView) HasCache(n NodeId) bool {
	_, ok := v.m.cacheAt(n)
	return ok
}

// IsSource reports whether n is the source of any content.
func (v *NetworkView) IsSource(n NodeId) bool {
	return v.m.Topology.IsSource(n)
}

// CacheLookup consults n's cache for k without mutating recency/frequency
// order. Idempotent: repeated calls never change observed hit-ratio metrics
// (§8 invariant 8).
func (v *NetworkView) CacheLookup(n NodeId, k ContentId) bool {
	cache, ok := v.m.cacheAt(n)
	if !ok {
		return false
	}
	return cache.Has(k)
}

// CacheSize returns n's cache capacity (0 if n is uncached).
func (v *NetworkView) CacheSize(n NodeId) int {
	cache, ok := v.m.cacheAt(n)
	if !ok {
		return 0
	}
	return cache.MaxLen()
}

// CacheQueueNode returns the number of pending (not-in-service) cache-service
// events queued at n.
func (v *NetworkView) CacheQueueNode(n NodeId) int {
	return v.m.sched.CacheQueueLen(n)
}

// CacheQueueSize returns the cache-service queue capacity, Q_max.
func (v *NetworkView) CacheQueueSize() int {
	return v.m.CacheQueueSize
}

// PeekNextEvent returns the earliest pending link event, if any.
func (v *NetworkView) PeekNextEvent() (Event, bool) {
	return v.m.sched.PeekLink()
}

// PeekNextCacheEvent returns the earliest pending cache-service event across
// every node, if any.
func (v *NetworkView) PeekNextCacheEvent() (NodeId, Event, bool) {
	return v.m.sched.PeekCacheMin()
}

func serviceTime(e Event, readPenalty, writePenalty float64) float64 {
	if e.Kind == PutContent {
		return writePenalty
	}
	return readPenalty
}

// CacheQueueDelay computes the time at which a cache op admitted now at node
// n will complete (§4.2):
//   - server empty, queue empty:      0
//   - server empty, queue non-empty:  sum of per-op service times over the queue
//   - server non-empty:               ceil(server.t_event + Σ service_time(server ∪ queue) − tNow), clamped to ≥ 0
func (v *NetworkView) CacheQueueDelay(n NodeId, tNow float64) float64 {
	m := v.m
	server, hasServer := m.sched.Server(n)
	queueLen := m.sched.CacheQueueLen(n)

	if !hasServer && queueLen == 0 {
		return 0
	}
	if !hasServer {
		var total float64
		for _, e := range m.peekAllCache(n) {
			total += serviceTime(e, m.ReadDelayPenalty, m.WriteDelayPenalty)
		}
		return total
	}

	total := server.TEvent + serviceTime(server, m.ReadDelayPenalty, m.WriteDelayPenalty)
	for _, e := range m.peekAllCache(n) {
		total += serviceTime(e, m.ReadDelayPenalty, m.WriteDelayPenalty)
	}
	delay := math.Ceil(total - tNow)
	if delay < 0 {
		delay = 0
	}
	return delay
}

// BusyNodes returns flow's set of busy nodes (AVOID_BUSY_NODE variants).
func (v *NetworkView) BusyNodes(flow Flow) map[NodeId]struct{} {
	return v.m.flows.get(flow).BusyNodes
}

// LCDCopied reports whether flow has already made its single LCD copy.
func (v *NetworkView) LCDCopied(flow Flow) bool {
	return v.m.flows.get(flow).LCDCopied
}

// ProbCacheState returns flow's ProbCache accumulator state (c, N, x).
func (v *NetworkView) ProbCacheState(flow Flow) (c, n int, x float64) {
	fs := v.m.flows.get(flow)
	return fs.ProbCacheC, fs.ProbCacheN, fs.ProbCacheX
}
