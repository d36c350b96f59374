package sim

// NetworkModel owns every piece of mutable simulation state: the topology
// projection, per-node cache policies, the two-heap scheduler (link events
// and per-node cache-service queues), and per-flow scratch. It is mutated
// exclusively through NetworkController; NetworkView gives strategies a
// read-only handle onto the same state.
type NetworkModel struct {
	Topology *Topology
	caches   map[NodeId]CachePolicy
	sched    *Scheduler
	flows    *flowArena

	ReadDelayPenalty  float64
	WriteDelayPenalty float64
	CacheQueueSize    int // Q_max

	flowStart map[Flow]float64
}

// NewNetworkModel builds a model over topology with one CachePolicy per
// cache-bearing router (caches maps every router tagged by the topology as
// cache-bearing to its policy instance; routers absent from the map are
// treated as uncached).
func NewNetworkModel(topology *Topology, caches map[NodeId]CachePolicy) *NetworkModel {
	return &NetworkModel{
		Topology:          topology,
		caches:            caches,
		sched:             NewScheduler(),
		flows:             newFlowArena(),
		ReadDelayPenalty:  100,
		WriteDelayPenalty: 100,
		CacheQueueSize:    10,
		flowStart:         make(map[Flow]float64),
	}
}

func (m *NetworkModel) cacheAt(node NodeId) (CachePolicy, bool) {
	c, ok := m.caches[node]
	return c, ok
}

func (m *NetworkModel) peekAllCache(node NodeId) []Event {
	return m.sched.AllCache(node)
}
