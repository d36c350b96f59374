package sim

import "github.com/ccnsim/ccnsim/internal/simerr"

// NetworkController is the sole mutator of NetworkModel. Every entry point
// that changes observable state notifies the Collector when log is true;
// strategies never touch the model directly.
type NetworkController struct {
	m         *NetworkModel
	collector Collector
}

// NewNetworkController wires controller to model and collector.
func NewNetworkController(m *NetworkModel, collector Collector) *NetworkController {
	if collector == nil {
		collector = NopCollector{}
	}
	return &NetworkController{m: m, collector: collector}
}

// View returns a read-only projection of the controlled model.
func (c *NetworkController) View() *NetworkView {
	return NewNetworkView(c.m)
}

// StartFlowSession creates flow's scratch state and records its start time.
func (c *NetworkController) StartFlowSession(t float64, receiver NodeId, content ContentId, flow Flow, log bool) {
	c.m.flows.start(flow)
	c.m.flowStart[flow] = t
	if log {
		c.collector.OnStartFlowSession(t, receiver, content, flow)
	}
}

// ForwardRequestHopFlow notifies the collector that a Request traversed edge
// (u,v) for flow. Pushing the next event is the strategy's responsibility.
func (c *NetworkController) ForwardRequestHopFlow(u, v NodeId, flow Flow, mainPath bool, log bool) {
	if log {
		c.collector.OnRequestHopFlow(u, v, flow, mainPath)
	}
}

// ForwardContentHopFlow notifies the collector that a Data packet traversed
// edge (u,v) for flow.
func (c *NetworkController) ForwardContentHopFlow(u, v NodeId, flow Flow, mainPath bool, log bool) {
	if log {
		c.collector.OnContentHopFlow(u, v, flow, mainPath)
	}
}

// GetContentFlow consults node's cache for content (mutating LRU/LFU
// recency as a side effect); if node has no cache, a source node always
// serves a server-hit. Reports hit/miss/server-hit to the collector.
func (c *NetworkController) GetContentFlow(node NodeId, content ContentId, flow Flow, log bool) bool {
	if cache, ok := c.m.cacheAt(node); ok {
		hit := cache.Get(content)
		if log {
			if hit {
				c.collector.OnCacheHitFlow(node, content, flow)
			} else {
				c.collector.OnCacheMissFlow(node, content, flow)
			}
		}
		return hit
	}
	if c.m.Topology.IsSource(node) {
		if log {
			c.collector.OnServerHitFlow(node, content, flow)
		}
		return true
	}
	return false
}

// PutContentFlow inserts content into node's cache, possibly evicting an
// existing key. No-op if node has no cache.
func (c *NetworkController) PutContentFlow(node NodeId, content ContentId, _ Flow) {
	if cache, ok := c.m.cacheAt(node); ok {
		cache.Put(content)
	}
}

// AddEvent pushes e onto the link heap.
func (c *NetworkController) AddEvent(e Event) {
	c.m.sched.PushLink(e)
}

// PopNextEvent pops the earliest link event.
func (c *NetworkController) PopNextEvent() (Event, error) {
	return c.m.sched.PopLink()
}

// AddCacheQueueEvent pushes e onto node's cache-service heap.
func (c *NetworkController) AddCacheQueueEvent(node NodeId, e Event) {
	c.m.sched.PushCache(node, e)
}

// PopNextCacheEvent pops the earliest cache-service event at node.
func (c *NetworkController) PopNextCacheEvent(node NodeId) (Event, error) {
	return c.m.sched.PopCache(node)
}

// UpdateCacheQueueServer moves e into node's server slot at dispatch time.
func (c *NetworkController) UpdateCacheQueueServer(node NodeId, e Event) {
	c.m.sched.SetServer(node, e)
}

// RecordPktAdmitted notifies the collector that a cache op was admitted at
// node's cache-service queue.
func (c *NetworkController) RecordPktAdmitted(node NodeId, kind PacketKind, log bool) {
	if log {
		c.collector.OnRecordPktAdmitted(node, kind)
	}
}

// RecordPktRejected notifies the collector that a cache op was rejected
// (queue full) at node.
func (c *NetworkController) RecordPktRejected(node NodeId, kind PacketKind, log bool) {
	if log {
		c.collector.OnRecordPktRejected(node, kind)
	}
}

// ReportCacheQueueSize notifies the collector of node's current queue
// occupancy, for the CACHE_QUEUE data collector.
func (c *NetworkController) ReportCacheQueueSize(node NodeId, kind PacketKind, log bool) {
	if log {
		c.collector.OnReportCacheQueueSize(node, kind, c.m.sched.CacheQueueLen(node))
	}
}

// CacheOperationFlow notifies the collector of the queueing delay a cache op
// incurred for flow.
func (c *NetworkController) CacheOperationFlow(flow Flow, delay float64, log bool) {
	if log {
		c.collector.OnCacheOperationFlow(flow, delay)
	}
}

// EndFlowSession ends flow, notifying the collector with the flow's
// recorded start time and t. Every strategy in internal/strategy, the
// cache-delay and AVOID_BUSY_NODE variants included, ends its flows here.
func (c *NetworkController) EndFlowSession(t float64, flow Flow, success bool, log bool) {
	tStart := c.m.flowStart[flow]
	if log {
		c.collector.OnEndFlowSession(flow, success, tStart, t)
	}
	delete(c.m.flowStart, flow)
	c.m.flows.end(flow)
}

// EndFlowSessionCacheDelay ends flow on the separate cache-delay collector
// stream (OnEndFlowSessionCacheDelay). No strategy in internal/strategy
// calls it.
func (c *NetworkController) EndFlowSessionCacheDelay(t float64, flow Flow, success bool, log bool) {
	tStart := c.m.flowStart[flow]
	if log {
		c.collector.OnEndFlowSessionCacheDelay(flow, success, tStart, t)
	}
	delete(c.m.flowStart, flow)
	c.m.flows.end(flow)
}

// SetLCDCopied sets flow's single-copy guard (LCD variants).
func (c *NetworkController) SetLCDCopied(flow Flow, copied bool) {
	c.m.flows.get(flow).LCDCopied = copied
}

// TrackBusyNode adds node to flow's busy-node set (AVOID_BUSY_NODE variants).
func (c *NetworkController) TrackBusyNode(flow Flow, node NodeId) {
	c.m.flows.get(flow).BusyNodes[node] = struct{}{}
}

// StartProbCacheC resets flow's ProbCache node-count accumulator to n.
func (c *NetworkController) StartProbCacheC(flow Flow, n int) { c.m.flows.get(flow).ProbCacheC = n }

// AddProbCacheC increments flow's ProbCache node-count accumulator by n.
func (c *NetworkController) AddProbCacheC(flow Flow, n int) { c.m.flows.get(flow).ProbCacheC += n }

// ClearProbCacheC resets flow's ProbCache node-count accumulator to zero.
func (c *NetworkController) ClearProbCacheC(flow Flow) { c.m.flows.get(flow).ProbCacheC = 0 }

// StartProbCacheN resets flow's ProbCache cache-size accumulator to n.
func (c *NetworkController) StartProbCacheN(flow Flow, n int) { c.m.flows.get(flow).ProbCacheN = n }

// AddProbCacheN increments flow's ProbCache cache-size accumulator by n.
func (c *NetworkController) AddProbCacheN(flow Flow, n int) { c.m.flows.get(flow).ProbCacheN += n }

// SubtractProbCacheN decrements flow's ProbCache cache-size accumulator by
// n. The reference implementation adds here in one place; this is a
// deliberate correction — see the design notes on subtract_probcache_N.
func (c *NetworkController) SubtractProbCacheN(flow Flow, n int) {
	c.m.flows.get(flow).ProbCacheN -= n
}

// ClearProbCacheN resets flow's ProbCache cache-size accumulator to zero.
func (c *NetworkController) ClearProbCacheN(flow Flow) { c.m.flows.get(flow).ProbCacheN = 0 }

// StartProbCacheX resets flow's ProbCache return-path counter to x.
func (c *NetworkController) StartProbCacheX(flow Flow, x float64) { c.m.flows.get(flow).ProbCacheX = x }

// AddProbCacheX increments flow's ProbCache return-path counter by x.
func (c *NetworkController) AddProbCacheX(flow Flow, x float64) { c.m.flows.get(flow).ProbCacheX += x }

// ClearProbCacheX resets flow's ProbCache return-path counter to zero.
func (c *NetworkController) ClearProbCacheX(flow Flow) { c.m.flows.get(flow).ProbCacheX = 0 }

// CacheQueueLen exposes node's pending cache-service queue length, used by
// the admission rule (§4.4.4) to check against Q_max before pushing.
func (c *NetworkController) CacheQueueLen(node NodeId) int {
	return c.m.sched.CacheQueueLen(node)
}

// SetDelayPenalties configures the per-op service times used by
// CacheQueueDelay; set once by the workload driver at run start.
func (c *NetworkController) SetDelayPenalties(readPenalty, writePenalty float64) {
	c.m.ReadDelayPenalty = readPenalty
	c.m.WriteDelayPenalty = writePenalty
}

// SetCacheQueueSize configures Q_max; set once by the workload driver at run start.
func (c *NetworkController) SetCacheQueueSize(n int) {
	c.m.CacheQueueSize = n
}

// ErrEmptyQueue is re-exported for callers that only import sim.
var ErrEmptyQueue = simerr.ErrEmptyQueue
