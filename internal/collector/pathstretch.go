package collector

import "github.com/ccnsim/ccnsim/sim"

type flowMeta struct {
	receiver sim.NodeId
	content  sim.ContentId
	hops     int
}

// PathStretchCollector compares the realized hop count of each flow's main
// path (the forwarding path actually walked, mainPath=true hops only)
// against the topology's shortest-path hop count between receiver and
// source, reporting the mean ratio.
type PathStretchCollector struct {
	sim.NopCollector
	topo    *sim.Topology
	flows   map[sim.Flow]*flowMeta
	stretch []float64
}

// NewPathStretchCollector creates a PathStretchCollector bound to topo,
// used to look up the optimal hop count for each flow's (receiver, source)
// pair.
func NewPathStretchCollector(topo *sim.Topology) *PathStretchCollector {
	return &PathStretchCollector{
		topo:  topo,
		flows: make(map[sim.Flow]*flowMeta),
	}
}

func (c *PathStretchCollector) OnStartFlowSession(_ float64, receiver sim.NodeId, content sim.ContentId, flow sim.Flow) {
	c.flows[flow] = &flowMeta{receiver: receiver, content: content}
}

func (c *PathStretchCollector) OnRequestHopFlow(_, _ sim.NodeId, flow sim.Flow, mainPath bool) {
	c.addHop(flow, mainPath)
}

func (c *PathStretchCollector) OnContentHopFlow(_, _ sim.NodeId, flow sim.Flow, mainPath bool) {
	c.addHop(flow, mainPath)
}

func (c *PathStretchCollector) addHop(flow sim.Flow, mainPath bool) {
	if !mainPath {
		return
	}
	if m, ok := c.flows[flow]; ok {
		m.hops++
	}
}

func (c *PathStretchCollector) OnEndFlowSession(flow sim.Flow, success bool, _, _ float64) {
	c.finish(flow, success)
}

func (c *PathStretchCollector) OnEndFlowSessionCacheDelay(flow sim.Flow, success bool, _, _ float64) {
	c.finish(flow, success)
}

func (c *PathStretchCollector) finish(flow sim.Flow, success bool) {
	m, ok := c.flows[flow]
	if !ok {
		return
	}
	defer delete(c.flows, flow)
	if !success {
		return
	}
	source, ok := c.topo.ContentSource(m.content)
	if !ok {
		return
	}
	optimal := len(c.topo.ShortestPath(m.receiver, source))
	if optimal <= 1 {
		return
	}
	c.stretch = append(c.stretch, float64(m.hops)/float64(optimal-1))
}

// MeanStretch returns the mean realized/optimal hop-count ratio across
// every successfully completed flow, or 0 if none completed.
func (c *PathStretchCollector) MeanStretch() float64 {
	if len(c.stretch) == 0 {
		return 0
	}
	var sum float64
	for _, s := range c.stretch {
		sum += s
	}
	return sum / float64(len(c.stretch))
}

func (c *PathStretchCollector) Summary() map[string]any {
	return map[string]any{
		"mean_path_stretch": c.MeanStretch(),
		"samples":           len(c.stretch),
	}
}
