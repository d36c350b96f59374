package collector

import "github.com/ccnsim/ccnsim/sim"

type directedEdge struct {
	u, v sim.NodeId
}

// LinkLoadCollector counts RequestHopFlow/ContentHopFlow traversals per
// directed edge.
type LinkLoadCollector struct {
	sim.NopCollector
	requestHops map[directedEdge]int64
	contentHops map[directedEdge]int64
}

// NewLinkLoadCollector creates an empty LinkLoadCollector.
func NewLinkLoadCollector() *LinkLoadCollector {
	return &LinkLoadCollector{
		requestHops: make(map[directedEdge]int64),
		contentHops: make(map[directedEdge]int64),
	}
}

func (c *LinkLoadCollector) OnRequestHopFlow(u, v sim.NodeId, _ sim.Flow, _ bool) {
	c.requestHops[directedEdge{u, v}]++
}

func (c *LinkLoadCollector) OnContentHopFlow(u, v sim.NodeId, _ sim.Flow, _ bool) {
	c.contentHops[directedEdge{u, v}]++
}

// RequestHops returns the number of Request packets that traversed u->v.
func (c *LinkLoadCollector) RequestHops(u, v sim.NodeId) int64 {
	return c.requestHops[directedEdge{u, v}]
}

// ContentHops returns the number of Data packets that traversed u->v.
func (c *LinkLoadCollector) ContentHops(u, v sim.NodeId) int64 {
	return c.contentHops[directedEdge{u, v}]
}

func (c *LinkLoadCollector) Summary() map[string]any {
	requests := make(map[string]int64, len(c.requestHops))
	for e, n := range c.requestHops {
		requests[string(e.u)+"->"+string(e.v)] = n
	}
	content := make(map[string]int64, len(c.contentHops))
	for e, n := range c.contentHops {
		content[string(e.u)+"->"+string(e.v)] = n
	}
	return map[string]any{
		"request_hops_by_edge": requests,
		"content_hops_by_edge": content,
	}
}
