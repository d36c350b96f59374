package collector

import "github.com/ccnsim/ccnsim/sim"

// CacheHitRatioCollector tracks Σhits/Σlookups, both per node and in
// aggregate across the whole run.
type CacheHitRatioCollector struct {
	sim.NopCollector
	hits, lookups       int64
	hitsByNode          map[sim.NodeId]int64
	lookupsByNode       map[sim.NodeId]int64
}

// NewCacheHitRatioCollector creates an empty CacheHitRatioCollector.
func NewCacheHitRatioCollector() *CacheHitRatioCollector {
	return &CacheHitRatioCollector{
		hitsByNode:    make(map[sim.NodeId]int64),
		lookupsByNode: make(map[sim.NodeId]int64),
	}
}

func (c *CacheHitRatioCollector) OnCacheHitFlow(node sim.NodeId, _ sim.ContentId, _ sim.Flow) {
	c.hits++
	c.lookups++
	c.hitsByNode[node]++
	c.lookupsByNode[node]++
}

func (c *CacheHitRatioCollector) OnCacheMissFlow(node sim.NodeId, _ sim.ContentId, _ sim.Flow) {
	c.lookups++
	c.lookupsByNode[node]++
}

// HitRatio returns the aggregate hit ratio across every cache-bearing node,
// or 0 if no lookups were recorded.
func (c *CacheHitRatioCollector) HitRatio() float64 {
	if c.lookups == 0 {
		return 0
	}
	return float64(c.hits) / float64(c.lookups)
}

// HitRatioByNode returns the per-node hit ratio.
func (c *CacheHitRatioCollector) HitRatioByNode() map[sim.NodeId]float64 {
	out := make(map[sim.NodeId]float64, len(c.lookupsByNode))
	for n, l := range c.lookupsByNode {
		if l == 0 {
			out[n] = 0
			continue
		}
		out[n] = float64(c.hitsByNode[n]) / float64(l)
	}
	return out
}

func (c *CacheHitRatioCollector) Summary() map[string]any {
	return map[string]any{
		"hit_ratio":         c.HitRatio(),
		"hit_ratio_by_node": c.HitRatioByNode(),
		"hits":              c.hits,
		"lookups":           c.lookups,
	}
}
