package collector

import "github.com/ccnsim/ccnsim/sim"

// CacheQueueCollector samples ReportCacheQueueSize into a per-node
// occupancy histogram.
type CacheQueueCollector struct {
	sim.NopCollector
	histogram map[sim.NodeId]map[int]int64
}

// NewCacheQueueCollector creates an empty CacheQueueCollector.
func NewCacheQueueCollector() *CacheQueueCollector {
	return &CacheQueueCollector{histogram: make(map[sim.NodeId]map[int]int64)}
}

func (c *CacheQueueCollector) OnReportCacheQueueSize(node sim.NodeId, _ sim.PacketKind, size int) {
	byNode, ok := c.histogram[node]
	if !ok {
		byNode = make(map[int]int64)
		c.histogram[node] = byNode
	}
	byNode[size]++
}

// MeanOccupancy returns the mean observed queue occupancy at node n.
func (c *CacheQueueCollector) MeanOccupancy(n sim.NodeId) float64 {
	byNode, ok := c.histogram[n]
	if !ok {
		return 0
	}
	var total, count int64
	for size, n := range byNode {
		total += int64(size) * n
		count += n
	}
	if count == 0 {
		return 0
	}
	return float64(total) / float64(count)
}

func (c *CacheQueueCollector) Summary() map[string]any {
	meanByNode := make(map[sim.NodeId]float64, len(c.histogram))
	for n := range c.histogram {
		meanByNode[n] = c.MeanOccupancy(n)
	}
	return map[string]any{
		"mean_queue_occupancy_by_node": meanByNode,
		"queue_histogram_by_node":      c.histogram,
	}
}
