package collector

import (
	"math"
	"sort"

	"github.com/ccnsim/ccnsim/sim"
)

// LatencyCollector records per-flow start/end timestamps and reports
// mean/p50/p99 completion latency over successful flows.
type LatencyCollector struct {
	sim.NopCollector
	samples []float64
}

// NewLatencyCollector creates an empty LatencyCollector.
func NewLatencyCollector() *LatencyCollector {
	return &LatencyCollector{}
}

func (c *LatencyCollector) OnEndFlowSession(_ sim.Flow, success bool, tStart, tEnd float64) {
	c.record(success, tStart, tEnd)
}

func (c *LatencyCollector) OnEndFlowSessionCacheDelay(_ sim.Flow, success bool, tStart, tEnd float64) {
	c.record(success, tStart, tEnd)
}

func (c *LatencyCollector) record(success bool, tStart, tEnd float64) {
	if !success {
		return
	}
	c.samples = append(c.samples, tEnd-tStart)
}

// Mean returns the mean completion latency, or 0 if no flows completed.
func (c *LatencyCollector) Mean() float64 {
	if len(c.samples) == 0 {
		return 0
	}
	var sum float64
	for _, s := range c.samples {
		sum += s
	}
	return sum / float64(len(c.samples))
}

// Percentile returns the p-th percentile latency (0 <= p <= 100), or 0 if
// no flows completed.
func (c *LatencyCollector) Percentile(p float64) float64 {
	if len(c.samples) == 0 {
		return 0
	}
	sorted := append([]float64(nil), c.samples...)
	sort.Float64s(sorted)
	idx := int(math.Round(p / 100 * float64(len(sorted)-1)))
	return sorted[idx]
}

func (c *LatencyCollector) Summary() map[string]any {
	return map[string]any{
		"mean_latency": c.Mean(),
		"p50_latency":  c.Percentile(50),
		"p99_latency":  c.Percentile(99),
		"samples":      len(c.samples),
	}
}
