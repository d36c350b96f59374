// Package collector provides concrete sim.Collector implementations for
// metric aggregation: cache hit ratio, latency, cache-queue occupancy,
// link load, path stretch, and a fan-out MultiCollector.
package collector

// Summarizable is implemented by every collector in this package in
// addition to sim.Collector, giving the CLI a uniform way to harvest
// results at the end of a run.
type Summarizable interface {
	Summary() map[string]any
}
