package collector

import (
	"fmt"

	"github.com/ccnsim/ccnsim/sim"
)

// NewCollector creates a named Collector by its data_collectors tag. Valid
// names: CACHE_HIT_RATIO, LATENCY, CACHE_QUEUE, LINK_LOAD, PATH_STRETCH.
// topo is only consulted by PATH_STRETCH. Panics on an unrecognized name,
// matching the corpus's registry-factory pattern.
func NewCollector(name string, topo *sim.Topology) sim.Collector {
	switch name {
	case "CACHE_HIT_RATIO":
		return NewCacheHitRatioCollector()
	case "LATENCY":
		return NewLatencyCollector()
	case "CACHE_QUEUE":
		return NewCacheQueueCollector()
	case "LINK_LOAD":
		return NewLinkLoadCollector()
	case "PATH_STRETCH":
		return NewPathStretchCollector(topo)
	default:
		panic(fmt.Sprintf("unknown data collector %q", name))
	}
}
