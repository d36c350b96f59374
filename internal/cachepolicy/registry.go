package cachepolicy

import (
	"fmt"
	"math/rand"

	"github.com/ccnsim/ccnsim/sim"
)

// NewCachePolicy creates a CachePolicy by name. Valid names: "LRU", "LFU",
// "FIFO", "RAND", "NULL". rng is only consulted for "RAND"; pass nil for
// every other name. Panics on an unrecognized name, matching the corpus's
// NewRoutingPolicy/NewAdmissionPolicy registry pattern.
func NewCachePolicy(name string, maxLen int, rng *rand.Rand) sim.CachePolicy {
	switch name {
	case "LRU":
		return NewLRU(maxLen)
	case "LFU":
		return NewLFU(maxLen)
	case "FIFO":
		return NewFIFO(maxLen)
	case "RAND":
		return NewRAND(maxLen, rng)
	case "NULL":
		return NewNULL()
	default:
		panic(fmt.Sprintf("unknown cache policy %q; valid policies: [LRU, LFU, FIFO, RAND, NULL]", name))
	}
}
