package cachepolicy

import (
	"math/rand"

	"github.com/ccnsim/ccnsim/sim"
)

// RAND evicts a uniformly random cached key on overflow. Randomness is
// drawn from an explicitly injected *rand.Rand — never math/rand's global
// functions — so it can be seeded from the run's PartitionedRNG
// (SubsystemCachePolicy or a per-node substream via SubsystemNode).
type RAND struct {
	maxLen int
	order  []sim.ContentId
	index  map[sim.ContentId]int // key -> index in order
	rng    *rand.Rand
}

// NewRAND creates a RAND cache policy with the given capacity, evicting
// uniformly at random using rng.
func NewRAND(maxLen int, rng *rand.Rand) *RAND {
	return &RAND{maxLen: maxLen, index: make(map[sim.ContentId]int), rng: rng}
}

func (c *RAND) Get(k sim.ContentId) bool {
	_, ok := c.index[k]
	return ok
}

func (c *RAND) Put(k sim.ContentId) (sim.ContentId, bool) {
	if _, ok := c.index[k]; ok {
		return 0, false
	}
	c.index[k] = len(c.order)
	c.order = append(c.order, k)
	if len(c.order) <= c.maxLen {
		return 0, false
	}
	victim := c.rng.Intn(len(c.order) - 1)
	evicted := c.order[victim]
	c.removeAt(victim)
	return evicted, true
}

func (c *RAND) removeAt(i int) {
	k := c.order[i]
	last := len(c.order) - 1
	c.order[i] = c.order[last]
	c.index[c.order[i]] = i
	c.order = c.order[:last]
	delete(c.index, k)
}

func (c *RAND) Has(k sim.ContentId) bool {
	_, ok := c.index[k]
	return ok
}

func (c *RAND) Dump() []sim.ContentId {
	out := make([]sim.ContentId, len(c.order))
	copy(out, c.order)
	return out
}

func (c *RAND) Len() int    { return len(c.order) }
func (c *RAND) MaxLen() int { return c.maxLen }

func (c *RAND) Remove(k sim.ContentId) {
	if i, ok := c.index[k]; ok {
		c.removeAt(i)
	}
}
