package cachepolicy

import "github.com/ccnsim/ccnsim/sim"

// FIFO evicts in strict insertion order regardless of subsequent access.
type FIFO struct {
	maxLen int
	order  []sim.ContentId
	index  map[sim.ContentId]struct{}
}

// NewFIFO creates a FIFO cache policy with the given capacity.
func NewFIFO(maxLen int) *FIFO {
	return &FIFO{maxLen: maxLen, index: make(map[sim.ContentId]struct{})}
}

func (c *FIFO) Get(k sim.ContentId) bool {
	_, ok := c.index[k]
	return ok
}

func (c *FIFO) Put(k sim.ContentId) (sim.ContentId, bool) {
	if _, ok := c.index[k]; ok {
		return 0, false
	}
	c.order = append(c.order, k)
	c.index[k] = struct{}{}
	if len(c.order) <= c.maxLen {
		return 0, false
	}
	evicted := c.order[0]
	c.order = c.order[1:]
	delete(c.index, evicted)
	return evicted, true
}

func (c *FIFO) Has(k sim.ContentId) bool {
	_, ok := c.index[k]
	return ok
}

func (c *FIFO) Dump() []sim.ContentId {
	out := make([]sim.ContentId, len(c.order))
	copy(out, c.order)
	return out
}

func (c *FIFO) Len() int    { return len(c.order) }
func (c *FIFO) MaxLen() int { return c.maxLen }

func (c *FIFO) Remove(k sim.ContentId) {
	if _, ok := c.index[k]; !ok {
		return
	}
	delete(c.index, k)
	for i, v := range c.order {
		if v == k {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}
