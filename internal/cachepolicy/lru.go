package cachepolicy

import (
	"container/list"

	"github.com/ccnsim/ccnsim/sim"
)

// LRU evicts the least-recently-used content on overflow. Grounded on the
// intrusive doubly-linked-list + map shape used throughout the corpus for
// O(1) bounded stores.
type LRU struct {
	maxLen int
	ll     *list.List
	index  map[sim.ContentId]*list.Element
}

// NewLRU creates an LRU cache policy with the given capacity.
func NewLRU(maxLen int) *LRU {
	return &LRU{
		maxLen: maxLen,
		ll:      list.New(),
		index:  make(map[sim.ContentId]*list.Element),
	}
}

func (c *LRU) Get(k sim.ContentId) bool {
	el, ok := c.index[k]
	if !ok {
		return false
	}
	c.ll.MoveToFront(el)
	return true
}

func (c *LRU) Put(k sim.ContentId) (sim.ContentId, bool) {
	if el, ok := c.index[k]; ok {
		c.ll.MoveToFront(el)
		return 0, false
	}
	el := c.ll.PushFront(k)
	c.index[k] = el
	if c.ll.Len() <= c.maxLen {
		return 0, false
	}
	back := c.ll.Back()
	evicted := back.Value.(sim.ContentId)
	c.ll.Remove(back)
	delete(c.index, evicted)
	return evicted, true
}

func (c *LRU) Has(k sim.ContentId) bool {
	_, ok := c.index[k]
	return ok
}

func (c *LRU) Dump() []sim.ContentId {
	out := make([]sim.ContentId, 0, c.ll.Len())
	for el := c.ll.Front(); el != nil; el = el.Next() {
		out = append(out, el.Value.(sim.ContentId))
	}
	return out
}

func (c *LRU) Len() int    { return c.ll.Len() }
func (c *LRU) MaxLen() int { return c.maxLen }

func (c *LRU) Remove(k sim.ContentId) {
	if el, ok := c.index[k]; ok {
		c.ll.Remove(el)
		delete(c.index, k)
	}
}
