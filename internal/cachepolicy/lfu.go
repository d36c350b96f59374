package cachepolicy

import (
	"container/heap"

	"github.com/ccnsim/ccnsim/sim"
)

type lfuEntry struct {
	key     sim.ContentId
	freq    int64
	seq     int64 // insertion order, for stable tie-break among equal frequency
	heapIdx int
}

type lfuHeap []*lfuEntry

func (h lfuHeap) Len() int { return len(h) }
func (h lfuHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].seq < h[j].seq
}
func (h lfuHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIdx = i
	h[j].heapIdx = j
}
func (h *lfuHeap) Push(x any) {
	e := x.(*lfuEntry)
	e.heapIdx = len(*h)
	*h = append(*h, e)
}
func (h *lfuHeap) Pop() any {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}

// LFU evicts the least-frequently-used content on overflow, breaking ties
// by insertion order (oldest first). Reuses container/heap the same way
// the scheduler does for its two priority queues.
type LFU struct {
	maxLen  int
	h       lfuHeap
	index   map[sim.ContentId]*lfuEntry
	nextSeq int64
}

// NewLFU creates an LFU cache policy with the given capacity.
func NewLFU(maxLen int) *LFU {
	return &LFU{
		maxLen: maxLen,
		h:      lfuHeap{},
		index:  make(map[sim.ContentId]*lfuEntry),
	}
}

func (c *LFU) Get(k sim.ContentId) bool {
	e, ok := c.index[k]
	if !ok {
		return false
	}
	e.freq++
	heap.Fix(&c.h, e.heapIdx)
	return true
}

func (c *LFU) Put(k sim.ContentId) (sim.ContentId, bool) {
	if e, ok := c.index[k]; ok {
		e.freq++
		heap.Fix(&c.h, e.heapIdx)
		return 0, false
	}
	c.nextSeq++
	e := &lfuEntry{key: k, freq: 1, seq: c.nextSeq}
	heap.Push(&c.h, e)
	c.index[k] = e

	if c.h.Len() <= c.maxLen {
		return 0, false
	}
	evicted := heap.Pop(&c.h).(*lfuEntry)
	delete(c.index, evicted.key)
	return evicted.key, true
}

func (c *LFU) Has(k sim.ContentId) bool {
	_, ok := c.index[k]
	return ok
}

func (c *LFU) Dump() []sim.ContentId {
	out := make([]sim.ContentId, 0, len(c.h))
	for _, e := range c.h {
		out = append(out, e.key)
	}
	return out
}

func (c *LFU) Len() int    { return c.h.Len() }
func (c *LFU) MaxLen() int { return c.maxLen }

func (c *LFU) Remove(k sim.ContentId) {
	e, ok := c.index[k]
	if !ok {
		return
	}
	heap.Remove(&c.h, e.heapIdx)
	delete(c.index, k)
}
