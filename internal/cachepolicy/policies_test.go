package cachepolicy

import (
	"math/rand"
	"testing"

	"github.com/ccnsim/ccnsim/sim"
	"github.com/stretchr/testify/assert"
)

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := NewLRU(2)
	_, evicted := c.Put(1)
	assert.False(t, evicted)
	_, evicted = c.Put(2)
	assert.False(t, evicted)

	assert.True(t, c.Get(1)) // 1 now most recently used; 2 is LRU

	k, evicted := c.Put(3)
	assert.True(t, evicted)
	assert.Equal(t, sim.ContentId(2), k)
	assert.True(t, c.Has(1))
	assert.True(t, c.Has(3))
	assert.False(t, c.Has(2))
}

func TestLRU_PutExistingKeyIsNoop(t *testing.T) {
	c := NewLRU(2)
	c.Put(1)
	c.Put(2)
	_, evicted := c.Put(1)
	assert.False(t, evicted)
	assert.Equal(t, 2, c.Len())
}

func TestLRU_Remove(t *testing.T) {
	c := NewLRU(2)
	c.Put(1)
	c.Remove(1)
	assert.False(t, c.Has(1))
	assert.Equal(t, 0, c.Len())
}

func TestLFU_EvictsLeastFrequent(t *testing.T) {
	c := NewLFU(2)
	c.Put(1)
	c.Put(2)
	c.Get(1)
	c.Get(1) // 1: freq 3, 2: freq 1

	k, evicted := c.Put(3)
	assert.True(t, evicted)
	assert.Equal(t, sim.ContentId(2), k)
}

func TestLFU_TiesBreakByInsertionOrder(t *testing.T) {
	c := NewLFU(2)
	c.Put(1)
	c.Put(2) // both freq 1, 1 inserted first

	k, evicted := c.Put(3)
	assert.True(t, evicted)
	assert.Equal(t, sim.ContentId(1), k)
}

func TestFIFO_EvictsInsertionOrderRegardlessOfAccess(t *testing.T) {
	c := NewFIFO(2)
	c.Put(1)
	c.Put(2)
	c.Get(1) // FIFO ignores access recency

	k, evicted := c.Put(3)
	assert.True(t, evicted)
	assert.Equal(t, sim.ContentId(1), k)
}

func TestRAND_EvictsWithinCapacityBound(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := NewRAND(2, rng)
	c.Put(1)
	c.Put(2)
	k, evicted := c.Put(3)
	assert.True(t, evicted)
	assert.Contains(t, []sim.ContentId{1, 2}, k)
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Has(3))
}

func TestRAND_Deterministic_GivenSeed(t *testing.T) {
	run := func() sim.ContentId {
		rng := rand.New(rand.NewSource(7))
		c := NewRAND(2, rng)
		c.Put(1)
		c.Put(2)
		k, _ := c.Put(3)
		return k
	}
	assert.Equal(t, run(), run())
}

func TestNULL_NeverRetainsContent(t *testing.T) {
	c := NewNULL()
	assert.False(t, c.Get(1))
	k, evicted := c.Put(1)
	assert.True(t, evicted)
	assert.Equal(t, sim.ContentId(1), k)
	assert.False(t, c.Has(1))
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 0, c.MaxLen())
	assert.Nil(t, c.Dump())
}

func TestAllPolicies_DumpReflectsContents(t *testing.T) {
	policies := []sim.CachePolicy{
		NewLRU(3),
		NewLFU(3),
		NewFIFO(3),
		NewRAND(3, rand.New(rand.NewSource(1))),
	}
	for _, p := range policies {
		p.Put(10)
		p.Put(20)
		assert.ElementsMatch(t, []sim.ContentId{10, 20}, p.Dump())
		assert.Equal(t, 2, p.Len())
		assert.Equal(t, 3, p.MaxLen())
	}
}
