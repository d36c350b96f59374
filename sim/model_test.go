package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeCache struct {
	data   map[ContentId]bool
	maxLen int
}

func newFakeCache(maxLen int) *fakeCache { return &fakeCache{data: make(map[ContentId]bool), maxLen: maxLen} }

func (c *fakeCache) Get(k ContentId) bool { return c.data[k] }
func (c *fakeCache) Put(k ContentId) (ContentId, bool) {
	c.data[k] = true
	return 0, false
}
func (c *fakeCache) Has(k ContentId) bool { return c.data[k] }
func (c *fakeCache) Dump() []ContentId {
	out := make([]ContentId, 0, len(c.data))
	for k := range c.data {
		out = append(out, k)
	}
	return out
}
func (c *fakeCache) Len() int      { return len(c.data) }
func (c *fakeCache) MaxLen() int   { return c.maxLen }
func (c *fakeCache) Remove(k ContentId) { delete(c.data, k) }

func TestNewNetworkModel_DefaultsMatchSpecDefaults(t *testing.T) {
	tp := threeNodePath()
	m := NewNetworkModel(tp, map[NodeId]CachePolicy{"n1": newFakeCache(1)})
	assert.Equal(t, 100.0, m.ReadDelayPenalty)
	assert.Equal(t, 100.0, m.WriteDelayPenalty)
	assert.Equal(t, 10, m.CacheQueueSize)
}

func TestNetworkModel_CacheAtReturnsOnlyRegisteredCaches(t *testing.T) {
	tp := threeNodePath()
	cache := newFakeCache(1)
	m := NewNetworkModel(tp, map[NodeId]CachePolicy{"n1": cache})

	got, ok := m.cacheAt("n1")
	assert.True(t, ok)
	assert.Same(t, cache, got)

	_, ok = m.cacheAt("n0")
	assert.False(t, ok)
}

func TestNetworkModel_PeekAllCacheReflectsScheduledEvents(t *testing.T) {
	tp := threeNodePath()
	m := NewNetworkModel(tp, map[NodeId]CachePolicy{"n1": newFakeCache(1)})
	m.sched.PushCache("n1", Event{TEvent: 5, Kind: GetContent})
	m.sched.PushCache("n1", Event{TEvent: 3, Kind: PutContent})

	events := m.peekAllCache("n1")
	assert.Len(t, events, 2)
}
