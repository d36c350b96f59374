package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_CacheLookupIsIdempotent(t *testing.T) {
	tp := threeNodePath()
	cache := newFakeCache(2)
	cache.Put(1)
	m := NewNetworkModel(tp, map[NodeId]CachePolicy{"n1": cache})
	view := NewNetworkView(m)

	first := view.CacheLookup("n1", 1)
	second := view.CacheLookup("n1", 1)
	assert.True(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.Len())
}

func TestView_ContentLocationsIncludesCachesAndSource(t *testing.T) {
	tp := threeNodePath()
	cache := newFakeCache(2)
	cache.Put(1)
	m := NewNetworkModel(tp, map[NodeId]CachePolicy{"n1": cache})
	view := NewNetworkView(m)

	locs := view.ContentLocations(1)
	assert.ElementsMatch(t, []NodeId{"n1", "n2"}, locs)
}

func TestView_HasCacheAndCacheSize(t *testing.T) {
	tp := threeNodePath()
	m := NewNetworkModel(tp, map[NodeId]CachePolicy{"n1": newFakeCache(3)})
	view := NewNetworkView(m)

	assert.True(t, view.HasCache("n1"))
	assert.Equal(t, 3, view.CacheSize("n1"))
	assert.False(t, view.HasCache("n0"))
	assert.Equal(t, 0, view.CacheSize("n0"))
}

func TestView_CacheQueueDelay_EmptyServerEmptyQueue(t *testing.T) {
	tp := threeNodePath()
	m := NewNetworkModel(tp, map[NodeId]CachePolicy{"n1": newFakeCache(1)})
	view := NewNetworkView(m)
	assert.Equal(t, 0.0, view.CacheQueueDelay("n1", 10))
}

func TestView_CacheQueueDelay_EmptyServerPendingQueue(t *testing.T) {
	tp := threeNodePath()
	m := NewNetworkModel(tp, map[NodeId]CachePolicy{"n1": newFakeCache(1)})
	m.ReadDelayPenalty, m.WriteDelayPenalty = 100, 50
	m.sched.PushCache("n1", Event{TEvent: 1, Kind: GetContent})
	m.sched.PushCache("n1", Event{TEvent: 2, Kind: PutContent})
	view := NewNetworkView(m)

	assert.Equal(t, 150.0, view.CacheQueueDelay("n1", 0))
}

func TestView_CacheQueueDelay_BusyServerCeilsAndClampsToZero(t *testing.T) {
	tp := threeNodePath()
	m := NewNetworkModel(tp, map[NodeId]CachePolicy{"n1": newFakeCache(1)})
	m.ReadDelayPenalty, m.WriteDelayPenalty = 10, 10
	m.sched.SetServer("n1", Event{TEvent: 0, Kind: GetContent})
	view := NewNetworkView(m)

	// server started at t=0, service time 10, completes at 10; queried at
	// t_now=5 so remaining (10-5)=5 rounds up to 5, no further pending ops.
	assert.Equal(t, 5.0, view.CacheQueueDelay("n1", 5))

	// queried in the past relative to completion: never negative.
	assert.Equal(t, 0.0, view.CacheQueueDelay("n1", 100))
}

func TestView_PeekNextEventAndPeekNextCacheEvent(t *testing.T) {
	tp := threeNodePath()
	m := NewNetworkModel(tp, map[NodeId]CachePolicy{"n1": newFakeCache(1)})
	view := NewNetworkView(m)

	_, ok := view.PeekNextEvent()
	assert.False(t, ok)
	_, _, ok = view.PeekNextCacheEvent()
	assert.False(t, ok)

	m.sched.PushLink(Event{TEvent: 1})
	m.sched.PushCache("n1", Event{TEvent: 2})

	e, ok := view.PeekNextEvent()
	require.True(t, ok)
	assert.Equal(t, 1.0, e.TEvent)

	node, ce, ok := view.PeekNextCacheEvent()
	require.True(t, ok)
	assert.Equal(t, NodeId("n1"), node)
	assert.Equal(t, 2.0, ce.TEvent)
}

func TestView_BusyNodesAndLCDCopiedAndProbCacheState(t *testing.T) {
	tp := threeNodePath()
	m := NewNetworkModel(tp, map[NodeId]CachePolicy{"n1": newFakeCache(1)})
	view := NewNetworkView(m)

	fs := m.flows.get(Flow(1))
	fs.LCDCopied = true
	fs.BusyNodes["n1"] = struct{}{}
	fs.ProbCacheC, fs.ProbCacheN, fs.ProbCacheX = 2, 4, 1.5

	assert.True(t, view.LCDCopied(1))
	_, busy := view.BusyNodes(1)["n1"]
	assert.True(t, busy)
	c, n, x := view.ProbCacheState(1)
	assert.Equal(t, 2, c)
	assert.Equal(t, 4, n)
	assert.Equal(t, 1.5, x)
}
