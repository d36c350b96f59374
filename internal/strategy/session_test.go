package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccnsim/ccnsim/internal/cachepolicy"
	"github.com/ccnsim/ccnsim/sim"
)

// newLineTopology builds receiver -- r1 -- r2 -- source, with cache-bearing
// routers r1 and r2, each of capacity cacheSize.
func newLineTopology(cacheSize int) *sim.Topology {
	roles := map[sim.NodeId]sim.NodeRole{
		"recv": sim.RoleReceiver,
		"r1":   sim.RoleRouter,
		"r2":   sim.RoleRouter,
		"src":  sim.RoleSource,
	}
	sizes := map[sim.NodeId]int{"r1": cacheSize, "r2": cacheSize}
	sourceOf := map[sim.ContentId]sim.NodeId{1: "src"}
	delay := map[[2]sim.NodeId]float64{
		{"recv", "r1"}: 1,
		{"r1", "r2"}:   1,
		{"r2", "src"}:  1,
	}
	path := map[sim.NodeId]map[sim.NodeId][]sim.NodeId{
		"recv": {"src": {"recv", "r1", "r2", "src"}},
		"src":  {"recv": {"src", "r2", "r1", "recv"}},
	}
	return sim.NewTopology(roles, sizes, sourceOf, delay, path)
}

func newLineModel(cacheSize int) (*sim.NetworkModel, *sim.NetworkController) {
	topo := newLineTopology(cacheSize)
	caches := map[sim.NodeId]sim.CachePolicy{
		"r1": cachepolicy.NewLRU(cacheSize),
		"r2": cachepolicy.NewLRU(cacheSize),
	}
	m := sim.NewNetworkModel(topo, caches)
	ctrl := sim.NewNetworkController(m, sim.NopCollector{})
	return m, ctrl
}

func TestLCESession_InsertsAtEveryCacheBearingRouter(t *testing.T) {
	_, ctrl := newLineModel(2)
	s := NewLCESession()

	err := s.ProcessEvent(0, "recv", 1, "recv", 1, sim.Request, true, ctrl)
	require.NoError(t, err)

	view := ctrl.View()
	assert.True(t, view.CacheLookup("r1", 1))
	assert.True(t, view.CacheLookup("r2", 1))
}

func TestLCDSession_InsertsOnlyAtRouterClosestToHit(t *testing.T) {
	_, ctrl := newLineModel(2)
	s := NewLCDSession()

	err := s.ProcessEvent(0, "recv", 1, "recv", 1, sim.Request, true, ctrl)
	require.NoError(t, err)

	view := ctrl.View()
	assert.True(t, view.CacheLookup("r2", 1), "router adjacent to the hit should get the copy")
	assert.False(t, view.CacheLookup("r1", 1), "router further from the hit should not")
}

func TestEdgeStrategy_InsertsOnlyAtReceiverAdjacentRouter(t *testing.T) {
	_, ctrl := newLineModel(2)
	s := NewEdge()

	err := s.ProcessEvent(0, "recv", 1, "recv", 1, sim.Request, true, ctrl)
	require.NoError(t, err)

	view := ctrl.View()
	assert.True(t, view.CacheLookup("r1", 1))
	assert.False(t, view.CacheLookup("r2", 1))
}

func TestPartitionStrategy_OnlyInsertsAssignedContent(t *testing.T) {
	_, ctrl := newLineModel(2)
	assignment := map[sim.NodeId]map[sim.ContentId]struct{}{
		"r2": {1: {}},
	}
	s := NewPartition(Config{CacheAssignment: assignment})

	err := s.ProcessEvent(0, "recv", 1, "recv", 1, sim.Request, true, ctrl)
	require.NoError(t, err)

	view := ctrl.View()
	assert.True(t, view.CacheLookup("r2", 1))
	assert.False(t, view.CacheLookup("r1", 1), "r1 has no assignment for content 1")
}

func TestPartitionStrategy_UnassignedRouterNeverCaches(t *testing.T) {
	_, ctrl := newLineModel(2)
	s := NewPartition(Config{CacheAssignment: map[sim.NodeId]map[sim.ContentId]struct{}{}})

	err := s.ProcessEvent(0, "recv", 1, "recv", 1, sim.Request, true, ctrl)
	require.NoError(t, err)

	view := ctrl.View()
	assert.False(t, view.CacheLookup("r1", 1))
	assert.False(t, view.CacheLookup("r2", 1))
}

func TestRandBernoulli_PEqualsOneAlwaysCaches(t *testing.T) {
	_, ctrl := newLineModel(2)
	s := NewRandBernoulli(Config{P: 1.0, RNG: sim.NewPartitionedRNG(sim.NewSimulationKey(1))})

	err := s.ProcessEvent(0, "recv", 1, "recv", 1, sim.Request, true, ctrl)
	require.NoError(t, err)

	view := ctrl.View()
	assert.True(t, view.CacheLookup("r1", 1))
	assert.True(t, view.CacheLookup("r2", 1))
}

func TestRandBernoulli_PEqualsZeroNeverCaches(t *testing.T) {
	_, ctrl := newLineModel(2)
	s := NewRandBernoulli(Config{P: 0.0, RNG: sim.NewPartitionedRNG(sim.NewSimulationKey(1))})

	err := s.ProcessEvent(0, "recv", 1, "recv", 1, sim.Request, true, ctrl)
	require.NoError(t, err)

	view := ctrl.View()
	assert.False(t, view.CacheLookup("r1", 1))
	assert.False(t, view.CacheLookup("r2", 1))
}

func TestRandChoice_CachesAtExactlyOneRouter(t *testing.T) {
	_, ctrl := newLineModel(2)
	s := NewRandChoice(Config{RNG: sim.NewPartitionedRNG(sim.NewSimulationKey(42))})

	err := s.ProcessEvent(0, "recv", 1, "recv", 1, sim.Request, true, ctrl)
	require.NoError(t, err)

	view := ctrl.View()
	count := 0
	if view.CacheLookup("r1", 1) {
		count++
	}
	if view.CacheLookup("r2", 1) {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestProbCacheSession_HugeTTWNeverCaches(t *testing.T) {
	_, ctrl := newLineModel(2)
	// a huge ttw drives p toward zero for any reasonable N,
	// so with this seed no router should get a copy.
	s := NewProbCacheSession(Config{TTW: 1e9, RNG: sim.NewPartitionedRNG(sim.NewSimulationKey(7))})

	err := s.ProcessEvent(0, "recv", 1, "recv", 1, sim.Request, true, ctrl)
	require.NoError(t, err)

	view := ctrl.View()
	assert.False(t, view.CacheLookup("r1", 1))
	assert.False(t, view.CacheLookup("r2", 1))
}

func TestSessionStrategies_NoSourceReturnsErrNoSource(t *testing.T) {
	_, ctrl := newLineModel(2)
	s := NewLCESession()

	err := s.ProcessEvent(0, "recv", 999, "recv", 1, sim.Request, true, ctrl)
	assert.Error(t, err)
}

func TestSessionStrategies_NonRequestKindRejected(t *testing.T) {
	_, ctrl := newLineModel(2)
	s := NewLCESession()

	err := s.ProcessEvent(0, "recv", 1, "recv", 1, sim.Data, true, ctrl)
	assert.Error(t, err)
}

func TestCL4M_BreaksCentralityTieTowardReceiver(t *testing.T) {
	topo := newLineTopology(2)
	caches := map[sim.NodeId]sim.CachePolicy{
		"r1": cachepolicy.NewLRU(2),
		"r2": cachepolicy.NewLRU(2),
	}
	m := sim.NewNetworkModel(topo, caches)
	ctrl := sim.NewNetworkController(m, sim.NopCollector{})
	s := NewCL4M(Config{Topology: topo})

	err := s.ProcessEvent(0, "recv", 1, "recv", 1, sim.Request, true, ctrl)
	require.NoError(t, err)

	view := ctrl.View()
	// r1 and r2 are symmetric in the 4-node line graph, so their betweenness
	// ties; the tie must resolve toward the receiver, i.e. r1.
	assert.True(t, view.CacheLookup("r1", 1))
	assert.False(t, view.CacheLookup("r2", 1))
}
