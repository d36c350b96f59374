package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func threeNodePath() *Topology {
	roles := map[NodeId]NodeRole{"n0": RoleReceiver, "n1": RoleRouter, "n2": RoleSource}
	sizes := map[NodeId]int{"n1": 1}
	sourceOf := map[ContentId]NodeId{1: "n2"}
	delay := map[[2]NodeId]float64{{"n0", "n1"}: 2, {"n1", "n2"}: 2}
	path := map[NodeId]map[NodeId][]NodeId{
		"n0": {"n2": {"n0", "n1", "n2"}},
		"n2": {"n0": {"n2", "n1", "n0"}},
	}
	return NewTopology(roles, sizes, sourceOf, delay, path)
}

func TestTopology_NodesReturnsEveryRole(t *testing.T) {
	tp := threeNodePath()
	assert.ElementsMatch(t, []NodeId{"n0", "n1", "n2"}, tp.Nodes())
}

func TestTopology_NeighborsAreSymmetric(t *testing.T) {
	tp := threeNodePath()
	assert.ElementsMatch(t, []NodeId{"n1"}, tp.Neighbors("n0"))
	assert.ElementsMatch(t, []NodeId{"n0", "n2"}, tp.Neighbors("n1"))
}

func TestTopology_LinkDelaySymmetric(t *testing.T) {
	tp := threeNodePath()
	assert.Equal(t, 2.0, tp.LinkDelay("n0", "n1"))
	assert.Equal(t, 2.0, tp.LinkDelay("n1", "n0"))
}

func TestTopology_ShortestPathIsReverseSymmetric(t *testing.T) {
	tp := threeNodePath()
	fwd := tp.ShortestPath("n0", "n2")
	back := tp.ShortestPath("n2", "n0")
	require := assert.New(t)
	require.Equal([]NodeId{"n0", "n1", "n2"}, fwd)
	require.Equal([]NodeId{"n2", "n1", "n0"}, back)
	for i := range fwd {
		require.Equal(fwd[i], back[len(back)-1-i])
	}
}

func TestTopology_ContentSourceLookup(t *testing.T) {
	tp := threeNodePath()
	n, ok := tp.ContentSource(1)
	assert.True(t, ok)
	assert.Equal(t, NodeId("n2"), n)

	_, ok = tp.ContentSource(999)
	assert.False(t, ok)
}

func TestTopology_HasCache(t *testing.T) {
	tp := threeNodePath()
	assert.True(t, tp.HasCache("n1"))
	assert.False(t, tp.HasCache("n0"))
	assert.False(t, tp.HasCache("n2"))
}

func TestTopology_IsSource(t *testing.T) {
	tp := threeNodePath()
	assert.True(t, tp.IsSource("n2"))
	assert.False(t, tp.IsSource("n0"))
	assert.False(t, tp.IsSource("n1"))
}

func TestTopology_HasCacheFalseForZeroSizeRouter(t *testing.T) {
	roles := map[NodeId]NodeRole{"r": RoleRouter}
	sizes := map[NodeId]int{"r": 0}
	tp := NewTopology(roles, sizes, nil, nil, nil)
	assert.False(t, tp.HasCache("r"))
}
