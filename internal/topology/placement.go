package topology

import (
	"math/rand"

	"github.com/ccnsim/ccnsim/sim"
)

// ApplyUniformContentPlacement assigns each content id in [1, numContents] to
// a uniformly-chosen source node, deterministic given rng (pass
// PartitionedRNG.ForSubsystem(sim.SubsystemPlacement)).
func ApplyUniformContentPlacement(g *Graph, numContents int, rng *rand.Rand) {
	var sources []sim.NodeId
	for n, role := range g.Roles {
		if role == sim.RoleSource {
			sources = append(sources, n)
		}
	}
	if len(sources) == 0 {
		return
	}
	byNode := make(map[sim.NodeId][]sim.ContentId)
	for c := 1; c <= numContents; c++ {
		s := sources[rng.Intn(len(sources))]
		byNode[s] = append(byNode[s], sim.ContentId(c))
	}
	for n, contents := range byNode {
		g.SetContents(n, contents)
	}
}

// ApplyUniformCachePlacement sets every router's cache size to size,
// overriding whatever the topology generator assigned.
func ApplyUniformCachePlacement(g *Graph, size int) {
	for n, role := range g.Roles {
		if role == sim.RoleRouter {
			g.SetCacheSize(n, size)
		}
	}
}
