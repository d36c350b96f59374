package sim

// Topology is the immutable projection of the network graph that
// NetworkModel is built from: node roles and cache sizes, per-edge link
// delay, the content→source index, and precomputed symmetric shortest
// paths. Construction (generators, placement) lives in internal/topology;
// this type is the narrow interface the engine actually consumes.
type Topology struct {
	Roles         map[NodeId]NodeRole
	CacheSize     map[NodeId]int // routers only; absent or 0 means no cache
	SourceOf      map[ContentId]NodeId
	linkDelay     map[linkKey]float64
	shortestPaths map[NodeId]map[NodeId][]NodeId
	neighbors     map[NodeId][]NodeId
}

type linkKey struct {
	u, v NodeId
}

// NewTopology builds a Topology from precomputed projections. shortestPaths
// must already be symmetrised: path(u,v) == reverse(path(v,u)).
func NewTopology(
	roles map[NodeId]NodeRole,
	cacheSize map[NodeId]int,
	sourceOf map[ContentId]NodeId,
	linkDelay map[[2]NodeId]float64,
	shortestPaths map[NodeId]map[NodeId][]NodeId,
) *Topology {
	delays := make(map[linkKey]float64, len(linkDelay)*2)
	neighbors := make(map[NodeId][]NodeId)
	for edge, d := range linkDelay {
		delays[linkKey{edge[0], edge[1]}] = d
		delays[linkKey{edge[1], edge[0]}] = d
		neighbors[edge[0]] = append(neighbors[edge[0]], edge[1])
		neighbors[edge[1]] = append(neighbors[edge[1]], edge[0])
	}
	return &Topology{
		Roles:         roles,
		CacheSize:     cacheSize,
		SourceOf:      sourceOf,
		linkDelay:     delays,
		shortestPaths: shortestPaths,
		neighbors:     neighbors,
	}
}

// Nodes returns every node id in the topology, in no particular order.
func (tp *Topology) Nodes() []NodeId {
	out := make([]NodeId, 0, len(tp.Roles))
	for n := range tp.Roles {
		out = append(out, n)
	}
	return out
}

// Neighbors returns the nodes directly linked to n, in no particular order.
func (tp *Topology) Neighbors(n NodeId) []NodeId {
	return tp.neighbors[n]
}

// ShortestPath returns the precomputed node sequence from s to t, inclusive
// of both endpoints. Returns nil if s == t or no path exists.
func (tp *Topology) ShortestPath(s, t NodeId) []NodeId {
	if byT, ok := tp.shortestPaths[s]; ok {
		return byT[t]
	}
	return nil
}

// LinkDelay returns the service time of the edge (u,v). Topologies are
// undirected so LinkDelay(u,v) == LinkDelay(v,u).
func (tp *Topology) LinkDelay(u, v NodeId) float64 {
	return tp.linkDelay[linkKey{u, v}]
}

// ContentSource returns the node that owns content k.
func (tp *Topology) ContentSource(k ContentId) (NodeId, bool) {
	n, ok := tp.SourceOf[k]
	return n, ok
}

// HasCache reports whether n is a router with a positive cache size.
func (tp *Topology) HasCache(n NodeId) bool {
	return tp.Roles[n] == RoleRouter && tp.CacheSize[n] > 0
}

// IsSource reports whether n is a content source.
func (tp *Topology) IsSource(n NodeId) bool {
	return tp.Roles[n] == RoleSource
}
