package sim

// FlowScratch is per-flow strategy state, created on the first Request of a
// flow and discarded when the flow ends. It is an arena entry, not a
// process-wide dictionary: strategies read and write named fields directly
// rather than threading a generic key-value store through every call.
type FlowScratch struct {
	// LCDCopied guards LCD's single-copy rule: true once this flow's single
	// copy has been made on its return path (for the cache-delay LCD
	// variants, once the PutContent op has been admitted to a queue).
	LCDCopied bool

	// ProbCache accumulator state (§4.4.3, §4.4.5).
	ProbCacheC int     // count of caching nodes visited on the request path
	ProbCacheN int     // sum of cache sizes of caching nodes remaining to source
	ProbCacheX float64 // count of caching nodes visited on the return path so far

	// BusyNodes is the set of nodes that have rejected a Request of this flow
	// due to a full cache-service queue (AVOID_BUSY_NODE variants).
	BusyNodes map[NodeId]struct{}
}

func newFlowScratch() *FlowScratch {
	return &FlowScratch{BusyNodes: make(map[NodeId]struct{})}
}

// flowArena owns every live flow's scratch state, indexed by Flow id.
type flowArena struct {
	entries map[Flow]*FlowScratch
}

func newFlowArena() *flowArena {
	return &flowArena{entries: make(map[Flow]*FlowScratch)}
}

// start creates a fresh FlowScratch for flow, overwriting any stale entry.
func (a *flowArena) start(flow Flow) *FlowScratch {
	fs := newFlowScratch()
	a.entries[flow] = fs
	return fs
}

// get returns flow's scratch state, creating it if this is the first access.
func (a *flowArena) get(flow Flow) *FlowScratch {
	fs, ok := a.entries[flow]
	if !ok {
		fs = newFlowScratch()
		a.entries[flow] = fs
	}
	return fs
}

// end discards flow's scratch state.
func (a *flowArena) end(flow Flow) {
	delete(a.entries, flow)
}
