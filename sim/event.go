package sim

// Event is the unit of work dispatched by the Scheduler. It carries enough
// state for a Strategy to execute one node-local transition: which flow it
// belongs to, which packet kind it represents, and where it currently is.
//
// Event is a plain value, not a polymorphic type: unlike a per-event-type
// Execute() dispatch, every Event is routed through the single Strategy
// entry point ProcessEvent. Seq is a global monotonic counter assigned at
// push time; it is the sole tie-break for equal t_event (never compared on
// payload), which is what lets two heap implementations share one stable
// FIFO-on-insertion rule.
type Event struct {
	TEvent   float64
	Receiver NodeId
	Content  ContentId
	Node     NodeId
	FlowID   Flow
	Kind     PacketKind
	Log      bool
	Seq      uint64
}

// linkHeap is a min-heap of Events ordered by (TEvent, Seq), used for the
// link event queue (Request/Data packets traversing the topology).
type linkHeap []Event

func (h linkHeap) Len() int { return len(h) }
func (h linkHeap) Less(i, j int) bool {
	if h[i].TEvent != h[j].TEvent {
		return h[i].TEvent < h[j].TEvent
	}
	return h[i].Seq < h[j].Seq
}
func (h linkHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *linkHeap) Push(x any)   { *h = append(*h, x.(Event)) }
func (h *linkHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// cacheHeap is a min-heap of Events ordered by (TEvent, Seq), used for a
// single node's cache-service queue (GetContent/PutContent packets).
type cacheHeap []Event

func (h cacheHeap) Len() int { return len(h) }
func (h cacheHeap) Less(i, j int) bool {
	if h[i].TEvent != h[j].TEvent {
		return h[i].TEvent < h[j].TEvent
	}
	return h[i].Seq < h[j].Seq
}
func (h cacheHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *cacheHeap) Push(x any)   { *h = append(*h, x.(Event)) }
func (h *cacheHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
