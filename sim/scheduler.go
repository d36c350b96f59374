package sim

import (
	"container/heap"

	"github.com/ccnsim/ccnsim/internal/simerr"
)

// Scheduler is the two-priority-queue time discipline: a link event heap
// shared by the whole topology, and one cache-service heap plus one server
// slot per node. Peek returns the earliest t_event across both sources;
// on ties, the link heap wins, and within either heap FIFO-on-push-order
// (via Event.Seq) breaks remaining ties — including ties between two
// cache-service events queued at different nodes, matching reference
// behavior (see the design notes on equal-time cache-service ties).
//
// Failure: Pop on an empty heap returns simerr.ErrEmptyQueue. Peek on an
// empty heap returns (Event{}, false).
type Scheduler struct {
	link    linkHeap
	cache   map[NodeId]*cacheHeap
	server  map[NodeId]*Event
	nextSeq uint64
}

// NewScheduler creates an empty two-heap scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{
		link:   linkHeap{},
		cache:  make(map[NodeId]*cacheHeap),
		server: make(map[NodeId]*Event),
	}
}

func (s *Scheduler) seq() uint64 {
	s.nextSeq++
	return s.nextSeq
}

// PushLink pushes e onto the link heap, stamping it with the next sequence
// number to guarantee stable FIFO tie-break.
func (s *Scheduler) PushLink(e Event) {
	e.Seq = s.seq()
	heap.Push(&s.link, e)
}

// PopLink pops the earliest event on the link heap.
func (s *Scheduler) PopLink() (Event, error) {
	if s.link.Len() == 0 {
		return Event{}, simerr.ErrEmptyQueue
	}
	return heap.Pop(&s.link).(Event), nil
}

// PeekLink returns the earliest event on the link heap without removing it.
func (s *Scheduler) PeekLink() (Event, bool) {
	if s.link.Len() == 0 {
		return Event{}, false
	}
	return s.link[0], true
}

func (s *Scheduler) cacheHeapFor(node NodeId) *cacheHeap {
	h, ok := s.cache[node]
	if !ok {
		h = &cacheHeap{}
		s.cache[node] = h
	}
	return h
}

// PushCache pushes e onto node's cache-service heap.
func (s *Scheduler) PushCache(node NodeId, e Event) {
	e.Seq = s.seq()
	heap.Push(s.cacheHeapFor(node), e)
}

// PopCache pops the earliest event on node's cache-service heap.
func (s *Scheduler) PopCache(node NodeId) (Event, error) {
	h := s.cacheHeapFor(node)
	if h.Len() == 0 {
		return Event{}, simerr.ErrEmptyQueue
	}
	return heap.Pop(h).(Event), nil
}

// PeekCache returns the earliest event on node's cache-service heap.
func (s *Scheduler) PeekCache(node NodeId) (Event, bool) {
	h, ok := s.cache[node]
	if !ok || h.Len() == 0 {
		return Event{}, false
	}
	return (*h)[0], true
}

// AllCache returns every pending (not-yet-in-service) event queued at node,
// in no particular order. Used only to sum service times for queueing-delay
// estimation; never mutates the heap.
func (s *Scheduler) AllCache(node NodeId) []Event {
	h, ok := s.cache[node]
	if !ok {
		return nil
	}
	out := make([]Event, len(*h))
	copy(out, *h)
	return out
}

// CacheQueueLen returns the number of pending (not-yet-in-service) events
// queued at node. The in-service event held in the server slot does not
// count toward this length.
func (s *Scheduler) CacheQueueLen(node NodeId) int {
	h, ok := s.cache[node]
	if !ok {
		return 0
	}
	return h.Len()
}

// PeekCacheMin returns the minimum-t_event event across every node's
// cache-service heap, along with the node it belongs to. Ties between
// events at different nodes are broken by Seq (push order), never by
// comparing node identity or payload.
func (s *Scheduler) PeekCacheMin() (NodeId, Event, bool) {
	var (
		bestNode NodeId
		best     Event
		found    bool
	)
	for node, h := range s.cache {
		if h.Len() == 0 {
			continue
		}
		e := (*h)[0]
		if !found || e.TEvent < best.TEvent || (e.TEvent == best.TEvent && e.Seq < best.Seq) {
			best = e
			bestNode = node
			found = true
		}
	}
	return bestNode, best, found
}

// SetServer moves e into node's single server slot, modeling the one
// in-service cache operation at that node.
func (s *Scheduler) SetServer(node NodeId, e Event) {
	ev := e
	s.server[node] = &ev
}

// ClearServer empties node's server slot.
func (s *Scheduler) ClearServer(node NodeId) {
	delete(s.server, node)
}

// Server returns node's in-service event, if any.
func (s *Scheduler) Server(node NodeId) (Event, bool) {
	e, ok := s.server[node]
	if !ok {
		return Event{}, false
	}
	return *e, true
}

// Empty reports whether both the link heap and every cache-service heap are
// empty — the driver's termination condition once workload emission is done.
func (s *Scheduler) Empty() bool {
	if s.link.Len() != 0 {
		return false
	}
	for _, h := range s.cache {
		if h.Len() != 0 {
			return false
		}
	}
	return true
}
