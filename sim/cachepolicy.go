package sim

// CachePolicy is the capability set every cache replacement policy exposes:
// a bounded associative store keyed by ContentId. Put may evict; when it
// does, it reports the evicted key so the model can notify the collector
// if a caller wants to track evictions (not part of the collector event
// stream today, but kept symmetric with the reference capability set).
//
// Concrete implementations (LRU, LFU, FIFO, RAND, NULL) live in
// internal/cachepolicy and are selected by name through NewCachePolicy.
type CachePolicy interface {
	// Get looks up k, returning whether it was present. Get may mutate
	// internal ordering (LRU/LFU recency) even though it does not mutate
	// membership.
	Get(k ContentId) bool
	// Put inserts k, evicting and returning an existing key if the policy
	// is at capacity. evicted is false if no eviction occurred.
	Put(k ContentId) (evictedKey ContentId, evicted bool)
	// Has reports membership without mutating recency/frequency ordering.
	Has(k ContentId) bool
	// Dump returns every key currently cached, in no particular order.
	Dump() []ContentId
	// Len returns the current number of cached keys.
	Len() int
	// MaxLen returns the policy's capacity.
	MaxLen() int
	// Remove evicts k unconditionally if present.
	Remove(k ContentId)
}
