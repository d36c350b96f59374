// Package sim provides the core discrete-event simulation engine for ccnsim.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - event.go: the Event types that traverse the two schedulers (link hops, cache-service ops)
//   - scheduler.go: the two-heap time discipline (link events vs. per-node cache-service events)
//   - model.go: NetworkModel, the sole owner of topology, caches, queues, and per-flow state
//   - view.go: NetworkView, the read-only projection strategies consume
//   - controller.go: NetworkController, the only component allowed to mutate the model
//
// # Architecture
//
// The sim package defines the engine and the extension-point interfaces; concrete
// implementations of the pluggable pieces live in sub-packages:
//   - internal/cachepolicy: LRU, LFU, FIFO, RAND, NULL cache replacement
//   - internal/topology: graph construction, shortest paths, placement
//   - internal/strategy: the packet-level and session-level caching strategies
//   - internal/collector: metric collectors (hit ratio, latency, queue occupancy, ...)
//   - internal/workload: Poisson/Zipf workload drivers
//
// Strategies and cache policies are selected by name through a registry
// constructor (NewStrategy, NewCachePolicy) rather than dependency injection,
// matching the rest of this engine's closed-sum-type design.
//
// # Key Interfaces
//
//   - Strategy: ProcessEvent(t, receiver, content, node, flow, pkt, log)
//   - CachePolicy: Get, Put, Has, Dump, Len, MaxLen, Remove
//   - Collector: one On* method per event in the collector event stream
package sim
