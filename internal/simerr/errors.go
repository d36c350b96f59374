// Package simerr defines the sentinel error kinds raised by the simulation
// engine, mirroring the error taxonomy of the core packet state machines.
package simerr

import "errors"

// ErrInvalidPacketKind is returned when a strategy is dispatched a pkt_type
// it does not recognize. It is fatal: the run loop propagates it immediately
// rather than dropping the event.
var ErrInvalidPacketKind = errors.New("invalid packet kind")

// ErrEmptyQueue is returned by Pop on an empty heap. It indicates a driver
// or controller programming error, never a legitimate end-of-run condition.
var ErrEmptyQueue = errors.New("empty queue")

// ErrNoSource is returned at workload-construction time when a content id
// has no owning source node in the topology. Never raised during event
// processing.
var ErrNoSource = errors.New("content has no source")

// ErrConfigError is returned for invalid configuration values (negative
// alpha/beta, a non-positive content count, an unknown topology name).
var ErrConfigError = errors.New("invalid configuration")

// ErrTopologyError is returned for structural topology problems: a PARTITION
// strategy missing its cache_assignment, or a receiver disconnected from
// every source.
var ErrTopologyError = errors.New("invalid topology")
