package cachepolicy

import "github.com/ccnsim/ccnsim/sim"

// NULL never retains content: Put always reports the just-inserted key as
// evicted. Used for cache_size=0 routers in partial-deployment experiments,
// where a router participates in the topology but never caches.
type NULL struct{}

// NewNULL creates a NULL cache policy.
func NewNULL() *NULL { return &NULL{} }

func (*NULL) Get(sim.ContentId) bool                       { return false }
func (*NULL) Put(k sim.ContentId) (sim.ContentId, bool)     { return k, true }
func (*NULL) Has(sim.ContentId) bool                        { return false }
func (*NULL) Dump() []sim.ContentId                         { return nil }
func (*NULL) Len() int                                      { return 0 }
func (*NULL) MaxLen() int                                   { return 0 }
func (*NULL) Remove(sim.ContentId)                          {}
