package strategy

import (
	"math"

	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// probCacheSession implements session-level PROB_CACHE: the same
// insertion-probability formula as the packet-level variant, but c and N
// are derived once from the request path and cache sizes rather than
// accumulated across per-packet dispatch calls.
type probCacheSession struct {
	ttw float64
	rng *sim.PartitionedRNG
}

// NewProbCacheSession creates the session-level PROB_CACHE strategy.
func NewProbCacheSession(cfg Config) sim.Strategy {
	return &probCacheSession{ttw: cfg.TTW, rng: cfg.RNG}
}

func (s *probCacheSession) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
	if pkt != sim.Request {
		return simerr.ErrInvalidPacketKind
	}
	view := ctrl.View()

	var c, n int
	var x float64
	initialized := false

	_, ok := sessionRoundTrip(ctrl, view, t, receiver, content, flow, log, func(i int, node sim.NodeId, path []sim.NodeId) {
		if !initialized {
			hitIndex := i + 1
			for j := 0; j <= hitIndex && j < len(path); j++ {
				if view.HasCache(path[j]) {
					c++
					n += view.CacheSize(path[j])
				}
			}
			initialized = true
		}
		if view.HasCache(node) {
			x++
			cacheSz := view.CacheSize(node)
			if c > 0 && cacheSz > 0 {
				p := (float64(n) / (s.ttw * float64(cacheSz))) * math.Pow(x/float64(c), float64(c))
				if s.rng.ForSubsystem(sim.SubsystemProbCache).Float64() < p {
					ctrl.PutContentFlow(node, content, flow)
				}
			}
		}
		// N is recomputed for every hop's suffix of the path, regardless of
		// whether the current node itself is cache-bearing.
		if i+1 < len(path) && view.HasCache(path[i+1]) {
			n -= view.CacheSize(path[i+1])
		}
	})
	if !ok {
		return simerr.ErrNoSource
	}
	return nil
}
