package strategy

import (
	"math"

	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// probCachePktLevel implements PROB_CACHE_PKT_LEVEL: on the request path it
// accumulates c (caching nodes visited) and N (sum of their cache sizes);
// on the return path, each caching node computes an insertion probability
// from c, N, and its own position x, then decides whether to cache.
type probCachePktLevel struct {
	ttw float64
	rng *sim.PartitionedRNG
}

// NewProbCachePktLevel creates the PROB_CACHE_PKT_LEVEL strategy.
func NewProbCachePktLevel(cfg Config) sim.Strategy {
	return &probCachePktLevel{ttw: cfg.TTW, rng: cfg.RNG}
}

func (s *probCachePktLevel) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
	view := ctrl.View()
	source, _ := view.ContentSource(content)

	switch pkt {
	case sim.Request:
		if node == receiver {
			ctrl.StartFlowSession(t, receiver, content, flow, log)
		}
		if view.HasCache(node) {
			ctrl.AddProbCacheC(flow, 1)
			ctrl.AddProbCacheN(flow, view.CacheSize(node))
		}
		if view.HasCache(node) || node == source {
			if ctrl.GetContentFlow(node, content, flow, log) {
				ctrl.StartProbCacheX(flow, 0)
				next, ok := hopToward(view, node, receiver)
				if !ok {
					ctrl.EndFlowSession(t, flow, true, log)
					return nil
				}
				pushData(ctrl, t, receiver, content, node, next, flow, view.LinkDelay(node, next), log)
				return nil
			}
		}
		next, ok := hopToward(view, node, source)
		if !ok {
			return nil
		}
		pushRequest(ctrl, t, receiver, content, node, next, flow, view.LinkDelay(node, next), log)
		return nil

	case sim.Data:
		if node == receiver {
			ctrl.EndFlowSession(t, flow, true, log)
			return nil
		}
		if view.HasCache(node) {
			ctrl.AddProbCacheX(flow, 1)
			c, n, x := view.ProbCacheState(flow)
			cacheSz := view.CacheSize(node)
			if c > 0 && cacheSz > 0 {
				p := (float64(n) / (s.ttw * float64(cacheSz))) * math.Pow(x/float64(c), float64(c))
				if s.rng.ForSubsystem(sim.SubsystemProbCache).Float64() < p {
					ctrl.PutContentFlow(node, content, flow)
				}
			}
		}
		// N is corrected on every hop toward the source, regardless of
		// whether the current node itself is cache-bearing.
		if nextToSource, ok := hopToward(view, node, source); ok && view.HasCache(nextToSource) {
			ctrl.SubtractProbCacheN(flow, view.CacheSize(nextToSource))
		}
		next, ok := hopToward(view, node, receiver)
		if !ok {
			ctrl.EndFlowSession(t, flow, true, log)
			return nil
		}
		pushData(ctrl, t, receiver, content, node, next, flow, view.LinkDelay(node, next), log)
		return nil

	default:
		return simerr.ErrInvalidPacketKind
	}
}
