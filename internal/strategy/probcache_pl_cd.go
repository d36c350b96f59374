package strategy

import (
	"math"

	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// probCachePLCD implements PROB_CACHE_PL_CD: cache-delay-aware ProbCache.
// The insertion probability is evaluated before the admission rule, so a
// node that loses the probabilistic coin flip never even attempts to
// queue a PutContent op.
type probCachePLCD struct {
	ttw float64
	rng *sim.PartitionedRNG
}

// NewProbCachePLCD creates the PROB_CACHE_PL_CD strategy.
func NewProbCachePLCD(cfg Config) sim.Strategy {
	return &probCachePLCD{ttw: cfg.TTW, rng: cfg.RNG}
}

func (s *probCachePLCD) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
	view := ctrl.View()
	source, _ := view.ContentSource(content)

	switch pkt {
	case sim.Request:
		if node == receiver {
			ctrl.StartFlowSession(t, receiver, content, flow, log)
		}
		if node == source {
			ctrl.GetContentFlow(node, content, flow, log)
			next, ok := hopToward(view, node, receiver)
			if !ok {
				ctrl.EndFlowSession(t, flow, true, log)
				return nil
			}
			pushData(ctrl, t, receiver, content, node, next, flow, view.LinkDelay(node, next), log)
			return nil
		}
		if view.HasCache(node) {
			ctrl.AddProbCacheC(flow, 1)
			ctrl.AddProbCacheN(flow, view.CacheSize(node))
			if ctrl.GetContentFlow(node, content, flow, log) {
				ctrl.StartProbCacheX(flow, 0)
				if admitCacheOp(ctrl, view, t, receiver, content, node, sim.GetContent, flow, log) {
					return nil
				}
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
		admitted := false
		if view.HasCache(node) {
			ctrl.AddProbCacheX(flow, 1)
			c, n, x := view.ProbCacheState(flow)
			cacheSz := view.CacheSize(node)
			if c > 0 && cacheSz > 0 {
				p := (float64(n) / (s.ttw * float64(cacheSz))) * math.Pow(x/float64(c), float64(c))
				if s.rng.ForSubsystem(sim.SubsystemProbCache).Float64() < p {
					admitted = admitCacheOp(ctrl, view, t, receiver, content, node, sim.PutContent, flow, log)
				}
			}
		}
		// N is corrected on every hop toward the source, regardless of
		// whether the current node itself is cache-bearing.
		if nextToSource, ok := hopToward(view, node, source); ok && view.HasCache(nextToSource) {
			ctrl.SubtractProbCacheN(flow, view.CacheSize(nextToSource))
		}
		if admitted {
			return nil
		}
		next, ok := hopToward(view, node, receiver)
		if !ok {
			ctrl.EndFlowSession(t, flow, true, log)
			return nil
		}
		pushData(ctrl, t, receiver, content, node, next, flow, view.LinkDelay(node, next), log)
		return nil

	case sim.GetContent:
		next, ok := hopToward(view, node, receiver)
		if !ok {
			ctrl.EndFlowSession(t, flow, true, log)
			return nil
		}
		pushData(ctrl, t, receiver, content, node, next, flow, view.LinkDelay(node, next), log)
		return nil

	case sim.PutContent:
		ctrl.PutContentFlow(node, content, flow)
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
