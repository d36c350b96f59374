package strategy

import (
	"math"

	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// probCacheAvoidBusyNode implements PROB_CACHE_AVOID_BUSY_NODE: ProbCache's
// insertion probability additionally weighted by a queue-inverse factor
// that favors nodes with shorter cache-service queues, plus the standard
// busy-node avoidance gating on the Data path.
type probCacheAvoidBusyNode struct {
	ttw      float64
	rng      *sim.PartitionedRNG
	topology *sim.Topology
}

// NewProbCacheAvoidBusyNode creates the PROB_CACHE_AVOID_BUSY_NODE strategy.
func NewProbCacheAvoidBusyNode(cfg Config) sim.Strategy {
	return &probCacheAvoidBusyNode{ttw: cfg.TTW, rng: cfg.RNG, topology: cfg.Topology}
}

func (s *probCacheAvoidBusyNode) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
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
				ctrl.TrackBusyNode(flow, node)
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
				p := s.probability(view, node, float64(c), float64(n), x, float64(cacheSz))
				if s.rng.ForSubsystem(sim.SubsystemProbCache).Float64() < p && !isBusy(view, flow, node) {
					admitted = admitCacheOp(ctrl, view, t, receiver, content, node, sim.PutContent, flow, log)
				}
			}
		}
		// N is corrected on every hop toward the source, regardless of
		// whether the current node itself is cache-bearing or busy.
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

// probability computes PROB_CACHE_AVOID_BUSY_NODE's admission probability
// (§4.4.5):
//
//	p = (N / (t_tw*cacheSz)) * ((c-x)/c * invQ(node)/sumInvQ)^x * (x/c)^(c-x)
func (s *probCacheAvoidBusyNode) probability(view *sim.NetworkView, node sim.NodeId, c, n, x, cacheSz float64) float64 {
	invQNode := invQ(view, node)
	sum := sumInvQ(view, s.topology)
	base := n / (s.ttw * cacheSz)
	busyTerm := math.Pow((c-x)/c*invQNode/sum, x)
	posTerm := math.Pow(x/c, c-x)
	return base * busyTerm * posTerm
}

// invQ is the queue-inverse factor for node: 1 / max(1, |C[node]|).
func invQ(view *sim.NetworkView, node sim.NodeId) float64 {
	q := view.CacheQueueNode(node)
	if q < 1 {
		q = 1
	}
	return 1.0 / float64(q)
}

// sumInvQ sums invQ over every cache-bearing node in the topology. The
// leading 1 is carried over verbatim from the reference implementation as
// a degenerate-sum guard against Σ=0 when no node has ever queued an op.
func sumInvQ(view *sim.NetworkView, topo *sim.Topology) float64 {
	sum := 1.0
	for _, n := range topo.Nodes() {
		if !topo.HasCache(n) {
			continue
		}
		sum += invQ(view, n)
	}
	return sum
}
