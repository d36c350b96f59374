package strategy

import (
	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// randBernoulli implements RAND_BERNOULLI: independently insert at each
// cache-bearing router on the return path with probability p.
type randBernoulli struct {
	p   float64
	rng *sim.PartitionedRNG
}

// NewRandBernoulli creates the RAND_BERNOULLI strategy.
func NewRandBernoulli(cfg Config) sim.Strategy {
	return &randBernoulli{p: cfg.P, rng: cfg.RNG}
}

func (s *randBernoulli) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
	if pkt != sim.Request {
		return simerr.ErrInvalidPacketKind
	}
	view := ctrl.View()
	_, ok := sessionRoundTrip(ctrl, view, t, receiver, content, flow, log, func(i int, n sim.NodeId, path []sim.NodeId) {
		if !view.HasCache(n) {
			return
		}
		if s.rng.ForSubsystem(sim.SubsystemRandBernoulli).Float64() < s.p {
			ctrl.PutContentFlow(n, content, flow)
		}
	})
	if !ok {
		return simerr.ErrNoSource
	}
	return nil
}
