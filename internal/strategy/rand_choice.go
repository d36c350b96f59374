package strategy

import (
	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// randChoice implements RAND_CHOICE: insert at exactly one cache-bearing
// router on the return path, chosen uniformly at random.
type randChoice struct {
	rng *sim.PartitionedRNG
}

// NewRandChoice creates the RAND_CHOICE strategy.
func NewRandChoice(cfg Config) sim.Strategy {
	return &randChoice{rng: cfg.RNG}
}

func (s *randChoice) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
	if pkt != sim.Request {
		return simerr.ErrInvalidPacketKind
	}
	view := ctrl.View()

	chosen := -1
	initialized := false

	_, ok := sessionRoundTrip(ctrl, view, t, receiver, content, flow, log, func(i int, n sim.NodeId, path []sim.NodeId) {
		if !initialized {
			var candidates []int
			for j := 0; j <= i; j++ {
				if view.HasCache(path[j]) {
					candidates = append(candidates, j)
				}
			}
			if len(candidates) > 0 {
				pick := s.rng.ForSubsystem(sim.SubsystemRandChoice).Intn(len(candidates))
				chosen = candidates[pick]
			}
			initialized = true
		}
		if chosen == i {
			ctrl.PutContentFlow(n, content, flow)
		}
	})
	if !ok {
		return simerr.ErrNoSource
	}
	return nil
}
