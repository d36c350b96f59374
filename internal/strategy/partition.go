package strategy

import (
	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// partitionStrategy implements PARTITION: each router is statically
// assigned, at topology-load time, a fixed partition of the content
// catalogue (cfg.CacheAssignment); insertion on the return path is gated
// by whether content falls in the router's assigned partition. A missing
// cache_assignment is rejected as a TopologyError when the config is
// loaded, not here — by the time a Strategy runs, the assignment is known
// to be present.
type partitionStrategy struct {
	assignment map[sim.NodeId]map[sim.ContentId]struct{}
}

// NewPartition creates the PARTITION strategy.
func NewPartition(cfg Config) sim.Strategy {
	return &partitionStrategy{assignment: cfg.CacheAssignment}
}

func (s *partitionStrategy) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
	if pkt != sim.Request {
		return simerr.ErrInvalidPacketKind
	}
	view := ctrl.View()
	_, ok := sessionRoundTrip(ctrl, view, t, receiver, content, flow, log, func(i int, n sim.NodeId, path []sim.NodeId) {
		if !view.HasCache(n) {
			return
		}
		assigned, ok := s.assignment[n]
		if !ok {
			return
		}
		if _, inPartition := assigned[content]; inPartition {
			ctrl.PutContentFlow(n, content, flow)
		}
	})
	if !ok {
		return simerr.ErrNoSource
	}
	return nil
}
