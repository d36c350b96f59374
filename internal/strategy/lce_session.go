package strategy

import (
	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// lceSession implements session-level LCE: insert at every cache-bearing
// router on the return path.
type lceSession struct{}

// NewLCESession creates the session-level LCE strategy.
func NewLCESession() sim.Strategy { return lceSession{} }

func (lceSession) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
	if pkt != sim.Request {
		return simerr.ErrInvalidPacketKind
	}
	view := ctrl.View()
	_, ok := sessionRoundTrip(ctrl, view, t, receiver, content, flow, log, func(i int, n sim.NodeId, path []sim.NodeId) {
		if view.HasCache(n) {
			ctrl.PutContentFlow(n, content, flow)
		}
	})
	if !ok {
		return simerr.ErrNoSource
	}
	return nil
}
