package strategy

import (
	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// lcdSession implements session-level LCD: insert only at the single
// router immediately below the hit (closest to the hit on the return path).
type lcdSession struct{}

// NewLCDSession creates the session-level LCD strategy.
func NewLCDSession() sim.Strategy { return lcdSession{} }

func (lcdSession) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
	if pkt != sim.Request {
		return simerr.ErrInvalidPacketKind
	}
	view := ctrl.View()
	copied := false
	_, ok := sessionRoundTrip(ctrl, view, t, receiver, content, flow, log, func(i int, n sim.NodeId, path []sim.NodeId) {
		if copied || !view.HasCache(n) {
			return
		}
		ctrl.PutContentFlow(n, content, flow)
		copied = true
	})
	if !ok {
		return simerr.ErrNoSource
	}
	return nil
}
