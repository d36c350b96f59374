package strategy

import (
	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// edgeStrategy implements EDGE: insert only at the router directly
// attached to the receiver, regardless of where the hit occurred.
type edgeStrategy struct{}

// NewEdge creates the EDGE strategy.
func NewEdge() sim.Strategy { return edgeStrategy{} }

func (edgeStrategy) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
	if pkt != sim.Request {
		return simerr.ErrInvalidPacketKind
	}
	view := ctrl.View()
	_, ok := sessionRoundTrip(ctrl, view, t, receiver, content, flow, log, func(i int, n sim.NodeId, path []sim.NodeId) {
		if i == 1 && view.HasCache(n) {
			ctrl.PutContentFlow(n, content, flow)
		}
	})
	if !ok {
		return simerr.ErrNoSource
	}
	return nil
}
