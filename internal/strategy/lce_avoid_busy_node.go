package strategy

import (
	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// lceAvoidBusyNode extends LCE_PL_CD with a per-flow busy-node set: a node
// that rejects a Request admission is marked busy, and the Data path never
// attempts to cache at a node its own flow already found busy.
type lceAvoidBusyNode struct{}

// NewLCEAvoidBusyNode creates the LCE_AVOID_BUSY_NODE strategy.
func NewLCEAvoidBusyNode() sim.Strategy { return lceAvoidBusyNode{} }

func (lceAvoidBusyNode) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
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
			if ctrl.GetContentFlow(node, content, flow, log) {
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
		if view.HasCache(node) && !isBusy(view, flow, node) {
			if admitCacheOp(ctrl, view, t, receiver, content, node, sim.PutContent, flow, log) {
				return nil
			}
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

func isBusy(view *sim.NetworkView, flow sim.Flow, node sim.NodeId) bool {
	_, busy := view.BusyNodes(flow)[node]
	return busy
}
