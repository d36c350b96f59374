package strategy

import (
	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// lcdAvoidBusyNode extends LCD_PL_CD with the busy-node avoidance rule:
// Request-side rejections mark the node busy, and the Data path skips
// caching at a node its own flow found busy, on top of the usual
// single-copy lcd_copied guard.
type lcdAvoidBusyNode struct{}

// NewLCDAvoidBusyNode creates the LCD_AVOID_BUSY_NODE strategy.
func NewLCDAvoidBusyNode() sim.Strategy { return lcdAvoidBusyNode{} }

func (lcdAvoidBusyNode) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
	view := ctrl.View()
	source, _ := view.ContentSource(content)

	switch pkt {
	case sim.Request:
		if node == receiver {
			ctrl.StartFlowSession(t, receiver, content, flow, log)
			ctrl.SetLCDCopied(flow, false)
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
		if view.HasCache(node) && !view.LCDCopied(flow) && !isBusy(view, flow, node) {
			if admitCacheOp(ctrl, view, t, receiver, content, node, sim.PutContent, flow, log) {
				ctrl.SetLCDCopied(flow, true)
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
