package strategy

import (
	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// lcdPktLevel implements LCD_PKT_LEVEL: Leave-Copy-Down, caching only at
// the single router immediately below the hit on the return path.
type lcdPktLevel struct{}

// NewLCDPktLevel creates the LCD_PKT_LEVEL strategy.
func NewLCDPktLevel() sim.Strategy { return lcdPktLevel{} }

func (lcdPktLevel) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
	view := ctrl.View()
	switch pkt {
	case sim.Request:
		if node == receiver {
			ctrl.StartFlowSession(t, receiver, content, flow, log)
			ctrl.SetLCDCopied(flow, false)
		}
		source, _ := view.ContentSource(content)
		if view.HasCache(node) || node == source {
			if ctrl.GetContentFlow(node, content, flow, log) {
				next, ok := hopToward(view, node, receiver)
				if !ok {
					ctrl.EndFlowSession(t, flow, true, log)
					return nil
				}
				pushData(ctrl, t, receiver, content, node, next, flow, view.LinkDelay(node, next), log)
				return nil
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
		if view.HasCache(node) && !view.LCDCopied(flow) {
			ctrl.PutContentFlow(node, content, flow)
			ctrl.SetLCDCopied(flow, true)
		}
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
