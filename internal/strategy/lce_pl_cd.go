package strategy

import (
	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// lcePLCD implements LCE_PL_CD: LCE with a bounded per-node cache-service
// queue. A cache op admitted at a node is represented by a GetContent or
// PutContent event parked in that node's cache-service heap until its
// simulated service time elapses, at which point this same ProcessEvent
// dispatch resumes the packet's journey toward the receiver.
type lcePLCD struct{}

// NewLCEPLCD creates the LCE_PL_CD strategy.
func NewLCEPLCD() sim.Strategy { return lcePLCD{} }

func (lcePLCD) ProcessEvent(t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, flow sim.Flow, pkt sim.PacketKind, log bool, ctrl *sim.NetworkController) error {
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
				// admission rejected: intentional load-shedding fallthrough,
				// request continues toward source despite the hit.
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
		if view.HasCache(node) {
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

// admitCacheOp applies the cache-delay admission rule (§4.4.4): if node's
// cache-service queue has room, it queues a GetContent/PutContent event at
// its computed completion time and returns true (caller must stop, the
// queued event will resume the packet's journey on dispatch). Otherwise it
// records a rejection and returns false (caller proceeds with fallthrough
// semantics).
func admitCacheOp(ctrl *sim.NetworkController, view *sim.NetworkView, t float64, receiver sim.NodeId, content sim.ContentId, node sim.NodeId, kind sim.PacketKind, flow sim.Flow, log bool) bool {
	if ctrl.CacheQueueLen(node) >= view.CacheQueueSize() {
		ctrl.RecordPktRejected(node, kind, log)
		return false
	}
	d := view.CacheQueueDelay(node, t)
	ctrl.CacheOperationFlow(flow, d, log)
	ctrl.AddCacheQueueEvent(node, sim.Event{
		TEvent: t + d, Receiver: receiver, Content: content, Node: node, FlowID: flow, Kind: kind, Log: log,
	})
	ctrl.RecordPktAdmitted(node, kind, log)
	ctrl.ReportCacheQueueSize(node, kind, log)
	return true
}
