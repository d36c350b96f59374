package sim

// Strategy is the single dispatch point every packet-level and
// session-level caching strategy implements. It executes the node-local
// transition for one event and pushes whatever follow-on event(s) result,
// via ctrl. No strategy holds state across calls except in FlowScratch
// (reached only through ctrl's per-flow scratch setters/getters).
//
// ProcessEvent returns simerr.ErrInvalidPacketKind if pkt is not one of the
// kinds the strategy recognizes (cache-delay-aware strategies recognize
// GetContent/PutContent in addition to Request/Data; session-level
// strategies recognize only Request).
type Strategy interface {
	ProcessEvent(
		t float64,
		receiver NodeId,
		content ContentId,
		node NodeId,
		flow Flow,
		pkt PacketKind,
		log bool,
		ctrl *NetworkController,
	) error
}
