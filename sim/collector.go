package sim

// Collector receives the structured event stream emitted by Controller
// whenever a mutating call is made with log=true. The schema is bit-exact
// with the reference collector event stream so downstream aggregation
// tooling does not need to change shape. Concrete collectors (hit ratio,
// latency, queue occupancy, link load, path stretch, and a fan-out
// MultiCollector) live in internal/collector.
type Collector interface {
	OnStartFlowSession(t float64, receiver NodeId, content ContentId, flow Flow)
	OnRequestHopFlow(u, v NodeId, flow Flow, mainPath bool)
	OnContentHopFlow(u, v NodeId, flow Flow, mainPath bool)
	OnCacheHitFlow(node NodeId, content ContentId, flow Flow)
	OnCacheMissFlow(node NodeId, content ContentId, flow Flow)
	OnServerHitFlow(node NodeId, content ContentId, flow Flow)
	OnCacheOperationFlow(flow Flow, delay float64)
	OnReportCacheQueueSize(node NodeId, kind PacketKind, size int)
	OnRecordPktAdmitted(node NodeId, kind PacketKind)
	OnRecordPktRejected(node NodeId, kind PacketKind)
	OnEndFlowSession(flow Flow, success bool, tStart, tEnd float64)
	OnEndFlowSessionCacheDelay(flow Flow, success bool, tStart, tEnd float64)
}

// NopCollector implements Collector by discarding every event. Useful for
// unlogged background traffic events (log=false call sites still route
// through the controller but skip notification entirely, so NopCollector
// exists mainly for tests that don't care about the event stream).
type NopCollector struct{}

func (NopCollector) OnStartFlowSession(float64, NodeId, ContentId, Flow)      {}
func (NopCollector) OnRequestHopFlow(NodeId, NodeId, Flow, bool)             {}
func (NopCollector) OnContentHopFlow(NodeId, NodeId, Flow, bool)             {}
func (NopCollector) OnCacheHitFlow(NodeId, ContentId, Flow)                  {}
func (NopCollector) OnCacheMissFlow(NodeId, ContentId, Flow)                 {}
func (NopCollector) OnServerHitFlow(NodeId, ContentId, Flow)                 {}
func (NopCollector) OnCacheOperationFlow(Flow, float64)                      {}
func (NopCollector) OnReportCacheQueueSize(NodeId, PacketKind, int)          {}
func (NopCollector) OnRecordPktAdmitted(NodeId, PacketKind)                  {}
func (NopCollector) OnRecordPktRejected(NodeId, PacketKind)                  {}
func (NopCollector) OnEndFlowSession(Flow, bool, float64, float64)           {}
func (NopCollector) OnEndFlowSessionCacheDelay(Flow, bool, float64, float64) {}
