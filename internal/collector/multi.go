package collector

import (
	"strconv"

	"github.com/ccnsim/ccnsim/sim"
)

// MultiCollector fans out every Controller notification to a slice of
// Collectors, selected at configuration time by the data_collectors list.
// Generalizes the corpus's composable scorer-slice style to event fan-out.
type MultiCollector struct {
	collectors []sim.Collector
}

// NewMultiCollector creates a MultiCollector fanning out to cs, in order.
func NewMultiCollector(cs ...sim.Collector) *MultiCollector {
	return &MultiCollector{collectors: cs}
}

func (m *MultiCollector) OnStartFlowSession(t float64, receiver sim.NodeId, content sim.ContentId, flow sim.Flow) {
	for _, c := range m.collectors {
		c.OnStartFlowSession(t, receiver, content, flow)
	}
}

func (m *MultiCollector) OnRequestHopFlow(u, v sim.NodeId, flow sim.Flow, mainPath bool) {
	for _, c := range m.collectors {
		c.OnRequestHopFlow(u, v, flow, mainPath)
	}
}

func (m *MultiCollector) OnContentHopFlow(u, v sim.NodeId, flow sim.Flow, mainPath bool) {
	for _, c := range m.collectors {
		c.OnContentHopFlow(u, v, flow, mainPath)
	}
}

func (m *MultiCollector) OnCacheHitFlow(node sim.NodeId, content sim.ContentId, flow sim.Flow) {
	for _, c := range m.collectors {
		c.OnCacheHitFlow(node, content, flow)
	}
}

func (m *MultiCollector) OnCacheMissFlow(node sim.NodeId, content sim.ContentId, flow sim.Flow) {
	for _, c := range m.collectors {
		c.OnCacheMissFlow(node, content, flow)
	}
}

func (m *MultiCollector) OnServerHitFlow(node sim.NodeId, content sim.ContentId, flow sim.Flow) {
	for _, c := range m.collectors {
		c.OnServerHitFlow(node, content, flow)
	}
}

func (m *MultiCollector) OnCacheOperationFlow(flow sim.Flow, delay float64) {
	for _, c := range m.collectors {
		c.OnCacheOperationFlow(flow, delay)
	}
}

func (m *MultiCollector) OnReportCacheQueueSize(node sim.NodeId, kind sim.PacketKind, size int) {
	for _, c := range m.collectors {
		c.OnReportCacheQueueSize(node, kind, size)
	}
}

func (m *MultiCollector) OnRecordPktAdmitted(node sim.NodeId, kind sim.PacketKind) {
	for _, c := range m.collectors {
		c.OnRecordPktAdmitted(node, kind)
	}
}

func (m *MultiCollector) OnRecordPktRejected(node sim.NodeId, kind sim.PacketKind) {
	for _, c := range m.collectors {
		c.OnRecordPktRejected(node, kind)
	}
}

func (m *MultiCollector) OnEndFlowSession(flow sim.Flow, success bool, tStart, tEnd float64) {
	for _, c := range m.collectors {
		c.OnEndFlowSession(flow, success, tStart, tEnd)
	}
}

func (m *MultiCollector) OnEndFlowSessionCacheDelay(flow sim.Flow, success bool, tStart, tEnd float64) {
	for _, c := range m.collectors {
		c.OnEndFlowSessionCacheDelay(flow, success, tStart, tEnd)
	}
}

// Summary merges every fanned-out collector's Summary() (for those that
// implement Summarizable) under its registration index, so the results
// file keeps each collector's metrics distinguishable.
func (m *MultiCollector) Summary() map[string]any {
	out := make(map[string]any, len(m.collectors))
	for i, c := range m.collectors {
		if s, ok := c.(Summarizable); ok {
			out["collector_"+strconv.Itoa(i)] = s.Summary()
		}
	}
	return out
}
