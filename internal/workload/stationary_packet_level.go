package workload

import "github.com/ccnsim/ccnsim/sim"

// StationaryPacketLevelDriver is the single-link-heap stationary workload:
// Poisson request arrivals with Zipf content popularity, interleaved with
// whatever Request/Data events are already pending on the link heap.
type StationaryPacketLevelDriver struct {
	sampler *requestSampler
	rate    float64
	rng     *sim.PartitionedRNG
}

// NewStationaryPacketLevelDriver builds the packet-level driver from p.
func NewStationaryPacketLevelDriver(p Params) (*StationaryPacketLevelDriver, error) {
	sampler, err := newRequestSampler(p)
	if err != nil {
		return nil, err
	}
	return &StationaryPacketLevelDriver{sampler: sampler, rate: p.Rate, rng: p.RNG}, nil
}

func (d *StationaryPacketLevelDriver) Run(ctrl *sim.NetworkController, strat sim.Strategy) error {
	rng := d.rng.ForSubsystem(sim.SubsystemWorkload)
	tNextFlow := 0.0

	for {
		if _, pending := ctrl.View().PeekNextEvent(); d.sampler.done() && !pending {
			return nil
		}

		tNextFlow += rng.ExpFloat64() / d.rate

		for {
			e, ok := ctrl.View().PeekNextEvent()
			if !ok || !(e.TEvent < tNextFlow) {
				break
			}
			e, err := ctrl.PopNextEvent()
			if err != nil {
				return err
			}
			if err := strat.ProcessEvent(e.TEvent, e.Receiver, e.Content, e.Node, e.FlowID, e.Kind, e.Log, ctrl); err != nil {
				return err
			}
		}

		receiver, content, flow, log, ok := d.sampler.next()
		if !ok {
			continue
		}
		ctrl.AddEvent(sim.Event{
			TEvent: tNextFlow, Receiver: receiver, Content: content,
			Node: receiver, FlowID: flow, Kind: sim.Request, Log: log,
		})
	}
}
