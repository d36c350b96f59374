package workload

import "github.com/ccnsim/ccnsim/sim"

// StationaryPacketLevelCacheDelayDriver is the two-heap stationary workload:
// the same Poisson/Zipf arrival process as StationaryPacketLevelDriver, but
// interleaved against both the link heap and every node's cache-service
// heap, since cache-delay-aware strategies push GetContent/PutContent
// events there. Configures ReadDelayPenalty/WriteDelayPenalty/CacheQueueSize
// on the model once, at the start of Run.
type StationaryPacketLevelCacheDelayDriver struct {
	sampler           *requestSampler
	rate              float64
	rng               *sim.PartitionedRNG
	readDelayPenalty  float64
	writeDelayPenalty float64
	cacheQueueSize    int
}

// CacheDelayParams extends Params with the cache-service queue knobs only
// the cache-delay driver consults.
type CacheDelayParams struct {
	Params
	ReadDelayPenalty  float64
	WriteDelayPenalty float64
	CacheQueueSize    int
}

// NewStationaryPacketLevelCacheDelayDriver builds the two-heap driver from p.
func NewStationaryPacketLevelCacheDelayDriver(p CacheDelayParams) (*StationaryPacketLevelCacheDelayDriver, error) {
	sampler, err := newRequestSampler(p.Params)
	if err != nil {
		return nil, err
	}
	return &StationaryPacketLevelCacheDelayDriver{
		sampler:           sampler,
		rate:              p.Rate,
		rng:               p.RNG,
		readDelayPenalty:  p.ReadDelayPenalty,
		writeDelayPenalty: p.WriteDelayPenalty,
		cacheQueueSize:    p.CacheQueueSize,
	}, nil
}

func (d *StationaryPacketLevelCacheDelayDriver) Run(ctrl *sim.NetworkController, strat sim.Strategy) error {
	ctrl.SetDelayPenalties(d.readDelayPenalty, d.writeDelayPenalty)
	ctrl.SetCacheQueueSize(d.cacheQueueSize)

	rng := d.rng.ForSubsystem(sim.SubsystemWorkload)
	tNextFlow := 0.0

	for {
		_, linkPending := ctrl.View().PeekNextEvent()
		_, _, cachePending := ctrl.View().PeekNextCacheEvent()
		if d.sampler.done() && !linkPending && !cachePending {
			return nil
		}

		tNextFlow += rng.ExpFloat64() / d.rate

		for {
			linkEvent, hasLink := ctrl.View().PeekNextEvent()
			cacheNode, cacheEvent, hasCache := ctrl.View().PeekNextCacheEvent()

			dispatchLink := hasLink && linkEvent.TEvent < tNextFlow
			dispatchCache := hasCache && cacheEvent.TEvent < tNextFlow
			if !dispatchLink && !dispatchCache {
				break
			}

			// On a tie the link heap goes first (§5).
			if dispatchLink && (!dispatchCache || linkEvent.TEvent <= cacheEvent.TEvent) {
				e, err := ctrl.PopNextEvent()
				if err != nil {
					return err
				}
				if err := strat.ProcessEvent(e.TEvent, e.Receiver, e.Content, e.Node, e.FlowID, e.Kind, e.Log, ctrl); err != nil {
					return err
				}
				continue
			}

			e, err := ctrl.PopNextCacheEvent(cacheNode)
			if err != nil {
				return err
			}
			ctrl.UpdateCacheQueueServer(cacheNode, e)
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
