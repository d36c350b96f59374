package workload

import (
	"math/rand"
	"sort"

	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/sim"
)

// Params carries the fields shared by every stationary workload driver.
type Params struct {
	NContents  int
	Alpha      float64
	Beta       float64 // receiver skew; 0 means uniform receiver selection
	Rate       float64 // mean request rate, requests per simulated time unit
	NWarmup    int
	NMeasured  int
	Topology   *sim.Topology
	RNG        *sim.PartitionedRNG
}

// requestSampler draws (receiver, content, flow, log) tuples in the order
// the reference stationary workload does: Zipf-ranked content reshuffled
// every 1000 draws so popularity rank never correlates with content id, and
// either uniform or Zipf-beta-skewed receiver selection.
type requestSampler struct {
	contents     []sim.ContentId
	zipf         *ZipfDist
	receivers    []sim.NodeId
	receiverDist *ZipfDist
	rng          *rand.Rand
	flowCounter  int64
	nWarmup      int64
	nMeasured    int64
}

func newRequestSampler(p Params) (*requestSampler, error) {
	if p.Alpha < 0 {
		return nil, simerr.ErrConfigError
	}
	if p.Beta < 0 {
		return nil, simerr.ErrConfigError
	}
	if p.NContents <= 0 {
		return nil, simerr.ErrConfigError
	}

	rng := p.RNG.ForSubsystem(sim.SubsystemWorkload)

	contents := make([]sim.ContentId, p.NContents)
	for i := range contents {
		contents[i] = sim.ContentId(i + 1)
	}

	receivers := receiversOf(p.Topology)
	if len(receivers) == 0 {
		return nil, simerr.ErrTopologyError
	}

	s := &requestSampler{
		contents:  contents,
		zipf:      NewZipfDist(p.Alpha, p.NContents, rng),
		receivers: receivers,
		rng:       rng,
		nWarmup:   int64(p.NWarmup),
		nMeasured: int64(p.NMeasured),
	}

	if p.Beta != 0 {
		rankReceiversByDistanceFromSource(receivers, p.Topology)
		s.receiverDist = NewZipfDist(p.Beta, len(receivers), rng)
	}

	return s, nil
}

func receiversOf(topo *sim.Topology) []sim.NodeId {
	var out []sim.NodeId
	for _, n := range topo.Nodes() {
		if topo.Roles[n] == sim.RoleReceiver {
			out = append(out, n)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// rankReceiversByDistanceFromSource sorts receivers in decreasing order of
// hop distance from the topology's (first) source, mirroring the reference
// implementation's PoP-degree ranking: receivers "further out" on the tree
// get assigned the higher end of the Zipf skew.
func rankReceiversByDistanceFromSource(receivers []sim.NodeId, topo *sim.Topology) {
	var source sim.NodeId
	for _, n := range topo.Nodes() {
		if topo.Roles[n] == sim.RoleSource {
			source = n
			break
		}
	}
	dist := func(n sim.NodeId) int {
		return len(topo.ShortestPath(n, source))
	}
	sort.Slice(receivers, func(i, j int) bool {
		return dist(receivers[i]) > dist(receivers[j])
	})
}

// next returns the next request tuple and false once the run should stop
// emitting new flows (flow_counter has reached n_warmup+n_measured). The
// driver keeps pumping dispatched events even after next returns ok=false.
func (s *requestSampler) next() (receiver sim.NodeId, content sim.ContentId, flow sim.Flow, log bool, ok bool) {
	if s.flowCounter >= s.nWarmup+s.nMeasured {
		return "", 0, 0, false, false
	}

	if s.flowCounter%1000 == 0 {
		s.rng.Shuffle(len(s.contents), func(i, j int) {
			s.contents[i], s.contents[j] = s.contents[j], s.contents[i]
		})
	}

	rank := s.zipf.Rv()
	content = s.contents[rank-1]

	if s.receiverDist != nil {
		receiver = s.receivers[s.receiverDist.Rv()-1]
	} else {
		receiver = s.receivers[s.rng.Intn(len(s.receivers))]
	}

	flow = sim.Flow(s.flowCounter)
	log = s.flowCounter >= s.nWarmup
	s.flowCounter++
	return receiver, content, flow, log, true
}

func (s *requestSampler) done() bool {
	return s.flowCounter >= s.nWarmup+s.nMeasured
}
