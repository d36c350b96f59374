package workload

import "github.com/ccnsim/ccnsim/sim"

// Driver runs a stationary workload to completion against ctrl and strat,
// interleaving new request arrivals with already-scheduled events under the
// time discipline the engine requires: drain whatever is due on the heap(s)
// before the next request's arrival time, then emit it and repeat. Run
// returns once every warmup+measured flow has been emitted and both heaps
// are empty.
type Driver interface {
	Run(ctrl *sim.NetworkController, strat sim.Strategy) error
}
