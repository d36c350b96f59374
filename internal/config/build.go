package config

import (
	"fmt"

	"github.com/ccnsim/ccnsim/internal/cachepolicy"
	"github.com/ccnsim/ccnsim/internal/collector"
	"github.com/ccnsim/ccnsim/internal/simerr"
	"github.com/ccnsim/ccnsim/internal/strategy"
	"github.com/ccnsim/ccnsim/internal/topology"
	"github.com/ccnsim/ccnsim/internal/workload"
	"github.com/ccnsim/ccnsim/sim"
)

// Built is everything Run needs to execute one simulation to completion.
type Built struct {
	Controller *sim.NetworkController
	Strategy   sim.Strategy
	Driver     workload.Driver
	Collectors *collector.MultiCollector
}

// Build wires cfg into a runnable model/controller/strategy/driver/collector
// set. The PartitionedRNG is keyed by cfg.Workload.Seed, and every
// subsystem (topology, placement, cache policy, strategy, workload) draws
// from its own named substream of the same RNG.
func Build(cfg *Config) (*Built, error) {
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Workload.Seed))

	g, err := buildGraph(cfg, rng)
	if err != nil {
		return nil, err
	}

	topology.ApplyUniformContentPlacement(g, cfg.Workload.NContents, rng.ForSubsystem(sim.SubsystemPlacement))
	applyCachePlacement(g, cfg)

	simTopo := g.ToSimTopology()

	caches, err := buildCaches(simTopo, cfg, rng)
	if err != nil {
		return nil, err
	}

	model := sim.NewNetworkModel(simTopo, caches)

	collectors := make([]sim.Collector, 0, len(cfg.DataCollectors))
	for _, name := range cfg.DataCollectors {
		collectors = append(collectors, collector.NewCollector(name, simTopo))
	}
	multi := collector.NewMultiCollector(collectors...)

	ctrl := sim.NewNetworkController(model, multi)

	strat, err := buildStrategy(cfg, rng, simTopo)
	if err != nil {
		return nil, err
	}

	drv, err := buildDriver(cfg, rng, simTopo)
	if err != nil {
		return nil, err
	}

	return &Built{Controller: ctrl, Strategy: strat, Driver: drv, Collectors: multi}, nil
}

func buildGraph(cfg *Config, rng *sim.PartitionedRNG) (*topology.Graph, error) {
	t := cfg.Topology
	switch t.Name {
	case "PATH":
		return topology.NewPathTopology(t.N, t.Delay), nil
	case "TREE":
		return topology.NewTreeTopology(t.H, t.K, t.Delay), nil
	case "GARR":
		return topology.NewGARRTopology(), nil
	case "GLP":
		return topology.NewGLPTopology(t.N, t.M0, t.M, rng.ForSubsystem(sim.SubsystemTopology)), nil
	default:
		return nil, fmt.Errorf("%w: unknown topology %q", simerr.ErrConfigError, t.Name)
	}
}

// applyCachePlacement spends NetworkCache * n_contents cache slots, spread
// evenly (at least 1 each) across every router — "UNIFORM" cache placement.
func applyCachePlacement(g *topology.Graph, cfg *Config) {
	if cfg.CachePlacement.Name != "UNIFORM" {
		return
	}
	numRouters := 0
	for _, role := range g.Roles {
		if role == sim.RoleRouter {
			numRouters++
		}
	}
	if numRouters == 0 {
		return
	}
	budget := int(cfg.CachePlacement.NetworkCache * float64(cfg.Workload.NContents))
	size := budget / numRouters
	if size < 1 {
		size = 1
	}
	topology.ApplyUniformCachePlacement(g, size)
}

func buildCaches(topo *sim.Topology, cfg *Config, rng *sim.PartitionedRNG) (map[sim.NodeId]sim.CachePolicy, error) {
	caches := make(map[sim.NodeId]sim.CachePolicy)
	for _, n := range topo.Nodes() {
		if !topo.HasCache(n) {
			continue
		}
		caches[n] = cachepolicy.NewCachePolicy(cfg.CachePolicy.Name, topo.CacheSize[n], rng.ForSubsystem(sim.SubsystemCachePolicy))
	}
	return caches, nil
}

func buildStrategy(cfg *Config, rng *sim.PartitionedRNG, topo *sim.Topology) (sim.Strategy, error) {
	return strategy.NewStrategy(cfg.Strategy.Name, strategy.Config{
		TTW:             orDefault(cfg.Strategy.TTW, 10),
		P:               orDefault(cfg.Strategy.P, 0.2),
		UseEgoBetw:      cfg.Strategy.UseEgoBetw,
		CacheAssignment: parseCacheAssignment(cfg.Strategy.CacheAssignment),
		RNG:             rng,
		Topology:        topo,
	}), nil
}

func parseCacheAssignment(raw map[string][]int) map[sim.NodeId]map[sim.ContentId]struct{} {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[sim.NodeId]map[sim.ContentId]struct{}, len(raw))
	for node, contents := range raw {
		set := make(map[sim.ContentId]struct{}, len(contents))
		for _, c := range contents {
			set[sim.ContentId(c)] = struct{}{}
		}
		out[sim.NodeId(node)] = set
	}
	return out
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}

func buildDriver(cfg *Config, rng *sim.PartitionedRNG, topo *sim.Topology) (workload.Driver, error) {
	params := workload.CacheDelayParams{
		Params: workload.Params{
			NContents: cfg.Workload.NContents,
			Alpha:     cfg.Workload.Alpha,
			Beta:      cfg.Workload.Beta,
			Rate:      cfg.Workload.Rate,
			NWarmup:   cfg.Workload.NWarmup,
			NMeasured: cfg.Workload.NMeasured,
			Topology:  topo,
			RNG:       rng,
		},
		ReadDelayPenalty:  orDefault(cfg.Workload.ReadDelayPenalty, 100),
		WriteDelayPenalty: orDefault(cfg.Workload.WriteDelayPenalty, 100),
		CacheQueueSize:    cfg.Workload.CacheQueueSize,
	}
	if params.CacheQueueSize == 0 {
		params.CacheQueueSize = 10
	}
	return workload.NewDriver(cfg.Workload.Name, params)
}
