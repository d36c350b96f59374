package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pathTopologyConfig(strategyName string) *Config {
	return &Config{
		Workload: WorkloadConfig{
			Name: "STATIONARY_PACKET_LEVEL", NContents: 10, Alpha: 0.8,
			Rate: 10, NWarmup: 20, NMeasured: 20, Seed: 7,
		},
		Topology:       TopologyConfig{Name: "PATH", N: 5, Delay: 1},
		CachePlacement: CachePlacementConfig{Name: "UNIFORM", NetworkCache: 0.1},
		CachePolicy:    CachePolicyConfig{Name: "LRU"},
		Strategy:       StrategyConfig{Name: strategyName},
		DataCollectors: DataCollectorsConfig{"CACHE_HIT_RATIO", "LATENCY"},
	}
}

func TestBuild_WiresPathTopologyEndToEnd(t *testing.T) {
	cfg := pathTopologyConfig("LCE")
	built, err := Build(cfg)
	require.NoError(t, err)
	require.NoError(t, built.Driver.Run(built.Controller, built.Strategy))

	summary := built.Collectors.Summary()
	assert.Contains(t, summary, "collector_0")
	assert.Contains(t, summary, "collector_1")
}

func TestBuild_PartitionStrategyHonorsCacheAssignment(t *testing.T) {
	cfg := pathTopologyConfig("PARTITION")
	cfg.Strategy.CacheAssignment = map[string][]int{"n1": {1, 2, 3}}
	built, err := Build(cfg)
	require.NoError(t, err)
	require.NoError(t, built.Driver.Run(built.Controller, built.Strategy))
}

func TestBuild_UnknownTopologyNameErrors(t *testing.T) {
	cfg := pathTopologyConfig("LCE")
	cfg.Topology.Name = "NOT_A_TOPOLOGY"
	_, err := Build(cfg)
	assert.Error(t, err)
}

func TestBuild_CacheDelayDriverConfiguresModel(t *testing.T) {
	cfg := pathTopologyConfig("LCE_PL_CD")
	cfg.Workload.Name = "STATIONARY_PACKET_LEVEL_CACHE_DELAY"
	cfg.Workload.ReadDelayPenalty = 5
	cfg.Workload.WriteDelayPenalty = 7
	cfg.Workload.CacheQueueSize = 4

	built, err := Build(cfg)
	require.NoError(t, err)
	require.NoError(t, built.Driver.Run(built.Controller, built.Strategy))
	assert.Equal(t, 4, built.Controller.View().CacheQueueSize())
}
