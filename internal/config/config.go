// Package config parses the YAML run configuration and wires it into a
// runnable model/controller/strategy/driver/collector set.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ccnsim/ccnsim/internal/simerr"
)

// WorkloadConfig configures the request arrival process (§6).
type WorkloadConfig struct {
	Name              string  `yaml:"name"`
	NContents         int     `yaml:"n_contents"`
	Alpha             float64 `yaml:"alpha"`
	Beta              float64 `yaml:"beta"`
	Rate              float64 `yaml:"rate"`
	NWarmup           int     `yaml:"n_warmup"`
	NMeasured         int     `yaml:"n_measured"`
	ReadDelayPenalty  float64 `yaml:"read_delay_penalty"`
	WriteDelayPenalty float64 `yaml:"write_delay_penalty"`
	CacheQueueSize    int     `yaml:"cache_queue_size"`
	Seed              int64   `yaml:"seed"`
}

// TopologyConfig selects a topology generator and its parameters.
type TopologyConfig struct {
	Name  string  `yaml:"name"`
	N     int     `yaml:"n"`
	K     int     `yaml:"k"`
	H     int     `yaml:"h"`
	Delay float64 `yaml:"delay"`
	M0    int     `yaml:"m0"`
	M     int     `yaml:"m"`
}

// CachePlacementConfig configures how cache capacity is distributed across
// routers. NetworkCache is the fraction of n_contents worth of total cache
// budget spread evenly across every router (§6).
type CachePlacementConfig struct {
	Name         string  `yaml:"name"`
	NetworkCache float64 `yaml:"network_cache"`
}

// ContentPlacementConfig selects how content is assigned to source nodes.
type ContentPlacementConfig struct {
	Name string `yaml:"name"`
}

// CachePolicyConfig selects the per-router cache eviction policy.
type CachePolicyConfig struct {
	Name string `yaml:"name"`
}

// StrategyConfig selects the caching strategy and its parameters.
type StrategyConfig struct {
	Name            string           `yaml:"name"`
	TTW             float64          `yaml:"t_tw"`
	P               float64          `yaml:"p"`
	UseEgoBetw      bool             `yaml:"use_ego_betw"`
	CacheAssignment map[string][]int `yaml:"cache_assignment"`
}

// DataCollectorsConfig lists which collectors to attach, by name, from
// {CACHE_HIT_RATIO, LATENCY, CACHE_QUEUE, LINK_LOAD, PATH_STRETCH}.
type DataCollectorsConfig []string

// Config is the full run configuration, one YAML document.
type Config struct {
	Workload         WorkloadConfig         `yaml:"workload"`
	Topology         TopologyConfig         `yaml:"topology"`
	CachePlacement   CachePlacementConfig   `yaml:"cache_placement"`
	ContentPlacement ContentPlacementConfig `yaml:"content_placement"`
	CachePolicy      CachePolicyConfig      `yaml:"cache_policy"`
	Strategy         StrategyConfig         `yaml:"strategy"`
	DataCollectors   DataCollectorsConfig   `yaml:"data_collectors"`
}

// Load parses path into a Config with strict field checking: an unknown key
// is a parse error, not a silently-ignored typo.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Workload.Alpha < 0 || c.Workload.Beta < 0 {
		return fmt.Errorf("%w: alpha and beta must be non-negative", simerr.ErrConfigError)
	}
	if c.Workload.NContents <= 0 {
		return fmt.Errorf("%w: n_contents must be positive", simerr.ErrConfigError)
	}
	if c.Strategy.Name == "PARTITION" && len(c.Strategy.CacheAssignment) == 0 {
		return fmt.Errorf("%w: PARTITION strategy requires a non-empty cache_assignment", simerr.ErrTopologyError)
	}
	return nil
}
