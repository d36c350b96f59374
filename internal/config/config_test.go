package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ccnsim/ccnsim/internal/simerr"
)

func writeTempConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const validYAML = `
workload:
  name: STATIONARY_PACKET_LEVEL
  n_contents: 100
  alpha: 0.8
  rate: 10
  n_warmup: 1000
  n_measured: 2000
  seed: 42
topology:
  name: PATH
  n: 5
  delay: 1
cache_placement:
  name: UNIFORM
  network_cache: 0.05
content_placement:
  name: UNIFORM
strategy:
  name: LCE
cache_policy:
  name: LRU
data_collectors:
  - CACHE_HIT_RATIO
  - LATENCY
`

func TestLoad_ParsesValidConfig(t *testing.T) {
	path := writeTempConfig(t, validYAML)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "STATIONARY_PACKET_LEVEL", cfg.Workload.Name)
	assert.Equal(t, 100, cfg.Workload.NContents)
	assert.Equal(t, "PATH", cfg.Topology.Name)
	assert.Equal(t, []string{"CACHE_HIT_RATIO", "LATENCY"}, []string(cfg.DataCollectors))
}

func TestLoad_RejectsUnknownField(t *testing.T) {
	path := writeTempConfig(t, validYAML+"\nbogus_field: true\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_RejectsNegativeAlpha(t *testing.T) {
	bad := `
workload:
  name: STATIONARY_PACKET_LEVEL
  n_contents: 10
  alpha: -1
  rate: 1
topology:
  name: PATH
  n: 3
  delay: 1
strategy:
  name: LCE
cache_policy:
  name: LRU
`
	path := writeTempConfig(t, bad)
	_, err := Load(path)
	assert.ErrorIs(t, err, simerr.ErrConfigError)
}

func TestLoad_PartitionWithoutCacheAssignmentFails(t *testing.T) {
	bad := `
workload:
  name: STATIONARY_PACKET_LEVEL
  n_contents: 10
  alpha: 0.8
  rate: 1
topology:
  name: PATH
  n: 3
  delay: 1
strategy:
  name: PARTITION
cache_policy:
  name: LRU
`
	path := writeTempConfig(t, bad)
	_, err := Load(path)
	assert.Error(t, err)
}
