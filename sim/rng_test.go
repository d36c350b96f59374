package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

// === SimulationKey Tests ===

func TestSimulationKey_Creation(t *testing.T) {
	tests := []struct {
		name string
		seed int64
	}{
		{"positive seed", 42},
		{"zero seed", 0},
		{"negative seed", -1},
		{"max int64", math.MaxInt64},
		{"min int64", math.MinInt64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := NewSimulationKey(tt.seed)
			assert.Equal(t, tt.seed, int64(key))
		})
	}
}

// === PartitionedRNG Tests ===

func TestPartitionedRNG_DeterministicDerivation(t *testing.T) {
	rng1 := NewPartitionedRNG(NewSimulationKey(42))
	rng2 := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 3; i++ {
		assert.Equal(t, rng1.ForSubsystem(SubsystemProbCache).Float64(), rng2.ForSubsystem(SubsystemProbCache).Float64())
	}
}

func TestPartitionedRNG_SubsystemIsolation(t *testing.T) {
	rngA := NewPartitionedRNG(NewSimulationKey(42))
	rngB := NewPartitionedRNG(NewSimulationKey(42))

	for i := 0; i < 10; i++ {
		rngA.ForSubsystem(SubsystemWorkload).Float64()
	}
	for i := 0; i < 5; i++ {
		rngB.ForSubsystem(SubsystemProbCache).Float64()
	}

	aFirst := rngA.ForSubsystem(SubsystemProbCache).Float64()
	bSixth := rngB.ForSubsystem(SubsystemProbCache).Float64()

	fresh := NewPartitionedRNG(NewSimulationKey(42))
	expectedFirst := fresh.ForSubsystem(SubsystemProbCache).Float64()

	assert.Equal(t, expectedFirst, aFirst, "subsystem isolation broken by unrelated workload draws")
	assert.NotEqual(t, expectedFirst, bSixth)
}

func TestPartitionedRNG_WorkloadBackwardCompat(t *testing.T) {
	seed := int64(42)
	rng := NewPartitionedRNG(NewSimulationKey(seed))

	workloadRNG := rng.ForSubsystem(SubsystemWorkload)
	directRNG := newRandFromSeed(seed)

	for i := 0; i < 10; i++ {
		assert.Equal(t, directRNG.Float64(), workloadRNG.Float64())
	}
}

func TestPartitionedRNG_CachesInstance(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))

	rng1 := rng.ForSubsystem(SubsystemWorkload)
	rng2 := rng.ForSubsystem(SubsystemWorkload)

	assert.Same(t, rng1, rng2)
}

func TestPartitionedRNG_Key(t *testing.T) {
	seed := int64(12345)
	rng := NewPartitionedRNG(NewSimulationKey(seed))

	assert.Equal(t, SimulationKey(seed), rng.Key())
}

func TestPartitionedRNG_EmptySubsystemName(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	result := rng.ForSubsystem("")
	assert.NotNil(t, result)

	rng3 := NewPartitionedRNG(NewSimulationKey(42))
	val2 := rng3.ForSubsystem("").Float64()

	rng4 := NewPartitionedRNG(NewSimulationKey(42))
	val1 := rng4.ForSubsystem("").Float64()

	assert.Equal(t, val1, val2)
}

func TestPartitionedRNG_ZeroSeed(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(0))

	workload := rng.ForSubsystem(SubsystemWorkload)
	probcache := rng.ForSubsystem(SubsystemProbCache)
	assert.NotNil(t, workload)
	assert.NotNil(t, probcache)

	directRNG := newRandFromSeed(0)
	assert.Equal(t, directRNG.Float64(), workload.Float64())
}

func TestPartitionedRNG_NegativeSeed(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(math.MinInt64))

	workload := rng.ForSubsystem(SubsystemWorkload)
	probcache := rng.ForSubsystem(SubsystemProbCache)
	assert.NotNil(t, workload)
	assert.NotNil(t, probcache)

	val := workload.Float64()
	assert.GreaterOrEqual(t, val, 0.0)
	assert.Less(t, val, 1.0)
}

func TestPartitionedRNG_LazyInitialization(t *testing.T) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	assert.Len(t, rng.subsystems, 0)

	rng.ForSubsystem(SubsystemWorkload)
	assert.Len(t, rng.subsystems, 1)
}

// === fnv1a64 Tests ===

func TestFnv1a64_Deterministic(t *testing.T) {
	input := "test_subsystem"
	assert.Equal(t, fnv1a64(input), fnv1a64(input))
}

func TestFnv1a64_Collision(t *testing.T) {
	names := []string{
		SubsystemWorkload,
		SubsystemProbCache,
		SubsystemRandBernoulli,
		SubsystemRandChoice,
		SubsystemCachePolicy,
		SubsystemTopology,
		"",
	}

	hashes := make(map[int64]string)
	for _, name := range names {
		h := fnv1a64(name)
		if existing, ok := hashes[h]; ok {
			t.Errorf("hash collision: %q and %q both hash to %d", name, existing, h)
		}
		hashes[h] = name
	}
}

// === SubsystemNode Tests ===

func TestSubsystemNode(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"0", "node_0"},
		{"router1", "node_router1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SubsystemNode(tt.id))
	}
}

// === Benchmark ===

func BenchmarkPartitionedRNG_ForSubsystem_CacheHit(b *testing.B) {
	rng := NewPartitionedRNG(NewSimulationKey(42))
	rng.ForSubsystem(SubsystemWorkload)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng.ForSubsystem(SubsystemWorkload)
	}
}

func BenchmarkPartitionedRNG_ForSubsystem_CacheMiss(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rng := NewPartitionedRNG(NewSimulationKey(42))
		rng.ForSubsystem(SubsystemWorkload)
	}
}

// === Helper ===

func newRandFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}
