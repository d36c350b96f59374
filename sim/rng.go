package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemWorkload is the RNG subsystem for the workload driver's
	// Poisson interarrival draws and Zipf content/receiver sampling.
	// Uses master seed directly for backward compatibility with single-seed runs.
	SubsystemWorkload = "workload"

	// SubsystemProbCache is the RNG subsystem for ProbCache's admission coin flip.
	SubsystemProbCache = "probcache"

	// SubsystemRandBernoulli is the RNG subsystem for RAND_BERNOULLI insertion draws.
	SubsystemRandBernoulli = "rand_bernoulli"

	// SubsystemRandChoice is the RNG subsystem for RAND_CHOICE's uniform node pick.
	SubsystemRandChoice = "rand_choice"

	// SubsystemCachePolicy is the RNG subsystem for the RAND cache eviction policy.
	SubsystemCachePolicy = "cache_policy"

	// SubsystemTopology is the RNG subsystem for randomized topology generation (GLP).
	SubsystemTopology = "topology"

	// SubsystemPlacement is the RNG subsystem for UNIFORM cache/content placement.
	SubsystemPlacement = "placement"
)

// SubsystemNode returns the subsystem name for per-node RNG isolation,
// used when a cache policy needs an independent substream per router.
func SubsystemNode(id string) string {
	return fmt.Sprintf("node_%s", id)
}

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per subsystem.
//
// Derivation formula:
//   - For SubsystemWorkload: uses masterSeed directly (backward compatibility)
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from single goroutine.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	var derivedSeed int64
	if name == SubsystemWorkload {
		// Backward compatibility: workload uses master seed directly.
		// This ensures existing --seed behavior produces identical output.
		derivedSeed = int64(p.key)
	} else {
		// All other subsystems: XOR with hash for isolation.
		derivedSeed = int64(p.key) ^ fnv1a64(name)
	}

	rng := rand.New(rand.NewSource(derivedSeed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
