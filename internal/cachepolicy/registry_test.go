package cachepolicy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCachePolicy_AllNames(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	lru := NewCachePolicy("LRU", 4, nil)
	require.NotNil(t, lru)
	assert.IsType(t, &LRU{}, lru)

	lfu := NewCachePolicy("LFU", 4, nil)
	assert.IsType(t, &LFU{}, lfu)

	fifo := NewCachePolicy("FIFO", 4, nil)
	assert.IsType(t, &FIFO{}, fifo)

	r := NewCachePolicy("RAND", 4, rng)
	assert.IsType(t, &RAND{}, r)

	null := NewCachePolicy("NULL", 0, nil)
	assert.IsType(t, &NULL{}, null)
}

func TestNewCachePolicy_UnknownNamePanics(t *testing.T) {
	assert.PanicsWithValue(t,
		`unknown cache policy "BOGUS"; valid policies: [LRU, LFU, FIFO, RAND, NULL]`,
		func() { NewCachePolicy("BOGUS", 4, nil) },
	)
}

func TestNewCachePolicy_MaxLenPropagated(t *testing.T) {
	for _, name := range []string{"LRU", "LFU", "FIFO"} {
		p := NewCachePolicy(name, 7, nil)
		assert.Equal(t, 7, p.MaxLen(), name)
	}
}
