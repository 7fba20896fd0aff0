package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
	"time"
)

// Source is the randomness provider for target selection.
type Source interface {
	// Intn returns a non-negative random int in [0, n). n must be > 0.
	Intn(n int) int
}

// NewSource returns a deterministic Source for seed.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

// NewRandomSource returns a Source seeded by NewSeed, or by the clock when
// crypto/rand is unavailable.
func NewRandomSource() Source {
	seed, err := NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}
	return NewSource(seed)
}

// between draws uniformly from the closed range [lo, hi].
func between(src Source, lo, hi int) int {
	return lo + src.Intn(hi-lo+1)
}
