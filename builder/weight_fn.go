package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight from the constructor's RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) uint32

// ConstantWeight returns a WeightFn that always yields value.
func ConstantWeight(value uint32) WeightFn {
	return func(_ *rand.Rand) uint32 { return value }
}

// UniformWeight returns a WeightFn sampling uniformly in [lo, hi].
// Panics if hi < lo.
func UniformWeight(lo, hi uint32) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("builder: UniformWeight: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}
	span := int64(hi) - int64(lo) + 1

	return func(rng *rand.Rand) uint32 {
		return lo + uint32(rng.Int63n(span))
	}
}
