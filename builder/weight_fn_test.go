// Package builder_test contains unit tests for the WeightFn implementations.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/salesman/builder"
)

// TestWeightFnBehavior covers the runtime behavior of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	const (
		seed  = 42
		lo    = -5
		hi    = 9
		draws = 500
	)
	rng := rand.New(rand.NewSource(seed))

	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	assert.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))
	assert.Equal(t, int64(-7), builder.ConstantWeightFn(-7)(rng))

	uni := builder.UniformWeightFn(lo, hi)
	assert.Equal(t, int64(lo), uni(nil), "nil rng yields lo")
	for i := 0; i < draws; i++ {
		w := uni(rng)
		assert.GreaterOrEqual(t, w, int64(lo))
		assert.LessOrEqual(t, w, int64(hi))
	}

	seq := builder.SequenceWeightFn(1, 2, 3)
	got := []int64{seq(nil), seq(nil), seq(nil), seq(nil)}
	assert.Equal(t, []int64{1, 2, 3, 1}, got)
}

// TestWeightFnConstructors verifies that WeightFn constructors panic on
// meaningless parameters.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.SequenceWeightFn() })
}
