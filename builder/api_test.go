package builder_test

import (
	"testing"

	"github.com/katalvlaran/parmst/builder"
	"github.com/katalvlaran/parmst/core"
	"github.com/katalvlaran/parmst/disjointset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// components counts connected components through a disjoint-set replay.
func components(g *core.Graph) int {
	ds := disjointset.New(g.VertexCount())
	for _, e := range g.Edges() {
		ds.Merge(e.From, e.To)
	}

	return ds.Count()
}

func TestRandom_ConnectedNoLoops(t *testing.T) {
	g, err := builder.Random(50, 200, builder.WithSeed(1), builder.WithMaxWeight(100))
	require.NoError(t, err)

	assert.Equal(t, uint32(50), g.VertexCount())
	assert.Equal(t, 49+200, g.EdgeCount())
	assert.Equal(t, 1, components(g))
	for _, e := range g.Edges() {
		assert.NotEqual(t, e.From, e.To, "self-loop %s", e)
		assert.GreaterOrEqual(t, e.Weight, uint32(1))
		assert.LessOrEqual(t, e.Weight, uint32(100))
	}
}

func TestRandom_Deterministic(t *testing.T) {
	a, err := builder.Random(30, 60, builder.WithSeed(99))
	require.NoError(t, err)
	b, err := builder.Random(30, 60, builder.WithSeed(99))
	require.NoError(t, err)
	assert.Equal(t, a.Edges(), b.Edges())
}

func TestRandom_Validation(t *testing.T) {
	_, err := builder.Random(10, 5)
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.Random(0, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Random(1, 1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	g, err := builder.Random(1, 0, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
}

func TestComponents_NoCrossingEdges(t *testing.T) {
	g, err := builder.Components([]int{4, 1, 6}, 5, builder.WithSeed(3))
	require.NoError(t, err)

	assert.Equal(t, uint32(11), g.VertexCount())
	assert.Equal(t, 3, components(g))

	owner := func(v uint32) int {
		switch {
		case v < 4:
			return 0
		case v < 5:
			return 1
		default:
			return 2
		}
	}
	for _, e := range g.Edges() {
		assert.Equal(t, owner(e.From), owner(e.To), "edge %s crosses components", e)
	}
}

func TestComponents_Validation(t *testing.T) {
	_, err := builder.Components([]int{3, 0}, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.Components(nil, 0, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	// negative extra is rejected like in Random, not clamped to zero
	_, err = builder.Components([]int{3, 2}, -1, builder.WithSeed(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	assert.ErrorContains(t, err, "extra=-1")

	// single-vertex components still ignore extra
	g, err := builder.Components([]int{1}, 5, builder.WithSeed(1))
	require.NoError(t, err)
	assert.Zero(t, g.EdgeCount())
}

func TestMatching(t *testing.T) {
	g, err := builder.Matching(4, builder.WithSeed(1), builder.WithWeightFn(builder.ConstantWeight(7)))
	require.NoError(t, err)

	assert.Equal(t, uint32(8), g.VertexCount())
	assert.Equal(t, []core.Edge{{0, 1, 7}, {2, 3, 7}, {4, 5, 7}, {6, 7, 7}}, g.Edges())
}

func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithMaxWeight(0) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.UniformWeight(5, 4) })
}
