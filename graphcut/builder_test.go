package graphcut_test

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcut/graphcut"
	"github.com/katalvlaran/graphcut/maxflow"
	"github.com/katalvlaran/graphcut/pixel"
)

func strip(t *testing.T, values ...float64) *pixel.Image {
	t.Helper()
	img, err := pixel.NewImage(len(values), 1, 1, values)
	require.NoError(t, err)

	return img
}

func TestBuildGraph_Structure(t *testing.T) {
	img := strip(t, 10, 200, 210)
	src := []image.Point{{X: 0, Y: 0}}
	snk := []image.Point{{X: 2, Y: 0}}

	fg, nm, err := graphcut.BuildGraph(img, src, snk, graphcut.DefaultParameters())
	require.NoError(t, err)
	require.Equal(t, 3, fg.NumNodes())
	require.Equal(t, 2, fg.NumEdges())
	require.Equal(t, maxflow.NodeID(1), nm.Node(1, 0))

	// The middle pixel falls into empty bins of both histograms.
	want := -graphcut.DefaultLambda * math.Log(graphcut.LikelihoodEpsilon)
	cs, ck := fg.TWeights(nm.Node(1, 0))
	require.InDelta(t, want, cs, 1e-12)
	require.InDelta(t, want, ck, 1e-12)

	// Scribbles are tied with a capacity exceeding every finite one combined.
	infS, zeroS := fg.TWeights(nm.Node(0, 0))
	zeroT, infT := fg.TWeights(nm.Node(2, 0))
	require.Zero(t, zeroS)
	require.Zero(t, zeroT)
	require.Equal(t, infS, infT)
	require.False(t, math.IsInf(infS, 0))
	require.Greater(t, infS, 2*want+2*2)
}

func TestBuildGraph_MinNonZeroPolicy(t *testing.T) {
	img := strip(t, 10, 200, 210)
	p := graphcut.DefaultParameters()
	p.ZeroLikelihood = graphcut.ZeroLikelihoodMinNonZero

	fg, nm, err := graphcut.BuildGraph(img, []image.Point{{X: 0}}, []image.Point{{X: 2}}, p)
	require.NoError(t, err)

	// One sample per histogram: the smallest non-zero bin is 1, so ln(1) = 0.
	cs, ck := fg.TWeights(nm.Node(1, 0))
	require.Zero(t, cs)
	require.Zero(t, ck)
}

func TestBuildGraph_HugeLambdaSaturates(t *testing.T) {
	p := graphcut.DefaultParameters()
	p.Lambda = 1e307
	img := strip(t, 10, 200, 210, 5)

	fg, nm, err := graphcut.BuildGraph(img, []image.Point{{X: 0}}, []image.Point{{X: 2}}, p)
	require.NoError(t, err)

	cs, ck := fg.TWeights(nm.Node(1, 0))
	require.Equal(t, graphcut.MaxCapacity, cs)
	require.Equal(t, graphcut.MaxCapacity, ck)

	hs, _ := fg.TWeights(nm.Node(0, 0))
	require.False(t, math.IsInf(hs, 0))
	require.GreaterOrEqual(t, hs, 2*graphcut.MaxCapacity)
}

func TestBuildGraph_Errors(t *testing.T) {
	img := strip(t, 1, 2, 3)
	p := graphcut.DefaultParameters()
	a := []image.Point{{X: 0}}
	b := []image.Point{{X: 2}}

	_, _, err := graphcut.BuildGraph(nil, a, b, p)
	require.ErrorIs(t, err, graphcut.ErrNoImage)

	_, _, err = graphcut.BuildGraph(img, nil, b, p)
	require.ErrorIs(t, err, graphcut.ErrInsufficientScribbles)

	_, _, err = graphcut.BuildGraph(img, a, nil, p)
	require.ErrorIs(t, err, graphcut.ErrInsufficientScribbles)

	_, _, err = graphcut.BuildGraph(img, []image.Point{{X: 3}}, b, p)
	require.ErrorIs(t, err, graphcut.ErrOutOfBounds)

	_, _, err = graphcut.BuildGraph(img, a, []image.Point{{X: 0, Y: -1}}, p)
	require.ErrorIs(t, err, graphcut.ErrOutOfBounds)

	_, _, err = graphcut.BuildGraph(img, []image.Point{{X: 1}, {X: 0}}, []image.Point{{X: 2}, {X: 1}}, p)
	require.ErrorIs(t, err, graphcut.ErrConflictingScribble)

	bad := p
	bad.Lambda = -1
	_, _, err = graphcut.BuildGraph(img, a, b, bad)
	require.ErrorIs(t, err, graphcut.ErrInvalidParameter)

	bad = p
	bad.HistogramMin, bad.HistogramMax = 10, 10
	_, _, err = graphcut.BuildGraph(img, a, b, bad)
	require.ErrorIs(t, err, graphcut.ErrInvalidParameter)
}

func TestParameters_Validate(t *testing.T) {
	require.NoError(t, graphcut.DefaultParameters().Validate())

	for _, mut := range []func(*graphcut.Parameters){
		func(p *graphcut.Parameters) { p.Lambda = 0 },
		func(p *graphcut.Parameters) { p.Lambda = math.NaN() },
		func(p *graphcut.Parameters) { p.Lambda = math.Inf(1) },
		func(p *graphcut.Parameters) { p.Bins = 0 },
		func(p *graphcut.Parameters) { p.ChannelWeight = 1.5 },
		func(p *graphcut.Parameters) { p.ChannelWeight = math.NaN() },
		func(p *graphcut.Parameters) { p.Algorithm = maxflow.Algorithm(9) },
		func(p *graphcut.Parameters) { p.ZeroLikelihood = graphcut.ZeroLikelihood(9) },
	} {
		p := graphcut.DefaultParameters()
		mut(&p)
		require.ErrorIs(t, p.Validate(), graphcut.ErrInvalidParameter)
	}
}

func TestParseZeroLikelihood(t *testing.T) {
	z, err := graphcut.ParseZeroLikelihood("min-nonzero")
	require.NoError(t, err)
	require.Equal(t, graphcut.ZeroLikelihoodMinNonZero, z)
	require.Equal(t, "min-nonzero", z.String())

	_, err = graphcut.ParseZeroLikelihood("zero")
	require.ErrorIs(t, err, graphcut.ErrInvalidParameter)
}
