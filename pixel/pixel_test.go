package pixel_test

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcut/pixel"
)

func TestNewImage_Validation(t *testing.T) {
	_, err := pixel.NewImage(0, 3, 1, nil)
	require.ErrorIs(t, err, pixel.ErrEmptyImage)

	_, err = pixel.NewImage(2, 2, 0, nil)
	require.ErrorIs(t, err, pixel.ErrInvalidChannels)

	_, err = pixel.NewImage(2, 2, 3, make([]float64, 11))
	require.ErrorIs(t, err, pixel.ErrDimensionMismatch)

	img, err := pixel.NewImage(2, 1, 3, []float64{1, 2, 3, 4, 5, 6})
	require.NoError(t, err)
	assert.Equal(t, 2, img.Width())
	assert.Equal(t, 1, img.Height())
	assert.Equal(t, 3, img.Channels())
	assert.Equal(t, pixel.Vector{4, 5, 6}, img.At(1, 0))
	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())
}

func TestNewImage_CopiesInput(t *testing.T) {
	data := []float64{1, 2}
	img, err := pixel.NewImage(2, 1, 1, data)
	require.NoError(t, err)
	data[0] = 99
	assert.Equal(t, 1.0, img.At(0, 0)[0])
}

func TestFromRows(t *testing.T) {
	img, err := pixel.FromRows([][]pixel.Vector{
		{{1, 1}, {2, 2}},
		{{3, 3}, {4, 4}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, img.Channels())
	assert.Equal(t, pixel.Vector{3, 3}, img.At(0, 1))
	assert.Equal(t, pixel.Vector{4, 4}, img.AtIndex(3))

	_, err = pixel.FromRows([][]pixel.Vector{{{1, 1}, {2}}})
	require.ErrorIs(t, err, pixel.ErrDimensionMismatch)

	_, err = pixel.FromRows([][]pixel.Vector{{{1}}, {}})
	require.ErrorIs(t, err, pixel.ErrDimensionMismatch)

	_, err = pixel.FromRows(nil)
	require.ErrorIs(t, err, pixel.ErrEmptyImage)
}

func TestSamples_KeepsDuplicates(t *testing.T) {
	img, err := pixel.FromGray([][]float64{{10, 20, 30}})
	require.NoError(t, err)

	got := img.Samples([]image.Point{{X: 0, Y: 0}, {X: 0, Y: 0}, {X: 2, Y: 0}, {X: 5, Y: 0}})
	require.Len(t, got, 3)
	assert.Equal(t, 10.0, got[0][0])
	assert.Equal(t, 10.0, got[1][0])
	assert.Equal(t, 30.0, got[2][0])
}

func TestMetric_Euclidean(t *testing.T) {
	m := pixel.NewMetric(3, pixel.DefaultChannelWeight)
	assert.InDelta(t, 5.0, m.Difference(pixel.Vector{0, 3, 4}, pixel.Vector{0, 0, 0}), 1e-12)

	gray := pixel.NewMetric(1, pixel.DefaultChannelWeight)
	assert.InDelta(t, 190.0, gray.Difference(pixel.Vector{10}, pixel.Vector{200}), 1e-12)
}

func TestMetric_ChannelWeight(t *testing.T) {
	a := pixel.Vector{0, 0, 0, 0, 0}
	b := pixel.Vector{3, 3, 3, 4, 4}

	// color part: 27 squared, depth part: 32 squared.
	half := pixel.NewMetric(5, 0.5)
	want := math.Sqrt(0.5/3*27 + 0.5/2*32)
	assert.InDelta(t, want, half.Difference(a, b), 1e-12)

	colorOnly := pixel.NewMetric(5, 1)
	assert.InDelta(t, 3.0, colorOnly.Difference(a, b), 1e-12)

	restOnly := pixel.NewMetric(5, 0)
	assert.InDelta(t, 4.0, restOnly.Difference(a, b), 1e-12)
}

func TestNewMetric_ClampsWeight(t *testing.T) {
	assert.Equal(t, 1.0, pixel.NewMetric(4, 3).ChannelWeight)
	assert.Equal(t, 0.0, pixel.NewMetric(4, -1).ChannelWeight)
	assert.Equal(t, pixel.DefaultChannelWeight, pixel.NewMetric(4, math.NaN()).ChannelWeight)
}

func TestMetric_MismatchPanics(t *testing.T) {
	m := pixel.NewMetric(3, pixel.DefaultChannelWeight)
	assert.Panics(t, func() { m.Difference(pixel.Vector{1, 2}, pixel.Vector{1, 2, 3}) })
}

func TestEstimateSigma(t *testing.T) {
	img, err := pixel.FromGray([][]float64{{10, 200, 210}})
	require.NoError(t, err)
	m := pixel.NewMetric(1, pixel.DefaultChannelWeight)
	assert.InDelta(t, 100.0, pixel.EstimateSigma(img, m), 1e-9)

	// 2×2: pairs (0,0)-(1,0)=1, (0,0)-(0,1)=2, (1,0)-(1,1)=2, (0,1)-(1,1)=1.
	square, err := pixel.FromGray([][]float64{{0, 1}, {2, 3}})
	require.NoError(t, err)
	assert.InDelta(t, 1.5, pixel.EstimateSigma(square, m), 1e-9)
}

func TestEstimateSigma_Degenerate(t *testing.T) {
	m := pixel.NewMetric(1, pixel.DefaultChannelWeight)

	single, err := pixel.FromGray([][]float64{{42}})
	require.NoError(t, err)
	assert.Equal(t, pixel.MinSigma, pixel.EstimateSigma(single, m))

	uniform, err := pixel.FromGray([][]float64{{7, 7}, {7, 7}})
	require.NoError(t, err)
	assert.Equal(t, pixel.MinSigma, pixel.EstimateSigma(uniform, m))
}
