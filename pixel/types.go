package pixel

import "errors"

// Sentinel errors for pixel operations.
var (
	// ErrEmptyImage indicates a zero width or height.
	ErrEmptyImage = errors.New("pixel: image must have at least one row and one column")
	// ErrInvalidChannels indicates a channel count below one.
	ErrInvalidChannels = errors.New("pixel: channel count must be at least 1")
	// ErrDimensionMismatch indicates pixel vectors whose length disagrees with
	// the image channel count.
	ErrDimensionMismatch = errors.New("pixel: vector length does not match channel count")
)

// ColorChannels is the size of the leading "color" subspace that Metric
// weights against the remaining channels.
const ColorChannels = 3

// DefaultChannelWeight splits the squared distance evenly between the color
// channels and the remaining channels.
const DefaultChannelWeight = 0.5

// MinSigma is the floor returned by EstimateSigma. It keeps the boundary
// weight exp(-d²/2σ²) finite for uniform images and 1×1 images.
const MinSigma = 1e-6

// Vector holds one value per channel.
type Vector []float64

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	out := make(Vector, len(v))
	copy(out, v)

	return out
}
