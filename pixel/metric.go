package pixel

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Metric measures the difference between two pixel vectors of one image.
//
// For up to three channels Difference is the plain Euclidean distance.
// For more channels the first ColorChannels values jointly contribute
// ChannelWeight of the squared distance and the remaining channels jointly
// contribute 1-ChannelWeight, each group split evenly among its members:
//
//	d² = w/3·Σ_{i<3}(aᵢ-bᵢ)² + (1-w)/(n-3)·Σ_{i≥3}(aᵢ-bᵢ)²
type Metric struct {
	Channels      int
	ChannelWeight float64
}

// NewMetric returns a Metric for vectors of the given length. channelWeight
// is clamped to [0,1]; NaN falls back to DefaultChannelWeight.
func NewMetric(channels int, channelWeight float64) Metric {
	switch {
	case math.IsNaN(channelWeight):
		channelWeight = DefaultChannelWeight
	case channelWeight < 0:
		channelWeight = 0
	case channelWeight > 1:
		channelWeight = 1
	}

	return Metric{Channels: channels, ChannelWeight: channelWeight}
}

// Difference returns the (weighted) Euclidean distance between a and b.
// Both vectors must have exactly m.Channels values; anything else is a
// programming error and panics with an error wrapping ErrDimensionMismatch.
func (m Metric) Difference(a, b Vector) float64 {
	if len(a) != m.Channels || len(b) != m.Channels {
		panic(fmt.Errorf("%w: got %d and %d, want %d", ErrDimensionMismatch, len(a), len(b), m.Channels))
	}
	if m.Channels <= ColorChannels {
		return floats.Distance(a, b, 2)
	}

	color := floats.Distance(a[:ColorChannels], b[:ColorChannels], 2)
	rest := floats.Distance(a[ColorChannels:], b[ColorChannels:], 2)
	sq := m.ChannelWeight/ColorChannels*color*color +
		(1-m.ChannelWeight)/float64(m.Channels-ColorChannels)*rest*rest

	return math.Sqrt(sq)
}
