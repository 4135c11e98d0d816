package histogram

import "errors"

// Sentinel errors for histogram construction.
var (
	// ErrInvalidBins indicates fewer than one bin per channel.
	ErrInvalidBins = errors.New("histogram: bins must be at least 1")
	// ErrInvalidRange indicates Max ≤ Min or a non-finite bound.
	ErrInvalidRange = errors.New("histogram: range must satisfy Min < Max with finite bounds")
	// ErrInvalidChannels indicates fewer than one channel.
	ErrInvalidChannels = errors.New("histogram: channel count must be at least 1")
	// ErrTooManyBins indicates Bins^channels exceeds MaxDenseBins.
	ErrTooManyBins = errors.New("histogram: too many bins for a dense table")
	// ErrDimensionMismatch indicates a sample whose length differs from the channel count.
	ErrDimensionMismatch = errors.New("histogram: sample length does not match channel count")
)

// MaxDenseBins caps the number of cells of one dense table.
const MaxDenseBins = 1 << 24

// Options configures the binning of every channel.
//   - Bins: buckets per channel (default 10).
//   - Min, Max: value range covered by the buckets (default [0,255]).
type Options struct {
	Bins     int
	Min, Max float64
}

// DefaultOptions returns 10 bins over [0,255].
func DefaultOptions() Options {
	return Options{Bins: 10, Min: 0, Max: 255}
}
