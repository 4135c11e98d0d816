package histogram

import (
	"fmt"
	"math"
)

// Histogram is a dense frequency table with opts.Bins buckets per channel.
type Histogram struct {
	channels int
	opts     Options
	scale    float64 // Bins / (Max - Min)
	freq     []float64
	total    float64
}

// New returns an empty histogram for vectors of the given length.
// Returns ErrInvalidChannels, ErrInvalidBins, ErrInvalidRange or ErrTooManyBins.
func New(channels int, opts Options) (*Histogram, error) {
	if channels < 1 {
		return nil, ErrInvalidChannels
	}
	if opts.Bins < 1 {
		return nil, ErrInvalidBins
	}
	if math.IsNaN(opts.Min) || math.IsNaN(opts.Max) ||
		math.IsInf(opts.Min, 0) || math.IsInf(opts.Max, 0) || opts.Max <= opts.Min {
		return nil, ErrInvalidRange
	}
	size := 1
	for c := 0; c < channels; c++ {
		size *= opts.Bins
		if size > MaxDenseBins {
			return nil, fmt.Errorf("%w: %d^%d", ErrTooManyBins, opts.Bins, channels)
		}
	}

	return &Histogram{
		channels: channels,
		opts:     opts,
		scale:    float64(opts.Bins) / (opts.Max - opts.Min),
		freq:     make([]float64, size),
	}, nil
}

// Build returns a histogram holding every sample once (duplicates count
// twice). Zero samples yield an empty histogram.
func Build(channels int, samples [][]float64, opts Options) (*Histogram, error) {
	h, err := New(channels, opts)
	if err != nil {
		return nil, err
	}
	for i, v := range samples {
		if err := h.Add(v); err != nil {
			return nil, fmt.Errorf("sample %d: %w", i, err)
		}
	}

	return h, nil
}

// Add counts one sample.
func (h *Histogram) Add(v []float64) error {
	if len(v) != h.channels {
		return fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(v), h.channels)
	}
	h.freq[h.index(v)]++
	h.total++

	return nil
}

// Channels returns the vector length the histogram accepts.
func (h *Histogram) Channels() int { return h.channels }

// Options returns the binning configuration.
func (h *Histogram) Options() Options { return h.opts }

// Len returns the number of bins: Bins^channels.
func (h *Histogram) Len() int { return len(h.freq) }

// TotalFrequency returns the number of samples added.
func (h *Histogram) TotalFrequency() float64 { return h.total }

// Bin maps one value to its bucket in [0, Bins-1], clamping out-of-range
// values and sending NaN to bucket 0.
func (h *Histogram) Bin(value float64) int {
	if !(value > h.opts.Min) {
		return 0
	}
	f := (value - h.opts.Min) * h.scale
	if f >= float64(h.opts.Bins) {
		return h.opts.Bins - 1
	}

	return int(f)
}

// Index returns the flat bin index of v. Missing trailing channels count as
// bucket 0 and extra channels are ignored; use Add to validate lengths.
func (h *Histogram) Index(v []float64) int {
	return h.index(v)
}

func (h *Histogram) index(v []float64) int {
	idx, stride := 0, 1
	for c := 0; c < h.channels; c++ {
		if c < len(v) {
			idx += h.Bin(v[c]) * stride
		}
		stride *= h.opts.Bins
	}

	return idx
}

// Frequency returns the raw count of the bin containing v.
func (h *Histogram) Frequency(v []float64) float64 {
	return h.freq[h.index(v)]
}

// FrequencyAt returns the raw count of flat bin idx, or 0 when idx is out of range.
func (h *Histogram) FrequencyAt(idx int) float64 {
	if idx < 0 || idx >= len(h.freq) {
		return 0
	}

	return h.freq[idx]
}

// Likelihood returns Frequency(v)/TotalFrequency, in [0,1]. An empty
// histogram reports 0.
func (h *Histogram) Likelihood(v []float64) float64 {
	if h.total == 0 {
		return 0
	}

	return h.freq[h.index(v)] / h.total
}

// MinNonZeroLikelihood returns the smallest normalized non-zero bin, or 0
// for an empty histogram.
func (h *Histogram) MinNonZeroLikelihood() float64 {
	if h.total == 0 {
		return 0
	}
	low := math.Inf(1)
	for _, f := range h.freq {
		if f > 0 && f < low {
			low = f
		}
	}

	return low / h.total
}
