// Package pixel provides the per-pixel numeric model used by graph-cut
// segmentation: a dynamically sized pixel Vector, an immutable Image grid of
// such vectors, the Metric that measures how different two pixels are, and
// the noise (σ) estimate that scales boundary weights.
//
// What:
//
//   - Image stores width×height pixels with a fixed channel count
//     (1 = grayscale, 3 = color, N = multi-modal such as RGB+depth+intensity)
//     in one flat row-major []float64.
//   - Metric.Difference returns the Euclidean distance between two pixels.
//     With more than three channels the leading "color" triple and the
//     remaining channels are weighted against each other by ChannelWeight.
//   - EstimateSigma averages the Metric over every right and bottom neighbor
//     pair and never returns less than MinSigma.
//
// Complexity:
//
//   - NewImage, EstimateSigma: O(W·H·C) time.
//   - Metric.Difference:       O(C) time, no allocations.
//
// Errors:
//
//   - ErrEmptyImage:         width or height is zero.
//   - ErrDimensionMismatch:  pixel data length disagrees with width·height·channels,
//     or two vectors of different length reached the Metric (the latter panics,
//     it is a programming error).
//   - ErrInvalidChannels:    channel count < 1.
package pixel
