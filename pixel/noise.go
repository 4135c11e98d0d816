package pixel

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/graphcut/grid"
)

// EstimateSigma estimates the global noise scale σ of img as the mean
// m.Difference between every pixel and its right and bottom neighbors.
//
// Degenerate inputs never produce zero, NaN or Inf: an image without any
// neighbor pair (1×1) or with a mean below MinSigma (uniform image) yields
// MinSigma.
//
// Complexity: O(W·H·C) time, O(W·H) memory for the difference samples.
func EstimateSigma(img *Image, m Metric) float64 {
	diffs := make([]float64, 0, 2*img.Len())
	for y := 0; y < img.height; y++ {
		for x := 0; x < img.width; x++ {
			center := img.At(x, y)
			for _, d := range grid.ForwardOffsets {
				nx, ny := x+d[0], y+d[1]
				if !img.InBounds(nx, ny) {
					continue
				}
				diffs = append(diffs, m.Difference(center, img.At(nx, ny)))
			}
		}
	}
	if len(diffs) == 0 {
		return MinSigma
	}
	sigma := stat.Mean(diffs, nil)
	if math.IsNaN(sigma) || sigma < MinSigma {
		return MinSigma
	}

	return sigma
}
