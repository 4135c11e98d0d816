package graphcut

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/graphcut/histogram"
	"github.com/katalvlaran/graphcut/maxflow"
	"github.com/katalvlaran/graphcut/pixel"
)

// Sentinel errors for segmentation.
var (
	// ErrNoImage is returned when segmentation is requested before SetImage.
	ErrNoImage = errors.New("graphcut: no image set")
	// ErrInsufficientScribbles is returned when the source or sink list is empty.
	ErrInsufficientScribbles = errors.New("graphcut: both source and sink scribbles are required")
	// ErrOutOfBounds is returned for a scribble outside the image.
	ErrOutOfBounds = errors.New("graphcut: scribble outside the image")
	// ErrConflictingScribble is returned when one pixel is both source and sink.
	ErrConflictingScribble = errors.New("graphcut: pixel marked as both source and sink")
	// ErrInvalidParameter is returned by setters and BuildGraph for values out of range.
	ErrInvalidParameter = errors.New("graphcut: invalid parameter")
)

// Defaults used by NewEngine and DefaultParameters.
const (
	DefaultLambda = 0.01
	DefaultBins   = 10

	// LikelihoodEpsilon replaces a zero likelihood before its logarithm is taken.
	LikelihoodEpsilon = 1e-10
)

// State is the lifecycle stage of an Engine.
type State int

const (
	// Uninitialized: no image yet.
	Uninitialized State = iota
	// Ready: an image is set, no segmentation since.
	Ready
	// Segmented: the mask holds the result of the last run.
	Segmented
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Segmented:
		return "segmented"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ZeroLikelihood selects the substitute for a pixel whose histogram bin is empty.
type ZeroLikelihood int

const (
	// ZeroLikelihoodEpsilon substitutes LikelihoodEpsilon.
	ZeroLikelihoodEpsilon ZeroLikelihood = iota
	// ZeroLikelihoodMinNonZero substitutes the smallest non-zero normalized
	// bin of the same histogram, or LikelihoodEpsilon if it is empty.
	ZeroLikelihoodMinNonZero
)

func (z ZeroLikelihood) String() string {
	switch z {
	case ZeroLikelihoodEpsilon:
		return "epsilon"
	case ZeroLikelihoodMinNonZero:
		return "min-nonzero"
	default:
		return fmt.Sprintf("ZeroLikelihood(%d)", int(z))
	}
}

// ParseZeroLikelihood maps "epsilon" and "min-nonzero" to a policy.
func ParseZeroLikelihood(s string) (ZeroLikelihood, error) {
	switch s {
	case "epsilon":
		return ZeroLikelihoodEpsilon, nil
	case "min-nonzero":
		return ZeroLikelihoodMinNonZero, nil
	default:
		return 0, fmt.Errorf("%w: zero-likelihood policy %q", ErrInvalidParameter, s)
	}
}

// Parameters tune the energy and the solver.
//   - Lambda:        weight of the regional (histogram) term, > 0.
//   - Bins:          histogram bins per channel, ≥ 1.
//   - ChannelWeight: share of the first three channels in the pixel
//     difference of images with more than three channels, in [0,1].
//   - Algorithm:     max-flow method.
//   - ZeroLikelihood: substitute for empty histogram bins.
//   - HistogramMin, HistogramMax: value range covered by the histograms.
type Parameters struct {
	Lambda         float64
	Bins           int
	ChannelWeight  float64
	Algorithm      maxflow.Algorithm
	ZeroLikelihood ZeroLikelihood
	HistogramMin   float64
	HistogramMax   float64
}

// DefaultParameters returns λ=0.01, 10 bins, channel weight 0.5,
// Boykov–Kolmogorov, epsilon substitution, range [0,255].
func DefaultParameters() Parameters {
	hist := histogram.DefaultOptions()

	return Parameters{
		Lambda:         DefaultLambda,
		Bins:           DefaultBins,
		ChannelWeight:  pixel.DefaultChannelWeight,
		Algorithm:      maxflow.BoykovKolmogorov,
		ZeroLikelihood: ZeroLikelihoodEpsilon,
		HistogramMin:   hist.Min,
		HistogramMax:   hist.Max,
	}
}

// Validate returns an error wrapping ErrInvalidParameter for the first field
// out of range, or nil.
func (p Parameters) Validate() error {
	if err := checkLambda(p.Lambda); err != nil {
		return err
	}
	if err := checkBins(p.Bins); err != nil {
		return err
	}
	if err := checkChannelWeight(p.ChannelWeight); err != nil {
		return err
	}
	if p.Algorithm != maxflow.BoykovKolmogorov && p.Algorithm != maxflow.Dinic {
		return fmt.Errorf("%w: algorithm %v", ErrInvalidParameter, p.Algorithm)
	}
	if p.ZeroLikelihood != ZeroLikelihoodEpsilon && p.ZeroLikelihood != ZeroLikelihoodMinNonZero {
		return fmt.Errorf("%w: zero-likelihood policy %v", ErrInvalidParameter, p.ZeroLikelihood)
	}
	if _, err := histogram.New(1, p.histogramOptions()); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}

	return nil
}

func (p Parameters) histogramOptions() histogram.Options {
	return histogram.Options{Bins: p.Bins, Min: p.HistogramMin, Max: p.HistogramMax}
}

func checkLambda(l float64) error {
	if !(l > 0) || math.IsInf(l, 1) {
		return fmt.Errorf("%w: lambda must be positive and finite, got %g", ErrInvalidParameter, l)
	}

	return nil
}

func checkBins(b int) error {
	if b < 1 {
		return fmt.Errorf("%w: bins must be at least 1, got %d", ErrInvalidParameter, b)
	}

	return nil
}

func checkChannelWeight(w float64) error {
	if !(w >= 0 && w <= 1) {
		return fmt.Errorf("%w: channel weight must be in [0,1], got %g", ErrInvalidParameter, w)
	}

	return nil
}
