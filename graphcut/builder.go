package graphcut

import (
	"fmt"
	"image"
	"math"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphcut/grid"
	"github.com/katalvlaran/graphcut/histogram"
	"github.com/katalvlaran/graphcut/maxflow"
	"github.com/katalvlaran/graphcut/pixel"
)

// BuildGraph constructs the flow network of img for the given scribbles.
//
// Steps:
//  1. Validate parameters and scribbles (bounds, overlap, non-empty).
//  2. Add one node per pixel (row-major) and an n-edge pair of capacity
//     exp(-d²/2σ²) to the right and bottom neighbor of every pixel.
//  3. Build foreground/background histograms from the scribbled pixels.
//  4. Give every unscribbled pixel t-edges -λ·ln(L_bg) to SOURCE and
//     -λ·ln(L_fg) to SINK, substituting empty bins per p.ZeroLikelihood.
//  5. Tie scribbled pixels to their terminal with 2·Σcap+1, more than any
//     finite cut can cost.
//
// Returns ErrNoImage, ErrInsufficientScribbles, ErrOutOfBounds,
// ErrConflictingScribble or ErrInvalidParameter.
//
// Complexity: O(W·H·C) time, O(W·H + Bins^C) memory.
func BuildGraph(img *pixel.Image, sources, sinks []image.Point, p Parameters) (*maxflow.Graph, *grid.NodeMap, error) {
	return buildGraph(img, sources, sinks, p, zerolog.Nop())
}

func buildGraph(img *pixel.Image, sources, sinks []image.Point, p Parameters, log zerolog.Logger) (*maxflow.Graph, *grid.NodeMap, error) {
	if img == nil {
		return nil, nil, ErrNoImage
	}
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	g, err := checkScribbles(img, sources, sinks)
	if err != nil {
		return nil, nil, err
	}

	fg := maxflow.NewGraph(g.Len(), g.PairCount())
	nm := grid.NewNodeMap(fg, g)

	metric := pixel.NewMetric(img.Channels(), p.ChannelWeight)
	sigma := pixel.EstimateSigma(img, metric)
	twoSigmaSq := 2 * sigma * sigma

	var total float64 // sum of every finite capacity in the graph
	var edgeErr error
	g.ForEachForwardPair(func(a, b image.Point) {
		if edgeErr != nil {
			return
		}
		d := metric.Difference(img.At(a.X, a.Y), img.At(b.X, b.Y))
		w := math.Exp(-d * d / twoSigmaSq)
		edgeErr = fg.AddEdge(nm.Node(a.X, a.Y), nm.Node(b.X, b.Y), w, w)
		total += 2 * w
	})
	if edgeErr != nil {
		return nil, nil, edgeErr
	}

	fgHist, err := histogram.New(img.Channels(), p.histogramOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
	}
	bgHist, _ := histogram.New(img.Channels(), p.histogramOptions())
	for _, v := range img.Samples(sources) {
		_ = fgHist.Add(v)
	}
	for _, v := range img.Samples(sinks) {
		_ = bgHist.Add(v)
	}
	fgFloor := zeroSubstitute(fgHist, p.ZeroLikelihood)
	bgFloor := zeroSubstitute(bgHist, p.ZeroLikelihood)

	hard := make([]bool, g.Len())
	for _, s := range sources {
		hard[g.Index(s.X, s.Y)] = true
	}
	for _, s := range sinks {
		hard[g.Index(s.X, s.Y)] = true
	}

	for i := 0; i < g.Len(); i++ {
		if hard[i] {
			continue
		}
		v := img.AtIndex(i)
		capSource := saturate(-p.Lambda * math.Log(likelihood(bgHist, v, bgFloor)))
		capSink := saturate(-p.Lambda * math.Log(likelihood(fgHist, v, fgFloor)))
		if err := fg.AddTWeights(nm.NodeAt(i), capSource, capSink); err != nil {
			return nil, nil, err
		}
		total = saturate(total + capSource + capSink)
	}

	infinity := 2*total + 1
	for _, s := range sources {
		if err := fg.SetTWeights(nm.Node(s.X, s.Y), infinity, 0); err != nil {
			return nil, nil, err
		}
	}
	for _, s := range sinks {
		if err := fg.SetTWeights(nm.Node(s.X, s.Y), 0, infinity); err != nil {
			return nil, nil, err
		}
	}

	log.Debug().
		Str("component", "builder").
		Int("width", g.Width).
		Int("height", g.Height).
		Int("channels", img.Channels()).
		Float64("sigma", sigma).
		Int("nodes", fg.NumNodes()).
		Int("edges", fg.NumEdges()).
		Float64("infinity", infinity).
		Msg("graph built")

	return fg, nm, nil
}

// checkScribbles validates both lists against img and returns its grid.
func checkScribbles(img *pixel.Image, sources, sinks []image.Point) (grid.Grid, error) {
	if len(sources) == 0 || len(sinks) == 0 {
		return grid.Grid{}, fmt.Errorf("%w: %d sources, %d sinks", ErrInsufficientScribbles, len(sources), len(sinks))
	}
	g, err := grid.New(img.Width(), img.Height())
	if err != nil {
		return grid.Grid{}, err
	}
	if err := g.Validate(sources); err != nil {
		return grid.Grid{}, fmt.Errorf("%w: source %w", ErrOutOfBounds, err)
	}
	if err := g.Validate(sinks); err != nil {
		return grid.Grid{}, fmt.Errorf("%w: sink %w", ErrOutOfBounds, err)
	}
	if p, ok := g.Overlap(sources, sinks); ok {
		return grid.Grid{}, fmt.Errorf("%w: (%d,%d)", ErrConflictingScribble, p.X, p.Y)
	}

	return g, nil
}

// zeroSubstitute returns the value that replaces empty-bin likelihoods of h.
func zeroSubstitute(h *histogram.Histogram, policy ZeroLikelihood) float64 {
	if policy == ZeroLikelihoodMinNonZero {
		if m := h.MinNonZeroLikelihood(); m > 0 {
			return m
		}
	}

	return LikelihoodEpsilon
}

func likelihood(h *histogram.Histogram, v pixel.Vector, floor float64) float64 {
	if l := h.Likelihood(v); l > 0 {
		return l
	}

	return floor
}

// MaxCapacity bounds every t-edge capacity and the running capacity sum, so
// the hard-constraint weight 2·Σcap+1 and every flow stay finite for any λ.
const MaxCapacity = math.MaxFloat64 / 16

func saturate(c float64) float64 {
	if c > MaxCapacity {
		return MaxCapacity
	}

	return c
}
