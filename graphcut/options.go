package graphcut

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphcut/maxflow"
)

// Option configures an Engine at construction. Out-of-range values are
// replaced by their defaults; use the setters to get an error instead.
type Option func(e *Engine)

// WithLambda sets the regional term weight λ.
func WithLambda(lambda float64) Option {
	return func(e *Engine) { e.params.Lambda = lambda }
}

// WithBins sets the histogram bins per channel.
func WithBins(bins int) Option {
	return func(e *Engine) { e.params.Bins = bins }
}

// WithChannelWeight sets the color share of the pixel difference for images
// with more than three channels.
func WithChannelWeight(w float64) Option {
	return func(e *Engine) { e.params.ChannelWeight = w }
}

// WithAlgorithm selects the max-flow method.
func WithAlgorithm(a maxflow.Algorithm) Option {
	return func(e *Engine) { e.params.Algorithm = a }
}

// WithZeroLikelihood selects the empty-bin substitution policy.
func WithZeroLikelihood(z ZeroLikelihood) Option {
	return func(e *Engine) { e.params.ZeroLikelihood = z }
}

// WithHistogramRange sets the value range covered by the histograms.
func WithHistogramRange(lo, hi float64) Option {
	return func(e *Engine) {
		e.params.HistogramMin = lo
		e.params.HistogramMax = hi
	}
}

// WithLogger routes Debug events of the engine, builder and solver to l.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// normalize replaces out-of-range parameters with defaults.
func (p *Parameters) normalize() {
	def := DefaultParameters()
	if checkLambda(p.Lambda) != nil {
		p.Lambda = def.Lambda
	}
	if checkBins(p.Bins) != nil {
		p.Bins = def.Bins
	}
	if checkChannelWeight(p.ChannelWeight) != nil {
		p.ChannelWeight = def.ChannelWeight
	}
	if p.Algorithm != maxflow.BoykovKolmogorov && p.Algorithm != maxflow.Dinic {
		p.Algorithm = def.Algorithm
	}
	if p.ZeroLikelihood != ZeroLikelihoodEpsilon && p.ZeroLikelihood != ZeroLikelihoodMinNonZero {
		p.ZeroLikelihood = def.ZeroLikelihood
	}
	if p.Validate() != nil {
		p.HistogramMin, p.HistogramMax = def.HistogramMin, def.HistogramMax
	}
	if p.Validate() != nil {
		p.Bins = def.Bins
	}
}
