package graphcut

import (
	"image"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphcut/maxflow"
	"github.com/katalvlaran/graphcut/pixel"
)

// Engine holds an image, two scribble lists and the parameters, and produces
// a foreground mask on request.
//
// Lifecycle: Uninitialized → SetImage → Ready → PerformSegmentation →
// Segmented; SetImage returns to Ready from any state. Setters never trigger
// recomputation. An Engine is not safe for concurrent use.
type Engine struct {
	params Parameters
	logger zerolog.Logger

	img     *pixel.Image
	sources []image.Point
	sinks   []image.Point

	mask  *Mask
	state State
	flow  float64
}

// NewEngine returns an Uninitialized engine with DefaultParameters adjusted by opts.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		params: DefaultParameters(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.params.normalize()

	return e
}

// SetImage replaces the image, resets the mask to all background and moves
// the engine to Ready. A nil image returns the engine to Uninitialized.
// Scribbles are kept.
func (e *Engine) SetImage(img *pixel.Image) {
	e.img = img
	e.flow = 0
	if img == nil {
		e.mask = nil
		e.state = Uninitialized
		return
	}
	e.mask = NewMask(img.Width(), img.Height())
	e.state = Ready
}

// SetSources replaces the foreground scribbles with a copy of points.
func (e *Engine) SetSources(points []image.Point) {
	e.sources = slices.Clone(points)
}

// SetSinks replaces the background scribbles with a copy of points.
func (e *Engine) SetSinks(points []image.Point) {
	e.sinks = slices.Clone(points)
}

// SetLambda sets λ. Returns ErrInvalidParameter unless 0 < λ < +Inf.
func (e *Engine) SetLambda(lambda float64) error {
	if err := checkLambda(lambda); err != nil {
		return err
	}
	e.params.Lambda = lambda

	return nil
}

// SetNumberOfHistogramBins sets the bins per channel. Returns
// ErrInvalidParameter for bins < 1.
func (e *Engine) SetNumberOfHistogramBins(bins int) error {
	if err := checkBins(bins); err != nil {
		return err
	}
	e.params.Bins = bins

	return nil
}

// SetChannelWeight sets the color share of the pixel difference. Returns
// ErrInvalidParameter outside [0,1].
func (e *Engine) SetChannelWeight(w float64) error {
	if err := checkChannelWeight(w); err != nil {
		return err
	}
	e.params.ChannelWeight = w

	return nil
}

// SetParameters replaces all parameters at once after validating them.
func (e *Engine) SetParameters(p Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	e.params = p

	return nil
}

// Sources returns a copy of the foreground scribbles.
func (e *Engine) Sources() []image.Point { return slices.Clone(e.sources) }

// Sinks returns a copy of the background scribbles.
func (e *Engine) Sinks() []image.Point { return slices.Clone(e.sinks) }

// Lambda returns λ.
func (e *Engine) Lambda() float64 { return e.params.Lambda }

// NumberOfHistogramBins returns the bins per channel.
func (e *Engine) NumberOfHistogramBins() int { return e.params.Bins }

// ChannelWeight returns the color share of the pixel difference.
func (e *Engine) ChannelWeight() float64 { return e.params.ChannelWeight }

// Parameters returns the current parameters.
func (e *Engine) Parameters() Parameters { return e.params }

// State returns the lifecycle stage.
func (e *Engine) State() State { return e.state }

// Image returns the current image, or nil.
func (e *Engine) Image() *pixel.Image { return e.img }

// Flow returns the max-flow value of the last successful run.
func (e *Engine) Flow() float64 { return e.flow }

// SegmentMask returns the engine-owned mask: all background until the first
// successful run, nil while Uninitialized. It is overwritten by the next
// PerformSegmentation; Clone it to keep a result.
func (e *Engine) SegmentMask() *Mask { return e.mask }

// PerformSegmentation builds the flow network for the current image and
// scribbles, computes the minimum cut and writes it into the mask.
//
// Returns ErrNoImage, ErrInsufficientScribbles, ErrOutOfBounds,
// ErrConflictingScribble or ErrInvalidParameter; on any error the state and
// the mask are left untouched.
func (e *Engine) PerformSegmentation() error {
	if e.state == Uninitialized {
		return ErrNoImage
	}
	start := time.Now()

	fg, nm, err := buildGraph(e.img, e.sources, e.sinks, e.params, e.logger)
	if err != nil {
		e.logger.Debug().Str("component", "engine").Err(err).Msg("segmentation rejected")
		return err
	}
	flow, err := fg.Maxflow(maxflow.Options{Algorithm: e.params.Algorithm, Logger: &e.logger})
	if err != nil {
		return err
	}

	for i := 0; i < nm.Len(); i++ {
		x, y := nm.Coordinate(i)
		e.mask.Set(x, y, fg.WhatSegment(nm.NodeAt(i)) == maxflow.SourceSide)
	}
	e.flow = flow
	e.state = Segmented

	e.logger.Debug().
		Str("component", "engine").
		Float64("flow", flow).
		Int("foreground", e.mask.CountForeground()).
		Dur("duration", time.Since(start)).
		Msg("segmentation done")

	return nil
}
