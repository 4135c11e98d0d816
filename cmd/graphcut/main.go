// Command graphcut segments an image from foreground and background scribble
// masks and writes the binary result.
//
// Usage:
//
//	graphcut [flags] <image> <foreground-mask> <background-mask> <output-mask>
//
// Exit codes: 0 success, 1 I/O or internal failure, 2 usage error,
// 3 missing or conflicting scribbles.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/graphcut/graphcut"
	"github.com/katalvlaran/graphcut/imageio"
	"github.com/katalvlaran/graphcut/maxflow"
	"github.com/katalvlaran/graphcut/pixel"
)

const (
	exitOK = iota
	exitFailure
	exitUsage
	exitScribbles
)

type config struct {
	lambda         float64
	bins           int
	channelWeight  float64
	mode           string
	extra          string
	algorithm      string
	zeroLikelihood string
	composite      string
	logLevel       string
	logJSON        bool
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("graphcut", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage: graphcut [flags] <image> <foreground-mask> <background-mask> <output-mask>")
		fs.PrintDefaults()
	}

	var cfg config
	fs.Float64Var(&cfg.lambda, "lambda", graphcut.DefaultLambda, "weight of the histogram term")
	fs.IntVar(&cfg.bins, "bins", graphcut.DefaultBins, "histogram bins per channel")
	fs.Float64Var(&cfg.channelWeight, "channel-weight", pixel.DefaultChannelWeight, "color share of the pixel difference for images with more than 3 channels")
	fs.StringVar(&cfg.mode, "mode", "auto", "color mode of the main image: auto, gray or rgb")
	fs.StringVar(&cfg.extra, "extra", "", "comma separated images stacked as extra channels (e.g. depth,intensity)")
	fs.StringVar(&cfg.algorithm, "algorithm", "bk", "max-flow algorithm: bk or dinic")
	fs.StringVar(&cfg.zeroLikelihood, "zero-likelihood", "epsilon", "empty bin substitute: epsilon or min-nonzero")
	fs.StringVar(&cfg.composite, "composite", "", "optional path of an RGBA cut-out of the foreground")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.BoolVar(&cfg.logJSON, "log-json", false, "log as JSON instead of console text")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 4 {
		fs.Usage()
		return exitUsage
	}

	log, err := newLogger(stderr, cfg.logLevel, cfg.logJSON)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	opts, err := engineOptions(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("invalid flag")
		return exitUsage
	}
	mode, err := imageio.ParseColorMode(cfg.mode)
	if err != nil {
		log.Error().Err(err).Msg("invalid flag")
		return exitUsage
	}

	imagePath, fgPath, bgPath, outPath := fs.Arg(0), fs.Arg(1), fs.Arg(2), fs.Arg(3)
	return segment(log, opts, mode, cfg, imagePath, fgPath, bgPath, outPath)
}

func segment(log zerolog.Logger, opts []graphcut.Option, mode imageio.ColorMode, cfg config, imagePath, fgPath, bgPath, outPath string) int {
	paths := []string{imagePath}
	if cfg.extra != "" {
		paths = append(paths, strings.Split(cfg.extra, ",")...)
	}
	img, err := imageio.LoadStack(paths, mode)
	if err != nil {
		log.Error().Err(err).Msg("load image")
		return exitFailure
	}
	sources, err := imageio.LoadScribbles(fgPath)
	if err != nil {
		log.Error().Err(err).Msg("load foreground mask")
		return exitFailure
	}
	sinks, err := imageio.LoadScribbles(bgPath)
	if err != nil {
		log.Error().Err(err).Msg("load background mask")
		return exitFailure
	}
	log.Info().
		Int("width", img.Width()).
		Int("height", img.Height()).
		Int("channels", img.Channels()).
		Int("sources", len(sources)).
		Int("sinks", len(sinks)).
		Msg("inputs loaded")

	eng := graphcut.NewEngine(opts...)
	eng.SetImage(img)
	eng.SetSources(sources)
	eng.SetSinks(sinks)

	start := time.Now()
	if err := eng.PerformSegmentation(); err != nil {
		log.Error().Err(err).Msg("segmentation failed")
		if errors.Is(err, graphcut.ErrInsufficientScribbles) ||
			errors.Is(err, graphcut.ErrConflictingScribble) ||
			errors.Is(err, graphcut.ErrOutOfBounds) {
			return exitScribbles
		}
		return exitFailure
	}
	mask := eng.SegmentMask()
	log.Info().
		Float64("flow", eng.Flow()).
		Int("foreground", mask.CountForeground()).
		Dur("elapsed", time.Since(start)).
		Msg("segmentation done")

	if err := imageio.Encode(outPath, mask.ToGray()); err != nil {
		log.Error().Err(err).Msg("write mask")
		return exitFailure
	}
	if cfg.composite != "" {
		orig, err := imageio.Decode(imagePath)
		if err != nil {
			log.Error().Err(err).Msg("reload image for composite")
			return exitFailure
		}
		if err := imageio.Encode(cfg.composite, imageio.Composite(orig, mask.ToGray())); err != nil {
			log.Error().Err(err).Msg("write composite")
			return exitFailure
		}
	}

	return exitOK
}

func engineOptions(cfg config, log zerolog.Logger) ([]graphcut.Option, error) {
	p := graphcut.DefaultParameters()
	p.Lambda = cfg.lambda
	p.Bins = cfg.bins
	p.ChannelWeight = cfg.channelWeight

	alg, err := maxflow.ParseAlgorithm(cfg.algorithm)
	if err != nil {
		return nil, err
	}
	p.Algorithm = alg
	if p.ZeroLikelihood, err = graphcut.ParseZeroLikelihood(cfg.zeroLikelihood); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	return []graphcut.Option{
		graphcut.WithLambda(p.Lambda),
		graphcut.WithBins(p.Bins),
		graphcut.WithChannelWeight(p.ChannelWeight),
		graphcut.WithAlgorithm(p.Algorithm),
		graphcut.WithZeroLikelihood(p.ZeroLikelihood),
		graphcut.WithLogger(log),
	}, nil
}

func newLogger(w io.Writer, level string, asJSON bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("graphcut: invalid log level %q: %w", level, err)
	}
	if !asJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	}

	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
