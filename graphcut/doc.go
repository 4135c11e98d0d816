// Package graphcut segments an image into foreground and background from two
// sets of user scribbles by computing a minimum s-t cut.
//
// Every pixel becomes a node of a flow network. Neighboring pixels are joined
// by n-edges whose capacity exp(-d²/2σ²) is high inside homogeneous regions
// and low across strong edges. Every pixel is also joined to SOURCE
// (foreground) and SINK (background) by t-edges whose capacities are the
// negative log-likelihoods of the pixel under histograms built from the
// background and foreground scribbles, scaled by λ. Scribbled pixels are tied
// to their terminal by capacities larger than any finite cut.
//
// Usage:
//
//	eng := graphcut.NewEngine(graphcut.WithLambda(0.01), graphcut.WithBins(10))
//	eng.SetImage(img)
//	eng.SetSources(fg)
//	eng.SetSinks(bg)
//	if err := eng.PerformSegmentation(); err != nil { ... }
//	mask := eng.SegmentMask()
//
// BuildGraph exposes the network construction alone, for callers that want
// to inspect or solve the graph themselves.
//
// The Engine is synchronous and not safe for concurrent use.
package graphcut
