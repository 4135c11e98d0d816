// Package graphcut is the root of an interactive foreground/background image
// segmentation toolkit built on minimum s-t cuts.
//
// 🚀 What is in the box?
//
//	• Pixel vectors & metrics: grayscale, color and multi-modal images
//	• Noise estimation: the σ that scales boundary weights
//	• N-dimensional histograms: regional foreground/background models
//	• Max-flow: Boykov–Kolmogorov and Dinic on an arena graph
//	• Segmentation engine: scribbles in, binary mask out
//	• Image I/O: PNG, JPEG, GIF, BMP, TIFF, WebP, scribble masks, cut-outs
//
// Everything is organized under these subpackages:
//
//	pixel/       Image, Vector, Metric and EstimateSigma
//	grid/        row-major pixel grid, forward neighbor pairs, pixel→node map
//	histogram/   dense frequency tables and likelihood queries
//	maxflow/     flow network, Boykov–Kolmogorov & Dinic solvers, min cut
//	graphcut/    BuildGraph, Engine, Mask
//	imageio/     decoding, encoding, scribble masks, alpha composites
//	cmd/graphcut batch command: image + two scribble masks → mask
//
// Quick ASCII example, a 3×1 strip with one scribble at each end:
//
//	  S           T
//	  │           │
//	 [10]─0.16─[200]─1.00─[210]
//
// The weak n-edge on the left is cheaper to cut, so 200 joins the background.
//
//	go install github.com/katalvlaran/graphcut/cmd/graphcut@latest
package graphcut
