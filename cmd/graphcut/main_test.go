package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcut/graphcut"
	"github.com/katalvlaran/graphcut/imageio"
	"github.com/katalvlaran/graphcut/pixel"
)

// writeInputs writes a 6×2 image (dark left, bright right) and scribbles on
// the outer columns.
func writeInputs(t *testing.T, dir string) (img, fg, bg string) {
	t.Helper()
	g := image.NewGray(image.Rect(0, 0, 6, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 6; x++ {
			v := uint8(30 + x)
			if x >= 3 {
				v = uint8(220 - x)
			}
			g.SetGray(x, y, color.Gray{Y: v})
		}
	}
	img = filepath.Join(dir, "img.png")
	fg = filepath.Join(dir, "fg.png")
	bg = filepath.Join(dir, "bg.bmp")
	require.NoError(t, imageio.Encode(img, g))
	require.NoError(t, imageio.Encode(fg, imageio.PointsToMask([]image.Point{{X: 0, Y: 0}, {X: 0, Y: 1}}, 6, 2)))
	require.NoError(t, imageio.Encode(bg, imageio.PointsToMask([]image.Point{{X: 5, Y: 0}, {X: 5, Y: 1}}, 6, 2)))

	return img, fg, bg
}

func TestRun_Segments(t *testing.T) {
	dir := t.TempDir()
	img, fg, bg := writeInputs(t, dir)
	out := filepath.Join(dir, "out.png")
	cut := filepath.Join(dir, "cut.png")

	for _, alg := range []string{"bk", "dinic"} {
		var stderr bytes.Buffer
		code := run([]string{"-algorithm", alg, "-composite", cut, "-log-json", img, fg, bg, out}, &stderr)
		require.Equal(t, exitOK, code, stderr.String())
		require.Contains(t, stderr.String(), "segmentation done")

		pts, err := imageio.LoadScribbles(out)
		require.NoError(t, err)
		require.Equal(t, []image.Point{
			{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0},
			{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 2, Y: 1},
		}, pts)

		composite, err := imageio.Decode(cut)
		require.NoError(t, err)
		_, _, _, a := composite.At(4, 0).RGBA()
		require.Zero(t, a)
	}
}

func TestRun_ExtraChannels(t *testing.T) {
	dir := t.TempDir()
	img, fg, bg := writeInputs(t, dir)
	out := filepath.Join(dir, "out.tif")

	var stderr bytes.Buffer
	code := run([]string{"-mode", "rgb", "-extra", img, "-channel-weight", "0.3", "-zero-likelihood", "min-nonzero", img, fg, bg, out}, &stderr)
	require.Equal(t, exitOK, code, stderr.String())
}

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	img, fg, bg := writeInputs(t, dir)
	out := filepath.Join(dir, "out.png")
	empty := filepath.Join(dir, "empty.png")
	require.NoError(t, imageio.Encode(empty, imageio.PointsToMask(nil, 6, 2)))

	cases := []struct {
		name string
		args []string
		want int
	}{
		{"missing args", []string{img, fg}, exitUsage},
		{"unknown flag", []string{"-nope", img, fg, bg, out}, exitUsage},
		{"bad lambda", []string{"-lambda", "0", img, fg, bg, out}, exitUsage},
		{"bad algorithm", []string{"-algorithm", "push-relabel", img, fg, bg, out}, exitUsage},
		{"bad mode", []string{"-mode", "cmyk", img, fg, bg, out}, exitUsage},
		{"bad log level", []string{"-log-level", "loud", img, fg, bg, out}, exitUsage},
		{"missing image", []string{filepath.Join(dir, "none.png"), fg, bg, out}, exitFailure},
		{"bad output format", []string{img, fg, bg, filepath.Join(dir, "out.xyz")}, exitFailure},
		{"empty foreground", []string{img, empty, bg, out}, exitScribbles},
		{"conflicting", []string{img, fg, fg, out}, exitScribbles},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var stderr bytes.Buffer
			require.Equal(t, tc.want, run(tc.args, &stderr), stderr.String())
		})
	}
}

func TestRun_UsageDefaults(t *testing.T) {
	var stderr bytes.Buffer
	run([]string{"-h"}, &stderr)

	usage := stderr.String()
	require.Contains(t, usage, fmt.Sprintf("(default %v)", pixel.DefaultChannelWeight))
	require.Contains(t, usage, fmt.Sprintf("(default %v)", graphcut.DefaultLambda))
	require.Contains(t, usage, fmt.Sprintf("(default %v)", graphcut.DefaultBins))
}
