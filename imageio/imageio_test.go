package imageio_test

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphcut/imageio"
	"github.com/katalvlaran/graphcut/pixel"
)

func grayImage(w, h int, fn func(x, y int) uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.SetGray(x, y, color.Gray{Y: fn(x, y)})
		}
	}

	return g
}

func TestEncodeDecode_LosslessFormats(t *testing.T) {
	dir := t.TempDir()
	src := grayImage(5, 4, func(x, y int) uint8 { return uint8(x*40 + y) })

	for _, name := range []string{"m.png", "m.bmp", "m.tif", "m.TIFF"} {
		path := filepath.Join(dir, name)
		require.NoError(t, imageio.Encode(path, src), name)

		img, err := imageio.LoadImage(path, imageio.ColorGray)
		require.NoError(t, err, name)
		require.Equal(t, 5, img.Width())
		require.Equal(t, 4, img.Height())
		require.Equal(t, 1, img.Channels())
		require.Equal(t, pixel.Vector{float64(3*40 + 2)}, img.At(3, 2), name)
	}
}

func TestEncode_LossyFormatsAndUnsupported(t *testing.T) {
	dir := t.TempDir()
	src := grayImage(8, 8, func(x, y int) uint8 { return 128 })

	for _, name := range []string{"m.jpg", "m.jpeg", "m.gif"} {
		path := filepath.Join(dir, name)
		require.NoError(t, imageio.Encode(path, src), name)
		img, err := imageio.Decode(path)
		require.NoError(t, err, name)
		require.Equal(t, src.Bounds(), img.Bounds(), name)
	}

	err := imageio.Encode(filepath.Join(dir, "m.xyz"), src)
	require.ErrorIs(t, err, imageio.ErrUnsupportedFormat)
	_, statErr := os.Stat(filepath.Join(dir, "m.xyz"))
	require.True(t, os.IsNotExist(statErr))
}

func TestDecode_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := imageio.Decode(filepath.Join(dir, "missing.png"))
	require.Error(t, err)

	junk := filepath.Join(dir, "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o600))
	_, err = imageio.Decode(junk)
	require.Error(t, err)
}

func TestToPixelImage_Modes(t *testing.T) {
	rgba := image.NewRGBA(image.Rect(0, 0, 2, 1))
	rgba.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	rgba.Set(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	img, err := imageio.ToPixelImage(rgba, imageio.ColorAuto)
	require.NoError(t, err)
	require.Equal(t, 3, img.Channels())
	require.Equal(t, pixel.Vector{10, 20, 30}, img.At(0, 0))

	img, err = imageio.ToPixelImage(rgba, imageio.ColorGray)
	require.NoError(t, err)
	require.Equal(t, 1, img.Channels())
	require.InDelta(t, 255, img.At(1, 0)[0], 1e-9)

	gray := grayImage(2, 2, func(x, y int) uint8 { return 77 })
	img, err = imageio.ToPixelImage(gray, imageio.ColorAuto)
	require.NoError(t, err)
	require.Equal(t, 1, img.Channels())
	require.Equal(t, pixel.Vector{77}, img.At(1, 1))

	img, err = imageio.ToPixelImage(gray, imageio.ColorRGB)
	require.NoError(t, err)
	require.Equal(t, pixel.Vector{77, 77, 77}, img.At(0, 1))
}

func TestLoadStack(t *testing.T) {
	dir := t.TempDir()
	rgb := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			rgb.Set(x, y, color.RGBA{R: 1, G: 2, B: 3, A: 255})
		}
	}
	depth := grayImage(3, 2, func(x, y int) uint8 { return uint8(10 * x) })
	intensity := grayImage(3, 2, func(x, y int) uint8 { return 200 })

	paths := []string{filepath.Join(dir, "rgb.png"), filepath.Join(dir, "d.png"), filepath.Join(dir, "i.tif")}
	require.NoError(t, imageio.Encode(paths[0], rgb))
	require.NoError(t, imageio.Encode(paths[1], depth))
	require.NoError(t, imageio.Encode(paths[2], intensity))

	img, err := imageio.LoadStack(paths, imageio.ColorRGB)
	require.NoError(t, err)
	require.Equal(t, 5, img.Channels())
	require.Equal(t, pixel.Vector{1, 2, 3, 20, 200}, img.At(2, 1))

	small := filepath.Join(dir, "small.png")
	require.NoError(t, imageio.Encode(small, grayImage(2, 2, func(x, y int) uint8 { return 0 })))
	_, err = imageio.LoadStack([]string{paths[0], small}, imageio.ColorRGB)
	require.ErrorIs(t, err, imageio.ErrSizeMismatch)

	_, err = imageio.LoadStack(nil, imageio.ColorRGB)
	require.ErrorIs(t, err, imageio.ErrNoImages)
}

func TestMaskPointsRoundTrip(t *testing.T) {
	pts := []image.Point{{X: 1, Y: 0}, {X: 0, Y: 2}, {X: 3, Y: 2}}
	m := imageio.PointsToMask(append(pts, image.Point{X: 9, Y: 9}), 4, 3)
	require.Equal(t, pts, imageio.MaskPoints(m))

	// Colored scribbles count; offsets are relative to the bounds.
	rgba := image.NewRGBA(image.Rect(5, 5, 8, 7))
	rgba.Set(6, 6, color.RGBA{R: 255, A: 255})
	require.Equal(t, []image.Point{{X: 1, Y: 1}}, imageio.MaskPoints(rgba))

	dir := t.TempDir()
	path := filepath.Join(dir, "s.png")
	require.NoError(t, imageio.Encode(path, m))
	got, err := imageio.LoadScribbles(path)
	require.NoError(t, err)
	require.Equal(t, pts, got)
}

func TestComposite(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.Set(1, 0, color.RGBA{R: 40, G: 50, B: 60, A: 255})
	mask := imageio.PointsToMask([]image.Point{{X: 0, Y: 0}}, 2, 1)

	out := imageio.Composite(img, mask)
	require.Equal(t, color.NRGBA{R: 10, G: 20, B: 30, A: 255}, out.NRGBAAt(0, 0))
	require.Equal(t, color.NRGBA{R: 40, G: 50, B: 60, A: 0}, out.NRGBAAt(1, 0))
}

func TestParseColorMode(t *testing.T) {
	m, err := imageio.ParseColorMode("gray")
	require.NoError(t, err)
	require.Equal(t, imageio.ColorGray, m)
	require.Equal(t, "gray", m.String())

	_, err = imageio.ParseColorMode("cmyk")
	require.Error(t, err)
}
