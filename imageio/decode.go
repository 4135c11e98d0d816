package imageio

import (
	"fmt"
	"image"
	"image/color"
	"os"

	// Registered decoders.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/katalvlaran/graphcut/pixel"
)

// Decode reads the image at path in any registered format.
func Decode(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: decode %s: %w", path, err)
	}

	return img, nil
}

// ToPixelImage converts img into a pixel.Image with values in [0,255].
// ColorGray stores luma, ColorRGB the three color channels; alpha is dropped.
func ToPixelImage(img image.Image, mode ColorMode) (*pixel.Image, error) {
	if mode == ColorAuto {
		mode = ColorRGB
		switch img.(type) {
		case *image.Gray, *image.Gray16:
			mode = ColorGray
		}
	}
	channels := 3
	if mode == ColorGray {
		channels = 1
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	data := make([]float64, 0, w*h*channels)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.At(x, y)
			if mode == ColorGray {
				g := color.Gray16Model.Convert(c).(color.Gray16)
				data = append(data, float64(g.Y)/257)
				continue
			}
			r, g, bl, _ := c.RGBA()
			data = append(data, float64(r)/257, float64(g)/257, float64(bl)/257)
		}
	}

	return pixel.NewImage(w, h, channels, data)
}

// LoadImage decodes path and converts it with mode.
func LoadImage(path string, mode ColorMode) (*pixel.Image, error) {
	img, err := Decode(path)
	if err != nil {
		return nil, err
	}

	return ToPixelImage(img, mode)
}

// LoadStack loads paths[0] with mode and every further path with ColorAuto,
// then concatenates their channels per pixel, e.g. RGB + depth + intensity.
func LoadStack(paths []string, mode ColorMode) (*pixel.Image, error) {
	if len(paths) == 0 {
		return nil, ErrNoImages
	}
	layers := make([]*pixel.Image, 0, len(paths))
	for i, p := range paths {
		m := ColorAuto
		if i == 0 {
			m = mode
		}
		img, err := LoadImage(p, m)
		if err != nil {
			return nil, err
		}
		layers = append(layers, img)
	}

	return Stack(layers...)
}

// Stack concatenates the channels of same-size images, in argument order.
func Stack(layers ...*pixel.Image) (*pixel.Image, error) {
	if len(layers) == 0 {
		return nil, ErrNoImages
	}
	w, h := layers[0].Width(), layers[0].Height()
	channels := 0
	for i, l := range layers {
		if l.Width() != w || l.Height() != h {
			return nil, fmt.Errorf("%w: layer %d is %dx%d, want %dx%d", ErrSizeMismatch, i, l.Width(), l.Height(), w, h)
		}
		channels += l.Channels()
	}

	data := make([]float64, 0, w*h*channels)
	for i := 0; i < w*h; i++ {
		for _, l := range layers {
			data = append(data, l.AtIndex(i)...)
		}
	}

	return pixel.NewImage(w, h, channels, data)
}
