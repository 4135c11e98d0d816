package imageio

import (
	"image"
	"image/color"
)

// MaskPoints returns the coordinates of every non-black pixel of img in
// row-major order, relative to img.Bounds().Min.
func MaskPoints(img image.Image) []image.Point {
	b := img.Bounds()
	var out []image.Point
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r|g|bl != 0 {
				out = append(out, image.Point{X: x - b.Min.X, Y: y - b.Min.Y})
			}
		}
	}

	return out
}

// LoadScribbles decodes a scribble mask and returns its marked points.
func LoadScribbles(path string) ([]image.Point, error) {
	img, err := Decode(path)
	if err != nil {
		return nil, err
	}

	return MaskPoints(img), nil
}

// PointsToMask renders points as a w×h mask: 255 at every point inside the
// rectangle, 0 elsewhere.
func PointsToMask(points []image.Point, w, h int) *image.Gray {
	out := image.NewGray(image.Rect(0, 0, w, h))
	for _, p := range points {
		if p.In(out.Rect) {
			out.SetGray(p.X, p.Y, color.Gray{Y: 255})
		}
	}

	return out
}

// Composite returns img with its alpha replaced by mask, cutting out the
// foreground. Pixels outside mask are transparent.
func Composite(img image.Image, mask *image.Gray) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			c := color.NRGBAModel.Convert(img.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
			c.A = 0
			if p := (image.Point{X: x, Y: y}); p.In(mask.Rect) {
				c.A = mask.GrayAt(x, y).Y
			}
			out.SetNRGBA(x, y, c)
		}
	}

	return out
}
