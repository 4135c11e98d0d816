package pixel

import (
	"fmt"
	"image"
)

// Image is an immutable width×height grid of pixel vectors.
// Pixel (x, y) occupies data[(y*Width+x)*Channels : ...+Channels].
type Image struct {
	width, height int
	channels      int
	data          []float64
}

// NewImage builds an Image from a flat row-major slice. The input is copied.
// Returns ErrEmptyImage, ErrInvalidChannels or ErrDimensionMismatch.
func NewImage(width, height, channels int, data []float64) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyImage
	}
	if channels < 1 {
		return nil, ErrInvalidChannels
	}
	if want := width * height * channels; len(data) != want {
		return nil, fmt.Errorf("%w: got %d values, want %d", ErrDimensionMismatch, len(data), want)
	}
	buf := make([]float64, len(data))
	copy(buf, data)

	return &Image{width: width, height: height, channels: channels, data: buf}, nil
}

// FromRows builds an Image from rows of pixel vectors (rows[y][x]).
// Every row must have the same length and every vector the same channel count.
func FromRows(rows [][]Vector) (*Image, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyImage
	}
	h, w := len(rows), len(rows[0])
	c := len(rows[0][0])
	if c < 1 {
		return nil, ErrInvalidChannels
	}
	data := make([]float64, 0, w*h*c)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d", ErrDimensionMismatch, y, len(row), w)
		}
		for x, v := range row {
			if len(v) != c {
				return nil, fmt.Errorf("%w: pixel (%d,%d) has %d channels, want %d", ErrDimensionMismatch, x, y, len(v), c)
			}
			data = append(data, v...)
		}
	}

	return &Image{width: w, height: h, channels: c, data: data}, nil
}

// FromGray builds a single-channel Image from rows of intensities.
func FromGray(rows [][]float64) (*Image, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyImage
	}
	h, w := len(rows), len(rows[0])
	data := make([]float64, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d pixels, want %d", ErrDimensionMismatch, y, len(row), w)
		}
		data = append(data, row...)
	}

	return &Image{width: w, height: h, channels: 1, data: data}, nil
}

// Width returns the number of columns.
func (im *Image) Width() int { return im.width }

// Height returns the number of rows.
func (im *Image) Height() int { return im.height }

// Channels returns the per-pixel vector length.
func (im *Image) Channels() int { return im.channels }

// Len returns width·height.
func (im *Image) Len() int { return im.width * im.height }

// Bounds returns the image rectangle anchored at the origin.
func (im *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, im.width, im.height)
}

// InBounds reports whether (x,y) lies inside the image.
func (im *Image) InBounds(x, y int) bool {
	return x >= 0 && x < im.width && y >= 0 && y < im.height
}

// At returns the vector at (x,y). The returned slice aliases the image
// storage and must not be modified. Panics when (x,y) is out of bounds.
func (im *Image) At(x, y int) Vector {
	if !im.InBounds(x, y) {
		panic(fmt.Sprintf("pixel: (%d,%d) outside %dx%d image", x, y, im.width, im.height))
	}
	off := (y*im.width + x) * im.channels

	return im.data[off : off+im.channels : off+im.channels]
}

// AtIndex returns the vector of the pixel with row-major index i.
func (im *Image) AtIndex(i int) Vector {
	off := i * im.channels

	return im.data[off : off+im.channels : off+im.channels]
}

// Samples collects the vectors under the given points, in order.
// Duplicated points yield duplicated samples. Points outside the image are skipped.
func (im *Image) Samples(points []image.Point) []Vector {
	out := make([]Vector, 0, len(points))
	for _, p := range points {
		if im.InBounds(p.X, p.Y) {
			out = append(out, im.At(p.X, p.Y))
		}
	}

	return out
}
