package graphcut

import (
	"bytes"
	"image"
)

// Mask values.
const (
	Background uint8 = 0
	Foreground uint8 = 255
)

// Mask is a width×height binary segmentation, one byte per pixel in
// row-major order.
type Mask struct {
	width, height int
	pix           []uint8
}

// NewMask returns an all-background mask. Non-positive sizes yield an empty mask.
func NewMask(width, height int) *Mask {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}

	return &Mask{width: width, height: height, pix: make([]uint8, width*height)}
}

// Width returns the number of columns.
func (m *Mask) Width() int { return m.width }

// Height returns the number of rows.
func (m *Mask) Height() int { return m.height }

// At reports whether (x,y) is foreground. Out-of-range pixels are background.
func (m *Mask) At(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}

	return m.pix[y*m.width+x] == Foreground
}

// Set marks (x,y) as foreground or background. Out-of-range pixels are ignored.
func (m *Mask) Set(x, y int, foreground bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	m.pix[y*m.width+x] = Background
	if foreground {
		m.pix[y*m.width+x] = Foreground
	}
}

// CountForeground returns the number of foreground pixels.
func (m *Mask) CountForeground() int {
	n := 0
	for _, v := range m.pix {
		if v == Foreground {
			n++
		}
	}

	return n
}

// Reset marks every pixel as background.
func (m *Mask) Reset() {
	clear(m.pix)
}

// Clone returns an independent copy.
func (m *Mask) Clone() *Mask {
	return &Mask{width: m.width, height: m.height, pix: bytes.Clone(m.pix)}
}

// Equal reports whether both masks have the same size and labels.
func (m *Mask) Equal(other *Mask) bool {
	if m == nil || other == nil {
		return m == other
	}

	return m.width == other.width && m.height == other.height && bytes.Equal(m.pix, other.pix)
}

// ToGray renders the mask as an 8-bit image: 255 foreground, 0 background.
func (m *Mask) ToGray() *image.Gray {
	out := image.NewGray(image.Rect(0, 0, m.width, m.height))
	copy(out.Pix, m.pix)

	return out
}
