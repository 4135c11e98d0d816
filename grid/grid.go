package grid

import (
	"fmt"
	"image"
)

// New returns a Grid of the given size or ErrEmptyGrid.
func New(width, height int) (Grid, error) {
	if width <= 0 || height <= 0 {
		return Grid{}, ErrEmptyGrid
	}

	return Grid{Width: width, Height: height}, nil
}

// Len returns the number of cells.
func (g Grid) Len() int {
	return g.Width * g.Height
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// ForEachForwardPair calls fn for every 4-adjacent pair (a, b) where b is the
// right or bottom neighbor of a. Each unordered pair is visited exactly once,
// in row-major order of a, right neighbor first.
// Complexity: O(W×H).
func (g Grid) ForEachForwardPair(fn func(a, b image.Point)) {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			for _, d := range ForwardOffsets {
				nx, ny := x+d[0], y+d[1]
				if !g.InBounds(nx, ny) {
					continue
				}
				fn(image.Point{X: x, Y: y}, image.Point{X: nx, Y: ny})
			}
		}
	}
}

// PairCount returns the number of 4-adjacent pairs: (W-1)·H + W·(H-1).
func (g Grid) PairCount() int {
	return (g.Width-1)*g.Height + g.Width*(g.Height-1)
}

// Validate returns an error wrapping ErrOutOfBounds for the first point
// outside the grid, or nil.
func (g Grid) Validate(points []image.Point) error {
	for _, p := range points {
		if !g.InBounds(p.X, p.Y) {
			return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, p.X, p.Y, g.Width, g.Height)
		}
	}

	return nil
}

// Overlap returns the first point of b that also appears in a.
// Both lists must already be valid for g.
func (g Grid) Overlap(a, b []image.Point) (image.Point, bool) {
	seen := make([]bool, g.Len())
	for _, p := range a {
		seen[g.Index(p.X, p.Y)] = true
	}
	for _, p := range b {
		if seen[g.Index(p.X, p.Y)] {
			return p, true
		}
	}

	return image.Point{}, false
}
