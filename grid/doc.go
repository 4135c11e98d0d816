// Package grid maps a width×height pixel lattice onto flow-graph nodes.
//
// What:
//
//   - Grid provides row-major index arithmetic (Index, Coordinate, InBounds)
//     and the two forward offsets (right, bottom) that enumerate every
//     4-adjacent pixel pair exactly once.
//   - NodeMap allocates one maxflow node per pixel and remembers the handle.
//   - Validate and Overlap check scribble coordinate lists against the grid.
//
// Complexity:
//
//   - NewNodeMap:         O(W×H) time and memory.
//   - ForEachForwardPair: O(W×H) time, no allocations.
//   - Validate:           O(P); Overlap: O(P+Q) with a W×H bitmap.
//
// Errors:
//
//   - ErrEmptyGrid:   width or height is not positive.
//   - ErrOutOfBounds: a coordinate lies outside the grid.
package grid
