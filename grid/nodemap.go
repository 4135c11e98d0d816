package grid

import "github.com/katalvlaran/graphcut/maxflow"

// NodeMap records the flow-graph node of every pixel of a Grid.
type NodeMap struct {
	Grid
	nodes []maxflow.NodeID
}

// NewNodeMap adds one node per cell of g to fg, in row-major order, and
// returns the mapping.
// Complexity: O(W×H).
func NewNodeMap(fg *maxflow.Graph, g Grid) *NodeMap {
	first := fg.AddNodes(g.Len())
	nodes := make([]maxflow.NodeID, g.Len())
	for i := range nodes {
		nodes[i] = first + maxflow.NodeID(i)
	}

	return &NodeMap{Grid: g, nodes: nodes}
}

// Node returns the node of pixel (x,y).
func (nm *NodeMap) Node(x, y int) maxflow.NodeID {
	return nm.nodes[nm.Index(x, y)]
}

// NodeAt returns the node of the pixel with row-major index idx.
func (nm *NodeMap) NodeAt(idx int) maxflow.NodeID {
	return nm.nodes[idx]
}
