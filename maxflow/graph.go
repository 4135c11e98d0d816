package maxflow

import (
	"fmt"
	"math"
	"time"
)

// Parent markers stored in node.parent; any value ≥ 0 is an arc index.
const (
	parentNone     = -1
	parentTerminal = -2
	parentOrphan   = -3
)

// arc is one direction of an edge. Arcs are allocated in pairs, so the
// reverse (sister) of arc a is always a^1.
type arc struct {
	head NodeID  // node the arc points to
	next int     // next arc leaving the same node, -1 terminates
	rcap float64 // residual capacity
	cap  float64 // original capacity
}

type node struct {
	first int // first outgoing arc, -1 if none

	srcCap, sinkCap float64 // accumulated terminal capacities
	trcap           float64 // folded terminal residual: >0 from SOURCE, <0 to SINK

	// search tree state (Boykov–Kolmogorov)
	parent int
	isSink bool
	active bool
	ts     int
	dist   int
}

// Graph is a flow network over dense NodeIDs with implicit SOURCE and SINK.
// It is not safe for concurrent use and can be solved once.
type Graph struct {
	nodes []node
	arcs  []arc

	flow     float64
	solved   bool
	segments []Segment
}

// NewGraph returns an empty graph with room for nodeHint nodes and edgeHint
// edges (each edge is stored as two arcs).
func NewGraph(nodeHint, edgeHint int) *Graph {
	if nodeHint < 0 {
		nodeHint = 0
	}
	if edgeHint < 0 {
		edgeHint = 0
	}

	return &Graph{
		nodes: make([]node, 0, nodeHint),
		arcs:  make([]arc, 0, 2*edgeHint),
	}
}

// AddNode appends one node and returns its id.
func (g *Graph) AddNode() NodeID {
	return g.AddNodes(1)
}

// AddNodes appends n nodes and returns the id of the first one; the others
// follow consecutively.
func (g *Graph) AddNodes(n int) NodeID {
	first := NodeID(len(g.nodes))
	for i := 0; i < n; i++ {
		g.nodes = append(g.nodes, node{first: -1, parent: parentNone})
	}

	return first
}

// NumNodes returns the number of regular (non-terminal) nodes.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the number of edges added with AddEdge.
func (g *Graph) NumEdges() int { return len(g.arcs) / 2 }

// Flow returns the flow computed by Maxflow (0 before solving).
func (g *Graph) Flow() float64 { return g.flow }

func (g *Graph) has(u NodeID) bool {
	return u >= 0 && int(u) < len(g.nodes)
}

func validCap(c float64) bool {
	return c >= 0 && !math.IsInf(c, 1)
}

// AddEdge adds the edge pair u→v with capacity capUV and v→u with capacity
// capVU. Self-loops never carry flow and are ignored.
// Returns ErrNodeNotFound, ErrAlreadySolved or EdgeError.
func (g *Graph) AddEdge(u, v NodeID, capUV, capVU float64) error {
	if g.solved {
		return ErrAlreadySolved
	}
	if !g.has(u) {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, u)
	}
	if !g.has(v) {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, v)
	}
	if !validCap(capUV) {
		return EdgeError{From: u, To: v, Cap: capUV}
	}
	if !validCap(capVU) {
		return EdgeError{From: v, To: u, Cap: capVU}
	}
	if u == v {
		return nil
	}

	a := len(g.arcs)
	g.arcs = append(g.arcs,
		arc{head: v, next: g.nodes[u].first, rcap: capUV, cap: capUV},
		arc{head: u, next: g.nodes[v].first, rcap: capVU, cap: capVU},
	)
	g.nodes[u].first = a
	g.nodes[v].first = a + 1

	return nil
}

// AddTWeights adds capSource to the SOURCE→u capacity and capSink to the
// u→SINK capacity.
func (g *Graph) AddTWeights(u NodeID, capSource, capSink float64) error {
	if err := g.checkTWeights(u, capSource, capSink); err != nil {
		return err
	}
	n := &g.nodes[u]
	n.srcCap += capSource
	n.sinkCap += capSink

	return nil
}

// SetTWeights replaces the terminal capacities of u.
func (g *Graph) SetTWeights(u NodeID, capSource, capSink float64) error {
	if err := g.checkTWeights(u, capSource, capSink); err != nil {
		return err
	}
	n := &g.nodes[u]
	n.srcCap = capSource
	n.sinkCap = capSink

	return nil
}

func (g *Graph) checkTWeights(u NodeID, capSource, capSink float64) error {
	if g.solved {
		return ErrAlreadySolved
	}
	if !g.has(u) {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, u)
	}
	if !validCap(capSource) {
		return EdgeError{From: Source, To: u, Cap: capSource}
	}
	if !validCap(capSink) {
		return EdgeError{From: u, To: Sink, Cap: capSink}
	}

	return nil
}

// TWeights returns the accumulated terminal capacities of u.
func (g *Graph) TWeights(u NodeID) (capSource, capSink float64) {
	n := g.nodes[u]

	return n.srcCap, n.sinkCap
}

// Maxflow computes the maximum flow from SOURCE to SINK and labels every
// node with its side of the minimum cut.
//
// Steps:
//  1. Normalize options.
//  2. Fold terminal capacities: flow += min(src, sink), trcap = src - sink.
//  3. Run the selected algorithm on the residual arcs.
//  4. Record SourceSide/SinkSide per node.
//
// Returns ErrAlreadySolved on a second call.
func (g *Graph) Maxflow(opts Options) (float64, error) {
	if g.solved {
		return g.flow, ErrAlreadySolved
	}
	opts.normalize()
	start := time.Now()

	g.flow = 0
	for i := range g.nodes {
		n := &g.nodes[i]
		g.flow += math.Min(n.srcCap, n.sinkCap)
		n.trcap = n.srcCap - n.sinkCap
	}

	var augmentations int
	switch opts.Algorithm {
	case Dinic:
		augmentations = g.dinic(opts.Epsilon)
	default:
		augmentations = g.boykovKolmogorov(opts.Epsilon)
	}
	g.solved = true

	opts.Logger.Debug().
		Str("component", "maxflow").
		Stringer("algorithm", opts.Algorithm).
		Int("nodes", len(g.nodes)).
		Int("edges", g.NumEdges()).
		Int("augmentations", augmentations).
		Float64("flow", g.flow).
		Dur("elapsed", time.Since(start)).
		Msg("max-flow solved")

	return g.flow, nil
}

// WhatSegment returns the side of the cut u belongs to. Before Maxflow, or
// for an unknown id, it reports SinkSide.
func (g *Graph) WhatSegment(u NodeID) Segment {
	if !g.solved || !g.has(u) {
		return SinkSide
	}

	return g.segments[u]
}
