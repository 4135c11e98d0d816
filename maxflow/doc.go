// Package maxflow computes a maximum s-t flow and the corresponding minimum
// cut on sparse networks with two implicit terminals, the kind of network
// graph-cut segmentation builds over an image: many nodes, a handful of
// neighbor edges per node, and one pair of terminal capacities per node.
//
// Nodes and arcs live in arenas owned by Graph and are addressed by dense
// integer handles (NodeID). A Graph is single use: build it, call Maxflow
// once, then read the partition with WhatSegment.
//
// The algorithms offered are:
//
//   - Boykov–Kolmogorov (default)
//
//   - Method: two search trees grown from SOURCE and SINK; when they touch,
//     the path is augmented and the trees are repaired by adopting orphans
//     instead of being rebuilt from scratch.
//
//   - Time:   O(E·V²·|C|) worst case (|C| = cut cost), near linear on grid graphs in practice.
//
//   - Memory: O(V + E).
//
//   - Dinic
//
//   - Method: BFS level graph + DFS blocking flow over an explicit copy of
//     the network with SOURCE and SINK as real vertices.
//
//   - Time:   O(V²·E).
//
//   - Memory: O(V + E) for the copy, level and iterator slices.
//
// # Terminal capacities
//
// AddTWeights accumulates a capacity from SOURCE and a capacity to SINK per
// node. Before solving, both are folded into one signed residual
// (capSource - capSink) and min(capSource, capSink) is booked as flow that
// trivially passes SOURCE→node→SINK. The original capacities are kept for
// CutValue.
//
// # Partition
//
// After Maxflow a node is SourceSide iff it is reachable from SOURCE through
// arcs with residual capacity above Options.Epsilon; every other node,
// including nodes no search tree ever reached, is SinkSide. The flow value
// equals CutValue (max-flow/min-cut duality).
//
// # Errors
//
//	ErrNodeNotFound  - a NodeID outside the graph.
//	ErrAlreadySolved - the graph was already solved (it is single use).
//	EdgeError        - a negative, NaN or infinite capacity.
//
// Capacities must be finite: hard constraints are expressed with a finite
// sentinel chosen larger than any finite cut of the network.
package maxflow
