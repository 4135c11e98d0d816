package maxflow

// CutEdge is a regular edge crossing the minimum cut from the SOURCE side
// to the SINK side.
type CutEdge struct {
	From, To NodeID
	Cap      float64
}

// CutValue returns the total original capacity of all edges leaving the
// SOURCE side: SOURCE→u for SinkSide u, u→SINK for SourceSide u, and every
// regular edge from a SourceSide node to a SinkSide node. After Maxflow it
// equals the flow value (up to Epsilon-sized residuals). Returns 0 before
// Maxflow.
//
// Complexity: O(V + E).
func (g *Graph) CutValue() float64 {
	if !g.solved {
		return 0
	}
	var total float64
	for i := range g.nodes {
		n := &g.nodes[i]
		if g.segments[i] == SinkSide {
			total += n.srcCap
			continue
		}
		total += n.sinkCap
		for a := n.first; a >= 0; a = g.arcs[a].next {
			if g.segments[g.arcs[a].head] == SinkSide {
				total += g.arcs[a].cap
			}
		}
	}

	return total
}

// CutEdges lists the regular edges from the SOURCE side to the SINK side,
// ordered by source node then by insertion (latest first). Returns nil
// before Maxflow.
func (g *Graph) CutEdges() []CutEdge {
	if !g.solved {
		return nil
	}
	var out []CutEdge
	for i := range g.nodes {
		if g.segments[i] != SourceSide {
			continue
		}
		for a := g.nodes[i].first; a >= 0; a = g.arcs[a].next {
			if v := g.arcs[a].head; g.segments[v] == SinkSide {
				out = append(out, CutEdge{From: NodeID(i), To: v, Cap: g.arcs[a].cap})
			}
		}
	}

	return out
}
