package maxflow

import "math"

// dinicArc is one direction of an edge in the explicit Dinic network; the
// sister of arc a is a^1.
type dinicArc struct {
	to   int
	next int
	rcap float64
}

// dinicNet is a copy of Graph with SOURCE and SINK as real vertices
// (indices n and n+1).
type dinicNet struct {
	first        []int
	arcs         []dinicArc
	level        []int
	iter         []int
	source, sink int
	eps          float64
}

func (d *dinicNet) addArcPair(u, v int, c, rc float64) {
	a := len(d.arcs)
	d.arcs = append(d.arcs,
		dinicArc{to: v, next: d.first[u], rcap: c},
		dinicArc{to: u, next: d.first[v], rcap: rc},
	)
	d.first[u] = a
	d.first[v] = a + 1
}

// dinic computes the maximum flow with level graphs and blocking flows and
// fills g.segments from the final residual network. It returns the number
// of augmenting paths.
//
// Steps:
//  1. Copy arcs and folded terminal residuals into a dinicNet (O(V + E)).
//  2. Repeat until SINK is unreachable:
//     a. BFS from SOURCE to compute levels over arcs with residual > eps.
//     b. DFS pushes along strictly increasing levels, advancing a per-node
//     arc iterator past dead ends, until no more flow fits.
//  3. BFS once more; reached nodes are SourceSide.
//
// Complexity:
//
//	Time:   O(V²·E).
//	Memory: O(V + E).
func (g *Graph) dinic(eps float64) int {
	n := len(g.nodes)
	d := &dinicNet{
		first:  make([]int, n+2),
		arcs:   make([]dinicArc, 0, len(g.arcs)+2*n),
		level:  make([]int, n+2),
		iter:   make([]int, n+2),
		source: n,
		sink:   n + 1,
		eps:    eps,
	}
	for i := range d.first {
		d.first[i] = -1
	}
	for a := 0; a < len(g.arcs); a += 2 {
		u, v := int(g.arcs[a+1].head), int(g.arcs[a].head)
		d.addArcPair(u, v, g.arcs[a].rcap, g.arcs[a+1].rcap)
	}
	for i := range g.nodes {
		switch tr := g.nodes[i].trcap; {
		case tr > eps:
			d.addArcPair(d.source, i, tr, 0)
		case tr < -eps:
			d.addArcPair(i, d.sink, -tr, 0)
		}
	}

	augmentations := 0
	for d.buildLevels() {
		copy(d.iter, d.first)
		for {
			pushed := d.push(d.source, math.Inf(1))
			if pushed <= 0 {
				break
			}
			g.flow += pushed
			augmentations++
		}
	}

	// After the last BFS, level ≥ 0 marks exactly the nodes reachable from SOURCE.
	g.segments = make([]Segment, n)
	for i := 0; i < n; i++ {
		if d.level[i] >= 0 {
			g.segments[i] = SourceSide
		} else {
			g.segments[i] = SinkSide
		}
	}

	return augmentations
}

// buildLevels runs BFS from the source and reports whether the sink is reachable.
func (d *dinicNet) buildLevels() bool {
	for i := range d.level {
		d.level[i] = -1
	}
	queue := []int{d.source}
	d.level[d.source] = 0
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		for a := d.first[u]; a >= 0; a = d.arcs[a].next {
			v := d.arcs[a].to
			if d.arcs[a].rcap > d.eps && d.level[v] < 0 {
				d.level[v] = d.level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return d.level[d.sink] >= 0
}

// push recursively sends up to available units from u to the sink along
// the level graph, updating residuals in place, and returns the amount sent.
func (d *dinicNet) push(u int, available float64) float64 {
	if u == d.sink {
		return available
	}
	for ; d.iter[u] >= 0; d.iter[u] = d.arcs[d.iter[u]].next {
		a := d.iter[u]
		v := d.arcs[a].to
		if d.arcs[a].rcap <= d.eps || d.level[v] != d.level[u]+1 {
			continue
		}
		pushed := d.push(v, math.Min(available, d.arcs[a].rcap))
		if pushed > 0 {
			d.arcs[a].rcap -= pushed
			d.arcs[a^1].rcap += pushed

			return pushed
		}
	}

	return 0
}
