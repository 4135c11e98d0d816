package maxflow

import "math"

const infiniteDist = math.MaxInt32

// bkState holds the Boykov–Kolmogorov work lists.
type bkState struct {
	g   *Graph
	eps float64

	queue   []NodeID // active nodes (FIFO)
	qhead   int
	orphans []NodeID // orphan nodes (FIFO)
	time    int
}

// boykovKolmogorov runs the search-tree max-flow algorithm on g and fills
// g.segments. It returns the number of augmenting paths.
//
// Steps:
//  1. Nodes with positive folded terminal residual become SOURCE-tree roots,
//     negative ones SINK-tree roots; both are active.
//  2. Growth: an active node scans its arcs with residual capacity and
//     claims free neighbors for its tree until it touches the other tree.
//  3. Augment: push the bottleneck along SOURCE→…→tail→head→…→SINK; every
//     arc (or terminal residual) that saturates detaches its child, which
//     becomes an orphan.
//  4. Adoption: each orphan looks for a new parent in its own tree whose
//     path to the terminal is valid, preferring the shortest one (time
//     stamps cache distances found in this round). Orphans without a parent
//     become free and orphan their own children.
//  5. Repeat until no active nodes remain.
//
// Complexity:
//
//	Time:   O(E·V²·|C|) worst case; near linear on image grids.
//	Memory: O(V) for the work lists.
func (g *Graph) boykovKolmogorov(eps float64) int {
	s := &bkState{g: g, eps: eps}
	s.init()

	augmentations := 0
	current := NodeID(-1)
	for {
		i := current
		if i >= 0 {
			g.nodes[i].active = false
			if g.nodes[i].parent == parentNone {
				i = -1
			}
		}
		if i < 0 {
			if i = s.nextActive(); i < 0 {
				break
			}
		}

		middle := s.grow(i)
		s.time++
		if middle < 0 {
			current = -1
			continue
		}

		// Keep working on i; the flag stops adoption from re-queueing it.
		g.nodes[i].active = true
		current = i
		s.augment(middle)
		augmentations++
		s.adopt()
	}

	g.segments = make([]Segment, len(g.nodes))
	for i := range g.nodes {
		n := &g.nodes[i]
		if n.parent != parentNone && !n.isSink {
			g.segments[i] = SourceSide
		} else {
			g.segments[i] = SinkSide
		}
	}

	return augmentations
}

func (s *bkState) init() {
	for i := range s.g.nodes {
		n := &s.g.nodes[i]
		n.active = false
		n.ts = 0
		switch {
		case n.trcap > s.eps:
			n.isSink = false
			n.parent = parentTerminal
			n.dist = 1
			s.setActive(NodeID(i))
		case n.trcap < -s.eps:
			n.isSink = true
			n.parent = parentTerminal
			n.dist = 1
			s.setActive(NodeID(i))
		default:
			n.parent = parentNone
		}
	}
}

func (s *bkState) setActive(i NodeID) {
	n := &s.g.nodes[i]
	if n.active {
		return
	}
	n.active = true
	s.queue = append(s.queue, i)
}

// nextActive pops the next active node that still belongs to a tree.
func (s *bkState) nextActive() NodeID {
	for s.qhead < len(s.queue) {
		i := s.queue[s.qhead]
		s.qhead++
		s.g.nodes[i].active = false
		if s.qhead > 4096 && s.qhead*2 > len(s.queue) {
			s.queue = append(s.queue[:0], s.queue[s.qhead:]...)
			s.qhead = 0
		}
		if s.g.nodes[i].parent != parentNone {
			return i
		}
	}
	s.queue = s.queue[:0]
	s.qhead = 0

	return -1
}

// grow expands the tree of i by one layer. It returns the arc linking the
// SOURCE tree to the SINK tree (oriented source→sink), or -1.
func (s *bkState) grow(i NodeID) int {
	g := s.g
	ni := &g.nodes[i]

	if !ni.isSink {
		for a := ni.first; a >= 0; a = g.arcs[a].next {
			if g.arcs[a].rcap <= s.eps {
				continue
			}
			j := g.arcs[a].head
			nj := &g.nodes[j]
			switch {
			case nj.parent == parentNone:
				nj.isSink = false
				nj.parent = a ^ 1
				nj.ts = ni.ts
				nj.dist = ni.dist + 1
				s.setActive(j)
			case nj.isSink:
				return a
			case nj.ts <= ni.ts && nj.dist > ni.dist:
				// shorten the path of j through i
				nj.parent = a ^ 1
				nj.ts = ni.ts
				nj.dist = ni.dist + 1
			}
		}

		return -1
	}

	for a := ni.first; a >= 0; a = g.arcs[a].next {
		if g.arcs[a^1].rcap <= s.eps {
			continue
		}
		j := g.arcs[a].head
		nj := &g.nodes[j]
		switch {
		case nj.parent == parentNone:
			nj.isSink = true
			nj.parent = a ^ 1
			nj.ts = ni.ts
			nj.dist = ni.dist + 1
			s.setActive(j)
		case !nj.isSink:
			return a ^ 1
		case nj.ts <= ni.ts && nj.dist > ni.dist:
			nj.parent = a ^ 1
			nj.ts = ni.ts
			nj.dist = ni.dist + 1
		}
	}

	return -1
}

// augment pushes the bottleneck capacity along the path through middle and
// orphans every node whose link to its parent saturated.
func (s *bkState) augment(middle int) {
	g := s.g
	tail := g.arcs[middle^1].head
	head := g.arcs[middle].head

	// bottleneck
	bottleneck := g.arcs[middle].rcap
	i := tail
	for g.nodes[i].parent != parentTerminal {
		a := g.nodes[i].parent
		bottleneck = math.Min(bottleneck, g.arcs[a^1].rcap)
		i = g.arcs[a].head
	}
	bottleneck = math.Min(bottleneck, g.nodes[i].trcap)

	i = head
	for g.nodes[i].parent != parentTerminal {
		a := g.nodes[i].parent
		bottleneck = math.Min(bottleneck, g.arcs[a].rcap)
		i = g.arcs[a].head
	}
	bottleneck = math.Min(bottleneck, -g.nodes[i].trcap)

	// push
	g.arcs[middle^1].rcap += bottleneck
	g.arcs[middle].rcap -= bottleneck

	i = tail
	for g.nodes[i].parent != parentTerminal {
		a := g.nodes[i].parent
		g.arcs[a].rcap += bottleneck
		g.arcs[a^1].rcap -= bottleneck
		if g.arcs[a^1].rcap <= s.eps {
			s.setOrphan(i)
		}
		i = g.arcs[a].head
	}
	g.nodes[i].trcap -= bottleneck
	if g.nodes[i].trcap <= s.eps {
		s.setOrphan(i)
	}

	i = head
	for g.nodes[i].parent != parentTerminal {
		a := g.nodes[i].parent
		g.arcs[a^1].rcap += bottleneck
		g.arcs[a].rcap -= bottleneck
		if g.arcs[a].rcap <= s.eps {
			s.setOrphan(i)
		}
		i = g.arcs[a].head
	}
	g.nodes[i].trcap += bottleneck
	if g.nodes[i].trcap >= -s.eps {
		s.setOrphan(i)
	}

	g.flow += bottleneck
}

func (s *bkState) setOrphan(i NodeID) {
	s.g.nodes[i].parent = parentOrphan
	s.orphans = append(s.orphans, i)
}

// adopt processes orphans until none remain.
func (s *bkState) adopt() {
	for k := 0; k < len(s.orphans); k++ {
		s.processOrphan(s.orphans[k])
	}
	s.orphans = s.orphans[:0]
}

// processOrphan finds a new parent for orphan i inside its own tree, or
// frees it.
func (s *bkState) processOrphan(i NodeID) {
	g := s.g
	ni := &g.nodes[i]
	sinkTree := ni.isSink

	bestArc := parentNone
	bestDist := infiniteDist

	for a0 := ni.first; a0 >= 0; a0 = g.arcs[a0].next {
		// Flow must be able to travel parent→i (source tree) or i→parent
		// (sink tree).
		if !s.residualToward(a0, sinkTree) {
			continue
		}
		j := g.arcs[a0].head
		nj := &g.nodes[j]
		if nj.isSink != sinkTree || nj.parent == parentNone {
			continue
		}

		d := s.originDistance(j)
		if d >= infiniteDist {
			continue
		}
		if d < bestDist {
			bestArc = a0
			bestDist = d
		}
		// cache distances along the valid path
		for k := j; g.nodes[k].ts != s.time; k = g.arcs[g.nodes[k].parent].head {
			g.nodes[k].ts = s.time
			g.nodes[k].dist = d
			d--
		}
	}

	ni.parent = bestArc
	if bestArc != parentNone {
		ni.ts = s.time
		ni.dist = bestDist + 1

		return
	}

	// i becomes free: wake its tree neighbors and orphan its children.
	for a0 := ni.first; a0 >= 0; a0 = g.arcs[a0].next {
		j := g.arcs[a0].head
		nj := &g.nodes[j]
		if nj.isSink != sinkTree || nj.parent == parentNone {
			continue
		}
		if s.residualToward(a0, sinkTree) {
			s.setActive(j)
		}
		if a := nj.parent; a >= 0 && g.arcs[a].head == i {
			s.setOrphan(j)
		}
	}
}

// residualToward reports whether arc a0 (from an orphan to a neighbor) can
// carry flow in the direction its tree needs.
func (s *bkState) residualToward(a0 int, sinkTree bool) bool {
	if sinkTree {
		return s.g.arcs[a0].rcap > s.eps
	}

	return s.g.arcs[a0^1].rcap > s.eps
}

// originDistance walks from j towards its terminal and returns the path
// length, or infiniteDist if the walk reaches an orphan.
func (s *bkState) originDistance(j NodeID) int {
	g := s.g
	d := 0
	for {
		nj := &g.nodes[j]
		if nj.ts == s.time {
			return d + nj.dist
		}
		a := nj.parent
		d++
		if a == parentTerminal {
			nj.ts = s.time
			nj.dist = 1

			return d
		}
		if a == parentOrphan {
			return infiniteDist
		}
		j = g.arcs[a].head
	}
}
