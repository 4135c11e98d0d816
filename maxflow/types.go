package maxflow

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors for maxflow operations.
var (
	// ErrNodeNotFound is returned when a NodeID does not belong to the graph.
	ErrNodeNotFound = errors.New("maxflow: node not found")
	// ErrAlreadySolved is returned when a solved graph is mutated or solved again.
	ErrAlreadySolved = errors.New("maxflow: graph already solved")
)

// NodeID is a dense handle of a node inside one Graph.
type NodeID int

// Terminal pseudo-ids, used in EdgeError only.
const (
	Source NodeID = -1
	Sink   NodeID = -2
)

func (n NodeID) String() string {
	switch n {
	case Source:
		return "SOURCE"
	case Sink:
		return "SINK"
	default:
		return fmt.Sprintf("n%d", int(n))
	}
}

// EdgeError is returned when a capacity is negative, NaN or infinite.
type EdgeError struct {
	From, To NodeID
	Cap      float64
}

func (e EdgeError) Error() string {
	return fmt.Sprintf("maxflow: invalid capacity on edge %v→%v: %g", e.From, e.To, e.Cap)
}

// Segment labels the side of the minimum cut a node ended up on.
type Segment int

const (
	// SourceSide nodes are reachable from SOURCE in the residual graph.
	SourceSide Segment = iota
	// SinkSide nodes are not.
	SinkSide
)

func (s Segment) String() string {
	if s == SourceSide {
		return "SOURCE"
	}

	return "SINK"
}

// Algorithm selects the max-flow method.
type Algorithm int

const (
	// BoykovKolmogorov grows search trees from both terminals and reuses them
	// between augmentations.
	BoykovKolmogorov Algorithm = iota
	// Dinic runs level-graph phases with blocking flows.
	Dinic
)

func (a Algorithm) String() string {
	switch a {
	case BoykovKolmogorov:
		return "boykov-kolmogorov"
	case Dinic:
		return "dinic"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "bk"/"boykov-kolmogorov" and "dinic" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "bk", "boykov-kolmogorov":
		return BoykovKolmogorov, nil
	case "dinic":
		return Dinic, nil
	default:
		return 0, fmt.Errorf("maxflow: unknown algorithm %q", s)
	}
}

// DefaultEpsilon is the residual capacity at or below which an arc counts
// as saturated.
const DefaultEpsilon = 1e-12

// Options configures Maxflow.
//   - Algorithm: BoykovKolmogorov (default) or Dinic.
//   - Epsilon:   residual capacities ≤ Epsilon are treated as zero (default 1e-12).
//   - Logger:    receives one Debug event per solve (default: discard).
type Options struct {
	Algorithm Algorithm
	Epsilon   float64
	Logger    *zerolog.Logger
}

// DefaultOptions returns production-safe defaults.
func DefaultOptions() Options {
	nop := zerolog.Nop()

	return Options{
		Algorithm: BoykovKolmogorov,
		Epsilon:   DefaultEpsilon,
		Logger:    &nop,
	}
}

// normalize fills zero or invalid fields with defaults.
func (o *Options) normalize() {
	if !(o.Epsilon > 0) {
		o.Epsilon = DefaultEpsilon
	}
	if o.Logger == nil {
		nop := zerolog.Nop()
		o.Logger = &nop
	}
}
