package engine

import (
	"fmt"
	"io"
)

// Stats collects node and cutoff counts for one search.
type Stats struct {
	Nodes       uint64
	Leaves      uint64
	Terminal    uint64
	BetaCutoffs uint64
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Nodes += o.Nodes
	s.Leaves += o.Leaves
	s.Terminal += o.Terminal
	s.BetaCutoffs += o.BetaCutoffs
}

// Dump writes the counters as info strings.
func (s Stats) Dump(w io.Writer) {
	fmt.Fprintln(w, "info string Search statistics:")
	fmt.Fprintf(w, "info string   Nodes: %d\n", s.Nodes)
	fmt.Fprintf(w, "info string   Leaves: %d\n", s.Leaves)
	fmt.Fprintf(w, "info string   Terminal positions: %d\n", s.Terminal)
	fmt.Fprintf(w, "info string   Beta cutoffs: %d\n", s.BetaCutoffs)
}
