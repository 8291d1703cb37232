// # internal/graph/stats.go
package graph

import "depscan/internal/discover"

type Stats struct {
	SourceCount   int
	HeaderCount   int
	AssemblyCount int
	EdgeCount     int

	// Argmax over out- and in-degree. Ties break on whichever node was
	// inserted first; callers get "some maximal element", nothing more.
	MostOutgoing      string
	MostOutgoingCount int
	MostIncoming      string
	MostIncomingCount int
}

func (g *Graph) ComputeStats() Stats {
	s := Stats{EdgeCount: g.edgeCount}

	for _, path := range g.order {
		switch g.nodes[path].Kind {
		case discover.KindHeader:
			s.HeaderCount++
		case discover.KindSource:
			s.SourceCount++
		case discover.KindAssembly:
			s.AssemblyCount++
		}

		if n := len(g.forward[path]); n > s.MostOutgoingCount {
			s.MostOutgoingCount = n
			s.MostOutgoing = path
		}
		if n := len(g.reverse[path]); n > s.MostIncomingCount {
			s.MostIncomingCount = n
			s.MostIncoming = path
		}
	}

	return s
}
