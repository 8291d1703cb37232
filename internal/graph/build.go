// # internal/graph/build.go
package graph

import (
	"log/slog"
	"path/filepath"

	"depscan/internal/discover"
	"depscan/internal/include"
)

// Build scans every discovered file for include directives and produces
// the dependency graph. Headers are scanned too, so header-to-header
// edges are captured. Unreadable files are logged and treated as having
// zero includes; unresolved and system includes never become edges.
func Build(ix *discover.Index, resolver *include.Resolver) *Graph {
	g := New()

	files := ix.Files()
	for _, f := range files {
		g.AddNode(&Node{Path: f.Path, Name: f.Name, Kind: f.Kind})
	}

	for _, f := range files {
		targets, err := include.ExtractFile(f.Path)
		if err != nil {
			slog.Warn("could not parse file", "path", f.Path, "error", err)
		}

		for _, target := range targets {
			resolved, result := resolver.Resolve(target)
			if result != include.Resolved || resolved == f.Path {
				continue
			}
			ensureNode(g, resolved)
			g.AddEdge(f.Path, resolved)
		}
	}

	return g
}

// ensureNode registers paths resolved via the include-search probe that
// the discovery walk did not index (e.g. a shadowed filename).
func ensureNode(g *Graph, path string) {
	if g.HasNode(path) {
		return
	}
	name := filepath.Base(path)
	kind := discover.KindSource
	if k, ok := discover.KindOf(name); ok {
		kind = k
	}
	g.AddNode(&Node{Path: path, Name: name, Kind: kind})
}
