// # internal/output/dot.go
package output

import (
	"fmt"
	"strings"

	"depscan/internal/discover"
	"depscan/internal/graph"
)

const (
	headerColor = "lightblue"
	sourceColor = "lightgreen"
)

type DOTGenerator struct {
	graph *graph.Graph
}

func NewDOTGenerator(g *graph.Graph) *DOTGenerator {
	return &DOTGenerator{graph: g}
}

// Generate serializes the graph as Graphviz DOT: one node statement per
// discovered file (label = bare filename, fill color distinguishes
// headers) and one edge statement per forward-mapping edge.
// Render with: dot -Tpng deps.dot -o deps.png
func (d *DOTGenerator) Generate() (string, error) {
	var buf strings.Builder

	buf.WriteString("digraph dependencies {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box];\n")

	for _, n := range d.graph.Nodes() {
		color := sourceColor
		if n.Kind == discover.KindHeader {
			color = headerColor
		}
		buf.WriteString(fmt.Sprintf("  \"%s\" [label=\"%s\" fillcolor=\"%s\" style=filled];\n",
			n.Path, n.Name, color))
	}

	for _, from := range d.graph.Sources() {
		for _, to := range d.graph.Dependencies(from) {
			buf.WriteString(fmt.Sprintf("  \"%s\" -> \"%s\";\n", from, to))
		}
	}

	buf.WriteString("}\n")

	return buf.String(), nil
}
