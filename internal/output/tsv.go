// # internal/output/tsv.go
package output

import (
	"fmt"
	"strings"

	"depscan/internal/graph"
)

type TSVGenerator struct {
	graph *graph.Graph
}

func NewTSVGenerator(g *graph.Graph) *TSVGenerator {
	return &TSVGenerator{graph: g}
}

// Generate emits one From/To row per include edge.
func (t *TSVGenerator) Generate() (string, error) {
	var buf strings.Builder

	buf.WriteString("From\tTo\n")
	for _, from := range t.graph.Sources() {
		for _, to := range t.graph.Dependencies(from) {
			buf.WriteString(fmt.Sprintf("%s\t%s\n", from, to))
		}
	}

	return buf.String(), nil
}
