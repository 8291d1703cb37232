// # internal/output/output_test.go
package output

import (
	"strings"
	"testing"

	"depscan/internal/discover"
	"depscan/internal/graph"
)

func testGraph() *graph.Graph {
	g := graph.New()
	g.AddNode(&graph.Node{Path: "main.c", Name: "main.c", Kind: discover.KindSource})
	g.AddNode(&graph.Node{Path: "boot/start.S", Name: "start.S", Kind: discover.KindAssembly})
	g.AddNode(&graph.Node{Path: "include/kernel.h", Name: "kernel.h", Kind: discover.KindHeader})
	g.AddEdge("main.c", "include/kernel.h")
	g.AddEdge("boot/start.S", "include/kernel.h")
	return g
}

func TestDOTGenerator(t *testing.T) {
	dot, err := NewDOTGenerator(testGraph()).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !strings.HasPrefix(dot, "digraph dependencies {\n") {
		t.Error("missing digraph block")
	}
	if !strings.Contains(dot, "rankdir=TB;") {
		t.Error("missing rank direction")
	}
	if !strings.Contains(dot, "node [shape=box];") {
		t.Error("missing node shape")
	}

	// One node statement per discovered file.
	wantNodes := []string{
		`"main.c" [label="main.c" fillcolor="lightgreen" style=filled];`,
		`"boot/start.S" [label="start.S" fillcolor="lightgreen" style=filled];`,
		`"include/kernel.h" [label="kernel.h" fillcolor="lightblue" style=filled];`,
	}
	for _, stmt := range wantNodes {
		if strings.Count(dot, stmt) != 1 {
			t.Errorf("expected exactly one %q", stmt)
		}
	}

	// One edge statement per forward edge.
	wantEdges := []string{
		`"main.c" -> "include/kernel.h";`,
		`"boot/start.S" -> "include/kernel.h";`,
	}
	for _, stmt := range wantEdges {
		if strings.Count(dot, stmt) != 1 {
			t.Errorf("expected exactly one %q", stmt)
		}
	}

	if !strings.HasSuffix(dot, "}\n") {
		t.Error("missing closing brace")
	}
}

func TestDOTGenerator_EmptyGraph(t *testing.T) {
	dot, err := NewDOTGenerator(graph.New()).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if !strings.Contains(dot, "digraph dependencies {") || !strings.Contains(dot, "}") {
		t.Errorf("malformed empty export: %q", dot)
	}
}

func TestTSVGenerator(t *testing.T) {
	tsv, err := NewTSVGenerator(testGraph()).Generate()
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	lines := strings.Split(strings.TrimRight(tsv, "\n"), "\n")
	if lines[0] != "From\tTo" {
		t.Errorf("unexpected header: %q", lines[0])
	}
	if len(lines) != 3 {
		t.Fatalf("expected 2 edge rows, got %v", lines[1:])
	}
	if lines[1] != "main.c\tinclude/kernel.h" {
		t.Errorf("unexpected first row: %q", lines[1])
	}
}
