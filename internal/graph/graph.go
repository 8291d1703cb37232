// # internal/graph/graph.go
package graph

import (
	"sort"

	"depscan/internal/discover"
)

// Node is one file in the dependency graph.
type Node struct {
	Path string
	Name string
	Kind discover.Kind
}

// Graph is a directed include graph over discovered files. The forward
// mapping (file -> files it includes) and the reverse index (file ->
// files including it) are kept in lockstep: every AddEdge updates both,
// so the reverse index is the exact transpose of the forward mapping at
// all times. Self-edges are rejected at insertion.
//
// One analyzer instance owns a Graph for the duration of one run; the
// read-only algorithms (cycle detection, ordering, export) never mutate
// it.
type Graph struct {
	nodes map[string]*Node
	order []string // node insertion order

	forward  map[string]map[string]bool
	reverse  map[string]map[string]bool
	fwdOrder []string // order in which sources gained their first edge

	edgeCount int
}

func New() *Graph {
	return &Graph{
		nodes:   make(map[string]*Node),
		forward: make(map[string]map[string]bool),
		reverse: make(map[string]map[string]bool),
	}
}

// AddNode registers a file. Re-adding an existing path is a no-op.
func (g *Graph) AddNode(n *Node) {
	if _, ok := g.nodes[n.Path]; ok {
		return
	}
	c := *n
	g.nodes[n.Path] = &c
	g.order = append(g.order, n.Path)
}

// AddEdge records that from textually includes to. Both endpoints must
// already be nodes. Self-edges and duplicates are dropped.
func (g *Graph) AddEdge(from, to string) {
	if from == to {
		return
	}
	if _, ok := g.nodes[from]; !ok {
		return
	}
	if _, ok := g.nodes[to]; !ok {
		return
	}

	if g.forward[from] == nil {
		g.forward[from] = make(map[string]bool)
		g.fwdOrder = append(g.fwdOrder, from)
	}
	if g.forward[from][to] {
		return
	}
	g.forward[from][to] = true

	if g.reverse[to] == nil {
		g.reverse[to] = make(map[string]bool)
	}
	g.reverse[to][from] = true

	g.edgeCount++
}

func (g *Graph) HasNode(path string) bool {
	_, ok := g.nodes[path]
	return ok
}

func (g *Graph) Node(path string) (*Node, bool) {
	n, ok := g.nodes[path]
	return n, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, path := range g.order {
		out = append(out, g.nodes[path])
	}
	return out
}

// Sources returns the forward-mapping keys in the order they gained
// their first outgoing edge.
func (g *Graph) Sources() []string {
	return append([]string(nil), g.fwdOrder...)
}

// Dependencies returns the files path directly includes, sorted.
func (g *Graph) Dependencies(path string) []string {
	return sortedKeys(g.forward[path])
}

// Dependents returns the files that directly include path, sorted.
func (g *Graph) Dependents(path string) []string {
	return sortedKeys(g.reverse[path])
}

func (g *Graph) HasEdge(from, to string) bool {
	return g.forward[from][to]
}

func (g *Graph) NodeCount() int { return len(g.nodes) }
func (g *Graph) EdgeCount() int { return g.edgeCount }

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
