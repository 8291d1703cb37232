// # internal/graph/cycles.go
package graph

// DetectCycle runs a depth-first search over the graph and returns the
// first circular include path found, as a closed sequence whose first
// and last elements are equal. Returns nil when the graph is acyclic.
//
// The search is iterative with explicit (node, edge cursor) frames, so
// graph depth is bounded by heap, not goroutine stack, and the current
// path is materialized for reconstruction. Neighbors are visited in
// sorted order, so the reported cycle is reproducible for a given tree.
// Only the first cycle is reported; the detector makes no attempt to
// enumerate all cycles or find a minimal one.
func (g *Graph) DetectCycle() []string {
	visited := make(map[string]bool, len(g.nodes))
	onStack := make(map[string]bool)

	type frame struct {
		node  string
		edges []string
		next  int
	}

	for _, start := range g.order {
		if visited[start] {
			continue
		}

		visited[start] = true
		onStack[start] = true
		stack := []frame{{node: start, edges: g.Dependencies(start)}}
		path := []string{start}

		for len(stack) > 0 {
			fr := &stack[len(stack)-1]

			if fr.next >= len(fr.edges) {
				onStack[fr.node] = false
				stack = stack[:len(stack)-1]
				path = path[:len(path)-1]
				continue
			}

			next := fr.edges[fr.next]
			fr.next++

			if onStack[next] {
				return closeCycle(path, next)
			}
			if visited[next] {
				continue
			}

			visited[next] = true
			onStack[next] = true
			stack = append(stack, frame{node: next, edges: g.Dependencies(next)})
			path = append(path, next)
		}
	}

	return nil
}

// closeCycle cuts the current path at the first occurrence of node and
// appends node again to close the loop.
func closeCycle(path []string, node string) []string {
	start := 0
	for i, p := range path {
		if p == node {
			start = i
			break
		}
	}
	cycle := make([]string, 0, len(path)-start+1)
	cycle = append(cycle, path[start:]...)
	return append(cycle, node)
}
