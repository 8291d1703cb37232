// # internal/graph/toposort.go
package graph

// BuildOrder computes a Kahn's-algorithm ordering over the graph.
//
// Direction: the in-degree of a node counts edges pointing into it from
// files that include it, so the queue seeds with files nothing depends
// on and the order lists dependents before their dependencies --
// top-level sources surface first, the most deeply shared headers last.
// Reverse the result for a leaves-first compile order.
//
// Participants are the forward-mapping keys and their edge targets;
// files with neither includes nor includers do not appear. Ties among
// simultaneously ready nodes break by discovery order (FIFO), not by
// name. When the graph is cyclic, nodes on a cycle never reach zero
// in-degree and are silently omitted: the result is then a strict
// subset of the participants.
func (g *Graph) BuildOrder() []string {
	inDegree := make(map[string]int, len(g.nodes))
	seen := make([]string, 0, len(g.nodes))

	note := func(path string) {
		if _, ok := inDegree[path]; !ok {
			inDegree[path] = 0
			seen = append(seen, path)
		}
	}

	for _, from := range g.fwdOrder {
		note(from)
		for _, to := range g.Dependencies(from) {
			note(to)
			inDegree[to]++
		}
	}

	queue := make([]string, 0, len(seen))
	for _, path := range seen {
		if inDegree[path] == 0 {
			queue = append(queue, path)
		}
	}

	order := make([]string, 0, len(seen))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		for _, next := range g.Dependencies(node) {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	return order
}
