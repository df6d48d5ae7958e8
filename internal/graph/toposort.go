package graph

import "errors"

// ErrNotDAG reports a graph whose edges admit no topological order.
var ErrNotDAG = errors.New("graph is not a DAG")

// TopoSort returns the node ids in a Kahn ordering. In-degrees count
// per edge and ties resolve in document order. Cycles, and almost all
// edges naming undeclared nodes, leave the result a different size
// than the declared node set and fail with ErrNotDAG; the rare
// undeclared id that slips through surfaces later as an unknown-node
// error.
func (g *Graph) TopoSort() ([]string, error) {
	inDegree := make(map[string]int, len(g.Order))
	adj := make(map[string][]string)

	for _, id := range g.Order {
		inDegree[id] = 0
	}
	for _, e := range g.Edges {
		adj[e.OutNodeID] = append(adj[e.OutNodeID], e.InNodeID)
		inDegree[e.InNodeID]++
	}

	queue := make([]string, 0, len(g.Order))
	for _, id := range g.Order {
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	result := make([]string, 0, len(g.Order))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		result = append(result, current)

		for _, next := range adj[current] {
			inDegree[next]--
			if inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if len(result) != len(g.Order) {
		return nil, ErrNotDAG
	}
	return result, nil
}
