package graph

import "github.com/xyntechx/graph-abstract-code-gen/internal/catalog"

// ArgSource returns the id of the node feeding an input port, or ""
// when the port is unwired. The first matching edge wins.
func (g *Graph) ArgSource(nodeID, portID string) string {
	for _, e := range g.Edges {
		if e.InNodeID == nodeID && e.InPortID == portID {
			return e.OutNodeID
		}
	}
	return ""
}

// SubstackChain returns the block ids attached to a node's SUBSTACK or
// SUBSTACK_IF port, each expanded along its execution chain, in edge
// order.
func (g *Graph) SubstackChain(nodeID string) []string {
	var ids []string
	for _, e := range g.Edges {
		if e.OutNodeID == nodeID && (e.OutPortID == catalog.PortSubstack || e.OutPortID == catalog.PortSubstackIf) {
			ids = append(ids, g.ExecutionChain(e.InNodeID)...)
		}
	}
	return ids
}

// ElseChain is SubstackChain for the SUBSTACK_ELSE port.
func (g *Graph) ElseChain(nodeID string) []string {
	var ids []string
	for _, e := range g.Edges {
		if e.OutNodeID == nodeID && e.OutPortID == catalog.PortSubstackElse {
			ids = append(ids, g.ExecutionChain(e.InNodeID)...)
		}
	}
	return ids
}

// ExecutionChain follows THEN to EXEC links from start. When a node
// has several outgoing THEN edges the last one wins, and a revisited
// node ends the walk.
func (g *Graph) ExecutionChain(start string) []string {
	next := make(map[string]string)
	for _, e := range g.Edges {
		if e.OutPortID == catalog.PortThen && e.InPortID == catalog.PortExec {
			next[e.OutNodeID] = e.InNodeID
		}
	}

	var chain []string
	visited := make(map[string]bool)
	for id := start; id != "" && !visited[id]; id = next[id] {
		chain = append(chain, id)
		visited[id] = true
	}
	return chain
}
