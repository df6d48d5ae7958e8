package graph

import (
	"fmt"

	"github.com/xyntechx/graph-abstract-code-gen/internal/catalog"
)

// connKey identifies one connection regardless of which endpoint
// declared it: the lexically smaller (id, port) pair sorts first.
type connKey struct {
	aID, aPort string
	bID, bPort string
}

func pairKey(id1, port1, id2, port2 string) connKey {
	if id1 > id2 || (id1 == id2 && port1 > port2) {
		id1, port1, id2, port2 = id2, port2, id1, port1
	}
	return connKey{aID: id1, aPort: port1, bID: id2, bPort: port2}
}

// ConvertAlt rewrites the adjacency-list encoding into the canonical
// one. Every node carries over; connections are deduplicated across
// the two endpoints that declare them and oriented by checking the
// ports against the catalog. Constants are always the out side, with
// an empty out port. Edges on nodes with unknown names are dropped,
// matching the tolerance the models need.
func ConvertAlt(alt *AltGraph) (*Graph, error) {
	g := &Graph{
		Nodes: make(map[string]Node, len(alt.Order)),
		Order: make([]string, 0, len(alt.Order)),
	}
	for _, id := range alt.Order {
		n := alt.Nodes[id]
		g.Nodes[id] = Node{Name: n.NodeName, Value: n.Value}
		g.Order = append(g.Order, id)
	}

	processed := make(map[connKey]bool)

	for _, id := range alt.Order {
		node := alt.Nodes[id]
		if _, known := catalog.Lookup(node.NodeName); !known && node.NodeName != "Constant" {
			continue
		}

		for _, e := range node.Edges {
			other, ok := alt.Nodes[e.OtherNodeID]
			if !ok {
				return nil, fmt.Errorf("node %s: edge references unknown node %q", id, e.OtherNodeID)
			}

			// The matching declaration on the other side names the
			// far port; the first edge pointing back wins.
			otherPort := ""
			for _, oe := range other.Edges {
				if oe.OtherNodeID == id {
					otherPort = oe.PortID
					break
				}
			}

			key := pairKey(id, e.PortID, e.OtherNodeID, otherPort)
			if processed[key] {
				continue
			}
			processed[key] = true

			edge, err := orientEdge(id, node.NodeName, e.PortID, e.OtherNodeID, other.NodeName, otherPort)
			if err != nil {
				return nil, err
			}
			g.Edges = append(g.Edges, edge)
		}
	}
	return g, nil
}

func orientEdge(id, name, port, otherID, otherName, otherPort string) (Edge, error) {
	if name == "Constant" {
		return Edge{OutNodeID: id, OutPortID: "", InNodeID: otherID, InPortID: otherPort}, nil
	}
	if otherName == "Constant" {
		return Edge{OutNodeID: otherID, OutPortID: "", InNodeID: id, InPortID: port}, nil
	}

	spec, _ := catalog.Lookup(name)
	otherSpec, _ := catalog.Lookup(otherName)

	if spec.HasOutPort(port) && otherSpec.HasInput(otherPort) {
		return Edge{OutNodeID: id, OutPortID: port, InNodeID: otherID, InPortID: otherPort}, nil
	}
	if otherSpec.HasOutPort(otherPort) && spec.HasInput(port) {
		return Edge{OutNodeID: otherID, OutPortID: otherPort, InNodeID: id, InPortID: port}, nil
	}
	return Edge{}, fmt.Errorf("could not determine edge direction between %s.%s and %s.%s",
		name, orUndefined(port), otherName, orUndefined(otherPort))
}

func orUndefined(port string) string {
	if port == "" {
		return "undefined"
	}
	return port
}
