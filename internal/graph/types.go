// Package graph decodes, validates and orders the node/edge graphs the
// models emit. Two encodings exist: the canonical form with a nodes map
// and an edges list, and an adjacency-list form that converts into the
// canonical one against the catalog.
package graph

import "regexp"

// Node is one vertex of the canonical encoding. Value is nil except on
// Constant nodes, where it holds the literal.
type Node struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// Edge connects an out port to an in port.
type Edge struct {
	OutNodeID string `json:"outNodeID"`
	OutPortID string `json:"outPortID"`
	InNodeID  string `json:"inNodeID"`
	InPortID  string `json:"inPortID"`
}

// Graph is the canonical encoding. Order preserves the node ids as
// they appeared in the source document; every ordering decision
// downstream (toposort seeding, code emission) keys off it so a given
// response always renders the same program.
type Graph struct {
	Nodes map[string]Node
	Order []string
	Edges []Edge
}

// AltEdge is one connection of the adjacency-list encoding, named from
// the owning node's point of view.
type AltEdge struct {
	PortID      string `json:"portID"`
	OtherNodeID string `json:"otherNodeID"`
}

// AltNode is one vertex of the adjacency-list encoding.
type AltNode struct {
	NodeName string    `json:"nodeName"`
	Value    any       `json:"value"`
	Edges    []AltEdge `json:"edges"`
}

// AltGraph is the adjacency-list encoding keyed by node id.
type AltGraph struct {
	Nodes map[string]AltNode
	Order []string
}

// Node ids become identifiers in generated source, so the contract the
// prompt states is enforced here: a node_ prefix followed by letters.
var nodeIDPattern = regexp.MustCompile(`^node_[A-Za-z]+$`)

// ValidNodeID reports whether id satisfies the identifier contract.
func ValidNodeID(id string) bool { return nodeIDPattern.MatchString(id) }
