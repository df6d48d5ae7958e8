package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// RenderJSON serializes the graph the way it was received: a nodes
// object in document order followed by the edges list, two-space
// indented. The run log embeds this form.
func (g *Graph) RenderJSON() (string, error) {
	var buf bytes.Buffer
	buf.WriteString("{\n  \"nodes\": {")
	for i, id := range g.Order {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n    ")
		key, err := json.Marshal(id)
		if err != nil {
			return "", err
		}
		buf.Write(key)
		buf.WriteString(": ")
		body, err := json.MarshalIndent(g.Nodes[id], "    ", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal node %s: %w", id, err)
		}
		buf.Write(body)
	}
	if len(g.Order) > 0 {
		buf.WriteString("\n  ")
	}
	buf.WriteString("},\n  \"edges\": ")
	edges := g.Edges
	if edges == nil {
		edges = []Edge{}
	}
	body, err := json.MarshalIndent(edges, "  ", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal edges: %w", err)
	}
	buf.Write(body)
	buf.WriteString("\n}")
	return buf.String(), nil
}
