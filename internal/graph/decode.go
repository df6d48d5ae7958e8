package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// Decode parses the canonical encoding, keeping node document order.
// The input must be exactly one JSON object.
func Decode(data []byte) (*Graph, error) {
	dec := newObjectDecoder(data)
	if err := dec.open(); err != nil {
		return nil, err
	}

	g := &Graph{Nodes: make(map[string]Node)}
	sawNodes, sawEdges := false, false

	for dec.more() {
		key, err := dec.key()
		if err != nil {
			return nil, err
		}
		switch key {
		case "nodes":
			sawNodes = true
			if err := decodeNodes(dec, g); err != nil {
				return nil, err
			}
		case "edges":
			sawEdges = true
			if err := dec.value(&g.Edges); err != nil {
				return nil, fmt.Errorf("edges: %w", err)
			}
		default:
			if err := dec.skip(); err != nil {
				return nil, err
			}
		}
	}
	if err := dec.close(); err != nil {
		return nil, err
	}
	if err := dec.end(); err != nil {
		return nil, err
	}

	if !sawNodes {
		return nil, fmt.Errorf("graph has no \"nodes\" object")
	}
	if !sawEdges {
		return nil, fmt.Errorf("graph has no \"edges\" list")
	}
	return g, nil
}

func decodeNodes(dec *objectDecoder, g *Graph) error {
	if err := dec.open(); err != nil {
		return fmt.Errorf("nodes: %w", err)
	}
	for dec.more() {
		id, err := dec.key()
		if err != nil {
			return fmt.Errorf("nodes: %w", err)
		}
		if !ValidNodeID(id) {
			return fmt.Errorf("invalid node id %q: ids must be node_ followed by letters", id)
		}
		var n Node
		if err := dec.value(&n); err != nil {
			return fmt.Errorf("node %s: %w", id, err)
		}
		// A repeated id keeps its first position but the later value.
		if _, seen := g.Nodes[id]; !seen {
			g.Order = append(g.Order, id)
		}
		g.Nodes[id] = n
	}
	return dec.close()
}

// DecodeAlt parses the adjacency-list encoding, keeping node document
// order.
func DecodeAlt(data []byte) (*AltGraph, error) {
	dec := newObjectDecoder(data)
	if err := dec.open(); err != nil {
		return nil, err
	}

	g := &AltGraph{Nodes: make(map[string]AltNode)}
	for dec.more() {
		id, err := dec.key()
		if err != nil {
			return nil, err
		}
		if !ValidNodeID(id) {
			return nil, fmt.Errorf("invalid node id %q: ids must be node_ followed by letters", id)
		}
		var n AltNode
		if err := dec.value(&n); err != nil {
			return nil, fmt.Errorf("node %s: %w", id, err)
		}
		if n.NodeName == "" {
			return nil, fmt.Errorf("node %s: missing nodeName", id)
		}
		if _, seen := g.Nodes[id]; !seen {
			g.Order = append(g.Order, id)
		}
		g.Nodes[id] = n
	}
	if err := dec.close(); err != nil {
		return nil, err
	}
	if err := dec.end(); err != nil {
		return nil, err
	}
	return g, nil
}

// objectDecoder walks one top-level JSON object token by token, so map
// key order survives where encoding/json's map decoding would lose it.
type objectDecoder struct {
	dec *json.Decoder
}

func newObjectDecoder(data []byte) *objectDecoder {
	return &objectDecoder{dec: json.NewDecoder(bytes.NewReader(data))}
}

func (d *objectDecoder) open() error {
	tok, err := d.dec.Token()
	if err != nil {
		return fmt.Errorf("parse graph: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("parse graph: expected an object, got %v", tok)
	}
	return nil
}

func (d *objectDecoder) close() error {
	tok, err := d.dec.Token()
	if err != nil {
		return fmt.Errorf("parse graph: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '}' {
		return fmt.Errorf("parse graph: expected object end, got %v", tok)
	}
	return nil
}

func (d *objectDecoder) more() bool { return d.dec.More() }

func (d *objectDecoder) key() (string, error) {
	tok, err := d.dec.Token()
	if err != nil {
		return "", fmt.Errorf("parse graph: %w", err)
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("parse graph: expected a key, got %v", tok)
	}
	return key, nil
}

func (d *objectDecoder) value(v any) error { return d.dec.Decode(v) }

// end rejects trailing content after the object.
func (d *objectDecoder) end() error {
	if _, err := d.dec.Token(); err != io.EOF {
		return fmt.Errorf("parse graph: trailing content after the object")
	}
	return nil
}

// skip consumes and discards the next value.
func (d *objectDecoder) skip() error {
	var discard any
	return d.dec.Decode(&discard)
}
