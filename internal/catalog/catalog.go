// Package catalog holds the node reference for the graph language: one
// spec per block type, with the ports and fields a graph may wire. The
// reference renders in three prompt forms that differ only in how much
// port information they reveal.
package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Representation selects how the node reference appears in prompts and
// which graph encoding the model is asked for.
type Representation string

const (
	// ReprProposed shows port ids and types, one desc per node.
	ReprProposed Representation = "proposed"
	// ReprExtraDesc is proposed plus a desc on every port.
	ReprExtraDesc Representation = "extra_desc"
	// ReprNoTypes is proposed with port types removed.
	ReprNoTypes Representation = "no_types"
	// ReprAlternative shows the proposed reference but asks for the
	// adjacency-list graph encoding.
	ReprAlternative Representation = "alternative"
)

// Representations lists the accepted representation names.
func Representations() []Representation {
	return []Representation{ReprProposed, ReprExtraDesc, ReprNoTypes, ReprAlternative}
}

// ParseRepresentation validates a CLI representation name.
func ParseRepresentation(s string) (Representation, error) {
	for _, r := range Representations() {
		if s == string(r) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown representation %q (choices: proposed, extra_desc, no_types, alternative)", s)
}

// Kind mirrors the block shapes of the execution engine.
type Kind string

const (
	KindHat      Kind = "hat"
	KindStack    Kind = "stack"
	KindBoolean  Kind = "boolean"
	KindReporter Kind = "reporter"
	KindCBlock   Kind = "c_block"
	KindCap      Kind = "cap"
)

// Well-known port ids. EXEC/THEN carry execution order; SUBSTACK ports
// attach loop and branch bodies; RESULT carries reporter values.
const (
	PortExec         = "EXEC"
	PortThen         = "THEN"
	PortSubstack     = "SUBSTACK"
	PortSubstackIf   = "SUBSTACK_IF"
	PortSubstackElse = "SUBSTACK_ELSE"
	PortResult       = "RESULT"
)

// Port value types as shown in typed representations.
const (
	TypeExec    = "exec"
	TypeNumber  = "number"
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeAny     = "any"
)

// PortSpec describes one port or field. Type and Desc drop out of the
// JSON in representations that omit them.
type PortSpec struct {
	ID   string `json:"id"`
	Type string `json:"type,omitempty"`
	Desc string `json:"desc,omitempty"`
}

// NodeSpec is the complete form of one node. Name and Kind drive code
// generation and never appear in the rendered reference.
type NodeSpec struct {
	Name     string     `json:"-"`
	Kind     Kind       `json:"-"`
	Desc     string     `json:"desc"`
	InPorts  []PortSpec `json:"inPorts"`
	OutPorts []PortSpec `json:"outPorts"`
	Fields   []PortSpec `json:"fields"`
}

// HasOutPort reports whether id names one of the node's outPorts.
func (n NodeSpec) HasOutPort(id string) bool {
	for _, p := range n.OutPorts {
		if p.ID == id {
			return true
		}
	}
	return false
}

// HasInput reports whether id names an inPort or a field. Fields count
// as inPorts for edge purposes.
func (n NodeSpec) HasInput(id string) bool {
	for _, p := range n.InPorts {
		if p.ID == id {
			return true
		}
	}
	for _, p := range n.Fields {
		if p.ID == id {
			return true
		}
	}
	return false
}

// ArgPorts returns the ports that become constructor arguments, in
// declaration order: fields first, then value inPorts. EXEC is the
// chain port, never an argument.
func (n NodeSpec) ArgPorts() []PortSpec {
	args := make([]PortSpec, 0, len(n.Fields)+len(n.InPorts))
	args = append(args, n.Fields...)
	for _, p := range n.InPorts {
		if p.ID == PortExec {
			continue
		}
		args = append(args, p)
	}
	return args
}

// Lookup returns the complete spec for a node name.
func Lookup(name string) (NodeSpec, bool) {
	spec, ok := byName[name]
	return spec, ok
}

// Names returns every node name in registry order.
func Names() []string {
	names := make([]string, len(registry))
	for i, spec := range registry {
		names[i] = spec.Name
	}
	return names
}

// Reference returns the registry rendered for a representation. The
// alternative encoding reuses the proposed reference.
func Reference(r Representation) []NodeSpec {
	specs := make([]NodeSpec, len(registry))
	for i, spec := range registry {
		specs[i] = viewSpec(spec, r)
	}
	return specs
}

func viewSpec(spec NodeSpec, r Representation) NodeSpec {
	out := spec
	out.InPorts = viewPorts(spec.InPorts, r)
	out.OutPorts = viewPorts(spec.OutPorts, r)
	out.Fields = viewPorts(spec.Fields, r)
	return out
}

func viewPorts(ports []PortSpec, r Representation) []PortSpec {
	out := make([]PortSpec, len(ports))
	for i, p := range ports {
		switch r {
		case ReprExtraDesc:
			out[i] = p
		case ReprNoTypes:
			out[i] = PortSpec{ID: p.ID}
		default:
			out[i] = PortSpec{ID: p.ID, Type: p.Type}
		}
	}
	return out
}

// ReferenceJSON renders the reference as a JSON object keyed by node
// name, two-space indented, in registry order.
func ReferenceJSON(r Representation) (string, error) {
	specs := Reference(r)
	var buf bytes.Buffer
	buf.WriteString("{")
	for i, spec := range specs {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  ")
		key, err := json.Marshal(spec.Name)
		if err != nil {
			return "", err
		}
		buf.Write(key)
		buf.WriteString(": ")
		body, err := json.MarshalIndent(spec, "  ", "  ")
		if err != nil {
			return "", fmt.Errorf("marshal node %s: %w", spec.Name, err)
		}
		buf.Write(body)
	}
	buf.WriteString("\n}")
	return buf.String(), nil
}

var byName = func() map[string]NodeSpec {
	m := make(map[string]NodeSpec, len(registry))
	for _, spec := range registry {
		if _, dup := m[spec.Name]; dup {
			panic("duplicate node spec: " + spec.Name)
		}
		m[spec.Name] = spec
	}
	return m
}()
