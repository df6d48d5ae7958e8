package graph

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDecodeKeepsDocumentOrder(t *testing.T) {
	data := `{
		"nodes": {
			"node_zebra": {"name": "WhenFlagClicked", "value": null},
			"node_apple": {"name": "Constant", "value": 10},
			"node_mango": {"name": "MoveSteps", "value": null}
		},
		"edges": [
			{"outNodeID": "node_apple", "outPortID": "", "inNodeID": "node_mango", "inPortID": "STEPS"}
		]
	}`

	g, err := Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	wantOrder := []string{"node_zebra", "node_apple", "node_mango"}
	if diff := cmp.Diff(wantOrder, g.Order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if g.Nodes["node_apple"].Value != 10.0 {
		t.Errorf("constant value = %v", g.Nodes["node_apple"].Value)
	}
	if len(g.Edges) != 1 || g.Edges[0].InPortID != "STEPS" {
		t.Errorf("edges = %+v", g.Edges)
	}
}

func TestDecodeDuplicateIDKeepsFirstPosition(t *testing.T) {
	data := `{
		"nodes": {
			"node_a": {"name": "Say", "value": null},
			"node_b": {"name": "Think", "value": null},
			"node_a": {"name": "MoveSteps", "value": null}
		},
		"edges": []
	}`

	g, err := Decode([]byte(data))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if diff := cmp.Diff([]string{"node_a", "node_b"}, g.Order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	// The later value wins, the earlier position stays.
	if g.Nodes["node_a"].Name != "MoveSteps" {
		t.Errorf("node_a = %+v", g.Nodes["node_a"])
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "NotAnObject", data: `[1, 2]`},
		{name: "MissingNodes", data: `{"edges": []}`},
		{name: "MissingEdges", data: `{"nodes": {}}`},
		{name: "TrailingContent", data: `{"nodes": {}, "edges": []} extra`},
		{name: "BadNodeID", data: `{"nodes": {"node_1": {"name": "Say"}}, "edges": []}`},
		{name: "UnprefixedID", data: `{"nodes": {"say": {"name": "Say"}}, "edges": []}`},
		{name: "Truncated", data: `{"nodes": {"node_a": {"name": "Say"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data)); err == nil {
				t.Errorf("Decode accepted %s", tt.data)
			}
		})
	}
}

func TestDecodeToleratesUnknownTopLevelKeys(t *testing.T) {
	data := `{"comment": {"why": "models add these"}, "nodes": {}, "edges": []}`
	if _, err := Decode([]byte(data)); err != nil {
		t.Fatalf("Decode: %v", err)
	}
}

func TestDecodeAlt(t *testing.T) {
	data := `{
		"node_flag": {"nodeName": "WhenFlagClicked", "value": null, "edges": [
			{"portID": "THEN", "otherNodeID": "node_move"}
		]},
		"node_move": {"nodeName": "MoveSteps", "value": null, "edges": [
			{"portID": "EXEC", "otherNodeID": "node_flag"}
		]}
	}`

	g, err := DecodeAlt([]byte(data))
	if err != nil {
		t.Fatalf("DecodeAlt: %v", err)
	}
	if diff := cmp.Diff([]string{"node_flag", "node_move"}, g.Order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if g.Nodes["node_flag"].Edges[0].OtherNodeID != "node_move" {
		t.Errorf("edges = %+v", g.Nodes["node_flag"].Edges)
	}

	if _, err := DecodeAlt([]byte(`{"node_a": {"value": 1}}`)); err == nil {
		t.Error("DecodeAlt accepted a node without nodeName")
	}
	if _, err := DecodeAlt([]byte(`{"bad id": {"nodeName": "Say"}}`)); err == nil {
		t.Error("DecodeAlt accepted a bad node id")
	}
}

func TestRenderJSON(t *testing.T) {
	g := &Graph{
		Nodes: map[string]Node{
			"node_b": {Name: "Constant", Value: "hi"},
			"node_a": {Name: "Say"},
		},
		Order: []string{"node_b", "node_a"},
		Edges: []Edge{{OutNodeID: "node_b", OutPortID: "", InNodeID: "node_a", InPortID: "MESSAGE"}},
	}

	out, err := g.RenderJSON()
	if err != nil {
		t.Fatalf("RenderJSON: %v", err)
	}

	var decoded struct {
		Nodes map[string]Node `json:"nodes"`
		Edges []Edge          `json:"edges"`
	}
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("rendered graph is not valid JSON: %v\n%s", err, out)
	}
	if len(decoded.Nodes) != 2 || len(decoded.Edges) != 1 {
		t.Errorf("round trip lost data: %s", out)
	}
	if strings.Index(out, "node_b") > strings.Index(out, "node_a") {
		t.Error("document order lost in rendering")
	}

	empty := &Graph{Nodes: map[string]Node{}, Order: nil, Edges: nil}
	out, err = empty.RenderJSON()
	if err != nil {
		t.Fatalf("RenderJSON empty: %v", err)
	}
	if !strings.Contains(out, "\"edges\": []") {
		t.Errorf("nil edges must render as []: %s", out)
	}
}

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{
			name: "Fenced",
			in:   "Here you go:\n```json\n{\"nodes\": {}, \"edges\": []}\n```",
			want: `{"nodes": {}, "edges": []}`,
			ok:   true,
		},
		{
			name: "BracesInStrings",
			in:   `prefix {"a": "close } brace", "b": {"c": 1}} suffix`,
			want: `{"a": "close } brace", "b": {"c": 1}}`,
			ok:   true,
		},
		{
			name: "EscapedQuote",
			in:   `{"a": "quote \" and } brace"}`,
			want: `{"a": "quote \" and } brace"}`,
			ok:   true,
		},
		{name: "NoObject", in: "no json here", ok: false},
		{name: "Unbalanced", in: `{"a": 1`, ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ExtractJSONObject(%q) = %q, %v", tt.in, got, ok)
			}
		})
	}
}
