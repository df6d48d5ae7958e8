package render

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/xyntechx/graph-abstract-code-gen/internal/graph"
)

func decodeAndSort(t *testing.T, src string) (*graph.Graph, []string) {
	t.Helper()
	g, err := graph.Decode([]byte(src))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	order, err := g.TopoSort()
	if err != nil {
		t.Fatalf("TopoSort: %v", err)
	}
	return g, order
}

func TestProgramRendersCompleteSource(t *testing.T) {
	g, order := decodeAndSort(t, `{
		"nodes": {
			"node_flag": {"name": "WhenFlagClicked", "value": null},
			"node_ten": {"name": "Constant", "value": 10},
			"node_move": {"name": "MoveSteps", "value": null}
		},
		"edges": [
			{"outNodeID": "node_flag", "outPortID": "THEN", "inNodeID": "node_move", "inPortID": "EXEC"},
			{"outNodeID": "node_ten", "outPortID": "", "inNodeID": "node_move", "inPortID": "STEPS"}
		]
	}`)

	got, err := Program(g, order, "out/1/log.txt")
	if err != nil {
		t.Fatalf("Program: %v", err)
	}

	want := `package main

import (
	"fmt"
	"os"

	"github.com/xyntechx/graph-abstract-code-gen/internal/scratch"
)

func RunProgram() (string, error) {
	program := scratch.NewProgram()
	node_flag := scratch.NewWhenFlagClickedBlock()
	node_ten := 10
	node_move := scratch.NewMoveStepsBlock(node_ten)
	node_flag.ConnectNext(node_move)
	program.AddScript(node_flag)

	results, finalContext, err := program.Execute()
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile("out/1/log.txt", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	defer f.Close()

	out := fmt.Sprintf("%v%v", results, finalContext)
	if _, err := f.WriteString(out); err != nil {
		return "", err
	}
	return out, nil
}
`

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("rendered source mismatch (-want +got):\n%s", diff)
	}
}

func TestConstantRendering(t *testing.T) {
	g, order := decodeAndSort(t, `{
		"nodes": {
			"node_str": {"name": "Constant", "value": "it's \"here\""},
			"node_int": {"name": "Constant", "value": 10},
			"node_float": {"name": "Constant", "value": 2.5},
			"node_bool": {"name": "Constant", "value": true},
			"node_nil": {"name": "Constant", "value": null},
			"node_list": {"name": "Constant", "value": [1, "a"]}
		},
		"edges": []
	}`)

	got, err := Program(g, order, "log.txt")
	if err != nil {
		t.Fatalf("Program: %v", err)
	}

	wantLines := []string{
		"\tnode_str := \"it's \\\"here\\\"\"",
		"\tnode_int := 10",
		"\tnode_float := 2.5",
		"\tnode_bool := true",
		"\tvar node_nil any",
		"\tnode_list := []interface {}{1, \"a\"}",
		// unreferenced constants are discarded so the program compiles
		"\t_ = node_str",
		"\t_ = node_nil",
		"\t_ = node_list",
	}
	for _, line := range wantLines {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("missing line %q in:\n%s", line, got)
		}
	}
}

func TestMissingArgumentsRenderNil(t *testing.T) {
	g, order := decodeAndSort(t, `{
		"nodes": {"node_move": {"name": "MoveSteps", "value": null}},
		"edges": []
	}`)

	got, err := Program(g, order, "log.txt")
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	if !strings.Contains(got, "node_move := scratch.NewMoveStepsBlock(nil)") {
		t.Errorf("unwired input should render as nil:\n%s", got)
	}
}

func TestSubstackAttachmentOrder(t *testing.T) {
	g, order := decodeAndSort(t, `{
		"nodes": {
			"node_if": {"name": "IfElse", "value": null},
			"node_cond": {"name": "MouseDown", "value": null},
			"node_sayA": {"name": "Say", "value": null},
			"node_sayB": {"name": "Say", "value": null},
			"node_think": {"name": "Think", "value": null}
		},
		"edges": [
			{"outNodeID": "node_cond", "outPortID": "RESULT", "inNodeID": "node_if", "inPortID": "CONDITION"},
			{"outNodeID": "node_if", "outPortID": "SUBSTACK_IF", "inNodeID": "node_sayA", "inPortID": "EXEC"},
			{"outNodeID": "node_sayA", "outPortID": "THEN", "inNodeID": "node_sayB", "inPortID": "EXEC"},
			{"outNodeID": "node_if", "outPortID": "SUBSTACK_ELSE", "inNodeID": "node_think", "inPortID": "EXEC"}
		]
	}`)

	got, err := Program(g, order, "log.txt")
	if err != nil {
		t.Fatalf("Program: %v", err)
	}

	a := strings.Index(got, "node_if.AddToSubstack(node_sayA)")
	b := strings.Index(got, "node_if.AddToSubstack(node_sayB)")
	e := strings.Index(got, "node_if.AddToElseSubstack(node_think)")
	if a < 0 || b < 0 || e < 0 {
		t.Fatalf("missing substack statements:\n%s", got)
	}
	if !(a < b && b < e) {
		t.Errorf("substack statements out of order (if=%d, chained=%d, else=%d)", a, b, e)
	}
}

func TestConnectFollowsEdgeOrder(t *testing.T) {
	g, order := decodeAndSort(t, `{
		"nodes": {
			"node_flag": {"name": "WhenFlagClicked", "value": null},
			"node_a": {"name": "Say", "value": null},
			"node_b": {"name": "Say", "value": null}
		},
		"edges": [
			{"outNodeID": "node_flag", "outPortID": "THEN", "inNodeID": "node_a", "inPortID": "EXEC"},
			{"outNodeID": "node_a", "outPortID": "THEN", "inNodeID": "node_b", "inPortID": "EXEC"}
		]
	}`)

	got, err := Program(g, order, "log.txt")
	if err != nil {
		t.Fatalf("Program: %v", err)
	}

	first := strings.Index(got, "node_flag.ConnectNext(node_a)")
	second := strings.Index(got, "node_a.ConnectNext(node_b)")
	if first < 0 || second < 0 || first > second {
		t.Errorf("connect statements missing or out of order:\n%s", got)
	}
}

func TestScriptUsesFirstHatOnly(t *testing.T) {
	g, order := decodeAndSort(t, `{
		"nodes": {
			"node_keys": {"name": "WhenKeyPressed", "value": null},
			"node_flag": {"name": "WhenFlagClicked", "value": null}
		},
		"edges": []
	}`)

	got, err := Program(g, order, "log.txt")
	if err != nil {
		t.Fatalf("Program: %v", err)
	}

	if n := strings.Count(got, "program.AddScript("); n != 1 {
		t.Errorf("AddScript count = %d, want 1", n)
	}
	if !strings.Contains(got, "program.AddScript(node_keys)") {
		t.Errorf("first hat in topological order should become the script:\n%s", got)
	}
	if !strings.Contains(got, "\t_ = node_flag\n") {
		t.Errorf("second hat should be discarded:\n%s", got)
	}
}

func TestUnknownNodeName(t *testing.T) {
	g, order := decodeAndSort(t, `{
		"nodes": {"node_x": {"name": "Banana", "value": null}},
		"edges": []
	}`)

	_, err := Program(g, order, "log.txt")
	if err == nil || !strings.Contains(err.Error(), `unknown node name "Banana"`) {
		t.Errorf("err = %v", err)
	}
}

func TestInvalidEdgeEndpointFailsGeneration(t *testing.T) {
	g, err := graph.Decode([]byte(`{
		"nodes": {"node_say": {"name": "Say", "value": null}},
		"edges": [
			{"outNodeID": "node 3; bad", "outPortID": "", "inNodeID": "node_say", "inPortID": "MESSAGE"}
		]
	}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	_, err = Program(g, g.Order, "log.txt")
	if err == nil || !strings.Contains(err.Error(), "invalid node id") {
		t.Errorf("err = %v", err)
	}
}

func TestUndeclaredSourceRendersIdentifier(t *testing.T) {
	g, err := graph.Decode([]byte(`{
		"nodes": {"node_say": {"name": "Say", "value": null}},
		"edges": [
			{"outNodeID": "node_ghost", "outPortID": "", "inNodeID": "node_say", "inPortID": "MESSAGE"}
		]
	}`))
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	// The undefined identifier is left for the execution phase to report.
	got, err := Program(g, g.Order, "log.txt")
	if err != nil {
		t.Fatalf("Program: %v", err)
	}
	if !strings.Contains(got, "scratch.NewSayBlock(node_ghost)") {
		t.Errorf("undeclared source should render as an identifier:\n%s", got)
	}
}
