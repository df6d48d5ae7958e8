// Package render emits the runnable Go source for a generated graph.
//
// The emitted program mirrors the graph statement by statement: constant
// literals and block constructor calls in topological order, substack
// attachments, THEN->EXEC connections in edge order, and the first hat
// block registered as the program's script. When run, the program appends
// its results and final state to the run's log file.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xyntechx/graph-abstract-code-gen/internal/catalog"
	"github.com/xyntechx/graph-abstract-code-gen/internal/graph"
	"github.com/xyntechx/graph-abstract-code-gen/internal/scratch"
)

const header = `package main

import (
	"fmt"
	"os"

	"` + scratch.ImportPath + `"
)

func RunProgram() (string, error) {
	program := scratch.NewProgram()
`

// Program renders the source for a graph. order is the graph's
// topological ordering; logPath is baked into the program so it can
// append its own results when executed.
//
// Edge endpoints that name an undeclared node are emitted as-is when
// they look like node ids, so the failure surfaces as an undefined
// identifier at execution time rather than a generation error.
func Program(g *graph.Graph, order []string, logPath string) (string, error) {
	var (
		stmts        []string
		substack     []string
		substackElse []string
	)
	referenced := make(map[string]bool)

	add := func(format string, args ...any) {
		stmts = append(stmts, "\t"+fmt.Sprintf(format, args...))
	}
	use := func(id string) (string, error) {
		if !graph.ValidNodeID(id) {
			return "", fmt.Errorf("invalid node id %q in edge", id)
		}
		referenced[id] = true
		return id, nil
	}

	// Create blocks
	for _, id := range order {
		node := g.Nodes[id]
		if node.Name == "Constant" {
			stmts = append(stmts, constantStmt(id, node.Value))
			continue
		}

		spec, ok := catalog.Lookup(node.Name)
		if !ok {
			return "", fmt.Errorf("unknown node name %q", node.Name)
		}

		ports := spec.ArgPorts()
		args := make([]string, 0, len(ports))
		for _, port := range ports {
			src := g.ArgSource(id, port.ID)
			if src == "" {
				args = append(args, "nil")
				continue
			}
			ref, err := use(src)
			if err != nil {
				return "", err
			}
			args = append(args, ref)
		}

		for _, port := range spec.OutPorts {
			switch port.ID {
			case catalog.PortSubstack, catalog.PortSubstackIf:
				substack = append(substack, id)
			case catalog.PortSubstackElse:
				substackElse = append(substackElse, id)
			}
		}

		add("%s := scratch.New%sBlock(%s)", id, node.Name, strings.Join(args, ", "))
	}

	// Add substacks
	for _, id := range substack {
		for _, block := range g.SubstackChain(id) {
			ref, err := use(block)
			if err != nil {
				return "", err
			}
			referenced[id] = true
			add("%s.AddToSubstack(%s)", id, ref)
		}
	}
	for _, id := range substackElse {
		for _, block := range g.ElseChain(id) {
			ref, err := use(block)
			if err != nil {
				return "", err
			}
			referenced[id] = true
			add("%s.AddToElseSubstack(%s)", id, ref)
		}
	}

	// Connect blocks
	for _, e := range g.Edges {
		if e.OutPortID == catalog.PortThen && e.InPortID == catalog.PortExec {
			out, err := use(e.OutNodeID)
			if err != nil {
				return "", err
			}
			in, err := use(e.InNodeID)
			if err != nil {
				return "", err
			}
			add("%s.ConnectNext(%s)", out, in)
		}
	}

	// Register the first hat block as the script
	for _, id := range order {
		if spec, ok := catalog.Lookup(g.Nodes[id].Name); ok && spec.Kind == catalog.KindHat {
			referenced[id] = true
			add("program.AddScript(%s)", id)
			break
		}
	}

	// Declared but never referenced variables would not compile.
	for _, id := range order {
		if !referenced[id] {
			add("_ = %s", id)
		}
	}

	var b strings.Builder
	b.WriteString(header)
	for _, s := range stmts {
		b.WriteString(s)
		b.WriteString("\n")
	}
	b.WriteString(footer(logPath))
	return b.String(), nil
}

// constantStmt renders a Constant node as a variable declaration.
func constantStmt(id string, val any) string {
	switch v := val.(type) {
	case nil:
		return fmt.Sprintf("\tvar %s any", id)
	case string:
		return fmt.Sprintf("\t%s := %s", id, strconv.Quote(v))
	case bool:
		return fmt.Sprintf("\t%s := %t", id, v)
	case float64:
		return fmt.Sprintf("\t%s := %s", id, strconv.FormatFloat(v, 'g', -1, 64))
	default:
		return fmt.Sprintf("\t%s := %#v", id, v)
	}
}

func footer(logPath string) string {
	return fmt.Sprintf(`
	results, finalContext, err := program.Execute()
	if err != nil {
		return "", err
	}

	f, err := os.OpenFile(%q, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return "", err
	}
	defer f.Close()

	out := fmt.Sprintf("%%v%%v", results, finalContext)
	if _, err := f.WriteString(out); err != nil {
		return "", err
	}
	return out, nil
}
`, logPath)
}
