// Package sandbox executes rendered programs in an embedded interpreter.
//
// Interpreting the generated source avoids shelling out to the Go
// toolchain for every benchmark case: no compilation step, no temporary
// binaries, and failures come back as ordinary errors. Programs may only
// import fmt, os and the block package; anything else is rejected before
// evaluation.
package sandbox

import (
	"context"
	"fmt"
	"strings"

	"github.com/traefik/yaegi/interp"
	"github.com/traefik/yaegi/stdlib"

	"github.com/xyntechx/graph-abstract-code-gen/internal/scratch"
)

// Executor interprets rendered programs.
type Executor struct {
	// Whitelist of importable packages
	allowedImports map[string]bool
}

// NewExecutor creates an executor allowing exactly the imports the
// renderer emits.
func NewExecutor() *Executor {
	return &Executor{
		allowedImports: map[string]bool{
			"fmt":              true,
			"os":               true,
			scratch.ImportPath: true,
		},
	}
}

// Run evaluates a program and calls its RunProgram entry point, which
// must have the signature func() (string, error). The context bounds the
// program's run time.
func (e *Executor) Run(ctx context.Context, code string) (string, error) {
	if err := e.validateImports(code); err != nil {
		return "", fmt.Errorf("invalid imports: %w", err)
	}

	i := interp.New(interp.Options{})

	if err := i.Use(stdlib.Symbols); err != nil {
		return "", fmt.Errorf("failed to load stdlib: %w", err)
	}
	if err := i.Use(scratch.Symbols()); err != nil {
		return "", fmt.Errorf("failed to load block symbols: %w", err)
	}

	if _, err := i.Eval(code); err != nil {
		return "", fmt.Errorf("program evaluation failed: %w", err)
	}

	entry, err := i.Eval("main.RunProgram")
	if err != nil {
		return "", fmt.Errorf("RunProgram function not found: %w", err)
	}

	run, ok := entry.Interface().(func() (string, error))
	if !ok {
		return "", fmt.Errorf("RunProgram has incorrect signature (expected: func() (string, error))")
	}

	resultChan := make(chan string, 1)
	errChan := make(chan error, 1)

	go func() {
		out, err := run()
		if err != nil {
			errChan <- err
			return
		}
		resultChan <- out
	}()

	select {
	case out := <-resultChan:
		return out, nil
	case err := <-errChan:
		return "", err
	case <-ctx.Done():
		return "", fmt.Errorf("program execution timed out: %w", ctx.Err())
	}
}

// validateImports checks that the code only imports allowed packages.
func (e *Executor) validateImports(code string) error {
	var imports []string

	inImportBlock := false
	for _, line := range strings.Split(code, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if strings.HasPrefix(trimmed, "import (") {
			inImportBlock = true
			continue
		}
		if inImportBlock && strings.HasPrefix(trimmed, ")") {
			inImportBlock = false
			continue
		}

		if inImportBlock {
			imports = append(imports, strings.Trim(trimmed, `"`))
		} else if strings.HasPrefix(trimmed, "import ") {
			pkg := strings.TrimPrefix(trimmed, "import ")
			imports = append(imports, strings.Trim(pkg, `"`))
		}
	}

	var forbidden []string
	for _, pkg := range imports {
		if !e.allowedImports[pkg] {
			forbidden = append(forbidden, pkg)
		}
	}

	if len(forbidden) > 0 {
		return fmt.Errorf("forbidden imports detected: %v", forbidden)
	}
	return nil
}
