package bench

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/xyntechx/graph-abstract-code-gen/internal/graph"
)

const timestampLayout = "20060102150405"

// runDirName names a run directory after its parameters and start time.
func runDirName(representation, model, test string, start time.Time) string {
	return fmt.Sprintf("%s-%s-%s-%s", representation, model, test, start.Format(timestampLayout))
}

// caseDir is the artifact directory for one query, numbered from 1.
func caseDir(runDir string, index int) string {
	return filepath.Join(runDir, strconv.Itoa(index))
}

// casePaths returns the generated program and log paths for one case.
func casePaths(dir string) (outPath, logPath string) {
	return filepath.Join(dir, "out.go"), filepath.Join(dir, "log.txt")
}

// appendGraphLog appends the decoded graph to the case log. The
// generated program later appends its execution results to the same
// file.
func appendGraphLog(logPath string, g *graph.Graph) error {
	rendered, err := g.RenderJSON()
	if err != nil {
		return err
	}
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = fmt.Fprintf(f, "%s\n\n", rendered)
	return err
}

// writeErrorArtifacts records a failed generation: the log is replaced
// with an error banner and the program file is left empty.
func writeErrorArtifacts(outPath, logPath string, genErr error) error {
	banner := fmt.Sprintf("GRAPH GEN ERROR: %s is thus empty. %v", outPath, genErr)
	if err := os.WriteFile(logPath, []byte(banner), 0644); err != nil {
		return err
	}
	return os.WriteFile(outPath, nil, 0644)
}
