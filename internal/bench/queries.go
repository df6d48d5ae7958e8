// Package bench drives benchmark runs: each query in a test batch is
// turned into a program by the model under test, then every generated
// program is executed and its outcome recorded.
package bench

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed tests/*.txt
var testsFS embed.FS

// Tests returns the built-in test batch names.
func Tests() []string {
	entries, err := testsFS.ReadDir("tests")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".txt"))
	}
	sort.Strings(names)
	return names
}

// ParseTest validates a test batch name.
func ParseTest(s string) (string, error) {
	for _, name := range Tests() {
		if s == name {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown test %q (choices: %s)", s, strings.Join(Tests(), ", "))
}

// Queries loads the named batch: the whole file is trimmed, then split
// line by line. When dir is non-empty, <dir>/<name>.txt is read instead
// of the built-in batch.
func Queries(dir, name string) ([]string, error) {
	var data []byte
	var err error
	if dir != "" {
		data, err = os.ReadFile(filepath.Join(dir, name+".txt"))
	} else {
		data, err = testsFS.ReadFile("tests/" + name + ".txt")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read test %s: %w", name, err)
	}

	content := strings.ReplaceAll(string(data), "\r\n", "\n")
	return strings.Split(strings.TrimSpace(content), "\n"), nil
}
