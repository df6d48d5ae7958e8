// Package prompt assembles the system and user messages sent to the model.
// The system prompt templates are baked into the binary with go:embed and
// carry a single {{node_reference}} placeholder that is filled with the node
// reference rendered for the requested representation.
package prompt

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xyntechx/graph-abstract-code-gen/internal/catalog"
)

//go:embed templates
var templates embed.FS

const refPlaceholder = "{{node_reference}}"

var (
	systemText    = mustTemplate("templates/system.md")
	systemAltText = mustTemplate("templates/system_alternative.md")
)

// mustTemplate reads an embedded template. Embedded files end with a
// newline the wire prompt should not carry.
func mustTemplate(name string) string {
	data, err := templates.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("prompt: missing embedded template %s: %v", name, err))
	}
	return strings.TrimRight(string(data), "\n")
}

// System renders the system prompt for a representation. The alternative
// representation swaps in the adjacency-style output format section but keeps
// the same node reference as the proposed representation.
func System(repr catalog.Representation) (string, error) {
	text := systemText
	if repr == catalog.ReprAlternative {
		text = systemAltText
	}

	ref, err := catalog.ReferenceJSON(repr)
	if err != nil {
		return "", fmt.Errorf("render node reference: %w", err)
	}
	return strings.ReplaceAll(text, refPlaceholder, ref), nil
}

// UserMessage wraps a benchmark query in the header the system prompt
// tells the model to expect.
func UserMessage(query string) string {
	return "**User Query**: " + query
}
