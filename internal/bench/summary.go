package bench

import (
	"fmt"
	"strings"
	"time"

	"github.com/xyntechx/graph-abstract-code-gen/internal/store"
)

const timeRounding = 10 * time.Millisecond

// Markdown renders the run summary for terminal display.
func (s *Summary) Markdown() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Run %s\n\n", s.RunID)
	fmt.Fprintf(&b, "**%s** / **%s** / **%s** - %d queries in %s\n\n",
		s.Options.Model, s.Options.Representation, s.Options.Test,
		len(s.Results), s.Duration.Round(timeRounding))

	fmt.Fprintf(&b, "- Programs generated: %d\n", s.Generated())
	fmt.Fprintf(&b, "- Executed cleanly: %d\n", s.Count(store.StatusExecuted))
	fmt.Fprintf(&b, "- Execution failures: %d\n", s.Count(store.StatusExecFailed))
	fmt.Fprintf(&b, "- Generation failures: %d\n", s.Count(store.StatusGenFailed))

	var failures []QueryResult
	for _, r := range s.Results {
		if r.Status == store.StatusGenFailed || r.Status == store.StatusExecFailed {
			failures = append(failures, r)
		}
	}

	if len(failures) == 0 {
		b.WriteString("\nAll queries executed cleanly.\n")
		return b.String()
	}

	b.WriteString("\n## Failures\n\n")
	b.WriteString("| # | Phase | Error |\n")
	b.WriteString("|---|-------|-------|\n")
	for _, f := range failures {
		phase := "execution"
		if f.Status == store.StatusGenFailed {
			phase = "generation"
		}
		fmt.Fprintf(&b, "| %d | %s | %s |\n", f.Index, phase, markdownCell(f.Detail))
	}
	return b.String()
}

// markdownCell keeps an error message on one table row.
func markdownCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "|", "\\|")
	return truncate(s, 120)
}
