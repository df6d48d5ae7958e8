package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
)

const barWidth = 30

// ProgressReporter draws a single-line progress bar for one run phase.
// Workers advance it concurrently; rendering is serialized internally.
type ProgressReporter struct {
	mu    sync.Mutex
	w     io.Writer
	bar   progress.Model
	phase string
	done  int
	total int
}

// NewProgressReporter returns a reporter for total units of work under
// the named phase.
func NewProgressReporter(w io.Writer, phase string, total int) *ProgressReporter {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = barWidth
	return &ProgressReporter{w: w, bar: bar, phase: phase, total: total}
}

// Advance records one completed unit and redraws the bar.
func (r *ProgressReporter) Advance(label string) {
	r.redraw(labelStyle.Render(label))
}

// Fail records one failed unit and redraws the bar with the label
// highlighted.
func (r *ProgressReporter) Fail(label string) {
	r.redraw(errorStyle.Render(label))
}

func (r *ProgressReporter) redraw(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.done < r.total {
		r.done++
	}
	frac := 1.0
	if r.total > 0 {
		frac = float64(r.done) / float64(r.total)
	}
	fmt.Fprintf(r.w, "\r\033[K%s %s %s %s",
		phaseStyle.Render(r.phase),
		r.bar.ViewAs(frac),
		counterStyle.Render(fmt.Sprintf("%d/%d", r.done, r.total)),
		label,
	)
}

// Finish terminates the progress line.
func (r *ProgressReporter) Finish() {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w)
}
