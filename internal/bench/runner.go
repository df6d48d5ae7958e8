package bench

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/xyntechx/graph-abstract-code-gen/internal/catalog"
	"github.com/xyntechx/graph-abstract-code-gen/internal/graph"
	"github.com/xyntechx/graph-abstract-code-gen/internal/llm"
	"github.com/xyntechx/graph-abstract-code-gen/internal/prompt"
	"github.com/xyntechx/graph-abstract-code-gen/internal/render"
	"github.com/xyntechx/graph-abstract-code-gen/internal/sandbox"
	"github.com/xyntechx/graph-abstract-code-gen/internal/store"
	"github.com/xyntechx/graph-abstract-code-gen/internal/ui"
)

// Options configures one benchmark run.
type Options struct {
	Model          llm.Model
	Representation catalog.Representation
	Test           string
	OutDir         string
	TestsDir       string
	Concurrency    int
	ExecTimeout    time.Duration
	SalvageJSON    bool
}

// QueryResult is the recorded outcome of one query. Index matches the
// case's artifact directory.
type QueryResult struct {
	Index  int
	Query  string
	Status string
	Detail string
}

// Summary reports a finished run.
type Summary struct {
	RunID    string
	Dir      string
	Options  Options
	Results  []QueryResult
	Duration time.Duration
}

// Count tallies results with the given status.
func (s *Summary) Count(status string) int {
	n := 0
	for _, r := range s.Results {
		if r.Status == status {
			n++
		}
	}
	return n
}

// Generated counts queries whose program generation succeeded.
func (s *Summary) Generated() int {
	return len(s.Results) - s.Count(store.StatusGenFailed)
}

// Runner drives a benchmark run. Client is required; a nil Store skips
// run recording, a nil Progress skips live progress rendering.
type Runner struct {
	Client   llm.Client
	Store    *store.RunStore
	Executor *sandbox.Executor
	Logger   *zap.Logger
	Progress io.Writer

	now func() time.Time
}

// Run generates a program for every query in the batch, then executes
// every generated program. Per-query failures are recorded, not fatal.
func (r *Runner) Run(ctx context.Context, opts Options) (*Summary, error) {
	if r.Client == nil {
		return nil, fmt.Errorf("llm client required")
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	executor := r.Executor
	if executor == nil {
		executor = sandbox.NewExecutor()
	}
	nowFn := r.now
	if nowFn == nil {
		nowFn = time.Now
	}
	concurrency := opts.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}
	execTimeout := opts.ExecTimeout
	if execTimeout <= 0 {
		execTimeout = 30 * time.Second
	}

	queries, err := Queries(opts.TestsDir, opts.Test)
	if err != nil {
		return nil, err
	}

	system, err := prompt.System(opts.Representation)
	if err != nil {
		return nil, err
	}

	start := nowFn()
	dir := filepath.Join(opts.OutDir, runDirName(string(opts.Representation), string(opts.Model), opts.Test, start))
	runID := uuid.NewString()

	if r.Store != nil {
		if err := r.Store.CreateRun(runID, string(opts.Model), string(opts.Representation), opts.Test, dir); err != nil {
			return nil, fmt.Errorf("failed to record run: %w", err)
		}
	}

	logger.Info("run started",
		zap.String("run_id", runID),
		zap.String("model", string(opts.Model)),
		zap.String("representation", string(opts.Representation)),
		zap.String("test", opts.Test),
		zap.Int("queries", len(queries)),
		zap.String("dir", dir),
	)

	results := make([]QueryResult, len(queries))

	// Phase 1: generate a program for every query.
	bar := r.newBar("generate", len(queries))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)
	for i, query := range queries {
		i, query := i, query
		eg.Go(func() error {
			res := r.generateCase(egCtx, logger, system, query, opts, dir, i+1)
			results[i] = res
			r.record(logger, runID, res)
			if res.Status == store.StatusGenFailed {
				bar.Fail(truncate(query, 40))
			} else {
				bar.Advance(truncate(query, 40))
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	bar.Finish()

	// Phase 2: execute every generated program.
	bar = r.newBar("execute", len(queries))
	eg, egCtx = errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)
	for i := range results {
		i := i
		eg.Go(func() error {
			res := &results[i]
			if res.Status != store.StatusGenerated {
				bar.Advance("skipped")
				return nil
			}
			outPath, _ := casePaths(caseDir(dir, res.Index))
			out, err := executeCase(egCtx, executor, outPath, execTimeout)
			if err != nil {
				res.Status = store.StatusExecFailed
				res.Detail = err.Error()
				bar.Fail(truncate(res.Query, 40))
			} else {
				res.Status = store.StatusExecuted
				logger.Debug("program output",
					zap.Int("case", res.Index),
					zap.String("output", out),
				)
				bar.Advance(truncate(res.Query, 40))
			}
			r.record(logger, runID, *res)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	bar.Finish()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if r.Store != nil {
		if err := r.Store.FinishRun(runID); err != nil {
			logger.Warn("failed to finish run record", zap.Error(err))
		}
	}

	summary := &Summary{
		RunID:    runID,
		Dir:      dir,
		Options:  opts,
		Results:  results,
		Duration: nowFn().Sub(start),
	}

	logger.Info("run finished",
		zap.String("run_id", runID),
		zap.Int("executed", summary.Count(store.StatusExecuted)),
		zap.Int("exec_failed", summary.Count(store.StatusExecFailed)),
		zap.Int("gen_failed", summary.Count(store.StatusGenFailed)),
		zap.Duration("duration", summary.Duration),
	)

	return summary, nil
}

// generateCase asks the model for a graph and renders it into the
// case's program file. Failures leave the error banner in the case log
// and an empty program file.
func (r *Runner) generateCase(ctx context.Context, logger *zap.Logger, system, query string, opts Options, runDir string, index int) QueryResult {
	res := QueryResult{Index: index, Query: query}

	dir := caseDir(runDir, index)
	if err := os.MkdirAll(dir, 0755); err != nil {
		res.Status = store.StatusGenFailed
		res.Detail = err.Error()
		return res
	}
	outPath, logPath := casePaths(dir)

	if err := r.buildProgram(ctx, system, query, opts, outPath, logPath); err != nil {
		logger.Warn("generation failed",
			zap.Int("case", index),
			zap.String("query", query),
			zap.Error(err),
		)
		if werr := writeErrorArtifacts(outPath, logPath, err); werr != nil {
			logger.Warn("failed to write error artifacts", zap.Int("case", index), zap.Error(werr))
		}
		res.Status = store.StatusGenFailed
		res.Detail = err.Error()
		return res
	}

	res.Status = store.StatusGenerated
	return res
}

func (r *Runner) buildProgram(ctx context.Context, system, query string, opts Options, outPath, logPath string) error {
	raw, err := r.Client.CompleteWithSystem(ctx, system, prompt.UserMessage(query))
	if err != nil {
		return err
	}
	if opts.SalvageJSON {
		if obj, ok := graph.ExtractJSONObject(raw); ok {
			raw = obj
		}
	}

	g, err := decodeGraph([]byte(raw), opts.Representation)
	if err != nil {
		return err
	}
	order, err := g.TopoSort()
	if err != nil {
		return err
	}

	if err := appendGraphLog(logPath, g); err != nil {
		return err
	}

	src, err := render.Program(g, order, logPath)
	if err != nil {
		return err
	}
	return os.WriteFile(outPath, []byte(src), 0644)
}

// executeCase interprets one generated program under the run's
// execution timeout.
func executeCase(ctx context.Context, executor *sandbox.Executor, outPath string, timeout time.Duration) (string, error) {
	src, err := os.ReadFile(outPath)
	if err != nil {
		return "", err
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return executor.Run(runCtx, string(src))
}

// decodeGraph parses a completion into the canonical graph form,
// converting the adjacency-list encoding when needed.
func decodeGraph(data []byte, representation catalog.Representation) (*graph.Graph, error) {
	if representation == catalog.ReprAlternative {
		alt, err := graph.DecodeAlt(data)
		if err != nil {
			return nil, err
		}
		return graph.ConvertAlt(alt)
	}
	return graph.Decode(data)
}

func (r *Runner) record(logger *zap.Logger, runID string, res QueryResult) {
	if r.Store == nil {
		return
	}
	if err := r.Store.RecordResult(runID, res.Index, res.Query, res.Status, res.Detail); err != nil {
		logger.Warn("failed to record result", zap.Int("case", res.Index), zap.Error(err))
	}
}

func (r *Runner) newBar(phase string, total int) *ui.ProgressReporter {
	w := r.Progress
	if w == nil {
		w = io.Discard
	}
	return ui.NewProgressReporter(w, phase, total)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
