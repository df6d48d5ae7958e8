package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xyntechx/graph-abstract-code-gen/internal/bench"
	"github.com/xyntechx/graph-abstract-code-gen/internal/catalog"
	"github.com/xyntechx/graph-abstract-code-gen/internal/config"
	"github.com/xyntechx/graph-abstract-code-gen/internal/llm"
	"github.com/xyntechx/graph-abstract-code-gen/internal/logging"
	"github.com/xyntechx/graph-abstract-code-gen/internal/store"
	"github.com/xyntechx/graph-abstract-code-gen/internal/ui"
)

var (
	// Global flags
	verbose    bool
	configPath string
	apiKey     string

	// Run flags
	modelFlag   string
	reprFlag    string
	testFlag    string
	outDir      string
	testsDir    string
	concurrency int
	salvageJSON bool

	// Runs flags
	runsLimit int

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "scratchtest",
	Short: "Benchmark LLM code generation over graph-based block programs",
	Long: `scratchtest asks a hosted model to express a natural-language task as
a graph of Scratch-style blocks, renders each returned graph into a
runnable program, and executes every program to verify it.

A run works through one test batch in two phases:
  1. Generate: each query is sent to the model and the returned graph
     is rendered into out/<repr>-<model>-<test>-<timestamp>/<n>/out.go
  2. Execute: each generated program runs in an embedded interpreter,
     appending its results to the case log

Example:
  scratchtest -m gpt -r proposed -t batch_1`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if apiKey != "" {
			cfg.Groq.APIKey = apiKey
		}

		level := cfg.Logging.Level
		if verbose {
			level = "debug"
		}
		logger, err = logging.New(level, cfg.Logging.File)
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runBenchmark,
}

// runsCmd lists recorded runs
var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List recent benchmark runs with their result counts",
	RunE:  listRuns,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "scratchtest.yaml", "Config file path")
	rootCmd.PersistentFlags().StringVar(&apiKey, "api-key", "", "Groq API key (or set GROQ_API_KEY env)")

	// Run flags
	rootCmd.Flags().StringVarP(&modelFlag, "model", "m", "", "Model under test: gpt, qwen, deepseek, llama (required)")
	rootCmd.Flags().StringVarP(&reprFlag, "repr", "r", "", "Node reference representation: proposed, extra_desc, no_types, alternative (required)")
	rootCmd.Flags().StringVarP(&testFlag, "test", "t", "", "Test batch: batch_1, batch_2, batch_3, batch_4 (required)")
	rootCmd.Flags().StringVar(&outDir, "out-dir", "out", "Directory run artifacts are written under")
	rootCmd.Flags().StringVar(&testsDir, "tests-dir", "", "Directory of <test>.txt files overriding the built-in batches")
	rootCmd.Flags().IntVar(&concurrency, "concurrency", 1, "Cases generated/executed at once")
	rootCmd.Flags().BoolVar(&salvageJSON, "salvage-json", false, "Recover a JSON object from a chatty completion instead of failing the case")
	rootCmd.MarkFlagRequired("model")
	rootCmd.MarkFlagRequired("repr")
	rootCmd.MarkFlagRequired("test")

	runsCmd.Flags().IntVar(&runsLimit, "limit", 10, "Number of runs to list")

	rootCmd.AddCommand(runsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runBenchmark drives one batch through generation and execution.
func runBenchmark(cmd *cobra.Command, args []string) error {
	model, err := llm.ParseModel(modelFlag)
	if err != nil {
		return err
	}
	repr, err := catalog.ParseRepresentation(reprFlag)
	if err != nil {
		return err
	}
	test, err := bench.ParseTest(testFlag)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("out-dir") {
		cfg.Run.OutDir = outDir
	}
	if cmd.Flags().Changed("tests-dir") {
		cfg.Run.TestsDir = testsDir
	}
	if cmd.Flags().Changed("concurrency") {
		cfg.Run.Concurrency = concurrency
	}
	if cmd.Flags().Changed("salvage-json") {
		cfg.Run.SalvageJSON = salvageJSON
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal")
		cancel()
	}()

	groqCfg := llm.DefaultGroqConfig(cfg.Groq.APIKey, model)
	if cfg.Groq.BaseURL != "" {
		groqCfg.BaseURL = cfg.Groq.BaseURL
	}
	groqCfg.Timeout = cfg.GroqTimeout()
	client := llm.NewGroqClientWithConfig(groqCfg, logger)

	st, err := store.NewRunStore(cfg.Run.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open run store: %w", err)
	}
	defer st.Close()

	runner := &bench.Runner{
		Client:   client,
		Store:    st,
		Logger:   logger,
		Progress: os.Stdout,
	}

	summary, err := runner.Run(ctx, bench.Options{
		Model:          model,
		Representation: repr,
		Test:           test,
		OutDir:         cfg.Run.OutDir,
		TestsDir:       cfg.Run.TestsDir,
		Concurrency:    cfg.Run.Concurrency,
		ExecTimeout:    cfg.ExecTimeout(),
		SalvageJSON:    cfg.Run.SalvageJSON,
	})
	if err != nil {
		return err
	}

	fmt.Print(ui.RenderMarkdown(summary.Markdown()))
	fmt.Printf("Results saved in %s\n", summary.Dir)
	return nil
}

// listRuns prints recent runs with per-status counts.
func listRuns(cmd *cobra.Command, args []string) error {
	st, err := store.NewRunStore(cfg.Run.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to open run store: %w", err)
	}
	defer st.Close()

	runs, err := st.RecentRuns(runsLimit)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}

	var b strings.Builder
	b.WriteString("# Recent Runs\n\n")
	b.WriteString("| Started | Model | Repr | Test | Executed | Failed | Dir |\n")
	b.WriteString("|---------|-------|------|------|----------|--------|-----|\n")
	for _, run := range runs {
		counts, err := st.CountByStatus(run.ID)
		if err != nil {
			return err
		}
		failed := counts[store.StatusGenFailed] + counts[store.StatusExecFailed]
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %d | %d | %s |\n",
			run.StartedAt.Format("2006-01-02 15:04:05"),
			run.Model, run.Representation, run.TestName,
			counts[store.StatusExecuted], failed, run.OutDir,
		)
	}
	fmt.Print(ui.RenderMarkdown(b.String()))
	return nil
}
