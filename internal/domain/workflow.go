// Package domain classifies the selected tests and runs them.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gooze.dev/pkg/verdict/internal/controller"
	m "gooze.dev/pkg/verdict/internal/model"
	"gooze.dev/pkg/verdict/internal/status"
	"gooze.dev/pkg/verdict/internal/suite"
)

// ErrUnknownMode is returned for a build mode outside suite.Modes.
var ErrUnknownMode = errors.New("unknown mode")

// SelectArgs chooses which tests are classified.
type SelectArgs struct {
	// Paths are slash-separated filters; none means every suite.
	Paths []string
	Modes []string
}

// ListArgs contains the arguments for listing classified tests.
type ListArgs struct {
	SelectArgs
	Report bool
}

// RunArgs contains the arguments for a test run.
type RunArgs struct {
	SelectArgs
	NoBuild    bool
	Report     bool
	Parallel   int
	ShardIndex int
	ShardCount int
}

// Workflow is what the CLI drives.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) (m.Summary, error)
	List(ctx context.Context, args ListArgs) error
}

type workflow struct {
	root suite.Suite
	Builder
	controller.UI
	Orchestrator
}

// NewWorkflow creates a Workflow over root, normally a *suite.Root.
func NewWorkflow(
	root suite.Suite,
	builder Builder,
	ui controller.UI,
	orchestrator Orchestrator,
) Workflow {
	return &workflow{
		root:         root,
		Builder:      builder,
		UI:           ui,
		Orchestrator: orchestrator,
	}
}

// classification is every classified test of a selection plus the
// rules none of them matched, per mode.
type classification struct {
	tests  []m.ClassifiedTest
	unused map[string][]*status.Rule
}

func (w *workflow) List(ctx context.Context, args ListArgs) error {
	filters, err := compileFilters(args.Paths)
	if err != nil {
		return err
	}

	if err := validateModes(args.Modes); err != nil {
		return err
	}

	result, err := w.classify(ctx, filters, args.Modes)
	if err != nil {
		return err
	}

	var unused []*status.Rule
	for _, mode := range args.Modes {
		unused = append(unused, result.unused[mode]...)
	}

	if err := w.DisplayClassification(ctx, result.tests, unused); err != nil {
		slog.Error("Failed to display classification", "error", err)
		return fmt.Errorf("display: %w", err)
	}

	if args.Report {
		w.DisplayExpectations(ctx, CountExpectations(result.tests))
	}

	return nil
}

func (w *workflow) Run(ctx context.Context, args RunArgs) (m.Summary, error) {
	filters, err := compileFilters(args.Paths)
	if err != nil {
		return m.Summary{}, err
	}

	if err := validateModes(args.Modes); err != nil {
		return m.Summary{}, err
	}

	if !args.NoBuild {
		if err := w.build(ctx, filters, args.Modes); err != nil {
			return m.Summary{}, err
		}
	}

	result, err := w.classify(ctx, filters, args.Modes)
	if err != nil {
		return m.Summary{}, err
	}

	for _, mode := range args.Modes {
		w.DisplayUnusedRules(ctx, mode, result.unused[mode])
	}

	if args.Report {
		w.DisplayExpectations(ctx, CountExpectations(result.tests))
	}

	runnable := make([]m.ClassifiedTest, 0, len(result.tests))

	for _, test := range result.tests {
		if test.ShouldRun() {
			runnable = append(runnable, test)
		}
	}

	selected := ShardCases(runnable, args.ShardIndex, args.ShardCount)
	if len(selected) == 0 {
		return m.Summary{Skipped: len(result.tests)}, nil
	}

	return w.runTests(ctx, selected, len(result.tests)-len(selected), args)
}

func (w *workflow) build(ctx context.Context, filters []status.Path, modes []string) error {
	var reqs []string
	for _, filter := range filters {
		reqs = append(reqs, w.root.BuildRequirements(filter)...)
	}

	if err := w.Build(ctx, reqs, modes); err != nil {
		return fmt.Errorf("build requirements: %w", err)
	}

	return nil
}

// classify loads the status files once and classifies every listed test
// for each filter and mode.
func (w *workflow) classify(ctx context.Context, filters []status.Path, modes []string) (*classification, error) {
	loader := status.NewLoader()
	if err := w.root.LoadStatus(loader); err != nil {
		slog.Error("Failed to load status files", "error", err)
		return nil, fmt.Errorf("load status: %w", err)
	}

	config := loader.Configuration()
	result := &classification{unused: make(map[string][]*status.Rule)}

	for _, filter := range filters {
		for _, mode := range modes {
			cases, err := w.root.ListTests(ctx, nil, filter, mode)
			if err != nil {
				slog.Error("Failed to list tests", "filter", filter.String(), "mode", mode, "error", err)
				return nil, fmt.Errorf("list tests %q (%s): %w", filter.String(), mode, err)
			}

			classified, err := config.Classify(cases, status.NewEnv(map[string]string{"mode": mode}))
			if err != nil {
				return nil, fmt.Errorf("classify %q (%s): %w", filter.String(), mode, err)
			}

			for _, rule := range classified.Unused {
				slog.Debug("Rule was not used", "rule", rule.Raw, "source", rule.Source, "line", rule.Line, "mode", mode)
			}

			result.tests = append(result.tests, classified.Tests...)
			result.unused[mode] = append(result.unused[mode], classified.Unused...)
		}
	}

	return result, nil
}

// runTests runs tests through at most args.Parallel workers. Once ctx is
// cancelled no further test is started; outputs already produced are still
// reported.
func (w *workflow) runTests(ctx context.Context, tests []m.ClassifiedTest, skipped int, args RunArgs) (m.Summary, error) {
	logger := slog.With("run", uuid.NewString())

	parallel := max(args.Parallel, 1)

	if err := w.Start(ctx, controller.WithTotal(len(tests))); err != nil {
		logger.Error("Failed to start UI", "error", err)
		return m.Summary{}, err
	}
	defer w.Close(ctx)

	w.DisplayConcurrencyInfo(ctx, parallel, args.ShardIndex, args.ShardCount, len(tests))

	logger.Info("Running tests", "count", len(tests), "parallel", parallel)

	var (
		mu      sync.Mutex
		summary = m.Summary{Total: len(tests), Skipped: skipped}
		group   errgroup.Group
	)

	group.SetLimit(parallel)

	start := time.Now()

	for _, test := range tests {
		if ctx.Err() != nil {
			break
		}

		group.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}

			w.DisplayStartingTest(ctx, test)

			output := w.RunTest(ctx, test)

			w.DisplayCompletedTest(ctx, output)

			mu.Lock()
			defer mu.Unlock()

			if output.Unexpected() {
				logger.Debug("Unexpected result", "test", test.Label(), "expected", test.Outcomes.String(), "exit_code", output.Output.ExitCode)
				summary.Failed = append(summary.Failed, output)
			} else {
				summary.Passed++
			}

			return nil
		})
	}

	// Workers never return an error.
	_ = group.Wait()

	summary.Elapsed = time.Since(start)
	summary.Interrupted = ctx.Err() != nil

	if summary.Interrupted {
		logger.Info("Run interrupted", "completed", summary.Passed+len(summary.Failed), "total", summary.Total)
	}

	logger.Info("Run finished", "passed", summary.Passed, "failed", len(summary.Failed), "elapsed", summary.Elapsed)

	w.DisplaySummary(ctx, summary)

	return summary, nil
}

// ShardCases returns the tests whose position modulo count equals index.
// A count of zero or less selects everything.
func ShardCases(tests []m.ClassifiedTest, index, count int) []m.ClassifiedTest {
	if count <= 0 {
		return tests
	}

	var shard []m.ClassifiedTest

	for i, test := range tests {
		if i%count == index {
			shard = append(shard, test)
		}
	}

	return shard
}

// compileFilters parses raw path filters. No filters selects everything.
func compileFilters(paths []string) ([]status.Path, error) {
	if len(paths) == 0 {
		return []status.Path{nil}, nil
	}

	filters := make([]status.Path, 0, len(paths))

	for _, raw := range paths {
		filter := status.SplitPath(raw)
		if err := filter.Compile(); err != nil {
			return nil, fmt.Errorf("path %q: %w", raw, err)
		}

		filters = append(filters, filter)
	}

	return filters, nil
}

func validateModes(modes []string) error {
	if len(modes) == 0 {
		return fmt.Errorf("%w: none given", ErrUnknownMode)
	}

	for _, mode := range modes {
		if !suite.ValidMode(mode) {
			return fmt.Errorf("%w: %s (known: %v)", ErrUnknownMode, mode, suite.Modes)
		}
	}

	return nil
}
