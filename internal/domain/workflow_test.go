package domain_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	controllermocks "gooze.dev/pkg/verdict/internal/controller/mocks"
	domain "gooze.dev/pkg/verdict/internal/domain"
	domainmocks "gooze.dev/pkg/verdict/internal/domain/mocks"
	m "gooze.dev/pkg/verdict/internal/model"
	"gooze.dev/pkg/verdict/internal/status"
	suitemocks "gooze.dev/pkg/verdict/internal/suite/mocks"
)

const sampleStatus = `
[]
sample/flaky: PASS, FAIL
sample/skipped: SKIP
sample/gone: FAIL

[$mode == debug]
sample/crash: CRASH
`

type workflowMocks struct {
	root         *suitemocks.MockSuite
	builder      *domainmocks.MockBuilder
	ui           *controllermocks.MockUI
	orchestrator *domainmocks.MockOrchestrator
}

func newWorkflowMocks(t *testing.T) (workflowMocks, domain.Workflow) {
	t.Helper()

	mocks := workflowMocks{
		root:         suitemocks.NewMockSuite(t),
		builder:      domainmocks.NewMockBuilder(t),
		ui:           controllermocks.NewMockUI(t),
		orchestrator: domainmocks.NewMockOrchestrator(t),
	}

	return mocks, domain.NewWorkflow(mocks.root, mocks.builder, mocks.ui, mocks.orchestrator)
}

func sampleCases(mode string) []*m.TestCase {
	names := []string{"ok", "flaky", "skipped", "crash"}
	cases := make([]*m.TestCase, len(names))

	for i, name := range names {
		cases[i] = &m.TestCase{
			Path:    []string{"sample", name},
			Command: []string{"vm", name},
			Suite:   "sample",
			Mode:    mode,
		}
	}

	return cases
}

func expectStatus(root *suitemocks.MockSuite) {
	root.EXPECT().LoadStatus(mock.Anything).RunAndReturn(func(loader *status.Loader) error {
		return loader.LoadString("sample.status", sampleStatus)
	}).Once()
}

func expectListing(root *suitemocks.MockSuite, mode string) {
	root.EXPECT().ListTests(mock.Anything, mock.Anything, mock.Anything, mode).
		Return(sampleCases(mode), nil).Once()
}

func passingRun(_ context.Context, test m.ClassifiedTest) m.TestOutput {
	return m.TestOutput{Test: test, Command: test.Case.Command}
}

func releaseArgs() domain.RunArgs {
	return domain.RunArgs{
		SelectArgs: domain.SelectArgs{Modes: []string{"release"}},
		Parallel:   2,
	}
}

func TestWorkflow_Run_Success(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.root.EXPECT().BuildRequirements(mock.Anything).Return([]string{"sample"}).Once()
	mocks.builder.EXPECT().Build(mock.Anything, []string{"sample"}, []string{"release"}).Return(nil).Once()
	expectStatus(mocks.root)
	expectListing(mocks.root, "release")

	mocks.ui.EXPECT().DisplayUnusedRules(mock.Anything, "release", mock.MatchedBy(func(rules []*status.Rule) bool {
		return len(rules) == 1 && rules[0].Raw == "sample/gone"
	})).Return().Once()
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, 2, 0, 0, 3).Return().Once()
	mocks.ui.EXPECT().DisplayStartingTest(mock.Anything, mock.Anything).Return().Times(3)
	mocks.ui.EXPECT().DisplayCompletedTest(mock.Anything, mock.Anything).Return().Times(3)
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.MatchedBy(func(s m.Summary) bool {
		return s.Total == 3 && s.Passed == 3 && len(s.Failed) == 0 && s.Skipped == 1 && !s.Interrupted
	})).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()

	mocks.orchestrator.EXPECT().RunTest(mock.Anything, mock.Anything).RunAndReturn(passingRun).Times(3)

	summary, err := wf.Run(context.Background(), releaseArgs())

	require.NoError(t, err)
	assert.True(t, summary.Succeeded())
	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 1, summary.Skipped)
}

func TestWorkflow_Run_UnexpectedResults(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	expectStatus(mocks.root)
	expectListing(mocks.root, "debug")

	mocks.ui.EXPECT().DisplayUnusedRules(mock.Anything, "debug", mock.Anything).Return().Once()
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, 1, 0, 0, 3).Return().Once()
	mocks.ui.EXPECT().DisplayStartingTest(mock.Anything, mock.Anything).Return().Times(3)
	mocks.ui.EXPECT().DisplayCompletedTest(mock.Anything, mock.Anything).Return().Times(3)
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()

	// Every case exits 1: ok did not expect it, flaky accepts it and crash
	// expects only a crash.
	mocks.orchestrator.EXPECT().RunTest(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, test m.ClassifiedTest) m.TestOutput {
			return m.TestOutput{Test: test, Output: m.CommandOutput{ExitCode: 1}}
		}).Times(3)

	args := domain.RunArgs{SelectArgs: domain.SelectArgs{Modes: []string{"debug"}}, NoBuild: true}

	summary, err := wf.Run(context.Background(), args)

	require.NoError(t, err)
	assert.False(t, summary.Succeeded())
	assert.Equal(t, 1, summary.Passed)

	var failed []string
	for _, output := range summary.Failed {
		failed = append(failed, output.Test.Case.Label())
	}

	assert.ElementsMatch(t, []string{"sample/ok", "sample/crash"}, failed)
}

func TestWorkflow_Run_BuildFailureAborts(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	buildErr := errors.New("build failed")

	mocks.root.EXPECT().BuildRequirements(mock.Anything).Return([]string{"sample"}).Once()
	mocks.builder.EXPECT().Build(mock.Anything, mock.Anything, mock.Anything).Return(buildErr).Once()

	_, err := wf.Run(context.Background(), releaseArgs())

	assert.ErrorIs(t, err, buildErr)
}

func TestWorkflow_Run_BuildsEveryFilter(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	stop := errors.New("stop here")

	mocks.root.EXPECT().BuildRequirements(mock.MatchedBy(func(p status.Path) bool { return p.String() == "a" })).
		Return([]string{"x", "y"}).Once()
	mocks.root.EXPECT().BuildRequirements(mock.MatchedBy(func(p status.Path) bool { return p.String() == "b/c" })).
		Return([]string{"y"}).Once()
	mocks.builder.EXPECT().Build(mock.Anything, []string{"x", "y", "y"}, []string{"debug", "release"}).Return(stop).Once()

	args := domain.RunArgs{SelectArgs: domain.SelectArgs{
		Paths: []string{"a", "b/ c"},
		Modes: []string{"debug", "release"},
	}}

	_, err := wf.Run(context.Background(), args)

	assert.ErrorIs(t, err, stop)
}

func TestWorkflow_Run_UnknownMode(t *testing.T) {
	_, wf := newWorkflowMocks(t)

	args := domain.RunArgs{SelectArgs: domain.SelectArgs{Modes: []string{"optdebug"}}}

	_, err := wf.Run(context.Background(), args)

	assert.ErrorIs(t, err, domain.ErrUnknownMode)
}

func TestWorkflow_Run_StatusErrorAborts(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.root.EXPECT().LoadStatus(mock.Anything).RunAndReturn(func(loader *status.Loader) error {
		return loader.LoadString("broken.status", "this is not a rule\n")
	}).Once()

	args := releaseArgs()
	args.NoBuild = true

	_, err := wf.Run(context.Background(), args)

	var loadErr *status.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, 1, loadErr.Line)
	assert.Equal(t, "broken.status", loadErr.Source)
}

func TestWorkflow_Run_ListErrorAborts(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	listErr := errors.New("binary missing")

	expectStatus(mocks.root)
	mocks.root.EXPECT().ListTests(mock.Anything, mock.Anything, mock.Anything, "release").Return(nil, listErr).Once()

	args := releaseArgs()
	args.NoBuild = true

	_, err := wf.Run(context.Background(), args)

	assert.ErrorIs(t, err, listErr)
}

func TestWorkflow_Run_Shard(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	expectStatus(mocks.root)
	expectListing(mocks.root, "release")

	mocks.ui.EXPECT().DisplayUnusedRules(mock.Anything, "release", mock.Anything).Return().Once()
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, 2, 1, 2, 1).Return().Once()
	mocks.ui.EXPECT().DisplayStartingTest(mock.Anything, mock.Anything).Return().Once()
	mocks.ui.EXPECT().DisplayCompletedTest(mock.Anything, mock.Anything).Return().Once()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()

	// The runnable cases are ok, flaky and crash; the second of two shards gets flaky.
	mocks.orchestrator.EXPECT().RunTest(mock.Anything, mock.MatchedBy(func(test m.ClassifiedTest) bool {
		return test.Case.Label() == "sample/flaky"
	})).RunAndReturn(passingRun).Once()

	args := releaseArgs()
	args.NoBuild = true
	args.ShardIndex = 1
	args.ShardCount = 2

	summary, err := wf.Run(context.Background(), args)

	require.NoError(t, err)
	assert.Equal(t, 1, summary.Total)
	assert.Equal(t, 3, summary.Skipped)
}

func TestWorkflow_Run_NothingToRun(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	mocks.root.EXPECT().LoadStatus(mock.Anything).RunAndReturn(func(loader *status.Loader) error {
		return loader.LoadString("all.status", "sample: SKIP\n")
	}).Once()
	expectListing(mocks.root, "release")
	mocks.ui.EXPECT().DisplayUnusedRules(mock.Anything, "release", mock.Anything).Return().Once()

	args := releaseArgs()
	args.NoBuild = true

	summary, err := wf.Run(context.Background(), args)

	require.NoError(t, err)
	assert.Equal(t, 0, summary.Total)
	assert.Equal(t, 4, summary.Skipped)
	mocks.ui.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestWorkflow_Run_Cancelled(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	expectStatus(mocks.root)
	expectListing(mocks.root, "release")

	mocks.ui.EXPECT().DisplayUnusedRules(mock.Anything, "release", mock.Anything).Return().Once()
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mocks.ui.EXPECT().DisplayConcurrencyInfo(mock.Anything, 2, 0, 0, 3).Return().Once()
	mocks.ui.EXPECT().DisplaySummary(mock.Anything, mock.MatchedBy(func(s m.Summary) bool {
		return s.Interrupted && s.Passed == 0 && len(s.Failed) == 0
	})).Return().Once()
	mocks.ui.EXPECT().Close(mock.Anything).Return().Once()

	args := releaseArgs()
	args.NoBuild = true

	summary, err := wf.Run(ctx, args)

	require.NoError(t, err)
	assert.True(t, summary.Interrupted)
	assert.False(t, summary.Succeeded())
	mocks.orchestrator.AssertNotCalled(t, "RunTest", mock.Anything, mock.Anything)
}

func TestWorkflow_Run_StartError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	startErr := errors.New("no terminal")

	expectStatus(mocks.root)
	expectListing(mocks.root, "release")

	mocks.ui.EXPECT().DisplayUnusedRules(mock.Anything, "release", mock.Anything).Return().Once()
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(startErr).Once()

	args := releaseArgs()
	args.NoBuild = true

	_, err := wf.Run(context.Background(), args)

	assert.ErrorIs(t, err, startErr)
}

func TestWorkflow_Run_Report(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	stop := errors.New("stop")

	expectStatus(mocks.root)
	expectListing(mocks.root, "debug")

	mocks.ui.EXPECT().DisplayUnusedRules(mock.Anything, "debug", mock.Anything).Return().Once()
	mocks.ui.EXPECT().DisplayExpectations(mock.Anything, m.Expectations{
		Total:   4,
		Skipped: 1,
		Flaky:   1,
		Pass:    1,
	}).Return().Once()
	mocks.ui.EXPECT().Start(mock.Anything, mock.Anything).Return(stop).Once()

	args := domain.RunArgs{
		SelectArgs: domain.SelectArgs{Modes: []string{"debug"}},
		NoBuild:    true,
		Report:     true,
	}

	_, err := wf.Run(context.Background(), args)

	assert.ErrorIs(t, err, stop)
}

func TestWorkflow_List(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)

	expectStatus(mocks.root)
	expectListing(mocks.root, "debug")
	expectListing(mocks.root, "release")

	mocks.ui.EXPECT().DisplayClassification(mock.Anything,
		mock.MatchedBy(func(tests []m.ClassifiedTest) bool {
			if len(tests) != 8 {
				return false
			}

			// crash is expected to crash in debug only.
			return tests[3].Outcomes.Is(m.Crash) && tests[7].Outcomes.Is(m.Pass)
		}),
		mock.MatchedBy(func(rules []*status.Rule) bool {
			// sample/gone is unused in both modes.
			return len(rules) == 2
		}),
	).Return(nil).Once()
	mocks.ui.EXPECT().DisplayExpectations(mock.Anything, mock.MatchedBy(func(e m.Expectations) bool {
		return e.Total == 8 && e.Skipped == 2
	})).Return().Once()

	err := wf.List(context.Background(), domain.ListArgs{
		SelectArgs: domain.SelectArgs{Modes: []string{"debug", "release"}},
		Report:     true,
	})

	require.NoError(t, err)
	mocks.builder.AssertNotCalled(t, "Build", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_List_DisplayError(t *testing.T) {
	mocks, wf := newWorkflowMocks(t)
	displayErr := errors.New("broken pipe")

	expectStatus(mocks.root)
	expectListing(mocks.root, "release")
	mocks.ui.EXPECT().DisplayClassification(mock.Anything, mock.Anything, mock.Anything).Return(displayErr).Once()

	err := wf.List(context.Background(), domain.ListArgs{SelectArgs: domain.SelectArgs{Modes: []string{"release"}}})

	assert.ErrorIs(t, err, displayErr)
}
