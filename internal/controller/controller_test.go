package controller

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/verdict/internal/model"
	"gooze.dev/pkg/verdict/internal/status"
)

func classified(label string, outcomes ...m.Outcome) m.ClassifiedTest {
	return m.ClassifiedTest{
		Case:     &m.TestCase{Path: strings.Split(label, "/"), Mode: "release"},
		Outcomes: outcomes,
	}
}

func passing(label string) m.TestOutput {
	return m.TestOutput{Test: classified(label, m.Pass), Command: []string{"shell", label}}
}

func failing(label string) m.TestOutput {
	return m.TestOutput{
		Test:    classified(label, m.Pass),
		Command: []string{"shell", "with space"},
		Output:  m.CommandOutput{ExitCode: 1, Stdout: "out\n", Stderr: "err\n"},
	}
}

func TestNewUI(t *testing.T) {
	for _, style := range Styles {
		ui, err := NewUI(style, &bytes.Buffer{})
		require.NoError(t, err, style)
		require.NotNil(t, ui)
	}

	_, err := NewUI("fancy", &bytes.Buffer{})
	assert.ErrorContains(t, err, "unknown progress style")
}

func TestSimpleUI_Verbose(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	ui := NewSimpleUI(out, StyleVerbose)

	require.NoError(t, ui.Start(ctx, WithTotal(2)))
	ui.DisplayConcurrencyInfo(ctx, 4, 0, 1, 2)
	ui.DisplayCompletedTest(ctx, passing("suite/a"))
	ui.DisplayCompletedTest(ctx, failing("suite/b"))
	ui.DisplaySummary(ctx, m.Summary{Total: 2, Passed: 1, Failed: []m.TestOutput{failing("suite/b")}})

	text := out.String()
	assert.Contains(t, text, "Running 2 tests\n")
	assert.Contains(t, text, "Running 2 tests with 4 worker(s) (shard 0/1)\n")
	assert.Contains(t, text, "suite/a (release): pass\n")
	assert.Contains(t, text, "suite/b (release): FAIL\n")
	assert.Contains(t, text, "=== suite/b (release) ===\nCommand: shell \"with space\"\n--- stderr ---\nerr\n--- stdout ---\nout\n")
	assert.True(t, strings.HasSuffix(text, "\n===\n=== 1 tests failed\n===\n"), text)
}

func TestSimpleUI_DotsWrap(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	ui := NewSimpleUI(out, StyleDots)

	require.NoError(t, ui.Start(ctx, WithTotal(52)))

	for i := 0; i < 51; i++ {
		ui.DisplayCompletedTest(ctx, passing("a"))
	}

	ui.DisplayCompletedTest(ctx, failing("b"))
	ui.DisplaySummary(ctx, m.Summary{Total: 52, Passed: 52})

	lines := strings.Split(out.String(), "\n")
	assert.Equal(t, "Running 52 tests", lines[0])
	assert.Equal(t, strings.Repeat(".", 50), lines[1])
	assert.Equal(t, ".F", lines[2])
	assert.Contains(t, out.String(), "=== All tests succeeded")
}

func TestSimpleUI_UnusedRulesOnlyWhenVerbose(t *testing.T) {
	rule := &status.Rule{Path: status.SplitPath("a/b"), Source: "x.status", Line: 3}

	out := &bytes.Buffer{}
	NewSimpleUI(out, StyleDots).DisplayUnusedRules(context.Background(), "debug", []*status.Rule{rule})
	assert.Empty(t, out.String())

	NewSimpleUI(out, StyleVerbose).DisplayUnusedRules(context.Background(), "debug", []*status.Rule{rule})
	assert.Equal(t, "[debug] Rule for 'a/b' (x.status:3) was not used.\n", out.String())
}

func TestCompactUI_Mono(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	ui := NewCompactUI(out, monoTemplates())

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	ui.now = func() time.Time { return clock }

	require.NoError(t, ui.Start(ctx, WithTotal(4)))

	ui.DisplayStartingTest(ctx, classified("suite/a", m.Pass))
	assert.Equal(t, "\r\r[00:00|%   0|+   0|-   0]: suite/a (release)", out.String())

	ui.DisplayCompletedTest(ctx, passing("suite/a"))

	clock = clock.Add(75 * time.Second)
	out.Reset()
	ui.DisplayStartingTest(ctx, classified("suite/b", m.Pass))

	clear := "\r" + strings.Repeat(" ", len("[00:00|%   0|+   0|-   0]: suite/a (release)")) + "\r"
	assert.Equal(t, clear+"[01:15|%  25|+   1|-   0]: suite/b (release)", out.String())

	out.Reset()
	ui.DisplayCompletedTest(ctx, failing("suite/b"))
	assert.Contains(t, out.String(), "\n--- Failed: suite/b (release) ---\nCommand: shell \"with space\"\n")

	out.Reset()
	ui.DisplaySummary(ctx, m.Summary{})
	assert.Equal(t, "\r\r[01:15|%  50|+   1|-   1]: Done\n", out.String())
}

func TestCompactUI_ColorWithoutTerminal(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	ui := NewCompactUI(out, colorTemplates(out))

	require.NoError(t, ui.Start(ctx, WithTotal(1)))
	ui.DisplayStartingTest(ctx, classified("x", m.Pass))

	assert.Equal(t, "\033[1K\r[00:00|%   0|+   0|-   0]: x (release)", out.String())
}

func TestColorTemplates_DecorateFailureDetails(t *testing.T) {
	out := &bytes.Buffer{}
	templates := colorTemplates(out)

	for _, render := range []decorate{templates.percent, templates.passed, templates.failed, templates.stdout, templates.stderr} {
		assert.Equal(t, "text", render("text"))
	}

	details := &bytes.Buffer{}
	writeFailure(details, failing("sample/broken"), templates.stdout, templates.stderr)

	assert.Contains(t, details.String(), "err")
	assert.Contains(t, details.String(), "out")
	assert.NotContains(t, details.String(), "\033[")
}

func TestTruncate(t *testing.T) {
	prefix := "[00:00|%   0|+   0|-   0]: "

	assert.Equal(t, "short", truncate(prefix, "short", statusLineWidth))

	long := strings.Repeat("x", 100)
	got := truncate(prefix, long, statusLineWidth)
	assert.Len(t, prefix+got, statusLineWidth)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestExpectationsReport(t *testing.T) {
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"), goldie.WithNameSuffix(".golden"))

	report := renderExpectations(m.Expectations{Total: 120, Skipped: 7, Flaky: 3, Pass: 100, FailOk: 6, Fail: 4})
	g.Assert(t, "expectations", []byte(report))
}

func TestClassificationTable(t *testing.T) {
	negative := classified("suite/neg", m.Pass)
	negative.Case.Negative = true

	rule := &status.Rule{Path: status.SplitPath("suite/gone"), Source: "suite.status", Line: 9}

	out := &bytes.Buffer{}
	ui := NewSimpleUI(out, StyleVerbose)
	require.NoError(t, ui.DisplayClassification(context.Background(), []m.ClassifiedTest{
		classified("suite/a", m.Fail, m.Okay),
		classified("suite/slow", m.Slow),
		negative,
	}, []*status.Rule{rule}))

	text := out.String()
	assert.Contains(t, text, "suite/a")
	assert.Contains(t, text, "{fail, okay}")
	assert.Contains(t, text, "yes")
	assert.Contains(t, strings.ToUpper(text), "TOTAL 3")
	assert.Contains(t, strings.ToUpper(text), "NOT RUN 1")
	assert.Contains(t, text, "Rule for 'suite/gone' (suite.status:9) was not used.")
}

func TestWriteFailure_ExpectedOutputDiff(t *testing.T) {
	expected := "one\ntwo\n"
	output := m.TestOutput{
		Test: m.ClassifiedTest{
			Case:     &m.TestCase{Path: []string{"x"}, ExpectedOutput: &expected},
			Outcomes: m.Outcomes{m.Pass},
		},
		Command: []string{"shell", "x.js"},
		Output:  m.CommandOutput{Stdout: "one\nthree\n"},
		Err:     errors.New("boom"),
	}

	out := &bytes.Buffer{}
	writeFailure(out, output, plain, plain)

	text := out.String()
	assert.Contains(t, text, "Error: boom\n")
	assert.Contains(t, text, "--- expected output ---\n")
	assert.Contains(t, text, "-two\n")
	assert.Contains(t, text, "+three\n")
}

func TestBanner(t *testing.T) {
	out := &bytes.Buffer{}
	writeBanner(out, m.Summary{Interrupted: true})
	assert.Equal(t, "\n===\n=== Interrupted\n===\n", out.String())
}

func TestRunModel(t *testing.T) {
	var model tea.Model = newRunModel(2)

	model, cmd := model.Update(testStartedMsg{label: "suite/a"})
	assert.Nil(t, cmd)
	assert.Contains(t, model.View(), "0/2  +0  -0")
	assert.Contains(t, model.View(), "suite/a")

	model, _ = model.Update(testCompletedMsg{})
	model, _ = model.Update(testCompletedMsg{unexpected: true})
	assert.Contains(t, model.View(), "2/2  +1  -1")
	assert.Equal(t, 1.0, model.(runModel).percent())

	model, _ = model.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, maxBarWidth, model.(runModel).bar.Width)

	model, cmd = model.Update(runDoneMsg{})
	assert.True(t, model.(runModel).done)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestTUI_RunsAndPrintsSummary(t *testing.T) {
	ctx := context.Background()
	out := &bytes.Buffer{}
	ui := NewTUI(out)

	require.NoError(t, ui.Start(ctx, WithTotal(1)))
	ui.DisplayStartingTest(ctx, classified("suite/a", m.Pass))
	ui.DisplayCompletedTest(ctx, failing("suite/a"))
	ui.DisplaySummary(ctx, m.Summary{Total: 1, Failed: []m.TestOutput{failing("suite/a")}})
	ui.Close(ctx)

	assert.Contains(t, out.String(), "=== suite/a (release) ===")
	assert.Contains(t, out.String(), "=== 1 tests failed")
}
