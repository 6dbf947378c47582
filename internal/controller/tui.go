package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	m "gooze.dev/pkg/verdict/internal/model"
	"gooze.dev/pkg/verdict/internal/status"
)

const (
	defaultBarWidth = 40
	maxBarWidth     = 80
)

// TUI implements UI using Bubble Tea: a progress bar with live counters
// while tests run, then failure details once the program has exited.
type TUI struct {
	out io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(out io.Writer) *TUI {
	return &TUI{out: out}
}

type testStartedMsg struct {
	label string
}

type testCompletedMsg struct {
	unexpected bool
}

type runDoneMsg struct{}

// Start launches the Bubble Tea program.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := newStartConfig(options)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.program = tea.NewProgram(
		newRunModel(config.total),
		tea.WithOutput(t.out),
		tea.WithInput(nil),
		tea.WithoutSignalHandler(),
		tea.WithContext(ctx),
	)
	t.done = make(chan struct{})

	program, done := t.program, t.done

	go func() {
		defer close(done)

		if _, err := program.Run(); err != nil && ctx.Err() == nil {
			fmt.Fprintf(t.out, "progress display failed: %v\n", err)
		}
	}()

	return nil
}

// Close stops the program if it is still running.
func (t *TUI) Close(context.Context) {
	t.stop(nil)
}

func (t *TUI) stop(msg tea.Msg) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program = nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	if msg != nil {
		program.Send(msg)
	} else {
		program.Quit()
	}

	<-done
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// DisplayClassification prints the classified cases as a table.
func (t *TUI) DisplayClassification(ctx context.Context, tests []m.ClassifiedTest, unused []*status.Rule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	fmt.Fprint(t.out, renderClassificationTable(tests))

	for _, rule := range unused {
		fmt.Fprintln(t.out, describeRule(rule))
	}

	return nil
}

// DisplayExpectations prints the expectation report.
func (t *TUI) DisplayExpectations(_ context.Context, expectations m.Expectations) {
	fmt.Fprint(t.out, renderExpectations(expectations))
}

// DisplayUnusedRules is a no-op; unused rules are only logged.
func (t *TUI) DisplayUnusedRules(context.Context, string, []*status.Rule) {}

// DisplayConcurrencyInfo is a no-op for the TUI.
func (t *TUI) DisplayConcurrencyInfo(context.Context, int, int, int, int) {}

// DisplayStartingTest shows the label of the test that started last.
func (t *TUI) DisplayStartingTest(_ context.Context, test m.ClassifiedTest) {
	t.send(testStartedMsg{label: test.Label()})
}

// DisplayCompletedTest advances the progress bar.
func (t *TUI) DisplayCompletedTest(_ context.Context, output m.TestOutput) {
	t.send(testCompletedMsg{unexpected: output.Unexpected()})
}

// DisplaySummary ends the program and prints failure details and the banner.
func (t *TUI) DisplaySummary(_ context.Context, summary m.Summary) {
	t.stop(runDoneMsg{})

	writeDetails(t.out, summary.Failed)
	writeBanner(t.out, summary)
}

// runModel is the Bubble Tea model of a running test run.
type runModel struct {
	bar       progress.Model
	total     int
	completed int
	passed    int
	failed    int
	current   string
	done      bool
}

func newRunModel(total int) runModel {
	return runModel{
		bar:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(defaultBarWidth)),
		total: total,
	}
}

func (rm runModel) Init() tea.Cmd {
	return nil
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.bar.Width = min(max(msg.Width-4, 10), maxBarWidth)
	case testStartedMsg:
		rm.current = msg.label
	case testCompletedMsg:
		rm.completed++
		if msg.unexpected {
			rm.failed++
		} else {
			rm.passed++
		}
	case runDoneMsg:
		rm.done = true
		rm.current = "Done"

		return rm, tea.Quit
	}

	return rm, nil
}

func (rm runModel) percent() float64 {
	if rm.total == 0 {
		return 0
	}

	return float64(rm.completed) / float64(rm.total)
}

func (rm runModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + rm.bar.ViewAs(rm.percent()) + "\n\n")
	fmt.Fprintf(&b, "  %d/%d  +%d  -%d\n", rm.completed, rm.total, rm.passed, rm.failed)

	if rm.current != "" {
		fmt.Fprintf(&b, "  %s\n", rm.current)
	}

	return b.String()
}
