package controller

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	m "gooze.dev/pkg/verdict/internal/model"
	"gooze.dev/pkg/verdict/internal/status"
)

const statusLineWidth = 78

type progressCounters struct {
	mins, secs, percent, passed, failed int
}

// compactTemplates decorate the parts of the compact status line.
type compactTemplates struct {
	percent, passed, failed decorate
	stdout, stderr          decorate
	clearLine               func(lastLength int) string
}

func monoTemplates() compactTemplates {
	return compactTemplates{
		percent: plain,
		passed:  plain,
		failed:  plain,
		stdout:  plain,
		stderr:  plain,
		clearLine: func(lastLength int) string {
			return "\r" + strings.Repeat(" ", lastLength) + "\r"
		},
	}
}

// colorTemplates styles through a renderer bound to out, so colour is
// dropped when out is not a terminal.
func colorTemplates(out io.Writer) compactTemplates {
	renderer := lipgloss.NewRenderer(out)

	return compactTemplates{
		percent: styled(renderer.NewStyle().Foreground(lipgloss.Color("4"))),
		passed:  styled(renderer.NewStyle().Foreground(lipgloss.Color("2"))),
		failed:  styled(renderer.NewStyle().Foreground(lipgloss.Color("1"))),
		stdout:  styled(renderer.NewStyle().Bold(true)),
		stderr:  styled(renderer.NewStyle().Foreground(lipgloss.Color("1"))),
		clearLine: func(int) string {
			return "\033[1K\r"
		},
	}
}

func styled(style lipgloss.Style) decorate {
	return func(s string) string {
		return style.Render(s)
	}
}

// CompactUI keeps a single status line of the form
// [mm:ss|%  pct|+ passed|- failed]: label and prints failures as they happen.
type CompactUI struct {
	out       io.Writer
	templates compactTemplates
	now       func() time.Time

	mu         sync.Mutex
	start      time.Time
	total      int
	completed  int
	passed     int
	failed     int
	lastLength int
}

// NewCompactUI creates a CompactUI.
func NewCompactUI(out io.Writer, templates compactTemplates) *CompactUI {
	return &CompactUI{out: out, templates: templates, now: time.Now}
}

// Start initializes the UI.
func (c *CompactUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := newStartConfig(options)

	c.mu.Lock()
	defer c.mu.Unlock()

	c.start = c.now()
	c.total = config.total
	c.completed, c.passed, c.failed, c.lastLength = 0, 0, 0, 0

	return nil
}

// Close finalizes the UI.
func (c *CompactUI) Close(context.Context) {}

// DisplayClassification prints the classified cases as a table.
func (c *CompactUI) DisplayClassification(ctx context.Context, tests []m.ClassifiedTest, unused []*status.Rule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprint(c.out, renderClassificationTable(tests))

	for _, rule := range unused {
		fmt.Fprintln(c.out, describeRule(rule))
	}

	return nil
}

// DisplayExpectations prints the expectation report.
func (c *CompactUI) DisplayExpectations(_ context.Context, expectations m.Expectations) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fmt.Fprint(c.out, renderExpectations(expectations))
}

// DisplayUnusedRules is a no-op; unused rules are only logged.
func (c *CompactUI) DisplayUnusedRules(context.Context, string, []*status.Rule) {}

// DisplayConcurrencyInfo is a no-op for the compact status line.
func (c *CompactUI) DisplayConcurrencyInfo(context.Context, int, int, int, int) {}

// DisplayStartingTest shows the test about to run in the status line.
func (c *CompactUI) DisplayStartingTest(_ context.Context, test m.ClassifiedTest) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.printProgress(test.Label())
}

// DisplayCompletedTest updates the counters and prints unexpected outputs.
func (c *CompactUI) DisplayCompletedTest(_ context.Context, output m.TestOutput) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.completed++

	if !output.Unexpected() {
		c.passed++
		return
	}

	c.failed++

	fmt.Fprintf(c.out, "\n--- Failed: %s ---\n", output.Test.Label())
	writeFailure(c.out, output, c.templates.stdout, c.templates.stderr)

	c.lastLength = 0
}

// DisplaySummary leaves the final status line on screen.
func (c *CompactUI) DisplaySummary(context.Context, m.Summary) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.printProgress("Done")
	fmt.Fprintln(c.out)
}

func (c *CompactUI) counters() progressCounters {
	elapsed := int(c.now().Sub(c.start).Seconds())

	percent := 0
	if c.total > 0 {
		percent = c.completed * 100 / c.total
	}

	return progressCounters{
		mins:    elapsed / 60,
		secs:    elapsed % 60,
		percent: percent,
		passed:  c.passed,
		failed:  c.failed,
	}
}

func (c *CompactUI) printProgress(label string) {
	counters := c.counters()

	prefix := statusPrefix(counters, monoTemplates())
	label = truncate(prefix, label, statusLineWidth)

	fmt.Fprint(c.out, c.templates.clearLine(c.lastLength))
	fmt.Fprint(c.out, statusPrefix(counters, c.templates)+label)

	c.lastLength = len([]rune(prefix + label))
}

func statusPrefix(counters progressCounters, templates compactTemplates) string {
	return fmt.Sprintf("[%02d:%02d|%s|%s|%s]: ",
		counters.mins,
		counters.secs,
		templates.percent(fmt.Sprintf("%%%4d", counters.percent)),
		templates.passed(fmt.Sprintf("+%4d", counters.passed)),
		templates.failed(fmt.Sprintf("-%4d", counters.failed)),
	)
}

// truncate shortens label so that prefix+label fits in width, marking the
// cut with "...".
func truncate(prefix, label string, width int) string {
	line := []rune(prefix + label)
	if len(line) <= width-3 {
		return label
	}

	keep := width - 3 - len([]rune(prefix))
	if keep < 0 {
		keep = 0
	}

	return string([]rune(label)[:keep]) + "..."
}
