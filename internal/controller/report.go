package controller

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"

	m "gooze.dev/pkg/verdict/internal/model"
	"gooze.dev/pkg/verdict/internal/status"
)

const expectationsTemplate = `Total: %d tests
 * %4d tests will be skipped
 * %4d tests are expected to be flaky but not crash
 * %4d tests are expected to pass
 * %4d tests are expected to fail that we won't fix
 * %4d tests are expected to fail that we should fix
`

func renderExpectations(e m.Expectations) string {
	return fmt.Sprintf(expectationsTemplate, e.Total, e.Skipped, e.Flaky, e.Pass, e.FailOk, e.Fail)
}

// escapeCommand quotes arguments that contain spaces.
func escapeCommand(command []string) string {
	parts := make([]string, len(command))
	for i, part := range command {
		if strings.Contains(part, " ") {
			part = `"` + part + `"`
		}

		parts[i] = part
	}

	return strings.Join(parts, " ")
}

// decorate wraps captured output for display.
type decorate func(string) string

func plain(s string) string { return s }

// writeFailure prints the command, the captured streams and, for an
// expected-output mismatch, a unified diff.
func writeFailure(w io.Writer, output m.TestOutput, stdout, stderr decorate) {
	fmt.Fprintf(w, "Command: %s\n", escapeCommand(output.Command))

	if output.Err != nil {
		fmt.Fprintf(w, "Error: %v\n", output.Err)
	}

	if output.Output.TimedOut {
		fmt.Fprintln(w, "--- TIMEOUT ---")
	}

	if text := strings.TrimSpace(output.Output.Stderr); text != "" {
		fmt.Fprintln(w, "--- stderr ---")
		fmt.Fprintln(w, stderr(text))
	}

	if text := strings.TrimSpace(output.Output.Stdout); text != "" {
		fmt.Fprintln(w, "--- stdout ---")
		fmt.Fprintln(w, stdout(text))
	}

	if diff := expectedOutputDiff(output); diff != "" {
		fmt.Fprintln(w, "--- expected output ---")
		fmt.Fprint(w, diff)
	}
}

func expectedOutputDiff(output m.TestOutput) string {
	if !output.OutputMismatch() {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(*output.Test.Case.ExpectedOutput),
		B:        difflib.SplitLines(output.Output.Stdout),
		FromFile: "expected",
		ToFile:   "actual",
		Context:  3,
	})
	if err != nil {
		return ""
	}

	return diff
}

// writeDetails prints every failure with its label as a header.
func writeDetails(w io.Writer, failed []m.TestOutput) {
	for _, output := range failed {
		fmt.Fprintf(w, "=== %s ===\n", output.Test.Label())
		writeFailure(w, output, plain, plain)
	}
}

func writeBanner(w io.Writer, summary m.Summary) {
	if len(summary.Failed) == 0 && !summary.Interrupted {
		fmt.Fprint(w, "===\n=== All tests succeeded\n===\n")
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "===")

	if len(summary.Failed) > 0 {
		fmt.Fprintf(w, "=== %d tests failed\n", len(summary.Failed))
	}

	if summary.Interrupted {
		fmt.Fprintln(w, "=== Interrupted")
	}

	fmt.Fprintln(w, "===")
}

func renderClassificationTable(tests []m.ClassifiedTest) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Test", "Mode", "Expected", "Negative"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	skipped := 0

	for _, test := range tests {
		negative := ""
		if test.Case.Negative {
			negative = "yes"
		}

		if !test.ShouldRun() {
			skipped++
		}

		table.Append([]string{test.Case.Label(), test.Case.Mode, test.Outcomes.String(), negative})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total %d", len(tests)),
		"",
		fmt.Sprintf("Not run %d", skipped),
		"",
	})

	table.Render()

	return tableBuffer.String()
}

func describeRule(rule *status.Rule) string {
	return fmt.Sprintf("Rule for '%s' (%s:%d) was not used.", rule.Path, rule.Source, rule.Line)
}
