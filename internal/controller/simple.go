package controller

import (
	"context"
	"fmt"
	"io"
	"sync"

	m "gooze.dev/pkg/verdict/internal/model"
	"gooze.dev/pkg/verdict/internal/status"
)

const dotsPerLine = 50

// SimpleUI prints one line per test (verbose) or one character per test
// (dots), then failure details and a banner.
type SimpleUI struct {
	out   io.Writer
	style Style

	mu        sync.Mutex
	completed int
}

// NewSimpleUI creates a new SimpleUI; style is StyleVerbose or StyleDots.
func NewSimpleUI(out io.Writer, style Style) *SimpleUI {
	return &SimpleUI{out: out, style: style}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := newStartConfig(options)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.completed = 0
	s.printf("Running %d tests\n", config.total)

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(context.Context) {}

// DisplayClassification prints the classified cases as a table followed by
// the rules that matched nothing.
func (s *SimpleUI) DisplayClassification(ctx context.Context, tests []m.ClassifiedTest, unused []*status.Rule) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("%s", renderClassificationTable(tests))

	for _, rule := range unused {
		s.printf("%s\n", describeRule(rule))
	}

	return nil
}

// DisplayExpectations prints the expectation report.
func (s *SimpleUI) DisplayExpectations(_ context.Context, expectations m.Expectations) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("%s", renderExpectations(expectations))
}

// DisplayUnusedRules lists unused rules in verbose style only.
func (s *SimpleUI) DisplayUnusedRules(_ context.Context, mode string, rules []*status.Rule) {
	if s.style != StyleVerbose {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, rule := range rules {
		s.printf("[%s] %s\n", mode, describeRule(rule))
	}
}

// DisplayConcurrencyInfo shows concurrency settings.
func (s *SimpleUI) DisplayConcurrencyInfo(_ context.Context, threads int, shardIndex int, shardCount int, count int) {
	if s.style != StyleVerbose {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("Running %d tests with %d worker(s) (shard %d/%d)\n", count, threads, shardIndex, shardCount)
}

// DisplayStartingTest is a no-op; results are printed on completion so
// parallel workers do not interleave half lines.
func (s *SimpleUI) DisplayStartingTest(context.Context, m.ClassifiedTest) {}

// DisplayCompletedTest prints the verdict of one test.
func (s *SimpleUI) DisplayCompletedTest(_ context.Context, output m.TestOutput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.completed++
	unexpected := output.Unexpected()

	if s.style == StyleVerbose {
		verdict := "pass"
		if unexpected {
			verdict = "FAIL"
		}

		s.printf("%s: %s\n", output.Test.Label(), verdict)

		return
	}

	if s.completed > 1 && s.completed%dotsPerLine == 1 {
		s.printf("\n")
	}

	if unexpected {
		s.printf("F")
	} else {
		s.printf(".")
	}
}

// DisplaySummary prints failure details and the final banner.
func (s *SimpleUI) DisplaySummary(_ context.Context, summary m.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.printf("\n")
	writeDetails(s.out, summary.Failed)
	writeBanner(s.out, summary)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	fmt.Fprintf(s.out, format, args...)
}
