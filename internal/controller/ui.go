// Package controller renders classification listings, run progress and
// run summaries.
package controller

import (
	"context"
	"fmt"
	"io"

	m "gooze.dev/pkg/verdict/internal/model"
	"gooze.dev/pkg/verdict/internal/status"
)

// Style selects a progress indicator.
type Style string

// Available progress styles.
const (
	StyleVerbose Style = "verbose"
	StyleDots    Style = "dots"
	StyleColor   Style = "color"
	StyleMono    Style = "mono"
	StyleTUI     Style = "tui"
)

// Styles lists every style NewUI accepts.
var Styles = []Style{StyleVerbose, StyleDots, StyleColor, StyleMono, StyleTUI}

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	total int
}

// WithTotal tells the UI how many cases are about to run.
func WithTotal(total int) StartOption {
	return func(c *StartConfig) {
		c.total = total
	}
}

// UI receives everything a workflow wants to show. The Display methods for
// individual tests may be called from several goroutines at once.
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	DisplayClassification(ctx context.Context, tests []m.ClassifiedTest, unused []*status.Rule) error
	DisplayExpectations(ctx context.Context, expectations m.Expectations)
	DisplayUnusedRules(ctx context.Context, mode string, rules []*status.Rule)
	DisplayConcurrencyInfo(ctx context.Context, threads int, shardIndex int, shardCount int, count int)
	DisplayStartingTest(ctx context.Context, test m.ClassifiedTest)
	DisplayCompletedTest(ctx context.Context, output m.TestOutput)
	DisplaySummary(ctx context.Context, summary m.Summary)
}

// NewUI returns the UI for style writing to out.
func NewUI(style Style, out io.Writer) (UI, error) {
	switch style {
	case StyleVerbose, StyleDots:
		return NewSimpleUI(out, style), nil
	case StyleColor:
		return NewCompactUI(out, colorTemplates(out)), nil
	case StyleMono:
		return NewCompactUI(out, monoTemplates()), nil
	case StyleTUI:
		return NewTUI(out), nil
	}

	return nil, fmt.Errorf("unknown progress style %q (known: %v)", style, Styles)
}

func newStartConfig(options []StartOption) StartConfig {
	var config StartConfig
	for _, option := range options {
		option(&config)
	}

	return config
}
