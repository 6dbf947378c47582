package model

import "strings"

// Path represents a file system path.
type Path string

// TestCase is a single runnable test produced by a suite.
type TestCase struct {
	// Path identifies the test, one entry per level (suite/dir/name).
	Path []string
	// Command is the argv used to run the test.
	Command []string
	// Negative inverts the verdict: a zero exit status means failure.
	Negative bool
	// Suite is the name of the suite that listed the case.
	Suite string
	// Mode is the build mode the case was listed for.
	Mode string
	// ExpectedOutput, when set, must equal the captured stdout.
	ExpectedOutput *string
	// Outcomes is attached once by classification.
	Outcomes Outcomes
}

// Label is the slash-joined test path.
func (tc *TestCase) Label() string {
	return strings.Join(tc.Path, "/")
}

// ClassifiedTest pairs a test case with its expected outcomes.
type ClassifiedTest struct {
	Case     *TestCase
	Outcomes Outcomes
}

// Label returns the case label, suffixed with the mode when one is set.
func (ct ClassifiedTest) Label() string {
	if ct.Case == nil {
		return ""
	}

	if ct.Case.Mode == "" {
		return ct.Case.Label()
	}

	return ct.Case.Label() + " (" + ct.Case.Mode + ")"
}

// ShouldRun reports whether the case is run at all; skip and slow cases are not.
func (ct ClassifiedTest) ShouldRun() bool {
	return !ct.Outcomes.Contains(Skip) && !ct.Outcomes.Contains(Slow)
}
