// Package model defines the records shared between classification, execution and reporting.
package model

import "strings"

// Outcome is a symbolic result label used both as an expected-outcome token
// and as an actual verdict.
type Outcome string

const (
	// Pass means the test is expected to (or did) succeed.
	Pass Outcome = "pass"
	// Fail means the test is expected to (or did) fail.
	Fail Outcome = "fail"
	// Skip marks tests that are not run at all.
	Skip Outcome = "skip"
	// Okay marks failures that are accepted and will not be fixed.
	Okay Outcome = "okay"
	// Timeout marks tests that are expected to hit the time limit.
	Timeout Outcome = "timeout"
	// Crash marks tests that are expected to crash the VM.
	Crash Outcome = "crash"
	// Slow marks tests that are too slow for a regular run.
	Slow Outcome = "slow"
)

// Outcomes is an ordered set of outcomes.
type Outcomes []Outcome

// NewOutcomes builds an Outcomes set from raw labels, dropping duplicates.
func NewOutcomes(labels ...string) Outcomes {
	result := make(Outcomes, 0, len(labels))
	for _, label := range labels {
		outcome := Outcome(label)
		if !result.Contains(outcome) {
			result = append(result, outcome)
		}
	}

	return result
}

// Contains reports whether o is a member of the set.
func (s Outcomes) Contains(o Outcome) bool {
	for _, candidate := range s {
		if candidate == o {
			return true
		}
	}

	return false
}

// Equal reports whether both sets hold the same members, ignoring order.
func (s Outcomes) Equal(other Outcomes) bool {
	if len(s) != len(other) {
		return false
	}

	for _, o := range s {
		if !other.Contains(o) {
			return false
		}
	}

	return true
}

// Is reports whether the set is exactly {o}.
func (s Outcomes) Is(o Outcome) bool {
	return len(s) == 1 && s[0] == o
}

func (s Outcomes) String() string {
	parts := make([]string, len(s))
	for i, o := range s {
		parts[i] = string(o)
	}

	return "{" + strings.Join(parts, ", ") + "}"
}
