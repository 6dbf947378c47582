package domain

import (
	m "gooze.dev/pkg/verdict/internal/model"
)

// CountExpectations buckets classified tests for the expectation report.
// Skipped tests are counted once and kept out of every other bucket except
// Total.
func CountExpectations(tests []m.ClassifiedTest) m.Expectations {
	counts := m.Expectations{Total: len(tests)}

	for _, test := range tests {
		outcomes := test.Outcomes

		if outcomes.Contains(m.Skip) {
			counts.Skipped++
			continue
		}

		if isFlaky(outcomes) {
			counts.Flaky++
		}

		switch {
		case outcomes.Is(m.Pass):
			counts.Pass++
		case outcomes.Is(m.Fail):
			counts.Fail++
		case len(outcomes) == 2 && outcomes.Contains(m.Fail) && outcomes.Contains(m.Okay):
			counts.FailOk++
		}
	}

	return counts
}

// isFlaky reports a test that may pass or fail, unless a crash or an
// accepted failure explains it.
func isFlaky(outcomes m.Outcomes) bool {
	return outcomes.Contains(m.Pass) &&
		outcomes.Contains(m.Fail) &&
		!outcomes.Contains(m.Crash) &&
		!outcomes.Contains(m.Okay)
}
