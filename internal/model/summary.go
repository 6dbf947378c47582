package model

import "time"

// Summary is what a run reports once every case has finished.
type Summary struct {
	// Total is the number of cases selected to run.
	Total int
	// Passed counts cases whose verdict was among the expected outcomes.
	Passed int
	// Failed holds the unexpected outputs in completion order.
	Failed []TestOutput
	// Skipped counts classified cases that were not run.
	Skipped     int
	Elapsed     time.Duration
	Interrupted bool
}

// Succeeded reports whether every selected case ran as expected.
func (s Summary) Succeeded() bool {
	return len(s.Failed) == 0 && !s.Interrupted
}

// Expectations buckets classified cases by what they are expected to do.
type Expectations struct {
	Total   int
	Skipped int
	// Flaky cases may pass or fail but are not expected to crash.
	Flaky int
	Pass  int
	// FailOk cases fail in a way that will not be fixed.
	FailOk int
	Fail   int
}
