package unitest

import "time"

// Status labels a single executed test. The constants double as the report
// tokens.
type Status string

const (
	// StatusPass marks a test whose body completed without raising.
	StatusPass Status = "PASS"
	// StatusFail marks a test whose body raised an assertion failure or
	// panicked.
	StatusFail Status = "FAIL"
)

// TestResult is the outcome of one executed test case.
type TestResult struct {
	Name     string
	Status   Status
	Message  string // failure message, empty when passed
	Duration time.Duration
}

// Result collects the outcome of a whole suite run.
type Result struct {
	Suite  string
	Run    int
	Failed int
	Tests  []TestResult // execution order
}

// Passed is the number of tests that ran without failing.
func (r *Result) Passed() int {
	return r.Run - r.Failed
}

// OK reports whether every executed test passed.
func (r *Result) OK() bool {
	return r.Failed == 0
}

// ExitCode derives the process exit status from the run: the failure count,
// 0 on a clean run.
func (r *Result) ExitCode() int {
	return r.Failed
}
