package unitest

import (
	"fmt"
	"os"
	"time"

	"github.com/unitest/unitest/assert"
)

// Run executes every registered test in registration order, streaming the
// report to the suite's writer, and returns the collected outcome. The
// before hook runs first and the after hook last; a panic in either is not
// recovered and aborts the run. A panic inside a test body fails that test
// only, and the remaining tests still run.
func (s *Suite) Run() *Result {
	rep := newReporter(s.out, s.color, s.columnWidth())
	rep.header(s.name, len(s.tests))

	result := &Result{
		Suite: s.name,
		Tests: make([]TestResult, 0, len(s.tests)),
	}

	s.before()
	for _, tc := range s.tests {
		result.Run++
		outcome := runProtected(tc)
		if outcome.Status == StatusFail {
			result.Failed++
		}
		result.Tests = append(result.Tests, outcome)
		rep.result(outcome)
	}
	s.after()

	rep.summary(result)
	return result
}

// RunAndExit runs the suite and terminates the process with the failure
// count as exit status, 0 when everything passed. It never returns.
func (s *Suite) RunAndExit() {
	os.Exit(s.Run().ExitCode())
}

// runProtected invokes a test body under a recover boundary, converting any
// panic into a failed outcome. An *assert.Failure contributes its carried
// message; any other panic value is formatted as the message.
func runProtected(tc testCase) (outcome TestResult) {
	outcome = TestResult{Name: tc.name, Status: StatusPass}
	start := time.Now()
	defer func() {
		outcome.Duration = time.Since(start)
		if rec := recover(); rec != nil {
			outcome.Status = StatusFail
			outcome.Message = failureMessage(rec)
		}
	}()
	tc.body()
	return outcome
}

func failureMessage(rec any) string {
	if failure, ok := rec.(*assert.Failure); ok {
		return failure.Message
	}
	return fmt.Sprintf("%v", rec)
}

// columnWidth is the report's name-column width: the longest registered
// test name plus four.
func (s *Suite) columnWidth() int {
	width := 0
	for _, tc := range s.tests {
		if len(tc.name) > width {
			width = len(tc.name)
		}
	}
	return width + 4
}
