// Package unitest implements a minimal unit-testing harness: named test
// cases and optional before/after hooks are registered on a Suite, which
// runs them sequentially, reports per-test status in aligned console output,
// and derives a process exit code from the failure count.
package unitest

import (
	"fmt"
	"io"
	"os"

	"github.com/gookit/color"
)

// DefaultSuiteName is used when a Suite is constructed without a name.
const DefaultSuiteName = "Unnamed Suite"

// testCase is a single registered unit of test logic. It is owned
// exclusively by the registering Suite and immutable after registration.
type testCase struct {
	name string
	body func()
}

// Suite holds an ordered list of named tests plus optional before/after
// hooks. Tests run in registration order; registration must be complete
// before the suite is run.
type Suite struct {
	name   string
	tests  []testCase
	before func()
	after  func()
	out    io.Writer
	color  bool
}

// New creates an empty Suite. An empty name selects DefaultSuiteName. The
// report goes to standard output, colorized when the terminal supports it.
func New(name string) *Suite {
	if name == "" {
		name = DefaultSuiteName
	}
	return &Suite{
		name:   name,
		before: noop,
		after:  noop,
		out:    os.Stdout,
		color:  color.IsSupportColor(),
	}
}

// SetOutput redirects the console report.
func (s *Suite) SetOutput(w io.Writer) {
	s.out = w
}

// SetColor forces colorized status tokens on or off, overriding terminal
// detection.
func (s *Suite) SetColor(enabled bool) {
	s.color = enabled
}

// Test appends a test case. An empty name defaults to "Unnamed Test <k>",
// where k is the number of tests registered so far; a nil body registers a
// test that trivially passes. Duplicate names are allowed.
func (s *Suite) Test(name string, body func()) {
	if name == "" {
		name = fmt.Sprintf("Unnamed Test %d", len(s.tests))
	}
	if body == nil {
		body = noop
	}
	s.tests = append(s.tests, testCase{name: name, body: body})
}

// Before replaces the hook run once ahead of all test cases. A nil fn resets
// it to a no-op.
func (s *Suite) Before(fn func()) {
	if fn == nil {
		fn = noop
	}
	s.before = fn
}

// After replaces the hook run once after all test cases. A nil fn resets it
// to a no-op.
func (s *Suite) After(fn func()) {
	if fn == nil {
		fn = noop
	}
	s.after = fn
}

func noop() {}
