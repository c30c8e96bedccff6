// Package testutils provides helpers shared by the unitest test suites.
package testutils

import (
	"bytes"

	"github.com/unitest/unitest"
	"github.com/unitest/unitest/assert"
)

// NewRecordedSuite returns a suite whose report is captured in the returned
// buffer, with color disabled so the bytes are stable.
func NewRecordedSuite(name string) (*unitest.Suite, *bytes.Buffer) {
	var buf bytes.Buffer
	suite := unitest.New(name)
	suite.SetOutput(&buf)
	suite.SetColor(false)
	return suite, &buf
}

// PassingBody is a test body whose single assertion holds.
func PassingBody() {
	assert.OK(true)
}

// FailingBody returns a test body that fails with the given message.
func FailingBody(message string) func() {
	return func() {
		assert.Fail(message)
	}
}

// PanickingBody returns a test body that panics with a value outside the
// assertion channel.
func PanickingBody(value any) func() {
	return func() {
		panic(value)
	}
}
