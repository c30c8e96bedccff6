// Package assert provides the assertion primitives used inside unitest test
// bodies. Each assertion either completes silently or raises a *Failure
// carrying a descriptive message; the suite runner recovers the failure at
// the per-test boundary. All assertions work standalone as well, independent
// of any suite.
package assert

import (
	"bytes"
	"fmt"
	"math"
	"reflect"
)

// DefaultTolerance is the relative tolerance applied by NearEqual.
const DefaultTolerance = 1e-4

// Equal asserts that expected and actual are equal. Values are compared by
// deep equality, except []byte which is compared by content.
func Equal(expected, actual any, msgAndArgs ...any) {
	if objectsEqual(expected, actual) {
		return
	}
	raise(fmt.Sprintf("Expected %v, was %v", expected, actual), msgAndArgs)
}

// NotEqual asserts that expected and actual differ.
func NotEqual(expected, actual any, msgAndArgs ...any) {
	if !objectsEqual(expected, actual) {
		return
	}
	raise(fmt.Sprintf("Expected not to be %v, was %v", expected, actual), msgAndArgs)
}

// OK asserts that actual is truthy. Every value is truthy except false and
// nil, typed nils included; in particular 0 and "" are truthy.
func OK(actual any, msgAndArgs ...any) {
	if truthy(actual) {
		return
	}
	raise(fmt.Sprintf("Expected true, was %v", actual), msgAndArgs)
}

// Fail raises unconditionally.
func Fail(msgAndArgs ...any) {
	raise("Test was manually failed", msgAndArgs)
}

// Nil asserts that actual is nil. Typed nil pointers, slices, maps,
// channels, functions and interfaces count as nil.
func Nil(actual any, msgAndArgs ...any) {
	if isNil(actual) {
		return
	}
	raise(fmt.Sprintf("Expected nil, was %v", actual), msgAndArgs)
}

// NotNil asserts that actual is anything but nil.
func NotNil(actual any, msgAndArgs ...any) {
	if !isNil(actual) {
		return
	}
	raise("Expected a value, was nil", msgAndArgs)
}

// NoError asserts that err is nil.
func NoError(err error, msgAndArgs ...any) {
	if err == nil {
		return
	}
	raise(fmt.Sprintf("Expected no error, was %v", err), msgAndArgs)
}

// NearEqual asserts that actual is within DefaultTolerance of expected,
// scaled relative to expected.
func NearEqual(expected, actual float64, msgAndArgs ...any) {
	NearEqualWithin(expected, actual, DefaultTolerance, false, msgAndArgs...)
}

// NearEqualWithin asserts |expected - actual| < delta, where delta is the
// tolerance itself in absolute mode and tolerance*expected otherwise. An
// expected of zero in relative mode yields a zero delta, which admits
// nothing; callers wanting a fixed window around zero use absolute mode.
func NearEqualWithin(expected, actual, tolerance float64, absolute bool, msgAndArgs ...any) {
	delta := tolerance * expected
	if absolute {
		delta = tolerance
	}
	delta = math.Abs(delta)
	if math.Abs(expected-actual) < delta {
		return
	}
	raise(fmt.Sprintf("Expected %v+/-%v, was %v", expected, delta, actual), msgAndArgs)
}

// objectsEqual reports deep value equality, comparing []byte by content.
func objectsEqual(expected, actual any) bool {
	if expected == nil || actual == nil {
		return expected == actual
	}
	expBytes, ok := expected.([]byte)
	if !ok {
		return reflect.DeepEqual(expected, actual)
	}
	actBytes, ok := actual.([]byte)
	if !ok {
		return false
	}
	return bytes.Equal(expBytes, actBytes)
}

// isNil reports whether v is nil, looking through typed nils.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return value.IsNil()
	}
	return false
}

// truthy reports the host truthiness of v: false and nil are falsy,
// everything else is truthy.
func truthy(v any) bool {
	if b, ok := v.(bool); ok {
		return b
	}
	return !isNil(v)
}
