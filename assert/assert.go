// Package assert provides small test assertion helpers.
package assert

import (
	"reflect"
	"strings"
	"testing"
)

// Equal fails the test when expected and actual are not deeply equal.
func Equal(t *testing.T, expected, actual any, label string) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Errorf("%s: expected %v, got %v", label, expected, actual)
	}
}

// NotEqual fails the test when the values are deeply equal.
func NotEqual(t *testing.T, unexpected, actual any, label string) {
	t.Helper()
	if reflect.DeepEqual(unexpected, actual) {
		t.Errorf("%s: expected value different from %v", label, unexpected)
	}
}

// True fails the test when cond is false.
func True(t *testing.T, cond bool, label string) {
	t.Helper()
	if !cond {
		t.Errorf("%s: expected true", label)
	}
}

// False fails the test when cond is true.
func False(t *testing.T, cond bool, label string) {
	t.Helper()
	if cond {
		t.Errorf("%s: expected false", label)
	}
}

// Nil fails the test when v is a non-nil value.
func Nil(t *testing.T, v any, label string) {
	t.Helper()
	if !isNil(v) {
		t.Errorf("%s: expected nil, got %v", label, v)
	}
}

// NotNil fails the test when v is nil.
func NotNil(t *testing.T, v any, label string) {
	t.Helper()
	if isNil(v) {
		t.Errorf("%s: expected non-nil value", label)
	}
}

// NoError fails the test when err is non-nil.
func NoError(t *testing.T, err error, label string) {
	t.Helper()
	if err != nil {
		t.Errorf("%s: unexpected error: %v", label, err)
	}
}

// Error fails the test when err is nil.
func Error(t *testing.T, err error, label string) {
	t.Helper()
	if err == nil {
		t.Errorf("%s: expected an error", label)
	}
}

// Len fails the test when the collection does not have the expected
// length.
func Len(t *testing.T, expected int, collection any, label string) {
	t.Helper()
	v := reflect.ValueOf(collection)
	switch v.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		if v.Len() != expected {
			t.Errorf("%s: expected length %d, got %d", label, expected, v.Len())
		}
	default:
		t.Errorf("%s: value of type %T has no length", label, collection)
	}
}

// Contains fails the test when haystack does not contain needle.
func Contains(t *testing.T, haystack, needle, label string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Errorf("%s: %q does not contain %q", label, haystack, needle)
	}
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	}
	return false
}
