// Copyright The ActForGood Authors.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://github.com/actforgood/xprops/blob/main/LICENSE.

package xprops_test

import (
	"os"
	"reflect"
	"testing"
)

// assertEqual checks if 2 values are equal.
// Returns successful assertion status.
func assertEqual(t *testing.T, expected, actual any) bool {
	t.Helper()

	if !reflect.DeepEqual(expected, actual) {
		t.Errorf(
			"\n\t"+`expected "%+v" (%T),`+
				"\n\t"+`but got  "%+v" (%T)`+"\n",
			expected, expected,
			actual, actual,
		)

		return false
	}

	return true
}

// assertTrue checks if value passed is true.
// Returns successful assertion status.
func assertTrue(t *testing.T, actual bool) bool {
	t.Helper()

	if !actual {
		t.Error("should be true")

		return false
	}

	return true
}

// assertNil checks if value passed is nil.
// Returns successful assertion status.
func assertNil(t *testing.T, actual any) bool {
	t.Helper()

	if !isNil(actual) {
		t.Errorf("expected nil, but got %+v", actual)

		return false
	}

	return true
}

// assertNotNil checks if value passed is not nil.
// Returns successful assertion status.
func assertNotNil(t *testing.T, actual any) bool {
	t.Helper()

	if isNil(actual) {
		t.Error("expected not nil")

		return false
	}

	return true
}

// requireNil fails the test immediately if passed value is not nil.
func requireNil(t *testing.T, actual any) {
	t.Helper()

	if !assertNil(t, actual) {
		t.FailNow()
	}
}

// isNil checks an interface if it is nil.
func isNil(object any) bool {
	if object == nil {
		return true
	}

	value := reflect.ValueOf(object)
	switch value.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface,
		reflect.Map, reflect.Ptr, reflect.Slice, reflect.UnsafePointer:
		return value.IsNil()
	}

	return false
}

// setUpTmpFile creates a temporary file with given content.
// Returns the file's path.
func setUpTmpFile(pattern, content string) (string, error) {
	f, err := os.CreateTemp("", pattern)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return "", err
	}

	return f.Name(), nil
}

// tearDownTmpFile removes the temporary file.
func tearDownTmpFile(filePath string) {
	_ = os.Remove(filePath)
}

// writeToFile overwrites a file's content.
func writeToFile(filePath, content string) error {
	return os.WriteFile(filePath, []byte(content), 0o600)
}
