// Package testhelpers provides testing utilities for lcd, including a fake
// sysfs scene, a shared binary builder, and custom assertions.
package testhelpers

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value. This is useful for test setup code
// where errors are not expected and should halt execution immediately.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectPower asserts the bl_power content of each named device.
func ExpectPower(t *testing.T, scene *Scene, expected map[string]string) {
	t.Helper()

	for name, want := range expected {
		require.Equal(t, want, scene.ReadPower(name), "bl_power of %s", name)
	}
}

// ExpectNames asserts that two name lists hold the same elements.
func ExpectNames(t *testing.T, expected, actual []string) {
	t.Helper()

	e := append([]string(nil), expected...)
	a := append([]string(nil), actual...)
	sort.Strings(e)
	sort.Strings(a)
	require.Equal(t, e, a, "Device names do not match")
}
