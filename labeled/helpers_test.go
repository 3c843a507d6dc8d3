// SPDX-License-Identifier: MIT
// Package labeled_test contains shared fixtures.

package labeled_test

import (
	"testing"

	"github.com/katalvlaran/crosstab/labeled"
	"github.com/stretchr/testify/require"
)

// axesAB declares a 2×3 table: A{a0,a1} × B{b0,b1,b2}.
func axesAB() []labeled.Axis {
	return []labeled.Axis{
		{Name: "A", Labels: []string{"a0", "a1"}},
		{Name: "B", Labels: []string{"b0", "b1", "b2"}},
	}
}

// axesABC declares a 2×3×2 table: A × B × C{c0,c1}.
func axesABC() []labeled.Axis {
	return append(axesAB(), labeled.Axis{Name: "C", Labels: []string{"c0", "c1"}})
}

// seq returns 0..n-1.
func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// MustNew builds an Array or fails the test.
func MustNew(t testing.TB, values []int, axes []labeled.Axis, opts ...labeled.Option) *labeled.Array {
	t.Helper()
	a, err := labeled.New(values, axes, opts...)
	require.NoError(t, err)

	return a
}
