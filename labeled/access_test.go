// SPDX-License-Identifier: MIT

package labeled_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/crosstab/labeled"
	"github.com/stretchr/testify/require"
)

func TestAtErrors(t *testing.T) {
	a := MustNew(t, seq(12), axesABC())

	_, err := a.At("a0", "b0")
	require.ErrorIs(t, err, labeled.ErrArity)

	_, err = a.At("a0", "b0", "c0", "d0")
	require.ErrorIs(t, err, labeled.ErrArity)

	_, err = a.At("a0", "nope", "c0")
	require.ErrorIs(t, err, labeled.ErrUnknownLabel)

	var le *labeled.LabelError
	require.True(t, errors.As(err, &le))
	require.Equal(t, "B", le.Axis)
	require.Equal(t, "nope", le.Label)
	require.Contains(t, err.Error(), `"nope"`)
	require.Contains(t, err.Error(), `"B"`)
}

// TestAtIsPositional: labels are resolved on their own axis only.
func TestAtIsPositional(t *testing.T) {
	a := MustNew(t, seq(6), axesAB())
	_, err := a.At("b0", "a0")
	require.ErrorIs(t, err, labeled.ErrUnknownLabel)
}

func TestGet(t *testing.T) {
	a := MustNew(t, seq(12), axesABC())

	v, err := a.Get(map[string]string{"C": "c1", "A": "a1", "B": "b2"})
	require.NoError(t, err)
	require.Equal(t, 11, v)

	_, err = a.Get(map[string]string{"A": "a1", "B": "b2"})
	require.ErrorIs(t, err, labeled.ErrArity)

	_, err = a.Get(map[string]string{"A": "a1", "B": "b2", "Z": "z"})
	require.ErrorIs(t, err, labeled.ErrUnknownAxis)

	_, err = a.Get(map[string]string{"A": "a1", "B": "b2", "C": "Unknown"})
	var le *labeled.LabelError
	require.ErrorAs(t, err, &le)
	require.Equal(t, "C", le.Axis)
}

func TestLoc(t *testing.T) {
	a := MustNew(t, seq(12), axesABC(), labeled.WithName("n"))

	sub, err := a.Loc("a1")
	require.NoError(t, err)
	require.Equal(t, []string{"B", "C"}, sub.AxisNames())
	require.Equal(t, []int{6, 7, 8, 9, 10, 11}, sub.Values())
	require.Equal(t, "n", sub.Name())

	sub, err = a.Loc("a0", "b2")
	require.NoError(t, err)
	require.Equal(t, []string{"C"}, sub.AxisNames())
	require.Equal(t, []int{4, 5}, sub.Values())

	cell, err := a.Loc("a1", "b1", "c0")
	require.NoError(t, err)
	v, err := cell.Item()
	require.NoError(t, err)
	require.Equal(t, 8, v)

	all, err := a.Loc()
	require.NoError(t, err)
	require.True(t, a.Equal(all))

	_, err = a.Loc("a0", "b0", "c0", "x")
	require.ErrorIs(t, err, labeled.ErrArity)

	_, err = a.Loc("a9")
	require.ErrorIs(t, err, labeled.ErrUnknownLabel)
}

func TestSel(t *testing.T) {
	a := MustNew(t, seq(12), axesABC())

	sub, err := a.Sel(map[string]string{"B": "b1"})
	require.NoError(t, err)
	require.Equal(t, []string{"A", "C"}, sub.AxisNames())
	// (a0,b1,c*)=2,3 ; (a1,b1,c*)=8,9
	require.Equal(t, []int{2, 3, 8, 9}, sub.Values())

	sub, err = a.Sel(map[string]string{"C": "c1", "A": "a0"})
	require.NoError(t, err)
	require.Equal(t, []string{"B"}, sub.AxisNames())
	require.Equal(t, []int{1, 3, 5}, sub.Values())

	_, err = a.Sel(map[string]string{"Q": "q"})
	require.ErrorIs(t, err, labeled.ErrUnknownAxis)

	_, err = a.Sel(map[string]string{"A": "Unknown"})
	require.ErrorIs(t, err, labeled.ErrUnknownLabel)
}

func TestItemOnNonScalar(t *testing.T) {
	a := MustNew(t, seq(6), axesAB())
	_, err := a.Item()
	require.ErrorIs(t, err, labeled.ErrArity)
}
