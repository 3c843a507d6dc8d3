// SPDX-License-Identifier: MIT

// Package labeled - aggregation and axis reordering.
//
// Every derived array is produced by one kernel, reduce(keep, fixed):
//   - cells whose coordinate disagrees with a fixed (>=0) entry are skipped;
//   - the remaining cells are summed into the cell addressed by the kept axes.
//
// Selection (Loc/Sel), summation (Sum/Margin) and permutation (Transpose) are
// all instances of it, which keeps Total conservation in a single place.
package labeled

import (
	"slices"
	"sort"
)

// reduce builds the array over the axes listed in keep (in that order),
// restricted to cells matching fixed, summing collapsed cells.
// Complexity: O(N·d) time, O(N') space for the result.
func (a *Array) reduce(keep []int, fixed []int) *Array {
	axes := make([]Axis, len(keep))
	for i, k := range keep {
		axes[i] = a.axes[k]
	}
	out := newZero(a.name, axes)

	coord := make([]int, len(a.axes))
	for off, v := range a.data {
		unravel(off, a.shape, a.strides, coord)
		if !matches(coord, fixed) {
			continue
		}
		dst := 0
		for i, k := range keep {
			dst += coord[k] * out.strides[i]
		}
		out.data[dst] += v
	}

	return out
}

// matches reports whether coord agrees with every fixed (>=0) entry.
func matches(coord, fixed []int) bool {
	for k, j := range fixed {
		if j >= 0 && coord[k] != j {
			return false
		}
	}

	return true
}

// Sum collapses the named axes by summation. The retained axes are exactly
// those not named, in their original relative order. Summing every axis gives
// a zero-rank array; naming no axis gives an independent copy.
// Total is preserved.
//
// Errors: ErrUnknownAxis, ErrDuplicateAxisName.
// Complexity: O(N·d).
func (a *Array) Sum(axes ...string) (*Array, error) {
	drop, err := a.validateAxisSet(axes)
	if err != nil {
		return nil, arrayErrorf(ctxSum, err)
	}
	keep := make([]int, 0, len(a.axes)-len(drop))
	for k := range a.axes {
		if !slices.Contains(drop, k) {
			keep = append(keep, k)
		}
	}

	return a.reduce(keep, freeCoord(len(a.axes))), nil
}

// Margin keeps only the named axes and sums over all others; the kept axes
// stay in their original relative order regardless of argument order.
// Margin("Age", "Survived") on Titanic equals Sum("Class", "Sex").
//
// Errors: ErrUnknownAxis, ErrDuplicateAxisName.
func (a *Array) Margin(keep ...string) (*Array, error) {
	pos, err := a.validateAxisSet(keep)
	if err != nil {
		return nil, arrayErrorf(ctxMargin, err)
	}
	sort.Ints(pos)

	return a.reduce(pos, freeCoord(len(a.axes))), nil
}

// Total returns the sum of all cells.
// Complexity: O(N).
func (a *Array) Total() int {
	t := 0
	for _, v := range a.data {
		t += v
	}

	return t
}

// Transpose reorders the axes by name. With no arguments the axis order is
// reversed. The values follow their labels: At on the result with permuted
// labels equals At on the receiver.
//
// Errors: ErrUnknownAxis, ErrDuplicateAxisName, ErrArity if order is not a
// permutation of all axes.
func (a *Array) Transpose(order ...string) (*Array, error) {
	var perm []int
	if len(order) == 0 {
		perm = make([]int, len(a.axes))
		for i := range perm {
			perm[i] = len(a.axes) - 1 - i
		}
	} else {
		p, err := a.validateAxisSet(order)
		if err != nil {
			return nil, arrayErrorf(ctxTranspose, err)
		}
		if len(p) != len(a.axes) {
			return nil, arrayErrorf(ctxTranspose, ErrArity)
		}
		perm = p
	}

	return a.reduce(perm, freeCoord(len(a.axes))), nil
}
