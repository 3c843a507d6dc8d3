// SPDX-License-Identifier: MIT

package labeled

import (
	"fmt"
	"slices"
)

// At returns the count at a full positional coordinate, one label per axis in
// declared order.
//
// Errors: ErrArity if len(labels) != NDim(); *LabelError (ErrUnknownLabel)
// naming the first axis whose label does not resolve.
// Complexity: O(d).
func (a *Array) At(labels ...string) (int, error) {
	if len(labels) != len(a.axes) {
		return 0, arrayErrorf(ctxAt, fmt.Errorf("got %d labels for %d axes: %w", len(labels), len(a.axes), ErrArity))
	}
	off := 0
	for k, lb := range labels {
		j, err := a.labelIndex(k, lb)
		if err != nil {
			return 0, arrayErrorf(ctxAt, err)
		}
		off += j * a.strides[k]
	}

	return a.data[off], nil
}

// Get returns the count at a full coordinate given as axis name → label.
//
// Errors: ErrUnknownAxis for a key that names no axis; ErrArity if some axis
// is missing from coord; *LabelError for an unresolved label.
// Complexity: O(d).
func (a *Array) Get(coord map[string]string) (int, error) {
	fixed, err := a.resolveCoord(coord)
	if err != nil {
		return 0, arrayErrorf(ctxGet, err)
	}
	if len(coord) != len(a.axes) {
		return 0, arrayErrorf(ctxGet, fmt.Errorf("got %d labels for %d axes: %w", len(coord), len(a.axes), ErrArity))
	}
	off := 0
	for k, j := range fixed {
		off += j * a.strides[k]
	}

	return a.data[off], nil
}

// Loc selects by a positional partial coordinate on the leading axes and
// returns the sub-array over the remaining axes. A full coordinate yields a
// zero-rank array (see Item); no labels yield an independent copy.
//
// Errors: ErrArity if more labels than axes; *LabelError for an unresolved label.
// Complexity: O(N·d).
func (a *Array) Loc(labels ...string) (*Array, error) {
	if len(labels) > len(a.axes) {
		return nil, arrayErrorf(ctxLoc, fmt.Errorf("got %d labels for %d axes: %w", len(labels), len(a.axes), ErrArity))
	}
	fixed := freeCoord(len(a.axes))
	for k, lb := range labels {
		j, err := a.labelIndex(k, lb)
		if err != nil {
			return nil, arrayErrorf(ctxLoc, err)
		}
		fixed[k] = j
	}

	return a.reduce(a.freeAxes(fixed), fixed), nil
}

// Sel selects by axis name → label on any subset of axes and returns the
// sub-array over the unselected axes, in their original relative order.
//
// Errors: ErrUnknownAxis, *LabelError.
// Complexity: O(N·d).
func (a *Array) Sel(coord map[string]string) (*Array, error) {
	fixed, err := a.resolveCoord(coord)
	if err != nil {
		return nil, arrayErrorf(ctxSel, err)
	}

	return a.reduce(a.freeAxes(fixed), fixed), nil
}

// Item returns the single value of a zero-rank array.
//
// Errors: ErrArity if NDim() != 0.
func (a *Array) Item() (int, error) {
	if len(a.axes) != 0 {
		return 0, arrayErrorf(ctxItem, fmt.Errorf("array has %d axes: %w", len(a.axes), ErrArity))
	}

	return a.data[0], nil
}

// resolveCoord maps a name → label coordinate onto per-axis indices;
// axes absent from coord stay free (-1).
func (a *Array) resolveCoord(coord map[string]string) ([]int, error) {
	fixed := freeCoord(len(a.axes))
	// Resolve in declared axis order so the reported error is deterministic.
	for _, name := range sortedKeysByAxis(a, coord) {
		k, err := a.axisIndex(name)
		if err != nil {
			return nil, err
		}
		j, err := a.labelIndex(k, coord[name])
		if err != nil {
			return nil, err
		}
		fixed[k] = j
	}

	return fixed, nil
}

// sortedKeysByAxis orders the keys of coord: known axes first in declared
// order, then unknown names in lexicographic order.
func sortedKeysByAxis(a *Array, coord map[string]string) []string {
	keys := make([]string, 0, len(coord))
	for _, ax := range a.axes {
		if _, ok := coord[ax.Name]; ok {
			keys = append(keys, ax.Name)
		}
	}
	if len(keys) == len(coord) {
		return keys
	}
	var unknown []string
	for name := range coord {
		if _, err := a.axisIndex(name); err != nil {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)

	return append(unknown, keys...)
}

// freeCoord returns a coordinate with every axis free.
func freeCoord(d int) []int {
	fixed := make([]int, d)
	for i := range fixed {
		fixed[i] = -1
	}

	return fixed
}

// freeAxes lists, in order, the axes left free by fixed.
func (a *Array) freeAxes(fixed []int) []int {
	keep := make([]int, 0, len(fixed))
	for k, j := range fixed {
		if j < 0 {
			keep = append(keep, k)
		}
	}

	return keep
}
