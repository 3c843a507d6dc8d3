// SPDX-License-Identifier: MIT
// Package: labeled
//
// Purpose:
//  - Single source of truth for construction-time and query-time checks.
//  - Return sentinel errors wrapped with a validator tag; call sites add the
//    method context on top.
//
// Note:
//  - Construction checks run in a fixed sequence: axes → shape → values.

package labeled

import "fmt"

// validatorErrorf tags a sentinel with the validator that detected it.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateAxes checks names and labels, and builds the per-axis label index.
//
// Errors: ErrEmptyAxis, ErrDuplicateAxisName, ErrDuplicateLabel.
// Complexity: O(total labels).
func validateAxes(axes []Axis) ([]map[string]int, error) {
	seen := make(map[string]struct{}, len(axes))
	index := make([]map[string]int, len(axes))
	for i, ax := range axes {
		if ax.Name == "" || len(ax.Labels) == 0 {
			return nil, validatorErrorf(fmt.Sprintf("validateAxes: axis %d", i), ErrEmptyAxis)
		}
		if _, dup := seen[ax.Name]; dup {
			return nil, validatorErrorf(fmt.Sprintf("validateAxes: %q", ax.Name), ErrDuplicateAxisName)
		}
		seen[ax.Name] = struct{}{}

		idx := make(map[string]int, len(ax.Labels))
		for j, lb := range ax.Labels {
			if lb == "" {
				return nil, validatorErrorf(fmt.Sprintf("validateAxes: %q[%d]", ax.Name, j), ErrEmptyAxis)
			}
			if _, dup := idx[lb]; dup {
				return nil, validatorErrorf(fmt.Sprintf("validateAxes: %q label %q", ax.Name, lb), ErrDuplicateLabel)
			}
			idx[lb] = j
		}
		index[i] = idx
	}

	return index, nil
}

// validateShape checks that n values fill exactly the cells described by shape.
func validateShape(n int, shape []int) error {
	want := product(shape)
	if n != want {
		return validatorErrorf(fmt.Sprintf("validateShape: got %d values, want %d", n, want), ErrShapeMismatch)
	}

	return nil
}

// validateCounts rejects negative values unless allowNegative is set.
func validateCounts(values []int, allowNegative bool) error {
	if allowNegative {
		return nil
	}
	for i, v := range values {
		if v < 0 {
			return validatorErrorf(fmt.Sprintf("validateCounts: values[%d]=%d", i, v), ErrNegativeCount)
		}
	}

	return nil
}

// validateAxisSet resolves names to axis positions, rejecting unknown and repeated names.
func (a *Array) validateAxisSet(names []string) ([]int, error) {
	pos := make([]int, 0, len(names))
	seen := make(map[int]struct{}, len(names))
	for _, n := range names {
		k, err := a.axisIndex(n)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[k]; dup {
			return nil, validatorErrorf(fmt.Sprintf("validateAxisSet: %q", n), ErrDuplicateAxisName)
		}
		seen[k] = struct{}{}
		pos = append(pos, k)
	}

	return pos, nil
}

// axisIndex returns the position of the named axis or ErrUnknownAxis.
// Linear scan: ranks are small.
func (a *Array) axisIndex(name string) (int, error) {
	for i, ax := range a.axes {
		if ax.Name == name {
			return i, nil
		}
	}

	return -1, validatorErrorf(fmt.Sprintf("axisIndex: %q", name), ErrUnknownAxis)
}

// labelIndex resolves a label on axis k or returns a *LabelError.
func (a *Array) labelIndex(k int, label string) (int, error) {
	if j, ok := a.index[k][label]; ok {
		return j, nil
	}

	return -1, &LabelError{Axis: a.axes[k].Name, Label: label}
}

// product returns the product of the sizes; the empty product is 1.
func product(shape []int) int {
	p := 1
	for _, s := range shape {
		p *= s
	}

	return p
}
