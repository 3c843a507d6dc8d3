// SPDX-License-Identifier: MIT

// Package labeled: domain types (axes, layouts) shared by the Array surface.
package labeled

import "slices"

// Axis describes one dimension: a unique Name and the ordered coordinate Labels.
// The position of a label in Labels is its integer index along the axis.
type Axis struct {
	Name   string   // e.g. "Sex"
	Labels []string // e.g. ["Male", "Female"]
}

// Size returns the number of coordinates along the axis.
func (ax Axis) Size() int { return len(ax.Labels) }

// clone returns a deep copy so callers cannot alias internal label slices.
func (ax Axis) clone() Axis {
	return Axis{Name: ax.Name, Labels: slices.Clone(ax.Labels)}
}

// Layout tells New how a flat input slice enumerates the cells.
type Layout int

const (
	// RowMajor: the last declared axis varies fastest (C order).
	RowMajor Layout = iota

	// ColumnMajor: the first declared axis varies fastest (Fortran/R order).
	// Equivalent to reshaping with the reversed axis sizes and assigning the
	// axis names and labels in reverse.
	ColumnMajor
)

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return "RowMajor"
	case ColumnMajor:
		return "ColumnMajor"
	default:
		return "Layout(?)"
	}
}

// valid reports whether l is one of the declared layouts.
func (l Layout) valid() bool { return l == RowMajor || l == ColumnMajor }
