// SPDX-License-Identifier: MIT

// Package labeled - Array storage (row-major) & constructors.
//
// Purpose:
//   - Keep counts in one flat buffer with the explicit offset formula Σ coord[i]*strides[i].
//   - Resolve the input Layout once, at construction, so every query works on
//     a single canonical row-major layout in declared axis order.
//   - Never expose internal slices: accessors return copies.
//
// Complexity quicksheet:
//   - New: O(N) (+ O(N·d) for ColumnMajor reordering); Shape/Axes: O(d + labels).

package labeled

import (
	"fmt"
	"slices"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew       = "New"
	ctxAt        = "At"
	ctxGet       = "Get"
	ctxLoc       = "Loc"
	ctxSel       = "Sel"
	ctxItem      = "Item"
	ctxSum       = "Sum"
	ctxMargin    = "Margin"
	ctxTranspose = "Transpose"
	ctxLabels    = "Labels"
	ctxToMatrix  = "ToMatrix"
)

// ---------- Formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
	_fmtCoordSep = ", "
	_fmtPrefix   = ": "
)

// Array is an immutable labeled N-dimensional array of counts.
//   - axes holds the declared axes; shape[i] == len(axes[i].Labels).
//   - data is row-major in declared axis order: offset = Σ coord[i]*strides[i].
//   - index[i] maps a label of axis i to its coordinate.
//
// A zero-rank Array (no axes) holds exactly one value, see Item.
type Array struct {
	name    string
	axes    []Axis
	index   []map[string]int
	shape   []int
	strides []int
	data    []int
}

// New builds an Array from a flat slice of counts and the axis declarations.
// MAIN DESCRIPTION:
//   - Validates axes, shape and counts; reshapes values according to the Layout
//     option; attaches names and labels.
//
// Implementation:
//   - Stage 1: gather options.
//   - Stage 2: validate axes (names, labels) and build the label index.
//   - Stage 3: validate len(values) == Π len(labels) and the count policy.
//   - Stage 4: copy values into row-major declared order (reordering for ColumnMajor).
//
// Inputs:
//   - values: flat counts, enumerated per the Layout option (default RowMajor).
//   - axes: ordered axis declarations; zero axes describe a scalar (one value).
//
// Errors:
//   - ErrEmptyAxis, ErrDuplicateAxisName, ErrDuplicateLabel, ErrShapeMismatch, ErrNegativeCount.
//
// Complexity:
//   - Time O(N·d) for ColumnMajor, O(N) otherwise; Space O(N).
func New(values []int, axes []Axis, opts ...Option) (*Array, error) {
	o := gatherOptions(opts...)

	index, err := validateAxes(axes)
	if err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}

	own := make([]Axis, len(axes))
	shape := make([]int, len(axes))
	for i, ax := range axes {
		own[i] = ax.clone()
		shape[i] = ax.Size()
	}
	if err = validateShape(len(values), shape); err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}
	if err = validateCounts(values, o.allowNegative); err != nil {
		return nil, arrayErrorf(ctxNew, err)
	}

	a := &Array{
		name:    o.name,
		axes:    own,
		index:   index,
		shape:   shape,
		strides: rowMajorStrides(shape),
	}
	switch o.layout {
	case ColumnMajor:
		a.data = fromColumnMajor(values, shape, a.strides)
	default:
		a.data = slices.Clone(values)
	}

	return a, nil
}

// newZero allocates a zero-filled Array over already validated axes.
// Axes are cloned; the label index is rebuilt from the clones.
func newZero(name string, axes []Axis) *Array {
	a := &Array{
		name:  name,
		axes:  make([]Axis, len(axes)),
		index: make([]map[string]int, len(axes)),
		shape: make([]int, len(axes)),
	}
	for i, ax := range axes {
		a.axes[i] = ax.clone()
		a.shape[i] = ax.Size()
		idx := make(map[string]int, ax.Size())
		for j, lb := range ax.Labels {
			idx[lb] = j
		}
		a.index[i] = idx
	}
	a.strides = rowMajorStrides(a.shape)
	a.data = make([]int, product(a.shape))

	return a
}

// rowMajorStrides returns strides where the last axis varies fastest.
func rowMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for i := len(shape) - 1; i >= 0; i-- {
		strides[i] = step
		step *= shape[i]
	}

	return strides
}

// columnMajorStrides returns strides where the first axis varies fastest.
func columnMajorStrides(shape []int) []int {
	strides := make([]int, len(shape))
	step := 1
	for i := range shape {
		strides[i] = step
		step *= shape[i]
	}

	return strides
}

// fromColumnMajor performs the reshape-reversed-then-relabel step: src is read
// as a row-major array of the reversed shape, which is the same as reading it
// column-major in declared order. The result is row-major in declared order.
func fromColumnMajor(src []int, shape, strides []int) []int {
	srcStrides := columnMajorStrides(shape)
	dst := make([]int, len(src))
	coord := make([]int, len(shape))
	for off := range dst {
		unravel(off, shape, strides, coord)
		s := 0
		for i, c := range coord {
			s += c * srcStrides[i]
		}
		dst[off] = src[s]
	}

	return dst
}

// unravel writes the coordinate of a row-major offset into coord.
func unravel(off int, shape, strides, coord []int) {
	for i := range shape {
		coord[i] = (off / strides[i]) % shape[i]
	}
}

// Name returns the variable name given by WithName ("" when unnamed).
func (a *Array) Name() string { return a.name }

// NDim returns the number of axes.
func (a *Array) NDim() int { return len(a.axes) }

// Size returns the number of cells (1 for a zero-rank array).
func (a *Array) Size() int { return len(a.data) }

// Shape returns a copy of the per-axis sizes in declared order.
func (a *Array) Shape() []int { return slices.Clone(a.shape) }

// Axes returns deep copies of the axis declarations.
func (a *Array) Axes() []Axis {
	out := make([]Axis, len(a.axes))
	for i, ax := range a.axes {
		out[i] = ax.clone()
	}

	return out
}

// AxisNames returns the axis names in declared order.
func (a *Array) AxisNames() []string {
	out := make([]string, len(a.axes))
	for i, ax := range a.axes {
		out[i] = ax.Name
	}

	return out
}

// Labels returns a copy of the labels of the named axis.
func (a *Array) Labels(axis string) ([]string, error) {
	k, err := a.axisIndex(axis)
	if err != nil {
		return nil, arrayErrorf(ctxLabels, err)
	}

	return slices.Clone(a.axes[k].Labels), nil
}

// Values returns a row-major copy of the counts in declared axis order.
func (a *Array) Values() []int { return slices.Clone(a.data) }

// Equal reports whether a and b have the same name, axes and values.
// Two nil arrays are equal.
func (a *Array) Equal(b *Array) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.name != b.name || len(a.axes) != len(b.axes) {
		return false
	}
	for i := range a.axes {
		if a.axes[i].Name != b.axes[i].Name || !slices.Equal(a.axes[i].Labels, b.axes[i].Labels) {
			return false
		}
	}

	return slices.Equal(a.data, b.data)
}

// String renders the array one last-axis row per line, each row prefixed by
// the labels of its leading coordinates:
//
//	Hair=Black, Eye=Brown: [32, 36]
//
// A zero-rank array renders as a single bracketed value.
func (a *Array) String() string {
	var sb strings.Builder
	if len(a.axes) == 0 {
		fmt.Fprintf(&sb, "%s%d%s", _fmtRowOpen, a.data[0], _fmtRowClose)
		return sb.String()
	}

	last := len(a.axes) - 1
	width := a.shape[last]
	coord := make([]int, len(a.axes))
	for off := 0; off < len(a.data); off += width {
		unravel(off, a.shape, a.strides, coord)
		for i := 0; i < last; i++ {
			if i > 0 {
				sb.WriteString(_fmtCoordSep)
			}
			sb.WriteString(a.axes[i].Name)
			sb.WriteByte('=')
			sb.WriteString(a.axes[i].Labels[coord[i]])
		}
		if last > 0 {
			sb.WriteString(_fmtPrefix)
		}
		sb.WriteString(_fmtRowOpen)
		for j := 0; j < width; j++ {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			fmt.Fprintf(&sb, "%d", a.data[off+j])
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}
