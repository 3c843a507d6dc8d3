// SPDX-License-Identifier: MIT

// Package labeled - views for external collaborators.
//
// Statistics and plotting code consumes tables in its own containers:
//   - ToMatrix: gonum *mat.Dense for linear-algebra style consumers (2-D only).
//   - ToDataFrame: gota long-format frame, one row per cell, one column per axis.
//
// Both return fresh copies; the Array stays immutable.
package labeled

import (
	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"gonum.org/v1/gonum/mat"
)

// DefaultValueColumn names the count column of ToDataFrame for unnamed arrays.
const DefaultValueColumn = "Count"

// ToMatrix copies a two-dimensional array into a gonum dense matrix:
// rows follow the first axis, columns the second.
//
// Errors: ErrNotMatrix if NDim() != 2.
// Complexity: O(N).
func (a *Array) ToMatrix() (*mat.Dense, error) {
	if len(a.axes) != 2 {
		return nil, arrayErrorf(ctxToMatrix, ErrNotMatrix)
	}
	buf := make([]float64, len(a.data))
	for i, v := range a.data {
		buf[i] = float64(v)
	}

	return mat.NewDense(a.shape[0], a.shape[1], buf), nil
}

// ToDataFrame materializes the array in long format: one string column per
// axis (named after the axis) and one int column holding the count, named
// after Name() or DefaultValueColumn when unnamed. Rows follow Cells order.
//
// Column names follow gota's rules: a value column colliding with an axis
// name is disambiguated by gota, not rejected.
func (a *Array) ToDataFrame() dataframe.DataFrame {
	cols := make([][]string, len(a.axes))
	for i := range cols {
		cols[i] = make([]string, 0, len(a.data))
	}
	counts := make([]int, 0, len(a.data))
	for labels, v := range a.Cells() {
		for i, lb := range labels {
			cols[i] = append(cols[i], lb)
		}
		counts = append(counts, v)
	}

	valueCol := a.name
	if valueCol == "" {
		valueCol = DefaultValueColumn
	}
	ss := make([]series.Series, 0, len(a.axes)+1)
	for i, ax := range a.axes {
		ss = append(ss, series.New(cols[i], series.String, ax.Name))
	}
	ss = append(ss, series.New(counts, series.Int, valueCol))

	return dataframe.New(ss...)
}
