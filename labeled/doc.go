// SPDX-License-Identifier: MIT

// Package labeled provides an immutable N-dimensional array of counts whose
// axes carry names and whose coordinates carry labels.
//
// What:
//
//   - Array stores non-negative integer counts in a flat row-major buffer.
//   - Each axis has a unique Name and an ordered set of unique Labels.
//   - Cells are addressed by label (At, Get) instead of by numeric index.
//   - Sub-arrays are extracted by partial coordinates (Loc, Sel).
//   - Axes are collapsed by summation (Sum, Margin) with Total preserved.
//   - Every cell is enumerated by Cells as (labels, value) pairs.
//
// Why:
//
//   - Contingency tables (cross-tabulations of categorical variables) are
//     naturally indexed by category names: "Sex=Female, Eye=Green".
//   - Shape/label consistency is checked once, at construction, so queries
//     never see a malformed table.
//
// Layout:
//
//   - RowMajor: the last declared axis varies fastest in the input slice.
//   - ColumnMajor: the first declared axis varies fastest. This is the
//     encoding of tables exported by R and is equivalent to reshaping with
//     the reversed axis sizes and then relabeling the axes in reverse.
//     New always stores the data row-major in declared axis order.
//
// Concurrency:
//
//   - An Array is never mutated after New returns; any number of goroutines
//     may read it without synchronization. Accessors return copies.
//
// Complexity:
//
//   - New: O(N) where N is the number of cells.
//   - At/Get: O(d) with d axes (label lookup is O(1) via per-axis index maps).
//   - Loc/Sel/Sum/Margin/Transpose: O(N·d).
//   - Cells: O(N·d) for a full pass.
//
// Errors:
//
//   - ErrShapeMismatch: data length != product of label counts.
//   - ErrDuplicateLabel, ErrDuplicateAxisName, ErrEmptyAxis: malformed axes.
//   - ErrNegativeCount: a count is below zero.
//   - ErrUnknownLabel (as *LabelError), ErrUnknownAxis, ErrArity: bad queries.
//   - ErrNotMatrix: ToMatrix on an array that is not two-dimensional.
package labeled
