// SPDX-License-Identifier: MIT

package labeled

import "iter"

// Cells enumerates every cell exactly once as (labels, value), labels in
// declared axis order, cells in row-major order. The sequence is lazy and may
// be ranged over any number of times; each yielded label slice is a fresh copy.
//
//	for coord, n := range a.Cells() { ... }
func (a *Array) Cells() iter.Seq2[[]string, int] {
	return func(yield func([]string, int) bool) {
		coord := make([]int, len(a.axes))
		for off, v := range a.data {
			unravel(off, a.shape, a.strides, coord)
			labels := make([]string, len(coord))
			for i, j := range coord {
				labels[i] = a.axes[i].Labels[j]
			}
			if !yield(labels, v) {
				return
			}
		}
	}
}
