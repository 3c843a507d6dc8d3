// SPDX-License-Identifier: MIT

package datasets

import (
	"sync"

	"github.com/katalvlaran/crosstab/labeled"
)

// HairEyeColorTotal is the number of students cross-tabulated in HairEyeColor.
const HairEyeColorTotal = 592

// hairEyeColorData lists the counts with Hair varying fastest, then Eye, then Sex.
var hairEyeColorData = []int{
	32, 53, 10, 3, 11, 50, 10, 30, 10, 25, 7, 5, 3, 15, 7, 8, // Male
	36, 66, 16, 4, 9, 34, 7, 64, 5, 29, 7, 5, 2, 14, 7, 8, // Female
}

var hairEyeColorAxes = []labeled.Axis{
	{Name: "Hair", Labels: []string{"Black", "Brown", "Red", "Blond"}},
	{Name: "Eye", Labels: []string{"Brown", "Blue", "Hazel", "Green"}},
	{Name: "Sex", Labels: []string{"Male", "Female"}},
}

var hairEyeColor = sync.OnceValue(func() *labeled.Array {
	return mustBuild(hairEyeColorData, hairEyeColorAxes)
})

// HairEyeColor returns the Hair × Eye × Sex table of 592 statistics students.
//
//	n, _ := datasets.HairEyeColor().At("Black", "Green", "Female") // 2
func HairEyeColor() *labeled.Array { return hairEyeColor() }

var hairEyeColorInfo = Info{
	Name:  "HairEyeColor",
	Title: "Hair and Eye Color of Statistics Students",
	Description: "Distribution of hair and eye color and sex in 592 statistics students. " +
		"The Hair x Eye table comes from a survey of students at the University of Delaware " +
		"reported by Snee (1974); the split by Sex was added by Friendly (1992a) for didactic purposes.",
	Source: "Snee, R. D. (1974) Graphical display of two-way contingency tables. " +
		"The American Statistician, 28, 9-12. Friendly, M. (2000) Visualizing Categorical Data.",
	Total: HairEyeColorTotal,
}
