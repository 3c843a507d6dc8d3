// SPDX-License-Identifier: MIT

package datasets

import (
	"sync"

	"github.com/katalvlaran/crosstab/labeled"
)

// TitanicTotal is the number of people cross-tabulated in Titanic.
const TitanicTotal = 2201

// titanicData lists the counts with Class varying fastest, then Sex, Age, Survived.
// Each row of four is one (Sex, Age, Survived) combination across 1st/2nd/3rd/Crew.
var titanicData = []int{
	0, 0, 35, 0, // Male, Child, No
	0, 0, 17, 0, // Female, Child, No
	118, 154, 387, 670, // Male, Adult, No
	4, 13, 89, 3, // Female, Adult, No
	5, 11, 13, 0, // Male, Child, Yes
	1, 13, 14, 0, // Female, Child, Yes
	57, 14, 75, 192, // Male, Adult, Yes
	140, 80, 76, 20, // Female, Adult, Yes
}

var titanicAxes = []labeled.Axis{
	{Name: "Class", Labels: []string{"1st", "2nd", "3rd", "Crew"}},
	{Name: "Sex", Labels: []string{"Male", "Female"}},
	{Name: "Age", Labels: []string{"Child", "Adult"}},
	{Name: "Survived", Labels: []string{"No", "Yes"}},
}

var titanic = sync.OnceValue(func() *labeled.Array {
	return mustBuild(titanicData, titanicAxes)
})

// Titanic returns the Class × Sex × Age × Survived table of 2201 people.
//
//	n, _ := datasets.Titanic().At("Crew", "Male", "Adult", "Yes") // 192
func Titanic() *labeled.Array { return titanic() }

var titanicInfo = Info{
	Name:  "Titanic",
	Title: "Survival of passengers on the Titanic",
	Description: "Fate of the people aboard the ocean liner Titanic on its maiden voyage, " +
		"summarized according to economic status (class), sex, age and survival.",
	Source: "Dawson, Robert J. MacG. (1995), The 'Unusual Episode' Data Revisited. " +
		"Journal of Statistics Education, 3. Based on data of the British Board of Trade.",
	Total: TitanicTotal,
}
