// Package crosstab is a small library of labeled contingency tables: counts
// of joint occurrences of categorical variables, addressed by category name.
//
// What's inside:
//
//	labeled/  : Array: immutable N-dimensional counts with named axes and
//	            labeled coordinates; label lookup, selection, summation over
//	            axes, margins, transposition, iteration, gonum/gota export
//	datasets/ : HairEyeColor (592 students) and Titanic (2201 people),
//	            built once and shared, plus a name registry
//	cmd/crosstab/ : command-line access to the bundled tables
//
// Quick example:
//
//	t := datasets.Titanic()
//	n, _ := t.At("Crew", "Male", "Adult", "Yes")   // 192
//	m, _ := t.Margin("Age", "Survived")            // Age × Survived
//	fmt.Print(m)
//	// Age=Child: [52, 57]
//	// Age=Adult: [1438, 654]
//
//	go get github.com/katalvlaran/crosstab
package crosstab
