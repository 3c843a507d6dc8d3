// SPDX-License-Identifier: MIT

// Command crosstab prints the bundled contingency tables and answers label
// queries against them:
//
//	crosstab list
//	crosstab show Titanic
//	crosstab get Titanic Class=Crew Sex=Male Age=Adult Survived=Yes
//	crosstab sum Titanic --over Class,Sex
//	crosstab margin HairEyeColor --keep Hair,Eye
//
// Configuration is read from flags, CROSSTAB_* environment variables and an
// optional config file (--config), in that order of precedence.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
		os.Exit(1)
	}
}
