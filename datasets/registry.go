// SPDX-License-Identifier: MIT

package datasets

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/crosstab/labeled"
)

// ValueName is the name of the counted variable of every bundled dataset.
const ValueName = "Number"

// Info describes a registered dataset.
type Info struct {
	Name        string // registry key, e.g. "Titanic"
	Title       string
	Description string
	Source      string // bibliographic citation
	Total       int    // documented number of observations
}

type entry struct {
	info Info
	get  func() *labeled.Array
}

var registry = map[string]entry{
	hairEyeColorInfo.Name: {info: hairEyeColorInfo, get: HairEyeColor},
	titanicInfo.Name:      {info: titanicInfo, get: Titanic},
}

// Names returns the registered dataset names in lexicographic order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	slices.Sort(names)

	return names
}

// Lookup returns the named dataset.
func Lookup(name string) (*labeled.Array, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("Lookup(%q): %w", name, ErrUnknownDataset)
	}

	return e.get(), nil
}

// Describe returns the metadata of the named dataset.
func Describe(name string) (Info, error) {
	e, ok := registry[name]
	if !ok {
		return Info{}, fmt.Errorf("Describe(%q): %w", name, ErrUnknownDataset)
	}

	return e.info, nil
}

// mustBuild constructs a bundled table. The literals are fixed at compile
// time, so a failure is a programmer error and panics.
func mustBuild(values []int, axes []labeled.Axis) *labeled.Array {
	a, err := labeled.New(values, axes,
		labeled.WithLayout(labeled.ColumnMajor),
		labeled.WithName(ValueName),
	)
	if err != nil {
		panic(err)
	}

	return a
}
