// SPDX-License-Identifier: MIT
// Package datasets_test checks the bundled tables against the published R values.

package datasets_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/crosstab/datasets"
	"github.com/katalvlaran/crosstab/labeled"
	"github.com/stretchr/testify/require"
)

func TestHairEyeColorShape(t *testing.T) {
	h := datasets.HairEyeColor()
	require.Equal(t, []string{"Hair", "Eye", "Sex"}, h.AxisNames())
	require.Equal(t, []int{4, 4, 2}, h.Shape())
	require.Equal(t, datasets.ValueName, h.Name())
	require.Equal(t, datasets.HairEyeColorTotal, h.Total())
}

func TestTitanicShape(t *testing.T) {
	ti := datasets.Titanic()
	require.Equal(t, []string{"Class", "Sex", "Age", "Survived"}, ti.AxisNames())
	require.Equal(t, []int{4, 2, 2, 2}, ti.Shape())
	require.Equal(t, datasets.TitanicTotal, ti.Total())
}

// TestHairEyeColorLookup checks cells whose position depends on the first-axis-fastest literal.
func TestHairEyeColorLookup(t *testing.T) {
	h := datasets.HairEyeColor()
	cases := []struct {
		hair, eye, sex string
		want           int
	}{
		{"Black", "Green", "Female", 2},
		{"Black", "Brown", "Male", 32},
		{"Brown", "Brown", "Male", 53},
		{"Blond", "Blue", "Female", 64},
		{"Blond", "Green", "Female", 8},
		{"Red", "Hazel", "Male", 7},
	}
	for _, tc := range cases {
		v, err := h.At(tc.hair, tc.eye, tc.sex)
		require.NoError(t, err)
		require.Equal(t, tc.want, v, "(%s,%s,%s)", tc.hair, tc.eye, tc.sex)

		v, err = h.Get(map[string]string{"Sex": tc.sex, "Eye": tc.eye, "Hair": tc.hair})
		require.NoError(t, err)
		require.Equal(t, tc.want, v)
	}
}

func TestTitanicLookup(t *testing.T) {
	ti := datasets.Titanic()

	v, err := ti.At("Crew", "Male", "Adult", "Yes")
	require.NoError(t, err)
	require.Equal(t, 192, v)

	v, err = ti.At("3rd", "Male", "Adult", "No")
	require.NoError(t, err)
	require.Equal(t, 387, v)

	v, err = ti.At("1st", "Female", "Adult", "Yes")
	require.NoError(t, err)
	require.Equal(t, 140, v)
}

// TestTitanicAdultSurvivors: male adult survivors over Class are 57+14+75+192,
// adding female adult survivors (140+80+76+20) gives the Class×Sex collapse.
func TestTitanicAdultSurvivors(t *testing.T) {
	ti := datasets.Titanic()

	byClass, err := ti.Sum("Class")
	require.NoError(t, err)
	v, err := byClass.At("Male", "Adult", "Yes")
	require.NoError(t, err)
	require.Equal(t, 57+14+75+192, v)
	require.Equal(t, 338, v)

	maleRow, err := ti.Sel(map[string]string{"Sex": "Male", "Age": "Adult", "Survived": "Yes"})
	require.NoError(t, err)
	require.Equal(t, []int{57, 14, 75, 192}, maleRow.Values())
	require.Equal(t, 338, maleRow.Total())

	ageSurv, err := ti.Sum("Class", "Sex")
	require.NoError(t, err)
	require.Equal(t, []string{"Age", "Survived"}, ageSurv.AxisNames())
	v, err = ageSurv.At("Adult", "Yes")
	require.NoError(t, err)
	require.Equal(t, 338+316, v)
	require.Equal(t, []int{52, 57, 1438, 654}, ageSurv.Values())
}

func TestMargins(t *testing.T) {
	h := datasets.HairEyeColor()

	hairEye, err := h.Sum("Sex")
	require.NoError(t, err)
	require.Equal(t, []int{
		68, 20, 15, 5,
		119, 84, 54, 29,
		26, 17, 14, 14,
		7, 94, 10, 16,
	}, hairEye.Values())

	sex, err := h.Margin("Sex")
	require.NoError(t, err)
	require.Equal(t, []int{279, 313}, sex.Values())

	ti := datasets.Titanic()
	survived, err := ti.Margin("Survived")
	require.NoError(t, err)
	require.Equal(t, []int{1490, 711}, survived.Values())

	sexSurv, err := ti.Margin("Survived", "Sex")
	require.NoError(t, err)
	require.Equal(t, []string{"Sex", "Survived"}, sexSurv.AxisNames())
	require.Equal(t, []int{1364, 367, 126, 344}, sexSurv.Values())
}

// TestConservation: any partial aggregation followed by the rest keeps the documented total.
func TestConservation(t *testing.T) {
	for _, tc := range []struct {
		a     *labeled.Array
		total int
	}{
		{datasets.HairEyeColor(), datasets.HairEyeColorTotal},
		{datasets.Titanic(), datasets.TitanicTotal},
	} {
		names := tc.a.AxisNames()
		for i := range names {
			part, err := tc.a.Sum(names[i])
			require.NoError(t, err)
			require.Equal(t, tc.total, part.Total())

			rest, err := part.Sum(part.AxisNames()...)
			require.NoError(t, err)
			v, err := rest.Item()
			require.NoError(t, err)
			require.Equal(t, tc.total, v)
		}
	}
}

func TestUnknownLabelAndAxis(t *testing.T) {
	h := datasets.HairEyeColor()

	_, err := h.At("Black", "Green", "Unknown")
	require.ErrorIs(t, err, labeled.ErrUnknownLabel)
	var le *labeled.LabelError
	require.ErrorAs(t, err, &le)
	require.Equal(t, "Sex", le.Axis)
	require.Equal(t, "Unknown", le.Label)

	_, err = h.Sum("Height")
	require.ErrorIs(t, err, labeled.ErrUnknownAxis)
}

// TestSingleInstance ensures the tables are built once and shared across goroutines.
func TestSingleInstance(t *testing.T) {
	const n = 8
	got := make([]*labeled.Array, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = datasets.Titanic()
		}(i)
	}
	wg.Wait()
	for _, a := range got {
		require.Same(t, got[0], a)
	}
}

func TestRegistry(t *testing.T) {
	require.Equal(t, []string{"HairEyeColor", "Titanic"}, datasets.Names())

	a, err := datasets.Lookup("Titanic")
	require.NoError(t, err)
	require.Same(t, datasets.Titanic(), a)

	info, err := datasets.Describe("HairEyeColor")
	require.NoError(t, err)
	require.Equal(t, datasets.HairEyeColorTotal, info.Total)
	require.NotEmpty(t, info.Title)
	require.NotEmpty(t, info.Source)

	_, err = datasets.Lookup("iris")
	require.ErrorIs(t, err, datasets.ErrUnknownDataset)
	_, err = datasets.Describe("iris")
	require.ErrorIs(t, err, datasets.ErrUnknownDataset)
}

// TestRegistryTotalsMatch ensures documented totals agree with the data.
func TestRegistryTotalsMatch(t *testing.T) {
	for _, name := range datasets.Names() {
		a, err := datasets.Lookup(name)
		require.NoError(t, err)
		info, err := datasets.Describe(name)
		require.NoError(t, err)
		require.Equal(t, info.Total, a.Total(), name)
	}
}
