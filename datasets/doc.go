// SPDX-License-Identifier: MIT

// Package datasets exposes two classic contingency tables as immutable
// labeled arrays:
//
//   - HairEyeColor: hair and eye color and sex of 592 statistics students
//     (Snee 1974, split by sex by Friendly 1992). Axes Hair × Eye × Sex.
//   - Titanic: class, sex, age and survival of the 2201 people aboard the
//     Titanic (Dawson 1995, British Board of Trade). Axes Class × Sex × Age × Survived.
//
// Both tables are declared with the flat literals published with R's
// datasets package, in which the first axis varies fastest. They are built
// on first use, exactly once, and shared by all callers; every accessor of
// labeled.Array returns copies, so sharing is safe.
//
// Registry:
//
//   - Names lists the registered datasets in lexicographic order.
//   - Lookup returns a dataset by name (ErrUnknownDataset otherwise).
//   - Describe returns its Info (title, description, source).
package datasets
