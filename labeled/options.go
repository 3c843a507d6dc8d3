// SPDX-License-Identifier: MIT

// Package labeled: functional configuration for New.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: WithX panics only on nonsensical values (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
package labeled

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLayout is the flat-data enumeration order assumed by New.
	DefaultLayout = RowMajor

	// DefaultName is the variable name of an unnamed array.
	DefaultName = ""

	// DefaultAllowNegative keeps the strict non-negative count policy.
	DefaultAllowNegative = false
)

const panicLayoutInvalid = "labeled: WithLayout: unknown layout"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	layout        Layout // DefaultLayout
	name          string // DefaultName
	allowNegative bool   // DefaultAllowNegative
}

// WithLayout selects how the flat input is enumerated.
// Panics if l is not RowMajor or ColumnMajor.
func WithLayout(l Layout) Option {
	if !l.valid() {
		panic(panicLayoutInvalid)
	}

	return func(o *Options) { o.layout = l }
}

// WithName names the counted variable (for example "Number").
// The name is carried through every derived array and used as the value
// column of ToDataFrame.
func WithName(name string) Option {
	return func(o *Options) { o.name = name }
}

// WithAllowNegative disables the non-negative count check.
// Conservation of Total still holds under aggregation; only the
// "counts are observations" interpretation is dropped.
func WithAllowNegative() Option {
	return func(o *Options) { o.allowNegative = true }
}

// defaultOptions returns Options populated with the documented defaults.
func defaultOptions() Options {
	return Options{
		layout:        DefaultLayout,
		name:          DefaultName,
		allowNegative: DefaultAllowNegative,
	}
}

// gatherOptions applies opts over the defaults, in order; nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
