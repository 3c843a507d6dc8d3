// SPDX-License-Identifier: MIT
// Package labeled: sentinel error set.
// Every public operation returns one of these sentinels (possibly wrapped with
// call-site context); tests and callers match them via errors.Is.

package labeled

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when the flat data length does not equal
	// the product of the per-axis label counts.
	ErrShapeMismatch = errors.New("labeled: data length does not match axis sizes")

	// ErrDuplicateLabel indicates that an axis lists the same label twice.
	ErrDuplicateLabel = errors.New("labeled: duplicate label on axis")

	// ErrDuplicateAxisName indicates that two axes share a name, or that an
	// axis name is repeated in an aggregation/transpose request.
	ErrDuplicateAxisName = errors.New("labeled: duplicate axis name")

	// ErrEmptyAxis indicates an axis with an empty name, an empty label or no labels at all.
	ErrEmptyAxis = errors.New("labeled: empty axis name, label or label set")

	// ErrNegativeCount indicates a negative value under the strict count policy.
	ErrNegativeCount = errors.New("labeled: negative count")

	// ErrUnknownLabel indicates that a label is not present on the addressed axis.
	// It is always delivered inside a *LabelError carrying the axis and label.
	ErrUnknownLabel = errors.New("labeled: unknown label")

	// ErrUnknownAxis indicates that a referenced axis name does not exist.
	ErrUnknownAxis = errors.New("labeled: unknown axis")

	// ErrArity indicates a coordinate with the wrong number of labels.
	ErrArity = errors.New("labeled: wrong number of coordinates")

	// ErrNotMatrix is returned by ToMatrix for arrays whose rank is not 2.
	ErrNotMatrix = errors.New("labeled: array is not two-dimensional")
)

// LabelError reports a label lookup miss together with the axis it was
// looked up on. errors.Is(err, ErrUnknownLabel) holds for every *LabelError.
type LabelError struct {
	Axis  string // axis name the lookup was performed on
	Label string // offending label
}

// Error implements error.
func (e *LabelError) Error() string {
	return fmt.Sprintf("labeled: unknown label %q on axis %q", e.Label, e.Axis)
}

// Unwrap exposes ErrUnknownLabel to errors.Is.
func (e *LabelError) Unwrap() error { return ErrUnknownLabel }

// arrayErrorf wraps an error with the Array method it was detected in.
func arrayErrorf(method string, err error) error {
	return fmt.Errorf("Array.%s: %w", method, err)
}
