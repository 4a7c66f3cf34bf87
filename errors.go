package paintcore

import "errors"

// Sentinel errors reported (logged) when a stroke cannot start.
// They never cross the stroke boundary; Init reports failure as false.
var (
	// ErrNoBrush is reported when the brush provider has no active brush.
	ErrNoBrush = errors.New("paintcore: no active brush")

	// ErrNoDrawable is reported when Init is called without a drawable.
	ErrNoDrawable = errors.New("paintcore: no drawable")

	// ErrEmptyMask is reported when the active brush has an empty mask.
	ErrEmptyMask = errors.New("paintcore: brush mask is empty")

	// ErrInvalidState is reported when a call arrives out of order.
	ErrInvalidState = errors.New("paintcore: invalid session state")
)
