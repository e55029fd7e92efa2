package gfx

import "errors"

var (
	// ErrInvalidArgument is returned when a constructor receives a value it
	// cannot represent, such as a NaN size component.
	ErrInvalidArgument = errors.New("gfx: invalid argument")

	// ErrSingularMatrix is returned by UnprojectChecked when the supplied
	// transform has no inverse.
	ErrSingularMatrix = errors.New("gfx: matrix is not invertible")
)
