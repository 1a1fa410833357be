package trig

import "errors"

// ErrInvalidInput is returned when user input cannot be parsed into a finite number.
var ErrInvalidInput = errors.New("invalid input")

// ErrUndefinedTangent is returned when the cosine magnitude is below Epsilon,
// meaning the tangent has no defined value at that angle.
var ErrUndefinedTangent = errors.New("tangent undefined")
