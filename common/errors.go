package common

import "errors"

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrLengthMismatch   = errors.New("series length mismatch")
	ErrInsufficientData = errors.New("insufficient data points")
)
