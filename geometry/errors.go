package geometry

import "errors"

var (
	// ErrInvalidArgument reports empty, non-sequence or non-numeric input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrDimensionMismatch reports vectors of different dimensions, or a
	// cross product outside three dimensions.
	ErrDimensionMismatch = errors.New("dimension mismatch")
	// ErrIndexOutOfBounds reports a coordinate index past the dimension.
	ErrIndexOutOfBounds = errors.New("index out of bounds")
	// ErrDomain reports an operation undefined for its input, such as
	// normalizing the zero vector.
	ErrDomain = errors.New("domain error")
)
