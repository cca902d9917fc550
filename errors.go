package vecmath

import "errors"

var (
	// ErrIndexOutOfRange is returned by indexed access with an index outside 0..2.
	ErrIndexOutOfRange = errors.New("vector index out of range")

	// ErrInvalidVector is returned when text cannot be parsed as "x,y,z".
	ErrInvalidVector = errors.New("invalid vector")
)
