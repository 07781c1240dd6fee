package index

import "errors"

var (
	// ErrInvalidDimension indicates a non-positive vector dimension.
	ErrInvalidDimension = errors.New("invalid vector dimension")

	// ErrDimensionMismatch indicates a vector whose length differs from
	// the index dimension.
	ErrDimensionMismatch = errors.New("vector dimension mismatch")

	// ErrCorruptSnapshot indicates a snapshot blob that cannot be decoded.
	ErrCorruptSnapshot = errors.New("corrupt index snapshot")
)
