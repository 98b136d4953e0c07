package domain

import "errors"

var (
	// ErrInvalidTriangle is returned when three side lengths violate the
	// triangle inequality, which would put a negative value under Heron's root.
	ErrInvalidTriangle = errors.New("side lengths do not form a triangle")

	ErrInvalidEllipsoid = errors.New("invalid ellipsoid")
	ErrUnknownEllipsoid = errors.New("unknown ellipsoid")
)
