package geospatial

import (
	"fmt"
	"math"

	"github.com/samirrijal/gpsutil/internal/core/domain"
)

// ApexHeightMeters returns the height of a triangle over baseSide, i.e. the
// distance from the vertex opposite baseSide down to it, using Heron's
// formula. The semiperimeter is truncated to an integer and the height is
// truncated toward zero, so results are accurate to about a meter.
//
// Side lengths that violate the triangle inequality (or are negative) yield
// domain.ErrInvalidTriangle rather than a NaN height.
func ApexHeightMeters(side1, side2, baseSide int) (int, error) {
	if side1 < 0 || side2 < 0 || baseSide < 0 {
		return 0, fmt.Errorf("%w: negative side in (%d, %d, %d)", domain.ErrInvalidTriangle, side1, side2, baseSide)
	}

	p := (side1 + side2 + baseSide) / 2
	if p == 0 {
		return 0, nil
	}

	// float64 keeps p⁴ from overflowing for continental-scale sides.
	radicand := float64(p) * float64(p-side1) * float64(p-side2) * float64(p-baseSide)
	if radicand < 0 {
		return 0, fmt.Errorf("%w: (%d, %d, %d)", domain.ErrInvalidTriangle, side1, side2, baseSide)
	}

	area := math.Sqrt(radicand)
	if area == 0 {
		return 0, nil
	}
	return int(2 * area / float64(baseSide)), nil
}

// AngleBetweenAzimuths returns the angle in [0, 180] between two rays leaving
// the same point with the given azimuths. Rays exactly 180° apart collapse to
// 0. NaN azimuths propagate.
func AngleBetweenAzimuths(azimuth1, azimuth2 float64) float64 {
	diff := math.Abs(azimuth1 - azimuth2)
	if diff == 180 {
		return 0
	}
	// 10° and 330° are 320° apart one way and 40° the other
	if diff > 180 {
		diff = 360 - diff
	}
	return diff
}
