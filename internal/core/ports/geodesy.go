package ports

import "github.com/samirrijal/gpsutil/internal/core/domain"

// EllipsoidalSolver solves the inverse and direct geodesic problems on a
// single reference ellipsoid. Angles are in degrees, distances in meters.
type EllipsoidalSolver interface {
	// Inverse returns the geodesic distance between p1 and p2, the azimuth
	// at p1 and the forward azimuth at p2.
	Inverse(p1, p2 domain.GeoPoint) (distance, azi1, azi2 float64)
	// Direct returns the point reached by travelling distance meters from
	// p along azimuth, and the forward azimuth on arrival.
	Direct(p domain.GeoPoint, azimuth, distance float64) (domain.GeoPoint, float64)
	Ellipsoid() domain.Ellipsoid
}

// GeodesicCalculator exposes the distance and azimuth primitives that the
// planar geometry helpers are built on.
type GeodesicCalculator interface {
	Distance(p1, p2 domain.GeoPoint) int
	Azimuth(p1, p2 domain.GeoPoint) float64
}
