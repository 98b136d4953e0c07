// Package gps converts coordinates between WGS84, GCJ02 and BD09 and solves
// geodesic distance, azimuth and destination problems on a reference
// ellipsoid, with the triangle helpers used for trajectory analysis.
//
// WGS84Point, GCJ02Point and BD09Point are distinct types; move a point
// between systems only through the conversion functions, and never convert
// the same point twice. The transforms are lossy, so converting forward and
// back does not reproduce the original point.
//
// Degenerate inputs produce sentinel values, not errors: coincident points
// have distance 0 and a NaN azimuth, and a non-positive travel distance
// leaves a point where it is. Check azimuths with math.IsNaN before use.
package gps

import (
	"github.com/samirrijal/gpsutil/internal/core/domain"
	"github.com/samirrijal/gpsutil/internal/pkg/config"
	"github.com/samirrijal/gpsutil/internal/pkg/geospatial"
)

type (
	GeoPoint      = domain.GeoPoint
	WGS84Point    = domain.WGS84Point
	GCJ02Point    = domain.GCJ02Point
	BD09Point     = domain.BD09Point
	CoordSystem   = domain.CoordSystem
	Bounds        = domain.Bounds
	Ellipsoid     = domain.Ellipsoid
	GeodesicCurve = domain.GeodesicCurve
	Config        = config.Config
)

const (
	WGS84 = domain.WGS84
	GCJ02 = domain.GCJ02
	BD09  = domain.BD09
)

var (
	ErrInvalidTriangle  = domain.ErrInvalidTriangle
	ErrInvalidEllipsoid = domain.ErrInvalidEllipsoid
	ErrUnknownEllipsoid = domain.ErrUnknownEllipsoid
)

// Reference ellipsoids.
var (
	EllipsoidWGS84         = domain.EllipsoidWGS84
	EllipsoidGRS80         = domain.EllipsoidGRS80
	EllipsoidGRS67         = domain.EllipsoidGRS67
	EllipsoidANS           = domain.EllipsoidANS
	EllipsoidClarke1858    = domain.EllipsoidClarke1858
	EllipsoidClarke1880    = domain.EllipsoidClarke1880
	EllipsoidKrasovsky1940 = domain.EllipsoidKrasovsky1940
	EllipsoidSphere        = domain.EllipsoidSphere
)

// NewEllipsoid builds a custom reference ellipsoid.
func NewEllipsoid(name string, semiMajorAxis, flattening float64) (Ellipsoid, error) {
	return domain.NewEllipsoid(name, semiMajorAxis, flattening)
}

// LookupEllipsoid returns a named reference ellipsoid, ignoring case.
func LookupEllipsoid(name string) (Ellipsoid, error) {
	return domain.LookupEllipsoid(name)
}

// LoadConfig reads gpsutil.yaml from . or ./configs, if present, and
// GPSUTIL_* environment variables.
func LoadConfig() (*Config, error) {
	return config.Load()
}

// LoadConfigFile reads the given configuration file.
func LoadConfigFile(path string) (*Config, error) {
	return config.LoadFile(path)
}

// DefaultConfig returns the WGS84, info-level, metrics-off configuration.
func DefaultConfig() *Config {
	return config.Default()
}

// ChinaBounds returns the rectangle inside which WGS84 points are shifted.
func ChinaBounds() Bounds { return geospatial.ChinaBounds() }

// IsOutsideChina reports whether a WGS84 point is left unshifted.
func IsOutsideChina(lat, lon float64) bool { return geospatial.IsOutsideChina(lat, lon) }

// WGS84ToGCJ02 shifts a WGS84 point into GCJ02. Points outside ChinaBounds
// are returned unchanged.
func WGS84ToGCJ02(p WGS84Point) GCJ02Point { return geospatial.WGS84ToGCJ02(p) }

// GCJ02ToBD09 shifts a GCJ02 point into BD09.
func GCJ02ToBD09(p GCJ02Point) BD09Point { return geospatial.GCJ02ToBD09(p) }

// WGS84ToBD09 shifts a WGS84 point into BD09. Points outside ChinaBounds
// are returned unchanged.
func WGS84ToBD09(p WGS84Point) BD09Point { return geospatial.WGS84ToBD09(p) }

// GCJ02ToWGS84Approx approximately undoes WGS84ToGCJ02.
func GCJ02ToWGS84Approx(p GCJ02Point) WGS84Point { return geospatial.GCJ02ToWGS84Approx(p) }

// BD09ToGCJ02Approx approximately undoes GCJ02ToBD09.
func BD09ToGCJ02Approx(p BD09Point) GCJ02Point { return geospatial.BD09ToGCJ02Approx(p) }

// BD09ToWGS84Approx approximately undoes WGS84ToBD09.
func BD09ToWGS84Approx(p BD09Point) WGS84Point { return geospatial.BD09ToWGS84Approx(p) }

// ApexHeightMeters returns the height over baseSide of the triangle with the
// given side lengths, or ErrInvalidTriangle.
func ApexHeightMeters(side1, side2, baseSide int) (int, error) {
	return geospatial.ApexHeightMeters(side1, side2, baseSide)
}

// AngleBetweenAzimuths returns the angle in [0, 180] between two azimuths.
func AngleBetweenAzimuths(azimuth1, azimuth2 float64) float64 {
	return geospatial.AngleBetweenAzimuths(azimuth1, azimuth2)
}
