package geodesic

import (
	"fmt"

	tgeo "github.com/tidwall/geodesic"

	"github.com/samirrijal/gpsutil/internal/core/domain"
)

// Solver implements ports.EllipsoidalSolver with Karney's algorithms from
// github.com/tidwall/geodesic. It is bound to one ellipsoid and is safe for
// concurrent use.
type Solver struct {
	ellipsoid domain.Ellipsoid
	geod      *tgeo.Ellipsoid
}

// New creates a Solver for the given ellipsoid.
func New(e domain.Ellipsoid) (*Solver, error) {
	if err := e.Validate(); err != nil {
		return nil, fmt.Errorf("geodesic solver: %w", err)
	}
	return &Solver{
		ellipsoid: e,
		geod:      tgeo.NewEllipsoid(e.SemiMajorAxis, e.Flattening),
	}, nil
}

// NewWGS84 creates a Solver on the WGS84 ellipsoid.
func NewWGS84() *Solver {
	return &Solver{ellipsoid: domain.EllipsoidWGS84, geod: tgeo.WGS84}
}

// Inverse returns the distance in meters and the azimuths in degrees,
// each in [-180, 180].
func (s *Solver) Inverse(p1, p2 domain.GeoPoint) (distance, azi1, azi2 float64) {
	s.geod.Inverse(p1.Lat, p1.Lon, p2.Lat, p2.Lon, &distance, &azi1, &azi2)
	return distance, azi1, azi2
}

// Direct returns the destination point, with longitude in [-180, 180], and
// the forward azimuth on arrival.
func (s *Solver) Direct(p domain.GeoPoint, azimuth, distance float64) (domain.GeoPoint, float64) {
	var lat2, lon2, azi2 float64
	s.geod.Direct(p.Lat, p.Lon, azimuth, distance, &lat2, &lon2, &azi2)
	return domain.GeoPoint{Lat: lat2, Lon: lon2}, azi2
}

// Ellipsoid returns the ellipsoid the solver was built for.
func (s *Solver) Ellipsoid() domain.Ellipsoid {
	return s.ellipsoid
}
