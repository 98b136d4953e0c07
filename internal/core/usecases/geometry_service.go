package usecases

import (
	"errors"
	"log/slog"

	"github.com/samirrijal/gpsutil/internal/core/domain"
	"github.com/samirrijal/gpsutil/internal/core/ports"
	"github.com/samirrijal/gpsutil/internal/pkg/geospatial"
	"github.com/samirrijal/gpsutil/internal/pkg/metrics"
)

// GeometryService derives planar triangle measures from geodesic distances
// and azimuths, for analysing how far a track strays from a route segment.
type GeometryService struct {
	geo     ports.GeodesicCalculator
	metrics *metrics.Recorder
	log     *slog.Logger
}

// NewGeometryService creates a new GeometryService. rec and logger may be nil.
func NewGeometryService(geo ports.GeodesicCalculator, rec *metrics.Recorder, logger *slog.Logger) *GeometryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GeometryService{geo: geo, metrics: rec, log: logger}
}

// ApexHeightFromPoints returns the distance in whole meters from vertex to
// the line through p1 and p2.
//
// Truncating the three sides to whole meters can leave a vertex lying on
// the base line short of the triangle inequality by one meter; such a
// vertex is reported at height 0. Anything worse is returned as
// domain.ErrInvalidTriangle.
func (s *GeometryService) ApexHeightFromPoints(vertex, p1, p2 domain.GeoPoint) (int, error) {
	side1 := s.geo.Distance(vertex, p1)
	side2 := s.geo.Distance(vertex, p2)
	baseSide := s.geo.Distance(p1, p2)

	h, err := geospatial.ApexHeightMeters(side1, side2, baseSide)
	if err == nil {
		return h, nil
	}
	if errors.Is(err, domain.ErrInvalidTriangle) && triangleShortfall(side1, side2, baseSide) <= 1 {
		return 0, nil
	}

	s.metrics.InvalidTriangle()
	s.log.Warn("apex height: sides do not form a triangle",
		"vertex", vertex, "p1", p1, "p2", p2,
		"side1_m", side1, "side2_m", side2, "base_m", baseSide)
	return 0, err
}

// AngleBetweenBearings returns the angle in degrees, within [0, 180], between
// the rays vertex→p1 and vertex→p2. It is NaN when either point coincides
// with vertex, and 0 when the rays point in exactly opposite directions.
func (s *GeometryService) AngleBetweenBearings(p1, vertex, p2 domain.GeoPoint) float64 {
	azimuth1 := s.geo.Azimuth(vertex, p1)
	azimuth2 := s.geo.Azimuth(vertex, p2)
	return geospatial.AngleBetweenAzimuths(azimuth1, azimuth2)
}

// triangleShortfall returns by how many meters the longest side exceeds
// the sum of the other two.
func triangleShortfall(a, b, c int) int {
	return max(a-b-c, b-a-c, c-a-b)
}
