package usecases

import (
	"log/slog"
	"math"

	"github.com/samirrijal/gpsutil/internal/core/domain"
	"github.com/samirrijal/gpsutil/internal/core/ports"
	"github.com/samirrijal/gpsutil/internal/pkg/metrics"
)

// GeodesicService answers distance, azimuth and destination queries on the
// solver's ellipsoid. Distances are truncated to whole meters, so results
// are accurate to about a meter; azimuths keep full precision and are
// reported clockwise from north in [0, 360).
type GeodesicService struct {
	solver  ports.EllipsoidalSolver
	metrics *metrics.Recorder
	log     *slog.Logger
}

// NewGeodesicService creates a new GeodesicService. rec and logger may be nil.
func NewGeodesicService(solver ports.EllipsoidalSolver, rec *metrics.Recorder, logger *slog.Logger) *GeodesicService {
	if logger == nil {
		logger = slog.Default()
	}
	return &GeodesicService{solver: solver, metrics: rec, log: logger}
}

// Ellipsoid returns the reference ellipsoid all results are computed on.
func (s *GeodesicService) Ellipsoid() domain.Ellipsoid {
	return s.solver.Ellipsoid()
}

// Inverse returns the truncated distance and the azimuths between p1 and p2.
// Coincident points yield a zero distance and NaN azimuths without
// consulting the solver.
func (s *GeodesicService) Inverse(p1, p2 domain.GeoPoint) domain.GeodesicCurve {
	return s.inverse("inverse", p1, p2)
}

// Azimuth returns the azimuth at p1 towards p2, or NaN when they coincide.
func (s *GeodesicService) Azimuth(p1, p2 domain.GeoPoint) float64 {
	return s.inverse("azimuth", p1, p2).Azimuth
}

// Distance returns the distance in whole meters, or 0 when the points coincide.
func (s *GeodesicService) Distance(p1, p2 domain.GeoPoint) int {
	return s.inverse("distance", p1, p2).DistanceMeters
}

// Direct returns the point reached by travelling distanceMeters from p along
// azimuthDegrees. A non-positive distance means no movement and returns p.
func (s *GeodesicService) Direct(p domain.GeoPoint, distanceMeters int, azimuthDegrees float64) domain.GeoPoint {
	if distanceMeters <= 0 {
		s.metrics.GeodesicDegenerate("direct", metrics.ReasonNonPositiveDistance)
		s.log.Debug("direct: non-positive distance, staying put",
			"point", p, "distance_m", distanceMeters)
		return p
	}
	s.metrics.GeodesicSolve("direct", s.solver.Ellipsoid().Name)
	dest, _ := s.solver.Direct(p, azimuthDegrees, float64(distanceMeters))
	return dest
}

func (s *GeodesicService) inverse(op string, p1, p2 domain.GeoPoint) domain.GeodesicCurve {
	if p1.Lat == p2.Lat && p1.Lon == p2.Lon {
		s.metrics.GeodesicDegenerate(op, metrics.ReasonCoincidentPoints)
		s.log.Debug("geodesic: coincident points", "operation", op, "point", p1)
		return domain.GeodesicCurve{
			DistanceMeters: 0,
			Azimuth:        math.NaN(),
			ReverseAzimuth: math.NaN(),
		}
	}

	s.metrics.GeodesicSolve("inverse", s.solver.Ellipsoid().Name)
	dist, azi1, azi2 := s.solver.Inverse(p1, p2)
	return domain.GeodesicCurve{
		DistanceMeters: int(dist),
		Azimuth:        normalizeAzimuth(azi1),
		ReverseAzimuth: normalizeAzimuth(azi2 + 180),
	}
}

// normalizeAzimuth maps degrees in [-180, 540) onto [0, 360).
func normalizeAzimuth(deg float64) float64 {
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg -= 360
	}
	return deg
}
