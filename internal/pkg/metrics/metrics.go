package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/samirrijal/gpsutil/internal/core/domain"
)

var (
	conversionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gpsutil",
		Subsystem: "conversion",
		Name:      "total",
		Help:      "Coordinate conversions by source system, target system and outcome",
	}, []string{"from", "to", "outcome"})

	geodesicDegenerateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gpsutil",
		Subsystem: "geodesic",
		Name:      "degenerate_total",
		Help:      "Geodesic calls answered by a short-circuit instead of the solver",
	}, []string{"operation", "reason"})

	geodesicSolvesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gpsutil",
		Subsystem: "geodesic",
		Name:      "solves_total",
		Help:      "Calls delegated to the ellipsoidal solver",
	}, []string{"problem", "ellipsoid"})

	invalidTrianglesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gpsutil",
		Subsystem: "geometry",
		Name:      "invalid_triangles_total",
		Help:      "Triangles rejected because their sides violate the triangle inequality",
	})
)

// Outcome labels for conversions.
const (
	OutcomeConverted   = "converted"
	OutcomePassthrough = "passthrough"
)

// Degenerate reasons.
const (
	ReasonCoincidentPoints    = "coincident_points"
	ReasonNonPositiveDistance = "non_positive_distance"
)

// Recorder records library metrics into the default Prometheus registry.
// A nil *Recorder records nothing, so callers can disable metrics by
// passing nil.
type Recorder struct{}

// New returns a Recorder when enabled is true and nil otherwise.
func New(enabled bool) *Recorder {
	if !enabled {
		return nil
	}
	return &Recorder{}
}

// Conversion counts one coordinate conversion.
func (r *Recorder) Conversion(from, to domain.CoordSystem, passthrough bool) {
	if r == nil {
		return
	}
	outcome := OutcomeConverted
	if passthrough {
		outcome = OutcomePassthrough
	}
	conversionsTotal.WithLabelValues(from.String(), to.String(), outcome).Inc()
}

// GeodesicDegenerate counts a short-circuited geodesic call.
func (r *Recorder) GeodesicDegenerate(operation, reason string) {
	if r == nil {
		return
	}
	geodesicDegenerateTotal.WithLabelValues(operation, reason).Inc()
}

// GeodesicSolve counts a call delegated to the solver. problem is
// "inverse" or "direct".
func (r *Recorder) GeodesicSolve(problem, ellipsoid string) {
	if r == nil {
		return
	}
	geodesicSolvesTotal.WithLabelValues(problem, ellipsoid).Inc()
}

// InvalidTriangle counts a rejected triangle.
func (r *Recorder) InvalidTriangle() {
	if r == nil {
		return
	}
	invalidTrianglesTotal.Inc()
}
