package gps

import (
	"fmt"
	"log/slog"

	"github.com/samirrijal/gpsutil/internal/adapters/geodesic"
	"github.com/samirrijal/gpsutil/internal/core/usecases"
	"github.com/samirrijal/gpsutil/internal/pkg/logging"
	"github.com/samirrijal/gpsutil/internal/pkg/metrics"
)

// Toolkit bundles the conversion, geodesic and geometry services on one
// ellipsoid. It holds no mutable state and is safe for concurrent use.
type Toolkit struct {
	Conversion *usecases.ConversionService
	Geodesic   *usecases.GeodesicService
	Geometry   *usecases.GeometryService
}

type options struct {
	ellipsoid Ellipsoid
	logger    *slog.Logger
	metrics   bool
}

// Option customises New.
type Option func(*options)

// WithEllipsoid selects the reference ellipsoid (default WGS84).
func WithEllipsoid(e Ellipsoid) Option {
	return func(o *options) { o.ellipsoid = e }
}

// WithLogger sets the logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMetrics enables Prometheus counters in the default registry.
func WithMetrics(enabled bool) Option {
	return func(o *options) { o.metrics = enabled }
}

// New creates a Toolkit.
func New(opts ...Option) (*Toolkit, error) {
	o := options{ellipsoid: EllipsoidWGS84}
	for _, opt := range opts {
		opt(&o)
	}

	solver, err := geodesic.New(o.ellipsoid)
	if err != nil {
		return nil, err
	}

	rec := metrics.New(o.metrics)
	geo := usecases.NewGeodesicService(solver, rec, o.logger)
	return &Toolkit{
		Conversion: usecases.NewConversionService(rec),
		Geodesic:   geo,
		Geometry:   usecases.NewGeometryService(geo, rec, o.logger),
	}, nil
}

// NewFromConfig creates a Toolkit from loaded configuration.
func NewFromConfig(cfg *Config) (*Toolkit, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e, err := cfg.Geodesy.ResolveEllipsoid()
	if err != nil {
		return nil, fmt.Errorf("resolve ellipsoid: %w", err)
	}
	logger := logging.New(cfg.Log.Level, cfg.Log.Format)
	logger.Debug("gps toolkit configured", "ellipsoid", e.String(), "metrics", cfg.Metrics.Enabled)

	return New(
		WithEllipsoid(e),
		WithLogger(logger),
		WithMetrics(cfg.Metrics.Enabled),
	)
}
