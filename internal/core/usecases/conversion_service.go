package usecases

import (
	"github.com/samirrijal/gpsutil/internal/core/domain"
	"github.com/samirrijal/gpsutil/internal/pkg/geospatial"
	"github.com/samirrijal/gpsutil/internal/pkg/metrics"
)

// ConversionService moves points between WGS84, GCJ02 and BD09 and counts
// how many conversions actually shifted a point. The forward transforms are
// lossy; the *Approx methods only undo them to within a few meters.
type ConversionService struct {
	metrics *metrics.Recorder
}

// NewConversionService creates a new ConversionService. rec may be nil.
func NewConversionService(rec *metrics.Recorder) *ConversionService {
	return &ConversionService{metrics: rec}
}

// IsOutsideChina reports whether WGS84 points at (lat, lon) are left unshifted.
func (s *ConversionService) IsOutsideChina(lat, lon float64) bool {
	return geospatial.IsOutsideChina(lat, lon)
}

func (s *ConversionService) WGS84ToGCJ02(p domain.WGS84Point) domain.GCJ02Point {
	s.metrics.Conversion(domain.WGS84, domain.GCJ02, geospatial.IsOutsideChina(p.Lat, p.Lon))
	return geospatial.WGS84ToGCJ02(p)
}

func (s *ConversionService) GCJ02ToBD09(p domain.GCJ02Point) domain.BD09Point {
	s.metrics.Conversion(domain.GCJ02, domain.BD09, false)
	return geospatial.GCJ02ToBD09(p)
}

func (s *ConversionService) WGS84ToBD09(p domain.WGS84Point) domain.BD09Point {
	s.metrics.Conversion(domain.WGS84, domain.BD09, geospatial.IsOutsideChina(p.Lat, p.Lon))
	return geospatial.WGS84ToBD09(p)
}

func (s *ConversionService) GCJ02ToWGS84Approx(p domain.GCJ02Point) domain.WGS84Point {
	s.metrics.Conversion(domain.GCJ02, domain.WGS84, geospatial.IsOutsideChina(p.Lat, p.Lon))
	return geospatial.GCJ02ToWGS84Approx(p)
}

func (s *ConversionService) BD09ToGCJ02Approx(p domain.BD09Point) domain.GCJ02Point {
	s.metrics.Conversion(domain.BD09, domain.GCJ02, false)
	return geospatial.BD09ToGCJ02Approx(p)
}

func (s *ConversionService) BD09ToWGS84Approx(p domain.BD09Point) domain.WGS84Point {
	s.metrics.Conversion(domain.BD09, domain.WGS84, false)
	return geospatial.BD09ToWGS84Approx(p)
}
