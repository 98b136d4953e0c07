package geodesic_test

import (
	"errors"
	"math"
	"testing"

	"github.com/samirrijal/gpsutil/internal/adapters/geodesic"
	"github.com/samirrijal/gpsutil/internal/core/domain"
)

var (
	guangzhou = domain.GeoPoint{Lat: 23.412125815515367, Lon: 113.30386230145066}
	hengyang  = domain.GeoPoint{Lat: 26.612019446391354, Lon: 113.56976319554525}
)

func TestSolver_InverseWGS84(t *testing.T) {
	s := geodesic.NewWGS84()

	dist, azi1, azi2 := s.Inverse(guangzhou, hengyang)
	if math.Abs(dist-355476.913) > 1e-3 {
		t.Errorf("distance = %.6f, want 355476.913", dist)
	}
	if math.Abs(azi1-4.27452775) > 1e-7 {
		t.Errorf("azi1 = %.9f, want 4.27452775", azi1)
	}
	if math.Abs(azi2-4.38699727) > 1e-7 {
		t.Errorf("azi2 = %.9f, want 4.38699727", azi2)
	}
}

func TestSolver_DirectInvertsInverse(t *testing.T) {
	s := geodesic.NewWGS84()

	dist, azi1, _ := s.Inverse(guangzhou, hengyang)
	got, _ := s.Direct(guangzhou, azi1, dist)
	if math.Abs(got.Lat-hengyang.Lat) > 1e-9 || math.Abs(got.Lon-hengyang.Lon) > 1e-9 {
		t.Errorf("Direct = %v, want %v", got, hengyang)
	}
}

func TestSolver_New(t *testing.T) {
	s, err := geodesic.New(domain.EllipsoidKrasovsky1940)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Ellipsoid() != domain.EllipsoidKrasovsky1940 {
		t.Errorf("Ellipsoid() = %v", s.Ellipsoid())
	}

	wgs, _, _ := geodesic.NewWGS84().Inverse(guangzhou, hengyang)
	kra, _, _ := s.Inverse(guangzhou, hengyang)
	if kra == wgs {
		t.Error("expected Krasovsky and WGS84 distances to differ")
	}
	if math.Abs(kra-wgs) > 50 {
		t.Errorf("Krasovsky distance %.3f too far from WGS84 %.3f", kra, wgs)
	}
}

func TestSolver_Sphere(t *testing.T) {
	s, err := geodesic.New(domain.EllipsoidSphere)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// a quarter meridian on a sphere
	dist, azi1, _ := s.Inverse(domain.GeoPoint{Lat: 0, Lon: 0}, domain.GeoPoint{Lat: 90, Lon: 0})
	want := math.Pi / 2 * domain.EllipsoidSphere.SemiMajorAxis
	if math.Abs(dist-want) > 1e-6 {
		t.Errorf("distance = %.6f, want %.6f", dist, want)
	}
	if math.Abs(azi1) > 1e-9 {
		t.Errorf("azimuth = %v, want 0", azi1)
	}
}

func TestSolver_NewRejectsInvalidEllipsoid(t *testing.T) {
	_, err := geodesic.New(domain.Ellipsoid{Name: "bad", SemiMajorAxis: -1})
	if !errors.Is(err, domain.ErrInvalidEllipsoid) {
		t.Errorf("expected ErrInvalidEllipsoid, got %v", err)
	}
}
