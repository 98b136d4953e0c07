package usecases_test

import (
	"math"
	"sync"
	"testing"

	"github.com/samirrijal/gpsutil/internal/adapters/geodesic"
	"github.com/samirrijal/gpsutil/internal/core/domain"
	"github.com/samirrijal/gpsutil/internal/core/usecases"
)

// --- Mock EllipsoidalSolver ---

type mockSolver struct {
	mu           sync.Mutex
	inverseCalls int
	directCalls  int

	inverseFn func(p1, p2 domain.GeoPoint) (float64, float64, float64)
	directFn  func(p domain.GeoPoint, azimuth, distance float64) (domain.GeoPoint, float64)
}

func (m *mockSolver) Inverse(p1, p2 domain.GeoPoint) (float64, float64, float64) {
	m.mu.Lock()
	m.inverseCalls++
	m.mu.Unlock()
	if m.inverseFn != nil {
		return m.inverseFn(p1, p2)
	}
	return 0, 0, 0
}

func (m *mockSolver) Direct(p domain.GeoPoint, azimuth, distance float64) (domain.GeoPoint, float64) {
	m.mu.Lock()
	m.directCalls++
	m.mu.Unlock()
	if m.directFn != nil {
		return m.directFn(p, azimuth, distance)
	}
	return p, azimuth
}

func (m *mockSolver) Ellipsoid() domain.Ellipsoid { return domain.EllipsoidWGS84 }

var (
	guangzhou = domain.GeoPoint{Lat: 23.412125815515367, Lon: 113.30386230145066}
	hengyang  = domain.GeoPoint{Lat: 26.612019446391354, Lon: 113.56976319554525}
)

// --- Tests ---

func TestGeodesicService_CoincidentPointsShortCircuit(t *testing.T) {
	solver := &mockSolver{}
	svc := usecases.NewGeodesicService(solver, nil, nil)

	for _, p := range []domain.GeoPoint{guangzhou, {Lat: 0, Lon: 0}, {Lat: -89.5, Lon: 179.9}} {
		curve := svc.Inverse(p, p)
		if curve.DistanceMeters != 0 {
			t.Errorf("Inverse(%v, %v) distance = %d, want 0", p, p, curve.DistanceMeters)
		}
		if !math.IsNaN(curve.Azimuth) || !math.IsNaN(curve.ReverseAzimuth) {
			t.Errorf("Inverse(%v, %v) azimuths = %v/%v, want NaN", p, p, curve.Azimuth, curve.ReverseAzimuth)
		}
		if d := svc.Distance(p, p); d != 0 {
			t.Errorf("Distance = %d, want 0", d)
		}
		if a := svc.Azimuth(p, p); !math.IsNaN(a) {
			t.Errorf("Azimuth = %v, want NaN", a)
		}
	}

	if solver.inverseCalls != 0 {
		t.Errorf("solver called %d times for coincident points", solver.inverseCalls)
	}
}

func TestGeodesicService_TruncatesDistance(t *testing.T) {
	solver := &mockSolver{
		inverseFn: func(p1, p2 domain.GeoPoint) (float64, float64, float64) {
			return 1234.999, -30, 150
		},
	}
	svc := usecases.NewGeodesicService(solver, nil, nil)

	curve := svc.Inverse(guangzhou, hengyang)
	if curve.DistanceMeters != 1234 {
		t.Errorf("distance = %d, want 1234", curve.DistanceMeters)
	}
	if curve.Azimuth != 330 {
		t.Errorf("azimuth = %v, want 330", curve.Azimuth)
	}
	if curve.ReverseAzimuth != 330 {
		t.Errorf("reverse azimuth = %v, want 330", curve.ReverseAzimuth)
	}
	if solver.inverseCalls != 1 {
		t.Errorf("expected 1 solver call, got %d", solver.inverseCalls)
	}
}

func TestGeodesicService_DirectNonPositiveDistance(t *testing.T) {
	solver := &mockSolver{}
	svc := usecases.NewGeodesicService(solver, nil, nil)

	for _, d := range []int{0, -5, -1000000} {
		for _, az := range []float64{0, 45, 359.9, math.NaN()} {
			if got := svc.Direct(guangzhou, d, az); got != guangzhou {
				t.Errorf("Direct(%v, %d, %v) = %v, want unchanged", guangzhou, d, az, got)
			}
		}
	}
	if solver.directCalls != 0 {
		t.Errorf("solver called %d times for non-positive distances", solver.directCalls)
	}
}

func TestGeodesicService_DirectDelegates(t *testing.T) {
	dest := domain.GeoPoint{Lat: 1, Lon: 2}
	solver := &mockSolver{
		directFn: func(p domain.GeoPoint, azimuth, distance float64) (domain.GeoPoint, float64) {
			if azimuth != 90 || distance != 500 {
				t.Errorf("solver got azimuth %v distance %v", azimuth, distance)
			}
			return dest, azimuth
		},
	}
	svc := usecases.NewGeodesicService(solver, nil, nil)

	if got := svc.Direct(guangzhou, 500, 90); got != dest {
		t.Errorf("Direct = %v, want %v", got, dest)
	}
}

func TestGeodesicService_GuangzhouReference(t *testing.T) {
	svc := usecases.NewGeodesicService(geodesic.NewWGS84(), nil, nil)

	distance := svc.Distance(guangzhou, hengyang)
	if distance != 355476 {
		t.Errorf("distance = %d, want 355476", distance)
	}

	azimuth := svc.Azimuth(guangzhou, hengyang)
	if math.Abs(azimuth-4.2745277503770485) > 1e-8 {
		t.Errorf("azimuth = %.12f, want 4.274527750377", azimuth)
	}

	curve := svc.Inverse(guangzhou, hengyang)
	if curve.DistanceMeters != distance || curve.Azimuth != azimuth {
		t.Errorf("Inverse = %+v, disagrees with Distance/Azimuth", curve)
	}

	// the truncated distance lands short of the target by under a meter
	landed := svc.Direct(guangzhou, distance, azimuth)
	if miss := svc.Distance(hengyang, landed); miss > 1 {
		t.Errorf("direct landed %d m from target", miss)
	}
}

func TestGeodesicService_ReverseAzimuth(t *testing.T) {
	svc := usecases.NewGeodesicService(geodesic.NewWGS84(), nil, nil)

	there := svc.Inverse(guangzhou, hengyang)
	back := svc.Inverse(hengyang, guangzhou)
	if math.Abs(there.ReverseAzimuth-back.Azimuth) > 1e-9 {
		t.Errorf("reverse azimuth %v, want %v", there.ReverseAzimuth, back.Azimuth)
	}
	if there.Azimuth < 0 || there.Azimuth >= 360 || back.Azimuth < 0 || back.Azimuth >= 360 {
		t.Errorf("azimuths out of [0, 360): %v, %v", there.Azimuth, back.Azimuth)
	}
}

func TestGeodesicService_ConcurrentUse(t *testing.T) {
	svc := usecases.NewGeodesicService(geodesic.NewWGS84(), nil, nil)
	want := svc.Distance(guangzhou, hengyang)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := svc.Distance(guangzhou, hengyang); got != want {
					t.Errorf("concurrent distance = %d, want %d", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}
