package domain

import (
	"fmt"
	"math"
	"strings"
)

// Ellipsoid is a reference ellipsoid, defined by its equatorial radius
// and flattening. Values are immutable; share them freely.
type Ellipsoid struct {
	Name          string  `json:"name"`
	SemiMajorAxis float64 `json:"semi_major_axis"` // meters
	Flattening    float64 `json:"flattening"`
}

// Named reference ellipsoids.
var (
	EllipsoidWGS84         = Ellipsoid{Name: "WGS84", SemiMajorAxis: 6378137.0, Flattening: 1 / 298.257223563}
	EllipsoidGRS80         = Ellipsoid{Name: "GRS80", SemiMajorAxis: 6378137.0, Flattening: 1 / 298.257222101}
	EllipsoidGRS67         = Ellipsoid{Name: "GRS67", SemiMajorAxis: 6378160.0, Flattening: 1 / 298.25}
	EllipsoidANS           = Ellipsoid{Name: "ANS", SemiMajorAxis: 6378160.0, Flattening: 1 / 298.25}
	EllipsoidClarke1858    = Ellipsoid{Name: "Clarke1858", SemiMajorAxis: 6378293.645, Flattening: 1 / 294.26}
	EllipsoidClarke1880    = Ellipsoid{Name: "Clarke1880", SemiMajorAxis: 6378249.145, Flattening: 1 / 293.465}
	EllipsoidKrasovsky1940 = Ellipsoid{Name: "Krasovsky1940", SemiMajorAxis: 6378245.0, Flattening: 1 / 298.3}
	EllipsoidSphere        = Ellipsoid{Name: "Sphere", SemiMajorAxis: 6371000.0, Flattening: 0}
)

var namedEllipsoids = []Ellipsoid{
	EllipsoidWGS84,
	EllipsoidGRS80,
	EllipsoidGRS67,
	EllipsoidANS,
	EllipsoidClarke1858,
	EllipsoidClarke1880,
	EllipsoidKrasovsky1940,
	EllipsoidSphere,
}

// NewEllipsoid builds a custom ellipsoid. The semi-major axis must be
// positive and the flattening must lie in [0, 1).
func NewEllipsoid(name string, semiMajorAxis, flattening float64) (Ellipsoid, error) {
	e := Ellipsoid{Name: name, SemiMajorAxis: semiMajorAxis, Flattening: flattening}
	if err := e.Validate(); err != nil {
		return Ellipsoid{}, err
	}
	return e, nil
}

// LookupEllipsoid returns the named ellipsoid, ignoring case.
func LookupEllipsoid(name string) (Ellipsoid, error) {
	for _, e := range namedEllipsoids {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return Ellipsoid{}, fmt.Errorf("%w: %q", ErrUnknownEllipsoid, name)
}

// EllipsoidNames lists the names accepted by LookupEllipsoid.
func EllipsoidNames() []string {
	names := make([]string, len(namedEllipsoids))
	for i, e := range namedEllipsoids {
		names[i] = e.Name
	}
	return names
}

// Validate checks that the parameters describe an oblate ellipsoid or a sphere.
func (e Ellipsoid) Validate() error {
	if math.IsNaN(e.SemiMajorAxis) || math.IsInf(e.SemiMajorAxis, 0) || e.SemiMajorAxis <= 0 {
		return fmt.Errorf("%w: semi-major axis must be positive, got %v", ErrInvalidEllipsoid, e.SemiMajorAxis)
	}
	if math.IsNaN(e.Flattening) || e.Flattening < 0 || e.Flattening >= 1 {
		return fmt.Errorf("%w: flattening must be in [0, 1), got %v", ErrInvalidEllipsoid, e.Flattening)
	}
	return nil
}

// SemiMinorAxis returns the polar radius in meters.
func (e Ellipsoid) SemiMinorAxis() float64 {
	return e.SemiMajorAxis * (1 - e.Flattening)
}

// EccentricitySquared returns e² = f(2 - f).
func (e Ellipsoid) EccentricitySquared() float64 {
	return e.Flattening * (2 - e.Flattening)
}

// InverseFlattening returns 1/f, or +Inf for a sphere.
func (e Ellipsoid) InverseFlattening() float64 {
	if e.Flattening == 0 {
		return math.Inf(1)
	}
	return 1 / e.Flattening
}

func (e Ellipsoid) String() string {
	return fmt.Sprintf("%s(a=%.3f, 1/f=%.9f)", e.Name, e.SemiMajorAxis, e.InverseFlattening())
}
