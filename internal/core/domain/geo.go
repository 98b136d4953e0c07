package domain

import "fmt"

// GeoPoint represents a geographic coordinate in decimal degrees.
// Latitude is assumed to lie in [-90, 90] and longitude in [-180, 180];
// neither range is validated.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (p GeoPoint) String() string {
	return fmt.Sprintf("(%.8f, %.8f)", p.Lat, p.Lon)
}

// CoordSystem identifies which datum a point is expressed in.
type CoordSystem int

const (
	// WGS84 is the global geodetic system reported by GPS receivers.
	WGS84 CoordSystem = iota
	// GCJ02 is the obfuscated system mandated for maps displayed in China.
	GCJ02
	// BD09 is the consumer-map offset applied on top of GCJ02.
	BD09
)

func (s CoordSystem) String() string {
	switch s {
	case WGS84:
		return "wgs84"
	case GCJ02:
		return "gcj02"
	case BD09:
		return "bd09"
	default:
		return fmt.Sprintf("coordsystem(%d)", int(s))
	}
}

// WGS84Point is a coordinate in the global geodetic system.
type WGS84Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// GCJ02Point is a coordinate in the China-obfuscated system.
type GCJ02Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// BD09Point is a coordinate in the consumer-obfuscated system.
type BD09Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (WGS84Point) System() CoordSystem { return WGS84 }
func (GCJ02Point) System() CoordSystem { return GCJ02 }
func (BD09Point) System() CoordSystem  { return BD09 }

// GeoPoint drops the datum tag so the point can be fed to the geodesic solver.
func (p WGS84Point) GeoPoint() GeoPoint { return GeoPoint{Lat: p.Lat, Lon: p.Lon} }

// Bounds represents a geographic bounding box.
type Bounds struct {
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}

// Contains reports whether the point lies inside the box, edges included.
func (b Bounds) Contains(lat, lon float64) bool {
	return lon >= b.MinLon && lon <= b.MaxLon && lat >= b.MinLat && lat <= b.MaxLat
}

// GeodesicCurve is the solution of the inverse geodesic problem.
// Azimuths are NaN when both endpoints coincide.
type GeodesicCurve struct {
	DistanceMeters int     `json:"distance_meters"`
	Azimuth        float64 `json:"azimuth"`
	ReverseAzimuth float64 `json:"reverse_azimuth"`
}
