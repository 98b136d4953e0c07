package geospatial

import (
	"math"

	"github.com/samirrijal/gpsutil/internal/core/domain"
)

// Published literals of the obfuscation algorithm; do not replace pi with
// math.Pi. Typed, so derived constants round to float64 at every step.
const (
	pi          float64 = 3.14159265358979324
	xPi         float64 = pi * 3000.0 / 180.0
	krasovskyA  float64 = 6378245.0
	krasovskyEE float64 = 0.00669342162296594323
)

// ChinaBounds returns the coarse rectangle inside which WGS84 points are
// obfuscated. It is not a border; it also covers parts of neighbouring
// countries.
func ChinaBounds() domain.Bounds {
	return domain.Bounds{MinLat: 0.8293, MinLon: 72.004, MaxLat: 55.8271, MaxLon: 137.8347}
}

// IsOutsideChina reports whether a point falls outside ChinaBounds.
// Both edges belong to the inside.
func IsOutsideChina(lat, lon float64) bool {
	if lon < 72.004 || lon > 137.8347 {
		return true
	}
	if lat < 0.8293 || lat > 55.8271 {
		return true
	}
	return false
}

// WGS84ToGCJ02 obfuscates a WGS84 point. Points outside ChinaBounds are
// returned unchanged.
func WGS84ToGCJ02(p domain.WGS84Point) domain.GCJ02Point {
	if IsOutsideChina(p.Lat, p.Lon) {
		return domain.GCJ02Point{Lat: p.Lat, Lon: p.Lon}
	}
	dLat, dLon := offset(p.Lat, p.Lon)
	return domain.GCJ02Point{Lat: p.Lat + dLat, Lon: p.Lon + dLon}
}

// GCJ02ToBD09 applies the consumer-map polar remap. It does not gate on
// ChinaBounds; callers holding a WGS84 point should use WGS84ToBD09.
func GCJ02ToBD09(p domain.GCJ02Point) domain.BD09Point {
	x, y := p.Lon, p.Lat
	z := math.Sqrt(x*x+y*y) + 0.00002*math.Sin(y*xPi)
	theta := math.Atan2(y, x) + 0.000003*math.Cos(x*xPi)
	return domain.BD09Point{
		Lat: z*math.Sin(theta) + 0.006,
		Lon: z*math.Cos(theta) + 0.0065,
	}
}

// WGS84ToBD09 gates once on ChinaBounds and then composes WGS84ToGCJ02 and
// GCJ02ToBD09.
func WGS84ToBD09(p domain.WGS84Point) domain.BD09Point {
	if IsOutsideChina(p.Lat, p.Lon) {
		return domain.BD09Point{Lat: p.Lat, Lon: p.Lon}
	}
	return GCJ02ToBD09(WGS84ToGCJ02(p))
}

// GCJ02ToWGS84Approx undoes WGS84ToGCJ02 by subtracting the offset evaluated
// at the obfuscated point. The result is off by up to a few meters.
func GCJ02ToWGS84Approx(p domain.GCJ02Point) domain.WGS84Point {
	if IsOutsideChina(p.Lat, p.Lon) {
		return domain.WGS84Point{Lat: p.Lat, Lon: p.Lon}
	}
	dLat, dLon := offset(p.Lat, p.Lon)
	return domain.WGS84Point{Lat: p.Lat - dLat, Lon: p.Lon - dLon}
}

// BD09ToGCJ02Approx reverses the polar remap of GCJ02ToBD09. Like its
// forward counterpart it applies no gate.
func BD09ToGCJ02Approx(p domain.BD09Point) domain.GCJ02Point {
	x, y := p.Lon-0.0065, p.Lat-0.006
	z := math.Sqrt(x*x+y*y) - 0.00002*math.Sin(y*xPi)
	theta := math.Atan2(y, x) - 0.000003*math.Cos(x*xPi)
	return domain.GCJ02Point{
		Lat: z * math.Sin(theta),
		Lon: z * math.Cos(theta),
	}
}

// BD09ToWGS84Approx composes the two approximate inverses.
func BD09ToWGS84Approx(p domain.BD09Point) domain.WGS84Point {
	return GCJ02ToWGS84Approx(BD09ToGCJ02Approx(p))
}

// offset returns the GCJ02 shift in degrees for a point inside ChinaBounds.
func offset(lat, lon float64) (dLat, dLon float64) {
	dLat = offsetLat(lon-105.0, lat-35.0)
	dLon = offsetLon(lon-105.0, lat-35.0)

	radLat := lat / 180.0 * pi
	magic := math.Sin(radLat)
	magic = 1 - krasovskyEE*magic*magic
	sqrtMagic := math.Sqrt(magic)

	// meridional and normal radii of curvature on Krasovsky 1940
	dLat = (dLat * 180.0) / ((krasovskyA * (1 - krasovskyEE)) / (magic * sqrtMagic) * pi)
	dLon = (dLon * 180.0) / (krasovskyA / sqrtMagic * math.Cos(radLat) * pi)
	return dLat, dLon
}

func offsetLat(x, y float64) float64 {
	ret := -100.0 + 2.0*x + 3.0*y + 0.2*y*y + 0.1*x*y + 0.2*math.Sqrt(math.Abs(x))
	ret += (20.0*math.Sin(6.0*x*pi) + 20.0*math.Sin(2.0*x*pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(y*pi) + 40.0*math.Sin(y/3.0*pi)) * 2.0 / 3.0
	ret += (160.0*math.Sin(y/12.0*pi) + 320*math.Sin(y*pi/30.0)) * 2.0 / 3.0
	return ret
}

func offsetLon(x, y float64) float64 {
	ret := 300.0 + x + 2.0*y + 0.1*x*x + 0.1*x*y + 0.1*math.Sqrt(math.Abs(x))
	ret += (20.0*math.Sin(6.0*x*pi) + 20.0*math.Sin(2.0*x*pi)) * 2.0 / 3.0
	ret += (20.0*math.Sin(x*pi) + 40.0*math.Sin(x/3.0*pi)) * 2.0 / 3.0
	ret += (150.0*math.Sin(x/12.0*pi) + 300.0*math.Sin(x/30.0*pi)) * 2.0 / 3.0
	return ret
}
