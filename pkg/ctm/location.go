package ctm

import (
	"math"

	"github.com/paulmach/orb"
)

type Location struct {
	Latitude  float64
	Longitude float64
}

func (l Location) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// Valid reports whether the location is a finite WGS84 coordinate pair.
// (0, 0) is treated as invalid as it is the overwhelmingly common filler for
// a missing coordinate in agency exports.
func (l Location) Valid() bool {
	if math.IsNaN(l.Latitude) || math.IsInf(l.Latitude, 0) {
		return false
	}
	if math.IsNaN(l.Longitude) || math.IsInf(l.Longitude, 0) {
		return false
	}
	if l.Latitude == 0 && l.Longitude == 0 {
		return false
	}

	return l.Latitude >= -90 && l.Latitude <= 90 && l.Longitude >= -180 && l.Longitude <= 180
}
