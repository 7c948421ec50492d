package geometry

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// AreaSquareMiles computes the planar area of a projected geometry in square
// miles. The geometry must be in the planar system; calling this on
// geographic coordinates would silently produce degree-squared nonsense.
func AreaSquareMiles(geometry orb.Geometry) float64 {
	return planar.Area(geometry) / (MetresPerMile * MetresPerMile)
}

// RegionArea unions geographic boundary polygons, e.g. a metropolitan area's
// county polygons, and returns the combined land area in square miles.
func RegionArea(boundary []orb.Polygon, projection Projection) (float64, error) {
	projected := make([]orb.Polygon, 0, len(boundary))
	for _, polygon := range boundary {
		projected = append(projected, projection.ForwardPolygon(polygon))
	}

	unioned, err := Union(projected)
	if err != nil {
		return 0, err
	}

	return AreaSquareMiles(unioned), nil
}
