package geometry

import (
	"fmt"

	"github.com/engelsjk/polygol"
	"github.com/paulmach/orb"
)

// Union merges polygons into one multipolygon with overlaps removed, so the
// covered area is never double counted. Unioning an already unioned geometry
// is a no-op within floating point tolerance.
func Union(polygons []orb.Polygon) (orb.MultiPolygon, error) {
	if len(polygons) == 0 {
		return nil, nil
	}

	geoms := make([]polygol.Geom, 0, len(polygons))
	for _, polygon := range polygons {
		geoms = append(geoms, polygonToGeom(polygon))
	}

	unioned, err := polygol.Union(geoms[0], geoms[1:]...)
	if err != nil {
		return nil, fmt.Errorf("polygon union failed: %w", err)
	}

	return geomToMultiPolygon(unioned), nil
}

// UnionMulti merges per-category multipolygons into the overall geometry.
func UnionMulti(multiPolygons []orb.MultiPolygon) (orb.MultiPolygon, error) {
	var polygons []orb.Polygon
	for _, multiPolygon := range multiPolygons {
		polygons = append(polygons, multiPolygon...)
	}
	return Union(polygons)
}

func polygonToGeom(polygon orb.Polygon) polygol.Geom {
	rings := make([][][]float64, 0, len(polygon))
	for _, ring := range polygon {
		points := make([][]float64, 0, len(ring))
		for _, point := range ring {
			points = append(points, []float64{point[0], point[1]})
		}
		rings = append(rings, points)
	}
	return polygol.Geom{rings}
}

func geomToMultiPolygon(geom polygol.Geom) orb.MultiPolygon {
	multiPolygon := make(orb.MultiPolygon, 0, len(geom))
	for _, rawPolygon := range geom {
		polygon := make(orb.Polygon, 0, len(rawPolygon))
		for _, rawRing := range rawPolygon {
			ring := make(orb.Ring, 0, len(rawRing))
			for _, rawPoint := range rawRing {
				ring = append(ring, orb.Point{rawPoint[0], rawPoint[1]})
			}
			polygon = append(polygon, ring)
		}
		multiPolygon = append(multiPolygon, polygon)
	}
	return multiPolygon
}
