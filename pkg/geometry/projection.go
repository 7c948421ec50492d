package geometry

import (
	"github.com/paulmach/orb"
	"github.com/wroge/wgs84"
)

// Projection moves geometries between geographic WGS84 coordinates and a
// locally accurate planar UTM zone. Buffer distances and areas are only
// meaningful in the planar system; degree-space buffering is not valid at
// this scale.
type Projection struct {
	forward wgs84.Func
	inverse wgs84.Func
}

func NewProjection(utmZone int, northern bool) Projection {
	return Projection{
		forward: wgs84.LonLat().To(wgs84.UTM(float64(utmZone), northern)),
		inverse: wgs84.UTM(float64(utmZone), northern).To(wgs84.LonLat()),
	}
}

func (p Projection) Forward(point orb.Point) orb.Point {
	east, north, _ := p.forward(point[0], point[1], 0)
	return orb.Point{east, north}
}

func (p Projection) Inverse(point orb.Point) orb.Point {
	longitude, latitude, _ := p.inverse(point[0], point[1], 0)
	return orb.Point{longitude, latitude}
}

func (p Projection) ForwardLine(line orb.LineString) orb.LineString {
	projected := make(orb.LineString, 0, len(line))
	for _, point := range line {
		projected = append(projected, p.Forward(point))
	}
	return projected
}

func (p Projection) ForwardPolygon(polygon orb.Polygon) orb.Polygon {
	projected := make(orb.Polygon, 0, len(polygon))
	for _, ring := range polygon {
		projectedRing := make(orb.Ring, 0, len(ring))
		for _, point := range ring {
			projectedRing = append(projectedRing, p.Forward(point))
		}
		projected = append(projected, projectedRing)
	}
	return projected
}

func (p Projection) InverseMultiPolygon(multiPolygon orb.MultiPolygon) orb.MultiPolygon {
	if multiPolygon == nil {
		return nil
	}

	geographic := make(orb.MultiPolygon, 0, len(multiPolygon))
	for _, polygon := range multiPolygon {
		geographicPolygon := make(orb.Polygon, 0, len(polygon))
		for _, ring := range polygon {
			geographicRing := make(orb.Ring, 0, len(ring))
			for _, point := range ring {
				geographicRing = append(geographicRing, p.Inverse(point))
			}
			geographicPolygon = append(geographicPolygon, geographicRing)
		}
		geographic = append(geographic, geographicPolygon)
	}
	return geographic
}
