package geometry

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
)

const MetresPerMile = 1609.344

// circleSegments controls how finely buffer circles are approximated. At 64
// segments the area error against a true circle is under 0.2%.
const circleSegments = 64

// ErrDegenerateGeometry marks a corridor that collapsed to fewer than two
// distinct points; callers skip the geometry and count it rather than failing
// the run.
var ErrDegenerateGeometry = errors.New("geometry is degenerate")

// Engine buffers geographic geometries in planar space. All outputs stay in
// the planar system until the final union is reprojected for presentation.
type Engine struct {
	projection Projection
}

func NewEngine(projection Projection) *Engine {
	return &Engine{projection: projection}
}

// BufferPoint returns a circular buffer around a geographic point, as a
// planar polygon.
func (e *Engine) BufferPoint(point orb.Point, radiusMiles float64) orb.Polygon {
	return circle(e.projection.Forward(point), radiusMiles*MetresPerMile)
}

// BufferLine returns a capsule buffer around a geographic polyline: a circle
// at every vertex plus a rectangle along every segment, unioned together.
func (e *Engine) BufferLine(line orb.LineString, radiusMiles float64) (orb.MultiPolygon, error) {
	projected := dedupe(e.projection.ForwardLine(line))
	if len(projected) < 2 {
		return nil, ErrDegenerateGeometry
	}

	radius := radiusMiles * MetresPerMile

	pieces := make([]orb.Polygon, 0, len(projected)*2)
	for _, point := range projected {
		pieces = append(pieces, circle(point, radius))
	}
	for index := 1; index < len(projected); index++ {
		pieces = append(pieces, segmentRectangle(projected[index-1], projected[index], radius))
	}

	return Union(pieces)
}

func circle(center orb.Point, radius float64) orb.Polygon {
	ring := make(orb.Ring, 0, circleSegments+1)
	for segment := 0; segment < circleSegments; segment++ {
		angle := 2 * math.Pi * float64(segment) / circleSegments
		ring = append(ring, orb.Point{
			center[0] + radius*math.Cos(angle),
			center[1] + radius*math.Sin(angle),
		})
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}
}

func segmentRectangle(a orb.Point, b orb.Point, radius float64) orb.Polygon {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	length := math.Hypot(dx, dy)

	// Unit normal, scaled to the buffer radius
	nx := -dy / length * radius
	ny := dx / length * radius

	// Counter-clockwise winding, matching the circles
	ring := orb.Ring{
		{a[0] + nx, a[1] + ny},
		{a[0] - nx, a[1] - ny},
		{b[0] - nx, b[1] - ny},
		{b[0] + nx, b[1] + ny},
		{a[0] + nx, a[1] + ny},
	}

	return orb.Polygon{ring}
}

func dedupe(line orb.LineString) orb.LineString {
	deduped := make(orb.LineString, 0, len(line))
	for _, point := range line {
		if len(deduped) > 0 && deduped[len(deduped)-1] == point {
			continue
		}
		deduped = append(deduped, point)
	}
	return deduped
}
