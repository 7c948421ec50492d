package geometry

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bayAreaProjection() Projection {
	return NewProjection(10, true)
}

func TestProjectionRoundTrip(t *testing.T) {
	projection := bayAreaProjection()

	original := orb.Point{-122.4194, 37.7749}
	roundTripped := projection.Inverse(projection.Forward(original))

	// Sub-metre: a degree of longitude at this latitude is ~88km, so 1e-5
	// degrees is roughly a metre
	assert.InDelta(t, original[0], roundTripped[0], 1e-5)
	assert.InDelta(t, original[1], roundTripped[1], 1e-5)
}

func TestProjectionProducesMetres(t *testing.T) {
	projection := bayAreaProjection()

	a := projection.Forward(orb.Point{-122.4194, 37.7749})
	b := projection.Forward(orb.Point{-122.4194, 37.7849}) // ~0.01 deg north

	distance := math.Hypot(b[0]-a[0], b[1]-a[1])
	assert.InDelta(t, 1110, distance, 20)
}

func TestBufferPointArea(t *testing.T) {
	engine := NewEngine(bayAreaProjection())

	radiusMiles := 0.5
	buffered := engine.BufferPoint(orb.Point{-122.4194, 37.7749}, radiusMiles)

	expected := math.Pi * radiusMiles * radiusMiles
	assert.InDelta(t, expected, AreaSquareMiles(buffered), expected*0.01)
}

func TestBufferLineArea(t *testing.T) {
	engine := NewEngine(bayAreaProjection())

	// A straight north-south line ~1.1km long
	line := orb.LineString{
		{-122.4194, 37.7749},
		{-122.4194, 37.7849},
	}

	buffered, err := engine.BufferLine(line, 0.125)
	require.NoError(t, err)

	// Capsule area: length * width + the two end caps
	lengthMiles := 1110.0 / MetresPerMile
	expected := lengthMiles*0.25 + math.Pi*0.125*0.125
	assert.InDelta(t, expected, AreaSquareMiles(buffered), expected*0.05)
}

func TestBufferLineDegenerate(t *testing.T) {
	engine := NewEngine(bayAreaProjection())

	_, err := engine.BufferLine(orb.LineString{
		{-122.4194, 37.7749},
		{-122.4194, 37.7749},
	}, 0.125)

	assert.ErrorIs(t, err, ErrDegenerateGeometry)
}

func TestUnionRemovesOverlap(t *testing.T) {
	engine := NewEngine(bayAreaProjection())

	// Two overlapping half-mile circles, centres ~550m apart
	a := engine.BufferPoint(orb.Point{-122.4194, 37.7749}, 0.5)
	b := engine.BufferPoint(orb.Point{-122.4194, 37.7799}, 0.5)

	unioned, err := Union([]orb.Polygon{a, b})
	require.NoError(t, err)

	separate := AreaSquareMiles(a) + AreaSquareMiles(b)
	combined := AreaSquareMiles(unioned)

	assert.Less(t, combined, separate)
	assert.Greater(t, combined, AreaSquareMiles(a))
}

func TestUnionIdempotent(t *testing.T) {
	engine := NewEngine(bayAreaProjection())

	polygons := []orb.Polygon{
		engine.BufferPoint(orb.Point{-122.4194, 37.7749}, 0.5),
		engine.BufferPoint(orb.Point{-122.4194, 37.7799}, 0.5),
		engine.BufferPoint(orb.Point{-122.4094, 37.7749}, 0.5),
	}

	first, err := Union(polygons)
	require.NoError(t, err)

	second, err := UnionMulti([]orb.MultiPolygon{first})
	require.NoError(t, err)

	assert.InDelta(t, AreaSquareMiles(first), AreaSquareMiles(second), 1e-6)
}

func TestUnionEmpty(t *testing.T) {
	unioned, err := Union(nil)
	assert.NoError(t, err)
	assert.Nil(t, unioned)
}

func TestRegionArea(t *testing.T) {
	projection := bayAreaProjection()

	// A roughly 0.01 x 0.01 degree box near San Francisco
	box := orb.Polygon{orb.Ring{
		{-122.42, 37.77},
		{-122.41, 37.77},
		{-122.41, 37.78},
		{-122.42, 37.78},
		{-122.42, 37.77},
	}}

	area, err := RegionArea([]orb.Polygon{box}, projection)
	require.NoError(t, err)

	// ~880m x ~1110m in square miles
	expected := (880.0 / MetresPerMile) * (1110.0 / MetresPerMile)
	assert.InDelta(t, expected, area, expected*0.05)
}
