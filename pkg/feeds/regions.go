package feeds

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadBoundary reads a GeoJSON file of administrative boundary polygons, e.g.
// county land boundaries, and returns every polygon found. Non-polygonal
// features are ignored.
func LoadBoundary(path string) ([]orb.Polygon, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read boundary %s: %w", path, err)
	}

	featureCollection, err := geojson.UnmarshalFeatureCollection(contents)
	if err != nil {
		return nil, fmt.Errorf("failed to parse boundary %s: %w", path, err)
	}

	var polygons []orb.Polygon
	for _, feature := range featureCollection.Features {
		switch geometry := feature.Geometry.(type) {
		case orb.Polygon:
			polygons = append(polygons, geometry)
		case orb.MultiPolygon:
			polygons = append(polygons, geometry...)
		}
	}

	if len(polygons) == 0 {
		return nil, fmt.Errorf("boundary %s contains no polygons", path)
	}

	return polygons, nil
}
