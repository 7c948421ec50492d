package analyser

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/transitzone/transitzone/pkg/classifier"
	"github.com/transitzone/transitzone/pkg/headway"
	"github.com/transitzone/transitzone/pkg/normaliser"
	"github.com/transitzone/transitzone/pkg/stats/calculator"
)

// Results is one generation of the pipeline's output. A re-run builds a fresh
// Results; nothing in here is ever mutated after Run returns.
type Results struct {
	Hubs      []classifier.QualifyingHub
	Corridors []classifier.QualifyingCorridor
	Summaries []headway.Summary

	// Geometries holds the per-category buffer unions, Overall the union
	// across categories, both in geographic coordinates.
	Geometries map[string]orb.MultiPolygon
	Overall    orb.MultiPolygon

	HubStats   calculator.HubStats
	RouteStats calculator.RouteQualificationStats
	AreaStats  calculator.AreaStats

	Dropped          normaliser.Counters
	SkippedCorridors int

	categoryAreas map[string]float64
	overallArea   float64
}

// WriteGeoJSON exports the qualifying hubs, corridors, and coverage geometry
// for the presentation layer.
func (r *Results) WriteGeoJSON(directory string) error {
	if err := os.MkdirAll(directory, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	hubFeatures := geojson.NewFeatureCollection()
	for _, hub := range r.Hubs {
		feature := geojson.NewFeature(hub.Stop.Location.Point())
		feature.Properties = geojson.Properties{
			"id":     hub.Stop.PrimaryIdentifier,
			"name":   hub.Stop.PrimaryName,
			"agency": hub.Stop.AgencyRef,
			"kind":   string(hub.Kind),
			"routes": len(hub.Summaries),
		}
		hubFeatures.Append(feature)
	}
	if err := writeFeatureCollection(filepath.Join(directory, "hubs.geojson"), hubFeatures); err != nil {
		return err
	}

	corridorFeatures := geojson.NewFeatureCollection()
	for _, corridor := range r.Corridors {
		feature := geojson.NewFeature(corridor.Path)
		feature.Properties = geojson.Properties{
			"id":             corridor.Route.PrimaryIdentifier,
			"name":           corridor.Route.PrimaryName,
			"median_minutes": corridor.MedianMinutes,
		}
		corridorFeatures.Append(feature)
	}
	if err := writeFeatureCollection(filepath.Join(directory, "corridors.geojson"), corridorFeatures); err != nil {
		return err
	}

	coverageFeatures := geojson.NewFeatureCollection()
	for category, multiPolygon := range r.Geometries {
		feature := geojson.NewFeature(multiPolygon)
		feature.Properties = geojson.Properties{
			"category":     category,
			"square_miles": r.categoryAreas[category],
		}
		coverageFeatures.Append(feature)
	}
	if r.Overall != nil {
		feature := geojson.NewFeature(r.Overall)
		feature.Properties = geojson.Properties{
			"category":     "overall",
			"square_miles": r.overallArea,
		}
		coverageFeatures.Append(feature)
	}

	return writeFeatureCollection(filepath.Join(directory, "coverage.geojson"), coverageFeatures)
}

func writeFeatureCollection(path string, featureCollection *geojson.FeatureCollection) error {
	contents, err := json.Marshal(featureCollection)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	if err := os.WriteFile(path, contents, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
