package analyser

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/rs/zerolog/log"
	"github.com/transitzone/transitzone/pkg/classifier"
	"github.com/transitzone/transitzone/pkg/config"
	"github.com/transitzone/transitzone/pkg/ctm"
	"github.com/transitzone/transitzone/pkg/feeds"
	"github.com/transitzone/transitzone/pkg/geometry"
	"github.com/transitzone/transitzone/pkg/headway"
	"github.com/transitzone/transitzone/pkg/normaliser"
	"github.com/transitzone/transitzone/pkg/stats/calculator"
)

const (
	CategoryRail     = "rail"
	CategoryBus      = "bus"
	CategoryCorridor = "corridor"
)

// Run executes the whole qualification pipeline: normalise, extract peaks,
// compute headways, classify, buffer, union, measure. Data flows strictly
// downward; every derived table is built once and read only afterwards.
func Run(cfg config.Config, source feeds.Source, definitions []feeds.Definition) (*Results, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	weekdays, err := cfg.Weekdays()
	if err != nil {
		return nil, err
	}

	// Compiling rules up front keeps rule errors in the fail-fast phase
	rail, err := classifier.NewRailIdentifier(definitions)
	if err != nil {
		return nil, err
	}

	set, dropped, err := normaliser.NormaliseAll(definitions, source)
	if err != nil {
		return nil, err
	}

	log.Info().
		Int("stops", len(set.Stops)).
		Int("routes", len(set.Routes)).
		Int("arrivals", len(set.Arrivals)).
		Msg("Normalised canonical tables")

	windows, err := peakWindows(cfg)
	if err != nil {
		return nil, err
	}

	events := headway.ExtractPeak(set, windows, weekdays)
	summaries := headway.Calculate(events, headway.Options{
		ThresholdMinutes:      cfg.HeadwayThresholdMinutes,
		OutlierCeilingMinutes: cfg.OutlierCeilingMinutes,
		MinObservations:       cfg.MinObservations,
	})

	log.Info().
		Int("peakevents", len(events)).
		Int("summaries", len(summaries)).
		Msg("Computed peak headways")

	hubs, err := classifier.Classify(set, summaries, definitions, rail, classifier.Options{
		MinRouteCount: cfg.MinRouteCount,
		MinLatitude:   cfg.Rail.MinLatitude,
		MaxLatitude:   cfg.Rail.MaxLatitude,
	})
	if err != nil {
		return nil, err
	}

	var corridors []classifier.QualifyingCorridor
	if cfg.Corridors {
		corridors = classifier.Corridors(set, summaries, classifier.CorridorOptions{
			ThresholdMinutes: cfg.HeadwayThresholdMinutes,
		})
	}

	results := &Results{
		Hubs:       hubs,
		Corridors:  corridors,
		Summaries:  summaries,
		Dropped:    *dropped,
		Geometries: map[string]orb.MultiPolygon{},
	}

	if err := buildGeometries(cfg, results); err != nil {
		return nil, err
	}

	referenceAreas, err := referenceAreas(cfg)
	if err != nil {
		return nil, err
	}

	results.HubStats = calculator.GetHubs(hubs)
	results.RouteStats = calculator.GetRouteQualification(summaries, cfg.HeadwayThresholdMinutes)
	results.AreaStats = calculator.GetAreas(results.categoryAreas, results.overallArea, referenceAreas)

	return results, nil
}

func peakWindows(cfg config.Config) ([]headway.Window, error) {
	windows := make([]headway.Window, 0, len(cfg.PeakWindows))
	for _, window := range cfg.PeakWindows {
		start, err := ctm.ParseTimeOfDay(window.Start)
		if err != nil {
			return nil, err
		}
		end, err := ctm.ParseTimeOfDay(window.End)
		if err != nil {
			return nil, err
		}
		windows = append(windows, headway.Window{Start: start, End: end})
	}
	return windows, nil
}

// buildGeometries buffers every qualifying geometry in planar space, unions
// within each category first, then across categories, and reprojects the
// results to geographic coordinates.
func buildGeometries(cfg config.Config, results *Results) error {
	projection := geometry.NewProjection(cfg.Projection.UTMZone, cfg.Projection.Northern)
	engine := geometry.NewEngine(projection)

	buffers := map[string][]orb.Polygon{}
	for _, hub := range results.Hubs {
		category := CategoryBus
		if hub.Kind == classifier.KindRail {
			category = CategoryRail
		}

		buffers[category] = append(buffers[category], engine.BufferPoint(hub.Stop.Location.Point(), cfg.HubBufferRadiusMiles))
	}

	for _, corridor := range results.Corridors {
		buffered, err := engine.BufferLine(corridor.Path, cfg.CorridorBufferRadiusMiles)
		if err != nil {
			if errors.Is(err, geometry.ErrDegenerateGeometry) {
				results.SkippedCorridors++
				log.Warn().
					Str("route", corridor.Route.PrimaryIdentifier).
					Msg("Skipping degenerate corridor geometry")
				continue
			}
			return err
		}

		buffers[CategoryCorridor] = append(buffers[CategoryCorridor], buffered...)
	}

	results.categoryAreas = map[string]float64{}

	var categoryUnions []orb.MultiPolygon
	for category, polygons := range buffers {
		unioned, err := geometry.Union(polygons)
		if err != nil {
			return fmt.Errorf("category %s: %w", category, err)
		}

		results.categoryAreas[category] = geometry.AreaSquareMiles(unioned)
		results.Geometries[category] = projection.InverseMultiPolygon(unioned)
		categoryUnions = append(categoryUnions, unioned)
	}

	overall, err := geometry.UnionMulti(categoryUnions)
	if err != nil {
		return err
	}

	results.overallArea = geometry.AreaSquareMiles(overall)
	results.Overall = projection.InverseMultiPolygon(overall)

	return nil
}

func referenceAreas(cfg config.Config) (map[string]float64, error) {
	projection := geometry.NewProjection(cfg.Projection.UTMZone, cfg.Projection.Northern)

	areas := map[string]float64{}
	for _, region := range cfg.ReferenceRegions {
		if region.SquareMiles > 0 {
			areas[region.Name] = region.SquareMiles
			continue
		}

		boundary, err := feeds.LoadBoundary(region.BoundaryPath)
		if err != nil {
			return nil, err
		}

		area, err := geometry.RegionArea(boundary, projection)
		if err != nil {
			return nil, fmt.Errorf("reference region %s: %w", region.Name, err)
		}

		areas[region.Name] = area
	}

	return areas, nil
}
