package classifier

import (
	"sort"

	"github.com/paulmach/orb"
	"github.com/transitzone/transitzone/pkg/ctm"
	"github.com/transitzone/transitzone/pkg/headway"
)

// QualifyingCorridor is the corridor variant: a route whose aggregate headway
// across its stops meets the threshold contributes its path geometry instead
// of individual point hubs.
type QualifyingCorridor struct {
	Route         ctm.Route
	MedianMinutes float64

	Path orb.LineString
}

type CorridorOptions struct {
	ThresholdMinutes float64
}

// Corridors finds qualifying routes and attaches the longest shape any of the
// route's trips reference. Routes without a shape are skipped; a degenerate
// shape is left to the geometry engine to reject.
func Corridors(set *ctm.TableSet, summaries []headway.Summary, options CorridorOptions) []QualifyingCorridor {
	medians := headway.RouteMedians(summaries)
	routes := set.RouteLookup()
	shapes := set.ShapeLookup()

	// Longest shape per route wins: a route's trips usually reference a few
	// shape variants and the full-length one best represents the corridor.
	shapePerRoute := map[string]*ctm.Shape{}
	for _, trip := range set.Trips {
		if trip.ShapeRef == "" {
			continue
		}
		shape := shapes[trip.ShapeRef]
		if shape == nil {
			continue
		}

		current := shapePerRoute[trip.RouteRef]
		if current == nil || len(shape.Points) > len(current.Points) {
			shapePerRoute[trip.RouteRef] = shape
		}
	}

	var corridors []QualifyingCorridor
	for routeRef, median := range medians {
		if median > options.ThresholdMinutes {
			continue
		}

		route := routes[routeRef]
		shape := shapePerRoute[routeRef]
		if route == nil || shape == nil {
			continue
		}

		corridors = append(corridors, QualifyingCorridor{
			Route:         *route,
			MedianMinutes: median,
			Path:          shape.LineString(),
		})
	}

	sort.Slice(corridors, func(i, j int) bool {
		return corridors[i].Route.PrimaryIdentifier < corridors[j].Route.PrimaryIdentifier
	})

	return corridors
}
