package classifier

import (
	"sort"

	"github.com/rs/zerolog/log"
	"github.com/transitzone/transitzone/pkg/ctm"
	"github.com/transitzone/transitzone/pkg/feeds"
	"github.com/transitzone/transitzone/pkg/headway"
)

// Kind tags which branch of the hub definition a stop qualified under. The
// two kinds share no behaviour beyond qualifying, so they are a tagged value
// rather than an interface.
type Kind string

const (
	// KindRail covers the always-qualifying branches of the definition: rail
	// stations and ferry terminals with a connection.
	KindRail   Kind = "rail"
	KindBusHub Kind = "bus_hub"
)

// QualifyingHub carries the stop plus the headway evidence it qualified on,
// so every classification is auditable.
type QualifyingHub struct {
	Stop ctm.Stop
	Kind Kind

	Summaries []headway.Summary
}

type Options struct {
	MinRouteCount int

	// Jurisdiction latitude bounds for the rail branch; zero disables.
	MinLatitude float64
	MaxLatitude float64
}

// Classify applies the statutory predicate to every stop.
//
// Rail branch: the agency's rail rule decides membership and frequency is
// never consulted. Bus branch: at least MinRouteCount sufficiently observed
// routes, and every single one of them must individually meet the headway
// threshold. One slow route on an otherwise frequent stop disqualifies it;
// this is the statute's literal "each of which" wording.
func Classify(set *ctm.TableSet, summaries []headway.Summary, definitions []feeds.Definition, rail *RailIdentifier, options Options) ([]QualifyingHub, error) {
	byStop := headway.GroupByStop(summaries)
	served := set.ServedTransportTypes()
	connections := routesServing(set)

	railOnly := map[string]bool{}
	for _, definition := range definitions {
		railOnly[definition.Identifier] = definition.RailOnly
	}

	var hubs []QualifyingHub

	for _, stop := range set.Stops {
		env := buildRuleEnv(stop, served[stop.PrimaryIdentifier], connections[stop.PrimaryIdentifier], railOnly[stop.AgencyRef])

		isRail, err := rail.IsRail(env, stop.AgencyRef)
		if err != nil {
			return nil, err
		}

		if isRail {
			if !withinLatitudeBounds(stop, options) {
				log.Debug().
					Str("stop", stop.PrimaryIdentifier).
					Float64("latitude", stop.Location.Latitude).
					Msg("Rail stop outside jurisdiction bounds")
				continue
			}

			hubs = append(hubs, QualifyingHub{
				Stop:      stop,
				Kind:      KindRail,
				Summaries: byStop[stop.PrimaryIdentifier],
			})
			continue
		}

		stopSummaries := byStop[stop.PrimaryIdentifier]
		if len(stopSummaries) < options.MinRouteCount {
			continue
		}

		allQualify := true
		for _, summary := range stopSummaries {
			if !summary.Qualifies {
				allQualify = false
				break
			}
		}
		if !allQualify {
			continue
		}

		hubs = append(hubs, QualifyingHub{
			Stop:      stop,
			Kind:      KindBusHub,
			Summaries: stopSummaries,
		})
	}

	sort.Slice(hubs, func(i, j int) bool {
		return hubs[i].Stop.PrimaryIdentifier < hubs[j].Stop.PrimaryIdentifier
	})

	return hubs, nil
}

func withinLatitudeBounds(stop ctm.Stop, options Options) bool {
	if options.MinLatitude != 0 && stop.Location.Latitude < options.MinLatitude {
		return false
	}
	if options.MaxLatitude != 0 && stop.Location.Latitude > options.MaxLatitude {
		return false
	}
	return true
}

// routesServing counts distinct routes calling at each stop across the whole
// day, not just peak windows.
func routesServing(set *ctm.TableSet) map[string]int {
	trips := set.TripLookup()

	routesPerStop := map[string]map[string]bool{}
	for _, arrival := range set.Arrivals {
		trip := trips[arrival.TripRef]
		if trip == nil {
			continue
		}

		if routesPerStop[arrival.StopRef] == nil {
			routesPerStop[arrival.StopRef] = map[string]bool{}
		}
		routesPerStop[arrival.StopRef][trip.RouteRef] = true
	}

	counts := make(map[string]int, len(routesPerStop))
	for stopRef, routes := range routesPerStop {
		counts[stopRef] = len(routes)
	}

	return counts
}
