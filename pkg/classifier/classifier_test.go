package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transitzone/transitzone/pkg/ctm"
	"github.com/transitzone/transitzone/pkg/feeds"
	"github.com/transitzone/transitzone/pkg/headway"
)

func defaultClassifierOptions() Options {
	return Options{MinRouteCount: 2}
}

func busDefinitions() []feeds.Definition {
	return []feeds.Definition{{Identifier: "muni"}}
}

func railIdentifier(t *testing.T, definitions []feeds.Definition) *RailIdentifier {
	t.Helper()

	rail, err := NewRailIdentifier(definitions)
	require.NoError(t, err)
	return rail
}

func busStop(id string) ctm.Stop {
	return ctm.Stop{
		PrimaryIdentifier: id,
		AgencyRef:         "muni",
		PrimaryName:       id,
		Location:          ctm.Location{Latitude: 37.77, Longitude: -122.41},
		LocationType:      ctm.LocationTypePlatform,
	}
}

func summary(stopRef string, routeRef string, median float64) headway.Summary {
	return headway.Summary{
		StopRef:       stopRef,
		RouteRef:      routeRef,
		AgencyRef:     "muni",
		MedianMinutes: median,
		Observations:  4,
		Qualifies:     median <= 15,
	}
}

func TestBusHubAllRoutesMustQualify(t *testing.T) {
	set := &ctm.TableSet{Stops: []ctm.Stop{busStop("muni_s")}}

	// One 5 minute route and one 30 minute route: the stop must NOT qualify,
	// a single slow route disqualifies the whole stop
	summaries := []headway.Summary{
		summary("muni_s", "muni_a", 5),
		summary("muni_s", "muni_b", 30),
	}

	hubs, err := Classify(set, summaries, busDefinitions(), railIdentifier(t, busDefinitions()), defaultClassifierOptions())
	require.NoError(t, err)
	assert.Empty(t, hubs)
}

func TestBusHubQualifiesWhenEveryRouteDoes(t *testing.T) {
	set := &ctm.TableSet{Stops: []ctm.Stop{busStop("muni_s")}}

	summaries := []headway.Summary{
		summary("muni_s", "muni_a", 10),
		summary("muni_s", "muni_b", 12),
	}

	hubs, err := Classify(set, summaries, busDefinitions(), railIdentifier(t, busDefinitions()), defaultClassifierOptions())
	require.NoError(t, err)

	require.Len(t, hubs, 1)
	assert.Equal(t, KindBusHub, hubs[0].Kind)
	assert.Len(t, hubs[0].Summaries, 2)
}

func TestBusHubNeedsMinimumRouteCount(t *testing.T) {
	set := &ctm.TableSet{Stops: []ctm.Stop{busStop("muni_s")}}

	summaries := []headway.Summary{
		summary("muni_s", "muni_a", 5),
	}

	hubs, err := Classify(set, summaries, busDefinitions(), railIdentifier(t, busDefinitions()), defaultClassifierOptions())
	require.NoError(t, err)
	assert.Empty(t, hubs)
}

func railTableSet() *ctm.TableSet {
	station := ctm.Stop{
		PrimaryIdentifier: "bart_station",
		AgencyRef:         "bart",
		PrimaryName:       "Central",
		Location:          ctm.Location{Latitude: 37.80, Longitude: -122.27},
		LocationType:      ctm.LocationTypeStation,
	}

	return &ctm.TableSet{Stops: []ctm.Stop{station}}
}

func railOnlyDefinitions() []feeds.Definition {
	return []feeds.Definition{{Identifier: "bart", RailOnly: true}}
}

func TestRailStopQualifiesWithoutHeadwayData(t *testing.T) {
	// Rail ignores frequency entirely: no routes, no summaries, still a hub
	hubs, err := Classify(railTableSet(), nil, railOnlyDefinitions(), railIdentifier(t, railOnlyDefinitions()), defaultClassifierOptions())
	require.NoError(t, err)

	require.Len(t, hubs, 1)
	assert.Equal(t, KindRail, hubs[0].Kind)
	assert.Empty(t, hubs[0].Summaries)
}

func TestRailStopRespectsLatitudeBounds(t *testing.T) {
	options := defaultClassifierOptions()
	options.MaxLatitude = 37.5

	hubs, err := Classify(railTableSet(), nil, railOnlyDefinitions(), railIdentifier(t, railOnlyDefinitions()), options)
	require.NoError(t, err)
	assert.Empty(t, hubs)
}

func TestCustomRailRule(t *testing.T) {
	definitions := []feeds.Definition{{
		Identifier: "bart",
		RailRule:   `IsStation && Latitude < 38.0`,
	}}

	hubs, err := Classify(railTableSet(), nil, definitions, railIdentifier(t, definitions), defaultClassifierOptions())
	require.NoError(t, err)
	assert.Len(t, hubs, 1)

	definitions[0].RailRule = `IsStation && Latitude < 37.0`
	hubs, err = Classify(railTableSet(), nil, definitions, railIdentifier(t, definitions), defaultClassifierOptions())
	require.NoError(t, err)
	assert.Empty(t, hubs)
}

func TestMalformedRailRuleFailsFast(t *testing.T) {
	_, err := NewRailIdentifier([]feeds.Definition{{
		Identifier: "bart",
		RailRule:   `IsStation &&`,
	}})
	assert.Error(t, err)
}

func TestDefaultRuleRailServedStation(t *testing.T) {
	// A mixed-mode agency: the station with rail service qualifies, the plain
	// bus platform next to it does not
	station := ctm.Stop{
		PrimaryIdentifier: "muni_station",
		AgencyRef:         "muni",
		Location:          ctm.Location{Latitude: 37.76, Longitude: -122.42},
		LocationType:      ctm.LocationTypeStation,
	}
	platform := busStop("muni_platform")

	set := &ctm.TableSet{
		Stops: []ctm.Stop{station, platform},
		Routes: []ctm.Route{
			{PrimaryIdentifier: "muni_metro", AgencyRef: "muni", TransportType: ctm.TransportTypeMetro},
		},
		Trips: []ctm.Trip{
			{PrimaryIdentifier: "muni_t1", RouteRef: "muni_metro", ServiceRef: "muni_wkd"},
		},
		Arrivals: []ctm.ArrivalEvent{
			{TripRef: "muni_t1", StopRef: "muni_station", ArrivalTime: 7 * 3600},
		},
	}

	hubs, err := Classify(set, nil, busDefinitions(), railIdentifier(t, busDefinitions()), defaultClassifierOptions())
	require.NoError(t, err)

	require.Len(t, hubs, 1)
	assert.Equal(t, "muni_station", hubs[0].Stop.PrimaryIdentifier)
	assert.Equal(t, KindRail, hubs[0].Kind)
}

func TestDefaultRuleFerryTerminalWithConnection(t *testing.T) {
	terminal := ctm.Stop{
		PrimaryIdentifier: "weta_ferry",
		AgencyRef:         "weta",
		Location:          ctm.Location{Latitude: 37.79, Longitude: -122.39},
		LocationType:      ctm.LocationTypePlatform,
	}

	set := &ctm.TableSet{
		Stops: []ctm.Stop{terminal},
		Routes: []ctm.Route{
			{PrimaryIdentifier: "weta_f1", AgencyRef: "weta", TransportType: ctm.TransportTypeFerry},
			{PrimaryIdentifier: "weta_shuttle", AgencyRef: "weta", TransportType: ctm.TransportTypeBus},
		},
		Trips: []ctm.Trip{
			{PrimaryIdentifier: "weta_t1", RouteRef: "weta_f1", ServiceRef: "weta_wkd"},
			{PrimaryIdentifier: "weta_t2", RouteRef: "weta_shuttle", ServiceRef: "weta_wkd"},
		},
		Arrivals: []ctm.ArrivalEvent{
			{TripRef: "weta_t1", StopRef: "weta_ferry", ArrivalTime: 7 * 3600},
			{TripRef: "weta_t2", StopRef: "weta_ferry", ArrivalTime: 7*3600 + 600},
		},
	}

	definitions := []feeds.Definition{{Identifier: "weta"}}

	hubs, err := Classify(set, nil, definitions, railIdentifier(t, definitions), defaultClassifierOptions())
	require.NoError(t, err)

	require.Len(t, hubs, 1)
	assert.Equal(t, KindRail, hubs[0].Kind)
}
