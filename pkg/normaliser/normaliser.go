package normaliser

import (
	"fmt"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/transitzone/transitzone/pkg/ctm"
	"github.com/transitzone/transitzone/pkg/feeds"
)

// Normalise converts one agency's raw tables into a canonical table set.
// Identifiers are rewritten as {agency}_{original} so they stay unique once
// agencies are concatenated; the original identifier is kept under
// OtherIdentifiers for traceability.
func Normalise(definition feeds.Definition, raw *feeds.RawTables) (*ctm.TableSet, *Counters) {
	counters := &Counters{}
	agency := definition.Identifier

	set := &ctm.TableSet{
		Agencies: []ctm.Agency{
			{
				PrimaryIdentifier: agency,
				Name:              orUnknown(definition.Name, counters),
			},
		},
	}

	for _, rawStop := range raw.Stops {
		location := ctm.Location{
			Latitude:  rawStop.Latitude,
			Longitude: rawStop.Longitude,
		}
		if !location.Valid() {
			counters.DroppedStops++
			log.Debug().
				Str("agency", agency).
				Str("stop", rawStop.ID).
				Msg("Dropping stop with invalid coordinates")
			continue
		}

		parentRef := ""
		if rawStop.Parent != "" {
			parentRef = prefix(agency, rawStop.Parent)
		}

		set.Stops = append(set.Stops, ctm.Stop{
			PrimaryIdentifier: prefix(agency, rawStop.ID),
			OtherIdentifiers: map[string]string{
				"origin": rawStop.ID,
			},
			AgencyRef:     agency,
			PrimaryName:   orUnknown(rawStop.Name, counters),
			Location:      location,
			LocationType:  ctm.LocationTypeFromGTFS(rawStop.Type),
			ParentStopRef: parentRef,
		})
	}

	for _, rawRoute := range raw.Routes {
		set.Routes = append(set.Routes, ctm.Route{
			PrimaryIdentifier: prefix(agency, rawRoute.ID),
			OtherIdentifiers: map[string]string{
				"origin": rawRoute.ID,
			},
			AgencyRef:     agency,
			PrimaryName:   orUnknown(routeName(rawRoute), counters),
			TransportType: ctm.TransportTypeFromGTFS(rawRoute.Type),
		})
	}

	for _, rawCalendar := range raw.Calendars {
		calendar := ctm.ServiceCalendar{
			PrimaryIdentifier: prefix(agency, rawCalendar.ServiceID),
		}
		calendar.Weekdays[time.Sunday] = rawCalendar.Sunday == 1
		calendar.Weekdays[time.Monday] = rawCalendar.Monday == 1
		calendar.Weekdays[time.Tuesday] = rawCalendar.Tuesday == 1
		calendar.Weekdays[time.Wednesday] = rawCalendar.Wednesday == 1
		calendar.Weekdays[time.Thursday] = rawCalendar.Thursday == 1
		calendar.Weekdays[time.Friday] = rawCalendar.Friday == 1
		calendar.Weekdays[time.Saturday] = rawCalendar.Saturday == 1

		var parseFailed bool
		calendar.StartDate, parseFailed = parseDate(rawCalendar.Start)
		if parseFailed {
			counters.DroppedCalendars++
			continue
		}
		calendar.EndDate, parseFailed = parseDate(rawCalendar.End)
		if parseFailed {
			counters.DroppedCalendars++
			continue
		}

		set.Calendars = append(set.Calendars, calendar)
	}

	routes := set.RouteLookup()
	calendars := set.CalendarLookup()

	for _, rawTrip := range raw.Trips {
		routeRef := prefix(agency, rawTrip.RouteID)
		serviceRef := prefix(agency, rawTrip.ServiceID)

		if routes[routeRef] == nil || calendars[serviceRef] == nil {
			counters.DroppedTrips++
			log.Debug().
				Str("agency", agency).
				Str("trip", rawTrip.ID).
				Msg("Dropping trip with dangling route or calendar reference")
			continue
		}

		shapeRef := ""
		if rawTrip.ShapeID != "" {
			shapeRef = prefix(agency, rawTrip.ShapeID)
		}

		set.Trips = append(set.Trips, ctm.Trip{
			PrimaryIdentifier: prefix(agency, rawTrip.ID),
			OtherIdentifiers: map[string]string{
				"origin": rawTrip.ID,
			},
			RouteRef:   routeRef,
			ServiceRef: serviceRef,
			ShapeRef:   shapeRef,
		})
	}

	stops := set.StopLookup()
	trips := set.TripLookup()

	for _, rawStopTime := range raw.StopTimes {
		timeValue := rawStopTime.ArrivalTime
		if timeValue == "" {
			timeValue = rawStopTime.DepartureTime
		}

		arrivalTime, err := ctm.ParseTimeOfDay(timeValue)
		if err != nil {
			counters.DroppedArrivals++
			continue
		}

		stopRef := prefix(agency, rawStopTime.StopID)
		tripRef := prefix(agency, rawStopTime.TripID)
		if stops[stopRef] == nil || trips[tripRef] == nil {
			counters.DroppedArrivals++
			continue
		}

		set.Arrivals = append(set.Arrivals, ctm.ArrivalEvent{
			TripRef:     tripRef,
			StopRef:     stopRef,
			ArrivalTime: arrivalTime,
			Sequence:    rawStopTime.StopSequence,
		})
	}

	set.Shapes = buildShapes(agency, raw.Shapes)

	return set, counters
}

func prefix(agency string, id string) string {
	return fmt.Sprintf("%s_%s", agency, id)
}

func orUnknown(value string, counters *Counters) string {
	if value == "" {
		counters.DefaultedFields++
		return ctm.UnknownMarker
	}
	return value
}

func routeName(route feeds.Route) string {
	if route.ShortName != "" {
		return route.ShortName
	}
	return route.LongName
}

// parseDate reads a YYYYMMDD calendar bound. Blank is a valid open bound;
// anything else malformed fails the record.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}

	date, err := time.Parse("20060102", value)
	if err != nil {
		return time.Time{}, true
	}
	return date, false
}

func buildShapes(agency string, rawShapes []feeds.Shape) []ctm.Shape {
	points := map[string][]feeds.Shape{}
	for _, rawPoint := range rawShapes {
		points[rawPoint.ID] = append(points[rawPoint.ID], rawPoint)
	}

	shapeIDs := make([]string, 0, len(points))
	for shapeID := range points {
		shapeIDs = append(shapeIDs, shapeID)
	}
	sort.Strings(shapeIDs)

	var shapes []ctm.Shape
	for _, shapeID := range shapeIDs {
		shapePoints := points[shapeID]
		sort.SliceStable(shapePoints, func(i, j int) bool {
			return shapePoints[i].PointSequence < shapePoints[j].PointSequence
		})

		shape := ctm.Shape{
			PrimaryIdentifier: prefix(agency, shapeID),
		}
		for _, shapePoint := range shapePoints {
			shape.Points = append(shape.Points, ctm.Location{
				Latitude:  shapePoint.PointLatitude,
				Longitude: shapePoint.PointLongitude,
			})
		}

		shapes = append(shapes, shape)
	}

	return shapes
}
