package headway

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/transitzone/transitzone/pkg/ctm"
)

// ExtractPeak filters arrivals down to those on qualifying service days inside
// one of the peak windows. A trip counts only if its calendar is active on
// every required weekday, so a Saturday-only service never contributes to a
// commute-period headway.
func ExtractPeak(set *ctm.TableSet, windows []Window, weekdays []time.Weekday) []PeakEvent {
	trips := set.TripLookup()
	routes := set.RouteLookup()
	calendars := set.CalendarLookup()

	var events []PeakEvent

	for _, arrival := range set.Arrivals {
		trip := trips[arrival.TripRef]
		if trip == nil {
			continue
		}

		calendar := calendars[trip.ServiceRef]
		if calendar == nil || !calendar.ActiveOnAll(weekdays) {
			continue
		}

		route := routes[trip.RouteRef]
		if route == nil {
			log.Warn().
				Str("trip", trip.PrimaryIdentifier).
				Str("route", trip.RouteRef).
				Msg("Arrival has no route after join, excluding")
			continue
		}

		for windowIndex, window := range windows {
			if window.Contains(arrival.ArrivalTime) {
				events = append(events, PeakEvent{
					StopRef:     arrival.StopRef,
					RouteRef:    route.PrimaryIdentifier,
					AgencyRef:   route.AgencyRef,
					ArrivalTime: arrival.ArrivalTime,
					WindowIndex: windowIndex,
				})
				break
			}
		}
	}

	return events
}
