package ctm

import "sort"

// TableSet is one generation of the canonical model, either for a single
// agency or for the concatenation of all configured agencies. It is built
// once per run and treated as read only afterwards.
type TableSet struct {
	Agencies  []Agency
	Stops     []Stop
	Routes    []Route
	Trips     []Trip
	Calendars []ServiceCalendar
	Arrivals  []ArrivalEvent
	Shapes    []Shape
}

func (t *TableSet) StopLookup() map[string]*Stop {
	lookup := make(map[string]*Stop, len(t.Stops))
	for index := range t.Stops {
		lookup[t.Stops[index].PrimaryIdentifier] = &t.Stops[index]
	}
	return lookup
}

func (t *TableSet) RouteLookup() map[string]*Route {
	lookup := make(map[string]*Route, len(t.Routes))
	for index := range t.Routes {
		lookup[t.Routes[index].PrimaryIdentifier] = &t.Routes[index]
	}
	return lookup
}

func (t *TableSet) TripLookup() map[string]*Trip {
	lookup := make(map[string]*Trip, len(t.Trips))
	for index := range t.Trips {
		lookup[t.Trips[index].PrimaryIdentifier] = &t.Trips[index]
	}
	return lookup
}

func (t *TableSet) CalendarLookup() map[string]*ServiceCalendar {
	lookup := make(map[string]*ServiceCalendar, len(t.Calendars))
	for index := range t.Calendars {
		lookup[t.Calendars[index].PrimaryIdentifier] = &t.Calendars[index]
	}
	return lookup
}

func (t *TableSet) ShapeLookup() map[string]*Shape {
	lookup := make(map[string]*Shape, len(t.Shapes))
	for index := range t.Shapes {
		lookup[t.Shapes[index].PrimaryIdentifier] = &t.Shapes[index]
	}
	return lookup
}

// ServedTransportTypes joins arrivals through trips to routes and reports the
// distinct transport types calling at each stop, across the whole day rather
// than just the peak windows.
func (t *TableSet) ServedTransportTypes() map[string][]TransportType {
	trips := t.TripLookup()
	routes := t.RouteLookup()

	seen := map[string]map[TransportType]bool{}
	for _, arrival := range t.Arrivals {
		trip := trips[arrival.TripRef]
		if trip == nil {
			continue
		}
		route := routes[trip.RouteRef]
		if route == nil {
			continue
		}

		if seen[arrival.StopRef] == nil {
			seen[arrival.StopRef] = map[TransportType]bool{}
		}
		seen[arrival.StopRef][route.TransportType] = true
	}

	served := make(map[string][]TransportType, len(seen))
	for stopRef, types := range seen {
		for transportType := range types {
			served[stopRef] = append(served[stopRef], transportType)
		}
		sort.Slice(served[stopRef], func(i, j int) bool {
			return served[stopRef][i] < served[stopRef][j]
		})
	}

	return served
}
