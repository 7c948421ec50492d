package normaliser

import "github.com/rs/zerolog/log"

// Counters record how many records a feed lost to schema violations and how
// many canonical fields had to be filled with the unknown marker. Dropping is
// always counted, never silent.
type Counters struct {
	DroppedStops     int
	DroppedRoutes    int
	DroppedTrips     int
	DroppedArrivals  int
	DroppedCalendars int

	DefaultedFields int
}

func (c *Counters) Add(other *Counters) {
	c.DroppedStops += other.DroppedStops
	c.DroppedRoutes += other.DroppedRoutes
	c.DroppedTrips += other.DroppedTrips
	c.DroppedArrivals += other.DroppedArrivals
	c.DroppedCalendars += other.DroppedCalendars
	c.DefaultedFields += other.DefaultedFields
}

func (c *Counters) Log(agency string) {
	log.Info().
		Str("agency", agency).
		Int("droppedstops", c.DroppedStops).
		Int("droppedroutes", c.DroppedRoutes).
		Int("droppedtrips", c.DroppedTrips).
		Int("droppedarrivals", c.DroppedArrivals).
		Int("droppedcalendars", c.DroppedCalendars).
		Int("defaultedfields", c.DefaultedFields).
		Msg("Finished normalising feed")
}
