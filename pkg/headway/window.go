package headway

import "github.com/transitzone/transitzone/pkg/ctm"

// Window is a peak time-of-day interval with inclusive bounds.
type Window struct {
	Start ctm.TimeOfDay
	End   ctm.TimeOfDay
}

func (w Window) Contains(timeOfDay ctm.TimeOfDay) bool {
	return timeOfDay >= w.Start && timeOfDay <= w.End
}

// PeakEvent is an arrival that survived the peak filter, joined to its route
// and tagged with the window it fell in. Windows are kept separate so that
// headways are never computed across the midday gap.
type PeakEvent struct {
	StopRef   string
	RouteRef  string
	AgencyRef string

	ArrivalTime ctm.TimeOfDay
	WindowIndex int
}
