package ctm

type Trip struct {
	PrimaryIdentifier string
	OtherIdentifiers  map[string]string

	RouteRef   string
	ServiceRef string

	// ShapeRef is empty when the feed ships no path geometry for the trip.
	ShapeRef string
}
