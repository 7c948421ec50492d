package ctm

type Stop struct {
	PrimaryIdentifier string
	OtherIdentifiers  map[string]string

	AgencyRef string

	PrimaryName string

	Location Location

	LocationType  LocationType
	ParentStopRef string
}

func (s *Stop) HasParentStation() bool {
	return s.ParentStopRef != "" && s.ParentStopRef != UnknownMarker
}

type LocationType string

const (
	LocationTypePlatform LocationType = "Platform"
	LocationTypeStation  LocationType = "Station"
	LocationTypeEntrance LocationType = "Entrance"
	LocationTypeGeneric  LocationType = "Generic"
	LocationTypeBoarding LocationType = "Boarding"
	LocationTypeUnknown  LocationType = UnknownMarker
)

// LocationTypeFromGTFS maps the numeric location_type codes onto the
// canonical enum. An empty value means the source column was absent or
// blank and becomes the explicit unknown marker.
func LocationTypeFromGTFS(value string) LocationType {
	switch value {
	case "0":
		return LocationTypePlatform
	case "1":
		return LocationTypeStation
	case "2":
		return LocationTypeEntrance
	case "3":
		return LocationTypeGeneric
	case "4":
		return LocationTypeBoarding
	default:
		return LocationTypeUnknown
	}
}
