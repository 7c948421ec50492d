package ctm

type Route struct {
	PrimaryIdentifier string
	OtherIdentifiers  map[string]string

	AgencyRef string

	PrimaryName string

	TransportType TransportType
}
