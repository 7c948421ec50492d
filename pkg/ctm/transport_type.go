package ctm

import "strconv"

type TransportType string

const (
	TransportTypeTram       TransportType = "Tram"
	TransportTypeMetro      TransportType = "Metro"
	TransportTypeRail       TransportType = "Rail"
	TransportTypeBus        TransportType = "Bus"
	TransportTypeCoach      TransportType = "Coach"
	TransportTypeFerry      TransportType = "Ferry"
	TransportTypeCableCar   TransportType = "CableCar"
	TransportTypeGondola    TransportType = "Gondola"
	TransportTypeFunicular  TransportType = "Funicular"
	TransportTypeTrolleybus TransportType = "Trolleybus"
	TransportTypeMonorail   TransportType = "Monorail"
	TransportTypeUnknown    TransportType = UnknownMarker
)

// TransportTypeFromGTFS maps both the basic route_type codes and the common
// extended ranges onto the canonical enum.
func TransportTypeFromGTFS(value string) TransportType {
	code, err := strconv.Atoi(value)
	if err != nil {
		return TransportTypeUnknown
	}

	switch code {
	case 0:
		return TransportTypeTram
	case 1:
		return TransportTypeMetro
	case 2:
		return TransportTypeRail
	case 3:
		return TransportTypeBus
	case 4:
		return TransportTypeFerry
	case 5:
		return TransportTypeCableCar
	case 6:
		return TransportTypeGondola
	case 7:
		return TransportTypeFunicular
	case 11:
		return TransportTypeTrolleybus
	case 12:
		return TransportTypeMonorail
	}

	switch {
	case code >= 100 && code < 200:
		return TransportTypeRail
	case code >= 200 && code < 300:
		return TransportTypeCoach
	case code >= 400 && code < 500:
		return TransportTypeMetro
	case code >= 700 && code < 800:
		return TransportTypeBus
	case code >= 900 && code < 1000:
		return TransportTypeTram
	case code >= 1000 && code < 1100:
		return TransportTypeFerry
	case code == 1200:
		return TransportTypeFerry
	}

	return TransportTypeUnknown
}

// IsRailLike covers every fixed-guideway mode that the rail branch of the hub
// definition treats as rail.
func (t TransportType) IsRailLike() bool {
	switch t {
	case TransportTypeTram, TransportTypeMetro, TransportTypeRail,
		TransportTypeCableCar, TransportTypeFunicular, TransportTypeMonorail:
		return true
	}
	return false
}

func (t TransportType) IsFerry() bool {
	return t == TransportTypeFerry
}
