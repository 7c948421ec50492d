package ctm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTransportTypeFromGTFS(t *testing.T) {
	assert.Equal(t, TransportTypeTram, TransportTypeFromGTFS("0"))
	assert.Equal(t, TransportTypeMetro, TransportTypeFromGTFS("1"))
	assert.Equal(t, TransportTypeRail, TransportTypeFromGTFS("2"))
	assert.Equal(t, TransportTypeBus, TransportTypeFromGTFS("3"))
	assert.Equal(t, TransportTypeFerry, TransportTypeFromGTFS("4"))

	// Extended codes
	assert.Equal(t, TransportTypeRail, TransportTypeFromGTFS("109"))
	assert.Equal(t, TransportTypeBus, TransportTypeFromGTFS("700"))
	assert.Equal(t, TransportTypeFerry, TransportTypeFromGTFS("1200"))

	assert.Equal(t, TransportTypeUnknown, TransportTypeFromGTFS(""))
	assert.Equal(t, TransportTypeUnknown, TransportTypeFromGTFS("tram"))
}

func TestTransportTypeIsRailLike(t *testing.T) {
	assert.True(t, TransportTypeRail.IsRailLike())
	assert.True(t, TransportTypeMetro.IsRailLike())
	assert.True(t, TransportTypeTram.IsRailLike())
	assert.False(t, TransportTypeBus.IsRailLike())
	assert.False(t, TransportTypeFerry.IsRailLike())
}

func TestLocationValid(t *testing.T) {
	assert.True(t, Location{Latitude: 37.77, Longitude: -122.41}.Valid())
	assert.False(t, Location{Latitude: 0, Longitude: 0}.Valid())
	assert.False(t, Location{Latitude: 91, Longitude: 0.1}.Valid())
	assert.False(t, Location{Latitude: 37.77, Longitude: -181}.Valid())
}
