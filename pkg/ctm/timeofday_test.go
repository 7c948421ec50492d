package ctm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeOfDay(t *testing.T) {
	timeOfDay, err := ParseTimeOfDay("07:30:15")
	assert.NoError(t, err)
	assert.Equal(t, 7*3600+30*60+15, timeOfDay.Seconds())
}

func TestParseTimeOfDayPostMidnight(t *testing.T) {
	// A 25:10:00 arrival belongs to the previous service day and must parse
	// as elapsed seconds, not wrap to 01:10:00
	timeOfDay, err := ParseTimeOfDay("25:10:00")
	assert.NoError(t, err)
	assert.Equal(t, 90600, timeOfDay.Seconds())
}

func TestParseTimeOfDayMalformed(t *testing.T) {
	for _, value := range []string{"", "0730", "07:30", "07:61:00", "07:30:-1", "seven:30:00", "-1:00:00"} {
		_, err := ParseTimeOfDay(value)
		assert.Error(t, err, value)
	}
}

func TestTimeOfDayString(t *testing.T) {
	timeOfDay, _ := ParseTimeOfDay("25:10:00")
	assert.Equal(t, "25:10:00", timeOfDay.String())
}

func TestTimeOfDayMinutes(t *testing.T) {
	timeOfDay, _ := ParseTimeOfDay("00:15:00")
	assert.Equal(t, 15.0, timeOfDay.Minutes())
}
