package ctm

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeOfDay is elapsed seconds since the start of the service day. Values of
// 86400 and above are legitimate: a 25:10:00 arrival belongs to a post-midnight
// trip on the previous service day and must not wrap around to 01:10:00.
type TimeOfDay int

func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 3 {
		return 0, fmt.Errorf("time of day %q is not HH:MM:SS", value)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 {
		return 0, fmt.Errorf("time of day %q has invalid hours", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("time of day %q has invalid minutes", value)
	}
	seconds, err := strconv.Atoi(parts[2])
	if err != nil || seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("time of day %q has invalid seconds", value)
	}

	return TimeOfDay(hours*3600 + minutes*60 + seconds), nil
}

func (t TimeOfDay) Seconds() int {
	return int(t)
}

func (t TimeOfDay) Minutes() float64 {
	return float64(t) / 60
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", int(t)/3600, (int(t)%3600)/60, int(t)%60)
}
