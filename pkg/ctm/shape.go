package ctm

import "github.com/paulmach/orb"

type Shape struct {
	PrimaryIdentifier string

	Points []Location
}

func (s *Shape) LineString() orb.LineString {
	lineString := make(orb.LineString, 0, len(s.Points))
	for _, point := range s.Points {
		lineString = append(lineString, point.Point())
	}
	return lineString
}
