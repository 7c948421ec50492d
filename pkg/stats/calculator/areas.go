package calculator

type AreaStats struct {
	// Square miles of unioned buffer per category (rail, bus, corridor) and
	// for the overall union, which is smaller than the per-category sum
	// wherever categories overlap.
	Categories         map[string]float64
	OverallSquareMiles float64

	ReferenceAreas map[string]float64

	// ReferencePercents is the share of each reference region covered by the
	// overall union, the headline figure for land freed from parking
	// mandates.
	ReferencePercents map[string]float64
}

func GetAreas(categories map[string]float64, overall float64, references map[string]float64) AreaStats {
	stats := AreaStats{
		Categories:         categories,
		OverallSquareMiles: overall,
		ReferenceAreas:     references,
		ReferencePercents:  map[string]float64{},
	}

	for name, referenceArea := range references {
		if referenceArea > 0 {
			stats.ReferencePercents[name] = 100 * overall / referenceArea
		}
	}

	return stats
}
