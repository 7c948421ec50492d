package calculator

import "github.com/transitzone/transitzone/pkg/classifier"

type HubStats struct {
	Total int

	Kinds    map[classifier.Kind]int
	Agencies map[string]int
}

func GetHubs(hubs []classifier.QualifyingHub) HubStats {
	stats := HubStats{
		Total:    len(hubs),
		Kinds:    map[classifier.Kind]int{},
		Agencies: map[string]int{},
	}

	for _, hub := range hubs {
		stats.Kinds[hub.Kind]++
		stats.Agencies[hub.Stop.AgencyRef]++
	}

	return stats
}
