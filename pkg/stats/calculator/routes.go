package calculator

import "github.com/transitzone/transitzone/pkg/headway"

type AgencyRouteStats struct {
	Routes     int
	Qualifying int
	Percent    float64
}

type RouteQualificationStats struct {
	Overall  AgencyRouteStats
	Agencies map[string]AgencyRouteStats
}

// GetRouteQualification reports, per agency, what share of sufficiently
// observed routes meets the frequency test on aggregate (median of the
// route's per-stop medians).
func GetRouteQualification(summaries []headway.Summary, thresholdMinutes float64) RouteQualificationStats {
	medians := headway.RouteMedians(summaries)

	routeAgencies := map[string]string{}
	for _, summary := range summaries {
		routeAgencies[summary.RouteRef] = summary.AgencyRef
	}

	stats := RouteQualificationStats{
		Agencies: map[string]AgencyRouteStats{},
	}

	for routeRef, median := range medians {
		agency := stats.Agencies[routeAgencies[routeRef]]
		agency.Routes++
		stats.Overall.Routes++

		if median <= thresholdMinutes {
			agency.Qualifying++
			stats.Overall.Qualifying++
		}

		stats.Agencies[routeAgencies[routeRef]] = agency
	}

	for agencyRef, agency := range stats.Agencies {
		agency.Percent = percent(agency.Qualifying, agency.Routes)
		stats.Agencies[agencyRef] = agency
	}
	stats.Overall.Percent = percent(stats.Overall.Qualifying, stats.Overall.Routes)

	return stats
}

func percent(part int, total int) float64 {
	if total == 0 {
		return 0
	}
	return 100 * float64(part) / float64(total)
}
