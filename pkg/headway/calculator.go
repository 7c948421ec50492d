package headway

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// Summary is the per (stop, route) evidence the classifier works from.
type Summary struct {
	StopRef   string
	RouteRef  string
	AgencyRef string

	MedianMinutes float64
	MinMinutes    float64
	MaxMinutes    float64
	Observations  int

	Qualifies bool
}

type Options struct {
	ThresholdMinutes      float64
	OutlierCeilingMinutes float64
	MinObservations       int
}

type groupKey struct {
	stopRef  string
	routeRef string
}

// Calculate computes inter-arrival deltas per (stop, route) within each peak
// window independently, pools the windows, and summarises with the median.
//
// A delta above the outlier ceiling is discarded as an artifact of sparse trip
// coverage rather than treated as evidence of infrequent service; a delta of
// exactly the ceiling is retained. Groups with fewer than MinObservations
// retained deltas are excluded outright, never defaulted either way.
func Calculate(events []PeakEvent, options Options) []Summary {
	type windowedGroup struct {
		groupKey
		windowIndex int
	}

	agencies := map[groupKey]string{}
	arrivals := map[windowedGroup][]float64{}
	for _, event := range events {
		key := groupKey{stopRef: event.StopRef, routeRef: event.RouteRef}
		windowed := windowedGroup{groupKey: key, windowIndex: event.WindowIndex}

		agencies[key] = event.AgencyRef
		arrivals[windowed] = append(arrivals[windowed], float64(event.ArrivalTime.Seconds()))
	}

	pooled := map[groupKey][]float64{}
	for windowed, times := range arrivals {
		sort.Float64s(times)

		for index := 1; index < len(times); index++ {
			deltaMinutes := (times[index] - times[index-1]) / 60

			if deltaMinutes > options.OutlierCeilingMinutes {
				continue
			}

			pooled[windowed.groupKey] = append(pooled[windowed.groupKey], deltaMinutes)
		}
	}

	var summaries []Summary
	for key, deltas := range pooled {
		if len(deltas) < options.MinObservations {
			continue
		}

		median, _ := stats.Median(deltas)
		minDelta, _ := stats.Min(deltas)
		maxDelta, _ := stats.Max(deltas)

		summaries = append(summaries, Summary{
			StopRef:       key.stopRef,
			RouteRef:      key.routeRef,
			AgencyRef:     agencies[key],
			MedianMinutes: median,
			MinMinutes:    minDelta,
			MaxMinutes:    maxDelta,
			Observations:  len(deltas),
			Qualifies:     median <= options.ThresholdMinutes,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].StopRef != summaries[j].StopRef {
			return summaries[i].StopRef < summaries[j].StopRef
		}
		return summaries[i].RouteRef < summaries[j].RouteRef
	})

	return summaries
}

// GroupByStop indexes summaries for the classifier.
func GroupByStop(summaries []Summary) map[string][]Summary {
	byStop := map[string][]Summary{}
	for _, summary := range summaries {
		byStop[summary.StopRef] = append(byStop[summary.StopRef], summary)
	}
	return byStop
}

// RouteMedians aggregates each route's per-stop medians into one figure, the
// median of medians, used for the corridor variant and the per-agency route
// statistics.
func RouteMedians(summaries []Summary) map[string]float64 {
	perRoute := map[string][]float64{}
	for _, summary := range summaries {
		perRoute[summary.RouteRef] = append(perRoute[summary.RouteRef], summary.MedianMinutes)
	}

	medians := make(map[string]float64, len(perRoute))
	for routeRef, values := range perRoute {
		median, err := stats.Median(values)
		if err != nil {
			continue
		}
		medians[routeRef] = median
	}

	return medians
}
