package normaliser

import (
	"fmt"
	"sort"

	"github.com/sourcegraph/conc/pool"
	"github.com/transitzone/transitzone/pkg/ctm"
	"github.com/transitzone/transitzone/pkg/feeds"
)

// Concat merges per-agency table sets into one. Identifiers are already
// agency-prefixed so the merge is a plain append.
func Concat(sets ...*ctm.TableSet) *ctm.TableSet {
	merged := &ctm.TableSet{}

	for _, set := range sets {
		merged.Agencies = append(merged.Agencies, set.Agencies...)
		merged.Stops = append(merged.Stops, set.Stops...)
		merged.Routes = append(merged.Routes, set.Routes...)
		merged.Trips = append(merged.Trips, set.Trips...)
		merged.Calendars = append(merged.Calendars, set.Calendars...)
		merged.Arrivals = append(merged.Arrivals, set.Arrivals...)
		merged.Shapes = append(merged.Shapes, set.Shapes...)
	}

	return merged
}

type agencyResult struct {
	index    int
	set      *ctm.TableSet
	counters *Counters
	err      error
}

// NormaliseAll fetches and normalises every feed, agencies in parallel, then
// concatenates in definition order so the output is deterministic.
func NormaliseAll(definitions []feeds.Definition, source feeds.Source) (*ctm.TableSet, *Counters, error) {
	p := pool.NewWithResults[agencyResult]()
	p.WithMaxGoroutines(4)

	for index, definition := range definitions {
		p.Go(func() agencyResult {
			raw, err := source.Fetch(definition)
			if err != nil {
				return agencyResult{index: index, err: fmt.Errorf("agency %s: %w", definition.Identifier, err)}
			}

			set, counters := Normalise(definition, raw)
			counters.Log(definition.Identifier)

			return agencyResult{index: index, set: set, counters: counters}
		})
	}

	results := p.Wait()
	sort.Slice(results, func(i, j int) bool {
		return results[i].index < results[j].index
	})

	totals := &Counters{}
	sets := make([]*ctm.TableSet, 0, len(results))
	for _, result := range results {
		if result.err != nil {
			return nil, nil, result.err
		}
		totals.Add(result.counters)
		sets = append(sets, result.set)
	}

	return Concat(sets...), totals, nil
}
