package dataset

import (
	"sort"

	"github.com/skyward-analytics/flightrisk/internal/model"
	"github.com/skyward-analytics/flightrisk/internal/schema"
)

// Summarize computes the dataset-wide aggregates in one linear pass: total
// row count plus sorted unique carriers, destinations, flight identities and
// route keys. Uniqueness is exact post-trim string equality. Destinations
// and route keys use the canonical destination header only, so the counts
// stay stable when synonym columns disagree.
func Summarize(ds *model.Dataset) model.DatasetSummary {
	carriers := make(map[string]struct{})
	destinations := make(map[string]struct{})
	tails := make(map[string]struct{})
	routes := make(map[string]struct{})

	for _, rec := range ds.Records {
		if carrier := schema.Resolve(rec, schema.FieldCarrier); carrier != "" {
			carriers[carrier] = struct{}{}
		}
		if dest := schema.CanonicalDestination(rec); dest != "" {
			destinations[dest] = struct{}{}
		}
		if id := schema.Identity(rec); id != "" {
			tails[id] = struct{}{}
		}
		if route := schema.RouteKeyFor(rec); route != "" {
			routes[route] = struct{}{}
		}
	}

	return model.DatasetSummary{
		TotalFlights:     ds.Len(),
		CarrierCount:     len(carriers),
		DestinationCount: len(destinations),
		Carriers:         sortedKeys(carriers),
		Destinations:     sortedKeys(destinations),
		Tails:            sortedKeys(tails),
		Routes:           sortedKeys(routes),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
