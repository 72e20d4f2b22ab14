package dataset

import (
	"github.com/skyward-analytics/flightrisk/internal/model"
	"github.com/skyward-analytics/flightrisk/internal/schema"
)

// SelectByTail returns the first record whose flight identity equals the
// given value. The matched record's route key is derived too so a paired
// route selector can be kept in sync. ok is false when nothing matches.
func SelectByTail(ds *model.Dataset, tail string) (model.Selection, bool) {
	for _, rec := range ds.Records {
		if schema.Identity(rec) == tail {
			return model.Selection{
				Record:   rec,
				FlightID: tail,
				RouteKey: schema.RouteKeyFor(rec),
			}, true
		}
	}
	return model.Selection{}, false
}

// SelectByRoute parses the route key back into origin and destination and
// returns the first record matching both, using the canonical-first
// destination rule. The matched record's flight identity is derived for the
// paired tail selector. ok is false on a malformed key or when nothing
// matches.
func SelectByRoute(ds *model.Dataset, routeKey string) (model.Selection, bool) {
	origin, dest, ok := schema.SplitRouteKey(routeKey)
	if !ok {
		return model.Selection{}, false
	}

	for _, rec := range ds.Records {
		if schema.Resolve(rec, schema.FieldOrigin) == origin && schema.CanonicalDestination(rec) == dest {
			return model.Selection{
				Record:   rec,
				FlightID: schema.Identity(rec),
				RouteKey: routeKey,
			}, true
		}
	}
	return model.Selection{}, false
}
