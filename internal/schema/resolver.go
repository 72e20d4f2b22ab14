// Package schema maps arbitrary upload headers to the canonical semantic
// fields the scoring engine understands.
package schema

import (
	"strings"

	"github.com/skyward-analytics/flightrisk/internal/model"
)

// CanonicalField is one of the fixed semantic slots the engine understands,
// independent of the literal header name that supplied its value.
type CanonicalField string

const (
	FieldOrigin           CanonicalField = "origin"
	FieldDestination      CanonicalField = "destination"
	FieldTailNumber       CanonicalField = "tail_number"
	FieldFlightNumber     CanonicalField = "flight_number"
	FieldCarrier          CanonicalField = "carrier"
	FieldDepartureDelay   CanonicalField = "departure_delay"
	FieldArrivalDelay     CanonicalField = "arrival_delay"
	FieldWeatherDelay     CanonicalField = "weather_delay"
	FieldSecurityDelay    CanonicalField = "security_delay"
	FieldScheduledArrival CanonicalField = "scheduled_arrival"
	FieldFuelPercent      CanonicalField = "fuel_percent"
)

// canonicalDestinationHeader is checked first wherever the canonical-first
// destination rule applies (unique-destination count, route keys). The full
// candidate list below stays in use for display and matching fallback.
const canonicalDestinationHeader = "DESTINATION_AIRPORT"

// RouteSeparator joins origin and destination into a route key.
const RouteSeparator = " → "

// candidates lists the header synonyms for each canonical field in priority
// order. The ordering is part of the contract surface: the first candidate
// with a non-empty value wins even when a later one is also populated.
// Never mutated at runtime.
var candidates = map[CanonicalField][]string{
	FieldOrigin:           {"ORIGIN", "ORIG", "SOURCE", "DEPARTURE", "DEPART", "FROM", "ORIGIN_AIRPORT", "ORIGIN_CITY"},
	FieldDestination:      {"DESTINATION_AIRPORT", "DEST", "DEST_AIRPORT", "DEST_CITY", "ARRIVAL", "TO"},
	FieldTailNumber:       {"TAIL_NUMBER", "TAIL", "TAIL_NO", "TAILNUM", "TAIL_NUM", "N_NUMBER", "REG", "REGISTRATION"},
	FieldFlightNumber:     {"MKT_CARRIER_FL_NUM", "FLIGHT_NUMBER", "FL_NUM", "FLT_NO", "FLIGHT"},
	FieldCarrier:          {"MKT_UNIQUE_CARRIER", "CARRIER", "AIRLINE", "OP_UNIQUE_CARRIER", "OP_CARRIER"},
	FieldDepartureDelay:   {"DEP_DELAY"},
	FieldArrivalDelay:     {"ARR_DELAY"},
	FieldWeatherDelay:     {"WEATHER_DELAY"},
	FieldSecurityDelay:    {"SECURITY_DELAY"},
	FieldScheduledArrival: {"CRS_ARR_TIME"},
	FieldFuelPercent:      {"FUEL_PERCENT"},
}

// Candidates returns the synonym list for a field. Callers must not modify
// the returned slice.
func Candidates(field CanonicalField) []string {
	return candidates[field]
}

// Resolve returns the value of the first candidate header (in priority
// order, matched case-insensitively) whose trimmed value is non-empty.
// Missing fields resolve to the empty string, never an error.
func Resolve(rec model.RawRecord, field CanonicalField) string {
	for _, header := range candidates[field] {
		if v := rec.Value(header); v != "" {
			return v
		}
	}
	return ""
}

// CanonicalDestination resolves the destination strictly from the canonical
// destination header, ignoring the synonym list. Used for the
// unique-destination count and for route keys so those stay stable even when
// synonym columns disagree.
func CanonicalDestination(rec model.RawRecord) string {
	return rec.Value(canonicalDestinationHeader)
}

// Identity derives the selection/deduplication key for one record: the tail
// number when resolvable, else the flight number.
func Identity(rec model.RawRecord) string {
	if tail := Resolve(rec, FieldTailNumber); tail != "" {
		return tail
	}
	return Resolve(rec, FieldFlightNumber)
}

// RouteKeyFor builds the "{origin} → {destination}" key for one record using
// the canonical-first destination rule. Returns the empty string when either
// side is unresolvable.
func RouteKeyFor(rec model.RawRecord) string {
	origin := Resolve(rec, FieldOrigin)
	dest := CanonicalDestination(rec)
	if origin == "" || dest == "" {
		return ""
	}
	return origin + RouteSeparator + dest
}

// SplitRouteKey parses a route key back into origin and destination,
// trimming both sides. ok is false when the key has no separator.
func SplitRouteKey(key string) (origin, dest string, ok bool) {
	parts := strings.SplitN(key, "→", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}
