// Package model defines the value types shared across the flight risk core.
package model

import "strings"

// RawRecord is one parsed data row: an ordered mapping from header name to
// trimmed cell value. Header spelling is preserved exactly as uploaded so the
// presentation layer can echo it back, but all lookups are case-insensitive.
type RawRecord struct {
	Headers []string          `json:"headers"`
	Values  map[string]string `json:"values"`
}

// Value returns the trimmed value for the given header, matching
// case-insensitively. Missing headers yield the empty string.
func (r RawRecord) Value(header string) string {
	if v, ok := r.Values[header]; ok {
		if t := strings.TrimSpace(v); t != "" {
			return t
		}
	}
	for _, h := range r.Headers {
		if !strings.EqualFold(h, header) {
			continue
		}
		if t := strings.TrimSpace(r.Values[h]); t != "" {
			return t
		}
	}
	return ""
}

// Dataset is an immutable parsed upload: the header row plus one RawRecord
// per data row. Callers replace it wholesale on re-upload.
type Dataset struct {
	Headers []string    `json:"headers"`
	Records []RawRecord `json:"records"`
}

// Len returns the number of data rows.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Records)
}

// DatasetSummary holds dataset-wide aggregates for the selection widgets.
type DatasetSummary struct {
	TotalFlights     int      `json:"total_flights"`
	CarrierCount     int      `json:"carrier_count"`
	DestinationCount int      `json:"destination_count"`
	Carriers         []string `json:"carriers"`
	Destinations     []string `json:"destinations"`
	Tails            []string `json:"tails"`
	Routes           []string `json:"routes"`
}

// Selection is the result of picking one record by tail or by route. Both
// derived keys are exposed so paired selector widgets stay in sync.
type Selection struct {
	Record   RawRecord `json:"record"`
	FlightID string    `json:"flight_id"`
	RouteKey string    `json:"route_key"`
}
