package assess

import (
	"fmt"

	"github.com/skyward-analytics/flightrisk/internal/model"
)

// All assesses every record in row order. Records with no resolvable
// identity are labeled Flight_<index> so every row stays addressable in the
// output.
func All(ds *model.Dataset) []model.FlightAssessment {
	out := make([]model.FlightAssessment, 0, ds.Len())
	for i, rec := range ds.Records {
		a := Flight(rec)
		if a.FlightID == "" {
			a.FlightID = FallbackID(i)
		}
		out = append(out, a)
	}
	return out
}

// FallbackID labels a record with no resolvable flight identity by its row
// index.
func FallbackID(row int) string {
	return fmt.Sprintf("Flight_%d", row)
}
