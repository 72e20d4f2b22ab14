package model

// RiskLevel is a per-category severity bucket.
type RiskLevel string

const (
	RiskLow    RiskLevel = "LOW"
	RiskMedium RiskLevel = "MEDIUM"
	RiskHigh   RiskLevel = "HIGH"
)

// Severity orders risk levels for comparison: LOW < MEDIUM < HIGH.
func (l RiskLevel) Severity() int {
	switch l {
	case RiskMedium:
		return 1
	case RiskHigh:
		return 2
	default:
		return 0
	}
}

// LevelTally counts how many of the weather/carrier/security categories fall
// in each level. Fuel risk is reported standalone and excluded here, matching
// the narrower summary used for the top-of-screen badges.
type LevelTally struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// Add increments the bucket for the given level.
func (t *LevelTally) Add(l RiskLevel) {
	switch l {
	case RiskHigh:
		t.High++
	case RiskMedium:
		t.Medium++
	default:
		t.Low++
	}
}

// RiskAssessment holds the per-category classification for one flight.
type RiskAssessment struct {
	Weather     RiskLevel  `json:"weather"`
	Carrier     RiskLevel  `json:"carrier"`
	Security    RiskLevel  `json:"security"`
	Fuel        RiskLevel  `json:"fuel"`
	FuelPercent float64    `json:"fuel_percent"`
	Tally       LevelTally `json:"tally"`
}

// DelayProjection is the predicted total delay and the projected arrival
// clock time for one flight. Arrival fields are empty when the record has no
// resolvable scheduled arrival time.
type DelayProjection struct {
	WeatherDelayMinutes   int    `json:"weather_delay_minutes"`
	DepartureDelayMinutes int    `json:"departure_delay_minutes"`
	SecurityDelayMinutes  int    `json:"security_delay_minutes"`
	PredictedDelayMinutes int    `json:"predicted_delay_minutes"`
	ScheduledArrival      string `json:"scheduled_arrival,omitempty"`
	ProjectedArrival      string `json:"projected_arrival,omitempty"`
}

// FlightAssessment is the full per-flight result surfaced to callers.
type FlightAssessment struct {
	FlightID    string          `json:"flight_id"`
	RouteKey    string          `json:"route_key,omitempty"`
	Risk        RiskAssessment  `json:"risk"`
	Delay       DelayProjection `json:"delay"`
	Suggestions []string        `json:"suggestions,omitempty"`
}
