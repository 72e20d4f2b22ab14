// Package assess converts one resolved flight record into categorical risk
// levels, a fuel estimate, a predicted delay and a projected arrival time.
package assess

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/skyward-analytics/flightrisk/internal/model"
	"github.com/skyward-analytics/flightrisk/internal/schema"
)

const (
	highDelayMinutes   = 60 // inclusive boundary for HIGH in every delay category
	mediumDelayMinutes = 15 // inclusive boundary for MEDIUM carrier/delay risk

	fuelHighBelowPercent   = 25.0
	fuelMediumBelowPercent = 40.0
	syntheticFuelFloor     = 5.0 // a delay never implies a fully empty tank

	minutesPerDay = 24 * 60
)

// Assess scores one record. It is a pure function: per-field absence and
// coercion failures degrade to zero, never to an error, and re-assessing the
// same record yields identical results.
func Assess(rec model.RawRecord) (model.RiskAssessment, model.DelayProjection) {
	weather := delayMinutes(schema.Resolve(rec, schema.FieldWeatherDelay))
	departure := delayMinutes(schema.Resolve(rec, schema.FieldDepartureDelay))
	security := delayMinutes(schema.Resolve(rec, schema.FieldSecurityDelay))

	risk := model.RiskAssessment{
		Weather:  weatherRisk(weather),
		Carrier:  carrierRisk(carrierDelayMinutes(rec)),
		Security: securityRisk(security),
	}
	risk.FuelPercent, risk.Fuel = fuelRisk(rec, departure)
	risk.Tally.Add(risk.Weather)
	risk.Tally.Add(risk.Carrier)
	risk.Tally.Add(risk.Security)

	// The sum uses the departure delay without the arrival fallback that
	// carrier classification applies. Preserved as observed in the source
	// system.
	delay := model.DelayProjection{
		WeatherDelayMinutes:   weather,
		DepartureDelayMinutes: departure,
		SecurityDelayMinutes:  security,
		PredictedDelayMinutes: weather + departure + security,
	}

	if sched, ok := clockMinutes(schema.Resolve(rec, schema.FieldScheduledArrival)); ok {
		projected := (sched + delay.PredictedDelayMinutes) % minutesPerDay
		if projected < 0 {
			projected += minutesPerDay
		}
		delay.ScheduledArrival = formatClock(sched)
		delay.ProjectedArrival = formatClock(projected)
	}

	return risk, delay
}

// Flight produces the full per-flight result for one record: risk, delay
// projection and advice, keyed by the record's flight identity.
func Flight(rec model.RawRecord) model.FlightAssessment {
	risk, delay := Assess(rec)
	return model.FlightAssessment{
		FlightID: schema.Identity(rec),
		RouteKey: schema.RouteKeyFor(rec),
		Risk:     risk,
		Delay:    delay,
		Suggestions: Suggestions(
			carrierDelayMinutes(rec),
			delay.WeatherDelayMinutes,
			delay.SecurityDelayMinutes,
			delay.PredictedDelayMinutes,
		),
	}
}

// carrierDelayMinutes resolves the departure delay, falling back to the
// arrival delay only when no departure delay column resolves at all. A value
// that resolves but fails to parse counts as zero without triggering the
// fallback.
func carrierDelayMinutes(rec model.RawRecord) int {
	raw := schema.Resolve(rec, schema.FieldDepartureDelay)
	if raw == "" {
		raw = schema.Resolve(rec, schema.FieldArrivalDelay)
	}
	return delayMinutes(raw)
}

func weatherRisk(minutes int) model.RiskLevel {
	switch {
	case minutes >= highDelayMinutes:
		return model.RiskHigh
	case minutes > 0:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

func carrierRisk(minutes int) model.RiskLevel {
	switch {
	case minutes >= highDelayMinutes:
		return model.RiskHigh
	case minutes >= mediumDelayMinutes:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

func securityRisk(minutes int) model.RiskLevel {
	switch {
	case minutes >= highDelayMinutes:
		return model.RiskHigh
	case minutes > 0:
		return model.RiskMedium
	default:
		return model.RiskLow
	}
}

// fuelRisk resolves an explicit fuel percentage when the column exists,
// otherwise synthesizes one from the departure delay. The explicit path
// clamps to [0,100]; the synthetic path clamps to [5,100].
func fuelRisk(rec model.RawRecord, departureMinutes int) (float64, model.RiskLevel) {
	var pct float64
	if raw := schema.Resolve(rec, schema.FieldFuelPercent); raw != "" {
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(raw, "%"), 64)
		if err != nil {
			parsed = 0
		}
		pct = clamp(parsed, 0, 100)
	} else {
		pct = clamp(100-float64(departureMinutes), syntheticFuelFloor, 100)
	}

	switch {
	case pct < fuelHighBelowPercent:
		return pct, model.RiskHigh
	case pct < fuelMediumBelowPercent:
		return pct, model.RiskMedium
	default:
		return pct, model.RiskLow
	}
}

// delayMinutes coerces a resolved delay value to whole minutes. Absent or
// non-numeric values count as zero.
func delayMinutes(raw string) int {
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return int(f)
}

// clockMinutes interprets a scheduled-arrival value as an HHMM clock time
// (left-padded to four digits, so "950" means 09:50) and returns it as
// minutes of day. ok is false when the value is absent or non-numeric.
func clockMinutes(raw string) (int, bool) {
	if raw == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0, false
	}
	hhmm := int(f)
	total := (hhmm/100)*60 + hhmm%100
	return total % minutesPerDay, true
}

func formatClock(minutesOfDay int) string {
	return fmt.Sprintf("%02d:%02d", minutesOfDay/60, minutesOfDay%60)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
