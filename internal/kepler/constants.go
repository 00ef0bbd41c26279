package kepler

import (
	"math"

	apperrors "github.com/agbru/kepler/internal/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Physical Constants
// ─────────────────────────────────────────────────────────────────────────────

const (
	// GravitationalConstant is the CODATA 2018 value of G in m³·kg⁻¹·s⁻².
	GravitationalConstant = 6.67430e-11

	// CalendarYear is the number of seconds in a 365-day year. The reference
	// deviation table is expressed in this unit.
	CalendarYear = 365 * 86400

	// Hour is the number of seconds in an hour.
	Hour = 3600

	// AstronomicalUnit is the IAU 2012 astronomical unit in meters.
	AstronomicalUnit = 149_597_870_700

	// SolarMass is the IAU 2015 nominal solar mass parameter divided by G,
	// in kilograms.
	SolarMass = 1.988409870698051e30
)

// Constants is the set of scalars the calculator and reporter consume.
// It is treated as an opaque constant source; only positivity is checked.
type Constants struct {
	G         float64 // gravitational constant, m³·kg⁻¹·s⁻²
	Year      float64 // seconds per year
	Hour      float64 // seconds per hour
	AU        float64 // meters per astronomical unit
	SolarMass float64 // kilograms
}

// Reference is the default constant source.
var Reference = Constants{
	G:         GravitationalConstant,
	Year:      CalendarYear,
	Hour:      Hour,
	AU:        AstronomicalUnit,
	SolarMass: SolarMass,
}

// Validate reports the first constant that is not a positive finite number.
func (c Constants) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"G", c.G},
		{"year", c.Year},
		{"hour", c.Hour},
		{"au", c.AU},
		{"solarMass", c.SolarMass},
	}
	for _, chk := range checks {
		if !positive(chk.value) {
			return apperrors.NewValidationError(chk.name, "must be a positive finite number, got %g", chk.value)
		}
	}
	return nil
}

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
