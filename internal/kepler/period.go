package kepler

import (
	"errors"
	"fmt"
	"math"

	apperrors "github.com/agbru/kepler/internal/errors"
)

// Body is an orbiting body. Mass is in kilograms, SemiMajorAxis in meters.
type Body struct {
	Name          string
	Mass          float64
	SemiMajorAxis float64
}

// CentralBody is the body every period is computed around.
type CentralBody struct {
	Name string
	Mass float64
}

// Model selects which gravitational parameter a period is computed with.
type Model int

const (
	// TestMass ignores the orbiting body's mass.
	TestMass Model = iota
	// TwoBody adds the orbiting body's mass to the central mass.
	TwoBody
)

// String returns the model name used in labels and metrics.
func (m Model) String() string {
	switch m {
	case TestMass:
		return "test_mass"
	case TwoBody:
		return "two_body"
	default:
		return "unknown"
	}
}

// Periods holds the two parallel period sequences, in seconds, for an
// ordered list of bodies. TwoBody[i] <= TestMass[i] for every i.
type Periods struct {
	TestMass []float64
	TwoBody  []float64
}

// Len returns the number of bodies covered.
func (p Periods) Len() int { return len(p.TestMass) }

// Period returns the orbital period in seconds:
//
//	T = 2π · (G·(M + m·[include]))^(-1/2) · a^(3/2)
//
// Parameters:
//   - g: The gravitational constant.
//   - centralMass: Mass of the central body, kg.
//   - orbitingMass: Mass of the orbiting body, kg.
//   - semiMajorAxis: Semi-major axis of the orbit, m.
//   - includeOrbitingMass: true for the two-body model.
//
// Returns:
//   - float64: The period in seconds.
//   - error: A ValidationError if any input is out of its physical domain.
func Period(g, centralMass, orbitingMass, semiMajorAxis float64, includeOrbitingMass bool) (float64, error) {
	if err := validateInputs(g, centralMass, orbitingMass, semiMajorAxis); err != nil {
		return 0, err
	}
	mu := centralMass
	if includeOrbitingMass {
		mu += orbitingMass
	}
	return 2 * math.Pi * math.Pow(g*mu, -0.5) * math.Pow(semiMajorAxis, 1.5), nil
}

// PeriodFor computes the period of body around central under the given model.
func PeriodFor(g float64, central CentralBody, body Body, model Model) (float64, error) {
	return Period(g, central.Mass, body.Mass, body.SemiMajorAxis, model == TwoBody)
}

// ComputePeriods applies Period element-wise to bodies and returns the
// test-mass and two-body sequences in input order.
//
// The batch fails fast: the first invalid body aborts the computation and no
// partial result is returned. The error is a CalculationError wrapping a
// ValidationError whose field names the offending body.
func ComputePeriods(g float64, central CentralBody, bodies []Body) (Periods, error) {
	periods := Periods{
		TestMass: make([]float64, len(bodies)),
		TwoBody:  make([]float64, len(bodies)),
	}
	for i, body := range bodies {
		testMass, err := PeriodFor(g, central, body, TestMass)
		if err != nil {
			return Periods{}, bodyError(i, body, err)
		}
		twoBody, err := PeriodFor(g, central, body, TwoBody)
		if err != nil {
			return Periods{}, bodyError(i, body, err)
		}
		periods.TestMass[i] = testMass
		periods.TwoBody[i] = twoBody
	}
	return periods, nil
}

func validateInputs(g, centralMass, orbitingMass, semiMajorAxis float64) error {
	switch {
	case !positive(g):
		return apperrors.NewValidationError("G", "must be a positive finite number, got %g", g)
	case !positive(centralMass):
		return apperrors.NewValidationError("centralMass", "must be a positive finite number, got %g", centralMass)
	case !nonNegative(orbitingMass):
		return apperrors.NewValidationError("orbitingMass", "must be a non-negative finite number, got %g", orbitingMass)
	case !positive(semiMajorAxis):
		return apperrors.NewValidationError("semiMajorAxis", "must be a positive finite number, got %g", semiMajorAxis)
	}
	return nil
}

func bodyError(index int, body Body, err error) error {
	field := fmt.Sprintf("bodies[%d]", index)
	if body.Name != "" {
		field = fmt.Sprintf("bodies[%d] (%s)", index, body.Name)
	}
	var verr apperrors.ValidationError
	if errors.As(err, &verr) {
		verr.Field = field + "." + verr.Field
		return apperrors.CalculationError{Cause: verr}
	}
	return apperrors.CalculationError{Cause: apperrors.WrapError(err, "%s", field)}
}
