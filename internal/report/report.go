// Package report turns paired test-mass and two-body periods into the
// deviation table.
//
// Each row carries the two-body period in years, the absolute deviation in
// hours and the relative deviation. The hour column switches format on
// magnitude: deviations strictly greater than one hour print left-justified
// with one decimal, everything else right-justified with four.
package report

import (
	"fmt"
	"io"
	"iter"

	apperrors "github.com/agbru/kepler/internal/errors"
)

// Header is the first line of the table.
const Header = "T [yr] dev [hr] dev rel."

const (
	longFormat  = "%6.2f %-7.1f %.1e"
	shortFormat = "%6.2f %7.4f %.1e"
)

// Units are the seconds-per-unit scalars used to scale the table columns.
type Units struct {
	Year float64
	Hour float64
}

// Row is one line of the table.
type Row struct {
	// Index is the position of the pair in the input sequences.
	Index int
	// TestMassPeriod and TwoBodyPeriod are in seconds.
	TestMassPeriod float64
	TwoBodyPeriod  float64
	// Deviation is TestMassPeriod - TwoBodyPeriod, in seconds.
	Deviation float64
	// RelativeDeviation is Deviation / TestMassPeriod.
	RelativeDeviation float64
	// PeriodYears is TwoBodyPeriod in years.
	PeriodYears float64
	// DeviationHours is Deviation in hours.
	DeviationHours float64

	exceedsHour bool
}

// ExceedsHour reports whether the deviation is strictly greater than one hour.
func (r Row) ExceedsHour() bool { return r.exceedsHour }

// String formats the row with the magnitude-dependent hour column.
func (r Row) String() string {
	if r.exceedsHour {
		return fmt.Sprintf(longFormat, r.PeriodYears, r.DeviationHours, r.RelativeDeviation)
	}
	return fmt.Sprintf(shortFormat, r.PeriodYears, r.DeviationHours, r.RelativeDeviation)
}

// NewRow derives a row from one aligned pair of periods.
func NewRow(index int, testMass, twoBody float64, u Units) Row {
	deviation := testMass - twoBody
	return Row{
		Index:             index,
		TestMassPeriod:    testMass,
		TwoBodyPeriod:     twoBody,
		Deviation:         deviation,
		RelativeDeviation: deviation / testMass,
		PeriodYears:       twoBody / u.Year,
		DeviationHours:    deviation / u.Hour,
		exceedsHour:       deviation > u.Hour,
	}
}

// Rows validates the inputs and returns a lazy sequence with one row per
// pair, in input order. The sequence holds no state of its own and may be
// ranged over any number of times.
//
// Returns:
//   - apperrors.LengthMismatchError if the slices differ in length.
//   - apperrors.ValidationError if a unit or a test-mass period is not positive.
//
// No row is produced when an error is returned.
func Rows(testMass, twoBody []float64, u Units) (iter.Seq[Row], error) {
	if len(testMass) != len(twoBody) {
		return nil, apperrors.LengthMismatchError{Left: len(testMass), Right: len(twoBody)}
	}
	if !(u.Year > 0) {
		return nil, apperrors.NewValidationError("year", "must be positive, got %g", u.Year)
	}
	if !(u.Hour > 0) {
		return nil, apperrors.NewValidationError("hour", "must be positive, got %g", u.Hour)
	}
	for i, p := range testMass {
		if !(p > 0) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("testMassPeriods[%d]", i), "must be positive, got %g", p)
		}
	}

	return func(yield func(Row) bool) {
		for i := range testMass {
			if !yield(NewRow(i, testMass[i], twoBody[i], u)) {
				return
			}
		}
	}, nil
}

// Write writes the header followed by one line per row.
// It stops at and returns the first write error.
func Write(w io.Writer, rows iter.Seq[Row]) error {
	if _, err := fmt.Fprintln(w, Header); err != nil {
		return err
	}
	for row := range rows {
		if _, err := fmt.Fprintln(w, row.String()); err != nil {
			return err
		}
	}
	return nil
}
