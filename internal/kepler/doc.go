// Package kepler computes orbital periods from Kepler's third law.
//
// Two models are supported for every body:
//
//   - Test mass: the orbiting body's own mass is ignored, so the
//     gravitational parameter is G·M.
//   - Two body: the orbiting mass is added, G·(M + m), which always yields a
//     period no longer than the test-mass one.
//
// All functions are pure. Invalid input (non-positive G, central mass or
// semi-major axis, negative orbiting mass, NaN or infinities) is rejected with
// an [apperrors.ValidationError].
package kepler
