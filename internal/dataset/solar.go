// Package dataset supplies the ordered list of orbiting bodies the calculator
// runs over: the built-in solar system reference set, or a user file.
package dataset

import "github.com/agbru/kepler/internal/kepler"

// Sun is the central body of the reference dataset.
var Sun = kepler.CentralBody{Name: "Sun", Mass: kepler.SolarMass}

// reference lists the eight planets and Pluto by ascending semi-major axis.
// Masses and semi-major axes follow the NASA planetary fact sheet.
var reference = []kepler.Body{
	{Name: "Mercury", Mass: 0.33011e24, SemiMajorAxis: 57.909e9},
	{Name: "Venus", Mass: 4.8675e24, SemiMajorAxis: 108.209e9},
	{Name: "Earth", Mass: 5.9723e24, SemiMajorAxis: 149.598e9},
	{Name: "Mars", Mass: 0.64171e24, SemiMajorAxis: 227.923e9},
	{Name: "Jupiter", Mass: 1898.19e24, SemiMajorAxis: 778.570e9},
	{Name: "Saturn", Mass: 568.34e24, SemiMajorAxis: 1433.529e9},
	{Name: "Uranus", Mass: 86.813e24, SemiMajorAxis: 2872.463e9},
	{Name: "Neptune", Mass: 102.413e24, SemiMajorAxis: 4495.060e9},
	{Name: "Pluto", Mass: 0.01303e24, SemiMajorAxis: 5906.380e9},
}

// Dataset is a central body with its ordered orbiting bodies.
type Dataset struct {
	Name    string
	Central kepler.CentralBody
	Bodies  []kepler.Body
}

// Reference returns a fresh copy of the built-in solar system dataset.
// Callers may modify the returned slice without affecting later calls.
func Reference() Dataset {
	bodies := make([]kepler.Body, len(reference))
	copy(bodies, reference)
	return Dataset{Name: "reference", Central: Sun, Bodies: bodies}
}
