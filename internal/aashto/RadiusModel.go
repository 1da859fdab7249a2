// Package aashto defines the RadiusModel interface for the AASHTO minimum-radius
// equation of a horizontal curve, along with the metric and imperial unit systems.
//
// The equation is the same in every unit system; only the radius constant and
// the units of speed and length change:
//
//	R = V² / (C × (e + f))
//
// Adding a unit system requires only implementing RadiusModel and adding it to
// Lookup; the engine never needs to change.
package aashto

import (
	"errors"
	"fmt"
)

// ErrUnknownUnits is returned by Lookup for an unrecognised unit-system name.
var ErrUnknownUnits = errors.New("aashto: unknown unit system")

// RadiusModel is the contract every unit system must satisfy.
type RadiusModel interface {
	// Name returns the JSON discriminator for the model.
	Name() string

	// Constant returns the radius constant C of the equation.
	Constant() float64

	// Radius returns the minimum radius for design speed v, superelevation rate e
	// and side-friction factor f. The result is unrounded and in LengthUnit.
	// No validation is done here; e + f == 0 yields +Inf.
	Radius(v, e, f float64) float64

	// ToMeters converts a length in LengthUnit to metres.
	ToMeters(length float64) float64

	// SpeedUnit is the short label of the design-speed unit ("kmph", "mph").
	SpeedUnit() string

	// LengthUnit is the short label of the length unit ("m", "ft").
	LengthUnit() string
}

// Lookup returns the model registered under name. An empty name selects Metric.
func Lookup(name string) (RadiusModel, error) {
	switch name {
	case "", MetricName:
		return Metric{}, nil
	case ImperialName:
		return Imperial{}, nil
	default:
		return nil, fmt.Errorf("%w %q (want %q or %q)", ErrUnknownUnits, name, MetricName, ImperialName)
	}
}

// radius is the shared form of the equation.
func radius(c, v, e, f float64) float64 {
	return (v * v) / (c * (e + f))
}
