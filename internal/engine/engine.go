// Package engine implements the curve-length calculation.
//
// A calculation is a single pass:
//
//  1. Radius - the AASHTO minimum radius for the design speed, side friction and
//     superelevation, in the length unit of the selected unit system.
//  2. Length - the arc of that circle swept by the curve angle, rounded up so
//     the curve is never shorter than the safe minimum.
//  3. Grid units - the length in simulation squares (8 m each), rounded up.
package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"

	"github.com/cxd309/curve-engine/internal/aashto"
)

const maxDegrees = 360

// Validate checks every field against its documented constraint and returns the
// first violation as a *FieldError.
func (in CurveInput) Validate() error {
	switch {
	case !isFinite(in.AngleDegrees):
		return fieldError("angle_deg", in.AngleDegrees, "must be a finite number")
	case in.AngleDegrees <= 0 || in.AngleDegrees > maxDegrees:
		return fieldError("angle_deg", in.AngleDegrees, "must be in (0, 360]")
	case !isFinite(in.DesignSpeed):
		return fieldError("design_speed", in.DesignSpeed, "must be a finite number")
	case in.DesignSpeed <= 0:
		return fieldError("design_speed", in.DesignSpeed, "must be greater than 0")
	case !isFinite(in.SideFriction):
		return fieldError("side_friction", in.SideFriction, "must be a finite number")
	case in.SideFriction < 0:
		return fieldError("side_friction", in.SideFriction, "must not be negative")
	case !isFinite(in.Superelevation):
		return fieldError("superelevation", in.Superelevation, "must be a finite number")
	case in.Superelevation < 0:
		return fieldError("superelevation", in.Superelevation, "must not be negative")
	case in.SideFriction+in.Superelevation <= 0:
		return fieldError("side_friction+superelevation", in.SideFriction+in.Superelevation, "must be greater than 0")
	}
	if _, err := aashto.Lookup(in.Units); err != nil {
		return fieldError("units", fmt.Sprintf("%q", in.Units),
			fmt.Sprintf("must be %q or %q", aashto.MetricName, aashto.ImperialName))
	}
	return nil
}

// Calculate validates in and computes the minimum curve length.
func Calculate(in CurveInput) (CurveResult, error) {
	if err := in.Validate(); err != nil {
		return CurveResult{}, err
	}
	model, err := aashto.Lookup(in.Units)
	if err != nil {
		return CurveResult{}, err
	}
	in.Units = model.Name()

	radius := model.Radius(in.DesignSpeed, in.Superelevation, in.SideFriction)
	if !isFinite(radius) || radius <= 0 {
		return CurveResult{}, fieldError("radius", radius,
			"out of range; check design_speed against side_friction+superelevation")
	}
	circumference := radius * 2 * math.Pi
	// Always round up: a curve shorter than the minimum is unsafe.
	length := math.Ceil(circumference * (in.AngleDegrees / maxDegrees))
	if !isFinite(length) {
		return CurveResult{}, fieldError("length", length, "out of range; design_speed too high")
	}
	lengthMeters := model.ToMeters(length)
	units := math.Ceil(lengthMeters / GridUnitMeters)
	if units >= float64(math.MaxInt) {
		return CurveResult{}, fieldError("grid_units", units, "exceeds the largest representable grid count")
	}
	gridUnits := int(units)

	return CurveResult{
		Input:         in,
		Radius:        radius,
		Circumference: circumference,
		Length:        length,
		LengthMeters:  lengthMeters,
		GridUnits:     gridUnits,
	}, nil
}

// RunJSON is the entry point for the WASM target. It accepts a JSON-encoded
// CurveInput, where omitted fields take their defaults, and returns a
// JSON-encoded CurveResult.
func RunJSON(jsonInput string) (string, error) {
	input := DefaultInput()
	dec := json.NewDecoder(bytes.NewReader([]byte(jsonInput)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return "", fmt.Errorf("invalid input JSON: %w", err)
	}

	result, err := Calculate(input)
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(result)
	if err != nil {
		return "", fmt.Errorf("marshaling output: %w", err)
	}
	return string(out), nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
