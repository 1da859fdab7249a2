package engine

import (
	"github.com/cxd309/curve-engine/internal/aashto"
)

// GridUnitMeters is the real-world size of one simulation grid square.
const GridUnitMeters = 8 // squares are 8m x 8m

// Defaults applied to any CurveInput field the caller leaves out.
const (
	DefaultAngleDegrees   = 55
	DefaultDesignSpeed    = 100
	DefaultSideFriction   = 0.14
	DefaultSuperelevation = 0
	DefaultUnits          = aashto.MetricName
)

// CurveInput is the JSON-serialisable description of a horizontal curve.
type CurveInput struct {
	AngleDegrees   float64 `json:"angle_deg"`      // sweep angle, degrees in (0, 360]
	DesignSpeed    float64 `json:"design_speed"`   // km/h (metric) or mph (imperial)
	SideFriction   float64 `json:"side_friction"`  // f, dimensionless
	Superelevation float64 `json:"superelevation"` // e, dimensionless
	Units          string  `json:"units"`          // "metric" or "imperial"
}

// DefaultInput returns a CurveInput populated with the documented defaults.
func DefaultInput() CurveInput {
	return CurveInput{
		AngleDegrees:   DefaultAngleDegrees,
		DesignSpeed:    DefaultDesignSpeed,
		SideFriction:   DefaultSideFriction,
		Superelevation: DefaultSuperelevation,
		Units:          DefaultUnits,
	}
}

// CurveResult is the complete output of a curve calculation.
// Lengths are in the unit system of Input.Units unless suffixed otherwise.
type CurveResult struct {
	Input         CurveInput `json:"input"`
	Radius        float64    `json:"radius"`        // unrounded
	Circumference float64    `json:"circumference"` // 2πR
	Length        float64    `json:"length"`        // arc length, rounded up
	LengthMeters  float64    `json:"length_m"`
	GridUnits     int        `json:"grid_units"` // rounded up
}
