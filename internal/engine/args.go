package engine

import (
	"fmt"
	"strconv"
)

// argFields lists the positional arguments in order, by the field they set.
var argFields = []struct {
	name string
	set  func(*CurveInput, float64)
}{
	{"angle_deg", func(in *CurveInput, v float64) { in.AngleDegrees = v }},
	{"design_speed", func(in *CurveInput, v float64) { in.DesignSpeed = v }},
	{"side_friction", func(in *CurveInput, v float64) { in.SideFriction = v }},
	{"superelevation", func(in *CurveInput, v float64) { in.Superelevation = v }},
}

// ParseArgs builds a metric CurveInput from positional arguments
//
//	[angleDegrees] [designSpeed] [sideFrictionFactor] [superelevationRate]
//
// Missing trailing arguments keep their defaults. The first argument that is
// not a decimal number is reported as a *FieldError; the result is not validated.
func ParseArgs(args []string) (CurveInput, error) {
	in := DefaultInput()
	if len(args) > len(argFields) {
		return in, fmt.Errorf("%w: got %d, want at most %d", ErrTooManyArgs, len(args), len(argFields))
	}
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return in, fieldError(argFields[i].name, strconv.Quote(arg), "not a decimal number")
		}
		argFields[i].set(&in, v)
	}
	return in, nil
}
