package engine_test

import (
	"fmt"
	"os"

	"github.com/cxd309/curve-engine/internal/engine"
)

// ExampleCalculate computes the default curve: a 55° bend at 100 km/h.
func ExampleCalculate() {
	result, err := engine.Calculate(engine.DefaultInput())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("radius=%.1fm length=%vm units=%d\n", result.Radius, result.Length, result.GridUnits)
	// Output: radius=562.4m length=540m units=68
}

func ExampleCurveResult_WriteRecord() {
	in := engine.DefaultInput()
	in.AngleDegrees = 360
	in.DesignSpeed = 50

	result, err := engine.Calculate(in)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	if err := result.WriteRecord(os.Stdout); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// MINIMUM (u):  111
	// angle (deg):  360
	// speed (kmph): 50
	// radius (m):   140.607424071991
	// length (m):   884
}

func ExampleCalculate_invalid() {
	in := engine.DefaultInput()
	in.SideFriction = 0

	_, err := engine.Calculate(in)
	fmt.Println(err)
	// Output: invalid input side_friction+superelevation=0: must be greater than 0
}
