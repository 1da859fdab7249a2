package engine

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/cxd309/curve-engine/internal/aashto"
)

// WriteRecord writes the result as an aligned key-value record:
//
//	MINIMUM (u):  68
//	angle (deg):  55
//	speed (kmph): 100
//	radius (m):   562.429696287964
//	length (m):   540
func (r CurveResult) WriteRecord(w io.Writer) error {
	model, err := aashto.Lookup(r.Input.Units)
	if err != nil {
		return fmt.Errorf("writing record: %w", err)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
	rows := []struct{ label, value string }{
		{"MINIMUM (u)", strconv.Itoa(r.GridUnits)},
		{"angle (deg)", formatFloat(r.Input.AngleDegrees)},
		{"speed (" + model.SpeedUnit() + ")", formatFloat(r.Input.DesignSpeed)},
		{"radius (" + model.LengthUnit() + ")", formatFloat(r.Radius)},
		{"length (" + model.LengthUnit() + ")", formatFloat(r.Length)},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", row.label, row.value); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}
	return tw.Flush()
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
