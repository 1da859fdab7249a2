package engine

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteRecord_Metric(t *testing.T) {
	t.Parallel()

	result, err := Calculate(CurveInput{AngleDegrees: 90, DesignSpeed: 50, SideFriction: 0.14, Units: "metric"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, result.WriteRecord(&buf))

	want := "MINIMUM (u):  28\n" +
		"angle (deg):  90\n" +
		"speed (kmph): 50\n" +
		"radius (m):   140.607424071991\n" +
		"length (m):   221\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteRecord_ImperialLabels(t *testing.T) {
	t.Parallel()

	result, err := Calculate(CurveInput{AngleDegrees: 90, DesignSpeed: 60, SideFriction: 0.14, Units: "imperial"})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, result.WriteRecord(&buf))

	out := buf.String()
	assert.Contains(t, out, "MINIMUM (u):")
	assert.Contains(t, out, "speed (mph):")
	assert.Contains(t, out, "radius (ft):")
	assert.Regexp(t, `length \(ft\): +2693\n`, out)
}

func TestWriteRecord_UnknownUnits(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := CurveResult{Input: CurveInput{Units: "furlongs"}}.WriteRecord(&buf)
	require.Error(t, err)
	assert.Empty(t, buf.String())
}
