package aashto

const (
	// MetricName is the JSON discriminator string for the Metric model.
	MetricName = "metric"
	// ImperialName is the JSON discriminator string for the Imperial model.
	ImperialName = "imperial"

	// RadiusConstantMetric is C for speed in km/h and radius in metres.
	RadiusConstantMetric = 127
	// RadiusConstantImperial is C for speed in mph and radius in feet.
	RadiusConstantImperial = 15

	// MetersPerFoot is the international foot.
	MetersPerFoot = 0.3048
)

// Metric takes design speed in km/h and yields lengths in metres.
//
// JSON discriminator: "units": "metric"
type Metric struct{}

func (Metric) Name() string { return MetricName }
func (Metric) Constant() float64 { return RadiusConstantMetric }
func (Metric) Radius(v, e, f float64) float64 { return radius(RadiusConstantMetric, v, e, f) }
func (Metric) ToMeters(length float64) float64 { return length }
func (Metric) SpeedUnit() string { return "kmph" }
func (Metric) LengthUnit() string { return "m" }

// Imperial takes design speed in mph and yields lengths in feet.
//
// JSON discriminator: "units": "imperial"
type Imperial struct{}

func (Imperial) Name() string { return ImperialName }
func (Imperial) Constant() float64 { return RadiusConstantImperial }
func (Imperial) Radius(v, e, f float64) float64 { return radius(RadiusConstantImperial, v, e, f) }
func (Imperial) ToMeters(length float64) float64 { return length * MetersPerFoot }
func (Imperial) SpeedUnit() string { return "mph" }
func (Imperial) LengthUnit() string { return "ft" }
