package adapters

// A second illustration of the same pattern: wrapping a component that
// measures in meters with an adapter that reports imperial units.

const (
	feetPerMeter  = 3.28084
	metersPerMile = 1609.344
)

// ImperialSource is the interface the client code expects: distances in
// imperial units.
type ImperialSource interface {
	DistanceFeet() float64
	DistanceMiles() float64
}

// MetricSource is the existing, incompatible interface: it only speaks
// meters.
type MetricSource interface {
	DistanceMeters() float64
}

// MetricSensor is a concrete MetricSource with a fixed reading.
type MetricSensor struct {
	Meters float64
}

// DistanceMeters returns the sensor's reading in meters.
func (s MetricSensor) DistanceMeters() float64 {
	return s.Meters
}

// ImperialAdapter exposes a MetricSource through the ImperialSource
// interface. It is a pure view: conversions are computed per call from
// the wrapped source, never cached.
type ImperialAdapter struct {
	source MetricSource
}

var _ ImperialSource = (*ImperialAdapter)(nil)

// NewImperialAdapter creates an adapter around the given metric source.
func NewImperialAdapter(source MetricSource) *ImperialAdapter {
	return &ImperialAdapter{source: source}
}

// DistanceFeet returns the wrapped source's distance converted to feet.
func (a *ImperialAdapter) DistanceFeet() float64 {
	return a.source.DistanceMeters() * feetPerMeter
}

// DistanceMiles returns the wrapped source's distance converted to miles.
func (a *ImperialAdapter) DistanceMiles() float64 {
	return a.source.DistanceMeters() / metersPerMile
}
