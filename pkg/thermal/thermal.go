// Package thermal assigns a simulated surface temperature to mesh points
// from the direction of the sun.
//
// The model is crude: a point's direction from the origin
// stands in for its surface normal, and panel points get a fixed offset
// on top of the linear lighting term.
package thermal

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Default model parameters, in kelvin where applicable.
const (
	DefaultMinTemp        = 200.0
	DefaultMaxTemp        = 350.0
	DefaultPanelThreshold = 2.0
	DefaultPanelBias      = 10.0
)

// DefaultSun is the un-normalized direction the sunlight comes from.
var DefaultSun = v3.Vec{X: 1, Y: 0.5, Z: 1}

// up is the direction used for the origin, which has none of its own.
var up = v3.Vec{X: 0, Y: 0, Z: 1}

// Model maps a point to a temperature.
type Model struct {
	// Sun is the unit vector towards the sun.
	Sun v3.Vec
	// MinTemp is reached by points facing directly away from the sun,
	// MaxTemp by points facing it.
	MinTemp float64
	MaxTemp float64
	// Points with |x| above PanelThreshold are panel points and are moved
	// PanelBias towards the hot or cold end depending on which side of the
	// terminator they are on.
	PanelThreshold float64
	PanelBias      float64
}

// NewModel returns a model lit from sun (normalized here) with the default
// temperature range and panel bias.
func NewModel(sun v3.Vec) Model {
	return Model{
		Sun:            sun.Normalize(),
		MinTemp:        DefaultMinTemp,
		MaxTemp:        DefaultMaxTemp,
		PanelThreshold: DefaultPanelThreshold,
		PanelBias:      DefaultPanelBias,
	}
}

// Default returns the model used for the exported satellite.
func Default() Model {
	return NewModel(DefaultSun)
}

// Direction returns p normalized, or +Z for the origin.
func Direction(p v3.Vec) v3.Vec {
	if p.Length() == 0 {
		return up
	}
	return p.Normalize()
}

// Temperature returns the temperature at p.
func (m Model) Temperature(p v3.Vec) float64 {
	dot := Direction(p).Dot(m.Sun)
	t := m.MinTemp + (dot+1)/2*(m.MaxTemp-m.MinTemp)

	if math.Abs(p.X) > m.PanelThreshold {
		if dot > 0 {
			t += m.PanelBias
		} else {
			t -= m.PanelBias
		}
	}
	return t
}

// Evaluate returns one temperature per point, aligned by index.
func (m Model) Evaluate(points []v3.Vec) []float64 {
	field := make([]float64, len(points))
	for i, p := range points {
		field[i] = m.Temperature(p)
	}
	return field
}
