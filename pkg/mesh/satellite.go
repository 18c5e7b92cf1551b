package mesh

import (
	"github.com/chazu/thermalmesh/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Satellite dimensions. The body is a cube centered on the origin; the two
// solar panels are thin plates running along X from each side of it.
const (
	bodyHalfExtent     = 1.0
	panelLength        = 6.0
	panelHalfWidth     = 1.0
	panelHalfThickness = 0.05
)

// SatelliteParts returns the body followed by the -X and +X panels.
func SatelliteParts() []Part {
	body := 2 * bodyHalfExtent
	panel := v3.Vec{X: panelLength, Y: 2 * panelHalfWidth, Z: 2 * panelHalfThickness}

	return []Part{
		{
			Name: "body",
			Size: v3.Vec{X: body, Y: body, Z: body},
			At:   v3.Vec{X: -bodyHalfExtent, Y: -bodyHalfExtent, Z: -bodyHalfExtent},
		},
		{
			Name: "panel-left",
			Size: panel,
			At:   v3.Vec{X: -bodyHalfExtent - panelLength, Y: -panelHalfWidth, Z: -panelHalfThickness},
		},
		{
			Name: "panel-right",
			Size: panel,
			At:   v3.Vec{X: bodyHalfExtent, Y: -panelHalfWidth, Z: -panelHalfThickness},
		},
	}
}

// Satellite assembles the fixed satellite shape in k.
func Satellite(k kernel.Kernel) *Assembly {
	return Assemble(k, SatelliteParts())
}
