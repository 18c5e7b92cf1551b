package mesh

import (
	"fmt"
	"math"

	"github.com/chazu/thermalmesh/pkg/kernel"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Part is a box-shaped component placed by its minimum corner.
type Part struct {
	Name string
	Size v3.Vec
	At   v3.Vec
}

// Assembly is the result of placing parts in a kernel and meshing them.
type Assembly struct {
	Mesh     *PolyMesh
	Parts    []Range
	Envelope kernel.Solid
}

// Assemble places each part as a kernel solid and appends its bounds to a
// new mesh as a box, in the order given.
func Assemble(k kernel.Kernel, parts []Part) *Assembly {
	a := &Assembly{Mesh: New()}
	solids := make([]kernel.Solid, 0, len(parts))

	for _, p := range parts {
		s := k.Translate(k.Box(p.Size.X, p.Size.Y, p.Size.Z), p.At.X, p.At.Y, p.At.Z)
		solids = append(solids, s)

		min, max := s.BoundingBox()
		r := a.Mesh.AddBox(p.Name, fromArray(min), fromArray(max))
		a.Parts = append(a.Parts, r)
	}

	if len(solids) > 0 {
		a.Envelope = k.Union(solids...)
	}
	return a
}

// envelopeTolerance absorbs rounding in the kernel's bounding boxes.
const envelopeTolerance = 1e-9

// Check validates the mesh indices and confirms that the mesh spans the
// same region as the union of the placed solids.
func (a *Assembly) Check() error {
	if err := a.Mesh.Validate(); err != nil {
		return err
	}
	if a.Envelope == nil {
		return nil
	}

	wantMin, wantMax := a.Envelope.BoundingBox()
	gotMin, gotMax := a.Mesh.Bounds()
	got := [2][3]float64{toArray(gotMin), toArray(gotMax)}
	want := [2][3]float64{wantMin, wantMax}
	for i := range got {
		for j := 0; j < 3; j++ {
			if math.Abs(got[i][j]-want[i][j]) > envelopeTolerance {
				return fmt.Errorf("mesh: bounds %v..%v do not match assembly envelope %v..%v",
					got[0], got[1], want[0], want[1])
			}
		}
	}
	return nil
}

func fromArray(a [3]float64) v3.Vec {
	return v3.Vec{X: a[0], Y: a[1], Z: a[2]}
}

func toArray(v v3.Vec) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
