// Package mesh builds the polygonal surface mesh that gets exported:
// an ordered point list plus quad faces that reference points by index.
package mesh

import (
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/samber/lo"
)

// Quad is a four-sided face given as point indices, wound so that its
// normal points out of the solid it bounds.
type Quad [4]int

// PolyMesh is an indexed polygon mesh. A point's identity is its index in
// Points; faces refer to points only through those indices.
type PolyMesh struct {
	Points []v3.Vec
	Polys  []Quad
}

// New returns an empty mesh.
func New() *PolyMesh {
	return &PolyMesh{}
}

// AddPoint appends a point and returns its index.
func (m *PolyMesh) AddPoint(x, y, z float64) int {
	m.Points = append(m.Points, v3.Vec{X: x, Y: y, Z: z})
	return len(m.Points) - 1
}

// AddQuad appends a face built from four existing point indices.
func (m *PolyMesh) AddQuad(a, b, c, d int) {
	m.Polys = append(m.Polys, Quad{a, b, c, d})
}

// PointCount returns the number of points.
func (m *PolyMesh) PointCount() int {
	return len(m.Points)
}

// PolyCount returns the number of faces.
func (m *PolyMesh) PolyCount() int {
	return len(m.Polys)
}

// IsEmpty returns true if the mesh has no geometry.
func (m *PolyMesh) IsEmpty() bool {
	return len(m.Points) == 0
}

// Connectivity returns every face's indices concatenated in face order.
func (m *PolyMesh) Connectivity() []int {
	return lo.FlatMap(m.Polys, func(q Quad, _ int) []int {
		return q[:]
	})
}

// Offsets returns, for each face, the number of connectivity entries
// consumed up to and including that face.
func (m *PolyMesh) Offsets() []int {
	offsets := make([]int, len(m.Polys))
	n := 0
	for i, q := range m.Polys {
		n += len(q)
		offsets[i] = n
	}
	return offsets
}

// Bounds returns the component-wise minimum and maximum over all points.
// An empty mesh reports zero vectors.
func (m *PolyMesh) Bounds() (min, max v3.Vec) {
	if m.IsEmpty() {
		return v3.Vec{}, v3.Vec{}
	}
	min, max = m.Points[0], m.Points[0]
	for _, p := range m.Points[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return min, max
}
