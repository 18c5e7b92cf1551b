package mesh

import v3 "github.com/deadsy/sdfx/vec/v3"

// Range locates one part's points and faces inside the combined mesh.
type Range struct {
	Name       string
	FirstPoint int
	Points     int
	FirstPoly  int
	Polys      int
}

// boxFaces lists the six faces of a box in local corner numbering, in the
// order +Z, -Z, -Y, +Y, -X, +X. Corners 0-3 lie on the max-Z face and
// 4-7 repeat them on the min-Z face.
var boxFaces = [6]Quad{
	{0, 1, 2, 3},
	{5, 4, 7, 6},
	{4, 5, 1, 0},
	{3, 2, 6, 7},
	{4, 0, 3, 7},
	{1, 5, 6, 2},
}

// AddBox appends the 8 corners and 6 outward-facing quads of the
// axis-aligned box spanning min..max.
func (m *PolyMesh) AddBox(name string, min, max v3.Vec) Range {
	r := Range{Name: name, FirstPoint: len(m.Points), FirstPoly: len(m.Polys)}

	var c [8]int
	for i, z := range [2]float64{max.Z, min.Z} {
		base := i * 4
		c[base+0] = m.AddPoint(min.X, min.Y, z)
		c[base+1] = m.AddPoint(max.X, min.Y, z)
		c[base+2] = m.AddPoint(max.X, max.Y, z)
		c[base+3] = m.AddPoint(min.X, max.Y, z)
	}

	for _, f := range boxFaces {
		m.AddQuad(c[f[0]], c[f[1]], c[f[2]], c[f[3]])
	}

	r.Points = len(m.Points) - r.FirstPoint
	r.Polys = len(m.Polys) - r.FirstPoly
	return r
}
