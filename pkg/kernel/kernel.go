// Package kernel defines the geometry kernel the satellite is authored in.
// Parts are placed as solids; the mesh builder only ever reads back their
// axis-aligned bounds, so the interface stays small.
package kernel

// Solid is an opaque handle to a geometry kernel solid.
// Implementations wrap their internal representation.
type Solid interface {
	// BoundingBox returns the axis-aligned bounding box.
	BoundingBox() (min, max [3]float64)
}

// Kernel is the abstract geometry kernel interface.
type Kernel interface {
	// Box returns a box of the given size with its minimum corner at the origin.
	Box(x, y, z float64) Solid

	// Translate moves a solid by (x, y, z).
	Translate(s Solid, x, y, z float64) Solid

	// Union joins solids into one. The bounds of the result enclose every input.
	Union(solids ...Solid) Solid
}
