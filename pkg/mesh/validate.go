package mesh

import "fmt"

// ValidationError describes a face that references a point outside the mesh.
type ValidationError struct {
	Poly    int
	Index   int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("mesh: poly %d: %s", e.Poly, e.Message)
}

// Validate checks that every face index refers to an existing point.
// It reports the first offending face.
func (m *PolyMesh) Validate() error {
	n := len(m.Points)
	for i, q := range m.Polys {
		for _, idx := range q {
			if idx < 0 || idx >= n {
				return &ValidationError{
					Poly:    i,
					Index:   idx,
					Message: fmt.Sprintf("point index %d out of range [0, %d)", idx, n),
				}
			}
		}
	}
	return nil
}
