// Package vtp writes a polygon mesh and one point scalar field as a VTK
// XML PolyData (.vtp) file with ASCII data arrays.
package vtp

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chazu/thermalmesh/pkg/mesh"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/samber/lo"
)

// declaration is written verbatim ahead of the root element.
const declaration = `<?xml version="1.0"?>` + "\n"

// File is the VTKFile root element.
type File struct {
	XMLName   xml.Name `xml:"VTKFile"`
	Type      string   `xml:"type,attr"`
	Version   string   `xml:"version,attr"`
	ByteOrder string   `xml:"byte_order,attr"`
	PolyData  PolyData `xml:"PolyData"`
}

// PolyData wraps the single piece of the dataset.
type PolyData struct {
	Piece Piece `xml:"Piece"`
}

// Piece holds all points, polygons and point data.
type Piece struct {
	NumberOfPoints int       `xml:"NumberOfPoints,attr"`
	NumberOfPolys  int       `xml:"NumberOfPolys,attr"`
	Points         Points    `xml:"Points"`
	Polys          Polys     `xml:"Polys"`
	PointData      PointData `xml:"PointData"`
}

// Points holds the coordinate array.
type Points struct {
	DataArray DataArray `xml:"DataArray"`
}

// Polys holds the connectivity and offsets arrays.
type Polys struct {
	DataArrays []DataArray `xml:"DataArray"`
}

// PointData holds per-point fields. Scalars names the active scalar field.
type PointData struct {
	Scalars    string      `xml:"Scalars,attr"`
	DataArrays []DataArray `xml:"DataArray"`
}

// DataArray is an ASCII-encoded array of numbers separated by spaces.
type DataArray struct {
	Type               string `xml:"type,attr"`
	Name               string `xml:"Name,attr,omitempty"`
	NumberOfComponents int    `xml:"NumberOfComponents,attr,omitempty"`
	Format             string `xml:"format,attr"`
	Values             string `xml:",chardata"`
}

// NewFile builds the document for m with field attached as the active
// point scalar named name. The field must have one value per point.
func NewFile(m *mesh.PolyMesh, name string, field []float64) (*File, error) {
	if len(field) != m.PointCount() {
		return nil, fmt.Errorf("vtp: field %q has %d values for %d points", name, len(field), m.PointCount())
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("vtp: %w", err)
	}

	return &File{
		Type:      "PolyData",
		Version:   "0.1",
		ByteOrder: "LittleEndian",
		PolyData: PolyData{Piece: Piece{
			NumberOfPoints: m.PointCount(),
			NumberOfPolys:  m.PolyCount(),
			Points: Points{DataArray: DataArray{
				Type:               "Float32",
				NumberOfComponents: 3,
				Format:             "ascii",
				Values:             FormatPoints(m.Points),
			}},
			Polys: Polys{DataArrays: []DataArray{
				{Type: "Int32", Name: "connectivity", Format: "ascii", Values: formatInts(m.Connectivity())},
				{Type: "Int32", Name: "offsets", Format: "ascii", Values: formatInts(m.Offsets())},
			}},
			PointData: PointData{
				Scalars: name,
				DataArrays: []DataArray{
					{Type: "Float32", Name: name, Format: "ascii", Values: FormatTemperatures(field)},
				},
			},
		}},
	}, nil
}

// Encode writes the XML declaration and the document to w.
func Encode(w io.Writer, f *File) error {
	if _, err := io.WriteString(w, declaration); err != nil {
		return fmt.Errorf("vtp: write declaration: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("vtp: encode: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("vtp: write trailer: %w", err)
	}
	return nil
}

// FormatPoints renders points as "x y z" triples using the shortest
// decimal form that round-trips each coordinate.
func FormatPoints(points []v3.Vec) string {
	return strings.Join(lo.Map(points, func(p v3.Vec, _ int) string {
		return formatCoord(p.X) + " " + formatCoord(p.Y) + " " + formatCoord(p.Z)
	}), " ")
}

// FormatTemperatures renders a scalar field in fixed point with two decimals.
func FormatTemperatures(field []float64) string {
	return strings.Join(lo.Map(field, func(t float64, _ int) string {
		return strconv.FormatFloat(t, 'f', 2, 64)
	}), " ")
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatInts(values []int) string {
	return strings.Join(lo.Map(values, func(v int, _ int) string {
		return strconv.Itoa(v)
	}), " ")
}
