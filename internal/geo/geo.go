package geo

import (
	"fmt"
	"math"

	"github.com/landviz/parcelcore/internal/transform"
	"github.com/landviz/parcelcore/pkg/core"
	geom "github.com/peterstace/simplefeatures/geom"
)

// circleSegments is the number of ring vertices used to approximate a circle.
const circleSegments = 64

// ShapeGeometry converts a shape into a simplefeatures geometry in the drawing
// plane. Closed shapes become polygons and open shapes line strings; rectangles
// are expanded to four corners and any rotation is applied. Shapes with too
// few points become empty geometries.
func ShapeGeometry(s core.Shape) (geom.Geometry, error) {
	if err := s.Validate(); err != nil {
		return geom.Geometry{}, err
	}

	if len(s.Points) < s.Type.MinPoints() {
		if s.Type.Closed() {
			return geom.Polygon{}.AsGeometry(), nil
		}
		return geom.LineString{}.AsGeometry(), nil
	}

	if s.Type == core.ShapeCircle {
		return polygon(circleRing(s.Points[0], s.Points[1]))
	}

	corners, err := transform.CurrentCorners(s)
	if err != nil {
		return geom.Geometry{}, err
	}
	var g geom.Geometry
	if s.Type.Closed() {
		g, err = polygon(corners)
	} else {
		g, err = lineString(corners)
	}
	if err != nil {
		return geom.Geometry{}, fmt.Errorf("failed to build %s geometry: %w", s.Type, err)
	}
	return g, nil
}

// ShapeWKT renders the shape geometry as well-known text.
func ShapeWKT(s core.Shape) (string, error) {
	g, err := ShapeGeometry(s)
	if err != nil {
		return "", fmt.Errorf("failed to build geometry for %q: %w", s.ID, err)
	}
	return g.AsText(), nil
}

// PlanarArea returns the float64 area computed by simplefeatures. It is an
// independent cross-check of the decimal engine, not a display value.
func PlanarArea(s core.Shape) (float64, error) {
	g, err := ShapeGeometry(s)
	if err != nil {
		return 0, err
	}
	if poly, ok := g.AsPolygon(); ok {
		return poly.Area(), nil
	}
	return 0, nil
}

// PlanarLength returns the boundary length (closed shapes) or path length
// (open shapes) computed by simplefeatures.
func PlanarLength(s core.Shape) (float64, error) {
	g, err := ShapeGeometry(s)
	if err != nil {
		return 0, err
	}
	if poly, ok := g.AsPolygon(); ok {
		return poly.ExteriorRing().Length(), nil
	}
	if ls, ok := g.AsLineString(); ok {
		return ls.Length(), nil
	}
	return 0, nil
}

func flatten(points []core.Point2D, closeRing bool) []float64 {
	flat := make([]float64, 0, 2*len(points)+2)
	for _, p := range points {
		flat = append(flat, p.X, p.Y)
	}
	if closeRing && len(points) > 0 && points[0] != points[len(points)-1] {
		flat = append(flat, points[0].X, points[0].Y)
	}
	return flat
}

// Collinear, zero-width, self-touching and zero-length outlines are valid
// parcels that measure as zero, so the library's simplicity checks are
// skipped. Finiteness is already checked by Shape.Validate.

func lineString(points []core.Point2D) (geom.Geometry, error) {
	ls, err := ring(points, false)
	if err != nil {
		return geom.Geometry{}, err
	}
	return ls.AsGeometry(), nil
}

func polygon(points []core.Point2D) (geom.Geometry, error) {
	outer, err := ring(points, true)
	if err != nil {
		return geom.Geometry{}, err
	}
	poly, err := geom.NewPolygon([]geom.LineString{outer}, geom.DisableAllValidations)
	if err != nil {
		return geom.Geometry{}, err
	}
	return poly.AsGeometry(), nil
}

func ring(points []core.Point2D, closeRing bool) (geom.LineString, error) {
	seq := geom.NewSequence(flatten(points, closeRing), geom.DimXY)
	return geom.NewLineString(seq, geom.DisableAllValidations)
}

func circleRing(center, edge core.Point2D) []core.Point2D {
	r := math.Hypot(edge.X-center.X, edge.Y-center.Y)
	ring := make([]core.Point2D, circleSegments)
	for i := range ring {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		ring[i] = core.Point2D{X: center.X + r*cos, Y: center.Y + r*sin}
	}
	return ring
}
