// pkg/core/shape.go
package core

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalidGeometry is returned when a shape or point set cannot be measured or transformed
var ErrInvalidGeometry = errors.New("invalid geometry provided")

// Point2D is a planar coordinate on the drawing plane.
// In the 3D scene Y maps to the depth axis; elevation is carried separately on Shape.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point2D{X: x, Y: y}.
func Pt(x, y float64) Point2D {
	return Point2D{X: x, Y: y}
}

// IsFinite reports whether both coordinates are finite numbers.
func (p Point2D) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// ShapeType identifies how a shape's point list is interpreted
type ShapeType string

const (
	ShapeRectangle ShapeType = "rectangle"
	ShapePolygon   ShapeType = "polygon"
	ShapeCircle    ShapeType = "circle"
	ShapeLine      ShapeType = "line"
	ShapePolyline  ShapeType = "polyline"
)

// ShapeTypes lists every supported shape type.
var ShapeTypes = []ShapeType{ShapeRectangle, ShapePolygon, ShapeCircle, ShapeLine, ShapePolyline}

// ParseShapeType converts a type name into a ShapeType. Matching is case-insensitive.
func ParseShapeType(s string) (ShapeType, error) {
	t := ShapeType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range ShapeTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: unknown shape type %q", ErrInvalidGeometry, s)
}

// Closed reports whether the shape's outline returns to its first point.
func (t ShapeType) Closed() bool {
	return t != ShapeLine && t != ShapePolyline
}

// MinPoints is the fewest points a shape of this type needs to have non-zero measurements.
func (t ShapeType) MinPoints() int {
	if t == ShapePolygon {
		return 3
	}
	return 2
}

// Rotation is a rotation applied on top of a shape's base geometry.
// Angle is in degrees, counter-clockwise, about Center.
type Rotation struct {
	Angle  float64 `json:"angle"`
	Center Point2D `json:"center"`
}

// Shape is a land parcel or annotation drawn on the 2D plane.
//
// Rectangles carry 2 opposite corners or 4 expanded corners after a resize.
// Circles carry the center followed by a point on the circumference.
type Shape struct {
	ID        string    `json:"id"`
	Type      ShapeType `json:"type"`
	Points    []Point2D `json:"points"`
	Name      string    `json:"name,omitempty"`
	Color     string    `json:"color,omitempty"`
	Elevation float64   `json:"elevation,omitempty"`
	Rotation  *Rotation `json:"rotation,omitempty"`
}

// ValidatePoints rejects point sets containing NaN or infinite coordinates.
func ValidatePoints(points []Point2D) error {
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("%w: point %d (%v, %v) is not finite", ErrInvalidGeometry, i, p.X, p.Y)
		}
	}
	return nil
}

// Validate checks the shape type, coordinate finiteness and the point-count rules of its type.
// Shapes with fewer points than their type needs are valid; they measure as zero.
func (s Shape) Validate() error {
	if _, err := ParseShapeType(string(s.Type)); err != nil {
		return err
	}
	if err := ValidatePoints(s.Points); err != nil {
		return err
	}
	if s.Rotation != nil {
		if math.IsNaN(s.Rotation.Angle) || math.IsInf(s.Rotation.Angle, 0) || !s.Rotation.Center.IsFinite() {
			return fmt.Errorf("%w: rotation is not finite", ErrInvalidGeometry)
		}
	}
	n := len(s.Points)
	switch s.Type {
	case ShapeCircle:
		if n > 2 {
			return fmt.Errorf("%w: circle needs center and edge point, got %d points", ErrInvalidGeometry, n)
		}
	case ShapeRectangle:
		if n > 2 && n != 4 {
			return fmt.Errorf("%w: rectangle needs 2 or 4 corners, got %d points", ErrInvalidGeometry, n)
		}
	}
	return nil
}
