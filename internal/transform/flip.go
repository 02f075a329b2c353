package transform

import (
	"fmt"
	"strings"

	"github.com/landviz/parcelcore/pkg/core"
)

// FlipHorizontal mirrors every X about the bounding-box center, keeping Y, order and count.
func FlipHorizontal(points []core.Point2D) ([]core.Point2D, error) {
	if err := core.ValidatePoints(points); err != nil {
		return nil, err
	}
	return flipX(points, bounds(points)), nil
}

// FlipVertical mirrors every Y about the bounding-box center, keeping X, order and count.
func FlipVertical(points []core.Point2D) ([]core.Point2D, error) {
	if err := core.ValidatePoints(points); err != nil {
		return nil, err
	}
	return flipY(points, bounds(points)), nil
}

func flipX(points []core.Point2D, b core.BoundingBox) []core.Point2D {
	out := make([]core.Point2D, len(points))
	for i, p := range points {
		out[i] = core.Point2D{X: mirror(p.X, b.MinX, b.MaxX), Y: p.Y}
	}
	return out
}

func flipY(points []core.Point2D, b core.BoundingBox) []core.Point2D {
	out := make([]core.Point2D, len(points))
	for i, p := range points {
		out[i] = core.Point2D{X: p.X, Y: mirror(p.Y, b.MinY, b.MaxY)}
	}
	return out
}

// mirror reflects v about the midpoint of [lo, hi], i.e. 2*center - v.
// Extremes map onto each other exactly, so the box is unchanged by a flip.
func mirror(v, lo, hi float64) float64 {
	switch v {
	case lo:
		return hi
	case hi:
		return lo
	}
	m := midpoint(lo, hi)
	return m + (m - v)
}

// FlipShape returns a copy of s mirrored along the given axis.
func FlipShape(s core.Shape, axis Axis) (core.Shape, error) {
	if err := s.Validate(); err != nil {
		return core.Shape{}, err
	}

	b := bounds(s.Points)
	out := s
	if axis == AxisVertical {
		out.Points = flipY(s.Points, b)
	} else {
		out.Points = flipX(s.Points, b)
	}
	if s.Rotation != nil {
		// Mirroring reverses the sense of rotation and moves its pivot with the points.
		r := *s.Rotation
		r.Angle = -r.Angle
		if axis == AxisVertical {
			r.Center.Y = mirror(r.Center.Y, b.MinY, b.MaxY)
		} else {
			r.Center.X = mirror(r.Center.X, b.MinX, b.MaxX)
		}
		out.Rotation = &r
	}
	return out, nil
}

// Axis selects the mirroring direction of FlipShape.
type Axis string

const (
	AxisHorizontal Axis = "horizontal"
	AxisVertical   Axis = "vertical"
)

// ParseAxis converts an axis name into an Axis. Case is ignored.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h", "x":
		return AxisHorizontal, nil
	case "vertical", "v", "y":
		return AxisVertical, nil
	}
	return "", fmt.Errorf("unknown flip axis %q", s)
}
