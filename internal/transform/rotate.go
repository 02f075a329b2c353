package transform

import (
	"fmt"
	"math"

	"github.com/landviz/parcelcore/pkg/core"
)

// RotatePoints rotates points counter-clockwise by rot.Angle degrees about rot.Center.
func RotatePoints(points []core.Point2D, rot core.Rotation) ([]core.Point2D, error) {
	if err := core.ValidatePoints(points); err != nil {
		return nil, err
	}
	if err := core.ValidatePoints([]core.Point2D{rot.Center, {X: rot.Angle}}); err != nil {
		return nil, fmt.Errorf("rotation: %w", err)
	}
	return rotate(points, rot), nil
}

func rotate(points []core.Point2D, rot core.Rotation) []core.Point2D {
	out := make([]core.Point2D, len(points))
	if rot.Angle == 0 {
		copy(out, points)
		return out
	}
	sin, cos := math.Sincos(rot.Angle * math.Pi / 180)
	for i, p := range points {
		dx, dy := p.X-rot.Center.X, p.Y-rot.Center.Y
		out[i] = core.Point2D{
			X: rot.Center.X + dx*cos - dy*sin,
			Y: rot.Center.Y + dx*sin + dy*cos,
		}
	}
	return out
}

// CurrentCorners returns the four corners of a rectangle as they currently
// appear: two-corner rectangles are expanded with RectanglePoints and the
// shape's rotation, if any, is applied. Non-rectangles return their points rotated.
func CurrentCorners(s core.Shape) ([]core.Point2D, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return currentCorners(s), nil
}

func currentCorners(s core.Shape) []core.Point2D {
	pts := s.Points
	if s.Type == core.ShapeRectangle && len(pts) == 2 {
		b := bounds(pts)
		pts = rectangle(b.MinX, b.MinY, b.MaxX, b.MaxY)
	}
	if s.Rotation == nil {
		return append([]core.Point2D(nil), pts...)
	}
	return rotate(pts, *s.Rotation)
}
