// Package transform implements the geometry edits used while interacting with
// a shape: bounding boxes, mirroring, corner canonicalization, rotation and
// resize-handle orientation.
//
// Every function returns new values and never modifies its input. Input with
// NaN or infinite coordinates is rejected with core.ErrInvalidGeometry.
package transform

import (
	"math"

	"github.com/landviz/parcelcore/pkg/core"
)

// BoundingBox returns the axis-aligned extent of points. Empty input yields the zero box.
func BoundingBox(points []core.Point2D) (core.BoundingBox, error) {
	if err := core.ValidatePoints(points); err != nil {
		return core.BoundingBox{}, err
	}
	return bounds(points), nil
}

// bounds is BoundingBox for points already known to be finite.
func bounds(points []core.Point2D) core.BoundingBox {
	if len(points) == 0 {
		return core.BoundingBox{}
	}
	minX, maxX := math.Inf(1), math.Inf(-1)
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, p := range points {
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return core.BoundingBox{
		MinX:    minX,
		MaxX:    maxX,
		MinY:    minY,
		MaxY:    maxY,
		CenterX: midpoint(minX, maxX),
		CenterY: midpoint(minY, maxY),
	}
}

// midpoint halves before adding so extremes near ±MaxFloat64 cannot overflow.
// The clamp covers subnormal halving. Argument order does not matter.
func midpoint(a, b float64) float64 {
	lo, hi := min(a, b), max(a, b)
	return min(max(lo/2+hi/2, lo), hi)
}

// RectanglePoints expands a two-corner bound into four corners wound
// bottom-left, bottom-right, top-right, top-left.
func RectanglePoints(minX, minY, maxX, maxY float64) ([]core.Point2D, error) {
	corners := rectangle(minX, minY, maxX, maxY)
	if err := core.ValidatePoints(corners); err != nil {
		return nil, err
	}
	return corners, nil
}

func rectangle(minX, minY, maxX, maxY float64) []core.Point2D {
	return []core.Point2D{
		{X: minX, Y: minY},
		{X: maxX, Y: minY},
		{X: maxX, Y: maxY},
		{X: minX, Y: maxY},
	}
}
