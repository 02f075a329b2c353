package core

// BoundingBox is the axis-aligned extent of a point set.
// CenterX and CenterY are the midpoints of the extremes, not the centroid.
type BoundingBox struct {
	MinX    float64 `json:"minX"`
	MaxX    float64 `json:"maxX"`
	MinY    float64 `json:"minY"`
	MaxY    float64 `json:"maxY"`
	CenterX float64 `json:"centerX"`
	CenterY float64 `json:"centerY"`
}

// Width returns MaxX - MinX.
func (b BoundingBox) Width() float64 {
	return b.MaxX - b.MinX
}

// Height returns MaxY - MinY.
func (b BoundingBox) Height() float64 {
	return b.MaxY - b.MinY
}

// Center returns the box center as a point.
func (b BoundingBox) Center() Point2D {
	return Point2D{X: b.CenterX, Y: b.CenterY}
}
