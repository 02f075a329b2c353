package transform

import (
	"math"

	"github.com/landviz/parcelcore/pkg/core"
)

// baseEdgeAngles are the handle angles of an unrotated rectangle, used when
// the current corners are not known.
var baseEdgeAngles = [4]float64{0, 90, 180, 270}

// HandleOrientation is the rotation to give a resize handle so it stays parallel to its edge.
type HandleOrientation struct {
	Radians float64 `json:"rotationRadians"`
	Degrees float64 `json:"rotationDegrees"`
}

// HandleOrientationFromEdge derives the orientation of the handle on edge
// edgeIndex from the current corner positions. The edge runs from
// corners[i] to corners[(i+1) mod 4] and its angle is atan2(Δy, Δx).
//
// The corners must already include any shape rotation; the result is never
// combined with a separately tracked rotation. With fewer than four corners
// the base angle 0, 90, 180 or 270 for edgeIndex mod 4 is returned.
func HandleOrientationFromEdge(edgeIndex int, corners []core.Point2D) (HandleOrientation, error) {
	if err := core.ValidatePoints(corners); err != nil {
		return HandleOrientation{}, err
	}
	return edgeOrientation(edgeIndex, corners), nil
}

func edgeOrientation(edgeIndex int, corners []core.Point2D) HandleOrientation {
	i := ((edgeIndex % 4) + 4) % 4
	if len(corners) < 4 {
		deg := baseEdgeAngles[i]
		return HandleOrientation{Radians: deg * math.Pi / 180, Degrees: deg}
	}
	from, to := corners[i], corners[(i+1)%4]
	rad := math.Atan2(to.Y-from.Y, to.X-from.X)
	return HandleOrientation{Radians: rad, Degrees: rad * 180 / math.Pi}
}

// NormalizeAngle maps any angle in degrees into [0, 180). Resize handles look
// the same after a half turn, so opposite directions share a value.
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 180)
	if a < 0 {
		a += 180
	}
	if a >= 180 {
		a = 0
	}
	return a
}

// Cursor is a CSS resize cursor name.
type Cursor string

const (
	CursorEW   Cursor = "ew-resize"
	CursorNS   Cursor = "ns-resize"
	CursorNESW Cursor = "nesw-resize"
	CursorNWSE Cursor = "nwse-resize"
)

// ResizeCursorFor picks the cursor for a handle whose edge runs at deg degrees.
func ResizeCursorFor(deg float64) Cursor {
	a := NormalizeAngle(deg)
	switch {
	case a <= 22.5 || a >= 157.5:
		return CursorEW
	case a >= 67.5 && a <= 112.5:
		return CursorNS
	case a < 67.5:
		return CursorNESW
	default:
		return CursorNWSE
	}
}

// HandleAxis names the scene axis along which a handle's long side lies.
type HandleAxis string

const (
	HandleAxisX HandleAxis = "x"
	HandleAxisZ HandleAxis = "z"
)

// HandleAxisFor reports whether an edge at deg degrees is closer to horizontal (X) or vertical (Z).
func HandleAxisFor(deg float64) HandleAxis {
	a := NormalizeAngle(deg)
	if a <= 45 || a >= 135 {
		return HandleAxisX
	}
	return HandleAxisZ
}

// Handle box sizes in scene units along the long and short sides.
const (
	handleLong  = 1.2
	handleShort = 0.4
)

// HandleDimensions returns the handle box size along the scene X and Z axes.
func HandleDimensions(axis HandleAxis) (x, z float64) {
	if axis == HandleAxisZ {
		return handleShort, handleLong
	}
	return handleLong, handleShort
}

// EdgeHandle describes the resize handle drawn on one rectangle edge.
type EdgeHandle struct {
	Edge        int               `json:"edge"`
	Position    core.Point2D      `json:"position"`
	Orientation HandleOrientation `json:"orientation"`
	Cursor      Cursor            `json:"cursor"`
	Axis        HandleAxis        `json:"axis"`
}

// EdgeHandles returns the four edge handles of a rectangle computed from its current corners.
// Shapes that do not resolve to four corners get no handles.
func EdgeHandles(s core.Shape) ([]EdgeHandle, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	corners := currentCorners(s)
	if s.Type != core.ShapeRectangle || len(corners) != 4 {
		return nil, nil
	}
	handles := make([]EdgeHandle, 4)
	for i := range handles {
		o := edgeOrientation(i, corners)
		a, b := corners[i], corners[(i+1)%4]
		handles[i] = EdgeHandle{
			Edge:        i,
			Position:    core.Point2D{X: midpoint(a.X, b.X), Y: midpoint(a.Y, b.Y)},
			Orientation: o,
			Cursor:      ResizeCursorFor(o.Degrees),
			Axis:        HandleAxisFor(o.Degrees),
		}
	}
	return handles, nil
}
