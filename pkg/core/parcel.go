// pkg/core/parcel.go
package core

import (
	"errors"
	"time"
)

var (
	// ErrParcelNotFound is returned when no parcel is stored under the requested shape ID
	ErrParcelNotFound = errors.New("parcel not found")
	// ErrMissingShapeID is returned when saving a parcel whose shape has no ID
	ErrMissingShapeID = errors.New("parcel shape has no ID")
)

// AreaSummary holds an area in every display unit, formatted to 2 decimals
type AreaSummary struct {
	SquareMeters string `json:"squareMeters"`
	SquareFeet   string `json:"squareFeet"`
	Acres        string `json:"acres"`
	Hectares     string `json:"hectares"`
}

// PerimeterSummary holds a perimeter in every display unit, formatted to 2 decimals
type PerimeterSummary struct {
	Meters string `json:"meters"`
	Feet   string `json:"feet"`
}

// MeasurementSummary is the display-grade measurement record shown next to a shape
type MeasurementSummary struct {
	Area      AreaSummary      `json:"area"`
	Perimeter PerimeterSummary `json:"perimeter"`
	Centroid  Point2D          `json:"centroid"`
}

// Parcel is a shape persisted together with the measurements computed when it was saved
type Parcel struct {
	Shape        Shape              `json:"shape"`
	Measurements MeasurementSummary `json:"measurements"`
	SavedAt      time.Time          `json:"savedAt"`
}
