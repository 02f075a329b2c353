// Package convert provides functions to convert between GORM models and core models
package convert

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/landviz/parcelcore/internal/geo"
	"github.com/landviz/parcelcore/internal/model"
	"github.com/landviz/parcelcore/pkg/core"
	"gorm.io/datatypes"
)

// CoreToParcel converts a core.Parcel to a GORM model.Parcel.
// The shape geometry is also rendered as WKT for external GIS tools.
func CoreToParcel(p core.Parcel) (model.Parcel, error) {
	points := p.Shape.Points
	if points == nil {
		points = []core.Point2D{}
	}
	pointsJSON, err := json.Marshal(points)
	if err != nil {
		return model.Parcel{}, fmt.Errorf("failed to marshal points: %w", err)
	}

	rotationJSON := datatypes.JSON("null")
	if p.Shape.Rotation != nil {
		rotationJSON, err = json.Marshal(p.Shape.Rotation)
		if err != nil {
			return model.Parcel{}, fmt.Errorf("failed to marshal rotation: %w", err)
		}
	}

	wkt, err := geo.ShapeWKT(p.Shape)
	if err != nil {
		return model.Parcel{}, err
	}

	m := p.Measurements
	areaValue, _ := strconv.ParseFloat(m.Area.SquareMeters, 64)

	return model.Parcel{
		ShapeID:          p.Shape.ID,
		ShapeType:        string(p.Shape.Type),
		Name:             p.Shape.Name,
		Color:            p.Shape.Color,
		Elevation:        p.Shape.Elevation,
		Points:           datatypes.JSON(pointsJSON),
		Rotation:         rotationJSON,
		WKT:              wkt,
		AreaSquareMeters: m.Area.SquareMeters,
		AreaSquareFeet:   m.Area.SquareFeet,
		AreaAcres:        m.Area.Acres,
		AreaHectares:     m.Area.Hectares,
		PerimeterMeters:  m.Perimeter.Meters,
		PerimeterFeet:    m.Perimeter.Feet,
		AreaValue:        areaValue,
		CentroidX:        m.Centroid.X,
		CentroidY:        m.Centroid.Y,
		SavedAt:          p.SavedAt,
	}, nil
}

// ParcelToCore converts a GORM model.Parcel back to a core.Parcel.
func ParcelToCore(m model.Parcel) (core.Parcel, error) {
	var points []core.Point2D
	if len(m.Points) > 0 {
		if err := json.Unmarshal(m.Points, &points); err != nil {
			return core.Parcel{}, fmt.Errorf("failed to unmarshal points of %q: %w", m.ShapeID, err)
		}
	}

	var rotation *core.Rotation
	if len(m.Rotation) > 0 {
		if err := json.Unmarshal(m.Rotation, &rotation); err != nil {
			return core.Parcel{}, fmt.Errorf("failed to unmarshal rotation of %q: %w", m.ShapeID, err)
		}
	}

	return core.Parcel{
		Shape: core.Shape{
			ID:        m.ShapeID,
			Type:      core.ShapeType(m.ShapeType),
			Points:    points,
			Name:      m.Name,
			Color:     m.Color,
			Elevation: m.Elevation,
			Rotation:  rotation,
		},
		Measurements: core.MeasurementSummary{
			Area: core.AreaSummary{
				SquareMeters: m.AreaSquareMeters,
				SquareFeet:   m.AreaSquareFeet,
				Acres:        m.AreaAcres,
				Hectares:     m.AreaHectares,
			},
			Perimeter: core.PerimeterSummary{
				Meters: m.PerimeterMeters,
				Feet:   m.PerimeterFeet,
			},
			Centroid: core.Point2D{X: m.CentroidX, Y: m.CentroidY},
		},
		SavedAt: m.SavedAt,
	}, nil
}
