package model

import (
	"time"

	"gorm.io/datatypes"
)

////////////////////////
// DATABASE STRUCTURES //
////////////////////////

// DatabaseModels is a list of all the structs exported here which represent tables in the database schema
var DatabaseModels = []interface{}{
	&Parcel{},
}

// Parcel is a saved shape with the measurements shown for it at save time.
// Centroid and areas are stored both as display strings and as numbers so
// they can be sorted and filtered in SQL.
type Parcel struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	ShapeID   string         `json:"shapeId" gorm:"size:64;uniqueIndex:idx_parcel_shape_id"`
	ShapeType string         `json:"shapeType" gorm:"size:16;index:idx_parcel_shape_type"`
	Name      string         `json:"name" gorm:"size:255"`
	Color     string         `json:"color" gorm:"size:32"`
	Elevation float64        `json:"elevation"`
	Points    datatypes.JSON `json:"points"`
	Rotation  datatypes.JSON `json:"rotation"`
	WKT       string         `json:"wkt"`

	AreaSquareMeters string  `json:"areaSquareMeters" gorm:"size:64"`
	AreaSquareFeet   string  `json:"areaSquareFeet" gorm:"size:64"`
	AreaAcres        string  `json:"areaAcres" gorm:"size:64"`
	AreaHectares     string  `json:"areaHectares" gorm:"size:64"`
	PerimeterMeters  string  `json:"perimeterMeters" gorm:"size:64"`
	PerimeterFeet    string  `json:"perimeterFeet" gorm:"size:64"`
	AreaValue        float64 `json:"areaValue" gorm:"index:idx_parcel_area"`
	CentroidX        float64 `json:"centroidX"`
	CentroidY        float64 `json:"centroidY"`

	SavedAt time.Time `json:"savedAt" gorm:"index:idx_parcel_saved_at"`
}

func (*Parcel) TableName() string {
	return "parcels"
}
