// Package gormstorage implements the storage.Backend interface on top of GORM,
// for both the SQLite and Postgres dialects.
package gormstorage

import (
	"errors"
	"fmt"

	"github.com/landviz/parcelcore/internal/model"
	"github.com/landviz/parcelcore/internal/model/convert"
	"github.com/landviz/parcelcore/pkg/core"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Backend implements storage.Backend using GORM. Rows are keyed by shape ID.
type Backend struct {
	db    *gorm.DB
	close func() error
}

// New creates a new GORM storage backend. closeFn, if non-nil, is called by Close.
func New(db *gorm.DB, closeFn func() error) *Backend {
	return &Backend{db: db, close: closeFn}
}

// Init ensures the parcel table exists
func (b *Backend) Init() error {
	if b.db == nil {
		return fmt.Errorf("gorm backend has no database")
	}
	if err := b.db.AutoMigrate(model.DatabaseModels...); err != nil {
		return fmt.Errorf("failed to migrate parcel table: %w", err)
	}
	return nil
}

// Close releases the database connection
func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// SaveParcel upserts the parcel by shape ID
func (b *Backend) SaveParcel(p core.Parcel) error {
	if p.Shape.ID == "" {
		return core.ErrMissingShapeID
	}

	row, err := convert.CoreToParcel(p)
	if err != nil {
		return err
	}

	err = b.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "shape_id"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to save parcel %q: %w", p.Shape.ID, err)
	}
	return nil
}

// GetParcel loads the parcel stored under shapeID
func (b *Backend) GetParcel(shapeID string) (core.Parcel, error) {
	var row model.Parcel
	err := b.db.Where("shape_id = ?", shapeID).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return core.Parcel{}, core.ErrParcelNotFound
	}
	if err != nil {
		return core.Parcel{}, fmt.Errorf("failed to load parcel %q: %w", shapeID, err)
	}
	return convert.ParcelToCore(row)
}

// ListParcels returns all parcels ordered by save time, then shape ID
func (b *Backend) ListParcels() ([]core.Parcel, error) {
	var rows []model.Parcel
	if err := b.db.Order("saved_at, shape_id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list parcels: %w", err)
	}

	out := make([]core.Parcel, 0, len(rows))
	for _, row := range rows {
		p, err := convert.ParcelToCore(row)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// DeleteParcel removes the parcel stored under shapeID
func (b *Backend) DeleteParcel(shapeID string) error {
	res := b.db.Where("shape_id = ?", shapeID).Delete(&model.Parcel{})
	if res.Error != nil {
		return fmt.Errorf("failed to delete parcel %q: %w", shapeID, res.Error)
	}
	if res.RowsAffected == 0 {
		return core.ErrParcelNotFound
	}
	return nil
}
