// internal/storage/storage.go
package storage

import "github.com/landviz/parcelcore/pkg/core"

// ErrNotFound is returned by GetParcel and DeleteParcel for unknown shape IDs.
var ErrNotFound = core.ErrParcelNotFound

// Backend is the interface all parcel storage implementations must satisfy
type Backend interface {
	// Lifecycle
	Init() error
	Close() error

	// SaveParcel inserts the parcel or replaces the one stored under the same shape ID.
	SaveParcel(p core.Parcel) error
	GetParcel(shapeID string) (core.Parcel, error)
	// ListParcels returns every stored parcel ordered by save time, then shape ID.
	ListParcels() ([]core.Parcel, error)
	DeleteParcel(shapeID string) error
}

// Exporter is an optional interface for backends that write their contents to a file.
type Exporter interface {
	Export(path string) error
	ExportPath() string
}
