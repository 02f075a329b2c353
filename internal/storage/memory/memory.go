// internal/storage/memory/memory.go
package memory

import (
	"sort"
	"sync"

	"github.com/landviz/parcelcore/internal/config"
	"github.com/landviz/parcelcore/pkg/core"
)

// Backend stores parcels in memory and exports them to JSON. When an output
// directory is configured, Init loads the previous export and Close rewrites it.
type Backend struct {
	cfg     config.MemoryConfig
	parcels map[string]core.Parcel // keyed by shape ID

	lastExportPath string
	mu             sync.RWMutex
}

// New creates a new memory backend
func New(cfg config.MemoryConfig) *Backend {
	return &Backend{
		cfg:     cfg,
		parcels: make(map[string]core.Parcel),
	}
}

// Init loads the previous export, if any
func (b *Backend) Init() error {
	if b.cfg.OutputDir == "" {
		return nil
	}
	return b.load(b.defaultPath())
}

// Close exports the current contents when an output directory is configured
func (b *Backend) Close() error {
	if b.cfg.OutputDir == "" {
		return nil
	}
	return b.Export("")
}

// SaveParcel stores the parcel, replacing any parcel with the same shape ID
func (b *Backend) SaveParcel(p core.Parcel) error {
	if p.Shape.ID == "" {
		return core.ErrMissingShapeID
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.parcels[p.Shape.ID] = p
	return nil
}

// GetParcel returns the parcel stored under shapeID
func (b *Backend) GetParcel(shapeID string) (core.Parcel, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	p, ok := b.parcels[shapeID]
	if !ok {
		return core.Parcel{}, core.ErrParcelNotFound
	}
	return p, nil
}

// ListParcels returns all parcels ordered by save time, then shape ID
func (b *Backend) ListParcels() ([]core.Parcel, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.sorted(), nil
}

// DeleteParcel removes the parcel stored under shapeID
func (b *Backend) DeleteParcel(shapeID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.parcels[shapeID]; !ok {
		return core.ErrParcelNotFound
	}
	delete(b.parcels, shapeID)
	return nil
}

// sorted must be called with b.mu held
func (b *Backend) sorted() []core.Parcel {
	out := make([]core.Parcel, 0, len(b.parcels))
	for _, p := range b.parcels {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].SavedAt.Equal(out[j].SavedAt) {
			return out[i].SavedAt.Before(out[j].SavedAt)
		}
		return out[i].Shape.ID < out[j].Shape.ID
	})
	return out
}
