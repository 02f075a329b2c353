// internal/storage/memory/export.go
package memory

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/landviz/parcelcore/pkg/core"
)

// ExportVersion is written into every export so readers can detect format changes
const ExportVersion = 1

// ParcelExport is the root JSON structure
type ParcelExport struct {
	Version    int           `json:"version"`
	ExportedAt time.Time     `json:"exportedAt"`
	Parcels    []core.Parcel `json:"parcels"`
}

func (b *Backend) defaultPath() string {
	name := "parcels.json"
	if b.cfg.CompressOutput {
		name += ".gz"
	}
	return filepath.Join(b.cfg.OutputDir, name)
}

// ExportPath returns the path of the last successful export
func (b *Backend) ExportPath() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lastExportPath
}

// Export writes all parcels to path. An empty path writes parcels.json (or
// parcels.json.gz when compression is enabled) in the output directory.
// Paths ending in .gz are always gzipped.
func (b *Backend) Export(path string) error {
	if path == "" {
		path = b.defaultPath()
	}

	b.mu.RLock()
	export := ParcelExport{
		Version:    ExportVersion,
		ExportedAt: time.Now().UTC(),
		Parcels:    b.sorted(),
	}
	b.mu.RUnlock()

	// Ensure output directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	if err := writeExport(path, export); err != nil {
		return err
	}

	b.mu.Lock()
	b.lastExportPath = path
	b.mu.Unlock()
	return nil
}

// load replaces the backend contents with the export at path. A missing file is not an error.
func (b *Backend) load(path string) error {
	export, err := readExport(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.parcels = make(map[string]core.Parcel, len(export.Parcels))
	for _, p := range export.Parcels {
		b.parcels[p.Shape.ID] = p
	}
	return nil
}

func writeExport(path string, data ParcelExport) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if !strings.HasSuffix(path, ".gz") {
		encoder := json.NewEncoder(f)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode export: %w", err)
		}
		return nil
	}

	gzWriter := gzip.NewWriter(f)
	if err := json.NewEncoder(gzWriter).Encode(data); err != nil {
		_ = gzWriter.Close()
		return fmt.Errorf("failed to encode export: %w", err)
	}
	if err := gzWriter.Close(); err != nil {
		return fmt.Errorf("failed to flush gzip export: %w", err)
	}
	return nil
}

func readExport(path string) (ParcelExport, error) {
	var export ParcelExport

	f, err := os.Open(path)
	if err != nil {
		return export, err
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gzReader, err := gzip.NewReader(f)
		if err != nil {
			return export, fmt.Errorf("failed to open gzip export %s: %w", path, err)
		}
		defer gzReader.Close()
		r = gzReader
	}

	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return export, fmt.Errorf("failed to decode export %s: %w", path, err)
	}
	return export, nil
}
