// internal/storage/factory.go
package storage

import (
	"fmt"

	"github.com/landviz/parcelcore/internal/config"
	"github.com/landviz/parcelcore/internal/database"
	gormstorage "github.com/landviz/parcelcore/internal/storage/gorm"
	"github.com/landviz/parcelcore/internal/storage/memory"
	"github.com/rs/zerolog"
)

// NewBackend creates a storage backend based on configuration. Database
// backends are connected and migrated before they are returned; call Init on
// the result before use.
func NewBackend(cfg config.StorageConfig, log zerolog.Logger) (Backend, error) {
	switch cfg.Type {
	case "postgres", "sqlite":
		mgr := database.NewManager(log)
		if err := mgr.Connect(cfg.Type, cfg.SQLite.Path); err != nil {
			return nil, err
		}
		if err := mgr.Setup(); err != nil {
			_ = mgr.Close()
			return nil, err
		}
		return gormstorage.New(mgr.DB, mgr.Close), nil
	case "memory":
		return memory.New(cfg.Memory), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", cfg.Type)
	}
}
