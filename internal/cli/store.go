package cli

import (
	"errors"
	"fmt"

	"github.com/landviz/parcelcore/internal/config"
	"github.com/landviz/parcelcore/internal/storage"
	"github.com/landviz/parcelcore/pkg/core"
	"github.com/spf13/cobra"
)

// withStore opens the configured backend, runs fn and closes the backend.
func (a *app) withStore(fn func(storage.Backend) error) (err error) {
	cfg := config.GetStorageConfig()
	b, err := a.newStore(cfg)
	if err != nil {
		return err
	}
	if err := b.Init(); err != nil {
		_ = b.Close()
		return fmt.Errorf("failed to initialize %s storage: %w", cfg.Type, err)
	}
	defer func() {
		if cerr := b.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s storage: %w", cfg.Type, cerr)
		}
	}()

	a.logger.Debug("Opened storage", "type", cfg.Type)
	return fn(b)
}

func (a *app) saveCommand() *cobra.Command {
	var origin string
	cmd := &cobra.Command{
		Use:   "save [shapes.json|-]",
		Short: "Measure shapes and store them as parcels",
		Long: `save measures every shape and stores it with its display measurements.
Shapes without an ID get a random one. Saving an existing ID replaces it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shapes, err := readShapes(cmd, args)
			if err != nil {
				return err
			}
			if shapes, err = projectShapes(shapes, origin); err != nil {
				return err
			}
			assignIDs(shapes)

			savedAt := a.now().UTC()
			parcels := make([]core.Parcel, 0, len(shapes))
			for _, s := range shapes {
				m, err := a.measure(s)
				if err != nil {
					return err
				}
				parcels = append(parcels, core.Parcel{Shape: s, Measurements: m.Summary(), SavedAt: savedAt})
			}

			err = a.withStore(func(b storage.Backend) error {
				for _, p := range parcels {
					if err := b.SaveParcel(p); err != nil {
						return err
					}
					a.logger.Info("Saved parcel", "id", p.Shape.ID, "area", p.Measurements.Area.SquareMeters)
				}
				return nil
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd, parcels)
		},
	}
	addOriginFlag(cmd, &origin)
	return cmd
}

func (a *app) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print all stored parcels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.withStore(func(b storage.Backend) error {
				parcels, err := b.ListParcels()
				if err != nil {
					return err
				}
				return writeJSON(cmd, parcels)
			})
		},
	}
}

func (a *app) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove a stored parcel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return a.withStore(func(b storage.Backend) error {
				err := b.DeleteParcel(id)
				if errors.Is(err, storage.ErrNotFound) {
					return fmt.Errorf("parcel %q: %w", id, err)
				}
				if err != nil {
					return err
				}
				a.logger.Info("Deleted parcel", "id", id)
				return nil
			})
		},
	}
}
