package cli

import (
	"fmt"

	"github.com/landviz/parcelcore/internal/geo"
	"github.com/landviz/parcelcore/internal/measure"
	"github.com/landviz/parcelcore/pkg/core"
	"github.com/spf13/cobra"
)

// shapeMeasurement is one entry of the measure command output
type shapeMeasurement struct {
	ID           string                  `json:"id"`
	Type         core.ShapeType          `json:"type"`
	Name         string                  `json:"name,omitempty"`
	Degenerate   bool                    `json:"degenerate"`
	Measurements core.MeasurementSummary `json:"measurements"`
}

func (a *app) measureCommand() *cobra.Command {
	var origin string
	cmd := &cobra.Command{
		Use:   "measure [shapes.json|-]",
		Short: "Print area, perimeter and centroid of each shape",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shapes, err := readShapes(cmd, args)
			if err != nil {
				return err
			}
			if shapes, err = projectShapes(shapes, origin); err != nil {
				return err
			}

			out := make([]shapeMeasurement, 0, len(shapes))
			for _, s := range shapes {
				m, err := a.measure(s)
				if err != nil {
					return err
				}
				out = append(out, shapeMeasurement{
					ID:           s.ID,
					Type:         s.Type,
					Name:         s.Name,
					Degenerate:   m.Degenerate,
					Measurements: m.Summary(),
				})
			}
			a.logger.Debug("Measured shapes", "count", len(out))
			return writeJSON(cmd, out)
		},
	}
	addOriginFlag(cmd, &origin)
	return cmd
}

func (a *app) areaCommand() *cobra.Command {
	var (
		points string
		open   bool
	)
	cmd := &cobra.Command{
		Use:   "area",
		Short: "Print the area and perimeter of a point list",
		Long: `area measures a bare point list given as --points '[[x1,y1],[x2,y2],...]'.
The perimeter includes the closing edge unless --open is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pts, err := geo.ParsePoints(points)
			if err != nil {
				return err
			}
			area, err := measure.PolygonArea(pts)
			if err != nil {
				return err
			}
			length := measure.PolygonPerimeter
			if open {
				length = measure.PolylineLength
			}
			perimeter, err := length(pts)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "area=%s perimeter=%s\n", area, perimeter)
			return err
		},
	}
	cmd.Flags().StringVar(&points, "points", "[]", "JSON array of [x,y] pairs")
	cmd.Flags().BoolVar(&open, "open", false, "measure an open path instead of a closed ring")
	return cmd
}

func (a *app) accuracyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "accuracy",
		Short: "Print the measurement precision contract",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writeJSON(cmd, measure.ValidateAccuracy())
		},
	}
}
