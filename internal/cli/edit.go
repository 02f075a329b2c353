package cli

import (
	"github.com/landviz/parcelcore/internal/geo"
	"github.com/landviz/parcelcore/internal/transform"
	"github.com/spf13/cobra"
)

// shapeHandles is one entry of the handles command output
type shapeHandles struct {
	ID      string                 `json:"id"`
	Handles []transform.EdgeHandle `json:"handles"`
}

// shapeWKT is one entry of the wkt command output
type shapeWKT struct {
	ID  string `json:"id"`
	WKT string `json:"wkt"`
}

func (a *app) flipCommand() *cobra.Command {
	var axisName string
	cmd := &cobra.Command{
		Use:   "flip [shapes.json|-]",
		Short: "Mirror each shape about its bounding-box center",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			axis, err := transform.ParseAxis(axisName)
			if err != nil {
				return err
			}
			shapes, err := readShapes(cmd, args)
			if err != nil {
				return err
			}
			for i, s := range shapes {
				if shapes[i], err = transform.FlipShape(s, axis); err != nil {
					return err
				}
			}
			a.logger.Debug("Flipped shapes", "count", len(shapes), "axis", axis)
			return writeJSON(cmd, shapes)
		},
	}
	cmd.Flags().StringVar(&axisName, "axis", string(transform.AxisHorizontal), "mirror axis: horizontal or vertical")
	return cmd
}

func (a *app) handlesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "handles [shapes.json|-]",
		Short: "Print the edge resize handles of each rectangle",
		Long: `handles prints, for every rectangle, the midpoint, orientation, resize
cursor and mesh axis of the handle on each of its four edges. Other shapes are skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shapes, err := readShapes(cmd, args)
			if err != nil {
				return err
			}
			out := make([]shapeHandles, 0, len(shapes))
			for _, s := range shapes {
				h, err := transform.EdgeHandles(s)
				if err != nil {
					return err
				}
				if h != nil {
					out = append(out, shapeHandles{ID: s.ID, Handles: h})
				}
			}
			return writeJSON(cmd, out)
		},
	}
}

func (a *app) wktCommand() *cobra.Command {
	var origin string
	cmd := &cobra.Command{
		Use:   "wkt [shapes.json|-]",
		Short: "Print each shape as well-known text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shapes, err := readShapes(cmd, args)
			if err != nil {
				return err
			}
			if shapes, err = projectShapes(shapes, origin); err != nil {
				return err
			}
			out := make([]shapeWKT, 0, len(shapes))
			for _, s := range shapes {
				wkt, err := geo.ShapeWKT(s)
				if err != nil {
					return err
				}
				out = append(out, shapeWKT{ID: s.ID, WKT: wkt})
			}
			return writeJSON(cmd, out)
		},
	}
	addOriginFlag(cmd, &origin)
	return cmd
}
