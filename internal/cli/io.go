package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/landviz/parcelcore/internal/geo"
	"github.com/landviz/parcelcore/pkg/core"
	"github.com/spf13/cobra"
)

// readShapes decodes a JSON array of shapes from the file named by args[0],
// or from stdin when there is no argument or it is "-".
func readShapes(cmd *cobra.Command, args []string) ([]core.Shape, error) {
	var r io.Reader = cmd.InOrStdin()
	name := "stdin"
	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, fmt.Errorf("failed to open shapes file: %w", err)
		}
		defer f.Close()
		r = f
		name = args[0]
	}

	var shapes []core.Shape
	if err := json.NewDecoder(r).Decode(&shapes); err != nil {
		return nil, fmt.Errorf("failed to decode shapes from %s: %w", name, err)
	}
	return shapes, nil
}

// projectShapes converts lon/lat shapes to plane meters when origin is set.
func projectShapes(shapes []core.Shape, origin string) ([]core.Shape, error) {
	if origin == "" {
		return shapes, nil
	}
	ll, err := geo.LonLatFromString(origin)
	if err != nil {
		return nil, fmt.Errorf("--origin %q: %w", origin, err)
	}
	lp := geo.NewLocalPlane(ll)
	out := make([]core.Shape, len(shapes))
	for i, s := range shapes {
		out[i] = lp.ProjectShape(s)
	}
	return out, nil
}

// assignIDs gives every shape without an ID a random one.
func assignIDs(shapes []core.Shape) {
	for i := range shapes {
		if shapes[i].ID == "" {
			shapes[i].ID = uuid.NewString()
		}
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func addOriginFlag(cmd *cobra.Command, origin *string) {
	cmd.Flags().StringVar(origin, "origin", "", `treat shape points as longitude/latitude and project them to meters around "lon,lat"`)
}
