package geo

import (
	"encoding/json"
	"fmt"

	"github.com/landviz/parcelcore/pkg/core"
)

// ParsePoints parses a JSON array of coordinate pairs into plane points.
// Input format: "[[x1,y1],[x2,y2],...]"
func ParsePoints(input string) ([]core.Point2D, error) {
	var coords [][]float64
	if err := json.Unmarshal([]byte(input), &coords); err != nil {
		return nil, fmt.Errorf("failed to parse points JSON: %w", err)
	}

	points := make([]core.Point2D, len(coords))
	for i, coord := range coords {
		if len(coord) < 2 {
			return nil, fmt.Errorf("%w: coordinate %d has insufficient values", core.ErrInvalidGeometry, i)
		}
		points[i] = core.Point2D{X: coord[0], Y: coord[1]}
	}

	return points, nil
}
