package measure

import (
	"math"
	"testing"

	"github.com/landviz/parcelcore/pkg/core"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShapeMeasurements_Square(t *testing.T) {
	m, err := ShapeMeasurements(core.Shape{ID: "a", Type: core.ShapePolygon, Points: square(10)})
	require.NoError(t, err)

	s := m.Summary()
	assert.Equal(t, "100.00", s.Area.SquareMeters)
	assert.Equal(t, "1076.39", s.Area.SquareFeet)
	assert.Equal(t, "0.02", s.Area.Acres)
	assert.Equal(t, "0.01", s.Area.Hectares)
	assert.Equal(t, "40.00", s.Perimeter.Meters)
	assert.Equal(t, "131.23", s.Perimeter.Feet)
	assert.Equal(t, core.Pt(5, 5), s.Centroid)
	assert.False(t, m.Degenerate)
}

func TestShapeMeasurements_TwoCornerRectangle(t *testing.T) {
	m, err := ShapeMeasurements(core.Shape{ID: "b", Type: core.ShapeRectangle, Points: []core.Point2D{core.Pt(0, 0), core.Pt(20, 10)}})
	require.NoError(t, err)

	s := m.Summary()
	assert.Equal(t, "200.00", s.Area.SquareMeters)
	assert.Equal(t, "60.00", s.Perimeter.Meters)
	assert.Equal(t, core.Pt(10, 5), s.Centroid)
}

func TestShapeMeasurements_RotatedFourCornerRectangle(t *testing.T) {
	diamond := []core.Point2D{core.Pt(0, -5), core.Pt(5, 0), core.Pt(0, 5), core.Pt(-5, 0)}
	m, err := ShapeMeasurements(core.Shape{ID: "r", Type: core.ShapeRectangle, Points: diamond})
	require.NoError(t, err)

	s := m.Summary()
	assert.Equal(t, "50.00", s.Area.SquareMeters)
	assert.Equal(t, "28.28", s.Perimeter.Meters)
	assert.Equal(t, core.Pt(0, 0), s.Centroid)
}

func TestShapeMeasurements_Triangle(t *testing.T) {
	m, err := ShapeMeasurements(core.Shape{ID: "c", Type: core.ShapePolygon, Points: []core.Point2D{core.Pt(0, 0), core.Pt(3, 0), core.Pt(0, 4)}})
	require.NoError(t, err)

	s := m.Summary()
	assert.Equal(t, "6.00", s.Area.SquareMeters)
	assert.Equal(t, "12.00", s.Perimeter.Meters)
	assert.InDelta(t, 1.0, s.Centroid.X, 1e-12)
	assert.InDelta(t, 4.0/3.0, s.Centroid.Y, 1e-12)
}

func TestShapeMeasurements_Circle(t *testing.T) {
	m, err := ShapeMeasurements(core.Shape{ID: "d", Type: core.ShapeCircle, Points: []core.Point2D{core.Pt(0, 0), core.Pt(5, 0)}})
	require.NoError(t, err)

	s := m.Summary()
	assert.Equal(t, "78.54", s.Area.SquareMeters)
	assert.Equal(t, "31.42", s.Perimeter.Meters)
	assert.Equal(t, core.Pt(0, 0), s.Centroid)
}

func TestShapeMeasurements_CircleCentroidIsCenter(t *testing.T) {
	m, err := ShapeMeasurements(core.Shape{ID: "d", Type: core.ShapeCircle, Points: []core.Point2D{core.Pt(2, 3), core.Pt(2, 8)}})
	require.NoError(t, err)
	assert.Equal(t, core.Pt(2, 3), m.Centroid)
}

func TestShapeMeasurements_OpenShapes(t *testing.T) {
	tests := []struct {
		name      string
		shapeType core.ShapeType
		points    []core.Point2D
		area      string
		perimeter string
	}{
		{"line", core.ShapeLine, []core.Point2D{core.Pt(0, 0), core.Pt(3, 4)}, "0.00", "5.00"},
		{"polyline", core.ShapePolyline, []core.Point2D{core.Pt(0, 0), core.Pt(3, 0), core.Pt(3, 4)}, "6.00", "7.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ShapeMeasurements(core.Shape{ID: tt.name, Type: tt.shapeType, Points: tt.points})
			require.NoError(t, err)

			s := m.Summary()
			assert.Equal(t, tt.area, s.Area.SquareMeters)
			assert.Equal(t, tt.perimeter, s.Perimeter.Meters)
		})
	}
}

func TestShapeMeasurements_CentroidIgnoresRepeatedPoints(t *testing.T) {
	closedLoop := append(square(10), core.Pt(0, 0))
	m, err := ShapeMeasurements(core.Shape{ID: "e", Type: core.ShapePolygon, Points: closedLoop})
	require.NoError(t, err)
	assert.Equal(t, core.Pt(5, 5), m.Centroid)
}

func TestShapeMeasurements_DegenerateShapesAreZero(t *testing.T) {
	tests := []struct {
		name  string
		shape core.Shape
	}{
		{"empty polygon", core.Shape{Type: core.ShapePolygon}},
		{"two point polygon", core.Shape{Type: core.ShapePolygon, Points: []core.Point2D{core.Pt(0, 0), core.Pt(1, 1)}}},
		{"one point rectangle", core.Shape{Type: core.ShapeRectangle, Points: []core.Point2D{core.Pt(4, 4)}}},
		{"center-only circle", core.Shape{Type: core.ShapeCircle, Points: []core.Point2D{core.Pt(4, 4)}}},
		{"one point line", core.Shape{Type: core.ShapeLine, Points: []core.Point2D{core.Pt(4, 4)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := ShapeMeasurements(tt.shape)
			require.NoError(t, err)
			assert.True(t, m.Degenerate)
			assert.True(t, m.Area.SquareMeters.IsZero())
			assert.True(t, m.Perimeter.Meters.IsZero())

			s := m.Summary()
			assert.Equal(t, "0", s.Area.SquareMeters)
			assert.Equal(t, "0", s.Area.Acres)
			assert.Equal(t, "0", s.Perimeter.Feet)
			assert.Equal(t, core.Point2D{}, s.Centroid)
		})
	}
}

func TestShapeMeasurements_InvalidShapes(t *testing.T) {
	tests := []struct {
		name  string
		shape core.Shape
	}{
		{"circle with extra points", core.Shape{Type: core.ShapeCircle, Points: square(1)}},
		{"rectangle with three corners", core.Shape{Type: core.ShapeRectangle, Points: square(1)[:3]}},
		{"unknown type", core.Shape{Type: "hexagon", Points: square(1)}},
		{"infinite coordinate", core.Shape{Type: core.ShapePolygon, Points: []core.Point2D{core.Pt(0, 0), core.Pt(math.Inf(1), 0), core.Pt(1, 1)}}},
		{"nan rotation", core.Shape{Type: core.ShapeRectangle, Points: square(1)[:2], Rotation: &core.Rotation{Angle: math.NaN()}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ShapeMeasurements(tt.shape)
			require.Error(t, err)
			assert.ErrorIs(t, err, core.ErrInvalidGeometry)
		})
	}
}

func TestShapeMeasurements_UnitConsistency(t *testing.T) {
	shapes := []core.Shape{
		{Type: core.ShapePolygon, Points: []core.Point2D{core.Pt(0, 0), core.Pt(123.456, 0), core.Pt(100, 77.7)}},
		{Type: core.ShapeRectangle, Points: []core.Point2D{core.Pt(-10.5, 3), core.Pt(250, 400.25)}},
		{Type: core.ShapeCircle, Points: []core.Point2D{core.Pt(1, 1), core.Pt(40, 41)}},
	}

	for _, s := range shapes {
		t.Run(string(s.Type), func(t *testing.T) {
			m, err := ShapeMeasurements(s)
			require.NoError(t, err)

			sqm := m.Area.SquareMeters
			assert.True(t, m.Area.SquareFeet.Equal(sqm.Mul(decimal.RequireFromString("10.7639"))))

			acres := sqm.Div(decimal.RequireFromString("4046.86"))
			assert.True(t, m.Area.Acres.Sub(acres).Abs().LessThan(decimal.New(1, -12)))

			hectares := sqm.Div(decimal.NewFromInt(10000))
			assert.True(t, m.Area.Hectares.Sub(hectares).Abs().LessThan(decimal.New(1, -12)))

			assert.True(t, m.Perimeter.Feet.Equal(m.Perimeter.Meters.Mul(decimal.RequireFromString("3.28084"))))
		})
	}
}

func TestShapeMeasurements_DoesNotMutateInput(t *testing.T) {
	pts := square(3)
	before := append([]core.Point2D(nil), pts...)
	_, err := ShapeMeasurements(core.Shape{Type: core.ShapePolygon, Points: pts})
	require.NoError(t, err)
	assert.Equal(t, before, pts)
}
