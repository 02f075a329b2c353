package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/landviz/parcelcore/internal/config"
	"github.com/landviz/parcelcore/internal/transform"
	"github.com/landviz/parcelcore/pkg/core"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const squareJSON = `[{"id":"sq","type":"polygon","points":[{"x":0,"y":0},{"x":10,"y":0},{"x":10,"y":10},{"x":0,"y":10}]}]`

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeConfig writes a config file into a fresh directory and returns the directory.
func writeConfig(t *testing.T, cfg map[string]any) string {
	t.Helper()
	dir := t.TempDir()
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), data, 0644))
	return dir
}

func memoryConfig(t *testing.T) string {
	return writeConfig(t, map[string]any{
		"logLevel": "debug",
		"storage": map[string]any{
			"type":   "memory",
			"memory": map[string]any{"outputDir": t.TempDir()},
		},
	})
}

func TestVersion(t *testing.T) {
	out, _, err := run(t, "", "--defaults", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "parcelctl v"+Version)
}

func TestMeasure_Stdin(t *testing.T) {
	out, _, err := run(t, squareJSON, "--defaults", "measure")
	require.NoError(t, err)

	var got []shapeMeasurement
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	m := got[0].Measurements
	assert.Equal(t, "sq", got[0].ID)
	assert.False(t, got[0].Degenerate)
	assert.Equal(t, "100.00", m.Area.SquareMeters)
	assert.Equal(t, "1076.39", m.Area.SquareFeet)
	assert.Equal(t, "0.02", m.Area.Acres)
	assert.Equal(t, "0.01", m.Area.Hectares)
	assert.Equal(t, "40.00", m.Perimeter.Meters)
	assert.Equal(t, "131.23", m.Perimeter.Feet)
	assert.Equal(t, core.Pt(5, 5), m.Centroid)
}

func TestMeasure_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shapes.json")
	require.NoError(t, os.WriteFile(path, []byte(squareJSON), 0644))

	out, _, err := run(t, "", "--defaults", "measure", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"squareMeters": "100.00"`)
}

func TestMeasure_Degenerate(t *testing.T) {
	out, _, err := run(t, `[{"id":"d","type":"polygon","points":[{"x":0,"y":0},{"x":1,"y":1}]}]`, "--defaults", "measure")
	require.NoError(t, err)

	var got []shapeMeasurement
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.True(t, got[0].Degenerate)
	assert.Equal(t, "0", got[0].Measurements.Area.SquareMeters)
}

func TestMeasure_Errors(t *testing.T) {
	_, _, err := run(t, `{not json`, "--defaults", "measure")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode shapes")

	circle := `[{"id":"c","type":"circle","points":[{"x":0,"y":0},{"x":1,"y":0},{"x":2,"y":0}]}]`
	_, _, err = run(t, circle, "--defaults", "measure")
	assert.ErrorIs(t, err, core.ErrInvalidGeometry)

	_, _, err = run(t, "", "--defaults", "measure", filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMeasure_Origin(t *testing.T) {
	// about 100m x 100m at 45 degrees north
	shapes := `[{"id":"geo","type":"polygon","points":[
		{"x":7,"y":45},{"x":7.0012683,"y":45},{"x":7.0012683,"y":45.0008998},{"x":7,"y":45.0008998}]}]`
	out, _, err := run(t, shapes, "--defaults", "measure", "--origin", "7,45")
	require.NoError(t, err)

	var got []shapeMeasurement
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	area, err := strconv.ParseFloat(got[0].Measurements.Area.SquareMeters, 64)
	require.NoError(t, err)
	assert.InEpsilon(t, 10000, area, 0.01)

	_, _, err = run(t, shapes, "--defaults", "measure", "--origin", "bogus")
	assert.Error(t, err)
}

func TestArea(t *testing.T) {
	out, _, err := run(t, "", "--defaults", "area", "--points", "[[0,0],[3,0],[3,4]]")
	require.NoError(t, err)
	assert.Equal(t, "area=6.00 perimeter=12.00\n", out)

	out, _, err = run(t, "", "--defaults", "area", "--open", "--points", "[[0,0],[3,0],[3,4]]")
	require.NoError(t, err)
	assert.Equal(t, "area=6.00 perimeter=7.00\n", out)

	_, _, err = run(t, "", "--defaults", "area", "--points", "[[0]]")
	assert.ErrorIs(t, err, core.ErrInvalidGeometry)
}

func TestAccuracy(t *testing.T) {
	out, _, err := run(t, "", "--defaults", "accuracy")
	require.NoError(t, err)
	assert.Contains(t, out, "±0.01%")
	assert.Contains(t, out, `"precision": 28`)
}

func TestFlip(t *testing.T) {
	tri := `[{"id":"t","type":"polygon","points":[{"x":0,"y":0},{"x":10,"y":0},{"x":0,"y":5}]}]`
	out, _, err := run(t, tri, "--defaults", "flip", "--axis", "vertical")
	require.NoError(t, err)

	var got []core.Shape
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, []core.Point2D{core.Pt(0, 5), core.Pt(10, 5), core.Pt(0, 0)}, got[0].Points)

	_, _, err = run(t, tri, "--defaults", "flip", "--axis", "diagonal")
	assert.Error(t, err)
}

func TestHandles(t *testing.T) {
	shapes := `[
		{"id":"r","type":"rectangle","points":[{"x":0,"y":0},{"x":10,"y":5}]},
		{"id":"p","type":"polygon","points":[{"x":0,"y":0},{"x":1,"y":0},{"x":1,"y":1}]}]`
	out, _, err := run(t, shapes, "--defaults", "handles")
	require.NoError(t, err)

	var got []shapeHandles
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "r", got[0].ID)
	require.Len(t, got[0].Handles, 4)
	assert.Equal(t, transform.CursorEW, got[0].Handles[0].Cursor)
	assert.Equal(t, transform.HandleAxisX, got[0].Handles[0].Axis)
	assert.Equal(t, transform.CursorNS, got[0].Handles[1].Cursor)
}

func TestWKT(t *testing.T) {
	out, _, err := run(t, squareJSON, "--defaults", "wkt")
	require.NoError(t, err)

	var got []shapeWKT
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.True(t, strings.HasPrefix(got[0].WKT, "POLYGON"), got[0].WKT)
}

func TestSaveListDelete_Memory(t *testing.T) {
	dir := memoryConfig(t)
	shapes := `[{"type":"rectangle","name":"Back lot","points":[{"x":0,"y":0},{"x":20,"y":10}]}]`

	out, stderr, err := run(t, shapes, "--config-dir", dir, "save")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Saved parcel")

	var saved []core.Parcel
	require.NoError(t, json.Unmarshal([]byte(out), &saved))
	require.Len(t, saved, 1)
	id := saved[0].Shape.ID
	assert.NotEmpty(t, id)
	assert.Equal(t, "200.00", saved[0].Measurements.Area.SquareMeters)

	out, _, err = run(t, "", "--config-dir", dir, "list")
	require.NoError(t, err)
	var listed []core.Parcel
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, id, listed[0].Shape.ID)
	assert.Equal(t, "Back lot", listed[0].Shape.Name)

	_, _, err = run(t, "", "--config-dir", dir, "delete", id)
	require.NoError(t, err)

	_, _, err = run(t, "", "--config-dir", dir, "delete", id)
	assert.ErrorIs(t, err, core.ErrParcelNotFound)

	out, _, err = run(t, "", "--config-dir", dir, "list")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", out)
}

func TestSaveList_Sqlite(t *testing.T) {
	dir := writeConfig(t, map[string]any{
		"storage": map[string]any{
			"type":   "sqlite",
			"sqlite": map[string]any{"path": filepath.Join(t.TempDir(), "parcels.db")},
		},
	})

	_, _, err := run(t, squareJSON, "--config-dir", dir, "save")
	require.NoError(t, err)
	_, _, err = run(t, squareJSON, "--config-dir", dir, "save")
	require.NoError(t, err)

	out, _, err := run(t, "", "--config-dir", dir, "list")
	require.NoError(t, err)
	var listed []core.Parcel
	require.NoError(t, json.Unmarshal([]byte(out), &listed))
	require.Len(t, listed, 1)
	assert.Equal(t, "sq", listed[0].Shape.ID)
	assert.Equal(t, "40.00", listed[0].Measurements.Perimeter.Meters)
}

func TestMissingConfigFallsBackToDefaults(t *testing.T) {
	_, stderr, err := run(t, squareJSON, "--config-dir", t.TempDir(), "--log-level", "warn", "measure")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Using default configuration")
}

func TestLogsDir(t *testing.T) {
	logs := filepath.Join(t.TempDir(), "logs")
	dir := writeConfig(t, map[string]any{"logLevel": "debug", "logsDir": logs})

	_, stderr, err := run(t, squareJSON, "--config-dir", dir, "measure")
	require.NoError(t, err)
	assert.NotContains(t, stderr, "Measured shapes")

	entries, err := os.ReadDir(logs)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	data, err := os.ReadFile(filepath.Join(logs, entries[0].Name()))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Measured shapes")
}
