package geo

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/landviz/parcelcore/pkg/core"
	"github.com/wroge/wgs84"
)

// ErrInvalidCoordinates is returned when a coordinate string cannot be parsed
var ErrInvalidCoordinates = errors.New("invalid coordinates provided")

// LonLat is a WGS84 (EPSG:4326) position in degrees.
type LonLat struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// LonLatFromString parses "long,lat" into a LonLat. Extra components such as elevation are ignored.
func LonLatFromString(coords string) (LonLat, error) {
	coordsSplit := strings.Split(coords, ",")
	if len(coordsSplit) < 2 {
		return LonLat{}, ErrInvalidCoordinates
	}
	long, err := strconv.ParseFloat(strings.TrimSpace(coordsSplit[0]), 64)
	if err != nil {
		return LonLat{}, ErrInvalidCoordinates
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(coordsSplit[1]), 64)
	if err != nil {
		return LonLat{}, ErrInvalidCoordinates
	}
	if long < -180 || long > 180 || lat < -85.06 || lat > 85.06 {
		return LonLat{}, ErrInvalidCoordinates
	}
	return LonLat{Lon: long, Lat: lat}, nil
}

// LocalPlane maps WGS84 positions onto the drawing plane in ground meters,
// with Origin at (0, 0). Positions go through Web Mercator (EPSG:3857) and are
// scaled by cos(origin latitude) to undo the projection's stretch, which keeps
// parcel-sized areas within a fraction of a percent of their true size.
type LocalPlane struct {
	Origin LonLat

	toMercator func(a, b, c float64) (float64, float64, float64)
	ox, oy     float64
	scale      float64
}

// NewLocalPlane builds a plane centered on origin.
func NewLocalPlane(origin LonLat) *LocalPlane {
	epsg := wgs84.EPSG()
	f := epsg.Transform(4326, 3857)
	ox, oy, _ := f(origin.Lon, origin.Lat, 0)
	return &LocalPlane{
		Origin:     origin,
		toMercator: f,
		ox:         ox,
		oy:         oy,
		scale:      math.Cos(origin.Lat * math.Pi / 180),
	}
}

// Project converts one position to plane coordinates in meters.
func (lp *LocalPlane) Project(ll LonLat) core.Point2D {
	x, y, _ := lp.toMercator(ll.Lon, ll.Lat, 0)
	return core.Point2D{X: (x - lp.ox) * lp.scale, Y: (y - lp.oy) * lp.scale}
}

// ProjectAll converts every position, preserving order.
func (lp *LocalPlane) ProjectAll(lls []LonLat) []core.Point2D {
	out := make([]core.Point2D, len(lls))
	for i, ll := range lls {
		out[i] = lp.Project(ll)
	}
	return out
}

// ProjectShape returns a copy of s whose points and rotation center, given as
// lon (X) and lat (Y) degrees, are converted to plane meters.
func (lp *LocalPlane) ProjectShape(s core.Shape) core.Shape {
	out := s
	out.Points = make([]core.Point2D, len(s.Points))
	for i, p := range s.Points {
		out.Points[i] = lp.Project(LonLat{Lon: p.X, Lat: p.Y})
	}
	if s.Rotation != nil {
		r := *s.Rotation
		r.Center = lp.Project(LonLat{Lon: r.Center.X, Lat: r.Center.Y})
		out.Rotation = &r
	}
	return out
}
