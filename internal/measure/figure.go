package measure

import (
	"github.com/landviz/parcelcore/pkg/core"
	"github.com/shopspring/decimal"
)

// figure is a shape kind with its own point-count invariant already checked.
type figure interface {
	area() decimal.Decimal
	perimeter() decimal.Decimal
	centroid() core.Point2D
}

// corners is a rectangle given by two opposite corners.
type corners struct {
	a, b point
	raw  []core.Point2D
}

func (c corners) area() decimal.Decimal {
	return c.b.x.Sub(c.a.x).Abs().Mul(c.b.y.Sub(c.a.y).Abs())
}

func (c corners) perimeter() decimal.Decimal {
	return c.b.x.Sub(c.a.x).Abs().Add(c.b.y.Sub(c.a.y).Abs()).Mul(two)
}

func (c corners) centroid() core.Point2D {
	return meanOfDistinct(c.raw)
}

// ring is a closed outline: polygons and expanded four-corner rectangles.
type ring struct {
	pts []point
	raw []core.Point2D
}

func (r ring) area() decimal.Decimal      { return shoelace(r.pts) }
func (r ring) perimeter() decimal.Decimal { return loopLength(r.pts, true) }
func (r ring) centroid() core.Point2D     { return meanOfDistinct(r.raw) }

// path is an open outline: lines and polylines. Area still closes the loop.
type path struct {
	pts []point
	raw []core.Point2D
}

func (p path) area() decimal.Decimal      { return shoelace(p.pts) }
func (p path) perimeter() decimal.Decimal { return loopLength(p.pts, false) }
func (p path) centroid() core.Point2D     { return meanOfDistinct(p.raw) }

// disc is a circle given by its center and a point on the circumference.
type disc struct {
	center, edge point
	raw          core.Point2D
}

func (d disc) radius() decimal.Decimal {
	return segment(d.center, d.edge)
}

func (d disc) area() decimal.Decimal {
	r := d.radius()
	return pi.Mul(r).Mul(r)
}

func (d disc) perimeter() decimal.Decimal {
	return two.Mul(pi).Mul(d.radius())
}

func (d disc) centroid() core.Point2D {
	return d.raw
}

// classify validates the shape and builds its figure. A nil figure with a nil
// error means the shape has too few points and measures as zero.
func classify(s core.Shape) (figure, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if len(s.Points) < s.Type.MinPoints() {
		return nil, nil
	}

	switch s.Type {
	case core.ShapeCircle:
		return disc{center: lift(s.Points[0]), edge: lift(s.Points[1]), raw: s.Points[0]}, nil
	case core.ShapeRectangle:
		if len(s.Points) == 2 {
			return corners{a: lift(s.Points[0]), b: lift(s.Points[1]), raw: s.Points}, nil
		}
		return ring{pts: liftAll(s.Points), raw: s.Points}, nil
	case core.ShapeLine, core.ShapePolyline:
		return path{pts: liftAll(s.Points), raw: s.Points}, nil
	default:
		return ring{pts: liftAll(s.Points), raw: s.Points}, nil
	}
}

// shoelace returns the unsigned area of the closed loop through pts.
func shoelace(pts []point) decimal.Decimal {
	n := len(pts)
	if n < 3 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for i := range n {
		a, b := pts[i], pts[(i+1)%n]
		sum = sum.Add(a.x.Mul(b.y).Sub(b.x.Mul(a.y)))
	}
	return sum.Abs().Mul(half)
}

// loopLength sums edge lengths, including the closing edge when closed is set.
func loopLength(pts []point, closed bool) decimal.Decimal {
	n := len(pts)
	if n < 2 {
		return decimal.Zero
	}
	total := decimal.Zero
	for i := range n - 1 {
		total = total.Add(segment(pts[i], pts[i+1]))
	}
	if closed {
		total = total.Add(segment(pts[n-1], pts[0]))
	}
	return total
}

// meanOfDistinct averages each distinct point once, so repeated vertices do not pull the centroid.
func meanOfDistinct(points []core.Point2D) core.Point2D {
	seen := make(map[core.Point2D]struct{}, len(points))
	sumX, sumY := decimal.Zero, decimal.Zero
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		lp := lift(p)
		sumX = sumX.Add(lp.x)
		sumY = sumY.Add(lp.y)
	}
	if len(seen) == 0 {
		return core.Point2D{}
	}
	n := decimal.NewFromInt(int64(len(seen)))
	return core.Point2D{
		X: sumX.DivRound(n, divPrecision).InexactFloat64(),
		Y: sumY.DivRound(n, divPrecision).InexactFloat64(),
	}
}
