package measure

import (
	"math/big"

	"github.com/landviz/parcelcore/pkg/core"
	"github.com/shopspring/decimal"
)

const (
	// divPrecision is the number of fractional digits kept by divisions.
	divPrecision int32 = 28
	// sqrtPrec is the mantissa size in bits used for square roots, about 38 significant digits.
	sqrtPrec uint = 128
	// displayPlaces is the number of decimals in user-facing strings.
	displayPlaces int32 = 2
)

var (
	half = decimal.RequireFromString("0.5")
	two  = decimal.NewFromInt(2)
	pi   = decimal.RequireFromString("3.1415926535897932384626433832795028841971")
)

// point is a Point2D lifted into decimal space using the shortest decimal form of each float.
type point struct {
	x, y decimal.Decimal
}

func lift(p core.Point2D) point {
	return point{x: decimal.NewFromFloat(p.X), y: decimal.NewFromFloat(p.Y)}
}

func liftAll(points []core.Point2D) []point {
	out := make([]point, len(points))
	for i, p := range points {
		out[i] = lift(p)
	}
	return out
}

// sqrt returns the square root of d carried to sqrtPrec bits. Non-positive input yields zero.
func sqrt(d decimal.Decimal) decimal.Decimal {
	if d.Sign() <= 0 {
		return decimal.Zero
	}
	f, _, err := big.ParseFloat(d.String(), 10, sqrtPrec, big.ToNearestEven)
	if err != nil {
		return decimal.Zero
	}
	f.Sqrt(f)
	return decimal.RequireFromString(f.Text('e', 36))
}

// segment returns the exact-then-rooted Euclidean length between a and b.
func segment(a, b point) decimal.Decimal {
	dx := b.x.Sub(a.x)
	dy := b.y.Sub(a.y)
	return sqrt(dx.Mul(dx).Add(dy.Mul(dy)))
}

// Display formats d for user-facing output with exactly two decimal places.
func Display(d decimal.Decimal) string {
	return d.StringFixed(displayPlaces)
}
