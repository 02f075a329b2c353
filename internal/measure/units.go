package measure

import "github.com/shopspring/decimal"

// Fixed physical conversion factors. They are constants of the domain, not configuration.
var (
	squareFeetPerSquareMeter = decimal.RequireFromString("10.7639")
	squareMetersPerAcre      = decimal.RequireFromString("4046.86")
	squareMetersPerHectare   = decimal.NewFromInt(10000)
	feetPerMeter             = decimal.RequireFromString("3.28084")
)

// SquareFeet converts square meters to square feet.
func SquareFeet(squareMeters decimal.Decimal) decimal.Decimal {
	return squareMeters.Mul(squareFeetPerSquareMeter)
}

// Acres converts square meters to acres.
func Acres(squareMeters decimal.Decimal) decimal.Decimal {
	return squareMeters.DivRound(squareMetersPerAcre, divPrecision)
}

// Hectares converts square meters to hectares.
func Hectares(squareMeters decimal.Decimal) decimal.Decimal {
	return squareMeters.DivRound(squareMetersPerHectare, divPrecision)
}

// Feet converts meters to feet.
func Feet(meters decimal.Decimal) decimal.Decimal {
	return meters.Mul(feetPerMeter)
}
