package measure

// AccuracyReport describes the precision contract the engine honors.
type AccuracyReport struct {
	Accuracy  string `json:"accuracy"`
	Method    string `json:"method"`
	Precision int    `json:"precision"`
}

// ValidateAccuracy reports the precision contract. It performs no computation.
func ValidateAccuracy() AccuracyReport {
	return AccuracyReport{
		Accuracy:  "±0.01%",
		Method:    "arbitrary-precision decimal arithmetic: exact products and sums, 28-digit division, 128-bit square roots, rounding only at display",
		Precision: int(divPrecision),
	}
}
