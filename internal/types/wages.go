package types

// WageStats holds the annual wage figures extracted for one occupation row of
// the OEWS workbook. A nil field means the workbook had no resolvable column
// for it or the cell was blank/non-numeric.
type WageStats struct {
	P25Annual    *float64 `json:"p25_annual"`
	MedianAnnual *float64 `json:"median_annual"`
}
