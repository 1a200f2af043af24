package types

// EducationCostEstimate is a rough tuition-and-fees projection derived from an
// entry-level education category. Absent entirely (nil pointer) when the
// category text is unrecognized.
type EducationCostEstimate struct {
	Years            int     `json:"years"`
	TotalTuitionFees float64 `json:"total_tuition_fees"`
	Note             string  `json:"note"`
}
