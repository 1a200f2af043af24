// Package educost derives rough tuition-and-fees estimates from entry-level
// education categories.
package educost

import (
	"fmt"
	"strings"

	"github.com/jonathan/careers-builder/internal/types"
)

// Estimator maps entry-level education categories to cost estimates. The
// tuition rates come from configuration (NCES Table 330.20 values), not from
// this package.
type Estimator struct {
	twoYearRate  float64
	fourYearRate float64
}

// NewEstimator builds an Estimator from annual tuition+fees rates for public
// two-year and four-year institutions. Negative rates are a configuration
// error.
func NewEstimator(twoYearRate, fourYearRate float64) (*Estimator, error) {
	if twoYearRate < 0 || fourYearRate < 0 {
		return nil, fmt.Errorf("educost: tuition rates must be non-negative (two-year=%v, four-year=%v)", twoYearRate, fourYearRate)
	}
	return &Estimator{twoYearRate: twoYearRate, fourYearRate: fourYearRate}, nil
}

// Estimate returns a cost estimate for a free-text education category, or nil
// when no estimate is derivable. Matching is case-insensitive substring
// matching in fixed priority order; the first rule that matches wins, so a
// category mentioning both "bachelor" and "master" takes the bachelor branch.
func (e *Estimator) Estimate(entryEducation *string) *types.EducationCostEstimate {
	if entryEducation == nil {
		return nil
	}
	category := strings.ToLower(*entryEducation)
	if category == "" {
		return nil
	}

	switch {
	case strings.Contains(category, "associate"):
		return &types.EducationCostEstimate{
			Years:            2,
			TotalTuitionFees: 2 * e.twoYearRate,
			Note:             "Community college estimate (tuition+fees only).",
		}
	case strings.Contains(category, "bachelor"):
		return &types.EducationCostEstimate{
			Years:            4,
			TotalTuitionFees: 4 * e.fourYearRate,
			Note:             "Public 4-year in-state estimate (tuition+fees only).",
		}
	case strings.Contains(category, "master"):
		return &types.EducationCostEstimate{
			Years:            6,
			TotalTuitionFees: 6 * e.fourYearRate,
			Note:             "Very rough estimate (tuition+fees only).",
		}
	case strings.Contains(category, "doctoral"), strings.Contains(category, "professional"):
		return &types.EducationCostEstimate{
			Years:            8,
			TotalTuitionFees: 8 * e.fourYearRate,
			Note:             "Very rough estimate (tuition+fees only).",
		}
	case strings.Contains(category, "postsecondary nondegree"):
		return &types.EducationCostEstimate{
			Years:            1,
			TotalTuitionFees: 1 * e.twoYearRate,
			Note:             "Certificate/trade estimate (tuition+fees only).",
		}
	case strings.Contains(category, "high school"), strings.Contains(category, "no formal"):
		return &types.EducationCostEstimate{
			Years:            0,
			TotalTuitionFees: 0,
			Note:             "No college required; training may still cost money.",
		}
	}

	return nil
}
