package types

// ProfileInfo is the per-career slice of OOH profile data carried into the
// output artifact. OOHURL is always set: either the source URL or a
// synthesized occupation-finder search link.
type ProfileInfo struct {
	Summary        *string `json:"summary"`
	EntryEducation *string `json:"entry_education"`
	OOHURL         string  `json:"ooh_url"`
}

// PayInfo carries the wage figures for one career. StartingProxyAnnual is the
// 25th-percentile annual wage, used as a conservative stand-in for starting
// salary, which BLS does not collect.
type PayInfo struct {
	StartingProxyAnnual *float64 `json:"starting_proxy_annual"`
	MedianAnnual        *float64 `json:"median_annual"`
}

// CareerRecord is one merged output entry. The aggregator emits exactly one
// per target title, in target-list order, regardless of source matches.
type CareerRecord struct {
	Title         string                 `json:"title"`
	BLS           ProfileInfo            `json:"bls"`
	Pay           PayInfo                `json:"pay"`
	EducationCost *EducationCostEstimate `json:"education_cost"`
}
