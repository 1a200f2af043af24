// Package types defines the shared record types flowing between the source
// extractors, the aggregator, and the output artifact.
package types

// OccupationProfile is one occupation entry from the OOH compilation feed,
// keyed in mappings by its normalized title. Optional fields are nil when the
// source entry omitted them.
type OccupationProfile struct {
	Title          string  `json:"title"`
	Summary        *string `json:"summary"`
	EntryEducation *string `json:"entry_education"`
	OOHURL         *string `json:"ooh_url"`
}
