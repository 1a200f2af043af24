// Package career assembles the final career records from the two keyed source
// mappings.
package career

import (
	"net/url"

	"github.com/jonathan/careers-builder/internal/educost"
	"github.com/jonathan/careers-builder/internal/normalize"
	"github.com/jonathan/careers-builder/internal/types"
)

// occupationFinderURL is the search template used when a profile carries no
// handbook URL of its own.
const occupationFinderURL = "https://www.bls.gov/ooh/occupation-finder.htm?search="

// FallbackURL synthesizes an occupation-finder search link for a title.
func FallbackURL(title string) string {
	return occupationFinderURL + url.QueryEscape(title)
}

// Aggregate produces one CareerRecord per target title, in target-list order.
// Targets absent from either mapping degrade to documented defaults: a
// profile with only the target title, all-nil wages, and a synthesized
// occupation-finder URL. Output length always equals len(targets).
func Aggregate(targets []string, profiles map[string]types.OccupationProfile, wages map[string]types.WageStats, estimator *educost.Estimator) []types.CareerRecord {
	careers := make([]types.CareerRecord, 0, len(targets))

	for _, target := range targets {
		key := normalize.Key(target)

		profile, ok := profiles[key]
		if !ok {
			profile = types.OccupationProfile{Title: target}
		}

		stats := wages[key] // zero value is all-nil

		oohURL := FallbackURL(profile.Title)
		if profile.OOHURL != nil && *profile.OOHURL != "" {
			oohURL = *profile.OOHURL
		}

		careers = append(careers, types.CareerRecord{
			Title: profile.Title,
			BLS: types.ProfileInfo{
				Summary:        profile.Summary,
				EntryEducation: profile.EntryEducation,
				OOHURL:         oohURL,
			},
			Pay: types.PayInfo{
				StartingProxyAnnual: stats.P25Annual,
				MedianAnnual:        stats.MedianAnnual,
			},
			EducationCost: estimator.Estimate(profile.EntryEducation),
		})
	}

	return careers
}
