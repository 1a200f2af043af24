// Package ooh extracts occupation profiles from the BLS Occupational Outlook
// Handbook XML compilation.
package ooh

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/careers-builder/internal/normalize"
	"github.com/jonathan/careers-builder/internal/types"
)

// ParseError represents a structural failure decoding the compilation feed.
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("ooh parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("ooh parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

// occupationEntry mirrors one <occupation> element. Pointer fields
// distinguish absent elements from present-but-empty ones. Tags match by
// local name, so namespaced feeds decode the same way.
type occupationEntry struct {
	Title               string  `xml:"title"`
	Summary             *string `xml:"summary"`
	Education           *string `xml:"education"`
	EntryLevelEducation *string `xml:"entry_level_education"`
	URL                 *string `xml:"url"`
}

// Extract decodes the XML compilation and returns a mapping from normalized
// title key to profile. <occupation> elements are matched at any depth.
// Entries with an empty title are skipped (they cannot be keyed); a later
// entry with the same key overwrites an earlier one. A feed with no
// occupation elements yields an empty mapping, not an error; only a malformed
// XML document is an error.
func Extract(data []byte) (map[string]types.OccupationProfile, error) {
	decoder := xml.NewDecoder(bytes.NewReader(data))
	out := make(map[string]types.OccupationProfile)

	for {
		tok, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, &ParseError{Message: "malformed XML document", Cause: err}
		}

		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "occupation" {
			continue
		}

		var entry occupationEntry
		if err := decoder.DecodeElement(&entry, &start); err != nil {
			return nil, &ParseError{Message: "malformed occupation element", Cause: err}
		}

		profile, ok := entry.toProfile()
		if !ok {
			continue
		}
		out[normalize.Key(profile.Title)] = profile
	}

	return out, nil
}

// toProfile converts a decoded entry into an OccupationProfile. Returns false
// when the entry has no usable title.
func (e *occupationEntry) toProfile() (types.OccupationProfile, bool) {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		return types.OccupationProfile{}, false
	}

	profile := types.OccupationProfile{Title: title}

	if e.Summary != nil {
		summary := normalize.CollapseSpace(*e.Summary)
		profile.Summary = &summary
	}

	// Primary education field, falling back to the alternative name some
	// compilation years use.
	edu := ""
	if e.Education != nil {
		edu = strings.TrimSpace(*e.Education)
	}
	if edu == "" && e.EntryLevelEducation != nil {
		edu = strings.TrimSpace(*e.EntryLevelEducation)
	}
	if edu != "" {
		collapsed := normalize.CollapseSpace(edu)
		profile.EntryEducation = &collapsed
	}

	if e.URL != nil {
		if u := strings.TrimSpace(*e.URL); u != "" {
			profile.OOHURL = &u
		}
	}

	return profile, true
}
