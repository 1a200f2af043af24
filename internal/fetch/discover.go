package fetch

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FindSpreadsheetLink scans the HTML of an OEWS index page for the first
// anchor pointing at an .xls or .xlsx file and returns it resolved against
// baseURL. Not finding one is an error: without the workbook link the wage
// source cannot be located at all.
func FindSpreadsheetLink(htmlContent, baseURL string) (string, error) {
	base, err := url.Parse(baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return "", &Error{
			URL:     baseURL,
			Message: "invalid base URL for link discovery",
			Cause:   err,
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlContent))
	if err != nil {
		return "", &Error{
			URL:     baseURL,
			Message: "failed to parse HTML",
			Cause:   err,
		}
	}

	var found string
	doc.Find("a[href]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		href, exists := s.Attr("href")
		if !exists || href == "" {
			return true
		}

		linkURL, err := url.Parse(href)
		if err != nil {
			// Skip malformed URLs
			return true
		}

		resolved := base.ResolveReference(linkURL)
		path := strings.ToLower(resolved.Path)
		if strings.HasSuffix(path, ".xls") || strings.HasSuffix(path, ".xlsx") {
			found = resolved.String()
			return false
		}
		return true
	})

	if found == "" {
		return "", &Error{
			URL:     baseURL,
			Message: fmt.Sprintf("no .xls/.xlsx link found on %s", baseURL),
		}
	}
	return found, nil
}
