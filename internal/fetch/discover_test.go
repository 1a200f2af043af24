package fetch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindSpreadsheetLink_ResolvesRelativeLink(t *testing.T) {
	html := `
	<html><body>
		<a href="/oes/special-requests/oes_notes.htm">Notes</a>
		<a href="oes_mi_2023.xlsx">May 2023 data</a>
	</body></html>`

	link, err := FindSpreadsheetLink(html, "https://www.bls.gov/oes/2023/may/oes_mi.htm")
	require.NoError(t, err)
	assert.Equal(t, "https://www.bls.gov/oes/2023/may/oes_mi_2023.xlsx", link)
}

func TestFindSpreadsheetLink_FirstMatchWins(t *testing.T) {
	html := `
	<html><body>
		<a href="first.xls">first</a>
		<a href="second.xlsx">second</a>
	</body></html>`

	link, err := FindSpreadsheetLink(html, "https://example.com/page.htm")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/first.xls", link)
}

func TestFindSpreadsheetLink_CaseInsensitiveExtension(t *testing.T) {
	html := `<html><body><a href="DATA.XLSX">data</a></body></html>`

	link, err := FindSpreadsheetLink(html, "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/DATA.XLSX", link)
}

func TestFindSpreadsheetLink_NoLink(t *testing.T) {
	html := `<html><body><a href="/about.htm">about</a></body></html>`

	_, err := FindSpreadsheetLink(html, "https://example.com/")
	require.Error(t, err)

	var fetchErr *Error
	assert.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, err.Error(), "no .xls/.xlsx link")
}

func TestFindSpreadsheetLink_InvalidBaseURL(t *testing.T) {
	_, err := FindSpreadsheetLink("<html></html>", "not a url")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid base URL")
}
