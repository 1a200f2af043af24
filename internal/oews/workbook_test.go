package oews

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook writes rows into a single-sheet xlsx and returns its bytes.
func buildWorkbook(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, cells := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &cells))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestReadWorkbook_RoundTrip(t *testing.T) {
	data := buildWorkbook(t, [][]interface{}{
		{"Occupation Title", "Annual 25th Percentile Wage", "Annual Median Wage"},
		{"Registered Nurses", 66000, 86070},
		{"Electricians", 48720, 63310},
	})

	table, err := ReadWorkbook(bytes.NewReader(data))
	require.NoError(t, err)
	require.Len(t, table.Columns, 3)
	assert.Equal(t, "Occupation Title", table.Columns[0])
	require.Len(t, table.Rows, 2)

	wages := Extract(table)
	require.Contains(t, wages, "registered nurses")
	require.NotNil(t, wages["registered nurses"].P25Annual)
	assert.Equal(t, 66000.0, *wages["registered nurses"].P25Annual)
	require.NotNil(t, wages["electricians"].MedianAnnual)
	assert.Equal(t, 63310.0, *wages["electricians"].MedianAnnual)
}

func TestReadWorkbook_NotASpreadsheet(t *testing.T) {
	_, err := ReadWorkbook(bytes.NewReader([]byte("<html>blocked</html>")))
	require.Error(t, err)

	var wbErr *WorkbookError
	assert.ErrorAs(t, err, &wbErr)
}

func TestReadWorkbook_EmptySheet(t *testing.T) {
	f := excelize.NewFile()
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	_, err = ReadWorkbook(bytes.NewReader(buf.Bytes()))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no header row")
}
