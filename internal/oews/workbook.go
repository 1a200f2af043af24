package oews

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WorkbookError represents a structural failure reading the OEWS workbook.
type WorkbookError struct {
	Message string
	Cause   error
}

func (e *WorkbookError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("oews workbook error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("oews workbook error: %s", e.Message)
}

func (e *WorkbookError) Unwrap() error {
	return e.Cause
}

// ReadWorkbook parses an xlsx workbook into a Table. The first sheet's first
// row supplies the column names; every following row becomes a data row. A
// workbook with no header row is a structural error, since nothing can be
// extracted from it.
func ReadWorkbook(r io.Reader) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, &WorkbookError{Message: "failed to open workbook", Cause: err}
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &WorkbookError{Message: "workbook has no sheets"}
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &WorkbookError{Message: fmt.Sprintf("failed to read sheet %q", sheets[0]), Cause: err}
	}
	if len(rows) == 0 {
		return nil, &WorkbookError{Message: fmt.Sprintf("sheet %q has no header row", sheets[0])}
	}

	table := &Table{Columns: rows[0]}
	for _, raw := range rows[1:] {
		row := make([]Cell, len(raw))
		for i, v := range raw {
			row[i] = Cell{Raw: v}
		}
		table.Rows = append(table.Rows, row)
	}

	return table, nil
}
