package spreadsheet

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"clarity-gate/internal/domain/visitor"
)

// SheetName is the worksheet read from uploads and written to reports.
const SheetName = "Visitor List"

var ErrNoSheets = errors.New("workbook has no sheets")

// Read loads the visitor worksheet from an xlsx stream. When the workbook
// has no sheet named SheetName the first sheet is used.
func Read(r io.Reader) (visitor.Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return visitor.Table{}, fmt.Errorf("opening workbook: %w", err)
	}
	defer f.Close()

	sheet := pickSheet(f)
	if sheet == "" {
		return visitor.Table{}, ErrNoSheets
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return visitor.Table{}, fmt.Errorf("reading rows from %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return visitor.Table{}, nil
	}
	return visitor.Table{
		Header: rows[0],
		Rows:   rows[1:],
	}, nil
}

func pickSheet(f *excelize.File) string {
	sheets := f.GetSheetList()
	for _, s := range sheets {
		if s == SheetName {
			return s
		}
	}
	if len(sheets) == 0 {
		return ""
	}
	return sheets[0]
}
