package spreadsheet

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"clarity-gate/internal/domain/visitor"
)

const (
	headerFill = "94B455"
	fontFamily = "Calibri"
	fontSize   = 9
	rowHeight  = 20

	summaryColumn = 2
	summaryGap    = 2

	LabelVehicles      = "Vehicles"
	LabelTotalVisitors = "Total Visitors"
)

type styles struct {
	header  int
	body    int
	summary int
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
}

func centered() *excelize.Alignment {
	return &excelize.Alignment{Horizontal: "center", Vertical: "center"}
}

func newStyles(f *excelize.File) (styles, error) {
	var s styles
	var err error

	s.header, err = f.NewStyle(&excelize.Style{
		Border:    thinBorder(),
		Alignment: centered(),
		Font:      &excelize.Font{Family: fontFamily, Size: fontSize, Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
	})
	if err != nil {
		return s, fmt.Errorf("header style: %w", err)
	}

	s.body, err = f.NewStyle(&excelize.Style{
		Border:    thinBorder(),
		Alignment: centered(),
		Font:      &excelize.Font{Family: fontFamily, Size: fontSize},
	})
	if err != nil {
		return s, fmt.Errorf("body style: %w", err)
	}

	s.summary, err = f.NewStyle(&excelize.Style{
		Border:    thinBorder(),
		Alignment: centered(),
	})
	if err != nil {
		return s, fmt.Errorf("summary style: %w", err)
	}
	return s, nil
}

// newWorkbook returns a workbook whose only sheet is SheetName.
func newWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	return f, nil
}

// Render writes the cleaned table and its summary blocks as an xlsx
// workbook.
func Render(rep visitor.Report) (*bytes.Buffer, error) {
	f, err := newWorkbook()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	schema := visitor.SchemaFor(rep.Variant)
	headers := schema.Headers()
	widths := make([]int, len(headers))

	if err := writeHeader(f, headers, st.header, widths); err != nil {
		return nil, err
	}

	for i, rec := range rep.Records {
		rowNum := i + 2
		cells := rec.Cells(rep.Variant)
		for col, value := range cells {
			cell, err := excelize.CoordinatesToCellName(col+1, rowNum)
			if err != nil {
				return nil, err
			}
			var v interface{} = value
			if col == 0 {
				v = rec.SerialNumber
			}
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				return nil, fmt.Errorf("set %s: %w", cell, err)
			}
			widths[col] = max(widths[col], utf8.RuneCountInString(value))
		}
		if err := f.SetRowHeight(SheetName, rowNum, rowHeight); err != nil {
			return nil, err
		}
	}

	if len(rep.Records) > 0 {
		first, _ := excelize.CoordinatesToCellName(1, 2)
		last, _ := excelize.CoordinatesToCellName(len(headers), len(rep.Records)+1)
		if err := f.SetCellStyle(SheetName, first, last, st.body); err != nil {
			return nil, fmt.Errorf("body style: %w", err)
		}
	}

	if err := applyWidths(f, widths); err != nil {
		return nil, err
	}
	if err := freezeHeader(f); err != nil {
		return nil, err
	}
	if err := writeSummary(f, rep, st.summary); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

// Template returns an empty workbook carrying only the styled header row.
func Template(variant visitor.Variant) (*bytes.Buffer, error) {
	f, err := newWorkbook()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := newStyles(f)
	if err != nil {
		return nil, err
	}

	headers := visitor.SchemaFor(variant).Headers()
	widths := make([]int, len(headers))
	if err := writeHeader(f, headers, st.header, widths); err != nil {
		return nil, err
	}
	if err := applyWidths(f, widths); err != nil {
		return nil, err
	}
	if err := freezeHeader(f); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

func writeHeader(f *excelize.File, headers []string, style int, widths []int) error {
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = h
		widths[i] = max(widths[i], utf8.RuneCountInString(h))
	}
	if err := f.SetSheetRow(SheetName, "A1", &row); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	last, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", last, style); err != nil {
		return fmt.Errorf("header style: %w", err)
	}
	return f.SetRowHeight(SheetName, 1, rowHeight)
}

// applyWidths sets each column to its longest value plus two characters.
func applyWidths(f *excelize.File, widths []int) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(SheetName, col, col, float64(w+2)); err != nil {
			return fmt.Errorf("column %s width: %w", col, err)
		}
	}
	return nil
}

func freezeHeader(f *excelize.File) error {
	return f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// writeSummary places the Vehicles block (only when plates exist) and the
// Total Visitors block in column B, starting two rows below the table.
func writeSummary(f *excelize.File, rep visitor.Report, style int) error {
	next := len(rep.Records) + 1 + summaryGap

	put := func(row int, value interface{}) error {
		cell, err := excelize.CoordinatesToCellName(summaryColumn, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(SheetName, cell, value); err != nil {
			return err
		}
		return f.SetCellStyle(SheetName, cell, cell, style)
	}

	if rep.Summary.Vehicles != "" {
		if err := put(next, LabelVehicles); err != nil {
			return fmt.Errorf("vehicles label: %w", err)
		}
		if err := put(next+1, rep.Summary.Vehicles); err != nil {
			return fmt.Errorf("vehicles value: %w", err)
		}
		next += 2
	}

	if err := put(next, LabelTotalVisitors); err != nil {
		return fmt.Errorf("total label: %w", err)
	}
	if err := put(next+1, rep.Summary.TotalVisitors); err != nil {
		return fmt.Errorf("total value: %w", err)
	}
	return nil
}
