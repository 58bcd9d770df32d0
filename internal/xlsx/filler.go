package xlsx

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Filler owns the template workbook and rewrites it for one merchant at
// a time.
type Filler struct {
	file   *excelize.File
	sheets []string

	clearRows int
	clearCols int
}

// NewFiller opens the template at templatePath. sheets are the tracked
// input sheets rewritten on every export.
func NewFiller(
	templatePath string,
	sheets []string,
	clearRows int,
	clearCols int,
) (*Filler, error) {
	file, err := excelize.OpenFile(templatePath)
	if err != nil {
		return nil, fmt.Errorf("open template %s: %s", templatePath, err)
	}
	return &Filler{
		file:      file,
		sheets:    sheets,
		clearRows: clearRows,
		clearCols: clearCols,
	}, nil
}

// Clear blanks the clearRows×clearCols window of every tracked sheet.
// Stale content outside the window is left as is.
func (f *Filler) Clear() error {
	for _, sheet := range f.sheets {
		for row := 1; row <= f.clearRows; row++ {
			for col := 1; col <= f.clearCols; col++ {
				axis, err := excelize.CoordinatesToCellName(col, row)
				if err != nil {
					return err
				}
				if err := f.file.SetCellValue(sheet, axis, nil); err != nil {
					return fmt.Errorf("clear sheet %s cell %s: %s", sheet, axis, err)
				}
			}
		}
	}
	return nil
}

// Fill writes the header into row 1 and the data rows from row 2 of
// sheet, keeping column order.
func (f *Filler) Fill(sheet string, header []string, rows [][]string) error {
	for colIdx, name := range header {
		if err := f.setCell(sheet, colIdx+1, 1, name); err != nil {
			return err
		}
	}
	for rowIdx, row := range rows {
		for colIdx, value := range row {
			if err := f.setCell(sheet, colIdx+1, rowIdx+2, value); err != nil {
				return err
			}
		}
	}
	return nil
}

// SaveAndReload saves the filled template to path and reopens the saved
// file as the template for the next merchant, so content never compounds
// across exports.
func (f *Filler) SaveAndReload(path string) error {
	if err := f.file.SaveAs(path); err != nil {
		return fmt.Errorf("save template to %s: %s", path, err)
	}
	file, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("reload saved file %s: %s", path, err)
	}
	f.file = file
	return nil
}

func (f *Filler) setCell(sheet string, col, row int, value string) error {
	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.file.SetCellValue(sheet, axis, coerce(value)); err != nil {
		return fmt.Errorf("fill sheet %s cell %s: %s", sheet, axis, err)
	}
	return nil
}

// coerce keeps numeric cells numeric in the output file.
func coerce(value string) interface{} {
	if value == "" {
		return value
	}
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	return value
}
