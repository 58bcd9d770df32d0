package workbook

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const typeXLSX = "xlsx"

// Table is one sheet of the input workbook with its first grid row
// promoted to a column header.
type Table struct {
	Header []string
	Rows   [][]string
}

// Cell returns the value at idx, or an empty string when the row is
// shorter than idx (excelize drops trailing empty cells).
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// ColumnIndex returns the header position of name.
func (t Table) ColumnIndex(name string) (int, error) {
	for idx, column := range t.Header {
		if column == name {
			return idx, nil
		}
	}
	return 0, fmt.Errorf("column %s: %s", name, errColumnNotFound)
}

type parser interface {
	Type(filename string) (string, error)
}

// Loader reads xlsx workbooks into memory.
type Loader struct {
	parser parser
}

// NewLoader ...
func NewLoader(
	parser parser,
) *Loader {
	return &Loader{
		parser: parser,
	}
}

// Load eagerly reads every sheet of the workbook at path. A sheet that
// later access expects but the workbook lacks is simply absent from the
// returned map.
func (l *Loader) Load(path string) (map[string]Table, error) {
	fileType, err := l.parser.Type(path)
	if err != nil {
		return nil, fmt.Errorf("workbook %s: %s", path, err)
	}
	if fileType != typeXLSX {
		return nil, fmt.Errorf("workbook %s: %s", path, errWrongFileType)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %s", path, err)
	}

	tables := make(map[string]Table)
	for _, sheet := range file.GetSheetList() {
		rows, err := file.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %s", sheet, err)
		}

		var table Table
		if len(rows) > 0 {
			table.Header = rows[0]
			table.Rows = rows[1:]
		}
		tables[sheet] = table
	}
	return tables, nil
}
