package splitter

import (
	"errors"
)

var (
	errSheetNotFound = errors.New("input sheet not found in workbook")
)
