package workbook

import (
	"errors"
)

var (
	errWrongFileType  = errors.New("workbook is not xlsx")
	errColumnNotFound = errors.New("column not found")
	errNotAnID        = errors.New("not coercible to an integer id")
)
