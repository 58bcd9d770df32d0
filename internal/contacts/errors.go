package contacts

import (
	"errors"
)

var (
	errEmptySheet = errors.New("contacts sheet is empty")
)
