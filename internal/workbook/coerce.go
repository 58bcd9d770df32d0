package workbook

import (
	"fmt"
	"strconv"
	"strings"
)

// CoerceID converts a cell value to a merchant identifier. Values that
// excelize renders as floats ("1001.0") coerce to the same id as plain
// integers.
func CoerceID(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if id, err := strconv.ParseInt(value, 10, 64); err == nil {
		return id, nil
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int64(f), nil
	}
	return 0, fmt.Errorf("value %q: %s", value, errNotAnID)
}
