package utils

import (
	"strconv"
)

// ParseID parses a positive int64 identifier from a path or query value.
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id < 1 {
		return 0, strconv.ErrSyntax
	}
	return id, nil
}
