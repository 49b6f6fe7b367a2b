package utils

import (
	"strconv"
)

// ParseInt64 converts a route parameter to int64
func ParseInt64(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}
